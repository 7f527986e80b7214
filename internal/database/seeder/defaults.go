package seeder

import "talent-rank/internal/domain/skillgraph"

func Defaults(graph *skillgraph.Graph) []Seeder {
	return []Seeder{
		SchemaSeeder{},
		OntologySeeder{Graph: graph},
	}
}
