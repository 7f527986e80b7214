package seeder

import (
	"context"
	"fmt"

	"talent-rank/internal/database"
	"talent-rank/internal/domain/skillgraph"
)

// OntologySeeder mirrors the in-memory skill graph into the skills and
// skill_relationships tables so reporting queries can join against it.
type OntologySeeder struct {
	Graph *skillgraph.Graph
}

func (OntologySeeder) Name() string { return "ontology" }

func (s OntologySeeder) Run(ctx context.Context, db database.DB) error {
	graph := s.Graph
	if graph == nil {
		graph = skillgraph.New(nil)
	}

	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "created_at"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "skill_relationships", "source", "target", "rel_type", "strength"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, sk := range graph.Skills() {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, name, category) VALUES (gen_random_uuid(), $1, $2)
			 ON CONFLICT (name) DO UPDATE SET category = EXCLUDED.category`,
			sk.Name,
			sk.Category,
		)
		if err != nil {
			return err
		}
	}

	for _, rel := range graph.Relationships() {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO skill_relationships (source, target, rel_type, strength) VALUES ($1, $2, $3, $4)
			 ON CONFLICT (source, target, rel_type) DO UPDATE SET strength = EXCLUDED.strength`,
			rel.Source,
			rel.Target,
			string(rel.Type),
			rel.Strength,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
