package explain

import (
	"github.com/google/uuid"

	"talent-rank/internal/domain/ranking"
)

// PositionChange records one candidate whose rank moved after the
// bias-mitigated re-ranking pass.
type PositionChange struct {
	CandidateID       uuid.UUID `json:"candidate_id"`
	OriginalPosition  int       `json:"original_position"`
	MitigatedPosition int       `json:"mitigated_position"`
	Change            string    `json:"change"`
}

// BiasReport summarizes how masking sensitive attributes affected ranking.
// Stability 1.0 means no candidate moved.
type BiasReport struct {
	BiasMitigationApplied bool             `json:"bias_mitigation_applied"`
	AttributesMasked      []string         `json:"attributes_masked"`
	RankingStability      float64          `json:"ranking_stability"`
	CandidatesReranked    int              `json:"candidates_reranked"`
	Details               []PositionChange `json:"details"`
}

// BiasMitigationReport diffs the original ranking against the re-ranking
// produced with masked attributes. Details follow the original slice order.
func BiasMitigationReport(original, mitigated []ranking.Record) BiasReport {
	report := BiasReport{
		BiasMitigationApplied: true,
		AttributesMasked:      []string{"name", "gender indicators", "age proxies"},
	}
	if len(original) == 0 || len(mitigated) == 0 {
		return report
	}

	mitigatedPos := make(map[uuid.UUID]int, len(mitigated))
	for _, r := range mitigated {
		mitigatedPos[r.CandidateID] = r.RankPosition
	}

	changed := 0
	for _, r := range original {
		newPos, ok := mitigatedPos[r.CandidateID]
		if ok && newPos == r.RankPosition {
			continue
		}
		// A candidate absent from the mitigated run also counts as a
		// position change.
		changed++
		change := "adjusted"
		if ok && newPos < r.RankPosition {
			change = "improved"
		}
		report.Details = append(report.Details, PositionChange{
			CandidateID:       r.CandidateID,
			OriginalPosition:  r.RankPosition,
			MitigatedPosition: newPos,
			Change:            change,
		})
	}

	report.CandidatesReranked = changed
	report.RankingStability = float64(len(original)-changed) / float64(len(original))
	return report
}
