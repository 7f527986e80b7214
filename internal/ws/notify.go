package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type RankingsUpdatedEvent struct {
	Type            string `json:"type"`
	JobID           string `json:"job_id"`
	RunID           string `json:"run_id"`
	TotalCandidates int    `json:"total_candidates"`
	Timestamp       string `json:"timestamp"`
}

// NotifyRankingsUpdated broadcasts that a pipeline run finished for a job.
// Safe on a nil hub; the event is then dropped.
func (h *Hub) NotifyRankingsUpdated(jobID, runID uuid.UUID, totalCandidates int) {
	if h == nil {
		return
	}

	evt := RankingsUpdatedEvent{
		Type:            "rankings_updated",
		JobID:           jobID.String(),
		RunID:           runID.String(),
		TotalCandidates: totalCandidates,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
