package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// RankingCacheKey identifies a ranking run by job and candidate set. The
// candidate IDs are sorted before hashing so the key is order independent.
func RankingCacheKey(jobID uuid.UUID, candidateIDs []uuid.UUID) string {
	ids := make([]string, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		ids = append(ids, id.String())
	}
	sort.Strings(ids)

	sum := sha256.Sum256([]byte(strings.Join(ids, ",")))
	return "ranking:" + jobID.String() + ":" + hex.EncodeToString(sum[:])[:16]
}
