package pipeline

import (
	"github.com/miikeyanderson/AMED-Referrals-sub000/models"
)

// StageBucket is one column of the pipeline board.
type StageBucket struct {
	Stage      string            `json:"stage"`
	Count      int               `json:"count"`
	Candidates []models.Referral `json:"candidates"`
}

// PartitionByStage groups referrals into the five fixed stage buckets.
// Every stage is present in the result even when empty, so the board
// always renders all columns. A referral whose status is missing or
// unrecognized is bucketed as pending rather than dropped.
func PartitionByStage(referrals []models.Referral) (map[string]*StageBucket, int) {
	buckets := make(map[string]*StageBucket, len(models.Stages))
	for _, stage := range models.Stages {
		buckets[stage] = &StageBucket{
			Stage:      stage,
			Candidates: []models.Referral{},
		}
	}

	for _, r := range referrals {
		stage := r.Status
		if !models.ValidStatus(stage) {
			stage = models.StatusPending
		}
		bucket := buckets[stage]
		bucket.Candidates = append(bucket.Candidates, r)
		bucket.Count++
	}

	return buckets, len(referrals)
}

// SortColumn maps an API sort key to its database column. Unknown keys
// fall back to last activity.
func SortColumn(sortBy string) string {
	switch sortBy {
	case "name":
		return "candidate_name"
	case "role":
		return "position"
	case "lastActivity":
		return "updated_at"
	default:
		return "updated_at"
	}
}

// SortDirection normalizes a sort direction, defaulting to descending.
func SortDirection(direction string) string {
	if direction == "asc" {
		return "asc"
	}
	return "desc"
}
