package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miikeyanderson/AMED-Referrals-sub000/models"
)

func TestPartitionByStage_AllStagesAlwaysPresent(t *testing.T) {
	buckets, total := PartitionByStage(nil)

	assert.Equal(t, 0, total)
	require.Len(t, buckets, 5)
	for _, stage := range models.Stages {
		require.Contains(t, buckets, stage)
		assert.Equal(t, stage, buckets[stage].Stage)
		assert.Equal(t, 0, buckets[stage].Count)
		assert.NotNil(t, buckets[stage].Candidates)
		assert.Empty(t, buckets[stage].Candidates)
	}
}

func TestPartitionByStage_CountsPerStage(t *testing.T) {
	referrals := []models.Referral{
		{ID: 1, CandidateName: "A", Status: models.StatusPending},
		{ID: 2, CandidateName: "B", Status: models.StatusPending},
		{ID: 3, CandidateName: "C", Status: models.StatusHired},
	}

	buckets, total := PartitionByStage(referrals)

	assert.Equal(t, 3, total)
	assert.Equal(t, 2, buckets[models.StatusPending].Count)
	assert.Equal(t, 1, buckets[models.StatusHired].Count)
	assert.Equal(t, 0, buckets[models.StatusContacted].Count)
	assert.Equal(t, 0, buckets[models.StatusInterviewing].Count)
	assert.Equal(t, 0, buckets[models.StatusRejected].Count)
}

func TestPartitionByStage_BucketsSumToTotal(t *testing.T) {
	referrals := []models.Referral{
		{ID: 1, Status: models.StatusPending},
		{ID: 2, Status: models.StatusContacted},
		{ID: 3, Status: models.StatusInterviewing},
		{ID: 4, Status: models.StatusHired},
		{ID: 5, Status: models.StatusRejected},
		{ID: 6, Status: models.StatusContacted},
		{ID: 7, Status: ""},
	}

	buckets, total := PartitionByStage(referrals)

	sum := 0
	seen := make(map[uint]int)
	for _, bucket := range buckets {
		sum += bucket.Count
		assert.Len(t, bucket.Candidates, bucket.Count)
		for _, candidate := range bucket.Candidates {
			seen[candidate.ID]++
		}
	}
	assert.Equal(t, total, sum)

	// Every referral lands in exactly one bucket.
	require.Len(t, seen, len(referrals))
	for id, n := range seen {
		assert.Equal(t, 1, n, "referral %d appeared in %d buckets", id, n)
	}
}

func TestPartitionByStage_UnknownStatusBucketsAsPending(t *testing.T) {
	referrals := []models.Referral{
		{ID: 1, Status: ""},
		{ID: 2, Status: "archived"},
		{ID: 3, Status: models.StatusContacted},
	}

	buckets, total := PartitionByStage(referrals)

	assert.Equal(t, 3, total)
	assert.Equal(t, 2, buckets[models.StatusPending].Count)
	assert.Equal(t, 1, buckets[models.StatusContacted].Count)
}

func TestSortColumn(t *testing.T) {
	tests := []struct {
		sortBy string
		want   string
	}{
		{"name", "candidate_name"},
		{"role", "position"},
		{"lastActivity", "updated_at"},
		{"", "updated_at"},
		{"bogus", "updated_at"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SortColumn(tt.sortBy), "sortBy=%q", tt.sortBy)
	}
}

func TestSortDirection(t *testing.T) {
	assert.Equal(t, "asc", SortDirection("asc"))
	assert.Equal(t, "desc", SortDirection("desc"))
	assert.Equal(t, "desc", SortDirection(""))
	assert.Equal(t, "desc", SortDirection("sideways"))
}

func TestParseFilterDate_LenientOnBadInput(t *testing.T) {
	_, ok := ParseFilterDate("")
	assert.False(t, ok)

	_, ok = ParseFilterDate("not-a-date")
	assert.False(t, ok)

	_, ok = ParseFilterDate("2025-13-45")
	assert.False(t, ok)

	parsed, ok := ParseFilterDate("2025-06-15")
	require.True(t, ok)
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, 6, int(parsed.Month()))
	assert.Equal(t, 15, parsed.Day())
}
