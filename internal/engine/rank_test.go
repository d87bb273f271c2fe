package engine

import (
	"testing"

	"faculty_hub_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func agg(id, name string, stats map[model.Category]CategoryStats) FacultyAggregate {
	f := model.Faculty{Name: name}
	f.ID = id
	return FacultyAggregate{Faculty: f, Stats: stats}
}

func overallStats(mean float64, count int) map[model.Category]CategoryStats {
	return map[model.Category]CategoryStats{
		model.CategoryOverall: {Mean: mean, Count: count},
	}
}

func TestWeightedScoreShrinksTowardGlobalMean(t *testing.T) {
	// Two perfect 5.0 averages against a 3.5 population mean: two votes beat
	// one because more evidence pulls the estimate further from the prior.
	twoVotes := WeightedScore(5, 2, 3.5)
	oneVote := WeightedScore(5, 1, 3.5)

	assert.InDelta(t, 3.93, twoVotes, 0.005)
	assert.InDelta(t, 3.75, oneVote, 0.005)
	assert.Greater(t, twoVotes, oneVote)
}

func TestWeightedScoreConverges(t *testing.T) {
	// As the vote count grows the estimate approaches the raw mean.
	assert.InDelta(t, 5.0, WeightedScore(5, 10000, 3.5), 0.01)

	// With no shrinkage target distance there is nothing to correct.
	assert.InDelta(t, 3.5, WeightedScore(3.5, 1, 3.5), 1e-9)
}

func TestRankExcludesZeroCountBothMethods(t *testing.T) {
	aggs := []FacultyAggregate{
		agg("a", "Asha", overallStats(4, 2)),
		agg("b", "Bilal", nil),
	}

	for _, method := range []model.RankMethod{model.MethodAverage, model.MethodWeighted} {
		ranked := Rank(aggs, model.CategoryOverall, method, 4)
		require.Len(t, ranked, 1, "method %s", method)
		assert.Equal(t, "a", ranked[0].Faculty.ID)
	}
}

func TestRankAverageUsesRawMean(t *testing.T) {
	aggs := []FacultyAggregate{
		agg("a", "Asha", overallStats(5, 1)),
		agg("b", "Bilal", overallStats(4, 100)),
	}

	ranked := Rank(aggs, model.CategoryOverall, model.MethodAverage, 4.1)
	require.Len(t, ranked, 2)
	assert.Equal(t, "a", ranked[0].Faculty.ID)
	assert.InDelta(t, 5.0, ranked[0].Score, 1e-9)
}

func TestRankWeightedFavorsEvidence(t *testing.T) {
	// Same data as the average test: under weighted scoring the single
	// 5-star rating is shrunk below the well-attested 4.0.
	aggs := []FacultyAggregate{
		agg("a", "Asha", overallStats(5, 1)),
		agg("b", "Bilal", overallStats(4, 100)),
	}

	globalMean, ok := GlobalMean(aggs, model.CategoryOverall)
	require.True(t, ok)

	ranked := Rank(aggs, model.CategoryOverall, model.MethodWeighted, globalMean)
	require.Len(t, ranked, 2)
	assert.Equal(t, "b", ranked[0].Faculty.ID)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 2, ranked[1].Rank)
}

func TestRankTieBreaks(t *testing.T) {
	// Identical means and counts: ordering falls through to the name.
	aggs := []FacultyAggregate{
		agg("c", "Chitra", overallStats(4, 3)),
		agg("a", "Asha", overallStats(4, 3)),
		agg("b", "Bilal", overallStats(4, 5)),
	}

	ranked := Rank(aggs, model.CategoryOverall, model.MethodAverage, 4)
	require.Len(t, ranked, 3)
	// Equal score, higher count first.
	assert.Equal(t, "b", ranked[0].Faculty.ID)
	assert.Equal(t, "a", ranked[1].Faculty.ID)
	assert.Equal(t, "c", ranked[2].Faculty.ID)
}

func TestRankScoresUnchangedBySubsetting(t *testing.T) {
	// The caller passes a corpus-wide global mean; ranking a subset with the
	// same mean must yield the same score for the surviving entry.
	full := []FacultyAggregate{
		agg("a", "Asha", overallStats(5, 2)),
		agg("b", "Bilal", overallStats(2, 4)),
	}
	globalMean, _ := GlobalMean(full, model.CategoryOverall)

	fullRanked := Rank(full, model.CategoryOverall, model.MethodWeighted, globalMean)
	subsetRanked := Rank(full[:1], model.CategoryOverall, model.MethodWeighted, globalMean)

	require.Len(t, subsetRanked, 1)
	var fromFull float64
	for _, r := range fullRanked {
		if r.Faculty.ID == "a" {
			fromFull = r.Score
		}
	}
	assert.Equal(t, fromFull, subsetRanked[0].Score)
}
