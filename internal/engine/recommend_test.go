package engine

import (
	"testing"

	"faculty_hub_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withProjects(a FacultyAggregate, titles ...string) FacultyAggregate {
	for _, title := range titles {
		a.Faculty.Projects = append(a.Faculty.Projects, model.Project{Title: title})
	}
	return a
}

func TestSelectMode(t *testing.T) {
	prefs := []model.Category{model.CategoryTeaching}
	tags := []string{"robotics"}

	assert.Equal(t, ModeNone, SelectMode(nil, nil))
	assert.Equal(t, ModeRatingPreference, SelectMode(prefs, nil))
	assert.Equal(t, ModeInterest, SelectMode(nil, tags))
	assert.Equal(t, ModeMixed, SelectMode(prefs, tags))
}

func TestRecommendRatingPreferenceMode(t *testing.T) {
	teaching := func(mean float64, count int) map[model.Category]CategoryStats {
		return map[model.Category]CategoryStats{
			model.CategoryTeaching: {Mean: mean, Count: count},
		}
	}

	aggs := []FacultyAggregate{
		agg("a", "Asha", teaching(5, 20)),
		agg("b", "Bilal", teaching(2, 20)),
		// No teaching data at all: not scoreable, must be excluded.
		agg("c", "Chitra", nil),
	}

	profile := Profile{RatingPreferences: []model.Category{model.CategoryTeaching}}
	recs := Recommend(profile, aggs)

	require.Len(t, recs, 2)
	assert.Equal(t, "a", recs[0].Faculty.ID)
	assert.Equal(t, ModeRatingPreference, recs[0].Mode)
	require.True(t, recs[0].HasCompatibility)
	assert.Greater(t, recs[0].Compatibility, recs[1].Compatibility)
	assert.GreaterOrEqual(t, recs[1].Compatibility, 0.0)
	assert.LessOrEqual(t, recs[0].Compatibility, 100.0)
}

func TestCompatibilityBounds(t *testing.T) {
	globals := map[model.Category]float64{model.CategoryTeaching: 5}
	perfect := agg("a", "Asha", map[model.Category]CategoryStats{
		model.CategoryTeaching: {Mean: 5, Count: 50},
	})

	compat, ok := compatibility([]model.Category{model.CategoryTeaching}, perfect, globals)
	require.True(t, ok)
	assert.InDelta(t, 100, compat, 0.5)

	globals[model.CategoryTeaching] = 1
	worst := agg("b", "Bilal", map[model.Category]CategoryStats{
		model.CategoryTeaching: {Mean: 1, Count: 50},
	})
	compat, ok = compatibility([]model.Category{model.CategoryTeaching}, worst, globals)
	require.True(t, ok)
	assert.InDelta(t, 0, compat, 0.5)
}

func TestCompatibilitySkipsMissingCategories(t *testing.T) {
	globals := map[model.Category]float64{model.CategoryTeaching: 3}
	a := agg("a", "Asha", map[model.Category]CategoryStats{
		model.CategoryTeaching: {Mean: 3, Count: 1},
	})

	// Attendance has no data: the percentage comes from teaching alone
	// instead of averaging in a zero.
	withMissing, ok := compatibility(
		[]model.Category{model.CategoryTeaching, model.CategoryAttendance}, a, globals)
	require.True(t, ok)
	teachingOnly, _ := compatibility([]model.Category{model.CategoryTeaching}, a, globals)
	assert.Equal(t, teachingOnly, withMissing)

	_, ok = compatibility([]model.Category{model.CategoryAttendance}, a, globals)
	assert.False(t, ok)
}

func TestRecommendInterestMode(t *testing.T) {
	aggs := []FacultyAggregate{
		withProjects(agg("a", "Asha", nil), "Robotics Lab", "Cryptography Survey"),
		withProjects(agg("b", "Bilal", nil), "Robotics Outreach"),
		withProjects(agg("c", "Chitra", nil), "Marine Biology"),
	}

	profile := Profile{InterestTags: []string{"robotics", "cryptography"}}
	recs := Recommend(profile, aggs)

	require.Len(t, recs, 2)
	assert.Equal(t, "a", recs[0].Faculty.ID)
	assert.Equal(t, 2, recs[0].MatchCount)
	assert.Equal(t, ModeInterest, recs[0].Mode)
	assert.False(t, recs[0].HasCompatibility)
	assert.Equal(t, 1, recs[1].MatchCount)
	assert.NotEmpty(t, recs[1].Reason)
}

func TestRecommendMixedMode(t *testing.T) {
	// Single faculty corpus: the global teaching mean equals its own mean,
	// so the weighted score is exactly 3.0 and compatibility is 50%.
	a := withProjects(agg("a", "Asha", map[model.Category]CategoryStats{
		model.CategoryTeaching: {Mean: 3, Count: 1},
		model.CategoryOverall:  {Mean: 3, Count: 1},
	}), "Robotics Lab")

	profile := Profile{
		RatingPreferences: []model.Category{model.CategoryTeaching},
		InterestTags:      []string{"robotics"},
	}
	recs := Recommend(profile, []FacultyAggregate{a})

	require.Len(t, recs, 1)
	assert.Equal(t, ModeMixed, recs[0].Mode)
	require.True(t, recs[0].HasCompatibility)
	assert.InDelta(t, 50, recs[0].Compatibility, 1e-9)
	assert.Equal(t, 1, recs[0].MatchCount)
	// 0.6*50 + 0.4*100
	assert.InDelta(t, 70, recs[0].Score, 1e-9)
}

func TestRecommendMixedKeepsOneSidedCandidates(t *testing.T) {
	rated := agg("a", "Asha", map[model.Category]CategoryStats{
		model.CategoryTeaching: {Mean: 4, Count: 2},
		model.CategoryOverall:  {Mean: 4, Count: 2},
	})
	matchedOnly := withProjects(agg("b", "Bilal", nil), "Robotics Lab")
	neither := agg("c", "Chitra", nil)

	profile := Profile{
		RatingPreferences: []model.Category{model.CategoryTeaching},
		InterestTags:      []string{"robotics"},
	}
	recs := Recommend(profile, []FacultyAggregate{rated, matchedOnly, neither})

	require.Len(t, recs, 2)
	ids := []string{recs[0].Faculty.ID, recs[1].Faculty.ID}
	assert.Contains(t, ids, "a")
	assert.Contains(t, ids, "b")

	for _, r := range recs {
		if r.Faculty.ID == "b" {
			// The missing rating side contributes zero, not an exclusion.
			assert.False(t, r.HasCompatibility)
			assert.InDelta(t, 40, r.Score, 1e-9)
		}
	}
}

func TestRecommendDirectoryFallback(t *testing.T) {
	aggs := []FacultyAggregate{
		agg("b", "Bilal", overallStats(2, 10)),
		agg("a", "Asha", overallStats(5, 10)),
		agg("z", "Zoya", nil),
		agg("d", "Divya", nil),
	}

	recs := Recommend(Profile{}, aggs)

	require.Len(t, recs, 4)
	assert.Equal(t, "a", recs[0].Faculty.ID)
	assert.Equal(t, "b", recs[1].Faculty.ID)
	// Never-rated faculty come after every rated one, ordered by name.
	assert.Equal(t, "d", recs[2].Faculty.ID)
	assert.Equal(t, "z", recs[3].Faculty.ID)
	for _, r := range recs {
		assert.Equal(t, ModeNone, r.Mode)
		assert.False(t, r.HasCompatibility)
	}
}

func TestRecommendModeFollowsProfile(t *testing.T) {
	a := withProjects(agg("a", "Asha", overallStats(4, 3)), "Robotics Lab")
	aggs := []FacultyAggregate{a}

	assert.Equal(t, ModeNone, Recommend(Profile{}, aggs)[0].Mode)
	assert.Equal(t, ModeInterest,
		Recommend(Profile{InterestTags: []string{"robotics"}}, aggs)[0].Mode)
}
