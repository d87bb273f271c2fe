package engine

import (
	"sort"

	"faculty_hub_backend/internal/model"
)

// Mode is the recommendation strategy, decided once per request from the two
// halves of the student's preference profile.
type Mode string

const (
	// ModeNone: no preferences at all; plain weighted/overall directory order.
	ModeNone Mode = "none"
	// ModeRatingPreference: order by compatibility with the selected rating
	// categories.
	ModeRatingPreference Mode = "rating_preference"
	// ModeInterest: order by project/interest match count.
	ModeInterest Mode = "interest"
	// ModeMixed: weighted blend of compatibility and interest match.
	ModeMixed Mode = "mixed"
)

// Mixing weights for ModeMixed. Fixed configuration values, stated here and
// kept constant so combined scores are reproducible.
const (
	RatingWeight   = 0.6
	InterestWeight = 0.4
)

// SelectMode maps the two non-empty flags onto a single mode value.
func SelectMode(ratingPreferences []model.Category, interestTags []string) Mode {
	hasPrefs := len(ratingPreferences) > 0
	hasTags := len(interestTags) > 0
	switch {
	case hasPrefs && hasTags:
		return ModeMixed
	case hasPrefs:
		return ModeRatingPreference
	case hasTags:
		return ModeInterest
	default:
		return ModeNone
	}
}

// Profile is the slice of a student's stored profile the recommender reads.
type Profile struct {
	RatingPreferences []model.Category
	InterestTags      []string
}

// Recommendation is one annotated candidate. Which annotations are populated
// depends on the mode; Score is the ordering key of the mode that produced it.
type Recommendation struct {
	Faculty          model.Faculty
	Stats            map[model.Category]CategoryStats
	Mode             Mode
	Score            float64
	Compatibility    float64
	HasCompatibility bool
	MatchCount       int
	MatchedTags      []string
	Reason           string
}

// Recommend builds the ordered candidate list for one student over a faculty
// aggregate snapshot. The engine never truncates; callers cap to a top-N.
func Recommend(profile Profile, aggs []FacultyAggregate) []Recommendation {
	mode := SelectMode(profile.RatingPreferences, profile.InterestTags)

	globals := make(map[model.Category]float64, len(model.AllCategories()))
	for _, c := range model.AllCategories() {
		if m, ok := GlobalMean(aggs, c); ok {
			globals[c] = m
		}
	}

	switch mode {
	case ModeRatingPreference:
		return recommendByRatings(profile, aggs, globals)
	case ModeInterest:
		return recommendByInterests(profile, aggs, globals)
	case ModeMixed:
		return recommendMixed(profile, aggs, globals)
	default:
		return recommendDirectory(aggs, globals)
	}
}

// compatibility is the 0-100 percentage of how well a faculty member's
// weighted scores line up with the student's selected categories. Categories
// the faculty has no data for are skipped; if none remain the second return
// is false and the faculty is not scoreable on ratings.
func compatibility(prefs []model.Category, agg FacultyAggregate, globals map[model.Category]float64) (float64, bool) {
	var sum float64
	var n int
	for _, c := range prefs {
		s, ok := agg.Stats[c]
		if !ok || s.Count == 0 {
			continue
		}
		w := WeightedScore(s.Mean, s.Count, globals[c])
		sum += clampPercent((w - 1) / 4 * 100)
		n++
	}
	if n == 0 {
		return 0, false
	}
	return clampPercent(sum / float64(n)), true
}

// overallWeighted is the tie-break key shared by every mode. A faculty member
// with no overall ratings degenerates to the global mean (v=0 in the
// shrinkage formula), keeping the key total.
func overallWeighted(agg FacultyAggregate, globals map[model.Category]float64) float64 {
	s := agg.Stats[model.CategoryOverall]
	return WeightedScore(s.Mean, s.Count, globals[model.CategoryOverall])
}

func recommendByRatings(profile Profile, aggs []FacultyAggregate, globals map[model.Category]float64) []Recommendation {
	recs := make([]Recommendation, 0, len(aggs))
	for _, a := range aggs {
		compat, ok := compatibility(profile.RatingPreferences, a, globals)
		if !ok {
			continue
		}
		recs = append(recs, Recommendation{
			Faculty:          a.Faculty,
			Stats:            a.Stats,
			Mode:             ModeRatingPreference,
			Score:            compat,
			Compatibility:    compat,
			HasCompatibility: true,
		})
	}
	sortRecommendations(recs, aggs, globals)
	return recs
}

func recommendByInterests(profile Profile, aggs []FacultyAggregate, globals map[model.Category]float64) []Recommendation {
	recs := make([]Recommendation, 0, len(aggs))
	for _, a := range aggs {
		match := MatchInterests(profile.InterestTags, a.Faculty.Projects)
		if match.Count == 0 {
			continue
		}
		recs = append(recs, Recommendation{
			Faculty:     a.Faculty,
			Stats:       a.Stats,
			Mode:        ModeInterest,
			Score:       float64(match.Count),
			MatchCount:  match.Count,
			MatchedTags: match.MatchedTags,
			Reason:      match.Reason,
		})
	}
	sortRecommendations(recs, aggs, globals)
	return recs
}

func recommendMixed(profile Profile, aggs []FacultyAggregate, globals map[model.Category]float64) []Recommendation {
	maxMatches := float64(len(profile.InterestTags))

	recs := make([]Recommendation, 0, len(aggs))
	for _, a := range aggs {
		compat, hasCompat := compatibility(profile.RatingPreferences, a, globals)
		match := MatchInterests(profile.InterestTags, a.Faculty.Projects)
		if !hasCompat && match.Count == 0 {
			continue
		}

		interestPct := float64(match.Count) / maxMatches * 100
		combined := RatingWeight*compat + InterestWeight*interestPct

		recs = append(recs, Recommendation{
			Faculty:          a.Faculty,
			Stats:            a.Stats,
			Mode:             ModeMixed,
			Score:            combined,
			Compatibility:    compat,
			HasCompatibility: hasCompat,
			MatchCount:       match.Count,
			MatchedTags:      match.MatchedTags,
			Reason:           match.Reason,
		})
	}
	sortRecommendations(recs, aggs, globals)
	return recs
}

// recommendDirectory is the no-preference fallback: the full faculty set in
// weighted/overall ranking order, never-rated faculty appended by name.
func recommendDirectory(aggs []FacultyAggregate, globals map[model.Category]float64) []Recommendation {
	ranked := Rank(aggs, model.CategoryOverall, model.MethodWeighted, globals[model.CategoryOverall])

	seen := make(map[string]bool, len(ranked))
	recs := make([]Recommendation, 0, len(aggs))
	for _, r := range ranked {
		seen[r.Faculty.ID] = true
		recs = append(recs, Recommendation{
			Faculty: r.Faculty,
			Stats:   r.Stats,
			Mode:    ModeNone,
			Score:   r.Score,
		})
	}

	var unrated []Recommendation
	for _, a := range aggs {
		if !seen[a.Faculty.ID] {
			unrated = append(unrated, Recommendation{
				Faculty: a.Faculty,
				Stats:   a.Stats,
				Mode:    ModeNone,
			})
		}
	}
	sort.Slice(unrated, func(i, j int) bool {
		return unrated[i].Faculty.Name < unrated[j].Faculty.Name
	})

	return append(recs, unrated...)
}

// sortRecommendations orders by the mode score descending, then weighted
// overall descending, then name ascending.
func sortRecommendations(recs []Recommendation, aggs []FacultyAggregate, globals map[model.Category]float64) {
	overall := make(map[string]float64, len(aggs))
	for _, a := range aggs {
		overall[a.Faculty.ID] = overallWeighted(a, globals)
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		oi := overall[recs[i].Faculty.ID]
		oj := overall[recs[j].Faculty.ID]
		if oi != oj {
			return oi > oj
		}
		return recs[i].Faculty.Name < recs[j].Faculty.Name
	})
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
