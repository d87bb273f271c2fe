package engine

import (
	"sort"

	"faculty_hub_backend/internal/model"
)

// MinimumVotes is the shrinkage constant m of the weighted score. It is a
// fixed configuration value so rankings are reproducible for a given rating
// count; raising it makes low-sample scores more conservative.
const MinimumVotes = 5

// WeightedScore is the bias-corrected (Bayesian shrinkage) estimate for a
// faculty member with `count` ratings of mean `mean`, against the population
// mean `globalMean`:
//
//	score = v/(v+m)*R + m/(v+m)*C
//
// A single 5-star rating lands close to C; the estimate converges to R as
// the rating count grows.
func WeightedScore(mean float64, count int, globalMean float64) float64 {
	v := float64(count)
	m := float64(MinimumVotes)
	return v/(v+m)*mean + m/(v+m)*globalMean
}

// RankedFaculty is one position of a ranking, annotated with its dense
// 1-based rank, the method's score and the recomputed per-category stats.
type RankedFaculty struct {
	Faculty model.Faculty
	Rank    int
	Score   float64
	Stats   map[model.Category]CategoryStats
}

// Rank orders a faculty aggregate set by the chosen method for one category.
// Faculty with zero ratings in the category are excluded, not scored as 0,
// under both methods. globalMean must be computed over the full corpus (not
// the filtered subset) so an eligibility filter never changes score values.
//
// Sort order: score descending, then rating count descending (more evidence
// ranks higher), then name ascending for determinism.
func Rank(aggs []FacultyAggregate, category model.Category, method model.RankMethod, globalMean float64) []RankedFaculty {
	ranked := make([]RankedFaculty, 0, len(aggs))
	for _, a := range aggs {
		s, ok := a.Stats[category]
		if !ok || s.Count == 0 {
			continue
		}

		score := s.Mean
		if method == model.MethodWeighted {
			score = WeightedScore(s.Mean, s.Count, globalMean)
		}

		ranked = append(ranked, RankedFaculty{
			Faculty: a.Faculty,
			Score:   score,
			Stats:   a.Stats,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		ci := ranked[i].Stats[category].Count
		cj := ranked[j].Stats[category].Count
		if ci != cj {
			return ci > cj
		}
		return ranked[i].Faculty.Name < ranked[j].Faculty.Name
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
