// Package engine holds the ranking and recommendation core: pure, stateless
// computations over a snapshot of rating and faculty data fetched at call
// time. Aggregates are always recomputed from the live rating rows, never
// read from a stored counter, so a corrected rating is reflected on the very
// next query.
package engine

import (
	"faculty_hub_backend/internal/model"
)

// CategoryStats is the recomputed aggregate for one faculty member and one
// category. Count is the number of live ratings that specify the category.
type CategoryStats struct {
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

// FacultyAggregate pairs a faculty record with its per-category stats.
// Categories with zero ratings are absent from the map.
type FacultyAggregate struct {
	Faculty model.Faculty
	Stats   map[model.Category]CategoryStats
}

// Aggregate derives count and mean per category from the full set of live
// ratings for one faculty member.
func Aggregate(ratings []model.Rating) map[model.Category]CategoryStats {
	sums := make(map[model.Category]int)
	counts := make(map[model.Category]int)
	for i := range ratings {
		for _, c := range model.AllCategories() {
			if v, ok := ratings[i].Value(c); ok {
				sums[c] += v
				counts[c]++
			}
		}
	}

	stats := make(map[model.Category]CategoryStats, len(counts))
	for c, n := range counts {
		stats[c] = CategoryStats{
			Mean:  float64(sums[c]) / float64(n),
			Count: n,
		}
	}
	return stats
}

// GlobalMean is the count-weighted mean of a category across the whole
// aggregate set: the population mean the weighted ranking shrinks toward.
// The second return is false when no faculty in the set has a rating for
// the category.
func GlobalMean(aggs []FacultyAggregate, category model.Category) (float64, bool) {
	var sum float64
	var count int
	for _, a := range aggs {
		if s, ok := a.Stats[category]; ok {
			sum += s.Mean * float64(s.Count)
			count += s.Count
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}
