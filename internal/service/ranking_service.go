package service

import (
	"faculty_hub_backend/internal/engine"
	"faculty_hub_backend/internal/model"
	"faculty_hub_backend/internal/repository"
	"faculty_hub_backend/internal/util"
)

type RankingService struct {
	FacultyRepo *repository.FacultyRepository
	RatingRepo  *repository.RatingRepository
}

func NewRankingService(facultyRepo *repository.FacultyRepository, ratingRepo *repository.RatingRepository) *RankingService {
	return &RankingService{
		FacultyRepo: facultyRepo,
		RatingRepo:  ratingRepo,
	}
}

// RankingEntry is one row of the ranking surface.
// swagger:model RankingEntry
type RankingEntry struct {
	FacultyView
	Rank  int     `json:"rank"`
	Score float64 `json:"score"`
}

// snapshot fetches the full corpus with recomputed aggregates. Rankings and
// recommendations always work from this, never from cached counters.
func (s *RankingService) snapshot() ([]engine.FacultyAggregate, error) {
	faculty, err := s.FacultyRepo.List("")
	if err != nil {
		return nil, err
	}

	ratings, err := s.RatingRepo.ListAll()
	if err != nil {
		return nil, err
	}

	aggs := make([]engine.FacultyAggregate, 0, len(faculty))
	for _, f := range faculty {
		aggs = append(aggs, engine.FacultyAggregate{
			Faculty: f,
			Stats:   engine.Aggregate(ratings[f.ID]),
		})
	}
	return aggs, nil
}

// Rank serves the ranking query surface. Method defaults to weighted; the
// department filter restricts eligibility only, the global mean stays
// corpus-wide so filtered scores match unfiltered ones. An unknown department
// yields an empty ranking.
func (s *RankingService) Rank(department, category, method string) ([]RankingEntry, error) {
	cat := model.Category(category)
	if !cat.Valid() {
		return nil, util.ErrInvalidCategory
	}

	m := model.MethodWeighted
	if method != "" {
		m = model.RankMethod(method)
		if !m.Valid() {
			return nil, util.ErrInvalidMethod
		}
	}

	dept, ok := ParseDepartment(department)
	if !ok {
		return []RankingEntry{}, nil
	}

	aggs, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	globalMean, _ := engine.GlobalMean(aggs, cat)

	scope := aggs
	if dept != "" {
		scope = scope[:0:0]
		for _, a := range aggs {
			if a.Faculty.Department == dept {
				scope = append(scope, a)
			}
		}
	}

	ranked := engine.Rank(scope, cat, m, globalMean)

	entries := make([]RankingEntry, 0, len(ranked))
	for _, r := range ranked {
		entries = append(entries, RankingEntry{
			FacultyView: newFacultyView(r.Faculty, r.Stats),
			Rank:        r.Rank,
			Score:       r.Score,
		})
	}
	return entries, nil
}
