package service

import (
	"faculty_hub_backend/internal/engine"
	"faculty_hub_backend/internal/model"
	"faculty_hub_backend/internal/repository"
)

type RecommendationService struct {
	UserRepo *repository.UserRepository
	Ranking  *RankingService
}

func NewRecommendationService(userRepo *repository.UserRepository, ranking *RankingService) *RecommendationService {
	return &RecommendationService{
		UserRepo: userRepo,
		Ranking:  ranking,
	}
}

// RecommendationEntry is one annotated candidate of the recommendation
// surface. Compatibility is only meaningful when present in the mode.
// swagger:model RecommendationEntry
type RecommendationEntry struct {
	FacultyView
	Mode          engine.Mode `json:"mode"`
	Compatibility *float64    `json:"compatibilityPercentage,omitempty"`
	MatchCount    int         `json:"matchCount,omitempty"`
	MatchedTags   []string    `json:"matchedTags,omitempty"`
	Reason        string      `json:"reason,omitempty"`
}

// Recommend reads the student's stored preference profile, dispatches on the
// recommendation mode and returns the annotated ordered list. limit <= 0
// means no cap; the engine itself never truncates.
func (s *RecommendationService) Recommend(studentID uint, limit int) ([]RecommendationEntry, error) {
	user, err := s.UserRepo.FindByID(studentID)
	if err != nil {
		return nil, err
	}

	profile := engine.Profile{
		InterestTags: user.InterestTags,
	}
	for _, p := range user.RatingPreferences {
		c := model.Category(p)
		if c.Valid() {
			profile.RatingPreferences = append(profile.RatingPreferences, c)
		}
	}

	aggs, err := s.Ranking.snapshot()
	if err != nil {
		return nil, err
	}

	recs := engine.Recommend(profile, aggs)
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}

	entries := make([]RecommendationEntry, 0, len(recs))
	for _, r := range recs {
		entry := RecommendationEntry{
			FacultyView: newFacultyView(r.Faculty, r.Stats),
			Mode:        r.Mode,
			MatchCount:  r.MatchCount,
			MatchedTags: r.MatchedTags,
			Reason:      r.Reason,
		}
		if r.HasCompatibility {
			compat := r.Compatibility
			entry.Compatibility = &compat
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
