package service

import (
	"faculty_hub_backend/internal/model"
	"faculty_hub_backend/internal/repository"
	"faculty_hub_backend/internal/util"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

// ProfileUpdate carries the mutable profile fields; nil means unchanged.
type ProfileUpdate struct {
	Name    *string `json:"name"`
	Picture *string `json:"picture"`
}

func (s *UserService) GetProfile(userID uint) (*model.User, error) {
	return s.UserRepo.FindByID(userID)
}

func (s *UserService) UpdateProfile(userID uint, update ProfileUpdate) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Picture != nil {
		user.Picture = *update.Picture
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// PreferenceUpdate replaces the two halves of the preference profile; nil
// leaves a half unchanged, an empty slice clears it.
type PreferenceUpdate struct {
	RatingPreferences *[]string `json:"ratingPreferences"`
	InterestTags      *[]string `json:"interestTags"`
}

func (s *UserService) UpdatePreferences(userID uint, update PreferenceUpdate) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if update.RatingPreferences != nil {
		prefs := *update.RatingPreferences
		for _, p := range prefs {
			if !isPreferenceCategory(p) {
				return nil, util.ErrInvalidCategory
			}
		}
		user.RatingPreferences = dedupe(prefs)
	}

	if update.InterestTags != nil {
		tags := *update.InterestTags
		known, err := s.UserRepo.ListInterestTags()
		if err != nil {
			return nil, err
		}
		vocabulary := make(map[string]bool, len(known))
		for _, t := range known {
			vocabulary[t.Name] = true
		}
		for _, tag := range tags {
			if !vocabulary[tag] {
				return nil, util.ErrUnknownInterestTag
			}
		}
		user.InterestTags = dedupe(tags)
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListInterestVocabulary() ([]model.InterestTag, error) {
	return s.UserRepo.ListInterestTags()
}

func isPreferenceCategory(name string) bool {
	for _, c := range model.PreferenceCategories() {
		if string(c) == name {
			return true
		}
	}
	return false
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
