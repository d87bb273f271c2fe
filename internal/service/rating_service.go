package service

import (
	"context"
	"errors"

	"faculty_hub_backend/internal/model"
	"faculty_hub_backend/internal/repository"
	"faculty_hub_backend/internal/util"
	"faculty_hub_backend/pkg/monitoring"

	"gorm.io/gorm"
)

type RatingService struct {
	RatingRepo  *repository.RatingRepository
	FacultyRepo *repository.FacultyRepository
	Cache       *AggregateCache
}

func NewRatingService(ratingRepo *repository.RatingRepository, facultyRepo *repository.FacultyRepository, cache *AggregateCache) *RatingService {
	return &RatingService{
		RatingRepo:  ratingRepo,
		FacultyRepo: facultyRepo,
		Cache:       cache,
	}
}

// validate rejects a submission before anything is persisted: overall is
// mandatory and every present value must be in [1,5].
func validate(submit *model.RatingSubmit) error {
	if submit.Overall == 0 {
		return util.ErrOverallRequired
	}
	for _, v := range []*int{&submit.Overall, submit.Teaching, submit.Attendance, submit.DoubtClarification} {
		if v != nil && (*v < 1 || *v > 5) {
			return util.ErrRatingOutOfRange
		}
	}
	return nil
}

// Submit upserts the student's single live rating for a faculty member and
// synchronously invalidates that faculty's cached aggregates.
func (s *RatingService) Submit(ctx context.Context, studentID uint, facultyID string, submit *model.RatingSubmit) (*model.Rating, error) {
	if err := validate(submit); err != nil {
		monitoring.RatingSubmissions.WithLabelValues("rejected").Inc()
		return nil, err
	}

	if _, err := s.FacultyRepo.FindByID(facultyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrFacultyNotFound
		}
		return nil, err
	}

	rating := &model.Rating{
		StudentID:          studentID,
		FacultyID:          facultyID,
		Overall:            submit.Overall,
		Teaching:           submit.Teaching,
		Attendance:         submit.Attendance,
		DoubtClarification: submit.DoubtClarification,
	}

	if err := s.RatingRepo.Upsert(rating); err != nil {
		return nil, err
	}

	if err := s.Cache.Invalidate(ctx, facultyID); err != nil {
		return nil, err
	}

	monitoring.RatingSubmissions.WithLabelValues("accepted").Inc()
	return rating, nil
}

// MyRating returns the live record for (student, faculty); nil when the
// student has not rated this faculty member, which is not an error.
func (s *RatingService) MyRating(studentID uint, facultyID string) (*model.Rating, error) {
	rating, err := s.RatingRepo.FindForStudent(studentID, facultyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rating, nil
}
