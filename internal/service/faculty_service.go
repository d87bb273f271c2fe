package service

import (
	"context"
	"errors"
	"strings"

	"faculty_hub_backend/internal/engine"
	"faculty_hub_backend/internal/model"
	"faculty_hub_backend/internal/repository"
	"faculty_hub_backend/internal/util"

	"gorm.io/gorm"
)

type FacultyService struct {
	FacultyRepo *repository.FacultyRepository
	RatingRepo  *repository.RatingRepository
	Cache       *AggregateCache
}

func NewFacultyService(facultyRepo *repository.FacultyRepository, ratingRepo *repository.RatingRepository, cache *AggregateCache) *FacultyService {
	return &FacultyService{
		FacultyRepo: facultyRepo,
		RatingRepo:  ratingRepo,
		Cache:       cache,
	}
}

// FacultyView is a directory entry annotated with aggregates recomputed from
// the live ratings. Categories with no ratings report mean 0 and count 0.
// swagger:model FacultyView
type FacultyView struct {
	model.Faculty
	AvgRatings   map[model.Category]float64 `json:"avgRatings"`
	RatingCounts map[model.Category]int     `json:"ratingCounts"`
}

func newFacultyView(faculty model.Faculty, stats map[model.Category]engine.CategoryStats) FacultyView {
	view := FacultyView{
		Faculty:      faculty,
		AvgRatings:   make(map[model.Category]float64, 4),
		RatingCounts: make(map[model.Category]int, 4),
	}
	for _, c := range model.AllCategories() {
		s := stats[c]
		view.AvgRatings[c] = s.Mean
		view.RatingCounts[c] = s.Count
	}
	return view
}

// ParseDepartment resolves a query value to a department, case-insensitively.
// The second return is false for values outside the closed set.
func ParseDepartment(raw string) (model.Department, bool) {
	if raw == "" {
		return "", true
	}
	d := model.Department(strings.ToUpper(strings.TrimSpace(raw)))
	if d.Valid() {
		return d, true
	}
	return "", false
}

// List returns the annotated directory. An unknown department is an empty
// result, not an error: no data is a valid state for list queries.
func (s *FacultyService) List(department string) ([]FacultyView, error) {
	dept, ok := ParseDepartment(department)
	if !ok {
		return []FacultyView{}, nil
	}

	faculty, err := s.FacultyRepo.List(dept)
	if err != nil {
		return nil, err
	}

	ratings, err := s.RatingRepo.ListAll()
	if err != nil {
		return nil, err
	}

	views := make([]FacultyView, 0, len(faculty))
	for _, f := range faculty {
		views = append(views, newFacultyView(f, engine.Aggregate(ratings[f.ID])))
	}
	return views, nil
}

// Get returns a single annotated record; a missing id is a not-found error.
// Single-faculty stats go through the write-invalidated cache.
func (s *FacultyService) Get(ctx context.Context, id string) (*FacultyView, error) {
	faculty, err := s.FacultyRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrFacultyNotFound
	}
	if err != nil {
		return nil, err
	}

	stats, ok := s.Cache.Get(ctx, id)
	if !ok {
		ratings, err := s.RatingRepo.ListForFaculty(id)
		if err != nil {
			return nil, err
		}
		stats = engine.Aggregate(ratings)
		s.Cache.Set(ctx, id, stats)
	}

	view := newFacultyView(*faculty, stats)
	return &view, nil
}

func (s *FacultyService) Create(faculty *model.Faculty) error {
	if !faculty.Department.Valid() {
		return util.ErrInvalidDepartment
	}
	return s.FacultyRepo.Create(faculty)
}

// FacultyUpdate holds the mutable fields; nil means unchanged.
type FacultyUpdate struct {
	Name              *string           `json:"name"`
	Department        *model.Department `json:"department"`
	Designation       *string           `json:"designation"`
	ImageURL          *string           `json:"imageUrl"`
	ScholarProfile    *string           `json:"scholarProfile"`
	ResearchInterests *string           `json:"researchInterests"`
}

func (s *FacultyService) Update(id string, update FacultyUpdate) (*model.Faculty, error) {
	faculty, err := s.FacultyRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrFacultyNotFound
	}
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		faculty.Name = *update.Name
	}
	if update.Department != nil {
		if !update.Department.Valid() {
			return nil, util.ErrInvalidDepartment
		}
		faculty.Department = *update.Department
	}
	if update.Designation != nil {
		faculty.Designation = *update.Designation
	}
	if update.ImageURL != nil {
		faculty.ImageURL = *update.ImageURL
	}
	if update.ScholarProfile != nil {
		faculty.ScholarProfile = *update.ScholarProfile
	}
	if update.ResearchInterests != nil {
		faculty.ResearchInterests = *update.ResearchInterests
	}

	if err := s.FacultyRepo.Update(faculty); err != nil {
		return nil, err
	}
	return faculty, nil
}

func (s *FacultyService) Delete(ctx context.Context, id string) error {
	_, err := s.FacultyRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrFacultyNotFound
	}
	if err != nil {
		return err
	}

	if err := s.FacultyRepo.Delete(id); err != nil {
		return err
	}
	return s.Cache.Invalidate(ctx, id)
}
