package service

import (
	"context"
	"testing"

	"faculty_hub_backend/internal/model"
	"faculty_hub_backend/internal/repository"
	"faculty_hub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFacultyService(db *gorm.DB) *FacultyService {
	return NewFacultyService(
		repository.NewFacultyRepository(db),
		repository.NewRatingRepository(db),
		NewAggregateCache(nil),
	)
}

func TestParseDepartment(t *testing.T) {
	d, ok := ParseDepartment(" scope ")
	assert.True(t, ok)
	assert.Equal(t, model.DeptSCOPE, d)

	_, ok = ParseDepartment("ARTS")
	assert.False(t, ok)

	d, ok = ParseDepartment("")
	assert.True(t, ok)
	assert.Equal(t, model.Department(""), d)
}

func TestFacultyListFiltersAndAnnotates(t *testing.T) {
	db := newTestDB(t)
	svc := newFacultyService(db)
	ratings := newRatingService(db)

	scope := createFaculty(t, db, "Asha Rao", model.DeptSCOPE)
	createFaculty(t, db, "Bilal Khan", model.DeptSENSE)
	submitOverall(t, ratings, 1, scope.ID, 5)

	views, err := svc.List("SCOPE")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, scope.ID, views[0].ID)
	assert.InDelta(t, 5.0, views[0].AvgRatings[model.CategoryOverall], 1e-9)
	assert.Equal(t, 1, views[0].RatingCounts[model.CategoryOverall])
	// Unrated axes report zeros instead of being absent.
	assert.Equal(t, 0, views[0].RatingCounts[model.CategoryTeaching])
	assert.Zero(t, views[0].AvgRatings[model.CategoryTeaching])
}

func TestFacultyListUnknownDepartmentIsEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := newFacultyService(db)
	createFaculty(t, db, "Asha Rao", model.DeptSCOPE)

	views, err := svc.List("HOGWARTS")
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestFacultyGetNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newFacultyService(db)

	_, err := svc.Get(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, util.ErrFacultyNotFound)
}

func TestFacultyCreateValidatesDepartment(t *testing.T) {
	db := newTestDB(t)
	svc := newFacultyService(db)

	err := svc.Create(&model.Faculty{Name: "X", Department: "ARTS", Designation: "Professor"})
	assert.ErrorIs(t, err, util.ErrInvalidDepartment)
}

func TestFacultyDeleteRemovesRatings(t *testing.T) {
	db := newTestDB(t)
	svc := newFacultyService(db)
	ratings := newRatingService(db)

	f := createFaculty(t, db, "Asha Rao", model.DeptSCOPE)
	submitOverall(t, ratings, 1, f.ID, 4)

	require.NoError(t, svc.Delete(context.Background(), f.ID))

	_, err := svc.Get(context.Background(), f.ID)
	assert.ErrorIs(t, err, util.ErrFacultyNotFound)

	var count int64
	db.Model(&model.Rating{}).Where("faculty_id = ?", f.ID).Count(&count)
	assert.Zero(t, count)
}

func TestFacultyUpdatePartialFields(t *testing.T) {
	db := newTestDB(t)
	svc := newFacultyService(db)
	f := createFaculty(t, db, "Asha Rao", model.DeptSCOPE)

	designation := "Professor"
	updated, err := svc.Update(f.ID, FacultyUpdate{Designation: &designation})
	require.NoError(t, err)
	assert.Equal(t, "Professor", updated.Designation)
	assert.Equal(t, "Asha Rao", updated.Name)

	bad := model.Department("ARTS")
	_, err = svc.Update(f.ID, FacultyUpdate{Department: &bad})
	assert.ErrorIs(t, err, util.ErrInvalidDepartment)
}
