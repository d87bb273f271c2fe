package service

import (
	"context"
	"testing"

	"faculty_hub_backend/internal/model"
	"faculty_hub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitOverall(t *testing.T, svc *RatingService, student uint, facultyID string, value int) {
	t.Helper()
	_, err := svc.Submit(context.Background(), student, facultyID, &model.RatingSubmit{Overall: value})
	require.NoError(t, err)
}

func TestRankValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newRankingService(db)

	_, err := svc.Rank("", "charisma", "")
	assert.ErrorIs(t, err, util.ErrInvalidCategory)

	_, err = svc.Rank("", "overall", "median")
	assert.ErrorIs(t, err, util.ErrInvalidMethod)
}

func TestRankUnknownDepartmentIsEmpty(t *testing.T) {
	db := newTestDB(t)
	ratings := newRatingService(db)
	svc := newRankingService(db)

	f := createFaculty(t, db, "Asha Rao", model.DeptSCOPE)
	submitOverall(t, ratings, 1, f.ID, 5)

	entries, err := svc.Rank("ARTS", "overall", "")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRankExcludesUnratedFaculty(t *testing.T) {
	db := newTestDB(t)
	ratings := newRatingService(db)
	svc := newRankingService(db)

	rated := createFaculty(t, db, "Asha Rao", model.DeptSCOPE)
	createFaculty(t, db, "Bilal Khan", model.DeptSCOPE)
	submitOverall(t, ratings, 1, rated.ID, 4)

	entries, err := svc.Rank("", "overall", "average")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, rated.ID, entries[0].ID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.InDelta(t, 4.0, entries[0].Score, 1e-9)
}

func TestRankWeightedIsDefaultMethod(t *testing.T) {
	db := newTestDB(t)
	ratings := newRatingService(db)
	svc := newRankingService(db)

	f := createFaculty(t, db, "Asha Rao", model.DeptSCOPE)
	submitOverall(t, ratings, 1, f.ID, 5)
	submitOverall(t, ratings, 2, f.ID, 5)

	defaulted, err := svc.Rank("", "overall", "")
	require.NoError(t, err)
	weighted, err := svc.Rank("", "overall", "weighted")
	require.NoError(t, err)

	require.Len(t, defaulted, 1)
	require.Len(t, weighted, 1)
	assert.Equal(t, weighted[0].Score, defaulted[0].Score)
}

func TestRankDepartmentFilterKeepsScores(t *testing.T) {
	db := newTestDB(t)
	ratings := newRatingService(db)
	svc := newRankingService(db)

	scope := createFaculty(t, db, "Asha Rao", model.DeptSCOPE)
	sense := createFaculty(t, db, "Bilal Khan", model.DeptSENSE)
	submitOverall(t, ratings, 1, scope.ID, 5)
	submitOverall(t, ratings, 2, scope.ID, 5)
	submitOverall(t, ratings, 3, sense.ID, 2)

	full, err := svc.Rank("", "overall", "weighted")
	require.NoError(t, err)
	filtered, err := svc.Rank("scope", "overall", "weighted")
	require.NoError(t, err)

	require.Len(t, full, 2)
	require.Len(t, filtered, 1)

	// The filter restricts eligibility only. The global mean stays
	// corpus-wide, so the filtered score is identical, while the rank is
	// re-densified within the scope.
	var fullScore float64
	for _, e := range full {
		if e.ID == scope.ID {
			fullScore = e.Score
		}
	}
	assert.Equal(t, fullScore, filtered[0].Score)
	assert.Equal(t, 1, filtered[0].Rank)
}

func TestRankReflectsResubmission(t *testing.T) {
	db := newTestDB(t)
	ratings := newRatingService(db)
	svc := newRankingService(db)

	a := createFaculty(t, db, "Asha Rao", model.DeptSCOPE)
	b := createFaculty(t, db, "Bilal Khan", model.DeptSCOPE)
	submitOverall(t, ratings, 1, a.ID, 5)
	submitOverall(t, ratings, 2, b.ID, 4)

	first, err := svc.Rank("", "overall", "average")
	require.NoError(t, err)
	assert.Equal(t, a.ID, first[0].ID)

	// The student corrects their rating; the very next query must see it.
	submitOverall(t, ratings, 1, a.ID, 1)

	second, err := svc.Rank("", "overall", "average")
	require.NoError(t, err)
	assert.Equal(t, b.ID, second[0].ID)
}
