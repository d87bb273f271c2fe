package service

import (
	"testing"

	"faculty_hub_backend/internal/model"
	"faculty_hub_backend/internal/repository"
	"faculty_hub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCommentService(db *gorm.DB) *CommentService {
	return NewCommentService(
		repository.NewCommentRepository(db),
		repository.NewFacultyRepository(db),
	)
}

func TestCommentCreateAndThread(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	f := createFaculty(t, db, "Asha Rao", model.DeptSCOPE)
	user := createStudent(t, db, "s1@uni.test")

	root, err := svc.Create(user, f.ID, "Great lectures", nil)
	require.NoError(t, err)
	assert.Equal(t, user.Name, root.UserName)

	reply, err := svc.Create(user, f.ID, "Agreed", &root.ID)
	require.NoError(t, err)
	require.NotNil(t, reply.ParentCommentID)
	assert.Equal(t, root.ID, *reply.ParentCommentID)

	comments, err := svc.ListForFaculty(f.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 2)
}

func TestCommentCreateRejectsBadTargets(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	f := createFaculty(t, db, "Asha Rao", model.DeptSCOPE)
	other := createFaculty(t, db, "Bilal Khan", model.DeptSENSE)
	user := createStudent(t, db, "s1@uni.test")

	_, err := svc.Create(user, "no-such-id", "hello", nil)
	assert.ErrorIs(t, err, util.ErrFacultyNotFound)

	missing := "no-such-comment"
	_, err = svc.Create(user, f.ID, "hello", &missing)
	assert.ErrorIs(t, err, util.ErrCommentNotFound)

	// A reply must stay on the same faculty page as its parent.
	root, err := svc.Create(user, f.ID, "root", nil)
	require.NoError(t, err)
	_, err = svc.Create(user, other.ID, "cross reply", &root.ID)
	assert.ErrorIs(t, err, util.ErrCommentNotFound)
}

func TestCommentDeletePermissions(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	f := createFaculty(t, db, "Asha Rao", model.DeptSCOPE)
	author := createStudent(t, db, "author@uni.test")
	stranger := createStudent(t, db, "stranger@uni.test")

	comment, err := svc.Create(author, f.ID, "mine", nil)
	require.NoError(t, err)

	err = svc.Delete(comment.ID, stranger.ID, model.Student)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	// Admins may remove any comment.
	require.NoError(t, svc.Delete(comment.ID, stranger.ID, model.Admin))

	err = svc.Delete(comment.ID, author.ID, model.Student)
	assert.ErrorIs(t, err, util.ErrCommentNotFound)
}
