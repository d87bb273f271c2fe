package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrFacultyNotFound    = errors.New("faculty not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrInvalidCategory    = errors.New("invalid rating category")
	ErrInvalidMethod      = errors.New("invalid ranking method")
	ErrInvalidDepartment  = errors.New("invalid department")
	ErrUnknownInterestTag = errors.New("unknown interest tag")
	ErrRatingOutOfRange   = errors.New("rating values must be between 1 and 5")
	ErrOverallRequired    = errors.New("overall rating is required")
)
