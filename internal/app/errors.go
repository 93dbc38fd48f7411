package app

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the services that is not an internal
// failure wraps exactly one of these; the transport layer maps them to status
// codes with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("not authorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

var (
	ErrInvalidInput       = fmt.Errorf("%w: invalid input", ErrValidation)
	ErrInvalidUsername    = fmt.Errorf("%w: username is required", ErrValidation)
	ErrInvalidPassword    = fmt.Errorf("%w: password is required and must be at most 72 bytes", ErrValidation)
	ErrInvalidRating      = fmt.Errorf("%w: rating must be an integer between 1 and 5", ErrValidation)
	ErrEmptyReviewText    = fmt.Errorf("%w: review text is required", ErrValidation)
	ErrEmptyCommentText   = fmt.Errorf("%w: comment text is required", ErrValidation)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
	ErrNotOwner           = fmt.Errorf("%w: resource belongs to another user", ErrForbidden)
	ErrUserNotFound       = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrItemNotFound       = fmt.Errorf("%w: item not found", ErrNotFound)
	ErrReviewNotFound     = fmt.Errorf("%w: review not found", ErrNotFound)
	ErrCommentNotFound    = fmt.Errorf("%w: comment not found", ErrNotFound)
	ErrUsernameExists     = fmt.Errorf("%w: username already exists", ErrConflict)
	ErrReviewExists       = fmt.Errorf("%w: user already reviewed this item", ErrConflict)
	ErrCommentExists      = fmt.Errorf("%w: user already commented on this review", ErrConflict)
)
