package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidRole      = errors.New("invalid class code or role")
	ErrForbidden        = errors.New("not enough rights")
	ErrValidation       = errors.New("validation error")

	ErrQuestionNotFound    = errors.New("question doesn't exist")
	ErrAlreadyAnswered     = errors.New("question already answered")
	ErrGalleryItemNotFound = errors.New("gallery item doesn't exist")
)
