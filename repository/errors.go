package repository

import "errors"

// Sentinel errors the handlers translate to HTTP status codes.
var (
	ErrEmailExists    = errors.New("email already exists")
	ErrUserNotFound   = errors.New("user not found")
	ErrRecordNotFound = errors.New("record not found")
)
