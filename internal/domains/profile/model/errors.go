package model

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrSelfFollow      = errors.New("cannot follow yourself")
)

// Error codes for API responses
const (
	ErrCodeProfileNotFound = "PROFILE_001"
	ErrCodeSelfFollow      = "PROFILE_002"
)
