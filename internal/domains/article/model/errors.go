package model

import "errors"

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrDuplicateSlug   = errors.New("an article with this slug already exists")
)

// Error codes for API responses
const (
	ErrCodeArticleNotFound = "ARTICLE_001"
	ErrCodeDuplicateSlug   = "ARTICLE_002"
	ErrCodeValidation      = "ARTICLE_003"
)
