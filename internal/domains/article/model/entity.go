package model

import (
	"time"

	"github.com/google/uuid"
)

// Article is the stored row. The aggregate the API serves is ArticleView.
type Article struct {
	ID          uuid.UUID
	Slug        string
	Title       string
	Description string
	Body        string
	AuthorID    uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Author is the embedded profile of an article's author, relative to the
// viewer.
type Author struct {
	Username  string  `json:"username"`
	Bio       *string `json:"bio"`
	Image     *string `json:"image"`
	Following bool    `json:"following"`
}

// ArticleView is the article aggregate the API serves: the article row
// joined with its author profile and the viewer-relative social fields.
type ArticleView struct {
	Slug           string     `json:"slug"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Body           string     `json:"body"`
	TagList        []string   `json:"tagList"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      *time.Time `json:"updatedAt"`
	Favorited      bool       `json:"favorited"`
	FavoritesCount int        `json:"favoritesCount"`
	Author         Author     `json:"author"`
}

// ArticleChanges carries a partial update. An empty string keeps the stored
// value; Slug is only applied when Title is non-empty.
type ArticleChanges struct {
	Title       string
	Slug        string
	Description string
	Body        string
}

// ArticleFilter narrows the global article list. Empty string criteria are
// inactive; all of them are always bound to the one list query.
type ArticleFilter struct {
	Tag       string
	Author    string
	Favorited string
	Limit     int
	Offset    int
}

const (
	DefaultLimit  = 20
	DefaultOffset = 0
)

// Normalize applies pagination defaults.
func (f *ArticleFilter) Normalize() {
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Offset < 0 {
		f.Offset = DefaultOffset
	}
}
