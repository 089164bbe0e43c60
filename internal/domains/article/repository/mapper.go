package repository

import (
	"strings"

	"conduit-backend/internal/domains/article/model"
)

// rowScanner is satisfied by both pgx.Row and pgx.Rows, so single reads and
// list reads share one mapper.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanArticle maps one articleSelect row into the aggregate. The follow and
// favorite counts arrive as integers; nonzero means true.
func scanArticle(row rowScanner) (*model.ArticleView, error) {
	var (
		view           model.ArticleView
		following      int
		favoritesCount int
		favorited      int
		tagCSV         *string
	)

	err := row.Scan(
		&view.Slug,
		&view.Title,
		&view.Description,
		&view.Body,
		&view.CreatedAt,
		&view.UpdatedAt,
		&view.Author.Username,
		&view.Author.Bio,
		&view.Author.Image,
		&following,
		&favoritesCount,
		&favorited,
		&tagCSV,
	)
	if err != nil {
		return nil, err
	}

	view.Author.Following = following > 0
	view.Favorited = favorited > 0
	view.FavoritesCount = favoritesCount
	view.TagList = splitTags(tagCSV)

	return &view, nil
}

// splitTags turns the aggregated csv into a tag list. An article without
// tags yields an empty slice, never [""].
func splitTags(csv *string) []string {
	if csv == nil || *csv == "" {
		return []string{}
	}
	return strings.Split(*csv, ",")
}
