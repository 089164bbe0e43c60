package repository

import (
	"context"

	"github.com/google/uuid"

	"conduit-backend/internal/domains/article/model"
)

// ArticleRepository is the storage contract for the article aggregate.
// Viewer-relative reads take the viewer id; uuid.Nil is the anonymous viewer
// and matches no follow or favorite row.
type ArticleRepository interface {
	GetBySlug(ctx context.Context, slug string, viewerID uuid.UUID) (*model.ArticleView, error)
	List(ctx context.Context, filter *model.ArticleFilter, viewerID uuid.UUID) ([]model.ArticleView, error)
	Feed(ctx context.Context, viewerID uuid.UUID, limit, offset int) ([]model.ArticleView, error)

	Create(ctx context.Context, entity *model.Article, tags []string) error
	// Update applies non-empty fields of changes to the viewer's article and
	// returns the slug the article lives at afterwards.
	Update(ctx context.Context, slug string, authorID uuid.UUID, changes *model.ArticleChanges) (string, error)
	Delete(ctx context.Context, slug string, authorID uuid.UUID) error

	Favorite(ctx context.Context, slug string, userID uuid.UUID) error
	Unfavorite(ctx context.Context, slug string, userID uuid.UUID) error
}
