package service

import (
	"context"

	"github.com/google/uuid"

	"conduit-backend/internal/domains/article/model"
)

// ArticleService orchestrates article reads and mutations. Every mutation
// returns the re-read aggregate so callers always see derived state
// (favoritesCount, tagList, viewer booleans) computed from storage.
type ArticleService interface {
	Get(ctx context.Context, slug string, viewerID uuid.UUID) (*model.ArticleView, error)
	List(ctx context.Context, filter *model.ArticleFilter, viewerID uuid.UUID) ([]model.ArticleView, error)
	Feed(ctx context.Context, viewerID uuid.UUID, limit, offset int) ([]model.ArticleView, error)

	Create(ctx context.Context, authorID uuid.UUID, req *model.CreateArticleRequest) (*model.ArticleView, error)
	Update(ctx context.Context, authorID uuid.UUID, slug string, req *model.UpdateArticleRequest) (*model.ArticleView, error)
	Delete(ctx context.Context, authorID uuid.UUID, slug string) error

	Favorite(ctx context.Context, userID uuid.UUID, slug string) (*model.ArticleView, error)
	Unfavorite(ctx context.Context, userID uuid.UUID, slug string) (*model.ArticleView, error)
}
