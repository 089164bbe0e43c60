package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"conduit-backend/internal/domains/article/model"
	"conduit-backend/internal/domains/article/repository"
	"conduit-backend/internal/shared/utils"
)

type articleService struct {
	repo repository.ArticleRepository
}

func NewArticleService(repo repository.ArticleRepository) ArticleService {
	return &articleService{repo: repo}
}

func (s *articleService) Get(
	ctx context.Context,
	slug string,
	viewerID uuid.UUID,
) (*model.ArticleView, error) {
	return s.repo.GetBySlug(ctx, slug, viewerID)
}

func (s *articleService) List(
	ctx context.Context,
	filter *model.ArticleFilter,
	viewerID uuid.UUID,
) ([]model.ArticleView, error) {
	filter.Normalize()
	return s.repo.List(ctx, filter, viewerID)
}

func (s *articleService) Feed(
	ctx context.Context,
	viewerID uuid.UUID,
	limit, offset int,
) ([]model.ArticleView, error) {
	if limit <= 0 {
		limit = model.DefaultLimit
	}
	if offset < 0 {
		offset = model.DefaultOffset
	}
	return s.repo.Feed(ctx, viewerID, limit, offset)
}

func (s *articleService) Create(
	ctx context.Context,
	authorID uuid.UUID,
	req *model.CreateArticleRequest,
) (*model.ArticleView, error) {
	// Validation happens before any store access.
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entity := &model.Article{
		ID:          uuid.New(),
		Slug:        utils.GenerateSlug(req.Article.Title),
		Title:       req.Article.Title,
		Description: req.Article.Description,
		Body:        req.Article.Body,
		AuthorID:    authorID,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, entity, req.Article.TagList); err != nil {
		return nil, err
	}

	return s.repo.GetBySlug(ctx, entity.Slug, authorID)
}

func (s *articleService) Update(
	ctx context.Context,
	authorID uuid.UUID,
	slug string,
	req *model.UpdateArticleRequest,
) (*model.ArticleView, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	changes := &model.ArticleChanges{
		Title:       req.Article.Title,
		Description: req.Article.Description,
		Body:        req.Article.Body,
	}

	// A new title moves the article to the slug derived from it.
	if req.Article.Title != "" {
		changes.Slug = utils.GenerateSlug(req.Article.Title)
	}

	newSlug, err := s.repo.Update(ctx, slug, authorID, changes)
	if err != nil {
		return nil, err
	}

	return s.repo.GetBySlug(ctx, newSlug, authorID)
}

func (s *articleService) Delete(
	ctx context.Context,
	authorID uuid.UUID,
	slug string,
) error {
	return s.repo.Delete(ctx, slug, authorID)
}

func (s *articleService) Favorite(
	ctx context.Context,
	userID uuid.UUID,
	slug string,
) (*model.ArticleView, error) {
	if err := s.repo.Favorite(ctx, slug, userID); err != nil {
		return nil, err
	}
	return s.repo.GetBySlug(ctx, slug, userID)
}

func (s *articleService) Unfavorite(
	ctx context.Context,
	userID uuid.UUID,
	slug string,
) (*model.ArticleView, error) {
	if err := s.repo.Unfavorite(ctx, slug, userID); err != nil {
		return nil, err
	}
	return s.repo.GetBySlug(ctx, slug, userID)
}
