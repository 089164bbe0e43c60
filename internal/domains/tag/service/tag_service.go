package service

import (
	"context"
	"time"

	"conduit-backend/internal/domains/tag/repository"
	"conduit-backend/pkg/cache"
	"conduit-backend/pkg/logger"
)

// The tag vocabulary changes rarely, so the list is served from cache. New
// tags show up once the entry expires.
const (
	tagCacheKey = "tags:all"
	tagCacheTTL = time.Minute
)

type TagService interface {
	List(ctx context.Context) ([]string, error)
}

type tagService struct {
	repo  repository.TagRepository
	cache cache.Cache
}

func NewTagService(repo repository.TagRepository, c cache.Cache) TagService {
	return &tagService{repo: repo, cache: c}
}

func (s *tagService) List(ctx context.Context) ([]string, error) {
	var cached []string
	found, err := s.cache.Get(ctx, tagCacheKey, &cached)
	if err != nil {
		logger.Error("tag cache read failed", err)
	} else if found {
		return cached, nil
	}

	tags, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, tagCacheKey, tags, tagCacheTTL); err != nil {
		logger.Error("tag cache write failed", err)
	}

	return tags, nil
}
