package service

import (
	"context"

	"github.com/google/uuid"

	"conduit-backend/internal/domains/profile/model"
	"conduit-backend/internal/domains/profile/repository"
)

// ProfileService reads profiles and toggles follow associations. Follow and
// unfollow return the re-read profile so `following` always reflects
// storage.
type ProfileService interface {
	Get(ctx context.Context, username string, viewerID uuid.UUID) (*model.Profile, error)
	Follow(ctx context.Context, followerID uuid.UUID, username string) (*model.Profile, error)
	Unfollow(ctx context.Context, followerID uuid.UUID, username string) (*model.Profile, error)
}

type profileService struct {
	repo repository.ProfileRepository
}

func NewProfileService(repo repository.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

func (s *profileService) Get(
	ctx context.Context,
	username string,
	viewerID uuid.UUID,
) (*model.Profile, error) {
	return s.repo.GetByUsername(ctx, username, viewerID)
}

func (s *profileService) Follow(
	ctx context.Context,
	followerID uuid.UUID,
	username string,
) (*model.Profile, error) {
	if err := s.repo.Follow(ctx, followerID, username); err != nil {
		return nil, err
	}
	return s.repo.GetByUsername(ctx, username, followerID)
}

func (s *profileService) Unfollow(
	ctx context.Context,
	followerID uuid.UUID,
	username string,
) (*model.Profile, error) {
	if err := s.repo.Unfollow(ctx, followerID, username); err != nil {
		return nil, err
	}
	return s.repo.GetByUsername(ctx, username, followerID)
}
