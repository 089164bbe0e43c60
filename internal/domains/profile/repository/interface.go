package repository

import (
	"context"

	"github.com/google/uuid"

	"conduit-backend/internal/domains/profile/model"
)

// ProfileRepository reads profiles relative to a viewer and maintains the
// follow associations the article feed is built on.
type ProfileRepository interface {
	GetByUsername(ctx context.Context, username string, viewerID uuid.UUID) (*model.Profile, error)
	Follow(ctx context.Context, followerID uuid.UUID, username string) error
	Unfollow(ctx context.Context, followerID uuid.UUID, username string) error
}
