package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conduit-backend/internal/domains/profile/model"
)

type fakeRepository struct {
	profiles  map[string]*model.Profile
	follows   map[string]bool
	followErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		profiles: map[string]*model.Profile{},
		follows:  map[string]bool{},
	}
}

func (f *fakeRepository) GetByUsername(_ context.Context, username string, _ uuid.UUID) (*model.Profile, error) {
	p, ok := f.profiles[username]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	view := *p
	view.Following = f.follows[username]
	return &view, nil
}

func (f *fakeRepository) Follow(_ context.Context, _ uuid.UUID, username string) error {
	if f.followErr != nil {
		return f.followErr
	}
	if _, ok := f.profiles[username]; !ok {
		return model.ErrProfileNotFound
	}
	f.follows[username] = true
	return nil
}

func (f *fakeRepository) Unfollow(_ context.Context, _ uuid.UUID, username string) error {
	if _, ok := f.profiles[username]; !ok {
		return model.ErrProfileNotFound
	}
	delete(f.follows, username)
	return nil
}

func TestFollowReturnsFollowingProfile(t *testing.T) {
	repo := newFakeRepository()
	repo.profiles["celeb"] = &model.Profile{Username: "celeb"}
	svc := NewProfileService(repo)

	profile, err := svc.Follow(context.Background(), uuid.New(), "celeb")

	require.NoError(t, err)
	assert.True(t, profile.Following)
}

func TestUnfollowClearsFollowing(t *testing.T) {
	repo := newFakeRepository()
	repo.profiles["celeb"] = &model.Profile{Username: "celeb"}
	repo.follows["celeb"] = true
	svc := NewProfileService(repo)

	profile, err := svc.Unfollow(context.Background(), uuid.New(), "celeb")

	require.NoError(t, err)
	assert.False(t, profile.Following)
}

func TestFollowUnknownUserIsNotFound(t *testing.T) {
	repo := newFakeRepository()
	svc := NewProfileService(repo)

	_, err := svc.Follow(context.Background(), uuid.New(), "ghost")
	assert.ErrorIs(t, err, model.ErrProfileNotFound)
}

func TestSelfFollowPassesThrough(t *testing.T) {
	repo := newFakeRepository()
	repo.profiles["me"] = &model.Profile{Username: "me"}
	repo.followErr = model.ErrSelfFollow
	svc := NewProfileService(repo)

	_, err := svc.Follow(context.Background(), uuid.New(), "me")
	assert.ErrorIs(t, err, model.ErrSelfFollow)
}

func TestGetAnonymousViewer(t *testing.T) {
	repo := newFakeRepository()
	repo.profiles["jake"] = &model.Profile{Username: "jake"}
	svc := NewProfileService(repo)

	profile, err := svc.Get(context.Background(), "jake", uuid.Nil)

	require.NoError(t, err)
	assert.False(t, profile.Following)
}
