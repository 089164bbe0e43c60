package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"conduit-backend/internal/domains/profile/model"
	"conduit-backend/pkg/logger"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) ProfileRepository {
	return &postgresRepository{pool: pool}
}

// ============================================================
// READ: GetByUsername
// ============================================================
func (r *postgresRepository) GetByUsername(
	ctx context.Context,
	username string,
	viewerID uuid.UUID,
) (*model.Profile, error) {
	const query = `
		SELECT
			u.username, u.bio, u.image,
			(SELECT COUNT(*) FROM follows fw
				WHERE fw.follower_id = $1 AND fw.following_id = u.id)
		FROM users u
		WHERE u.username = $2`

	profile := &model.Profile{}
	var following int

	err := r.pool.QueryRow(ctx, query, viewerID, username).Scan(
		&profile.Username,
		&profile.Bio,
		&profile.Image,
		&following,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProfileNotFound
		}
		logger.Error("GetByUsername: database error", err)
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profile.Following = following > 0

	return profile, nil
}

// ============================================================
// WRITE: Follow / Unfollow
// ============================================================
func (r *postgresRepository) Follow(
	ctx context.Context,
	followerID uuid.UUID,
	username string,
) error {
	targetID, err := r.resolveUsername(ctx, username)
	if err != nil {
		return err
	}

	if targetID == followerID {
		return model.ErrSelfFollow
	}

	// Idempotent: following twice is a no-op.
	const query = `
		INSERT INTO follows (follower_id, following_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`

	if _, err := r.pool.Exec(ctx, query, followerID, targetID); err != nil {
		logger.Error("Follow: database error", err)
		return fmt.Errorf("failed to follow user: %w", err)
	}

	return nil
}

func (r *postgresRepository) Unfollow(
	ctx context.Context,
	followerID uuid.UUID,
	username string,
) error {
	targetID, err := r.resolveUsername(ctx, username)
	if err != nil {
		return err
	}

	const query = `
		DELETE FROM follows
		WHERE follower_id = $1 AND following_id = $2`

	if _, err := r.pool.Exec(ctx, query, followerID, targetID); err != nil {
		logger.Error("Unfollow: database error", err)
		return fmt.Errorf("failed to unfollow user: %w", err)
	}

	return nil
}

func (r *postgresRepository) resolveUsername(ctx context.Context, username string) (uuid.UUID, error) {
	const query = `SELECT id FROM users WHERE username = $1`

	var userID uuid.UUID
	if err := r.pool.QueryRow(ctx, query, username).Scan(&userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, model.ErrProfileNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	return userID, nil
}
