package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"conduit-backend/internal/domains/article/model"
	"conduit-backend/pkg/database"
	"conduit-backend/pkg/logger"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) ArticleRepository {
	return &postgresRepository{pool: pool}
}

// articleSelect is the one projection every article read goes through.
// $1 is always the viewer id; the follow and favorite subqueries come back
// as counts and the mapper turns them into booleans.
const articleSelect = `
	SELECT
		a.slug, a.title, a.description, a.body, a.created_at, a.updated_at,
		u.username, u.bio, u.image,
		(SELECT COUNT(*) FROM follows fw
			WHERE fw.follower_id = $1 AND fw.following_id = a.author_id),
		(SELECT COUNT(*) FROM favorites fv
			WHERE fv.article_id = a.id),
		(SELECT COUNT(*) FROM favorites fv
			WHERE fv.article_id = a.id AND fv.user_id = $1),
		(SELECT string_agg(t.name, ',' ORDER BY t.name)
			FROM article_tags at2
			JOIN tags t ON t.id = at2.tag_id
			WHERE at2.article_id = a.id)
	FROM articles a
	JOIN users u ON u.id = a.author_id
`

// ============================================================
// READ: GetBySlug
// ============================================================
func (r *postgresRepository) GetBySlug(
	ctx context.Context,
	slug string,
	viewerID uuid.UUID,
) (*model.ArticleView, error) {
	const query = articleSelect + `WHERE a.slug = $2`

	view, err := scanArticle(r.pool.QueryRow(ctx, query, viewerID, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArticleNotFound
		}
		logger.Error("GetBySlug: database error", err)
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	return view, nil
}

// ============================================================
// READ: List
// ============================================================
// One static query serves every filter combination. Each optional criterion
// is compiled as ($n = '' OR <predicate>) so all parameters are always
// bound; an empty string deactivates its criterion.
func (r *postgresRepository) List(
	ctx context.Context,
	filter *model.ArticleFilter,
	viewerID uuid.UUID,
) ([]model.ArticleView, error) {
	const query = articleSelect + `
		WHERE ($2 = '' OR a.id IN (
				SELECT at3.article_id FROM article_tags at3
				JOIN tags t2 ON t2.id = at3.tag_id
				WHERE t2.name = $2))
		AND ($3 = '' OR u.username = $3)
		AND ($4 = '' OR a.id IN (
				SELECT f2.article_id FROM favorites f2
				JOIN users fu ON fu.id = f2.user_id
				WHERE fu.username = $4))
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT $5 OFFSET $6`

	rows, err := r.pool.Query(ctx, query,
		viewerID,
		filter.Tag,
		filter.Author,
		filter.Favorited,
		filter.Limit,
		filter.Offset,
	)
	if err != nil {
		logger.Error("List: query failed", err)
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	return collectArticles(rows, filter.Limit)
}

// ============================================================
// READ: Feed
// ============================================================
func (r *postgresRepository) Feed(
	ctx context.Context,
	viewerID uuid.UUID,
	limit, offset int,
) ([]model.ArticleView, error) {
	const query = articleSelect + `
		WHERE a.author_id IN (
			SELECT following_id FROM follows WHERE follower_id = $1)
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, viewerID, limit, offset)
	if err != nil {
		logger.Error("Feed: query failed", err)
		return nil, fmt.Errorf("failed to load feed: %w", err)
	}
	defer rows.Close()

	return collectArticles(rows, limit)
}

// ============================================================
// WRITE: Create
// ============================================================
// Article row, missing tags and tag associations land in one transaction,
// so a failed association never leaves a half-created article behind.
func (r *postgresRepository) Create(
	ctx context.Context,
	entity *model.Article,
	tags []string,
) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		const insertTag = `
			INSERT INTO tags (id, name)
			VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING`

		for _, tag := range tags {
			if _, err := tx.Exec(ctx, insertTag, uuid.New(), tag); err != nil {
				return fmt.Errorf("failed to upsert tag: %w", err)
			}
		}

		const insertArticle = `
			INSERT INTO articles (id, slug, title, description, body, author_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`

		_, err := tx.Exec(ctx, insertArticle,
			entity.ID,
			entity.Slug,
			entity.Title,
			entity.Description,
			entity.Body,
			entity.AuthorID,
			entity.CreatedAt,
		)
		if err != nil {
			return err
		}

		const insertAssociation = `
			INSERT INTO article_tags (article_id, tag_id)
			SELECT $1, id FROM tags WHERE name = $2
			ON CONFLICT DO NOTHING`

		for _, tag := range tags {
			if _, err := tx.Exec(ctx, insertAssociation, entity.ID, tag); err != nil {
				return fmt.Errorf("failed to associate tag: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "articles_slug_key" {
			logger.Error("Create: duplicate slug", err)
			return model.ErrDuplicateSlug
		}
		logger.Error("Create: database error", err)
		return fmt.Errorf("failed to create article: %w", err)
	}

	return nil
}

// ============================================================
// WRITE: Update
// ============================================================
// One UPDATE covers every field combination: an empty parameter keeps the
// stored value. Scoping by slug AND author folds "missing" and "not yours"
// into the same zero-rows outcome.
func (r *postgresRepository) Update(
	ctx context.Context,
	slug string,
	authorID uuid.UUID,
	changes *model.ArticleChanges,
) (string, error) {
	const query = `
		UPDATE articles
		SET
			title       = CASE WHEN $3 = '' THEN title ELSE $3 END,
			slug        = CASE WHEN $3 = '' THEN slug ELSE $4 END,
			description = CASE WHEN $5 = '' THEN description ELSE $5 END,
			body        = CASE WHEN $6 = '' THEN body ELSE $6 END,
			updated_at  = $7
		WHERE slug = $1 AND author_id = $2
		RETURNING slug`

	var newSlug string
	err := r.pool.QueryRow(ctx, query,
		slug,
		authorID,
		changes.Title,
		changes.Slug,
		changes.Description,
		changes.Body,
		time.Now(),
	).Scan(&newSlug)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", model.ErrArticleNotFound
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "articles_slug_key" {
			logger.Error("Update: duplicate slug", err)
			return "", model.ErrDuplicateSlug
		}

		logger.Error("Update: database error", err)
		return "", fmt.Errorf("failed to update article: %w", err)
	}

	return newSlug, nil
}

// ============================================================
// WRITE: Delete
// ============================================================
// Dependents go first: comments, favorites, tag associations, then the
// article row itself, all in one transaction.
func (r *postgresRepository) Delete(
	ctx context.Context,
	slug string,
	authorID uuid.UUID,
) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		const resolve = `
			SELECT id FROM articles
			WHERE slug = $1 AND author_id = $2`

		var articleID uuid.UUID
		if err := tx.QueryRow(ctx, resolve, slug, authorID).Scan(&articleID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return model.ErrArticleNotFound
			}
			return fmt.Errorf("failed to resolve article: %w", err)
		}

		for _, stmt := range []string{
			`DELETE FROM comments WHERE article_id = $1`,
			`DELETE FROM favorites WHERE article_id = $1`,
			`DELETE FROM article_tags WHERE article_id = $1`,
			`DELETE FROM articles WHERE id = $1`,
		} {
			if _, err := tx.Exec(ctx, stmt, articleID); err != nil {
				return fmt.Errorf("failed to delete article: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, model.ErrArticleNotFound) {
			return err
		}
		logger.Error("Delete: database error", err)
		return err
	}

	return nil
}

// ============================================================
// WRITE: Favorite / Unfavorite
// ============================================================
func (r *postgresRepository) Favorite(
	ctx context.Context,
	slug string,
	userID uuid.UUID,
) error {
	articleID, err := r.resolveSlug(ctx, slug)
	if err != nil {
		return err
	}

	// Idempotent: favoriting twice is a no-op.
	const query = `
		INSERT INTO favorites (article_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`

	if _, err := r.pool.Exec(ctx, query, articleID, userID); err != nil {
		logger.Error("Favorite: database error", err)
		return fmt.Errorf("failed to favorite article: %w", err)
	}

	return nil
}

func (r *postgresRepository) Unfavorite(
	ctx context.Context,
	slug string,
	userID uuid.UUID,
) error {
	articleID, err := r.resolveSlug(ctx, slug)
	if err != nil {
		return err
	}

	const query = `
		DELETE FROM favorites
		WHERE article_id = $1 AND user_id = $2`

	if _, err := r.pool.Exec(ctx, query, articleID, userID); err != nil {
		logger.Error("Unfavorite: database error", err)
		return fmt.Errorf("failed to unfavorite article: %w", err)
	}

	return nil
}

func (r *postgresRepository) resolveSlug(ctx context.Context, slug string) (uuid.UUID, error) {
	const query = `SELECT id FROM articles WHERE slug = $1`

	var articleID uuid.UUID
	if err := r.pool.QueryRow(ctx, query, slug).Scan(&articleID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, model.ErrArticleNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to resolve article: %w", err)
	}

	return articleID, nil
}

func collectArticles(rows pgx.Rows, capacity int) ([]model.ArticleView, error) {
	if capacity < 0 {
		capacity = 0
	}

	views := make([]model.ArticleView, 0, capacity)
	for rows.Next() {
		view, err := scanArticle(rows)
		if err != nil {
			logger.Error("collectArticles: scan error", err)
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		views = append(views, *view)
	}

	if err := rows.Err(); err != nil {
		logger.Error("collectArticles: rows error", err)
		return nil, fmt.Errorf("failed to read articles: %w", err)
	}

	return views, nil
}
