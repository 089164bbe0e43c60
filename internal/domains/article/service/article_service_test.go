package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conduit-backend/internal/domains/article/model"
)

// fakeRepository records calls and serves canned views.
type fakeRepository struct {
	views map[string]*model.ArticleView

	createdEntity *model.Article
	createdTags   []string
	createErr     error

	updateChanges *model.ArticleChanges
	updateSlug    string
	updateErr     error

	deletedSlug string

	favoritedSlug   string
	unfavoritedSlug string

	lastViewerID uuid.UUID

	feedLimit  int
	feedOffset int

	listFilter *model.ArticleFilter
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{views: map[string]*model.ArticleView{}}
}

func (f *fakeRepository) GetBySlug(_ context.Context, slug string, viewerID uuid.UUID) (*model.ArticleView, error) {
	f.lastViewerID = viewerID
	if view, ok := f.views[slug]; ok {
		return view, nil
	}
	return nil, model.ErrArticleNotFound
}

func (f *fakeRepository) List(_ context.Context, filter *model.ArticleFilter, viewerID uuid.UUID) ([]model.ArticleView, error) {
	f.listFilter = filter
	f.lastViewerID = viewerID
	return []model.ArticleView{}, nil
}

func (f *fakeRepository) Feed(_ context.Context, viewerID uuid.UUID, limit, offset int) ([]model.ArticleView, error) {
	f.lastViewerID = viewerID
	f.feedLimit = limit
	f.feedOffset = offset
	return []model.ArticleView{}, nil
}

func (f *fakeRepository) Create(_ context.Context, entity *model.Article, tags []string) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.createdEntity = entity
	f.createdTags = tags
	f.views[entity.Slug] = &model.ArticleView{Slug: entity.Slug, Title: entity.Title}
	return nil
}

func (f *fakeRepository) Update(_ context.Context, slug string, _ uuid.UUID, changes *model.ArticleChanges) (string, error) {
	if f.updateErr != nil {
		return "", f.updateErr
	}
	f.updateChanges = changes
	if f.updateSlug != "" {
		return f.updateSlug, nil
	}
	return slug, nil
}

func (f *fakeRepository) Delete(_ context.Context, slug string, _ uuid.UUID) error {
	f.deletedSlug = slug
	return nil
}

func (f *fakeRepository) Favorite(_ context.Context, slug string, _ uuid.UUID) error {
	if _, ok := f.views[slug]; !ok {
		return model.ErrArticleNotFound
	}
	f.favoritedSlug = slug
	return nil
}

func (f *fakeRepository) Unfavorite(_ context.Context, slug string, _ uuid.UUID) error {
	if _, ok := f.views[slug]; !ok {
		return model.ErrArticleNotFound
	}
	f.unfavoritedSlug = slug
	return nil
}

func TestCreateDerivesSlugFromTitle(t *testing.T) {
	repo := newFakeRepository()
	svc := NewArticleService(repo)
	author := uuid.New()

	view, err := svc.Create(context.Background(), author, &model.CreateArticleRequest{
		Article: model.CreateArticleData{
			Title:   "How to train your dragon",
			Body:    "You have to believe",
			TagList: []string{"dragons", "training"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "how-to-train-your-dragon", view.Slug)
	assert.Equal(t, "how-to-train-your-dragon", repo.createdEntity.Slug)
	assert.Equal(t, author, repo.createdEntity.AuthorID)
	assert.Equal(t, []string{"dragons", "training"}, repo.createdTags)
	assert.Nil(t, repo.createdEntity.UpdatedAt)
}

func TestCreateRejectsMissingTitleBeforeStore(t *testing.T) {
	repo := newFakeRepository()
	svc := NewArticleService(repo)

	_, err := svc.Create(context.Background(), uuid.New(), &model.CreateArticleRequest{
		Article: model.CreateArticleData{Body: "body only"},
	})

	require.Error(t, err)
	assert.Nil(t, repo.createdEntity, "store must not be touched on validation failure")
}

func TestCreateSurfacesDuplicateSlug(t *testing.T) {
	repo := newFakeRepository()
	repo.createErr = model.ErrDuplicateSlug
	svc := NewArticleService(repo)

	_, err := svc.Create(context.Background(), uuid.New(), &model.CreateArticleRequest{
		Article: model.CreateArticleData{Title: "Taken Title"},
	})

	assert.ErrorIs(t, err, model.ErrDuplicateSlug)
}

func TestUpdateWithNewTitleMovesSlug(t *testing.T) {
	repo := newFakeRepository()
	repo.updateSlug = "brand-new-title"
	repo.views["brand-new-title"] = &model.ArticleView{Slug: "brand-new-title"}
	svc := NewArticleService(repo)

	view, err := svc.Update(context.Background(), uuid.New(), "old-slug", &model.UpdateArticleRequest{
		Article: model.UpdateArticleData{Title: "Brand New Title"},
	})

	require.NoError(t, err)
	assert.Equal(t, "brand-new-title", repo.updateChanges.Slug)
	assert.Equal(t, "brand-new-title", view.Slug, "re-read happens at the new slug")
}

func TestUpdateWithoutTitleKeepsSlug(t *testing.T) {
	repo := newFakeRepository()
	repo.views["stable-slug"] = &model.ArticleView{Slug: "stable-slug"}
	svc := NewArticleService(repo)

	view, err := svc.Update(context.Background(), uuid.New(), "stable-slug", &model.UpdateArticleRequest{
		Article: model.UpdateArticleData{Body: "fresh body"},
	})

	require.NoError(t, err)
	assert.Empty(t, repo.updateChanges.Slug)
	assert.Equal(t, "stable-slug", view.Slug)
}

func TestUpdateNotFoundPassesThrough(t *testing.T) {
	repo := newFakeRepository()
	repo.updateErr = model.ErrArticleNotFound
	svc := NewArticleService(repo)

	_, err := svc.Update(context.Background(), uuid.New(), "nope", &model.UpdateArticleRequest{})
	assert.ErrorIs(t, err, model.ErrArticleNotFound)
}

func TestFavoriteReReadsArticle(t *testing.T) {
	repo := newFakeRepository()
	repo.views["liked"] = &model.ArticleView{Slug: "liked", Favorited: true, FavoritesCount: 1}
	svc := NewArticleService(repo)
	viewer := uuid.New()

	view, err := svc.Favorite(context.Background(), viewer, "liked")

	require.NoError(t, err)
	assert.Equal(t, "liked", repo.favoritedSlug)
	assert.True(t, view.Favorited)
	assert.Equal(t, viewer, repo.lastViewerID)
}

func TestFavoriteUnknownSlugIsNotFound(t *testing.T) {
	repo := newFakeRepository()
	svc := NewArticleService(repo)

	_, err := svc.Favorite(context.Background(), uuid.New(), "missing")
	assert.ErrorIs(t, err, model.ErrArticleNotFound)
}

func TestFeedAppliesPaginationDefaults(t *testing.T) {
	repo := newFakeRepository()
	svc := NewArticleService(repo)

	_, err := svc.Feed(context.Background(), uuid.New(), 0, -3)

	require.NoError(t, err)
	assert.Equal(t, model.DefaultLimit, repo.feedLimit)
	assert.Equal(t, model.DefaultOffset, repo.feedOffset)
}

func TestListNormalizesFilter(t *testing.T) {
	repo := newFakeRepository()
	svc := NewArticleService(repo)

	_, err := svc.List(context.Background(), &model.ArticleFilter{Tag: "dragons"}, uuid.Nil)

	require.NoError(t, err)
	assert.Equal(t, model.DefaultLimit, repo.listFilter.Limit)
	assert.Equal(t, uuid.Nil, repo.lastViewerID)
}
