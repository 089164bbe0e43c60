package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	tags  []string
	calls int
	err   error
}

func (f *fakeRepository) List(context.Context) ([]string, error) {
	f.calls++
	return f.tags, f.err
}

// memoryCache is an in-process stand-in for redis. Values go through the same
// JSON round-trip as the real implementation.
type memoryCache struct {
	entries map[string][]byte
	err     error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	data, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if m.err != nil {
		return m.err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = data
	return nil
}

func (m *memoryCache) Ping(context.Context) error { return m.err }

func (m *memoryCache) Increment(context.Context, string) (int64, error) { return 1, m.err }

func (m *memoryCache) Expire(context.Context, string, time.Duration) error { return m.err }

func TestListPopulatesCache(t *testing.T) {
	repo := &fakeRepository{tags: []string{"dragons", "go"}}
	mc := newMemoryCache()
	svc := NewTagService(repo, mc)

	tags, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"dragons", "go"}, tags)
	assert.Contains(t, mc.entries, tagCacheKey)
}

func TestListServedFromCache(t *testing.T) {
	repo := &fakeRepository{tags: []string{"dragons"}}
	mc := newMemoryCache()
	svc := NewTagService(repo, mc)

	_, err := svc.List(context.Background())
	require.NoError(t, err)

	repo.tags = []string{"dragons", "fresh"}
	tags, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"dragons"}, tags, "second read comes from cache")
	assert.Equal(t, 1, repo.calls)
}

func TestListFallsThroughOnCacheError(t *testing.T) {
	repo := &fakeRepository{tags: []string{"go"}}
	mc := newMemoryCache()
	mc.err = errors.New("redis down")
	svc := NewTagService(repo, mc)

	tags, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, tags)
	assert.Equal(t, 1, repo.calls)
}
