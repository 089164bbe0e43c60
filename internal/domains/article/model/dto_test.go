package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateArticleRequestValidate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := CreateArticleRequest{
			Article: CreateArticleData{
				Title:       "How to train your dragon",
				Description: "Ever wonder how?",
				Body:        "You have to believe",
				TagList:     []string{"reactjs", "angularjs", "dragons"},
			},
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing title is rejected", func(t *testing.T) {
		req := CreateArticleRequest{
			Article: CreateArticleData{
				Description: "no title here",
				Body:        "body",
			},
		}
		assert.Error(t, req.Validate())
	})

	t.Run("empty tag is rejected", func(t *testing.T) {
		req := CreateArticleRequest{
			Article: CreateArticleData{
				Title:   "Title",
				TagList: []string{""},
			},
		}
		assert.Error(t, req.Validate())
	})
}

func TestUpdateArticleRequestValidate(t *testing.T) {
	// Every field is optional on update.
	req := UpdateArticleRequest{}
	assert.NoError(t, req.Validate())

	req.Article.Title = "New title"
	assert.NoError(t, req.Validate())
}

func TestArticleFilterNormalize(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"defaults applied", 0, 0, 20, 0},
		{"negative values reset", -5, -1, 20, 0},
		{"explicit values kept", 5, 40, 5, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &ArticleFilter{Limit: tt.limit, Offset: tt.offset}
			f.Normalize()
			assert.Equal(t, tt.wantLimit, f.Limit)
			assert.Equal(t, tt.wantOffset, f.Offset)
		})
	}
}
