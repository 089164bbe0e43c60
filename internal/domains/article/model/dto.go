package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateArticleData is the inner payload of a create request.
type CreateArticleData struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	TagList     []string `json:"tagList"`
}

// CreateArticleRequest is the {"article": {...}} create envelope.
type CreateArticleRequest struct {
	Article CreateArticleData `json:"article"`
}

func (r *CreateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r.Article,
		validation.Field(&r.Article.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Article.Description, validation.Length(0, 2000)),
		validation.Field(&r.Article.TagList, validation.Each(validation.Length(1, 100))),
	)
}

// UpdateArticleData is the inner payload of an update request. Empty fields
// keep the stored values.
type UpdateArticleData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Body        string `json:"body"`
}

// UpdateArticleRequest is the {"article": {...}} update envelope.
type UpdateArticleRequest struct {
	Article UpdateArticleData `json:"article"`
}

func (r *UpdateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r.Article,
		validation.Field(&r.Article.Title, validation.Length(0, 255)),
		validation.Field(&r.Article.Description, validation.Length(0, 2000)),
	)
}

// ArticleResponse is the single-article envelope.
type ArticleResponse struct {
	Article *ArticleView `json:"article"`
}

// ArticlesResponse is the list envelope.
type ArticlesResponse struct {
	Articles      []ArticleView `json:"articles"`
	ArticlesCount int           `json:"articlesCount"`
}
