package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"conduit-backend/internal/domains/article/model"
	"conduit-backend/internal/domains/article/service"
	"conduit-backend/internal/shared/middleware"
	"conduit-backend/internal/shared/response"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type ArticleHandler struct {
	service service.ArticleService
}

func NewArticleHandler(svc service.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		service: svc,
	}
}

func (h *ArticleHandler) writeError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, model.ErrArticleNotFound):
		response.ErrorResponse(c, http.StatusNotFound, model.ErrCodeArticleNotFound, err.Error())
	case errors.Is(err, model.ErrDuplicateSlug):
		response.ErrorResponse(c, http.StatusConflict, model.ErrCodeDuplicateSlug, err.Error())
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, model.ErrCodeValidation, "validation failed", vErrs)
	default:
		response.InternalServerError(c, "internal server error")
	}
}

// ========== READ: GET /api/articles ==========
func (h *ArticleHandler) List(c *gin.Context) {
	limit, offset, err := parsePagination(c)
	if err != nil {
		response.ErrorResponse(c, http.StatusUnprocessableEntity, model.ErrCodeValidation, err.Error())
		return
	}

	filter := &model.ArticleFilter{
		Tag:       c.Query("tag"),
		Author:    c.Query("author"),
		Favorited: c.Query("favorited"),
		Limit:     limit,
		Offset:    offset,
	}

	articles, err := h.service.List(c.Request.Context(), filter, middleware.ViewerID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.ArticlesResponse{
		Articles:      articles,
		ArticlesCount: len(articles),
	})
}

// ========== READ: GET /api/articles/feed ==========
func (h *ArticleHandler) Feed(c *gin.Context) {
	limit, offset, err := parsePagination(c)
	if err != nil {
		response.ErrorResponse(c, http.StatusUnprocessableEntity, model.ErrCodeValidation, err.Error())
		return
	}

	articles, err := h.service.Feed(c.Request.Context(), middleware.ViewerID(c), limit, offset)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.ArticlesResponse{
		Articles:      articles,
		ArticlesCount: len(articles),
	})
}

// ========== READ: GET /api/articles/:slug ==========
func (h *ArticleHandler) Get(c *gin.Context) {
	article, err := h.service.Get(c.Request.Context(), c.Param("slug"), middleware.ViewerID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.ArticleResponse{Article: article})
}

// ========== WRITE: POST /api/articles ==========
func (h *ArticleHandler) Create(c *gin.Context) {
	var req model.CreateArticleRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	article, err := h.service.Create(c.Request.Context(), middleware.ViewerID(c), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, model.ArticleResponse{Article: article})
}

// ========== WRITE: PUT /api/articles/:slug ==========
func (h *ArticleHandler) Update(c *gin.Context) {
	var req model.UpdateArticleRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	article, err := h.service.Update(c.Request.Context(), middleware.ViewerID(c), c.Param("slug"), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.ArticleResponse{Article: article})
}

// ========== WRITE: DELETE /api/articles/:slug ==========
func (h *ArticleHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.ViewerID(c), c.Param("slug")); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ========== WRITE: POST /api/articles/:slug/favorite ==========
func (h *ArticleHandler) Favorite(c *gin.Context) {
	article, err := h.service.Favorite(c.Request.Context(), middleware.ViewerID(c), c.Param("slug"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.ArticleResponse{Article: article})
}

// ========== WRITE: DELETE /api/articles/:slug/favorite ==========
func (h *ArticleHandler) Unfavorite(c *gin.Context) {
	article, err := h.service.Unfavorite(c.Request.Context(), middleware.ViewerID(c), c.Param("slug"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.ArticleResponse{Article: article})
}

// parsePagination reads the limit/offset query parameters. Absent parameters
// get defaults; unparsable values are caller errors and never reach the store.
func parsePagination(c *gin.Context) (int, int, error) {
	limit, err := queryInt(c, "limit", model.DefaultLimit)
	if err != nil {
		return 0, 0, err
	}

	offset, err := queryInt(c, "offset", model.DefaultOffset)
	if err != nil {
		return 0, 0, err
	}

	return limit, offset, nil
}

func queryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}

	return value, nil
}
