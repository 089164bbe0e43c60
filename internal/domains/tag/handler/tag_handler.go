package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"conduit-backend/internal/domains/tag/model"
	"conduit-backend/internal/domains/tag/service"
	"conduit-backend/internal/shared/response"
)

type TagHandler struct {
	service service.TagService
}

func NewTagHandler(svc service.TagService) *TagHandler {
	return &TagHandler{
		service: svc,
	}
}

// ========== READ: GET /api/tags ==========
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "internal server error")
		return
	}

	response.Success(c, http.StatusOK, model.TagsResponse{Tags: tags})
}
