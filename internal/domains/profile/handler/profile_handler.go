package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"conduit-backend/internal/domains/profile/model"
	"conduit-backend/internal/domains/profile/service"
	"conduit-backend/internal/shared/middleware"
	"conduit-backend/internal/shared/response"
)

type ProfileHandler struct {
	service service.ProfileService
}

func NewProfileHandler(svc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		service: svc,
	}
}

func (h *ProfileHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrProfileNotFound):
		response.ErrorResponse(c, http.StatusNotFound, model.ErrCodeProfileNotFound, err.Error())
	case errors.Is(err, model.ErrSelfFollow):
		response.ErrorResponse(c, http.StatusUnprocessableEntity, model.ErrCodeSelfFollow, err.Error())
	default:
		response.InternalServerError(c, "internal server error")
	}
}

// ========== READ: GET /api/profiles/:username ==========
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.service.Get(c.Request.Context(), c.Param("username"), middleware.ViewerID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.ProfileResponse{Profile: profile})
}

// ========== WRITE: POST /api/profiles/:username/follow ==========
func (h *ProfileHandler) Follow(c *gin.Context) {
	profile, err := h.service.Follow(c.Request.Context(), middleware.ViewerID(c), c.Param("username"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.ProfileResponse{Profile: profile})
}

// ========== WRITE: DELETE /api/profiles/:username/follow ==========
func (h *ProfileHandler) Unfollow(c *gin.Context) {
	profile, err := h.service.Unfollow(c.Request.Context(), middleware.ViewerID(c), c.Param("username"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.ProfileResponse{Profile: profile})
}
