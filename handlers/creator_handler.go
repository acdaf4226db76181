package handlers // Controller layer translates HTTP <-> service calls.

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Abdulwakil1/Creatorverse/core"
	"github.com/Abdulwakil1/Creatorverse/models"
	"github.com/Abdulwakil1/Creatorverse/services"
	"github.com/Abdulwakil1/Creatorverse/utils/redislog"

	"github.com/gin-gonic/gin"
)

// CreatorHandler serves the JSON API under /api/v1.
type CreatorHandler struct {
	svc services.CreatorService
}

func NewCreatorHandler(svc services.CreatorService) *CreatorHandler {
	return &CreatorHandler{svc: svc}
}

// writeError maps service errors to status codes.
// Validation failures name the offending field so clients can highlight it.
func writeError(c *gin.Context, err error) {
	var fe *core.FieldError
	switch {
	case errors.As(err, &fe):
		c.JSON(http.StatusBadRequest, gin.H{"error": fe.Message, "field": fe.Field})
	case errors.Is(err, services.ErrNameRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": "name"})
	case errors.Is(err, services.ErrCreatorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "creator not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// ListCreators handles GET /creators.
func (h *CreatorHandler) ListCreators(c *gin.Context) {
	list, err := h.svc.ListCreatorViews(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateCreator handles POST /creators.
func (h *CreatorHandler) CreateCreator(c *gin.Context) {
	var req models.CreateCreatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.svc.CreateCreator(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetCreator handles GET /creators/:id and returns the record with its
// resolved social links.
func (h *CreatorHandler) GetCreator(c *gin.Context) {
	id, err := parseUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	v, err := h.svc.ViewCreator(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// UpdateCreator handles PUT /creators/:id (partial update).
func (h *CreatorHandler) UpdateCreator(c *gin.Context) {
	id, err := parseUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req models.UpdateCreatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.svc.UpdateCreator(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCreator handles DELETE /creators/:id.
func (h *CreatorHandler) DeleteCreator(c *gin.Context) {
	id, err := parseUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.svc.DeleteCreator(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ResolveSocial handles GET /socials/resolve?platform=&value=.
// An empty value resolves to nothing and answers 204.
func (h *CreatorHandler) ResolveSocial(c *gin.Context) {
	r := core.Resolve(core.ParsePlatform(c.Query("platform")), c.Query("value"))
	if r == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, r)
}

// ValidateSocial handles GET /socials/validate?platform=&value=.
func (h *CreatorHandler) ValidateSocial(c *gin.Context) {
	p := core.ParsePlatform(c.Query("platform"))
	c.JSON(http.StatusOK, gin.H{
		"platform": p,
		"valid":    core.ValidateSocial(p, c.Query("value")),
	})
}

// RecentActivity handles GET /activity?limit=20: the newest audit entries.
func (h *CreatorHandler) RecentActivity(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	entries, err := h.svc.RecentActivity(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	if entries == nil {
		entries = []redislog.Entry{}
	}
	c.JSON(http.StatusOK, gin.H{"items": entries})
}

// parseUint safely converts a numeric string to uint.
func parseUint(s string) (uint, error) {
	id64, err := strconv.ParseUint(s, 10, 0)
	return uint(id64), err
}
