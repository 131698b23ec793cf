package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/FutureNHS/futurenhs-platform/internal/http/dto"
	"github.com/FutureNHS/futurenhs-platform/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create registers the requesting identity, returning the existing user when
// it is already known.
func (h *UserHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	authID, ok := requester(c)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.GetOrCreate(ctx, authID, req.Name, req.Email)
	if err != nil {
		respondError(c, err, "failed to create user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) Me(c *gin.Context) {
	authID, ok := requester(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByAuthID(c.Request.Context(), authID)
	if err != nil {
		respondError(c, err, "failed to get user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) SetPlatformAdmin(c *gin.Context) {
	ctx := c.Request.Context()

	authID, ok := requester(c)
	if !ok {
		return
	}
	target, err := uuid.Parse(c.Param("authId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid authId"})
		return
	}

	var req dto.SetPlatformAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.SetPlatformAdmin(ctx, authID, target, *req.IsPlatformAdmin)
	if err != nil {
		respondError(c, err, "failed to update platform admin")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
