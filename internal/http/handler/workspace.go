package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FutureNHS/futurenhs-platform/internal/http/dto"
	"github.com/FutureNHS/futurenhs-platform/internal/model"
	"github.com/FutureNHS/futurenhs-platform/internal/service"
)

type WorkspaceHandler struct {
	workspaceService service.WorkspaceService
}

func NewWorkspaceHandler(workspaceService service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

func (h *WorkspaceHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	authID, ok := requester(c)
	if !ok {
		return
	}

	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ws, err := h.workspaceService.Create(ctx, req.Title, req.Description, authID)
	if ws == nil {
		respondError(c, err, "failed to create workspace")
		return
	}

	c.JSON(http.StatusCreated, dto.WorkspaceMutationResponse{
		Workspace:      dto.ToWorkspaceResponse(ws),
		EventPublished: !errors.Is(err, service.ErrEventNotPublished),
	})
}

func (h *WorkspaceHandler) List(c *gin.Context) {
	workspaces, err := h.workspaceService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list workspaces")
		return
	}
	c.JSON(http.StatusOK, gin.H{"workspaces": dto.ToWorkspaceResponses(workspaces)})
}

func (h *WorkspaceHandler) Get(c *gin.Context) {
	workspaceID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ws, err := h.workspaceService.Get(c.Request.Context(), workspaceID)
	if err != nil {
		respondError(c, err, "failed to get workspace")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws))
}

func (h *WorkspaceHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ws, err := h.workspaceService.Update(ctx, workspaceID, req.Title, req.Description)
	if err != nil {
		respondError(c, err, "failed to update workspace")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws))
}

func (h *WorkspaceHandler) Delete(c *gin.Context) {
	workspaceID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ws, err := h.workspaceService.Delete(c.Request.Context(), workspaceID)
	if err != nil {
		respondError(c, err, "failed to delete workspace")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws))
}

// Members lists workspace users, optionally filtered by ?role=admin|non_admin.
func (h *WorkspaceHandler) Members(c *gin.Context) {
	workspaceID, ok := pathID(c, "id")
	if !ok {
		return
	}

	filter, err := model.ParseRoleFilter(c.Query("role"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	users, err := h.workspaceService.Members(c.Request.Context(), workspaceID, filter)
	if err != nil {
		respondError(c, err, "failed to list workspace members")
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": dto.ToUserResponses(users)})
}

func (h *WorkspaceHandler) IsAdmin(c *gin.Context) {
	workspaceID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	isAdmin, err := h.workspaceService.IsAdmin(c.Request.Context(), workspaceID, userID)
	if err != nil {
		respondError(c, err, "failed to check workspace admin")
		return
	}
	c.JSON(http.StatusOK, dto.IsAdminResponse{
		WorkspaceID: workspaceID,
		UserID:      userID,
		IsAdmin:     isAdmin,
	})
}

func (h *WorkspaceHandler) ChangeMembership(c *gin.Context) {
	ctx := c.Request.Context()

	authID, ok := requester(c)
	if !ok {
		return
	}
	workspaceID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	var req dto.ChangeMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	role, err := model.ParseRole(req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ws, err := h.workspaceService.ChangeMembership(ctx, workspaceID, userID, role, authID)
	if ws == nil {
		respondError(c, err, "failed to change workspace membership")
		return
	}

	c.JSON(http.StatusOK, dto.WorkspaceMutationResponse{
		Workspace:      dto.ToWorkspaceResponse(ws),
		EventPublished: !errors.Is(err, service.ErrEventNotPublished),
	})
}
