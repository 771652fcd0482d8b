package handler

import (
	"payment-gateway-core/internal/adapter/http/dto"
	"payment-gateway-core/internal/adapter/http/middleware"
	"payment-gateway-core/internal/core/ports"
	"payment-gateway-core/pkg/apperror"
	"payment-gateway-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamHandler handles team self-service endpoints exposed on the dashboard.
type TeamHandler struct {
	teamSvc ports.TeamManagementService
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(teamSvc ports.TeamManagementService) *TeamHandler {
	return &TeamHandler{teamSvc: teamSvc}
}

// GetProfile returns the authenticated team's profile.
func (h *TeamHandler) GetProfile(c *gin.Context) {
	teamID, ok := c.Get(middleware.CtxTeamID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	profile, err := h.teamSvc.GetProfile(c.Request.Context(), teamID.(uuid.UUID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TeamProfileResponse{
		TeamID:     profile.ID.String(),
		TeamSlug:   profile.TeamSlug,
		Status:     string(profile.Status),
		WebhookURL: profile.WebhookURL,
		CreatedAt:  profile.CreatedAt,
	})
}

// UpdateWebhookURL updates the team's webhook URL.
func (h *TeamHandler) UpdateWebhookURL(c *gin.Context) {
	teamID, ok := c.Get(middleware.CtxTeamID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.UpdateWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.teamSvc.UpdateWebhookURL(c.Request.Context(), teamID.(uuid.UUID), req.WebhookURL); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "webhook URL updated"})
}

// RotateWebhookSecret generates a new webhook signing secret for the team.
func (h *TeamHandler) RotateWebhookSecret(c *gin.Context) {
	teamID, ok := c.Get(middleware.CtxTeamID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	secret, err := h.teamSvc.RotateWebhookSecret(c.Request.Context(), teamID.(uuid.UUID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.RotateWebhookSecretResponse{WebhookSecret: secret})
}
