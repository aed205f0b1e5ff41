package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/vitrine-app/vitrine/internal/pkg/middleware"
	"github.com/vitrine-app/vitrine/internal/pkg/models"
	httpHandler "github.com/vitrine-app/vitrine/services/campaign/handler/http"
)

// Handler aggregates the campaign service handlers
type Handler struct {
	participation *httpHandler.ParticipationHandler
	platform      *httpHandler.PlatformHandler
	cfg           *models.Config
}

// NewHandler creates the campaign handler aggregate
func NewHandler(
	participation *httpHandler.ParticipationHandler,
	platform *httpHandler.PlatformHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		participation: participation,
		platform:      platform,
		cfg:           cfg,
	}
}

// RegisterRoutes wires the campaign routes onto the router
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// platform instructions are a pure lookup, no auth required
	e.GET("/platforms/:platform/instructions", h.platform.GetInstructions)

	campaigns := e.Group("/campaigns", middleware.JWTAuthMiddleware(h.cfg.JWT))

	participations := campaigns.Group("/:campaignId/participations")
	participations.GET("", h.participation.ListParticipations)
	participations.POST("/:influencerId", h.participation.InviteInfluencer)
	participations.GET("/:influencerId", h.participation.GetParticipation)
	participations.GET("/:influencerId/steps", h.participation.GetSteps)

	participations.POST("/:influencerId/accept", h.participation.AcceptProposal)
	participations.POST("/:influencerId/reject", h.participation.RejectProposal)
	participations.POST("/:influencerId/produce", h.participation.CompleteProduction)
	participations.POST("/:influencerId/deliver", h.participation.SubmitDelivery)
	participations.POST("/:influencerId/approve", h.participation.ApproveValidation)
	participations.POST("/:influencerId/reject-content", h.participation.RejectValidation)
	participations.POST("/:influencerId/pay", h.participation.ProcessPayment)
}
