package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"
	"github.com/vitrine-app/vitrine/internal/pkg/models"
	"github.com/vitrine-app/vitrine/internal/utils"
)

// PlatformHandler serves the per-platform delivery instructions
type PlatformHandler struct{}

// NewPlatformHandler creates a new platform handler
func NewPlatformHandler() *PlatformHandler {
	return &PlatformHandler{}
}

// GetInstructions returns the delivery instructions for a platform
func (h *PlatformHandler) GetInstructions(c echo.Context) error {
	platform := models.Platform(c.Param("platform"))

	switch platform {
	case models.PlatformInstagram, models.PlatformYouTube, models.PlatformTikTok:
	default:
		return utils.NotFoundResponse(c, "Unknown platform")
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Instructions retrieved", models.InstructionsFor(platform))
}
