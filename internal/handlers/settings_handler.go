package handlers

import (
	"github.com/gin-gonic/gin"

	"gmbtravels/internal/models"
	"gmbtravels/internal/repositories/interfaces"
	"gmbtravels/internal/utils"
)

type SettingsHandler struct {
	settingsRepo interfaces.SiteSettingsRepository
}

func NewSettingsHandler(settingsRepo interfaces.SiteSettingsRepository) *SettingsHandler {
	return &SettingsHandler{settingsRepo: settingsRepo}
}

// Get returns the site settings the public pages render.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsRepo.Get(c.Request.Context())
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponse(c, "Settings retrieved", settings)
}

// Update applies a partial settings update.
func (h *SettingsHandler) Update(c *gin.Context) {
	var request models.SiteSettingsUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	updates := request.Updates()
	if len(updates) == 0 {
		utils.BadRequestResponse(c, "No fields to update")
		return
	}

	settings, err := h.settingsRepo.Update(c.Request.Context(), updates)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponse(c, "Settings updated", settings)
}

// Reset restores the default settings document.
func (h *SettingsHandler) Reset(c *gin.Context) {
	settings, err := h.settingsRepo.Reset(c.Request.Context())
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponse(c, "Settings reset to defaults", settings)
}
