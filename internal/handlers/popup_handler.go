package handlers

import (
	"github.com/gin-gonic/gin"

	"gmbtravels/internal/models"
	"gmbtravels/internal/repositories/interfaces"
	"gmbtravels/internal/utils"
)

type PopupHandler struct {
	popupRepo interfaces.PopupRepository
}

func NewPopupHandler(popupRepo interfaces.PopupRepository) *PopupHandler {
	return &PopupHandler{popupRepo: popupRepo}
}

// ListActive returns popups currently inside their display window.
func (h *PopupHandler) ListActive(c *gin.Context) {
	popups, err := h.popupRepo.ListActive(c.Request.Context())
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponseWithMeta(c, "Popups retrieved", popups, &utils.Meta{Count: len(popups)})
}

func (h *PopupHandler) List(c *gin.Context) {
	popups, err := h.popupRepo.List(c.Request.Context())
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponseWithMeta(c, "Popups retrieved", popups, &utils.Meta{Count: len(popups)})
}

func (h *PopupHandler) Create(c *gin.Context) {
	var request models.PopupCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	popup := models.NewPopup(&request)
	if err := h.popupRepo.Create(c.Request.Context(), popup); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.CreatedResponse(c, "Popup created", popup)
}

func (h *PopupHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var request models.PopupUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	updates := request.Updates()
	if len(updates) == 0 {
		utils.BadRequestResponse(c, "No fields to update")
		return
	}

	if err := h.popupRepo.Update(c.Request.Context(), id, updates); err != nil {
		repoError(c, err, "Popup")
		return
	}

	popup, err := h.popupRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		repoError(c, err, "Popup")
		return
	}
	utils.SuccessResponse(c, "Popup updated", popup)
}

func (h *PopupHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.popupRepo.Delete(c.Request.Context(), id); err != nil {
		repoError(c, err, "Popup")
		return
	}
	utils.SuccessResponse(c, "Popup deleted", nil)
}
