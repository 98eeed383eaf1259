package handlers

import (
	"github.com/gin-gonic/gin"

	"gmbtravels/internal/models"
	"gmbtravels/internal/repositories/interfaces"
	"gmbtravels/internal/utils"
)

type ContactHandler struct {
	contactRepo interfaces.ContactRepository
}

func NewContactHandler(contactRepo interfaces.ContactRepository) *ContactHandler {
	return &ContactHandler{contactRepo: contactRepo}
}

// Create records a contact form submission.
func (h *ContactHandler) Create(c *gin.Context) {
	var request models.ContactCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	inquiry := models.NewContactInquiry(&request)
	if err := h.contactRepo.Create(c.Request.Context(), inquiry); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.CreatedResponse(c, "Inquiry received", inquiry)
}

func (h *ContactHandler) List(c *gin.Context) {
	status := models.InquiryStatus(c.Query("status"))
	if !status.IsValid() {
		status = ""
	}

	inquiries, err := h.contactRepo.List(c.Request.Context(), status)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponseWithMeta(c, "Inquiries retrieved", inquiries, &utils.Meta{Count: len(inquiries)})
}

func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var request statusUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	status := models.InquiryStatus(request.Status)
	if !status.IsValid() {
		utils.BadRequestResponse(c, "Invalid status")
		return
	}

	if err := h.contactRepo.UpdateStatus(c.Request.Context(), id, status); err != nil {
		repoError(c, err, "Inquiry")
		return
	}
	utils.SuccessResponse(c, "Inquiry status updated", nil)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.contactRepo.Delete(c.Request.Context(), id); err != nil {
		repoError(c, err, "Inquiry")
		return
	}
	utils.SuccessResponse(c, "Inquiry deleted", nil)
}
