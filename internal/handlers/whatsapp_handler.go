package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"gmbtravels/internal/models"
	"gmbtravels/internal/repositories/interfaces"
	"gmbtravels/internal/services"
	"gmbtravels/internal/utils"
)

type WhatsAppHandler struct {
	whatsAppService services.WhatsAppService
	whatsAppRepo    interfaces.WhatsAppRepository
}

func NewWhatsAppHandler(whatsAppService services.WhatsAppService, whatsAppRepo interfaces.WhatsAppRepository) *WhatsAppHandler {
	return &WhatsAppHandler{
		whatsAppService: whatsAppService,
		whatsAppRepo:    whatsAppRepo,
	}
}

func (h *WhatsAppHandler) Send(c *gin.Context) {
	var request models.WhatsAppSendRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	clientID, ok := optionalObjectID(c, request.ClientID)
	if !ok {
		return
	}

	message, err := h.whatsAppService.SendMessage(c.Request.Context(), request.Phone, request.Body, currentUsername(c), clientID)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.CreatedResponse(c, "Message sent", message)
}

type sendTemplateRequest struct {
	Phone    string `json:"phone" binding:"required"`
	ClientID string `json:"clientId"`
}

// SendTemplate sends a saved template to a phone number.
func (h *WhatsAppHandler) SendTemplate(c *gin.Context) {
	templateID, ok := pathID(c)
	if !ok {
		return
	}

	var request sendTemplateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	clientID, ok := optionalObjectID(c, request.ClientID)
	if !ok {
		return
	}

	message, err := h.whatsAppService.SendTemplate(c.Request.Context(), request.Phone, templateID, currentUsername(c), clientID)
	if err != nil {
		repoError(c, err, "Template")
		return
	}
	utils.CreatedResponse(c, "Template sent", message)
}

// Webhook receives inbound messages from the Twilio callback. Twilio
// posts form-encoded fields; From carries the whatsapp: prefix.
func (h *WhatsAppHandler) Webhook(c *gin.Context) {
	phone := c.PostForm("From")
	body := c.PostForm("Body")
	if phone == "" {
		utils.BadRequestResponse(c, "Missing sender")
		return
	}

	if err := h.whatsAppService.ReceiveMessage(c.Request.Context(), phone, body); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	c.String(200, "")
}

func (h *WhatsAppHandler) Threads(c *gin.Context) {
	threads, err := h.whatsAppService.ListThreads(c.Request.Context())
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponseWithMeta(c, "Threads retrieved", threads, &utils.Meta{Count: len(threads)})
}

func (h *WhatsAppHandler) Conversation(c *gin.Context) {
	phone := c.Param("phone")
	messages, err := h.whatsAppService.ListConversation(c.Request.Context(), phone)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponseWithMeta(c, "Conversation retrieved", messages, &utils.Meta{Count: len(messages)})
}

func (h *WhatsAppHandler) ListTemplates(c *gin.Context) {
	templates, err := h.whatsAppRepo.ListTemplates(c.Request.Context())
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponseWithMeta(c, "Templates retrieved", templates, &utils.Meta{Count: len(templates)})
}

func (h *WhatsAppHandler) CreateTemplate(c *gin.Context) {
	var request models.WhatsAppTemplateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	category := request.Category
	if category == "" {
		category = "general"
	}

	variables := request.Variables
	if len(variables) == 0 {
		variables = models.TemplateVariables(request.Body)
	}
	active := true
	if request.IsActive != nil {
		active = *request.IsActive
	}

	now := time.Now().UTC()
	template := &models.WhatsAppTemplate{
		Name:      request.Name,
		Body:      request.Body,
		Category:  category,
		Variables: variables,
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.whatsAppRepo.CreateTemplate(c.Request.Context(), template); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.CreatedResponse(c, "Template created", template)
}

func (h *WhatsAppHandler) UpdateTemplate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var request models.WhatsAppTemplateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	variables := request.Variables
	if len(variables) == 0 {
		variables = models.TemplateVariables(request.Body)
	}

	updates := map[string]interface{}{
		"name":      request.Name,
		"body":      request.Body,
		"variables": variables,
	}
	if request.Category != "" {
		updates["category"] = request.Category
	}
	if request.IsActive != nil {
		updates["isActive"] = *request.IsActive
	}

	if err := h.whatsAppRepo.UpdateTemplate(c.Request.Context(), id, updates); err != nil {
		repoError(c, err, "Template")
		return
	}
	utils.SuccessResponse(c, "Template updated", nil)
}

func (h *WhatsAppHandler) DeleteTemplate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.whatsAppRepo.DeleteTemplate(c.Request.Context(), id); err != nil {
		repoError(c, err, "Template")
		return
	}
	utils.SuccessResponse(c, "Template deleted", nil)
}

func (h *WhatsAppHandler) GetSettings(c *gin.Context) {
	settings, err := h.whatsAppRepo.GetSettings(c.Request.Context())
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponse(c, "Settings retrieved", settings)
}

func (h *WhatsAppHandler) UpdateSettings(c *gin.Context) {
	var settings models.WhatsAppSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.whatsAppRepo.UpdateSettings(c.Request.Context(), &settings); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponse(c, "Settings updated", settings)
}
