package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"gmbtravels/internal/models"
	"gmbtravels/internal/repositories/interfaces"
	"gmbtravels/internal/utils"
)

type ClientHandler struct {
	clientRepo interfaces.ClientRepository
}

func NewClientHandler(clientRepo interfaces.ClientRepository) *ClientHandler {
	return &ClientHandler{clientRepo: clientRepo}
}

func (h *ClientHandler) List(c *gin.Context) {
	status := models.ClientStatus(c.Query("status"))
	if !status.IsValid() {
		status = ""
	}

	clients, err := h.clientRepo.List(c.Request.Context(), status, c.Query("assignedTo"))
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponseWithMeta(c, "Clients retrieved", clients, &utils.Meta{Count: len(clients)})
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	client, err := h.clientRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		repoError(c, err, "Client")
		return
	}
	utils.SuccessResponse(c, "Client retrieved", client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var request models.ClientCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	client := models.NewClient(&request)
	if client.AssignedTo == "" {
		client.AssignedTo = currentUsername(c)
	}

	if err := h.clientRepo.Create(c.Request.Context(), client); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.CreatedResponse(c, "Client created", client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var request models.ClientUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if request.Status != nil && !models.ClientStatus(*request.Status).IsValid() {
		utils.BadRequestResponse(c, "Invalid status")
		return
	}

	updates := request.Updates()
	if len(updates) == 0 {
		utils.BadRequestResponse(c, "No fields to update")
		return
	}

	if err := h.clientRepo.Update(c.Request.Context(), id, updates); err != nil {
		repoError(c, err, "Client")
		return
	}

	client, err := h.clientRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		repoError(c, err, "Client")
		return
	}
	utils.SuccessResponse(c, "Client updated", client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.clientRepo.Delete(c.Request.Context(), id); err != nil {
		repoError(c, err, "Client")
		return
	}
	utils.SuccessResponse(c, "Client deleted", nil)
}

// AddCommunication logs a touchpoint on the client's thread.
func (h *ClientHandler) AddCommunication(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var request models.CommunicationCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	direction := request.Direction
	if direction == "" {
		direction = "outbound"
	}

	comm := &models.Communication{
		Type:      request.Type,
		Direction: direction,
		Summary:   request.Summary,
		Notes:     request.Notes,
		LoggedBy:  currentUsername(c),
		CreatedAt: time.Now().UTC(),
	}

	if err := h.clientRepo.AddCommunication(c.Request.Context(), id, comm); err != nil {
		repoError(c, err, "Client")
		return
	}
	utils.CreatedResponse(c, "Communication logged", comm)
}

func (h *ClientHandler) AddFollowUp(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var request models.FollowUpCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	assignedTo := request.AssignedTo
	if assignedTo == "" {
		assignedTo = currentUsername(c)
	}

	followUp := &models.FollowUp{
		DueDate:     request.DueDate,
		Description: request.Description,
		Status:      models.FollowUpStatusPending,
		AssignedTo:  assignedTo,
		CreatedBy:   currentUsername(c),
		CreatedAt:   time.Now().UTC(),
	}

	if err := h.clientRepo.AddFollowUp(c.Request.Context(), id, followUp); err != nil {
		repoError(c, err, "Client")
		return
	}
	utils.CreatedResponse(c, "Follow-up scheduled", followUp)
}

func (h *ClientHandler) CompleteFollowUp(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	followUpID, err := primitiveFromParam(c, "followUpId")
	if err != nil {
		utils.BadRequestResponse(c, utils.ErrInvalidID)
		return
	}

	if err := h.clientRepo.CompleteFollowUp(c.Request.Context(), id, followUpID); err != nil {
		repoError(c, err, "Follow-up")
		return
	}
	utils.SuccessResponse(c, "Follow-up completed", nil)
}

func (h *ClientHandler) AddReview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var request models.ClientReviewCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	review := &models.ClientReview{
		Rating:    request.Rating,
		Text:      request.Text,
		Trip:      request.Trip,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.clientRepo.AddReview(c.Request.Context(), id, review); err != nil {
		repoError(c, err, "Client")
		return
	}
	utils.CreatedResponse(c, "Review recorded", review)
}
