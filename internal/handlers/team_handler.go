package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"gmbtravels/internal/config"
	"gmbtravels/internal/models"
	"gmbtravels/internal/repositories/interfaces"
	"gmbtravels/internal/utils"
)

type TeamHandler struct {
	teamRepo interfaces.TeamMemberRepository
	security *config.SecurityConfig
}

func NewTeamHandler(teamRepo interfaces.TeamMemberRepository, security *config.SecurityConfig) *TeamHandler {
	return &TeamHandler{
		teamRepo: teamRepo,
		security: security,
	}
}

func (h *TeamHandler) List(c *gin.Context) {
	members, err := h.teamRepo.List(c.Request.Context())
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponseWithMeta(c, "Team members retrieved", members, &utils.Meta{Count: len(members)})
}

func (h *TeamHandler) Create(c *gin.Context) {
	var request models.TeamMemberCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	// Team members hold back-office roles below admin.
	if request.Role != models.RoleManager && request.Role != models.RoleAgent {
		utils.BadRequestResponse(c, "Role must be manager or agent")
		return
	}

	if _, err := h.teamRepo.GetByUsername(c.Request.Context(), request.Username); err == nil {
		utils.ConflictResponse(c, "Username already taken")
		return
	}
	if _, err := h.teamRepo.GetByEmail(c.Request.Context(), request.Email); err == nil {
		utils.ConflictResponse(c, "Email already in use")
		return
	}

	hash, err := utils.HashPassword(request.Password, h.security.BcryptCost)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	member := models.NewTeamMember(&request, hash)
	if err := h.teamRepo.Create(c.Request.Context(), member); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.CreatedResponse(c, "Team member created", member)
}

func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var request models.TeamMemberUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if request.Role != nil && *request.Role != models.RoleManager && *request.Role != models.RoleAgent {
		utils.BadRequestResponse(c, "Role must be manager or agent")
		return
	}

	updates := request.Updates()
	if request.Password != nil {
		hash, err := utils.HashPassword(*request.Password, h.security.BcryptCost)
		if err != nil {
			utils.InternalServerErrorResponse(c)
			return
		}
		updates["passwordHash"] = hash
		updates["updatedAt"] = time.Now().UTC()
	}
	if len(updates) == 0 {
		utils.BadRequestResponse(c, "No fields to update")
		return
	}

	if err := h.teamRepo.Update(c.Request.Context(), id, updates); err != nil {
		repoError(c, err, "Team member")
		return
	}

	member, err := h.teamRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		repoError(c, err, "Team member")
		return
	}
	utils.SuccessResponse(c, "Team member updated", member)
}

func (h *TeamHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.teamRepo.Delete(c.Request.Context(), id); err != nil {
		repoError(c, err, "Team member")
		return
	}
	utils.SuccessResponse(c, "Team member deleted", nil)
}
