package handlers

import (
	"github.com/gin-gonic/gin"

	"gmbtravels/internal/models"
	"gmbtravels/internal/repositories/interfaces"
	"gmbtravels/internal/utils"
)

type VehicleHandler struct {
	vehicleRepo interfaces.VehicleRepository
}

func NewVehicleHandler(vehicleRepo interfaces.VehicleRepository) *VehicleHandler {
	return &VehicleHandler{vehicleRepo: vehicleRepo}
}

// ListPublic returns the fleet for the cab booking page. Inactive
// vehicles are hidden unless active_only=false is passed.
func (h *VehicleHandler) ListPublic(c *gin.Context) {
	vehicleType := models.VehicleType(c.Query("type"))
	if !vehicleType.IsValid() {
		vehicleType = ""
	}
	activeOnly := c.DefaultQuery("active_only", "true") != "false"

	vehicles, err := h.vehicleRepo.List(c.Request.Context(), vehicleType, activeOnly)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponseWithMeta(c, "Vehicles retrieved", vehicles, &utils.Meta{Count: len(vehicles)})
}

func (h *VehicleHandler) ListAdmin(c *gin.Context) {
	vehicleType := models.VehicleType(c.Query("type"))
	if !vehicleType.IsValid() {
		vehicleType = ""
	}

	vehicles, err := h.vehicleRepo.List(c.Request.Context(), vehicleType, false)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponseWithMeta(c, "Vehicles retrieved", vehicles, &utils.Meta{Count: len(vehicles)})
}

func (h *VehicleHandler) Create(c *gin.Context) {
	var request models.VehicleCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if !request.Type.IsValid() {
		utils.BadRequestResponse(c, "Invalid vehicle type")
		return
	}

	vehicle := models.NewVehicle(&request)
	if err := h.vehicleRepo.Create(c.Request.Context(), vehicle); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.CreatedResponse(c, "Vehicle created", vehicle)
}

func (h *VehicleHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var request models.VehicleUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if request.Type != nil && !request.Type.IsValid() {
		utils.BadRequestResponse(c, "Invalid vehicle type")
		return
	}

	updates := request.Updates()
	if len(updates) == 0 {
		utils.BadRequestResponse(c, "No fields to update")
		return
	}

	if err := h.vehicleRepo.Update(c.Request.Context(), id, updates); err != nil {
		repoError(c, err, "Vehicle")
		return
	}

	vehicle, err := h.vehicleRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		repoError(c, err, "Vehicle")
		return
	}
	utils.SuccessResponse(c, "Vehicle updated", vehicle)
}

func (h *VehicleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.vehicleRepo.Delete(c.Request.Context(), id); err != nil {
		repoError(c, err, "Vehicle")
		return
	}
	utils.SuccessResponse(c, "Vehicle deleted", nil)
}
