package handlers

import (
	"github.com/gin-gonic/gin"

	"gmbtravels/internal/models"
	"gmbtravels/internal/repositories/interfaces"
	"gmbtravels/internal/utils"
)

type CabBookingHandler struct {
	cabRepo interfaces.CabBookingRepository
}

func NewCabBookingHandler(cabRepo interfaces.CabBookingRepository) *CabBookingHandler {
	return &CabBookingHandler{cabRepo: cabRepo}
}

// Create records a cab booking request from the public site.
func (h *CabBookingHandler) Create(c *gin.Context) {
	var request models.CabBookingCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if !models.TripType(request.TripType).IsValid() {
		utils.BadRequestResponse(c, "Invalid trip type")
		return
	}

	booking := models.NewCabBooking(&request)
	if err := h.cabRepo.Create(c.Request.Context(), booking); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.CreatedResponse(c, "Cab booking received", booking)
}

func (h *CabBookingHandler) List(c *gin.Context) {
	status := models.BookingStatus(c.Query("status"))
	if !status.IsValid() {
		status = ""
	}

	bookings, err := h.cabRepo.List(c.Request.Context(), status)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponseWithMeta(c, "Cab bookings retrieved", bookings, &utils.Meta{Count: len(bookings)})
}

func (h *CabBookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var request statusUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	status := models.BookingStatus(request.Status)
	if !status.IsValid() {
		utils.BadRequestResponse(c, "Invalid status")
		return
	}

	if err := h.cabRepo.UpdateStatus(c.Request.Context(), id, status); err != nil {
		repoError(c, err, "Cab booking")
		return
	}
	utils.SuccessResponse(c, "Cab booking status updated", nil)
}

func (h *CabBookingHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.cabRepo.Delete(c.Request.Context(), id); err != nil {
		repoError(c, err, "Cab booking")
		return
	}
	utils.SuccessResponse(c, "Cab booking deleted", nil)
}
