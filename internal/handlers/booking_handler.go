package handlers

import (
	"github.com/gin-gonic/gin"

	"gmbtravels/internal/models"
	"gmbtravels/internal/repositories/interfaces"
	"gmbtravels/internal/utils"
)

type BookingHandler struct {
	bookingRepo interfaces.BookingRepository
}

func NewBookingHandler(bookingRepo interfaces.BookingRepository) *BookingHandler {
	return &BookingHandler{bookingRepo: bookingRepo}
}

// Create records a package booking from the public site.
func (h *BookingHandler) Create(c *gin.Context) {
	var request models.BookingCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	booking := models.NewBooking(&request)
	if err := h.bookingRepo.Create(c.Request.Context(), booking); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.CreatedResponse(c, "Booking received", booking)
}

func (h *BookingHandler) List(c *gin.Context) {
	status := models.BookingStatus(c.Query("status"))
	if !status.IsValid() {
		status = ""
	}

	bookings, err := h.bookingRepo.List(c.Request.Context(), status)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponseWithMeta(c, "Bookings retrieved", bookings, &utils.Meta{Count: len(bookings)})
}

type statusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
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

	if err := h.bookingRepo.UpdateStatus(c.Request.Context(), id, status); err != nil {
		repoError(c, err, "Booking")
		return
	}
	utils.SuccessResponse(c, "Booking status updated", nil)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.bookingRepo.Delete(c.Request.Context(), id); err != nil {
		repoError(c, err, "Booking")
		return
	}
	utils.SuccessResponse(c, "Booking deleted", nil)
}
