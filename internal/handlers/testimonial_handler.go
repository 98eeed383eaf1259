package handlers

import (
	"github.com/gin-gonic/gin"

	"gmbtravels/internal/models"
	"gmbtravels/internal/repositories/interfaces"
	"gmbtravels/internal/utils"
)

type TestimonialHandler struct {
	testimonialRepo interfaces.TestimonialRepository
}

func NewTestimonialHandler(testimonialRepo interfaces.TestimonialRepository) *TestimonialHandler {
	return &TestimonialHandler{testimonialRepo: testimonialRepo}
}

// Create accepts a visitor testimonial. It stays hidden until approved.
func (h *TestimonialHandler) Create(c *gin.Context) {
	var request models.TestimonialCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	testimonial := models.NewTestimonial(&request)
	if err := h.testimonialRepo.Create(c.Request.Context(), testimonial); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.CreatedResponse(c, "Testimonial submitted for review", testimonial)
}

// ListPublic returns only approved testimonials.
func (h *TestimonialHandler) ListPublic(c *gin.Context) {
	testimonials, err := h.testimonialRepo.List(c.Request.Context(), models.TestimonialStatusApproved)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponseWithMeta(c, "Testimonials retrieved", testimonials, &utils.Meta{Count: len(testimonials)})
}

func (h *TestimonialHandler) ListAdmin(c *gin.Context) {
	status := models.TestimonialStatus(c.Query("status"))
	if status != models.TestimonialStatusPending && status != models.TestimonialStatusApproved {
		status = ""
	}

	testimonials, err := h.testimonialRepo.List(c.Request.Context(), status)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponseWithMeta(c, "Testimonials retrieved", testimonials, &utils.Meta{Count: len(testimonials)})
}

func (h *TestimonialHandler) Approve(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.testimonialRepo.UpdateStatus(c.Request.Context(), id, models.TestimonialStatusApproved); err != nil {
		repoError(c, err, "Testimonial")
		return
	}
	utils.SuccessResponse(c, "Testimonial approved", nil)
}

func (h *TestimonialHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.testimonialRepo.Delete(c.Request.Context(), id); err != nil {
		repoError(c, err, "Testimonial")
		return
	}
	utils.SuccessResponse(c, "Testimonial deleted", nil)
}
