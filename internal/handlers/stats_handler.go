package handlers

import (
	"github.com/gin-gonic/gin"

	"gmbtravels/internal/models"
	"gmbtravels/internal/repositories/interfaces"
	"gmbtravels/internal/utils"
)

type StatsHandler struct {
	packageRepo     interfaces.PackageRepository
	bookingRepo     interfaces.BookingRepository
	cabRepo         interfaces.CabBookingRepository
	contactRepo     interfaces.ContactRepository
	testimonialRepo interfaces.TestimonialRepository
	clientRepo      interfaces.ClientRepository
	blogRepo        interfaces.BlogRepository
}

func NewStatsHandler(
	packageRepo interfaces.PackageRepository,
	bookingRepo interfaces.BookingRepository,
	cabRepo interfaces.CabBookingRepository,
	contactRepo interfaces.ContactRepository,
	testimonialRepo interfaces.TestimonialRepository,
	clientRepo interfaces.ClientRepository,
	blogRepo interfaces.BlogRepository,
) *StatsHandler {
	return &StatsHandler{
		packageRepo:     packageRepo,
		bookingRepo:     bookingRepo,
		cabRepo:         cabRepo,
		contactRepo:     contactRepo,
		testimonialRepo: testimonialRepo,
		clientRepo:      clientRepo,
		blogRepo:        blogRepo,
	}
}

// Dashboard aggregates the counters shown on the back-office landing
// page. Counts are read sequentially; the collections are small.
func (h *StatsHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	stats := &models.DashboardStats{}
	var err error

	if stats.TotalPackages, err = h.packageRepo.CountAll(ctx); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	if stats.ActivePackages, err = h.packageRepo.CountByStatus(ctx, models.PackageStatusActive); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	if stats.TotalBookings, err = h.bookingRepo.CountAll(ctx); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	if stats.PendingBookings, err = h.bookingRepo.CountByStatus(ctx, models.BookingStatusPending); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	if stats.TotalCabBookings, err = h.cabRepo.CountAll(ctx); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	if stats.PendingCabBookings, err = h.cabRepo.CountByStatus(ctx, models.BookingStatusPending); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	if stats.TotalInquiries, err = h.contactRepo.CountAll(ctx); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	if stats.NewInquiries, err = h.contactRepo.CountByStatus(ctx, models.InquiryStatusNew); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	if stats.TotalTestimonials, err = h.testimonialRepo.CountAll(ctx); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	if stats.PendingTestimonials, err = h.testimonialRepo.CountByStatus(ctx, models.TestimonialStatusPending); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	if stats.TotalClients, err = h.clientRepo.CountAll(ctx); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	if stats.TotalBlogPosts, err = h.blogRepo.CountAll(ctx); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	if stats.PublishedBlogPosts, err = h.blogRepo.CountByStatus(ctx, models.BlogStatusPublished); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	if stats.RecentBookings, err = h.bookingRepo.ListRecent(ctx, 5); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	// TODO: derive from confirmed bookings once packages carry per-head
	// pricing on the booking record.
	stats.MonthlyRevenue = 125000

	utils.SuccessResponse(c, "Dashboard stats retrieved", stats)
}
