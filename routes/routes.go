package routes

import (
	"github.com/gin-gonic/gin"

	"gmbtravels/internal/config"
	"gmbtravels/internal/handlers"
	"gmbtravels/internal/middleware"
	"gmbtravels/internal/utils"
)

// Handlers bundles every handler the router wires up.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Package     *handlers.PackageHandler
	Booking     *handlers.BookingHandler
	CabBooking  *handlers.CabBookingHandler
	Testimonial *handlers.TestimonialHandler
	Contact     *handlers.ContactHandler
	Gallery     *handlers.GalleryHandler
	Vehicle     *handlers.VehicleHandler
	Popup       *handlers.PopupHandler
	Settings    *handlers.SettingsHandler
	Team        *handlers.TeamHandler
	Client      *handlers.ClientHandler
	Blog        *handlers.BlogHandler
	WhatsApp    *handlers.WhatsAppHandler
	Stats       *handlers.StatsHandler
}

// SetupRoutes registers the public site API, the auth endpoints, and
// the role-gated back office under /api.
func SetupRoutes(router *gin.Engine, h *Handlers, security *config.SecurityConfig) {
	api := router.Group("/api")

	api.GET("/", func(c *gin.Context) {
		utils.SuccessResponse(c, "GMB Travels Kashmir API", gin.H{"service": utils.AppName})
	})

	setupPublicRoutes(api, h)
	setupAuthRoutes(api, h, security)
	setupAdminRoutes(api, h, security)
}

func setupPublicRoutes(r *gin.RouterGroup, h *Handlers) {
	r.GET("/packages", h.Package.ListPublic)
	r.GET("/packages/:id", h.Package.GetPublic)

	r.POST("/bookings", h.Booking.Create)
	r.POST("/cab-bookings", h.CabBooking.Create)

	r.GET("/testimonials", h.Testimonial.ListPublic)
	r.POST("/testimonials", h.Testimonial.Create)

	r.POST("/contact", h.Contact.Create)

	r.GET("/gallery", h.Gallery.ListPublic)
	r.GET("/vehicles", h.Vehicle.ListPublic)
	r.GET("/popups", h.Popup.ListActive)
	r.GET("/site-settings", h.Settings.Get)

	r.GET("/blog/posts", h.Blog.ListPublic)
	r.GET("/blog/posts/:slug", h.Blog.GetBySlug)

	// Twilio posts inbound messages here; this endpoint is verified by
	// shared-secret URL configuration, not by a bearer token.
	r.POST("/whatsapp/webhook", h.WhatsApp.Webhook)
}

func setupAuthRoutes(r *gin.RouterGroup, h *Handlers, security *config.SecurityConfig) {
	r.POST("/auth/login", h.Auth.Login)
	r.POST("/team/login", h.Auth.TeamLogin)

	authed := r.Group("")
	authed.Use(middleware.AuthRequired(security.JWTSecret))
	{
		authed.GET("/auth/verify", middleware.AdminRequired(), h.Auth.Me)
		authed.GET("/auth/me", h.Auth.Me)
		authed.POST("/auth/change-password", h.Auth.ChangePassword)
	}
}

func setupAdminRoutes(r *gin.RouterGroup, h *Handlers, security *config.SecurityConfig) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(security.JWTSecret))

	// Admin-only: site configuration, staff, fleet, content assets.
	adminOnly := admin.Group("")
	adminOnly.Use(middleware.AdminRequired())
	{
		adminOnly.GET("/packages", h.Package.ListAdmin)
		adminOnly.POST("/packages", h.Package.Create)
		adminOnly.PUT("/packages/:id", h.Package.Update)
		adminOnly.DELETE("/packages/:id", h.Package.Delete)
		adminOnly.POST("/packages/:id/generate-pdf", h.Package.GeneratePDF)
		adminOnly.GET("/packages/:id/download-pdf", h.Package.DownloadPDF)
		adminOnly.GET("/generate-sample-pdf", h.Package.GenerateSamplePDF)

		adminOnly.GET("/team", h.Team.List)
		adminOnly.POST("/team", h.Team.Create)
		adminOnly.PUT("/team/:id", h.Team.Update)
		adminOnly.DELETE("/team/:id", h.Team.Delete)

		adminOnly.GET("/site-settings", h.Settings.Get)
		adminOnly.PUT("/site-settings", h.Settings.Update)
		adminOnly.POST("/site-settings/reset", h.Settings.Reset)

		adminOnly.GET("/vehicles", h.Vehicle.ListAdmin)
		adminOnly.POST("/vehicles", h.Vehicle.Create)
		adminOnly.PUT("/vehicles/:id", h.Vehicle.Update)
		adminOnly.DELETE("/vehicles/:id", h.Vehicle.Delete)

		adminOnly.GET("/popups", h.Popup.List)
		adminOnly.POST("/popups", h.Popup.Create)
		adminOnly.PUT("/popups/:id", h.Popup.Update)
		adminOnly.DELETE("/popups/:id", h.Popup.Delete)

		adminOnly.POST("/upload-image", h.Gallery.Upload)
		adminOnly.DELETE("/gallery/:id", h.Gallery.Delete)

		adminOnly.DELETE("/blog/posts/:id", h.Blog.Delete)
		adminOnly.GET("/blog/generation-settings", h.Blog.GetGenerationSettings)
		adminOnly.PUT("/blog/generation-settings", h.Blog.UpdateGenerationSettings)
		adminOnly.POST("/blog/test-ai", h.Blog.TestConnection)

		adminOnly.GET("/whatsapp/config", h.WhatsApp.GetSettings)
		adminOnly.PUT("/whatsapp/config", h.WhatsApp.UpdateSettings)
	}

	// Managers moderate what the public sees.
	managers := admin.Group("")
	managers.Use(middleware.ManagerRequired())
	{
		managers.GET("/testimonials", h.Testimonial.ListAdmin)
		managers.PUT("/testimonials/:id/approve", h.Testimonial.Approve)
		managers.DELETE("/testimonials/:id", h.Testimonial.Delete)

		managers.GET("/whatsapp/templates", h.WhatsApp.ListTemplates)
		managers.POST("/whatsapp/templates", h.WhatsApp.CreateTemplate)
		managers.PUT("/whatsapp/templates/:id", h.WhatsApp.UpdateTemplate)
		managers.DELETE("/whatsapp/templates/:id", h.WhatsApp.DeleteTemplate)
	}

	// Whole team: day-to-day CRM work.
	team := admin.Group("")
	team.Use(middleware.TeamMemberRequired())
	{
		team.GET("/stats", h.Stats.Dashboard)

		team.GET("/bookings", h.Booking.List)
		team.PUT("/bookings/:id/status", h.Booking.UpdateStatus)
		team.DELETE("/bookings/:id", h.Booking.Delete)

		team.GET("/cab-bookings", h.CabBooking.List)
		team.PUT("/cab-bookings/:id/status", h.CabBooking.UpdateStatus)
		team.DELETE("/cab-bookings/:id", h.CabBooking.Delete)

		team.GET("/inquiries", h.Contact.List)
		team.PUT("/inquiries/:id/status", h.Contact.UpdateStatus)
		team.DELETE("/inquiries/:id", h.Contact.Delete)

		team.GET("/clients", h.Client.List)
		team.POST("/clients", h.Client.Create)
		team.GET("/clients/:id", h.Client.Get)
		team.PUT("/clients/:id", h.Client.Update)
		team.DELETE("/clients/:id", h.Client.Delete)
		team.POST("/clients/:id/communications", h.Client.AddCommunication)
		team.POST("/clients/:id/follow-ups", h.Client.AddFollowUp)
		team.PUT("/clients/:id/follow-ups/:followUpId/complete", h.Client.CompleteFollowUp)
		team.POST("/clients/:id/reviews", h.Client.AddReview)

		team.GET("/blog/posts", h.Blog.ListAdmin)
		team.GET("/blog/posts/:id", h.Blog.GetAdmin)
		team.POST("/blog/posts", h.Blog.Create)
		team.PUT("/blog/posts/:id", h.Blog.Update)
		team.POST("/blog/generate", h.Blog.Generate)
		team.GET("/blog/topics/:category", h.Blog.TopicSuggestions)

		team.POST("/whatsapp/send", h.WhatsApp.Send)
		team.POST("/whatsapp/templates/:id/send", h.WhatsApp.SendTemplate)
		team.GET("/whatsapp/threads", h.WhatsApp.Threads)
		team.GET("/whatsapp/conversations/:phone", h.WhatsApp.Conversation)
	}
}
