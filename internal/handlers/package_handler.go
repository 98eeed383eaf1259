package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gmbtravels/internal/models"
	"gmbtravels/internal/repositories/interfaces"
	"gmbtravels/internal/services"
	"gmbtravels/internal/utils"
)

type PackageHandler struct {
	packageRepo interfaces.PackageRepository
	pdfService  services.PDFService
}

func NewPackageHandler(packageRepo interfaces.PackageRepository, pdfService services.PDFService) *PackageHandler {
	return &PackageHandler{
		packageRepo: packageRepo,
		pdfService:  pdfService,
	}
}

// ListPublic returns active packages for the website, optionally
// filtered by category.
func (h *PackageHandler) ListPublic(c *gin.Context) {
	packages, err := h.packageRepo.List(c.Request.Context(), models.PackageStatusActive, c.Query("category"))
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponseWithMeta(c, "Packages retrieved", packages, &utils.Meta{Count: len(packages)})
}

// GetPublic returns one package. Inactive packages stay hidden from
// the public site.
func (h *PackageHandler) GetPublic(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	pkg, err := h.packageRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		repoError(c, err, "Package")
		return
	}
	if pkg.Status != models.PackageStatusActive {
		utils.NotFoundResponse(c, "Package")
		return
	}

	utils.SuccessResponse(c, "Package retrieved", pkg)
}

// ListAdmin returns every package regardless of status.
func (h *PackageHandler) ListAdmin(c *gin.Context) {
	status := models.PackageStatus(c.Query("status"))
	if !status.IsValid() {
		status = ""
	}

	packages, err := h.packageRepo.List(c.Request.Context(), status, c.Query("category"))
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponseWithMeta(c, "Packages retrieved", packages, &utils.Meta{Count: len(packages)})
}

func (h *PackageHandler) Create(c *gin.Context) {
	var request models.PackageCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	pkg := models.NewPackage(&request)
	if err := h.packageRepo.Create(c.Request.Context(), pkg); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.CreatedResponse(c, "Package created", pkg)
}

func (h *PackageHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var request models.PackageUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	updates := request.Updates()
	if len(updates) == 0 {
		utils.BadRequestResponse(c, "No fields to update")
		return
	}

	if err := h.packageRepo.Update(c.Request.Context(), id, updates); err != nil {
		repoError(c, err, "Package")
		return
	}

	pkg, err := h.packageRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		repoError(c, err, "Package")
		return
	}
	utils.SuccessResponse(c, "Package updated", pkg)
}

func (h *PackageHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.packageRepo.Delete(c.Request.Context(), id); err != nil {
		repoError(c, err, "Package")
		return
	}
	utils.SuccessResponse(c, "Package deleted", nil)
}

// GeneratePDF renders a downloadable brochure for one package.
func (h *PackageHandler) GeneratePDF(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	pkg, err := h.packageRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		repoError(c, err, "Package")
		return
	}

	result, err := h.pdfService.GeneratePackagePDF(c.Request.Context(), pkg, clientInfoFromQuery(c))
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponse(c, "PDF generated", result)
}

// DownloadPDF streams the brochure directly without storing it, so an
// agent can hand a personalized copy to a client.
func (h *PackageHandler) DownloadPDF(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	pkg, err := h.packageRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		repoError(c, err, "Package")
		return
	}

	data, filename, err := h.pdfService.RenderPackagePDF(pkg, clientInfoFromQuery(c))
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func clientInfoFromQuery(c *gin.Context) *services.PDFClientInfo {
	name := c.Query("client_name")
	if name == "" {
		return nil
	}
	return &services.PDFClientInfo{
		Name:  name,
		Email: c.Query("client_email"),
		Phone: c.Query("client_phone"),
	}
}

// GenerateSamplePDF renders a brochure from canned data so the layout
// can be checked without touching real packages.
func (h *PackageHandler) GenerateSamplePDF(c *gin.Context) {
	sample := &models.Package{
		Title:      "Kashmir Paradise Tour",
		Duration:   "5 Days / 4 Nights",
		Price:      24999,
		GroupSize:  "2-6 people",
		Highlights: []string{"Dal Lake Shikara ride", "Gulmarg Gondola", "Pahalgam valley walk"},
		Itinerary: []models.ItineraryDay{
			{Day: 1, Title: "Arrival in Srinagar", Description: "Airport pickup and houseboat check-in.", Activities: []string{"Shikara ride"}, Accommodation: "Houseboat"},
			{Day: 2, Title: "Gulmarg Excursion", Description: "Day trip to the meadow of flowers.", Activities: []string{"Gondola ride", "Skiing (seasonal)"}, Accommodation: "Hotel"},
		},
		Inclusions: []string{"Accommodation", "Breakfast and dinner", "All transfers"},
		Exclusions: []string{"Airfare", "Lunch", "Personal expenses"},
	}

	result, err := h.pdfService.GeneratePackagePDF(c.Request.Context(), sample, nil)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponse(c, "Sample PDF generated", result)
}
