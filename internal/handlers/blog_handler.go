package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"gmbtravels/internal/models"
	"gmbtravels/internal/repositories/interfaces"
	"gmbtravels/internal/services"
	"gmbtravels/internal/utils"
)

type BlogHandler struct {
	blogService  services.BlogService
	aiService    services.AIContentService
	settingsRepo interfaces.BlogGenerationSettingsRepository
}

func NewBlogHandler(blogService services.BlogService, aiService services.AIContentService, settingsRepo interfaces.BlogGenerationSettingsRepository) *BlogHandler {
	return &BlogHandler{
		blogService:  blogService,
		aiService:    aiService,
		settingsRepo: settingsRepo,
	}
}

// ListPublic returns published posts for the website.
func (h *BlogHandler) ListPublic(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	posts, err := h.blogService.ListPublished(c.Request.Context(), c.Query("category"), c.Query("tag"), limit)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponseWithMeta(c, "Posts retrieved", posts, &utils.Meta{Count: len(posts)})
}

// GetBySlug returns one published post and counts the view.
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	post, err := h.blogService.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		repoError(c, err, "Post")
		return
	}
	utils.SuccessResponse(c, "Post retrieved", post)
}

func (h *BlogHandler) ListAdmin(c *gin.Context) {
	status := models.BlogStatus(c.Query("status"))
	if !status.IsValid() {
		status = ""
	}

	posts, err := h.blogService.ListAll(c.Request.Context(), status)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponseWithMeta(c, "Posts retrieved", posts, &utils.Meta{Count: len(posts)})
}

func (h *BlogHandler) GetAdmin(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	post, err := h.blogService.GetByID(c.Request.Context(), id)
	if err != nil {
		repoError(c, err, "Post")
		return
	}
	utils.SuccessResponse(c, "Post retrieved", post)
}

func (h *BlogHandler) Create(c *gin.Context) {
	var request models.BlogCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	post, err := h.blogService.Create(c.Request.Context(), &request)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.CreatedResponse(c, "Post created", post)
}

func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var request models.BlogUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	post, err := h.blogService.Update(c.Request.Context(), id, &request, currentUsername(c))
	if err != nil {
		repoError(c, err, "Post")
		return
	}
	utils.SuccessResponse(c, "Post updated", post)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.blogService.Delete(c.Request.Context(), id); err != nil {
		repoError(c, err, "Post")
		return
	}
	utils.SuccessResponse(c, "Post deleted", nil)
}

// Generate runs the AI pipeline and stores the result for approval.
func (h *BlogHandler) Generate(c *gin.Context) {
	var request models.AIBlogRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	post, err := h.blogService.GenerateAndSave(c.Request.Context(), &request)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.CreatedResponse(c, "Post generated", post)
}

// TopicSuggestions returns AI or fallback topic ideas for a category.
func (h *BlogHandler) TopicSuggestions(c *gin.Context) {
	count, _ := strconv.Atoi(c.DefaultQuery("count", "5"))

	topics, err := h.aiService.GenerateTopicSuggestions(c.Request.Context(), c.Param("category"), count)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponse(c, "Topics generated", topics)
}

// TestConnection checks whether the AI endpoint is reachable.
func (h *BlogHandler) TestConnection(c *gin.Context) {
	ok := h.aiService.TestConnection(c.Request.Context())
	utils.SuccessResponse(c, "Connection tested", gin.H{"connected": ok})
}

func (h *BlogHandler) GetGenerationSettings(c *gin.Context) {
	settings, err := h.settingsRepo.Get(c.Request.Context())
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponse(c, "Generation settings retrieved", settings)
}

func (h *BlogHandler) UpdateGenerationSettings(c *gin.Context) {
	var settings models.BlogGenerationSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.settingsRepo.Update(c.Request.Context(), &settings); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponse(c, "Generation settings updated", settings)
}
