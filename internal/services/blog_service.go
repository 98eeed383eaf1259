package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gmbtravels/internal/models"
	"gmbtravels/internal/repositories/interfaces"
	"gmbtravels/internal/utils"
	"gmbtravels/pkg/logger"
)

type BlogService interface {
	Create(ctx context.Context, request *models.BlogCreateRequest) (*models.BlogPost, error)
	Update(ctx context.Context, id primitive.ObjectID, request *models.BlogUpdateRequest, updatedBy string) (*models.BlogPost, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error)

	// GetPublishedBySlug returns one published post and bumps its view
	// counter.
	GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error)

	ListPublished(ctx context.Context, category, tag string, limit int64) ([]*models.BlogPost, error)
	ListAll(ctx context.Context, status models.BlogStatus) ([]*models.BlogPost, error)

	// GenerateAndSave runs the AI pipeline and stores the result as a
	// pending-approval post authored by "AI Assistant".
	GenerateAndSave(ctx context.Context, request *models.AIBlogRequest) (*models.BlogPost, error)
}

type blogService struct {
	repo      interfaces.BlogRepository
	aiService AIContentService
	logger    *logger.Logger
}

func NewBlogService(repo interfaces.BlogRepository, aiService AIContentService, log *logger.Logger) BlogService {
	return &blogService{
		repo:      repo,
		aiService: aiService,
		logger:    log,
	}
}

func (s *blogService) Create(ctx context.Context, request *models.BlogCreateRequest) (*models.BlogPost, error) {
	slug, err := s.uniqueSlugTimestamp(ctx, utils.MakeSlug(request.Title))
	if err != nil {
		return nil, err
	}

	status := models.BlogStatus(request.Status)
	if !status.IsValid() {
		status = models.BlogStatusDraft
	}

	category := models.BlogCategory(request.Category)
	if category == "" {
		category = models.BlogCategoryTravelTips
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category %q", request.Category)
	}
	author := request.Author
	if author == "" {
		author = "GMB Travels Team"
	}

	now := time.Now().UTC()
	post := &models.BlogPost{
		Title:           request.Title,
		Slug:            slug,
		Content:         request.Content,
		Excerpt:         request.Excerpt,
		MetaTitle:       request.MetaTitle,
		MetaDescription: request.MetaDescription,
		SeoKeywords:     request.SeoKeywords,
		Tags:            request.Tags,
		Category:        category,
		FeaturedImage:   request.FeaturedImage,
		Author:          author,
		Status:          status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if status == models.BlogStatusPublished {
		post.PublishedAt = &now
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *blogService) Update(ctx context.Context, id primitive.ObjectID, request *models.BlogUpdateRequest, updatedBy string) (*models.BlogPost, error) {
	updates := make(map[string]interface{})
	if request.Title != nil {
		updates["title"] = *request.Title
	}
	if request.Content != nil {
		updates["content"] = *request.Content
	}
	if request.Excerpt != nil {
		updates["excerpt"] = *request.Excerpt
	}
	if request.MetaTitle != nil {
		updates["metaTitle"] = *request.MetaTitle
	}
	if request.MetaDescription != nil {
		updates["metaDescription"] = *request.MetaDescription
	}
	if request.SeoKeywords != nil {
		updates["seoKeywords"] = *request.SeoKeywords
	}
	if request.Tags != nil {
		updates["tags"] = *request.Tags
	}
	if request.Category != nil {
		category := models.BlogCategory(*request.Category)
		if !category.IsValid() {
			return nil, fmt.Errorf("invalid category %q", *request.Category)
		}
		updates["category"] = category
	}
	if request.FeaturedImage != nil {
		updates["featuredImage"] = *request.FeaturedImage
	}
	if request.Author != nil {
		updates["author"] = *request.Author
	}

	if request.Status != nil {
		status := models.BlogStatus(*request.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("invalid status %q", *request.Status)
		}
		updates["status"] = status

		// Status transitions stamp who approved and when the post went
		// live.
		switch status {
		case models.BlogStatusPublished:
			updates["publishedAt"] = time.Now().UTC()
		case models.BlogStatusApproved:
			updates["approvedBy"] = updatedBy
		}
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *blogService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}

func (s *blogService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *blogService) GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post.Status != models.BlogStatusPublished {
		return nil, interfaces.ErrNotFound
	}

	if err := s.repo.IncrementViews(ctx, post.ID); err != nil {
		// A failed counter bump should not hide the post.
		s.logger.WithError(err).WithField("slug", slug).Warn("failed to increment views")
	} else {
		post.Views++
	}
	return post, nil
}

const maxPublishedListLimit = 100

func (s *blogService) ListPublished(ctx context.Context, category, tag string, limit int64) ([]*models.BlogPost, error) {
	if limit <= 0 || limit > maxPublishedListLimit {
		limit = maxPublishedListLimit
	}
	return s.repo.ListPublished(ctx, category, tag, limit)
}

func (s *blogService) ListAll(ctx context.Context, status models.BlogStatus) ([]*models.BlogPost, error) {
	return s.repo.List(ctx, status)
}

func (s *blogService) GenerateAndSave(ctx context.Context, request *models.AIBlogRequest) (*models.BlogPost, error) {
	generated, err := s.aiService.GeneratePost(ctx, request)
	if err != nil {
		return nil, err
	}

	base := generated.Slug
	if base == "" {
		base = utils.MakeSlug(generated.Title)
	}
	slug, err := s.uniqueSlugCounter(ctx, base)
	if err != nil {
		return nil, err
	}

	category := models.BlogCategory(request.Category)
	if !category.IsValid() {
		category = models.BlogCategoryTravelTips
	}

	now := time.Now().UTC()
	post := &models.BlogPost{
		Title:            generated.Title,
		Slug:             slug,
		Content:          generated.Content,
		Excerpt:          generated.Excerpt,
		MetaTitle:        generated.MetaTitle,
		MetaDescription:  generated.MetaDescription,
		SeoKeywords:      generated.SeoKeywords,
		Tags:             generated.Tags,
		Category:         category,
		Author:           "AI Assistant",
		Status:           models.BlogStatusPendingApproval,
		AIGenerated:      true,
		AIModel:          generated.Model,
		GenerationPrompt: generated.Prompt,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"slug":  post.Slug,
		"topic": request.Topic,
	}).Info("AI blog post generated")

	return post, nil
}

// uniqueSlugCounter resolves collisions with an incrementing suffix:
// slug, slug-1, slug-2, ...
func (s *blogService) uniqueSlugCounter(ctx context.Context, slug string) (string, error) {
	candidate := slug
	for counter := 1; ; counter++ {
		exists, err := s.repo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", slug, counter)
	}
}

// uniqueSlugTimestamp resolves collisions with a timestamp suffix so a
// manually re-created post never overwrites an earlier slug.
func (s *blogService) uniqueSlugTimestamp(ctx context.Context, slug string) (string, error) {
	exists, err := s.repo.SlugExists(ctx, slug)
	if err != nil {
		return "", err
	}
	if !exists {
		return slug, nil
	}
	return fmt.Sprintf("%s-%d", slug, time.Now().Unix()), nil
}
