package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gmbtravels/internal/models"
	"gmbtravels/internal/repositories/interfaces"
	"gmbtravels/pkg/logger"
)

type fakeBlogRepo struct {
	posts       []*models.BlogPost
	incremented []primitive.ObjectID
	lastLimit   int64
}

func (f *fakeBlogRepo) Create(ctx context.Context, post *models.BlogPost) error {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	f.posts = append(f.posts, post)
	return nil
}

func (f *fakeBlogRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error) {
	for _, p := range f.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, interfaces.ErrNotFound
}

func (f *fakeBlogRepo) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	for _, p := range f.posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, interfaces.ErrNotFound
}

func (f *fakeBlogRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	post, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	for key, value := range updates {
		switch key {
		case "title":
			post.Title = value.(string)
		case "content":
			post.Content = value.(string)
		case "status":
			post.Status = value.(models.BlogStatus)
		case "publishedAt":
			at := value.(time.Time)
			post.PublishedAt = &at
		case "approvedBy":
			post.ApprovedBy = value.(string)
		}
	}
	return nil
}

func (f *fakeBlogRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, p := range f.posts {
		if p.ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return interfaces.ErrNotFound
}

func (f *fakeBlogRepo) List(ctx context.Context, status models.BlogStatus) ([]*models.BlogPost, error) {
	var out []*models.BlogPost
	for _, p := range f.posts {
		if status == "" || p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeBlogRepo) ListPublished(ctx context.Context, category, tag string, limit int64) ([]*models.BlogPost, error) {
	f.lastLimit = limit
	var out []*models.BlogPost
	for _, p := range f.posts {
		if p.Status == models.BlogStatusPublished {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeBlogRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	for _, p := range f.posts {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBlogRepo) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	f.incremented = append(f.incremented, id)
	return nil
}

func (f *fakeBlogRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.posts)), nil
}

func (f *fakeBlogRepo) CountByStatus(ctx context.Context, status models.BlogStatus) (int64, error) {
	posts, _ := f.List(ctx, status)
	return int64(len(posts)), nil
}

type fakeAIService struct {
	post *models.GeneratedPost
	err  error
}

func (f *fakeAIService) GeneratePost(ctx context.Context, request *models.AIBlogRequest) (*models.GeneratedPost, error) {
	return f.post, f.err
}

func (f *fakeAIService) GenerateTopicSuggestions(ctx context.Context, category string, count int) ([]string, error) {
	return nil, nil
}

func (f *fakeAIService) TestConnection(ctx context.Context) bool { return false }

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(&logger.Config{Level: "error", Format: "text", Output: "stderr"})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	return log
}

func seedPost(repo *fakeBlogRepo, slug string, status models.BlogStatus) *models.BlogPost {
	post := &models.BlogPost{
		ID:     primitive.NewObjectID(),
		Title:  slug,
		Slug:   slug,
		Status: status,
	}
	repo.posts = append(repo.posts, post)
	return post
}

func TestCreateDefaults(t *testing.T) {
	repo := &fakeBlogRepo{}
	svc := NewBlogService(repo, &fakeAIService{}, testLogger(t))

	post, err := svc.Create(context.Background(), &models.BlogCreateRequest{
		Title:   "Spring in Kashmir",
		Content: "Tulips bloom in April.",
		Status:  "bogus",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if post.Slug != "spring-in-kashmir" {
		t.Errorf("slug = %q", post.Slug)
	}
	if post.Status != models.BlogStatusDraft {
		t.Errorf("invalid status should default to draft, got %q", post.Status)
	}
	if post.Category != models.BlogCategoryTravelTips {
		t.Errorf("category = %q", post.Category)
	}
	if post.Author != "GMB Travels Team" {
		t.Errorf("author = %q", post.Author)
	}
	if post.PublishedAt != nil {
		t.Error("draft should not carry publishedAt")
	}
}

func TestCreateRejectsInvalidCategory(t *testing.T) {
	repo := &fakeBlogRepo{}
	svc := NewBlogService(repo, &fakeAIService{}, testLogger(t))

	_, err := svc.Create(context.Background(), &models.BlogCreateRequest{
		Title:    "Misc",
		Content:  "Body.",
		Category: "travel-guide",
	})
	if err == nil {
		t.Fatal("expected error for a category outside the enum")
	}
	if len(repo.posts) != 0 {
		t.Error("no post should be stored for an invalid category")
	}
}

func TestCreatePublishedStampsPublishedAt(t *testing.T) {
	repo := &fakeBlogRepo{}
	svc := NewBlogService(repo, &fakeAIService{}, testLogger(t))

	post, err := svc.Create(context.Background(), &models.BlogCreateRequest{
		Title:   "Autumn Colors",
		Content: "Chinar leaves turn crimson.",
		Status:  string(models.BlogStatusPublished),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if post.PublishedAt == nil {
		t.Fatal("published post must carry publishedAt")
	}
}

func TestCreateSlugCollisionUsesTimestamp(t *testing.T) {
	repo := &fakeBlogRepo{}
	seedPost(repo, "spring-in-kashmir", models.BlogStatusPublished)
	svc := NewBlogService(repo, &fakeAIService{}, testLogger(t))

	post, err := svc.Create(context.Background(), &models.BlogCreateRequest{
		Title:   "Spring in Kashmir",
		Content: "Second take.",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if post.Slug == "spring-in-kashmir" {
		t.Fatal("colliding slug was not deduplicated")
	}
	if !strings.HasPrefix(post.Slug, "spring-in-kashmir-") {
		t.Errorf("slug = %q, want timestamp suffix on the base slug", post.Slug)
	}
}

func TestGenerateAndSave(t *testing.T) {
	repo := &fakeBlogRepo{}
	seedPost(repo, "discover-dal-lake-in-kashmir", models.BlogStatusPublished)
	seedPost(repo, "discover-dal-lake-in-kashmir-1", models.BlogStatusDraft)

	ai := &fakeAIService{post: &models.GeneratedPost{
		Title:           "Discover Dal Lake in Kashmir",
		Slug:            "discover-dal-lake-in-kashmir",
		Content:         "Body.",
		Excerpt:         "Excerpt.",
		MetaTitle:       "Dal Lake Guide",
		MetaDescription: "Meta.",
		SeoKeywords:     []string{"dal lake", "kashmir"},
		Tags:            []string{"dal lake"},
		Model:           "gpt-4o-mini",
		Prompt:          "Create a comprehensive blog post",
	}}
	svc := NewBlogService(repo, ai, testLogger(t))

	post, err := svc.GenerateAndSave(context.Background(), &models.AIBlogRequest{Topic: "Dal Lake", Category: "destinations"})
	if err != nil {
		t.Fatalf("GenerateAndSave: %v", err)
	}

	if post.Slug != "discover-dal-lake-in-kashmir-2" {
		t.Errorf("slug = %q, want counter suffix -2", post.Slug)
	}
	if post.Status != models.BlogStatusPendingApproval {
		t.Errorf("status = %q, want pending_approval", post.Status)
	}
	if !post.AIGenerated {
		t.Error("generated post must be flagged aiGenerated")
	}
	if post.Author != "AI Assistant" {
		t.Errorf("author = %q", post.Author)
	}
	if post.Category != models.BlogCategoryDestinations {
		t.Errorf("category = %q", post.Category)
	}
	if post.MetaTitle != "Dal Lake Guide" {
		t.Errorf("metaTitle = %q", post.MetaTitle)
	}
	if len(post.SeoKeywords) != 2 {
		t.Errorf("seoKeywords = %v", post.SeoKeywords)
	}
	if post.AIModel != "gpt-4o-mini" {
		t.Errorf("aiModel = %q", post.AIModel)
	}
	if post.GenerationPrompt != "Create a comprehensive blog post" {
		t.Errorf("generationPrompt = %q", post.GenerationPrompt)
	}
}

func TestGenerateAndSaveAIFailure(t *testing.T) {
	repo := &fakeBlogRepo{}
	ai := &fakeAIService{err: errors.New("upstream down")}
	svc := NewBlogService(repo, ai, testLogger(t))

	if _, err := svc.GenerateAndSave(context.Background(), &models.AIBlogRequest{Topic: "x"}); err == nil {
		t.Fatal("expected error when generation fails")
	}
	if len(repo.posts) != 0 {
		t.Error("no post should be stored on generation failure")
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	repo := &fakeBlogRepo{}
	post := seedPost(repo, "gulmarg-guide", models.BlogStatusPendingApproval)
	svc := NewBlogService(repo, &fakeAIService{}, testLogger(t))

	approved := string(models.BlogStatusApproved)
	updated, err := svc.Update(context.Background(), post.ID, &models.BlogUpdateRequest{Status: &approved}, "manager1")
	if err != nil {
		t.Fatalf("Update to approved: %v", err)
	}
	if updated.ApprovedBy != "manager1" {
		t.Errorf("approvedBy = %q", updated.ApprovedBy)
	}

	published := string(models.BlogStatusPublished)
	updated, err = svc.Update(context.Background(), post.ID, &models.BlogUpdateRequest{Status: &published}, "manager1")
	if err != nil {
		t.Fatalf("Update to published: %v", err)
	}
	if updated.PublishedAt == nil {
		t.Error("publishing must stamp publishedAt")
	}
}

func TestUpdateArchivesPost(t *testing.T) {
	repo := &fakeBlogRepo{}
	post := seedPost(repo, "old-announcement", models.BlogStatusPublished)
	svc := NewBlogService(repo, &fakeAIService{}, testLogger(t))

	archived := string(models.BlogStatusArchived)
	updated, err := svc.Update(context.Background(), post.ID, &models.BlogUpdateRequest{Status: &archived}, "admin")
	if err != nil {
		t.Fatalf("Update to archived: %v", err)
	}
	if updated.Status != models.BlogStatusArchived {
		t.Errorf("status = %q, want archived", updated.Status)
	}
}

func TestUpdateRejectsInvalidStatus(t *testing.T) {
	repo := &fakeBlogRepo{}
	post := seedPost(repo, "p", models.BlogStatusDraft)
	svc := NewBlogService(repo, &fakeAIService{}, testLogger(t))

	bad := "retracted"
	if _, err := svc.Update(context.Background(), post.ID, &models.BlogUpdateRequest{Status: &bad}, "admin"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestGetPublishedBySlug(t *testing.T) {
	repo := &fakeBlogRepo{}
	published := seedPost(repo, "live-post", models.BlogStatusPublished)
	seedPost(repo, "hidden-draft", models.BlogStatusDraft)
	svc := NewBlogService(repo, &fakeAIService{}, testLogger(t))

	post, err := svc.GetPublishedBySlug(context.Background(), "live-post")
	if err != nil {
		t.Fatalf("GetPublishedBySlug: %v", err)
	}
	if post.Views != 1 {
		t.Errorf("views = %d, want 1 after one fetch", post.Views)
	}
	if len(repo.incremented) != 1 || repo.incremented[0] != published.ID {
		t.Error("view counter was not incremented in the repository")
	}

	if _, err := svc.GetPublishedBySlug(context.Background(), "hidden-draft"); !errors.Is(err, interfaces.ErrNotFound) {
		t.Errorf("draft slug err = %v, want ErrNotFound", err)
	}
	if _, err := svc.GetPublishedBySlug(context.Background(), "missing"); !errors.Is(err, interfaces.ErrNotFound) {
		t.Errorf("missing slug err = %v, want ErrNotFound", err)
	}
}

func TestListPublishedClampsLimit(t *testing.T) {
	repo := &fakeBlogRepo{}
	svc := NewBlogService(repo, &fakeAIService{}, testLogger(t))

	tests := []struct {
		limit int64
		want  int64
	}{
		{0, 100},
		{-3, 100},
		{500, 100},
		{20, 20},
	}
	for _, tt := range tests {
		if _, err := svc.ListPublished(context.Background(), "", "", tt.limit); err != nil {
			t.Fatalf("ListPublished(%d): %v", tt.limit, err)
		}
		if repo.lastLimit != tt.want {
			t.Errorf("limit %d passed through as %d, want %d", tt.limit, repo.lastLimit, tt.want)
		}
	}
}
