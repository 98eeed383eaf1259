package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BlogStatus string

const (
	BlogStatusDraft           BlogStatus = "draft"
	BlogStatusPendingApproval BlogStatus = "pending_approval"
	BlogStatusApproved        BlogStatus = "approved"
	BlogStatusPublished       BlogStatus = "published"
	BlogStatusArchived        BlogStatus = "archived"
)

func (s BlogStatus) IsValid() bool {
	switch s {
	case BlogStatusDraft, BlogStatusPendingApproval, BlogStatusApproved,
		BlogStatusPublished, BlogStatusArchived:
		return true
	}
	return false
}

type BlogCategory string

const (
	BlogCategoryDestinations BlogCategory = "destinations"
	BlogCategoryTravelTips   BlogCategory = "travel_tips"
	BlogCategoryCulture      BlogCategory = "culture"
	BlogCategoryAdventure    BlogCategory = "adventure"
	BlogCategoryPhotography  BlogCategory = "photography"
	BlogCategorySeasonal     BlogCategory = "seasonal"
	BlogCategoryNews         BlogCategory = "news"
)

func (c BlogCategory) IsValid() bool {
	switch c {
	case BlogCategoryDestinations, BlogCategoryTravelTips, BlogCategoryCulture,
		BlogCategoryAdventure, BlogCategoryPhotography, BlogCategorySeasonal,
		BlogCategoryNews:
		return true
	}
	return false
}

type BlogPost struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title            string             `json:"title" bson:"title"`
	Slug             string             `json:"slug" bson:"slug"`
	Content          string             `json:"content" bson:"content"`
	Excerpt          string             `json:"excerpt" bson:"excerpt"`
	MetaTitle        string             `json:"metaTitle" bson:"metaTitle"`
	MetaDescription  string             `json:"metaDescription" bson:"metaDescription"`
	SeoKeywords      []string           `json:"seoKeywords" bson:"seoKeywords"`
	Tags             []string           `json:"tags" bson:"tags"`
	Category         BlogCategory       `json:"category" bson:"category"`
	FeaturedImage    string             `json:"featuredImage" bson:"featuredImage"`
	Author           string             `json:"author" bson:"author"`
	Status           BlogStatus         `json:"status" bson:"status"`
	AIGenerated      bool               `json:"aiGenerated" bson:"aiGenerated"`
	AIModel          string             `json:"aiModel,omitempty" bson:"aiModel,omitempty"`
	GenerationPrompt string             `json:"generationPrompt,omitempty" bson:"generationPrompt,omitempty"`
	Views            int64              `json:"views" bson:"views"`
	Likes            int64              `json:"likes" bson:"likes"`
	Shares           int64              `json:"shares" bson:"shares"`
	ApprovedBy       string             `json:"approvedBy,omitempty" bson:"approvedBy,omitempty"`
	PublishedAt      *time.Time         `json:"publishedAt,omitempty" bson:"publishedAt,omitempty"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type BlogCreateRequest struct {
	Title           string   `json:"title" binding:"required"`
	Content         string   `json:"content" binding:"required"`
	Excerpt         string   `json:"excerpt"`
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	SeoKeywords     []string `json:"seoKeywords"`
	Tags            []string `json:"tags"`
	Category        string   `json:"category"`
	FeaturedImage   string   `json:"featuredImage"`
	Author          string   `json:"author"`
	Status          string   `json:"status"`
}

type BlogUpdateRequest struct {
	Title           *string   `json:"title"`
	Content         *string   `json:"content"`
	Excerpt         *string   `json:"excerpt"`
	MetaTitle       *string   `json:"metaTitle"`
	MetaDescription *string   `json:"metaDescription"`
	SeoKeywords     *[]string `json:"seoKeywords"`
	Tags            *[]string `json:"tags"`
	Category        *string   `json:"category"`
	FeaturedImage   *string   `json:"featuredImage"`
	Author          *string   `json:"author"`
	Status          *string   `json:"status"`
}

// AIBlogRequest drives one-off generation from the back office.
type AIBlogRequest struct {
	Topic        string   `json:"topic" binding:"required"`
	Category     string   `json:"category"`
	Keywords     []string `json:"keywords"`
	TargetLength int      `json:"targetLength"`
	Tone         string   `json:"tone"`
	FocusAreas   []string `json:"focusAreas"`
}

// GeneratedPost is the parsed output of one generation run before it is
// persisted as a BlogPost.
type GeneratedPost struct {
	Title           string
	Slug            string
	Content         string
	Excerpt         string
	MetaTitle       string
	MetaDescription string
	SeoKeywords     []string
	Tags            []string
	Model           string
	Prompt          string
}

// BlogGenerationSettings is a singleton document controlling the
// automatic generation pipeline.
type BlogGenerationSettings struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Enabled         bool               `json:"enabled" bson:"enabled"`
	Frequency       string             `json:"frequency" bson:"frequency"`
	Topics          []string           `json:"topics" bson:"topics"`
	DefaultCategory string             `json:"defaultCategory" bson:"defaultCategory"`
	DefaultTone     string             `json:"defaultTone" bson:"defaultTone"`
	AutoPublish     bool               `json:"autoPublish" bson:"autoPublish"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func DefaultBlogGenerationSettings() *BlogGenerationSettings {
	return &BlogGenerationSettings{
		Enabled:         false,
		Frequency:       "weekly",
		Topics:          []string{},
		DefaultCategory: "travel-guide",
		DefaultTone:     "informative",
		AutoPublish:     false,
		UpdatedAt:       time.Now().UTC(),
	}
}
