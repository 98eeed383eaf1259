package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"gmbtravels/internal/models"
	"gmbtravels/internal/utils"
	"gmbtravels/pkg/ai"
	"gmbtravels/pkg/logger"
)

// AIContentService generates blog drafts from an OpenAI-compatible
// endpoint. Every parsed field has a deterministic fallback so a
// malformed model response still produces a usable draft.
type AIContentService interface {
	GeneratePost(ctx context.Context, request *models.AIBlogRequest) (*models.GeneratedPost, error)
	GenerateTopicSuggestions(ctx context.Context, category string, count int) ([]string, error)
	TestConnection(ctx context.Context) bool
}

type aiContentService struct {
	client *ai.Client
	logger *logger.Logger
}

func NewAIContentService(client *ai.Client, log *logger.Logger) AIContentService {
	return &aiContentService{
		client: client,
		logger: log,
	}
}

var (
	titleRe     = regexp.MustCompile(`(?m)BLOG_TITLE:\s*(.+)`)
	slugRe      = regexp.MustCompile(`(?m)BLOG_SLUG:\s*(.+)`)
	metaTitleRe = regexp.MustCompile(`(?m)META_TITLE:\s*(.+)`)
	metaRe      = regexp.MustCompile(`(?m)META_DESCRIPTION:\s*(.+)`)
	excerptRe   = regexp.MustCompile(`(?s)EXCERPT:\s*(.+?)(?:BLOG_CONTENT:|$)`)
	contentRe   = regexp.MustCompile(`(?s)BLOG_CONTENT:\s*(.+?)(?:SEO_KEYWORDS:|SUGGESTED_TAGS:|$)`)
	seoRe       = regexp.MustCompile(`(?m)SEO_KEYWORDS:\s*(.+)`)
	tagsRe      = regexp.MustCompile(`(?m)SUGGESTED_TAGS:\s*(.+)`)
)

func (s *aiContentService) GeneratePost(ctx context.Context, request *models.AIBlogRequest) (*models.GeneratedPost, error) {
	prompt := buildGenerationPrompt(request)

	response, err := s.client.Chat(ctx, []ai.Message{
		{Role: "system", Content: "You are a travel content writer for GMB Travels Kashmir, a local travel agency in Srinagar."},
		{Role: "user", Content: prompt},
	}, 0.7, 4096)
	if err != nil {
		// Callers always get a draft. A failed generation produces the
		// deterministic fallback built from the topic alone.
		s.logger.WithError(err).Warn("blog generation failed, using fallback draft")
		response = ""
	}

	post := s.parseResponse(response, request.Topic, request.Keywords)
	post.Model = s.client.Model()
	post.Prompt = prompt
	return post, nil
}

func buildGenerationPrompt(request *models.AIBlogRequest) string {
	keywords := strings.Join(request.Keywords, ", ")
	if keywords == "" {
		keywords = "Kashmir tourism, travel guide"
	}
	focusAreas := strings.Join(request.FocusAreas, ", ")
	if focusAreas == "" {
		focusAreas = "local experiences, travel tips"
	}
	tone := request.Tone
	if tone == "" {
		tone = "informative"
	}
	targetLength := request.TargetLength
	if targetLength <= 0 {
		targetLength = 1500
	}

	var b strings.Builder
	b.WriteString("Create a comprehensive blog post for GMB Travels Kashmir.\n\n")
	fmt.Fprintf(&b, "TOPIC: %s\n", request.Topic)
	fmt.Fprintf(&b, "CATEGORY: %s\n", request.Category)
	fmt.Fprintf(&b, "TARGET LENGTH: %d words\n", targetLength)
	fmt.Fprintf(&b, "TONE: %s\n", tone)
	fmt.Fprintf(&b, "KEYWORDS TO INCLUDE: %s\n", keywords)
	fmt.Fprintf(&b, "FOCUS AREAS: %s\n\n", focusAreas)
	b.WriteString("Structure your response EXACTLY as follows:\n\n")
	b.WriteString("BLOG_TITLE: [an engaging, SEO-friendly title]\n\n")
	b.WriteString("BLOG_SLUG: [a URL-friendly slug based on the title]\n\n")
	b.WriteString("META_TITLE: [a 60-character SEO title]\n\n")
	b.WriteString("META_DESCRIPTION: [a 160-character meta description]\n\n")
	b.WriteString("EXCERPT: [a compelling summary of the post]\n\n")
	b.WriteString("BLOG_CONTENT:\n[the full blog post with subheadings, practical tips, local insights and a closing call to action]\n\n")
	b.WriteString("SEO_KEYWORDS: [8-10 relevant SEO keywords, comma-separated]\n\n")
	b.WriteString("SUGGESTED_TAGS: [5-6 relevant tags, comma-separated]\n")
	return b.String()
}

// parseResponse extracts the marked sections. Missing sections fall
// back to deterministic placeholders derived from the topic so the
// caller always receives a complete draft.
func (s *aiContentService) parseResponse(response, topic string, keywords []string) *models.GeneratedPost {
	title := extractSection(titleRe, response)
	slug := extractSection(slugRe, response)
	metaTitle := extractSection(metaTitleRe, response)
	metaDescription := extractSection(metaRe, response)
	excerpt := extractSection(excerptRe, response)
	content := extractSection(contentRe, response)
	seoLine := extractSection(seoRe, response)
	tagsLine := extractSection(tagsRe, response)

	if title == "" {
		title = fmt.Sprintf("Discover %s in Kashmir", topic)
	}
	if slug == "" {
		slug = utils.MakeSlug(title)
	}
	if metaTitle == "" {
		metaTitle = truncate(title, 60)
	}
	if content == "" {
		// A response with no recognizable sections is still content.
		content = strings.TrimSpace(response)
	}
	if content == "" {
		content = "Content generation failed. Please try again."
	}
	if metaDescription == "" {
		if excerpt != "" {
			metaDescription = truncate(excerpt, 160)
		} else {
			metaDescription = fmt.Sprintf("Discover %s in Kashmir. Complete travel guide with tips and insights.", topic)
		}
	}
	if excerpt == "" {
		excerpt = fmt.Sprintf("Explore %s with GMB Travels Kashmir.", topic)
	}

	seoKeywords := splitList(seoLine)
	if len(seoKeywords) == 0 {
		seoKeywords = append(append([]string{}, keywords...), "kashmir", strings.ToLower(topic))
	}

	tags := splitList(tagsLine)
	if len(tags) == 0 {
		tags = []string{"kashmir", "travel"}
	}

	return &models.GeneratedPost{
		Title:           title,
		Slug:            slug,
		Content:         content,
		Excerpt:         excerpt,
		MetaTitle:       metaTitle,
		MetaDescription: metaDescription,
		SeoKeywords:     seoKeywords,
		Tags:            tags,
	}
}

func splitList(line string) []string {
	var items []string
	for _, item := range strings.Split(line, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func extractSection(re *regexp.Regexp, text string) string {
	match := re.FindStringSubmatch(text)
	if len(match) < 2 {
		return ""
	}
	return strings.TrimSpace(match[1])
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func (s *aiContentService) GenerateTopicSuggestions(ctx context.Context, category string, count int) ([]string, error) {
	if count <= 0 {
		count = 5
	}

	if !s.client.Configured() {
		return fallbackTopics(category, count), nil
	}

	prompt := fmt.Sprintf(
		"Generate %d engaging blog post topics for Kashmir tourism in the %s category. "+
			"Return only the topic titles, one per line, without numbers or bullets.",
		count, category)

	response, err := s.client.Chat(ctx, []ai.Message{{Role: "user", Content: prompt}}, 0.9, 512)
	if err != nil {
		s.logger.WithError(err).Warn("topic suggestion generation failed, using fallbacks")
		return fallbackTopics(category, count), nil
	}

	var topics []string
	for _, line := range strings.Split(response, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			topics = append(topics, line)
		}
		if len(topics) == count {
			break
		}
	}
	if len(topics) == 0 {
		return fallbackTopics(category, count), nil
	}
	return topics, nil
}

var topicsByCategory = map[string][]string{
	"destinations": {
		"Hidden Gems of Kashmir: Off-the-Beaten-Path Destinations",
		"Complete Guide to Dal Lake: Everything You Need to Know",
		"Gulmarg Through the Seasons: When to Visit and What to Expect",
		"Sonamarg: The Golden Meadow of Kashmir",
		"Pahalgam: A Paradise for Nature Lovers",
	},
	"travel_tips": {
		"First-Time Kashmir Travel Guide: Essential Tips and Tricks",
		"Best Time to Visit Kashmir: A Month-by-Month Guide",
		"Kashmir Packing Checklist: What to Bring for Your Trip",
		"Local Transportation in Kashmir: Getting Around Like a Pro",
		"Kashmir Food Guide: Must-Try Local Dishes",
	},
	"culture": {
		"Kashmir's Rich Cultural Heritage: Traditions and Festivals",
		"Kashmiri Handicrafts: A Guide to Local Arts and Crafts",
		"Traditional Kashmiri Architecture: From Houseboats to Shrines",
		"Kashmir's Musical Traditions: Folk Songs and Instruments",
		"Kashmiri Cuisine: A Culinary Journey Through Paradise",
	},
	"adventure": {
		"Trekking in Kashmir: Best Trails for Every Skill Level",
		"Skiing in Gulmarg: Your Complete Guide to Kashmir's Slopes",
		"River Rafting in Kashmir: Thrilling Adventures on Mountain Rivers",
		"Camping Under Kashmir's Starlit Skies",
		"Photography Tours in Kashmir: Capturing Paradise",
	},
}

var defaultTopics = []string{
	"Kashmir Travel Guide: Planning Your Perfect Trip",
	"Exploring Kashmir with GMB Travels: Local Expertise",
	"Kashmir's Natural Beauty: A Photographer's Paradise",
	"Cultural Experiences in Kashmir: Beyond the Tourist Trail",
	"Adventure Activities in Kashmir: Thrills in Paradise",
}

func fallbackTopics(category string, count int) []string {
	topics, ok := topicsByCategory[category]
	if !ok {
		topics = defaultTopics
	}
	if count > len(topics) {
		count = len(topics)
	}
	return topics[:count]
}

func (s *aiContentService) TestConnection(ctx context.Context) bool {
	if !s.client.Configured() {
		return false
	}

	response, err := s.client.Chat(ctx, []ai.Message{
		{Role: "user", Content: "Say 'connection test successful' and nothing else."},
	}, 0, 32)
	if err != nil {
		s.logger.WithError(err).Error("AI connection test failed")
		return false
	}
	return strings.Contains(strings.ToLower(response), "successful")
}
