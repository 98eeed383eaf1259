package services

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseResponseMarkedSections(t *testing.T) {
	s := &aiContentService{}

	response := `BLOG_TITLE: Houseboats of Dal Lake

BLOG_SLUG: houseboats-of-dal-lake

META_TITLE: Dal Lake Houseboats | GMB Travels

META_DESCRIPTION: Everything about staying on a Dal Lake houseboat.

EXCERPT: A night on the water is the defining Srinagar experience.

BLOG_CONTENT:
## Why a Houseboat

Stay on the lake, wake to shikara vendors.

SEO_KEYWORDS: dal lake houseboat, srinagar stay, kashmir lake hotels

SUGGESTED_TAGS: dal lake, houseboat, srinagar, kashmir`

	post := s.parseResponse(response, "Dal Lake", nil)

	if post.Title != "Houseboats of Dal Lake" {
		t.Errorf("title = %q", post.Title)
	}
	if post.Slug != "houseboats-of-dal-lake" {
		t.Errorf("slug = %q", post.Slug)
	}
	if post.MetaTitle != "Dal Lake Houseboats | GMB Travels" {
		t.Errorf("metaTitle = %q", post.MetaTitle)
	}
	if post.MetaDescription != "Everything about staying on a Dal Lake houseboat." {
		t.Errorf("metaDescription = %q", post.MetaDescription)
	}
	if post.Excerpt != "A night on the water is the defining Srinagar experience." {
		t.Errorf("excerpt = %q", post.Excerpt)
	}
	if !strings.HasPrefix(post.Content, "## Why a Houseboat") {
		t.Errorf("content = %q", post.Content)
	}
	if strings.Contains(post.Content, "SEO_KEYWORDS") || strings.Contains(post.Content, "SUGGESTED_TAGS") {
		t.Errorf("content leaked a trailing section: %q", post.Content)
	}
	wantSeo := []string{"dal lake houseboat", "srinagar stay", "kashmir lake hotels"}
	if !reflect.DeepEqual(post.SeoKeywords, wantSeo) {
		t.Errorf("seoKeywords = %v, want %v", post.SeoKeywords, wantSeo)
	}
	wantTags := []string{"dal lake", "houseboat", "srinagar", "kashmir"}
	if !reflect.DeepEqual(post.Tags, wantTags) {
		t.Errorf("tags = %v, want %v", post.Tags, wantTags)
	}
}

func TestParseResponseMissingTitle(t *testing.T) {
	s := &aiContentService{}

	response := `EXCERPT: Short summary.

BLOG_CONTENT:
Body text.

SUGGESTED_TAGS: gulmarg`

	post := s.parseResponse(response, "Gulmarg Skiing", []string{"skiing"})

	if post.Title != "Discover Gulmarg Skiing in Kashmir" {
		t.Errorf("title = %q", post.Title)
	}
	if post.Slug != "discover-gulmarg-skiing-in-kashmir" {
		t.Errorf("slug should derive from the fallback title, got %q", post.Slug)
	}
	if post.MetaTitle != "Discover Gulmarg Skiing in Kashmir" {
		t.Errorf("metaTitle should fall back to the title, got %q", post.MetaTitle)
	}
	if post.Excerpt != "Short summary." {
		t.Errorf("excerpt = %q", post.Excerpt)
	}
	if post.MetaDescription != "Short summary." {
		t.Errorf("metaDescription should fall back to the excerpt, got %q", post.MetaDescription)
	}
	wantSeo := []string{"skiing", "kashmir", "gulmarg skiing"}
	if !reflect.DeepEqual(post.SeoKeywords, wantSeo) {
		t.Errorf("seoKeywords = %v, want %v", post.SeoKeywords, wantSeo)
	}
}

func TestParseResponseUnmarked(t *testing.T) {
	s := &aiContentService{}

	raw := "  Pahalgam sits at the junction of the Lidder and Sheshnag streams.  "
	post := s.parseResponse(raw, "Pahalgam", nil)

	if post.Content != strings.TrimSpace(raw) {
		t.Errorf("content = %q, want trimmed raw response", post.Content)
	}
	if post.Title != "Discover Pahalgam in Kashmir" {
		t.Errorf("title = %q", post.Title)
	}
	if post.Slug != "discover-pahalgam-in-kashmir" {
		t.Errorf("slug = %q", post.Slug)
	}
	wantExcerpt := "Explore Pahalgam with GMB Travels Kashmir."
	if post.Excerpt != wantExcerpt {
		t.Errorf("excerpt = %q, want %q", post.Excerpt, wantExcerpt)
	}
	wantMeta := "Discover Pahalgam in Kashmir. Complete travel guide with tips and insights."
	if post.MetaDescription != wantMeta {
		t.Errorf("metaDescription = %q, want %q", post.MetaDescription, wantMeta)
	}
	wantSeo := []string{"kashmir", "pahalgam"}
	if !reflect.DeepEqual(post.SeoKeywords, wantSeo) {
		t.Errorf("seoKeywords = %v, want %v", post.SeoKeywords, wantSeo)
	}
	if !reflect.DeepEqual(post.Tags, []string{"kashmir", "travel"}) {
		t.Errorf("tags = %v", post.Tags)
	}
}

func TestParseResponseEmptyReply(t *testing.T) {
	s := &aiContentService{}

	post := s.parseResponse("", "Dal Lake", nil)

	if post.Title != "Discover Dal Lake in Kashmir" {
		t.Errorf("title = %q", post.Title)
	}
	if post.Slug != "discover-dal-lake-in-kashmir" {
		t.Errorf("slug = %q", post.Slug)
	}
	if post.Content != "Content generation failed. Please try again." {
		t.Errorf("content = %q, want the failure placeholder", post.Content)
	}
}

func TestParseResponseTagSplitting(t *testing.T) {
	s := &aiContentService{}

	post := s.parseResponse("SUGGESTED_TAGS: one, , two ,three,", "t", nil)
	if !reflect.DeepEqual(post.Tags, []string{"one", "two", "three"}) {
		t.Errorf("tags = %v", post.Tags)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 4); got != "abcd" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("ab", 4); got != "ab" {
		t.Errorf("truncate should leave short strings alone, got %q", got)
	}
}

func TestFallbackTopics(t *testing.T) {
	tests := []struct {
		name     string
		category string
		count    int
		want     int
		first    string
	}{
		{"known category", "destinations", 3, 3, "Hidden Gems of Kashmir: Off-the-Beaten-Path Destinations"},
		{"unknown category falls back to defaults", "nonsense", 2, 2, "Kashmir Travel Guide: Planning Your Perfect Trip"},
		{"count clamped to available topics", "culture", 50, 5, "Kashmir's Rich Cultural Heritage: Traditions and Festivals"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topics := fallbackTopics(tt.category, tt.count)
			if len(topics) != tt.want {
				t.Fatalf("len = %d, want %d", len(topics), tt.want)
			}
			if topics[0] != tt.first {
				t.Errorf("first topic = %q, want %q", topics[0], tt.first)
			}
		})
	}
}
