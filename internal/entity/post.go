package entity

import (
	"strings"
	"time"
)

type Post struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Excerpt string `json:"excerpt"`

	// Language variants
	TitleBN   string `json:"title_bn,omitempty"`
	ContentBN string `json:"content_bn,omitempty"`
	ExcerptBN string `json:"excerpt_bn,omitempty"`
	TitleHI   string `json:"title_hi,omitempty"`
	ContentHI string `json:"content_hi,omitempty"`
	ExcerptHI string `json:"excerpt_hi,omitempty"`

	Author        string     `json:"author"`
	FeaturedImage string     `json:"featured_image"`
	Published     bool       `json:"published"`
	ViewCount     int64      `json:"view_count"`
	IsAIGenerated bool       `json:"is_ai_generated"`
	AIPrompt      string     `json:"ai_prompt,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
	PublishedAt   *time.Time `json:"published_at"`
	Tags          []string   `json:"tags,omitempty"`
}

// GenerateExcerpt derives an excerpt from the content when none is stored:
// the full content when it fits in 200 characters, otherwise the first 197
// characters followed by an ellipsis.
func (p *Post) GenerateExcerpt() string {
	if p.Excerpt == "" && p.Content != "" {
		runes := []rune(p.Content)
		if len(runes) > 200 {
			return string(runes[:197]) + "..."
		}
		return p.Content
	}
	return p.Excerpt
}

// LocalizedTitle returns the language variant for the requested locale,
// falling back to the default title when the variant is empty.
func (p *Post) LocalizedTitle(lang string) string {
	switch strings.ToLower(lang) {
	case "bn":
		if p.TitleBN != "" {
			return p.TitleBN
		}
	case "hi":
		if p.TitleHI != "" {
			return p.TitleHI
		}
	}
	return p.Title
}

func (p *Post) LocalizedContent(lang string) string {
	switch strings.ToLower(lang) {
	case "bn":
		if p.ContentBN != "" {
			return p.ContentBN
		}
	case "hi":
		if p.ContentHI != "" {
			return p.ContentHI
		}
	}
	return p.Content
}

func (p *Post) LocalizedExcerpt(lang string) string {
	switch strings.ToLower(lang) {
	case "bn":
		if p.ExcerptBN != "" {
			return p.ExcerptBN
		}
	case "hi":
		if p.ExcerptHI != "" {
			return p.ExcerptHI
		}
	}
	if p.Excerpt != "" {
		return p.Excerpt
	}
	return p.GenerateExcerpt()
}

type BlogStats struct {
	TotalPosts     int64 `json:"total_posts"`
	PublishedPosts int64 `json:"published_posts"`
	DraftPosts     int64 `json:"draft_posts"`
	TotalViews     int64 `json:"total_views"`
}
