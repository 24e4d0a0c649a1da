package usecase

import (
	"context"
	"fmt"
	"time"

	"blog-backend/internal/entity"
	"blog-backend/internal/repo/persistent"
	"blog-backend/pkg/ai"
	"blog-backend/pkg/logger"
)

const defaultAIAuthor = "AI Assistant"

// Generator produces a normalized blog draft from a free-text prompt.
type Generator interface {
	GenerateBlogPost(ctx context.Context, prompt string) (*ai.Draft, error)
}

// EventPublisher emits domain events for out-of-process consumers.
type EventPublisher interface {
	PublishPostPublished(event map[string]interface{}) error
}

type CreatePostInput struct {
	Title         string
	Content       string
	Excerpt       string
	Author        string
	FeaturedImage string
	Tags          []string
	Published     bool
}

// UpdatePostInput carries partial updates. Nil pointers mean "leave the field
// unchanged"; Tags follows the same rule, with a non-nil empty slice clearing
// the whole tag set.
type UpdatePostInput struct {
	Title         *string
	Content       *string
	Excerpt       *string
	Author        *string
	FeaturedImage *string
	Published     *bool
	Tags          *[]string
}

type ListQuery struct {
	Page    int
	Size    int
	SortBy  string
	SortDir string
	Lang    string
}

type PostListItem struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Excerpt       string     `json:"excerpt"`
	Author        string     `json:"author"`
	FeaturedImage string     `json:"featured_image"`
	Published     bool       `json:"published"`
	ViewCount     int64      `json:"view_count"`
	IsAIGenerated bool       `json:"is_ai_generated"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
	PublishedAt   *time.Time `json:"published_at"`
	Tags          []string   `json:"tags"`
}

// PageEnvelope is the published-listing response shape.
type PageEnvelope struct {
	Content       []PostListItem `json:"content"`
	Page          int            `json:"page"`
	Size          int            `json:"size"`
	TotalElements int64          `json:"total_elements"`
	TotalPages    int64          `json:"total_pages"`
}

// SearchEnvelope is the search and tag-listing response shape. It uses a
// plain total and carries no total_pages, matching the published API.
type SearchEnvelope struct {
	Content []*entity.Post `json:"content"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	Size    int            `json:"size"`
}

type PostUseCase interface {
	CreatePost(input CreatePostInput) (*entity.Post, error)
	GetPost(id int64) (*entity.Post, error)
	IncrementViewCount(id int64) error
	UpdatePost(id int64, input UpdatePostInput) (*entity.Post, error)
	DeletePost(id int64) error
	TogglePublish(id int64) (*entity.Post, error)
	GetPublishedPosts(query ListQuery) (*PageEnvelope, error)
	SearchPosts(keyword string, page, size int) (*SearchEnvelope, error)
	GetPostsByTag(tag string, page, size int) (*SearchEnvelope, error)
	GetTopPosts(limit int) ([]*entity.Post, error)
	GetStatistics() (*entity.BlogStats, error)
	AddImage(id int64, imageURL string) error
	SetFeaturedImage(id int64, imageURL string) error
	GeneratePost(ctx context.Context, prompt, author string) (*entity.Post, error)
}

type postUseCase struct {
	postRepo  persistent.PostRepository
	generator Generator
	publisher EventPublisher
	logger    *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	generator Generator,
	publisher EventPublisher,
	log *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:  postRepo,
		generator: generator,
		publisher: publisher,
		logger:    log,
	}
}

func (uc *postUseCase) CreatePost(input CreatePostInput) (*entity.Post, error) {
	post := &entity.Post{
		Title:         input.Title,
		Content:       input.Content,
		Excerpt:       input.Excerpt,
		Author:        input.Author,
		FeaturedImage: input.FeaturedImage,
		Published:     input.Published,
		CreatedAt:     time.Now(),
	}

	if post.Excerpt == "" {
		post.Excerpt = post.GenerateExcerpt()
	}

	if err := uc.postRepo.Create(post, input.Tags); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

func (uc *postUseCase) GetPost(id int64) (*entity.Post, error) {
	return uc.postRepo.GetByID(id)
}

func (uc *postUseCase) IncrementViewCount(id int64) error {
	return uc.postRepo.IncrementViews(id)
}

func (uc *postUseCase) UpdatePost(id int64, input UpdatePostInput) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Excerpt != nil {
		post.Excerpt = *input.Excerpt
	}
	if input.Author != nil {
		post.Author = *input.Author
	}
	if input.FeaturedImage != nil {
		post.FeaturedImage = *input.FeaturedImage
	}
	if input.Published != nil {
		post.Published = *input.Published
	}

	now := time.Now()
	post.UpdatedAt = &now

	if err := uc.postRepo.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	if input.Tags != nil {
		if err := uc.postRepo.ReplaceTags(id, *input.Tags); err != nil {
			return nil, fmt.Errorf("failed to replace tags: %w", err)
		}
		post.Tags = *input.Tags
	}

	return post, nil
}

func (uc *postUseCase) DeletePost(id int64) error {
	if _, err := uc.postRepo.GetByID(id); err != nil {
		return err
	}
	return uc.postRepo.Delete(id)
}

func (uc *postUseCase) TogglePublish(id int64) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	post.Published = !post.Published
	if post.Published && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := uc.postRepo.Update(post); err != nil {
		return nil, fmt.Errorf("failed to toggle publish: %w", err)
	}

	if post.Published && uc.publisher != nil {
		event := map[string]interface{}{
			"type":    "post_published",
			"post_id": post.ID,
			"title":   post.Title,
		}
		if err := uc.publisher.PublishPostPublished(event); err != nil {
			uc.logger.Error("Failed to publish post-published event for post %d: %v", post.ID, err)
		}
	}

	return post, nil
}

func (uc *postUseCase) GetPublishedPosts(query ListQuery) (*PageEnvelope, error) {
	posts, total, err := uc.postRepo.ListPublished(persistent.ListParams{
		Page:    query.Page,
		Size:    query.Size,
		SortBy:  query.SortBy,
		SortDir: query.SortDir,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list published posts: %w", err)
	}

	content := make([]PostListItem, len(posts))
	for i, post := range posts {
		content[i] = buildListItem(post, query.Lang)
	}

	var totalPages int64
	if query.Size > 0 {
		totalPages = (total + int64(query.Size) - 1) / int64(query.Size)
	}

	return &PageEnvelope{
		Content:       content,
		Page:          query.Page,
		Size:          query.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

func buildListItem(post *entity.Post, lang string) PostListItem {
	tags := post.Tags
	if tags == nil {
		tags = []string{}
	}

	return PostListItem{
		ID:            post.ID,
		Title:         post.LocalizedTitle(lang),
		Content:       post.LocalizedContent(lang),
		Excerpt:       post.LocalizedExcerpt(lang),
		Author:        post.Author,
		FeaturedImage: post.FeaturedImage,
		Published:     post.Published,
		ViewCount:     post.ViewCount,
		IsAIGenerated: post.IsAIGenerated,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
		PublishedAt:   post.PublishedAt,
		Tags:          tags,
	}
}

func (uc *postUseCase) SearchPosts(keyword string, page, size int) (*SearchEnvelope, error) {
	posts, total, err := uc.postRepo.Search(keyword, page, size)
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}

	return &SearchEnvelope{Content: posts, Total: total, Page: page, Size: size}, nil
}

func (uc *postUseCase) GetPostsByTag(tag string, page, size int) (*SearchEnvelope, error) {
	posts, total, err := uc.postRepo.ListByTag(tag, page, size)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by tag: %w", err)
	}

	return &SearchEnvelope{Content: posts, Total: total, Page: page, Size: size}, nil
}

func (uc *postUseCase) GetTopPosts(limit int) ([]*entity.Post, error) {
	return uc.postRepo.TopByViews(limit)
}

func (uc *postUseCase) GetStatistics() (*entity.BlogStats, error) {
	return uc.postRepo.Statistics()
}

func (uc *postUseCase) AddImage(id int64, imageURL string) error {
	if _, err := uc.postRepo.GetByID(id); err != nil {
		return err
	}
	return uc.postRepo.AddImage(id, imageURL)
}

func (uc *postUseCase) SetFeaturedImage(id int64, imageURL string) error {
	post, err := uc.postRepo.GetByID(id)
	if err != nil {
		return err
	}

	post.FeaturedImage = imageURL
	return uc.postRepo.Update(post)
}

// GeneratePost runs the AI flow: generate a draft, then persist it as an
// unpublished post carrying the generation provenance.
func (uc *postUseCase) GeneratePost(ctx context.Context, prompt, author string) (*entity.Post, error) {
	draft, err := uc.generator.GenerateBlogPost(ctx, prompt)
	if err != nil {
		return nil, err
	}

	if draft.Fallback {
		uc.logger.Warn("AI response was not parseable JSON, synthesized fallback draft for prompt %q", prompt)
	}

	if author == "" {
		author = defaultAIAuthor
	}

	post := &entity.Post{
		Title:         draft.Title,
		Content:       draft.Content,
		Excerpt:       draft.Excerpt,
		Author:        author,
		Published:     false,
		IsAIGenerated: true,
		AIPrompt:      prompt,
		CreatedAt:     time.Now(),
	}

	if post.Excerpt == "" {
		post.Excerpt = post.GenerateExcerpt()
	}

	if err := uc.postRepo.Create(post, draft.Tags); err != nil {
		return nil, fmt.Errorf("failed to create generated post: %w", err)
	}

	return post, nil
}
