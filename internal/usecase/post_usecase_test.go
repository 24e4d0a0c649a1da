package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"blog-backend/internal/entity"
	"blog-backend/internal/repo/persistent"
	"blog-backend/pkg/ai"
	"blog-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPostRepository is a mock implementation of persistent.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *entity.Post, tags []string) error {
	args := m.Called(post, tags)
	if args.Error(0) == nil {
		post.ID = 1
		post.Tags = tags
	}
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(id int64) (*entity.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) Update(post *entity.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) ReplaceTags(postID int64, tags []string) error {
	args := m.Called(postID, tags)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPostRepository) ListPublished(params persistent.ListParams) ([]*entity.Post, int64, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostRepository) Search(keyword string, page, size int) ([]*entity.Post, int64, error) {
	args := m.Called(keyword, page, size)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostRepository) ListByTag(tag string, page, size int) ([]*entity.Post, int64, error) {
	args := m.Called(tag, page, size)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostRepository) TopByViews(limit int) ([]*entity.Post, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostRepository) Statistics() (*entity.BlogStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BlogStats), args.Error(1)
}

func (m *MockPostRepository) IncrementViews(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPostRepository) GetTags(postID int64) ([]string, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPostRepository) AddImage(postID int64, imageURL string) error {
	args := m.Called(postID, imageURL)
	return args.Error(0)
}

func (m *MockPostRepository) GetImages(postID int64) ([]string, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ persistent.PostRepository = (*MockPostRepository)(nil)

// MockGenerator is a mock implementation of Generator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateBlogPost(ctx context.Context, prompt string) (*ai.Draft, error) {
	args := m.Called(ctx, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ai.Draft), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishPostPublished(event map[string]interface{}) error {
	args := m.Called(event)
	return args.Error(0)
}

func newTestUseCase(repo *MockPostRepository, gen *MockGenerator, pub EventPublisher) PostUseCase {
	return NewPostUseCase(repo, gen, pub, logger.New())
}

func TestCreatePost_DerivesExcerpt(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := newTestUseCase(mockRepo, nil, nil)

	longContent := strings.Repeat("a", 300)
	mockRepo.On("Create", mock.AnythingOfType("*entity.Post"), []string{"go"}).Return(nil)

	post, err := uc.CreatePost(CreatePostInput{
		Title:   "Hello",
		Content: longContent,
		Author:  "alice",
		Tags:    []string{"go"},
	})

	assert.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 197)+"...", post.Excerpt)
	assert.False(t, post.Published)
	mockRepo.AssertExpectations(t)
}

func TestCreatePost_KeepsExplicitExcerpt(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := newTestUseCase(mockRepo, nil, nil)

	mockRepo.On("Create", mock.AnythingOfType("*entity.Post"), []string(nil)).Return(nil)

	post, err := uc.CreatePost(CreatePostInput{
		Title:   "Hello",
		Content: strings.Repeat("b", 500),
		Excerpt: "custom excerpt",
		Author:  "alice",
	})

	assert.NoError(t, err)
	assert.Equal(t, "custom excerpt", post.Excerpt)
}

func TestUpdatePost_PartialFields(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := newTestUseCase(mockRepo, nil, nil)

	existing := &entity.Post{ID: 5, Title: "Old", Content: "body", Author: "alice"}
	mockRepo.On("GetByID", int64(5)).Return(existing, nil)
	mockRepo.On("Update", mock.AnythingOfType("*entity.Post")).Return(nil)

	newTitle := "New"
	post, err := uc.UpdatePost(5, UpdatePostInput{Title: &newTitle})

	assert.NoError(t, err)
	assert.Equal(t, "New", post.Title)
	assert.Equal(t, "body", post.Content)
	assert.NotNil(t, post.UpdatedAt)
	mockRepo.AssertNotCalled(t, "ReplaceTags", mock.Anything, mock.Anything)
}

func TestUpdatePost_ClearTags(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := newTestUseCase(mockRepo, nil, nil)

	existing := &entity.Post{ID: 5, Title: "Old", Tags: []string{"go", "web"}}
	mockRepo.On("GetByID", int64(5)).Return(existing, nil)
	mockRepo.On("Update", mock.AnythingOfType("*entity.Post")).Return(nil)
	mockRepo.On("ReplaceTags", int64(5), []string{}).Return(nil)

	empty := []string{}
	post, err := uc.UpdatePost(5, UpdatePostInput{Tags: &empty})

	assert.NoError(t, err)
	assert.Empty(t, post.Tags)
	mockRepo.AssertExpectations(t)
}

func TestUpdatePost_NotFound(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := newTestUseCase(mockRepo, nil, nil)

	mockRepo.On("GetByID", int64(99)).Return(nil, persistent.ErrNotFound)

	title := "x"
	_, err := uc.UpdatePost(99, UpdatePostInput{Title: &title})

	assert.ErrorIs(t, err, persistent.ErrNotFound)
}

func TestTogglePublish_SetsPublishedAtOnce(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockPub := new(MockEventPublisher)
	uc := newTestUseCase(mockRepo, nil, mockPub)

	existing := &entity.Post{ID: 1, Title: "Draft", Published: false}
	mockRepo.On("GetByID", int64(1)).Return(existing, nil)
	mockRepo.On("Update", mock.AnythingOfType("*entity.Post")).Return(nil)
	mockPub.On("PublishPostPublished", mock.Anything).Return(nil)

	post, err := uc.TogglePublish(1)
	assert.NoError(t, err)
	assert.True(t, post.Published)
	assert.NotNil(t, post.PublishedAt)

	firstPublishedAt := post.PublishedAt

	// Unpublish and republish: the original timestamp must survive.
	post, err = uc.TogglePublish(1)
	assert.NoError(t, err)
	assert.False(t, post.Published)
	assert.Equal(t, firstPublishedAt, post.PublishedAt)

	post, err = uc.TogglePublish(1)
	assert.NoError(t, err)
	assert.True(t, post.Published)
	assert.Equal(t, firstPublishedAt, post.PublishedAt)

	mockPub.AssertNumberOfCalls(t, "PublishPostPublished", 2)
}

func TestTogglePublish_PublishEventFailureIsNonFatal(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockPub := new(MockEventPublisher)
	uc := newTestUseCase(mockRepo, nil, mockPub)

	existing := &entity.Post{ID: 2, Published: false}
	mockRepo.On("GetByID", int64(2)).Return(existing, nil)
	mockRepo.On("Update", mock.AnythingOfType("*entity.Post")).Return(nil)
	mockPub.On("PublishPostPublished", mock.Anything).Return(errors.New("broker down"))

	post, err := uc.TogglePublish(2)

	assert.NoError(t, err)
	assert.True(t, post.Published)
}

func TestGetPublishedPosts_PaginationMath(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := newTestUseCase(mockRepo, nil, nil)

	posts := []*entity.Post{
		{ID: 1, Title: "A", Content: "body", CreatedAt: time.Now()},
	}
	mockRepo.On("ListPublished", mock.AnythingOfType("persistent.ListParams")).Return(posts, int64(11), nil)

	envelope, err := uc.GetPublishedPosts(ListQuery{Page: 1, Size: 5, SortBy: "created_at", SortDir: "desc"})

	assert.NoError(t, err)
	assert.Equal(t, int64(11), envelope.TotalElements)
	assert.Equal(t, int64(3), envelope.TotalPages)
	assert.Len(t, envelope.Content, 1)
	assert.NotNil(t, envelope.Content[0].Tags)
}

func TestGetPublishedPosts_Empty(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := newTestUseCase(mockRepo, nil, nil)

	mockRepo.On("ListPublished", mock.AnythingOfType("persistent.ListParams")).Return([]*entity.Post{}, int64(0), nil)

	envelope, err := uc.GetPublishedPosts(ListQuery{Page: 1, Size: 10})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), envelope.TotalElements)
	assert.Equal(t, int64(0), envelope.TotalPages)
	assert.Empty(t, envelope.Content)
}

func TestGetPublishedPosts_Localized(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := newTestUseCase(mockRepo, nil, nil)

	posts := []*entity.Post{
		{ID: 1, Title: "Hello", Content: "English body", TitleBN: "হ্যালো", ContentBN: "বাংলা"},
		{ID: 2, Title: "Other", Content: "English only"},
	}
	mockRepo.On("ListPublished", mock.AnythingOfType("persistent.ListParams")).Return(posts, int64(2), nil)

	envelope, err := uc.GetPublishedPosts(ListQuery{Page: 1, Size: 10, Lang: "bn"})

	assert.NoError(t, err)
	assert.Equal(t, "হ্যালো", envelope.Content[0].Title)
	// Falls back to the default locale when no translation exists.
	assert.Equal(t, "Other", envelope.Content[1].Title)
}

func TestDeletePost_NotFound(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := newTestUseCase(mockRepo, nil, nil)

	mockRepo.On("GetByID", int64(7)).Return(nil, persistent.ErrNotFound)

	err := uc.DeletePost(7)

	assert.ErrorIs(t, err, persistent.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestGetStatistics_Empty(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := newTestUseCase(mockRepo, nil, nil)

	mockRepo.On("Statistics").Return(&entity.BlogStats{}, nil)

	stats, err := uc.GetStatistics()

	assert.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalPosts)
	assert.Equal(t, int64(0), stats.TotalViews)
}

func TestGeneratePost_PersistsDraft(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockGen := new(MockGenerator)
	uc := newTestUseCase(mockRepo, mockGen, nil)

	draft := &ai.Draft{
		Title:   "Go Concurrency",
		Content: "Channels and goroutines.",
		Excerpt: "Channels and goroutines.",
		Tags:    []string{"go", "concurrency"},
	}
	mockGen.On("GenerateBlogPost", mock.Anything, "write about go").Return(draft, nil)
	mockRepo.On("Create", mock.AnythingOfType("*entity.Post"), []string{"go", "concurrency"}).Return(nil)

	post, err := uc.GeneratePost(context.Background(), "write about go", "")

	assert.NoError(t, err)
	assert.Equal(t, "Go Concurrency", post.Title)
	assert.Equal(t, "AI Assistant", post.Author)
	assert.True(t, post.IsAIGenerated)
	assert.Equal(t, "write about go", post.AIPrompt)
	assert.False(t, post.Published)
	mockRepo.AssertExpectations(t)
}

func TestGeneratePost_UpstreamError(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockGen := new(MockGenerator)
	uc := newTestUseCase(mockRepo, mockGen, nil)

	mockGen.On("GenerateBlogPost", mock.Anything, "prompt").Return(nil, errors.New("openrouter: status 429"))

	_, err := uc.GeneratePost(context.Background(), "prompt", "bob")

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
