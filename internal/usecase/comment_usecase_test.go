package usecase

import (
	"testing"

	"blog-backend/internal/entity"
	"blog-backend/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCommentRepository is a mock implementation of persistent.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *entity.Comment) error {
	args := m.Called(comment)
	if args.Error(0) == nil {
		comment.ID = 1
	}
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(id int64) (*entity.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByPost(postID int64, approvedOnly bool) ([]*entity.Comment, error) {
	args := m.Called(postID, approvedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) SetApproved(id int64, approved bool) error {
	args := m.Called(id, approved)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.CommentRepository = (*MockCommentRepository)(nil)

func TestCreateComment_StartsUnapproved(t *testing.T) {
	mockComments := new(MockCommentRepository)
	mockPosts := new(MockPostRepository)
	uc := NewCommentUseCase(mockComments, mockPosts)

	mockPosts.On("GetByID", int64(10)).Return(&entity.Post{ID: 10}, nil)
	mockComments.On("Create", mock.AnythingOfType("*entity.Comment")).Return(nil)

	comment, err := uc.CreateComment(CreateCommentInput{
		PostID:     10,
		Content:    "Nice post!",
		AuthorName: "reader",
	})

	assert.NoError(t, err)
	assert.False(t, comment.Approved)
	assert.Equal(t, int64(10), comment.PostID)
}

func TestCreateComment_MissingPost(t *testing.T) {
	mockComments := new(MockCommentRepository)
	mockPosts := new(MockPostRepository)
	uc := NewCommentUseCase(mockComments, mockPosts)

	mockPosts.On("GetByID", int64(404)).Return(nil, persistent.ErrNotFound)

	_, err := uc.CreateComment(CreateCommentInput{PostID: 404, Content: "x", AuthorName: "reader"})

	assert.ErrorIs(t, err, persistent.ErrNotFound)
	mockComments.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateComment_ParentOnOtherPost(t *testing.T) {
	mockComments := new(MockCommentRepository)
	mockPosts := new(MockPostRepository)
	uc := NewCommentUseCase(mockComments, mockPosts)

	mockPosts.On("GetByID", int64(10)).Return(&entity.Post{ID: 10}, nil)
	parentID := int64(7)
	mockComments.On("GetByID", parentID).Return(&entity.Comment{ID: 7, PostID: 99}, nil)

	_, err := uc.CreateComment(CreateCommentInput{
		PostID:     10,
		ParentID:   &parentID,
		Content:    "reply",
		AuthorName: "reader",
	})

	assert.ErrorIs(t, err, ErrParentMismatch)
	mockComments.AssertNotCalled(t, "Create", mock.Anything)
}

func TestListComments_ApprovedOnly(t *testing.T) {
	mockComments := new(MockCommentRepository)
	mockPosts := new(MockPostRepository)
	uc := NewCommentUseCase(mockComments, mockPosts)

	mockPosts.On("GetByID", int64(10)).Return(&entity.Post{ID: 10}, nil)
	mockComments.On("ListByPost", int64(10), true).Return([]*entity.Comment{{ID: 1, Approved: true}}, nil)

	comments, err := uc.ListComments(10, true)

	assert.NoError(t, err)
	assert.Len(t, comments, 1)
	mockComments.AssertExpectations(t)
}
