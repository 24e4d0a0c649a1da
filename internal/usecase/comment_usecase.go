package usecase

import (
	"errors"
	"fmt"
	"time"

	"blog-backend/internal/entity"
	"blog-backend/internal/repo/persistent"
)

// ErrParentMismatch is returned when a reply references a parent comment that
// belongs to a different post.
var ErrParentMismatch = errors.New("parent comment belongs to another post")

type CreateCommentInput struct {
	PostID      int64
	ParentID    *int64
	Content     string
	AuthorName  string
	AuthorEmail string
}

type CommentUseCase interface {
	CreateComment(input CreateCommentInput) (*entity.Comment, error)
	ListComments(postID int64, approvedOnly bool) ([]*entity.Comment, error)
	ApproveComment(id int64) error
	DeleteComment(id int64) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	postRepo    persistent.PostRepository
}

func NewCommentUseCase(commentRepo persistent.CommentRepository, postRepo persistent.PostRepository) CommentUseCase {
	return &commentUseCase{commentRepo: commentRepo, postRepo: postRepo}
}

func (uc *commentUseCase) CreateComment(input CreateCommentInput) (*entity.Comment, error) {
	if _, err := uc.postRepo.GetByID(input.PostID); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		parent, err := uc.commentRepo.GetByID(*input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.PostID != input.PostID {
			return nil, ErrParentMismatch
		}
	}

	comment := &entity.Comment{
		PostID:      input.PostID,
		ParentID:    input.ParentID,
		Content:     input.Content,
		AuthorName:  input.AuthorName,
		AuthorEmail: input.AuthorEmail,
		Approved:    false,
		CreatedAt:   time.Now(),
	}

	if err := uc.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

func (uc *commentUseCase) ListComments(postID int64, approvedOnly bool) ([]*entity.Comment, error) {
	if _, err := uc.postRepo.GetByID(postID); err != nil {
		return nil, err
	}
	return uc.commentRepo.ListByPost(postID, approvedOnly)
}

func (uc *commentUseCase) ApproveComment(id int64) error {
	return uc.commentRepo.SetApproved(id, true)
}

func (uc *commentUseCase) DeleteComment(id int64) error {
	return uc.commentRepo.Delete(id)
}
