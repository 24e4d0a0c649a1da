package persistent

import (
	"errors"

	"blog-backend/internal/entity"
	"blog-backend/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *entity.Comment) error
	GetByID(id int64) (*entity.Comment, error)
	ListByPost(postID int64, approvedOnly bool) ([]*entity.Comment, error)
	SetApproved(id int64, approved bool) error
	Delete(id int64) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) GetByID(id int64) (*entity.Comment, error) {
	var commentModel model.BlogCommentModel
	if err := r.db.Where("id = ?", id).First(&commentModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) ListByPost(postID int64, approvedOnly bool) ([]*entity.Comment, error) {
	query := r.db.Where("post_id = ?", postID)
	if approvedOnly {
		query = query.Where("approved = ?", true)
	}

	var commentModels []model.BlogCommentModel
	if err := query.Order("created_at ASC").Find(&commentModels).Error; err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}

func (r *commentRepository) SetApproved(id int64, approved bool) error {
	result := r.db.Model(&model.BlogCommentModel{}).
		Where("id = ?", id).
		Update("approved", approved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *commentRepository) Delete(id int64) error {
	result := r.db.Where("id = ?", id).Delete(&model.BlogCommentModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
