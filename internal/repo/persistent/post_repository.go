package persistent

import (
	"errors"
	"strings"

	"blog-backend/internal/entity"
	"blog-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when an operation targets a record that does not exist.
var ErrNotFound = errors.New("record not found")

// ListParams controls the published-posts listing query.
type ListParams struct {
	Page    int
	Size    int
	SortBy  string
	SortDir string
}

// sortColumns is the allow-list of sortable post attributes. Unrecognized
// keys fall back to created_at.
var sortColumns = map[string]string{
	"id":           "id",
	"title":        "title",
	"author":       "author",
	"view_count":   "view_count",
	"created_at":   "created_at",
	"updated_at":   "updated_at",
	"published_at": "published_at",
}

type PostRepository interface {
	Create(post *entity.Post, tags []string) error
	GetByID(id int64) (*entity.Post, error)
	Update(post *entity.Post) error
	ReplaceTags(postID int64, tags []string) error
	Delete(id int64) error
	ListPublished(params ListParams) ([]*entity.Post, int64, error)
	Search(keyword string, page, size int) ([]*entity.Post, int64, error)
	ListByTag(tag string, page, size int) ([]*entity.Post, int64, error)
	TopByViews(limit int) ([]*entity.Post, error)
	Statistics() (*entity.BlogStats, error)
	IncrementViews(id int64) error
	GetTags(postID int64) ([]string, error)
	AddImage(postID int64, imageURL string) error
	GetImages(postID int64) ([]string, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post, tags []string) error {
	postModel := ToPostModel(post)

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(postModel).Error; err != nil {
			return err
		}

		for _, tag := range tags {
			tagModel := &model.BlogPostTagModel{PostID: postModel.ID, Tag: tag}
			if err := tx.Create(tagModel).Error; err != nil {
				return err
			}
		}

		*post = *ToPostEntity(postModel)
		post.Tags = tags
		return nil
	})
}

func (r *postRepository) GetByID(id int64) (*entity.Post, error) {
	var postModel model.BlogPostModel
	if err := r.db.Preload("Tags").Where("id = ?", id).First(&postModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) Update(post *entity.Post) error {
	postModel := ToPostModel(post)
	return r.db.Save(postModel).Error
}

func (r *postRepository) ReplaceTags(postID int64, tags []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&model.BlogPostTagModel{}).Error; err != nil {
			return err
		}

		for _, tag := range tags {
			tagModel := &model.BlogPostTagModel{PostID: postID, Tag: tag}
			if err := tx.Create(tagModel).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete removes the post and its owned records. The cascade is explicit so
// it holds regardless of how the schema was created.
func (r *postRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.BlogPostTagModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.BlogPostImageModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.BlogCommentModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&model.BlogPostModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *postRepository) ListPublished(params ListParams) ([]*entity.Post, int64, error) {
	query := r.db.Model(&model.BlogPostModel{}).Where("published = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[params.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(params.SortDir, "asc") {
		direction = "ASC"
	}

	var postModels []model.BlogPostModel
	err := query.Preload("Tags").
		Order(column + " " + direction).
		Offset(params.Page * params.Size).
		Limit(params.Size).
		Find(&postModels).Error
	if err != nil {
		return nil, 0, err
	}

	return ToPostEntities(postModels), total, nil
}

func (r *postRepository) Search(keyword string, page, size int) ([]*entity.Post, int64, error) {
	pattern := "%" + keyword + "%"
	query := r.db.Model(&model.BlogPostModel{}).
		Where("published = ? AND (title ILIKE ? OR content ILIKE ? OR excerpt ILIKE ?)",
			true, pattern, pattern, pattern)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var postModels []model.BlogPostModel
	err := query.Preload("Tags").
		Order("created_at DESC").
		Offset(page * size).
		Limit(size).
		Find(&postModels).Error
	if err != nil {
		return nil, 0, err
	}

	return ToPostEntities(postModels), total, nil
}

func (r *postRepository) ListByTag(tag string, page, size int) ([]*entity.Post, int64, error) {
	taggedPostIDs := r.db.Model(&model.BlogPostTagModel{}).
		Select("post_id").
		Where("tag = ?", tag)

	query := r.db.Model(&model.BlogPostModel{}).
		Where("published = ? AND id IN (?)", true, taggedPostIDs)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var postModels []model.BlogPostModel
	err := query.Preload("Tags").
		Order("created_at DESC").
		Offset(page * size).
		Limit(size).
		Find(&postModels).Error
	if err != nil {
		return nil, 0, err
	}

	return ToPostEntities(postModels), total, nil
}

func (r *postRepository) TopByViews(limit int) ([]*entity.Post, error) {
	var postModels []model.BlogPostModel
	err := r.db.Model(&model.BlogPostModel{}).
		Preload("Tags").
		Where("published = ?", true).
		Order("view_count DESC").
		Limit(limit).
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}

	return ToPostEntities(postModels), nil
}

func (r *postRepository) Statistics() (*entity.BlogStats, error) {
	stats := &entity.BlogStats{}

	if err := r.db.Model(&model.BlogPostModel{}).Count(&stats.TotalPosts).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.BlogPostModel{}).
		Where("published = ?", true).
		Count(&stats.PublishedPosts).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.BlogPostModel{}).
		Select("COALESCE(SUM(view_count), 0)").
		Scan(&stats.TotalViews).Error; err != nil {
		return nil, err
	}

	stats.DraftPosts = stats.TotalPosts - stats.PublishedPosts
	return stats, nil
}

// IncrementViews bumps the counter in a single UPDATE. A missing id is a
// silent no-op.
func (r *postRepository) IncrementViews(id int64) error {
	return r.db.Model(&model.BlogPostModel{}).
		Where("id = ?", id).
		UpdateColumn("view_count", clause.Expr{SQL: "view_count + ?", Vars: []interface{}{1}}).Error
}

func (r *postRepository) GetTags(postID int64) ([]string, error) {
	var tags []string
	err := r.db.Model(&model.BlogPostTagModel{}).
		Where("post_id = ?", postID).
		Pluck("tag", &tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *postRepository) AddImage(postID int64, imageURL string) error {
	imageModel := &model.BlogPostImageModel{PostID: postID, ImageURL: imageURL}
	return r.db.Create(imageModel).Error
}

func (r *postRepository) GetImages(postID int64) ([]string, error) {
	var urls []string
	err := r.db.Model(&model.BlogPostImageModel{}).
		Where("post_id = ?", postID).
		Pluck("image_url", &urls).Error
	if err != nil {
		return nil, err
	}
	return urls, nil
}
