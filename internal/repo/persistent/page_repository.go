package persistent

import (
	"errors"

	"blog-backend/internal/entity"
	"blog-backend/internal/model"

	"gorm.io/gorm"
)

type PageRepository interface {
	Create(page *entity.Page) error
	GetByID(id int64) (*entity.Page, error)
	GetBySlug(slug string) (*entity.Page, error)
	Update(page *entity.Page) error
	Delete(id int64) error
	List() ([]*entity.Page, error)
}

type pageRepository struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) PageRepository {
	return &pageRepository{db: db}
}

func (r *pageRepository) Create(page *entity.Page) error {
	pageModel := ToPageModel(page)
	if err := r.db.Create(pageModel).Error; err != nil {
		return err
	}
	*page = *ToPageEntity(pageModel)
	return nil
}

func (r *pageRepository) GetByID(id int64) (*entity.Page, error) {
	var pageModel model.PageModel
	if err := r.db.Where("id = ?", id).First(&pageModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToPageEntity(&pageModel), nil
}

func (r *pageRepository) GetBySlug(slug string) (*entity.Page, error) {
	var pageModel model.PageModel
	if err := r.db.Where("slug = ?", slug).First(&pageModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToPageEntity(&pageModel), nil
}

func (r *pageRepository) Update(page *entity.Page) error {
	pageModel := ToPageModel(page)
	return r.db.Save(pageModel).Error
}

func (r *pageRepository) Delete(id int64) error {
	result := r.db.Where("id = ?", id).Delete(&model.PageModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pageRepository) List() ([]*entity.Page, error) {
	var pageModels []model.PageModel
	if err := r.db.Order("created_at DESC").Find(&pageModels).Error; err != nil {
		return nil, err
	}

	pages := make([]*entity.Page, len(pageModels))
	for i := range pageModels {
		pages[i] = ToPageEntity(&pageModels[i])
	}
	return pages, nil
}
