package usecase

import (
	"fmt"
	"time"

	"blog-backend/internal/entity"
	"blog-backend/internal/repo/persistent"
)

type CreatePageInput struct {
	Title     string
	Slug      string
	Content   string
	Published bool
}

type UpdatePageInput struct {
	Title     *string
	Slug      *string
	Content   *string
	Published *bool
}

type PageUseCase interface {
	CreatePage(input CreatePageInput) (*entity.Page, error)
	GetPage(id int64) (*entity.Page, error)
	GetPageBySlug(slug string) (*entity.Page, error)
	UpdatePage(id int64, input UpdatePageInput) (*entity.Page, error)
	DeletePage(id int64) error
	ListPages() ([]*entity.Page, error)
}

type pageUseCase struct {
	pageRepo persistent.PageRepository
}

func NewPageUseCase(pageRepo persistent.PageRepository) PageUseCase {
	return &pageUseCase{pageRepo: pageRepo}
}

func (uc *pageUseCase) CreatePage(input CreatePageInput) (*entity.Page, error) {
	page := &entity.Page{
		Title:     input.Title,
		Slug:      input.Slug,
		Content:   input.Content,
		Published: input.Published,
		CreatedAt: time.Now(),
	}

	if err := uc.pageRepo.Create(page); err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	return page, nil
}

func (uc *pageUseCase) GetPage(id int64) (*entity.Page, error) {
	return uc.pageRepo.GetByID(id)
}

func (uc *pageUseCase) GetPageBySlug(slug string) (*entity.Page, error) {
	return uc.pageRepo.GetBySlug(slug)
}

func (uc *pageUseCase) UpdatePage(id int64, input UpdatePageInput) (*entity.Page, error) {
	page, err := uc.pageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		page.Title = *input.Title
	}
	if input.Slug != nil {
		page.Slug = *input.Slug
	}
	if input.Content != nil {
		page.Content = *input.Content
	}
	if input.Published != nil {
		page.Published = *input.Published
	}

	now := time.Now()
	page.UpdatedAt = &now

	if err := uc.pageRepo.Update(page); err != nil {
		return nil, fmt.Errorf("failed to update page: %w", err)
	}

	return page, nil
}

func (uc *pageUseCase) DeletePage(id int64) error {
	if _, err := uc.pageRepo.GetByID(id); err != nil {
		return err
	}
	return uc.pageRepo.Delete(id)
}

func (uc *pageUseCase) ListPages() ([]*entity.Page, error) {
	return uc.pageRepo.List()
}
