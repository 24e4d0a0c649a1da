package persistent

import (
	"errors"
	"time"

	"blog-backend/internal/entity"
	"blog-backend/internal/model"

	"gorm.io/gorm"
)

type NewsletterRepository interface {
	GetByEmail(email string) (*entity.NewsletterSubscription, error)
	Create(sub *entity.NewsletterSubscription) error
	Reactivate(id int64) error
	Deactivate(email string) error
	ListActive() ([]*entity.NewsletterSubscription, error)
}

type newsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) GetByEmail(email string) (*entity.NewsletterSubscription, error) {
	var subModel model.NewsletterSubscriptionModel
	if err := r.db.Where("email = ?", email).First(&subModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToNewsletterEntity(&subModel), nil
}

func (r *newsletterRepository) Create(sub *entity.NewsletterSubscription) error {
	subModel := &model.NewsletterSubscriptionModel{
		Email:        sub.Email,
		Name:         sub.Name,
		Active:       sub.Active,
		SubscribedAt: sub.SubscribedAt,
	}
	if err := r.db.Create(subModel).Error; err != nil {
		return err
	}
	*sub = *ToNewsletterEntity(subModel)
	return nil
}

func (r *newsletterRepository) Reactivate(id int64) error {
	result := r.db.Model(&model.NewsletterSubscriptionModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"active":          true,
			"unsubscribed_at": nil,
			"subscribed_at":   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *newsletterRepository) Deactivate(email string) error {
	result := r.db.Model(&model.NewsletterSubscriptionModel{}).
		Where("email = ? AND active = ?", email, true).
		Updates(map[string]interface{}{
			"active":          false,
			"unsubscribed_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *newsletterRepository) ListActive() ([]*entity.NewsletterSubscription, error) {
	var subModels []model.NewsletterSubscriptionModel
	err := r.db.Where("active = ?", true).
		Order("subscribed_at DESC").
		Find(&subModels).Error
	if err != nil {
		return nil, err
	}

	subs := make([]*entity.NewsletterSubscription, len(subModels))
	for i := range subModels {
		subs[i] = ToNewsletterEntity(&subModels[i])
	}
	return subs, nil
}
