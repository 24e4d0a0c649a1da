package usecase

import (
	"errors"
	"fmt"
	"time"

	"blog-backend/internal/entity"
	"blog-backend/internal/repo/persistent"
)

// ErrAlreadySubscribed is returned when the email already has an active
// subscription.
var ErrAlreadySubscribed = errors.New("email is already subscribed")

type NewsletterUseCase interface {
	Subscribe(email, name string) (*entity.NewsletterSubscription, error)
	Unsubscribe(email string) error
	ListSubscribers() ([]*entity.NewsletterSubscription, error)
}

type newsletterUseCase struct {
	newsletterRepo persistent.NewsletterRepository
}

func NewNewsletterUseCase(newsletterRepo persistent.NewsletterRepository) NewsletterUseCase {
	return &newsletterUseCase{newsletterRepo: newsletterRepo}
}

// Subscribe creates a subscription, reactivating a previously unsubscribed
// email instead of inserting a duplicate row.
func (uc *newsletterUseCase) Subscribe(email, name string) (*entity.NewsletterSubscription, error) {
	existing, err := uc.newsletterRepo.GetByEmail(email)
	if err != nil && !errors.Is(err, persistent.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up subscription: %w", err)
	}

	if existing != nil {
		if existing.Active {
			return nil, ErrAlreadySubscribed
		}
		if err := uc.newsletterRepo.Reactivate(existing.ID); err != nil {
			return nil, fmt.Errorf("failed to reactivate subscription: %w", err)
		}
		return uc.newsletterRepo.GetByEmail(email)
	}

	sub := &entity.NewsletterSubscription{
		Email:        email,
		Name:         name,
		Active:       true,
		SubscribedAt: time.Now(),
	}

	if err := uc.newsletterRepo.Create(sub); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	return sub, nil
}

func (uc *newsletterUseCase) Unsubscribe(email string) error {
	return uc.newsletterRepo.Deactivate(email)
}

func (uc *newsletterUseCase) ListSubscribers() ([]*entity.NewsletterSubscription, error) {
	return uc.newsletterRepo.ListActive()
}
