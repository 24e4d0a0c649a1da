package usecase

import (
	"errors"
	"fmt"
	"time"

	"blog-backend/internal/entity"
	"blog-backend/internal/repo/persistent"
)

var (
	ErrPollInactive = errors.New("poll is not active")
	ErrPollExpired  = errors.New("poll has expired")
)

type CreatePollInput struct {
	Question  string
	Options   []string
	ExpiresAt *time.Time
}

type PollUseCase interface {
	CreatePoll(input CreatePollInput) (*entity.Poll, error)
	GetPoll(id int64) (*entity.Poll, error)
	ListActivePolls() ([]*entity.Poll, error)
	Vote(pollID, optionID int64, userIP string) (*entity.Poll, error)
	DeletePoll(id int64) error
}

type pollUseCase struct {
	pollRepo persistent.PollRepository
}

func NewPollUseCase(pollRepo persistent.PollRepository) PollUseCase {
	return &pollUseCase{pollRepo: pollRepo}
}

func (uc *pollUseCase) CreatePoll(input CreatePollInput) (*entity.Poll, error) {
	poll := &entity.Poll{
		Question:  input.Question,
		Active:    true,
		ExpiresAt: input.ExpiresAt,
		CreatedAt: time.Now(),
	}

	if err := uc.pollRepo.Create(poll, input.Options); err != nil {
		return nil, fmt.Errorf("failed to create poll: %w", err)
	}

	return poll, nil
}

func (uc *pollUseCase) GetPoll(id int64) (*entity.Poll, error) {
	return uc.pollRepo.GetByID(id)
}

func (uc *pollUseCase) ListActivePolls() ([]*entity.Poll, error) {
	return uc.pollRepo.ListActive()
}

// Vote registers a vote and returns the poll with refreshed counts.
func (uc *pollUseCase) Vote(pollID, optionID int64, userIP string) (*entity.Poll, error) {
	poll, err := uc.pollRepo.GetByID(pollID)
	if err != nil {
		return nil, err
	}

	if !poll.Active {
		return nil, ErrPollInactive
	}
	if poll.ExpiresAt != nil && poll.ExpiresAt.Before(time.Now()) {
		return nil, ErrPollExpired
	}

	if err := uc.pollRepo.Vote(pollID, optionID, userIP); err != nil {
		return nil, err
	}

	return uc.pollRepo.GetByID(pollID)
}

func (uc *pollUseCase) DeletePoll(id int64) error {
	if _, err := uc.pollRepo.GetByID(id); err != nil {
		return err
	}
	return uc.pollRepo.Delete(id)
}
