package persistent

import (
	"errors"
	"time"

	"blog-backend/internal/entity"
	"blog-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PollRepository interface {
	Create(poll *entity.Poll, options []string) error
	GetByID(id int64) (*entity.Poll, error)
	ListActive() ([]*entity.Poll, error)
	Vote(pollID, optionID int64, userIP string) error
	Delete(id int64) error
}

type pollRepository struct {
	db *gorm.DB
}

func NewPollRepository(db *gorm.DB) PollRepository {
	return &pollRepository{db: db}
}

func (r *pollRepository) Create(poll *entity.Poll, options []string) error {
	pollModel := &model.BlogPollModel{
		Question:  poll.Question,
		Active:    poll.Active,
		CreatedAt: poll.CreatedAt,
		ExpiresAt: poll.ExpiresAt,
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(pollModel).Error; err != nil {
			return err
		}

		for _, text := range options {
			optionModel := &model.PollOptionModel{PollID: pollModel.ID, OptionText: text}
			if err := tx.Create(optionModel).Error; err != nil {
				return err
			}
			pollModel.Options = append(pollModel.Options, *optionModel)
		}

		*poll = *ToPollEntity(pollModel)
		return nil
	})
}

func (r *pollRepository) GetByID(id int64) (*entity.Poll, error) {
	var pollModel model.BlogPollModel
	if err := r.db.Preload("Options").Where("id = ?", id).First(&pollModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToPollEntity(&pollModel), nil
}

func (r *pollRepository) ListActive() ([]*entity.Poll, error) {
	var pollModels []model.BlogPollModel
	err := r.db.Preload("Options").
		Where("active = ?", true).
		Order("created_at DESC").
		Find(&pollModels).Error
	if err != nil {
		return nil, err
	}

	polls := make([]*entity.Poll, len(pollModels))
	for i := range pollModels {
		polls[i] = ToPollEntity(&pollModels[i])
	}
	return polls, nil
}

func (r *pollRepository) Vote(pollID, optionID int64, userIP string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.PollOptionModel{}).
			Where("id = ? AND poll_id = ?", optionID, pollID).
			UpdateColumn("vote_count", clause.Expr{SQL: "vote_count + ?", Vars: []interface{}{1}})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		voteModel := &model.PollVoteModel{
			PollID:   pollID,
			OptionID: optionID,
			UserIP:   userIP,
			VotedAt:  time.Now(),
		}
		return tx.Create(voteModel).Error
	})
}

func (r *pollRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("poll_id = ?", id).Delete(&model.PollVoteModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("poll_id = ?", id).Delete(&model.PollOptionModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&model.BlogPollModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
