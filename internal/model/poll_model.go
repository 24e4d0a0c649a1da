package model

import "time"

type BlogPollModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Question  string          `gorm:"type:varchar(500);not null" json:"question"`
	Active    bool            `gorm:"default:true;index" json:"active"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	ExpiresAt *time.Time      `json:"expires_at"`
	Options   []PollOptionModel `gorm:"foreignKey:PollID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
}

func (BlogPollModel) TableName() string {
	return "blog_polls"
}

type PollOptionModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	PollID     int64  `gorm:"not null;index" json:"poll_id"`
	OptionText string `gorm:"type:varchar(200);not null" json:"option_text"`
	VoteCount  int64  `gorm:"default:0" json:"vote_count"`
}

func (PollOptionModel) TableName() string {
	return "poll_options"
}

type PollVoteModel struct {
	ID       int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PollID   int64     `gorm:"not null;index" json:"poll_id"`
	OptionID int64     `gorm:"not null;index" json:"option_id"`
	UserIP   string    `gorm:"type:varchar(45)" json:"user_ip"`
	VotedAt  time.Time `gorm:"not null" json:"voted_at"`
}

func (PollVoteModel) TableName() string {
	return "poll_votes"
}
