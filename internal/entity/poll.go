package entity

import "time"

type Poll struct {
	ID        int64        `json:"id"`
	Question  string       `json:"question"`
	Active    bool         `json:"active"`
	CreatedAt time.Time    `json:"created_at"`
	ExpiresAt *time.Time   `json:"expires_at,omitempty"`
	Options   []PollOption `json:"options,omitempty"`
}

type PollOption struct {
	ID         int64  `json:"id"`
	PollID     int64  `json:"poll_id"`
	OptionText string `json:"option_text"`
	VoteCount  int64  `json:"vote_count"`
}

type PollVote struct {
	ID       int64     `json:"id"`
	PollID   int64     `json:"poll_id"`
	OptionID int64     `json:"option_id"`
	UserIP   string    `json:"user_ip,omitempty"`
	VotedAt  time.Time `json:"voted_at"`
}
