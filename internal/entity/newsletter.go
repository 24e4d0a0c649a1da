package entity

import "time"

type NewsletterSubscription struct {
	ID             int64      `json:"id"`
	Email          string     `json:"email"`
	Name           string     `json:"name,omitempty"`
	Active         bool       `json:"active"`
	SubscribedAt   time.Time  `json:"subscribed_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`
}
