package model

import "time"

type NewsletterSubscriptionModel struct {
	ID             int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email          string     `gorm:"type:varchar(100);not null;uniqueIndex" json:"email"`
	Name           string     `gorm:"type:varchar(100)" json:"name"`
	Active         bool       `gorm:"default:true" json:"active"`
	SubscribedAt   time.Time  `gorm:"not null" json:"subscribed_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at"`
}

func (NewsletterSubscriptionModel) TableName() string {
	return "newsletter_subscriptions"
}
