package model

import "time"

type PageModel struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string     `gorm:"type:varchar(200);not null" json:"title"`
	Slug      string     `gorm:"type:varchar(200);not null;uniqueIndex" json:"slug"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	Published bool       `gorm:"default:false" json:"published"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (PageModel) TableName() string {
	return "pages"
}
