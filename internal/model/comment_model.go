package model

import "time"

type BlogCommentModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID      int64     `gorm:"not null;index" json:"post_id"`
	ParentID    *int64    `gorm:"index" json:"parent_id"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	AuthorName  string    `gorm:"type:varchar(100)" json:"author_name"`
	AuthorEmail string    `gorm:"type:varchar(100)" json:"author_email"`
	Approved    bool      `gorm:"default:false;index" json:"approved"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

func (BlogCommentModel) TableName() string {
	return "blog_comments"
}
