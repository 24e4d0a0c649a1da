package model

import "time"

type BlogPostModel struct {
	ID      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title   string `gorm:"type:varchar(200);not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
	Excerpt string `gorm:"type:varchar(500)" json:"excerpt"`

	// Language variants
	TitleBN   string `gorm:"column:title_bn;type:varchar(200)" json:"title_bn"`
	ContentBN string `gorm:"column:content_bn;type:text" json:"content_bn"`
	ExcerptBN string `gorm:"column:excerpt_bn;type:varchar(500)" json:"excerpt_bn"`
	TitleHI   string `gorm:"column:title_hi;type:varchar(200)" json:"title_hi"`
	ContentHI string `gorm:"column:content_hi;type:text" json:"content_hi"`
	ExcerptHI string `gorm:"column:excerpt_hi;type:varchar(500)" json:"excerpt_hi"`

	Author        string     `gorm:"type:varchar(100)" json:"author"`
	FeaturedImage string     `gorm:"type:varchar(500)" json:"featured_image"`
	Published     bool       `gorm:"not null;default:false;index" json:"published"`
	ViewCount     int64      `gorm:"default:0" json:"view_count"`
	IsAIGenerated bool       `gorm:"default:false" json:"is_ai_generated"`
	AIPrompt      string     `gorm:"column:ai_prompt;type:text" json:"ai_prompt"`
	CreatedAt     time.Time  `gorm:"not null;index" json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
	PublishedAt   *time.Time `json:"published_at"`

	Tags   []BlogPostTagModel   `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	Images []BlogPostImageModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
}

func (BlogPostModel) TableName() string {
	return "blog_posts"
}

type BlogPostTagModel struct {
	ID     int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID int64  `gorm:"not null;index" json:"post_id"`
	Tag    string `gorm:"type:varchar(100);not null;index" json:"tag"`
}

func (BlogPostTagModel) TableName() string {
	return "blog_post_tags"
}

type BlogPostImageModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID   int64  `gorm:"not null;index" json:"post_id"`
	ImageURL string `gorm:"type:varchar(500);not null" json:"image_url"`
}

func (BlogPostImageModel) TableName() string {
	return "blog_post_images"
}
