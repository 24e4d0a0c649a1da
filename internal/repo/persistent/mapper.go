package persistent

import (
	"blog-backend/internal/entity"
	"blog-backend/internal/model"
)

func ToPostEntity(m *model.BlogPostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:            m.ID,
		Title:         m.Title,
		Content:       m.Content,
		Excerpt:       m.Excerpt,
		TitleBN:       m.TitleBN,
		ContentBN:     m.ContentBN,
		ExcerptBN:     m.ExcerptBN,
		TitleHI:       m.TitleHI,
		ContentHI:     m.ContentHI,
		ExcerptHI:     m.ExcerptHI,
		Author:        m.Author,
		FeaturedImage: m.FeaturedImage,
		Published:     m.Published,
		ViewCount:     m.ViewCount,
		IsAIGenerated: m.IsAIGenerated,
		AIPrompt:      m.AIPrompt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		PublishedAt:   m.PublishedAt,
	}

	if len(m.Tags) > 0 {
		post.Tags = make([]string, len(m.Tags))
		for i, t := range m.Tags {
			post.Tags[i] = t.Tag
		}
	}

	return post
}

func ToPostModel(e *entity.Post) *model.BlogPostModel {
	if e == nil {
		return nil
	}

	return &model.BlogPostModel{
		ID:            e.ID,
		Title:         e.Title,
		Content:       e.Content,
		Excerpt:       e.Excerpt,
		TitleBN:       e.TitleBN,
		ContentBN:     e.ContentBN,
		ExcerptBN:     e.ExcerptBN,
		TitleHI:       e.TitleHI,
		ContentHI:     e.ContentHI,
		ExcerptHI:     e.ExcerptHI,
		Author:        e.Author,
		FeaturedImage: e.FeaturedImage,
		Published:     e.Published,
		ViewCount:     e.ViewCount,
		IsAIGenerated: e.IsAIGenerated,
		AIPrompt:      e.AIPrompt,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
		PublishedAt:   e.PublishedAt,
	}
}

func ToPostEntities(models []model.BlogPostModel) []*entity.Post {
	posts := make([]*entity.Post, len(models))
	for i := range models {
		posts[i] = ToPostEntity(&models[i])
	}
	return posts
}

func ToCommentEntity(m *model.BlogCommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:          m.ID,
		PostID:      m.PostID,
		ParentID:    m.ParentID,
		Content:     m.Content,
		AuthorName:  m.AuthorName,
		AuthorEmail: m.AuthorEmail,
		Approved:    m.Approved,
		CreatedAt:   m.CreatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *model.BlogCommentModel {
	if e == nil {
		return nil
	}

	return &model.BlogCommentModel{
		ID:          e.ID,
		PostID:      e.PostID,
		ParentID:    e.ParentID,
		Content:     e.Content,
		AuthorName:  e.AuthorName,
		AuthorEmail: e.AuthorEmail,
		Approved:    e.Approved,
		CreatedAt:   e.CreatedAt,
	}
}

func ToPollEntity(m *model.BlogPollModel) *entity.Poll {
	if m == nil {
		return nil
	}

	poll := &entity.Poll{
		ID:        m.ID,
		Question:  m.Question,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
	}

	if len(m.Options) > 0 {
		poll.Options = make([]entity.PollOption, len(m.Options))
		for i, o := range m.Options {
			poll.Options[i] = entity.PollOption{
				ID:         o.ID,
				PollID:     o.PollID,
				OptionText: o.OptionText,
				VoteCount:  o.VoteCount,
			}
		}
	}

	return poll
}

func ToNewsletterEntity(m *model.NewsletterSubscriptionModel) *entity.NewsletterSubscription {
	if m == nil {
		return nil
	}

	return &entity.NewsletterSubscription{
		ID:             m.ID,
		Email:          m.Email,
		Name:           m.Name,
		Active:         m.Active,
		SubscribedAt:   m.SubscribedAt,
		UnsubscribedAt: m.UnsubscribedAt,
	}
}

func ToPageEntity(m *model.PageModel) *entity.Page {
	if m == nil {
		return nil
	}

	return &entity.Page{
		ID:        m.ID,
		Title:     m.Title,
		Slug:      m.Slug,
		Content:   m.Content,
		Published: m.Published,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToPageModel(e *entity.Page) *model.PageModel {
	if e == nil {
		return nil
	}

	return &model.PageModel{
		ID:        e.ID,
		Title:     e.Title,
		Slug:      e.Slug,
		Content:   e.Content,
		Published: e.Published,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
