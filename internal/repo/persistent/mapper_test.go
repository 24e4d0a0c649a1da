package persistent

import (
	"testing"
	"time"

	"blog-backend/internal/entity"
	"blog-backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestToPostEntity_FlattensTags(t *testing.T) {
	now := time.Now()
	m := &model.BlogPostModel{
		ID:        1,
		Title:     "Hello",
		Content:   "body",
		TitleBN:   "হ্যালো",
		Published: true,
		ViewCount: 3,
		CreatedAt: now,
		Tags: []model.BlogPostTagModel{
			{ID: 1, PostID: 1, Tag: "go"},
			{ID: 2, PostID: 1, Tag: "web"},
		},
	}

	post := ToPostEntity(m)

	assert.Equal(t, int64(1), post.ID)
	assert.Equal(t, "হ্যালো", post.TitleBN)
	assert.Equal(t, []string{"go", "web"}, post.Tags)
	assert.Equal(t, now, post.CreatedAt)
}

func TestToPostEntity_Nil(t *testing.T) {
	assert.Nil(t, ToPostEntity(nil))
	assert.Nil(t, ToPostModel(nil))
}

func TestPostRoundTrip(t *testing.T) {
	published := time.Now()
	e := &entity.Post{
		ID:            9,
		Title:         "Round trip",
		Content:       "content",
		Excerpt:       "excerpt",
		Author:        "alice",
		Published:     true,
		IsAIGenerated: true,
		AIPrompt:      "prompt",
		PublishedAt:   &published,
	}

	got := ToPostEntity(ToPostModel(e))

	assert.Equal(t, e.Title, got.Title)
	assert.Equal(t, e.AIPrompt, got.AIPrompt)
	assert.Equal(t, e.PublishedAt, got.PublishedAt)
	assert.Nil(t, got.Tags)
}

func TestToPollEntity_Options(t *testing.T) {
	m := &model.BlogPollModel{
		ID:       4,
		Question: "Favorite topic?",
		Active:   true,
		Options: []model.PollOptionModel{
			{ID: 1, PollID: 4, OptionText: "Go", VoteCount: 12},
			{ID: 2, PollID: 4, OptionText: "Rust", VoteCount: 8},
		},
	}

	poll := ToPollEntity(m)

	assert.Len(t, poll.Options, 2)
	assert.Equal(t, int64(12), poll.Options[0].VoteCount)
	assert.Equal(t, "Rust", poll.Options[1].OptionText)
}
