package main

import (
	"flag"
	"fmt"
	"time"

	"blog-backend/internal/entity"
	"blog-backend/internal/repo/persistent"
	"blog-backend/pkg/config"
	"blog-backend/pkg/database"
	"blog-backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	var hashPassword string
	flag.StringVar(&hashPassword, "hash", "", "print a bcrypt hash for the given password and exit")
	flag.Parse()

	if hashPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(hashPassword), bcrypt.DefaultCost)
		if err != nil {
			panic(err)
		}
		fmt.Println(string(hash))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	postRepo := persistent.NewPostRepository(db)
	pollRepo := persistent.NewPollRepository(db)
	pageRepo := persistent.NewPageRepository(db)

	samplePosts := []struct {
		post entity.Post
		tags []string
	}{
		{
			post: entity.Post{
				Title:   "Welcome to the Blog",
				Content: "This is the first post. It introduces the blog, explains what kind of content to expect and invites readers to subscribe to the newsletter for updates.",
				Author:  "admin",
			},
			tags: []string{"announcement"},
		},
		{
			post: entity.Post{
				Title:     "Getting Started with Go",
				Content:   "Go is a statically typed, compiled language designed for simplicity and concurrency. This post walks through installing the toolchain, writing a first program and understanding packages and modules.",
				TitleBN:   "গো দিয়ে শুরু করা",
				ContentBN: "গো একটি স্ট্যাটিক্যালি টাইপড, কম্পাইলড ভাষা যা সরলতা এবং কনকারেন্সির জন্য ডিজাইন করা হয়েছে।",
				Author:    "admin",
			},
			tags: []string{"go", "tutorial"},
		},
		{
			post: entity.Post{
				Title:   "Designing REST APIs",
				Content: "A practical look at resource naming, status codes, pagination envelopes and error shapes. Small decisions made early keep an API consistent as it grows.",
				Author:  "admin",
			},
			tags: []string{"api", "design"},
		},
	}

	for i := range samplePosts {
		p := &samplePosts[i].post
		p.Excerpt = p.GenerateExcerpt()
		p.Published = true
		now := time.Now()
		p.CreatedAt = now
		p.PublishedAt = &now

		if err := postRepo.Create(p, samplePosts[i].tags); err != nil {
			return fmt.Errorf("failed to seed post %q: %w", p.Title, err)
		}
		log.Info("Seeded post: %s", p.Title)
	}

	poll := &entity.Poll{
		Question:  "Which topic should we cover next?",
		Active:    true,
		CreatedAt: time.Now(),
	}
	if err := pollRepo.Create(poll, []string{"Databases", "Testing", "Deployment"}); err != nil {
		return fmt.Errorf("failed to seed poll: %w", err)
	}
	log.Info("Seeded poll: %s", poll.Question)

	about := &entity.Page{
		Title:     "About",
		Slug:      "about",
		Content:   "A multilingual blog about software, written in English, Bengali and Hindi.",
		Published: true,
		CreatedAt: time.Now(),
	}
	if err := pageRepo.Create(about); err != nil {
		return fmt.Errorf("failed to seed page: %w", err)
	}
	log.Info("Seeded page: %s", about.Slug)

	return nil
}
