// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"pamps/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	NumReplies  int
	ShouldClean bool
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users, %d posts, %d replies...",
		opts.NumUsers, opts.NumPosts, opts.NumReplies)

	gofakeit.Seed(time.Now().UnixNano())

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d users created", len(users))

	posts, err := createPosts(db, users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("%d posts created", len(posts))

	replies, err := createReplies(db, users, posts, opts.NumReplies)
	if err != nil {
		return fmt.Errorf("failed to create replies: %w", err)
	}
	log.Printf("%d replies created", len(replies))

	log.Println("Database seeding completed")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	return db.Exec(`TRUNCATE TABLE posts, users RESTART IDENTITY CASCADE;`).Error
}

func createUsers(db *gorm.DB, count int) ([]models.User, error) {
	// All seed accounts share one password so the hash is computed once
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		user := models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Email:    gofakeit.Email(),
			Password: string(hashed),
			Bio:      gofakeit.Sentence(10),
			Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		}
		if err := db.Create(&user).Error; err != nil {
			// Random usernames can collide; skip and move on
			continue
		}
		users = append(users, user)
	}

	if len(users) == 0 {
		return nil, fmt.Errorf("no users could be created")
	}
	return users, nil
}

func createPosts(db *gorm.DB, users []models.User, count int) ([]models.Post, error) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	posts := make([]models.Post, 0, count)
	for i := 0; i < count; i++ {
		user := users[r.Intn(len(users))]
		post := models.Post{
			Text:      gofakeit.Paragraph(1, 3, 8, " "),
			UserID:    user.ID,
			CreatedAt: randomPastTime(r, 90),
		}
		if err := db.Create(&post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func createReplies(db *gorm.DB, users []models.User, posts []models.Post, count int) ([]models.Post, error) {
	if len(posts) == 0 {
		return nil, nil
	}
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	replies := make([]models.Post, 0, count)
	for i := 0; i < count; i++ {
		user := users[r.Intn(len(users))]
		parent := posts[r.Intn(len(posts))]

		// Replies land after their parent so thread ordering reads naturally
		createdAt := parent.CreatedAt.Add(time.Duration(1+r.Intn(72)) * time.Hour)
		if createdAt.After(time.Now()) {
			createdAt = time.Now()
		}

		reply := models.Post{
			Text:      gofakeit.Sentence(12),
			UserID:    user.ID,
			ParentID:  &parent.ID,
			CreatedAt: createdAt,
		}
		if err := db.Create(&reply).Error; err != nil {
			return nil, err
		}
		replies = append(replies, reply)
	}
	return replies, nil
}

func randomPastTime(r *rand.Rand, maxDays int) time.Time {
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	minsBack := r.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}
