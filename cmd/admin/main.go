// Package main provides admin management utilities for Pamps.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"pamps/internal/config"
	"pamps/internal/database"
	"pamps/internal/models"
	"pamps/internal/repository"
	"pamps/internal/service"

	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  go run ./cmd/admin/main.go create-user <email> <username> <password>  - Create a user")
		fmt.Println("  go run ./cmd/admin/main.go list-users                                 - List all users")
		fmt.Println("  go run ./cmd/admin/main.go reset-db                                   - Drop and recreate all tables")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	command := os.Args[1]

	switch command {
	case "create-user":
		if len(os.Args) < 5 {
			fmt.Println("Usage: go run ./cmd/admin/main.go create-user <email> <username> <password>")
			os.Exit(1)
		}
		createUser(db, os.Args[2], os.Args[3], os.Args[4])

	case "list-users":
		listUsers(db)

	case "reset-db":
		resetDB(db)

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

func createUser(db *gorm.DB, email, username, password string) {
	users := service.NewUserService(repository.NewUserRepository(db))

	user, err := users.CreateUser(context.Background(), service.CreateUserInput{
		Email:    email,
		Username: username,
		Password: password,
	})
	if err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	fmt.Printf("Created user %s (ID: %d)\n", user.Username, user.ID)
}

func listUsers(db *gorm.DB) {
	var users []models.User
	if err := db.Order("id ASC").Find(&users).Error; err != nil {
		log.Fatalf("Failed to fetch users: %v", err)
	}

	if len(users) == 0 {
		fmt.Println("No users found")
		return
	}

	fmt.Printf("%-5s %-30s %-30s\n", "ID", "Username", "Email")
	for _, u := range users {
		fmt.Printf("%-5d %-30s %-30s\n", u.ID, u.Username, u.Email)
	}
}

func resetDB(db *gorm.DB) {
	// Posts reference users, drop them first
	if err := db.Migrator().DropTable(&models.Post{}, &models.User{}); err != nil {
		log.Fatalf("Failed to drop tables: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to recreate tables: %v", err)
	}

	fmt.Println("Database reset complete")
}
