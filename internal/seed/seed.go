// Package seed populates the database with development fixtures.
package seed

import (
	"fmt"
	"log"
	"unicode/utf8"

	"bloglist/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	userCount         = 8
	blogsPerUserMax   = 4
	rootUsername      = "root"
	rootName          = "Superuser"
	rootPassword      = "pass1234"
	seedPasswordUsers = "seed1234"
)

// Seed wipes user and blog tables and inserts a known root account plus
// generated users and blogs.
func Seed(db *gorm.DB) error {
	log.Println("Starting database seeding...")

	if err := clearData(db); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}

	users, err := createUsers(db)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("Created %d users", len(users))

	blogCount, err := createBlogs(db, users)
	if err != nil {
		return fmt.Errorf("failed to create blogs: %w", err)
	}
	log.Printf("Created %d blogs", blogCount)

	log.Println("Database seeding completed")
	return nil
}

func clearData(db *gorm.DB) error {
	if err := db.Unscoped().Where("1 = 1").Delete(&models.Blog{}).Error; err != nil {
		return err
	}
	return db.Unscoped().Where("1 = 1").Delete(&models.User{}).Error
}

func createUsers(db *gorm.DB) ([]models.User, error) {
	rootHash, err := bcrypt.GenerateFromPassword([]byte(rootPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := []models.User{{
		Username:     rootUsername,
		Name:         rootName,
		PasswordHash: string(rootHash),
	}}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPasswordUsers), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{rootUsername: true}
	for len(users) < userCount {
		username := gofakeit.Username()
		if utf8.RuneCountInString(username) < 4 || seen[username] {
			continue
		}
		seen[username] = true
		users = append(users, models.User{
			Username:     username,
			Name:         gofakeit.Name(),
			PasswordHash: string(hash),
		})
	}

	if err := db.Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func createBlogs(db *gorm.DB, users []models.User) (int, error) {
	var blogs []models.Blog
	for _, u := range users {
		n := gofakeit.Number(1, blogsPerUserMax)
		for i := 0; i < n; i++ {
			blogs = append(blogs, models.Blog{
				Title:  gofakeit.Sentence(4),
				Author: gofakeit.Name(),
				URL:    gofakeit.URL(),
				Likes:  gofakeit.Number(0, 50),
				UserID: u.ID,
			})
		}
	}

	if err := db.Create(&blogs).Error; err != nil {
		return 0, err
	}
	return len(blogs), nil
}
