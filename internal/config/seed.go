package config

import (
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"logitrack/internal/models"
)

// SeedAdmin creates the initial staff user from ADMIN_EMAIL/ADMIN_PASSWORD
// when no user with that email exists yet. Without these vars the instance
// starts with no staff and signup-only users.
func SeedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var existing models.User
	err := DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("admin seed lookup failed: %v", err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("admin seed hash failed: %v", err)
		return
	}

	admin := models.User{Name: "Administrator", Email: email, Password: string(hashed), Staff: true}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("admin seed create failed: %v", err)
		return
	}
	log.Printf("seeded staff user %s", email)
}
