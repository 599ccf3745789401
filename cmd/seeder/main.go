package main

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/armelhouessou/gotask/internal/config"
	"github.com/armelhouessou/gotask/internal/model"
)

func main() {
	cfg := config.Load()

	// Force DB logging off to avoid noise
	db, err := gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	log.Println("✅ Connected to Database")

	// Common password for all demo users
	password := "Password123"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}

	log.Println("🌱 Seeding 5 users with tasks...")

	for i := 1; i <= 5; i++ {
		email := fmt.Sprintf("user%d@gotask.local", i)

		var existing model.User
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			log.Printf("⏭️  User exists, skipping: %s", email)
			continue
		}

		user := model.User{
			Email:       email,
			Password:    string(hashedPassword),
			FirstName:   "User",
			LastName:    fmt.Sprintf("Number%d", i),
			PhoneNumber: fmt.Sprintf("+2290140000%02d", i),
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("❌ Failed to create user %s: %v", email, err)
			continue
		}
		log.Printf("✅ Created user: %s | Pass: %s", email, password)

		seedTasks(db, &user)
	}

	log.Println("🎉 Seeding completed!")
}

func seedTasks(db *gorm.DB, user *model.User) {
	samples := []model.Task{
		{Title: "Buy groceries", Description: "Milk, eggs, bread", IsCompleted: false},
		{Title: "Pay electricity bill", IsCompleted: true},
		{Title: "Prepare sprint review", Description: "Slides and demo", IsCompleted: false},
	}

	for _, t := range samples {
		t.AuthorID = user.ID
		if err := db.Create(&t).Error; err != nil {
			log.Printf("❌ Failed to create task for %s: %v", user.Email, err)
		}
	}
	log.Printf("📝 Seeded %d tasks for %s", len(samples), user.Email)
}
