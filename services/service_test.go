package services

import (
	"testing"

	"github.com/bipan-sh/weight-tracker/config"
	"github.com/bipan-sh/weight-tracker/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.Weight{}, &models.Goal{}, &models.Partnership{}, &models.PrivacySettings{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	config.DB = gdb

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to access underlying DB: %v", err)
	}

	t.Cleanup(func() {
		if err := sqlDB.Close(); err != nil {
			t.Fatalf("failed to close database: %v", err)
		}
		config.DB = nil
	})
}

func createTestUser(t *testing.T, name, email string) *models.User {
	t.Helper()
	user := models.User{
		Name:     name,
		Email:    email,
		Password: "not-a-real-hash",
	}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user %s: %v", email, err)
	}
	return &user
}
