package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/terraincognita07/shecare/internal/models"
	"gorm.io/gorm"
)

func openTestSQLite(t *testing.T, name string) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), name), nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func createTestUser(t *testing.T, database *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{
		Name:         "Test User",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
	if email != "" {
		user.Email = &email
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user %q: %v", email, err)
	}
	return user
}

func mustParseRepositoryDay(t *testing.T, raw string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", raw, err)
	}
	return parsed
}
