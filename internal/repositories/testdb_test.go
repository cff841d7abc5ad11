package repositories

import (
	"testing"
	"time"

	"infohub/internal/database"
	"infohub/internal/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB opens an in-memory sqlite database with the full schema.
func openTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, username string, admin bool) *models.User {
	t.Helper()
	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: "x",
		IsAdmin:      admin,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func newTestNote(t *testing.T, db *gorm.DB, title string, owner *uuid.UUID, private bool, age time.Duration) *models.Note {
	t.Helper()
	note := &models.Note{
		ID:        uuid.New(),
		Title:     title,
		Content:   "content of " + title,
		OwnerID:   owner,
		Private:   private,
		CreatedAt: time.Now().UTC().Add(-age),
	}
	if err := db.Create(note).Error; err != nil {
		t.Fatalf("create note %s: %v", title, err)
	}
	return note
}

func newTestFile(t *testing.T, db *gorm.DB, name string, owner *uuid.UUID, private bool) *models.File {
	t.Helper()
	file := &models.File{
		ID:       uuid.New(),
		FileName: name,
		OwnerID:  owner,
		Private:  private,
	}
	if err := db.Create(file).Error; err != nil {
		t.Fatalf("create file %s: %v", name, err)
	}
	return file
}
