package store

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"image_gallery/internal/domain"
	"image_gallery/internal/storage"
)

// newTestDB opens a throwaway sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Tag{}, &domain.Media{}))
	return db
}

// newTestMediaStore pairs a fresh database with a throwaway content area.
func newTestMediaStore(t *testing.T) (*MediaStore, *storage.Disk, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	files, err := storage.NewDisk(t.TempDir())
	require.NoError(t, err)
	return NewMediaStore(db, files), files, db
}

// mustUser inserts a user row directly, bypassing registration.
func mustUser(t *testing.T, db *gorm.DB, username, role string) domain.User {
	t.Helper()
	user := domain.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}
