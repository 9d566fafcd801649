package gallery

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"image_gallery/internal/domain"
	"image_gallery/internal/storage"
	"image_gallery/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.MediaStore, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Tag{}, &domain.Media{}))
	files, err := storage.NewDisk(t.TempDir())
	require.NoError(t, err)
	media := store.NewMediaStore(db, files)
	return NewService(media), media, db
}

func TestFeedsResolveOwnerAndTags(t *testing.T) {
	svc, media, db := newTestService(t)
	require.NoError(t, store.NewTagStore(db).Seed([]string{"nature"}))
	alice := domain.User{Username: "alice", Email: "alice@example.com", Password: "x", Role: domain.RoleUser}
	require.NoError(t, db.Create(&alice).Error)

	m, err := media.Create(alice.ID, "sunset.jpg", "image/jpeg", "sunset", strings.NewReader("s"), []string{"nature"})
	require.NoError(t, err)

	for name, load := range map[string]func() ([]Item, error){
		"global":   svc.Global,
		"by owner": func() ([]Item, error) { return svc.ByOwner(alice.ID) },
		"by tag":   func() ([]Item, error) { return svc.ByTag("nature") },
	} {
		t.Run(name, func(t *testing.T) {
			items, err := load()
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, m.ID, items[0].ID)
			assert.Equal(t, "sunset", items[0].Title)
			assert.Equal(t, "alice", items[0].Owner)
			assert.Equal(t, []string{"nature"}, items[0].Tags)
			assert.NotEmpty(t, items[0].CreatedAt)
			assert.Contains(t, items[0].ContentURL, "/content")
		})
	}
}

func TestByTagUnknown(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.ByTag("doesnotexist")
	assert.ErrorIs(t, err, store.ErrTagNotFound)
}

func TestAdminFeedGate(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Admin(domain.User{ID: 1, Role: domain.RoleUser})
	assert.ErrorIs(t, err, store.ErrForbidden)

	items, err := svc.Admin(domain.User{ID: 2, Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Empty(t, items)
}
