package store

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"image_gallery/internal/domain"
	"image_gallery/internal/policy"
	"image_gallery/internal/storage"
)

// MediaStore owns uploaded content and its metadata. Metadata and tag
// associations live in the database; bytes live in the Disk content area,
// referenced by a generated stored name.
type MediaStore struct {
	db    *gorm.DB
	files *storage.Disk
}

func NewMediaStore(db *gorm.DB, files *storage.Disk) *MediaStore {
	return &MediaStore{db: db, files: files}
}

// Create persists uploaded content with its metadata and tag associations.
// Unknown tag names are dropped, not rejected. The row and all associations
// land in one transaction; if it fails, the already-written content file is
// removed so no orphan is left either way.
func (s *MediaStore) Create(ownerID uint, filename, contentType, title string, content io.Reader, tagNames []string) (domain.Media, error) {
	stored := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	size, err := s.files.Save(stored, content)
	if err != nil {
		return domain.Media{}, err
	}
	media := domain.Media{
		Filename:    filepath.Base(filename),
		StoredName:  stored,
		Title:       title,
		ContentType: contentType,
		Size:        size,
		OwnerID:     ownerID,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, name := range tagNames {
			var tag domain.Tag
			if err := tx.Where("name = ?", name).First(&tag).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue // unknown tag names are silently ignored
				}
				return err // return error to rollback
			}
			media.Tags = append(media.Tags, tag)
		}
		return tx.Create(&media).Error
	})
	if err != nil {
		_ = s.files.Remove(stored) // the row never landed, drop the content too
		return domain.Media{}, err
	}
	return media, nil
}

// Get fetches one media item with its tags and owner resolved.
func (s *MediaStore) Get(id uint) (domain.Media, error) {
	var media domain.Media
	err := s.db.Preload("Tags").Preload("Owner").First(&media, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Media{}, ErrNotFound
		}
		return domain.Media{}, err
	}
	return media, nil
}

// ListAll returns every media item, newest first.
func (s *MediaStore) ListAll() ([]domain.Media, error) {
	var items []domain.Media
	err := s.db.Preload("Tags").Preload("Owner").
		Order("created_at desc, id desc").
		Find(&items).Error
	return items, err
}

// ListByOwner returns a user's media, newest first.
func (s *MediaStore) ListByOwner(ownerID uint) ([]domain.Media, error) {
	var items []domain.Media
	err := s.db.Preload("Tags").Preload("Owner").
		Where("owner_id = ?", ownerID).
		Order("created_at desc, id desc").
		Find(&items).Error
	return items, err
}

// ListByTag returns media carrying the named tag, newest first. An unknown
// tag is ErrTagNotFound, never an empty valid list.
func (s *MediaStore) ListByTag(tagName string) ([]domain.Media, error) {
	var tag domain.Tag
	if err := s.db.Where("name = ?", tagName).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	var items []domain.Media
	err := s.db.Preload("Tags").Preload("Owner").
		Joins("JOIN media_tags ON media_tags.media_id = media.id").
		Where("media_tags.tag_id = ?", tag.ID).
		Order("media.created_at desc, media.id desc").
		Find(&items).Error
	return items, err
}

// UpdateTitle changes a media item's title. Owner-only; admins do not bypass
// the edit rule. Empty titles are rejected.
func (s *MediaStore) UpdateTitle(id uint, newTitle string, requesterID uint) (domain.Media, error) {
	if strings.TrimSpace(newTitle) == "" {
		return domain.Media{}, ErrEmptyTitle
	}
	media, err := s.Get(id)
	if err != nil {
		return domain.Media{}, err
	}
	if !policy.CanEdit(media, domain.User{ID: requesterID}) {
		return domain.Media{}, ErrForbidden
	}
	if err := s.db.Model(&domain.Media{ID: media.ID}).Update("title", newTitle).Error; err != nil {
		return domain.Media{}, err
	}
	media.Title = newTitle
	return media, nil
}

// Delete removes a media item: row and tag associations in one transaction,
// then the content file. Permitted for the owner or an admin. A file removal
// failure after the commit is surfaced as *PartialDeleteError and logged, so
// the leftover content can be reconciled instead of silently lingering.
func (s *MediaStore) Delete(id uint, requester domain.User) error {
	media, err := s.Get(id)
	if err != nil {
		return err
	}
	if !policy.CanDelete(media, requester) {
		return ErrForbidden
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Media{ID: media.ID}).Association("Tags").Clear(); err != nil {
			return err // return error to rollback
		}
		return tx.Delete(&domain.Media{}, media.ID).Error
	})
	if err != nil {
		return err
	}
	if err := s.files.Remove(media.StoredName); err != nil {
		pd := &PartialDeleteError{MediaID: media.ID, StoredName: media.StoredName, Err: err}
		logrus.WithFields(logrus.Fields{
			"media_id":    media.ID,
			"stored_name": media.StoredName,
			"error":       err.Error(),
		}).Error("Media row deleted but content removal failed")
		return pd
	}
	return nil
}

// Open returns the content stream for a media item; the caller closes it.
func (s *MediaStore) Open(media domain.Media) (*os.File, error) {
	f, err := s.files.Open(media.StoredName)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}
