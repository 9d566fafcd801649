package store

import (
	"errors"

	"gorm.io/gorm"

	"image_gallery/internal/domain"
)

// TagStore is the tag catalog. The vocabulary is fixed at startup; tags are
// not user-creatable.
type TagStore struct {
	db *gorm.DB
}

func NewTagStore(db *gorm.DB) *TagStore {
	return &TagStore{db: db}
}

// Seed ensures every name exists exactly once, leaving existing tags
// untouched. Safe to run on every process start.
func (s *TagStore) Seed(names []string) error {
	for _, name := range names {
		tag := domain.Tag{Name: name}
		if err := s.db.Where("name = ?", name).FirstOrCreate(&tag).Error; err != nil {
			return err
		}
	}
	return nil
}

// ListAll returns the whole catalog in seed order.
func (s *TagStore) ListAll() ([]domain.Tag, error) {
	var tags []domain.Tag
	if err := s.db.Order("id").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// FindByName fetches a tag by its unique name.
func (s *TagStore) FindByName(name string) (domain.Tag, error) {
	var tag domain.Tag
	if err := s.db.Where("name = ?", name).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Tag{}, ErrTagNotFound
		}
		return domain.Tag{}, err
	}
	return tag, nil
}
