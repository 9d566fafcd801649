// Package gallery is the read side: display-ready feed projections composed
// from the media store. No caching; every call recomputes from current state.
package gallery

import (
	"fmt"
	"time"

	"image_gallery/internal/domain"
	"image_gallery/internal/policy"
	"image_gallery/internal/store"
)

// Item is one display record in a feed.
type Item struct {
	ID         uint     `json:"id"`          // Media id
	Title      string   `json:"title"`       // Display title, may be empty
	Filename   string   `json:"filename"`    // Original filename
	Owner      string   `json:"owner"`       // Owning user's username
	Tags       []string `json:"tags"`        // Resolved tag names
	CreatedAt  string   `json:"created_at"`  // Upload time, RFC3339
	ContentURL string   `json:"content_url"` // Where to fetch the bytes
}

// Service composes feeds over the media store.
type Service struct {
	media *store.MediaStore
}

func NewService(media *store.MediaStore) *Service {
	return &Service{media: media}
}

// Global returns every media item, newest first.
func (s *Service) Global() ([]Item, error) {
	rows, err := s.media.ListAll()
	if err != nil {
		return nil, err
	}
	return project(rows), nil
}

// ByOwner returns one user's media, newest first.
func (s *Service) ByOwner(ownerID uint) ([]Item, error) {
	rows, err := s.media.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	return project(rows), nil
}

// ByTag returns media carrying the named tag; store.ErrTagNotFound when the
// tag is not in the catalog.
func (s *Service) ByTag(tagName string) ([]Item, error) {
	rows, err := s.media.ListByTag(tagName)
	if err != nil {
		return nil, err
	}
	return project(rows), nil
}

// Admin is the global feed gated by role; store.ErrForbidden for non-admins.
func (s *Service) Admin(identity domain.User) ([]Item, error) {
	if !policy.CanViewAdminFeed(identity) {
		return nil, store.ErrForbidden
	}
	return s.Global()
}

func project(rows []domain.Media) []Item {
	items := make([]Item, len(rows))
	for i, m := range rows {
		tags := make([]string, len(m.Tags))
		for j, t := range m.Tags {
			tags[j] = t.Name
		}
		items[i] = Item{
			ID:         m.ID,
			Title:      m.Title,
			Filename:   m.Filename,
			Owner:      m.Owner.Username,
			Tags:       tags,
			CreatedAt:  m.CreatedAt.UTC().Format(time.RFC3339),
			ContentURL: fmt.Sprintf("/media/%d/content", m.ID),
		}
	}
	return items
}
