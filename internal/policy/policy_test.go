package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"image_gallery/internal/domain"
)

func TestPolicy(t *testing.T) {
	media := domain.Media{ID: 1, OwnerID: 10}
	owner := domain.User{ID: 10, Role: domain.RoleUser}
	other := domain.User{ID: 11, Role: domain.RoleUser}
	admin := domain.User{ID: 12, Role: domain.RoleAdmin}

	tests := []struct {
		name      string
		identity  domain.User
		canEdit   bool
		canDelete bool
		adminFeed bool
	}{
		{"owner", owner, true, true, false},
		{"other user", other, false, false, false},
		{"admin", admin, false, true, true}, // delete yes, edit no
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.canEdit, CanEdit(media, tt.identity))
			assert.Equal(t, tt.canDelete, CanDelete(media, tt.identity))
			assert.Equal(t, tt.adminFeed, CanViewAdminFeed(tt.identity))
		})
	}
}
