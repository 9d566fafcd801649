// Package policy holds the pure access-control decisions. One User entity
// with a role field, checked by functions; admin and regular users are not
// separate types.
package policy

import "image_gallery/internal/domain"

// CanEdit reports whether the identity may change a media item's title.
// Editing is owner-only; the admin role does not bypass it.
func CanEdit(media domain.Media, identity domain.User) bool {
	return identity.ID == media.OwnerID
}

// CanDelete reports whether the identity may delete a media item:
// the owner, or any admin.
func CanDelete(media domain.Media, identity domain.User) bool {
	return identity.ID == media.OwnerID || identity.Role == domain.RoleAdmin
}

// CanViewAdminFeed reports whether the identity may view the admin feed.
func CanViewAdminFeed(identity domain.User) bool {
	return identity.Role == domain.RoleAdmin
}
