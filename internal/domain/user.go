package domain

import "time"

// Role values for User.Role
const (
	RoleUser  = "user"  // Regular account
	RoleAdmin = "admin" // May view the admin feed and delete any media
)

// User Model
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`            // Primary key
	Username  string    `gorm:"unique;not null" json:"username"` // Unique username
	Email     string    `gorm:"unique;not null" json:"email"`    // Unique email, used for login
	Password  string    `gorm:"not null" json:"-"`               // Bcrypt hash, never the plaintext
	Role      string    `gorm:"default:user" json:"role"`        // Role: user or admin
	CreatedAt time.Time `json:"created_at"`                      // Timestamp of registration
	Media     []Media   `gorm:"foreignKey:OwnerID" json:"-"`     // Media owned by this user
}
