package domain

// Tag Model
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`         // Primary key
	Name string `gorm:"uniqueIndex;not null" json:"name"` // Unique tag name from the seeded vocabulary
}
