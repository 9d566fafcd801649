package domain

import "time"

// Media Model
type Media struct {
	ID          uint      `gorm:"primaryKey" json:"id"`                 // Primary key
	Filename    string    `gorm:"not null" json:"filename"`             // Original filename, untrusted, kept for download hints
	StoredName  string    `gorm:"uniqueIndex;not null" json:"-"`        // Content reference: generated name in the upload directory
	Title       string    `json:"title"`                                // Optional display title
	ContentType string    `json:"content_type"`                        // MIME type as declared on upload
	Size        int64     `json:"size"`                                 // Content size in bytes
	OwnerID     uint      `gorm:"not null;index" json:"owner_id"`       // Foreign key to the owning User, immutable
	Owner       User      `gorm:"foreignKey:OwnerID" json:"-"`          // Owning user
	CreatedAt   time.Time `json:"created_at"`                           // Timestamp of upload
	Tags        []Tag     `gorm:"many2many:media_tags;" json:"tags"`    // Associated catalog tags
}

// TableName keeps the table singular; "media" is already plural
func (Media) TableName() string {
	return "media"
}
