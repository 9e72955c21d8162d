package models

import "time"

// HealthRating is stored as 0 when the user did not rate the day;
// rated entries carry a value in [1,10].
type Entry struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        uint      `gorm:"not null;index"`
	Title         string    `gorm:"not null"`
	Body          string
	RecordedAt    time.Time `gorm:"not null;index"`
	AttachmentRef string
	HealthRating  int      `gorm:"not null;default:0"`
	Mood          string
	Products      []string `gorm:"serializer:json;not null;default:'[]'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
