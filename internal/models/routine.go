package models

import "time"

const (
	FrequencyDaily    = "daily"
	FrequencyWeekly   = "weekly"
	FrequencyBiweekly = "biweekly"
	FrequencyMonthly  = "monthly"
	FrequencyAsNeeded = "as-needed"
)

const DefaultRoutineHour = 8

// TimeOfDay is kept as the user typed it ("8:00 PM", "20.15", "morning-ish");
// the services layer derives a display hour from it and never rewrites it.
type Routine struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	Frequency   string `gorm:"not null;default:daily"`
	TimeOfDay   string
	Products    []string `gorm:"serializer:json;not null;default:'[]'"`
	Description string
	AnchorDate  time.Time `gorm:"type:date;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func IsValidFrequency(frequency string) bool {
	switch frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyAsNeeded:
		return true
	default:
		return false
	}
}
