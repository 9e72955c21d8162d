package services

import (
	"errors"
	"strings"
	"time"
)

const (
	MaxEntryTitleLength = 200
	MaxEntryBodyLength  = 10000
)

var (
	ErrEntryTitleRequired  = errors.New("entry title is required")
	ErrInvalidHealthRating = errors.New("health rating must be between 1 and 10")
	ErrEntryDateRequired   = errors.New("entry date is required")
)

type EntryInput struct {
	Title          string
	Body           string
	RecordedAt     time.Time
	HealthRating   int
	Mood           string
	Products       []string
	WithAttachment bool
}

func NormalizeEntryInput(input EntryInput) (EntryInput, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return input, ErrEntryTitleRequired
	}
	if len(input.Title) > MaxEntryTitleLength {
		input.Title = input.Title[:MaxEntryTitleLength]
	}
	if input.RecordedAt.IsZero() {
		return input, ErrEntryDateRequired
	}
	if input.HealthRating != 0 && (input.HealthRating < 1 || input.HealthRating > 10) {
		return input, ErrInvalidHealthRating
	}
	if len(input.Body) > MaxEntryBodyLength {
		input.Body = input.Body[:MaxEntryBodyLength]
	}
	input.Mood = strings.TrimSpace(input.Mood)
	input.Products = trimStringList(input.Products)
	return input, nil
}
