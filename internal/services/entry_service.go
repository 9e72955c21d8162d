package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/strandapp/strand/internal/models"
)

var (
	ErrEntryLoadFailed   = errors.New("load entry failed")
	ErrEntryCreateFailed = errors.New("create entry failed")
	ErrEntryUpdateFailed = errors.New("update entry failed")
	ErrEntryDeleteFailed = errors.New("delete entry failed")
)

type EntryStore interface {
	ListByUser(userID uint) ([]models.Entry, error)
	ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.Entry, error)
	ListRecentByUser(userID uint, limit int) ([]models.Entry, error)
	FindByIDForUser(entryID uint, userID uint) (models.Entry, error)
	Create(entry *models.Entry) error
	Save(entry *models.Entry) error
	Delete(entry *models.Entry) error
}

type EntryService struct {
	entries EntryStore
}

func NewEntryService(entries EntryStore) *EntryService {
	return &EntryService{entries: entries}
}

func (service *EntryService) FetchAllForUser(userID uint) ([]models.Entry, error) {
	return service.entries.ListByUser(userID)
}

func (service *EntryService) FetchForOptionalRange(userID uint, from *time.Time, to *time.Time, location *time.Location) ([]models.Entry, error) {
	var fromStart *time.Time
	var toEnd *time.Time
	if from != nil {
		start, _ := DayRange(*from, location)
		fromStart = &start
	}
	if to != nil {
		_, end := DayRange(*to, location)
		toEnd = &end
	}
	return service.entries.ListByUserRange(userID, fromStart, toEnd)
}

func (service *EntryService) FetchRecent(userID uint, limit int) ([]models.Entry, error) {
	if limit <= 0 {
		limit = 10
	}
	return service.entries.ListRecentByUser(userID, limit)
}

func (service *EntryService) FetchByID(userID uint, entryID uint) (models.Entry, error) {
	return service.entries.FindByIDForUser(entryID, userID)
}

func (service *EntryService) CreateEntry(userID uint, input EntryInput) (models.Entry, error) {
	entry := models.Entry{
		UserID:       userID,
		Title:        input.Title,
		Body:         input.Body,
		RecordedAt:   input.RecordedAt,
		HealthRating: input.HealthRating,
		Mood:         input.Mood,
		Products:     input.Products,
	}
	if input.WithAttachment {
		entry.AttachmentRef = uuid.NewString()
	}
	if err := service.entries.Create(&entry); err != nil {
		return models.Entry{}, ErrEntryCreateFailed
	}
	return entry, nil
}

func (service *EntryService) UpdateEntry(userID uint, entryID uint, input EntryInput) (models.Entry, error) {
	entry, err := service.entries.FindByIDForUser(entryID, userID)
	if err != nil {
		return models.Entry{}, ErrEntryLoadFailed
	}

	entry.Title = input.Title
	entry.Body = input.Body
	entry.RecordedAt = input.RecordedAt
	entry.HealthRating = input.HealthRating
	entry.Mood = input.Mood
	entry.Products = input.Products
	if input.WithAttachment && entry.AttachmentRef == "" {
		entry.AttachmentRef = uuid.NewString()
	}

	if err := service.entries.Save(&entry); err != nil {
		return models.Entry{}, ErrEntryUpdateFailed
	}
	return entry, nil
}

func (service *EntryService) DeleteEntry(userID uint, entryID uint) error {
	entry, err := service.entries.FindByIDForUser(entryID, userID)
	if err != nil {
		return ErrEntryLoadFailed
	}
	if err := service.entries.Delete(&entry); err != nil {
		return ErrEntryDeleteFailed
	}
	return nil
}
