package db

import (
	"time"

	"github.com/strandapp/strand/internal/models"
	"gorm.io/gorm"
)

type EntryRepository struct {
	database *gorm.DB
}

func NewEntryRepository(database *gorm.DB) *EntryRepository {
	return &EntryRepository{database: database}
}

func (repo *EntryRepository) ListByUser(userID uint) ([]models.Entry, error) {
	entries := make([]models.Entry, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("recorded_at ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *EntryRepository) ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.Entry, error) {
	query := repo.database.Model(&models.Entry{}).Where("user_id = ?", userID)
	if fromStart != nil {
		query = query.Where("recorded_at >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("recorded_at < ?", *toEnd)
	}

	entries := make([]models.Entry, 0)
	if err := query.Order("recorded_at ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *EntryRepository) ListRecentByUser(userID uint, limit int) ([]models.Entry, error) {
	entries := make([]models.Entry, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("recorded_at DESC, id DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *EntryRepository) FindByIDForUser(entryID uint, userID uint) (models.Entry, error) {
	entry := models.Entry{}
	if err := repo.database.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
		return models.Entry{}, err
	}
	return entry, nil
}

func (repo *EntryRepository) Create(entry *models.Entry) error {
	return repo.database.Create(entry).Error
}

func (repo *EntryRepository) Save(entry *models.Entry) error {
	return repo.database.Save(entry).Error
}

func (repo *EntryRepository) Delete(entry *models.Entry) error {
	return repo.database.Delete(entry).Error
}
