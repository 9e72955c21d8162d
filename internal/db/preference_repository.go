package db

import (
	"errors"

	"github.com/strandapp/strand/internal/models"
	"gorm.io/gorm"
)

type PreferenceRepository struct {
	database *gorm.DB
}

func NewPreferenceRepository(database *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{database: database}
}

// FindByUser returns stored preferences or the defaults when the user has
// never saved any; callers cannot tell the two apart, which matches the
// last-writer-wins local-storage behavior this replaces.
func (repo *PreferenceRepository) FindByUser(userID uint) (models.Preference, error) {
	preference := models.Preference{}
	err := repo.database.Where("user_id = ?", userID).First(&preference).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultPreference(userID), nil
	}
	if err != nil {
		return models.Preference{}, err
	}
	return preference, nil
}

func (repo *PreferenceRepository) Upsert(preference *models.Preference) error {
	existing := models.Preference{}
	err := repo.database.Where("user_id = ?", preference.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repo.database.Create(preference).Error
	}
	if err != nil {
		return err
	}
	preference.ID = existing.ID
	return repo.database.Save(preference).Error
}
