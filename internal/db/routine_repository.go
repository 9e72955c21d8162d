package db

import (
	"github.com/strandapp/strand/internal/models"
	"gorm.io/gorm"
)

type RoutineRepository struct {
	database *gorm.DB
}

func NewRoutineRepository(database *gorm.DB) *RoutineRepository {
	return &RoutineRepository{database: database}
}

func (repo *RoutineRepository) ListByUser(userID uint) ([]models.Routine, error) {
	routines := make([]models.Routine, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("created_at ASC, id ASC").Find(&routines).Error; err != nil {
		return nil, err
	}
	return routines, nil
}

func (repo *RoutineRepository) FindByIDForUser(routineID uint, userID uint) (models.Routine, error) {
	routine := models.Routine{}
	if err := repo.database.Where("id = ? AND user_id = ?", routineID, userID).First(&routine).Error; err != nil {
		return models.Routine{}, err
	}
	return routine, nil
}

func (repo *RoutineRepository) Create(routine *models.Routine) error {
	return repo.database.Create(routine).Error
}

func (repo *RoutineRepository) Save(routine *models.Routine) error {
	return repo.database.Save(routine).Error
}

func (repo *RoutineRepository) Delete(routine *models.Routine) error {
	return repo.database.Delete(routine).Error
}
