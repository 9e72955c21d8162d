package db

import (
	"github.com/strandapp/strand/internal/models"
	"gorm.io/gorm"
)

type GoalRepository struct {
	database *gorm.DB
}

func NewGoalRepository(database *gorm.DB) *GoalRepository {
	return &GoalRepository{database: database}
}

func (repo *GoalRepository) ListByUser(userID uint) ([]models.Goal, error) {
	goals := make([]models.Goal, 0)
	if err := repo.database.
		Preload("Milestones", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (repo *GoalRepository) FindByIDForUser(goalID uint, userID uint) (models.Goal, error) {
	goal := models.Goal{}
	if err := repo.database.
		Preload("Milestones", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ? AND user_id = ?", goalID, userID).
		First(&goal).Error; err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

func (repo *GoalRepository) Create(goal *models.Goal) error {
	return repo.database.Create(goal).Error
}

func (repo *GoalRepository) Save(goal *models.Goal) error {
	return repo.database.Session(&gorm.Session{FullSaveAssociations: true}).Save(goal).Error
}

func (repo *GoalRepository) UpdateProgress(goalID uint, progress int) error {
	return repo.database.Model(&models.Goal{}).Where("id = ?", goalID).Update("progress", progress).Error
}

func (repo *GoalRepository) SaveMilestone(milestone *models.Milestone) error {
	return repo.database.Save(milestone).Error
}

func (repo *GoalRepository) ReplaceMilestones(goalID uint, milestones []models.Milestone) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("goal_id = ?", goalID).Delete(&models.Milestone{}).Error; err != nil {
			return err
		}
		if len(milestones) == 0 {
			return nil
		}
		for index := range milestones {
			milestones[index].ID = 0
			milestones[index].GoalID = goalID
		}
		return tx.Create(&milestones).Error
	})
}

func (repo *GoalRepository) Delete(goal *models.Goal) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("goal_id = ?", goal.ID).Delete(&models.Milestone{}).Error; err != nil {
			return err
		}
		return tx.Delete(goal).Error
	})
}
