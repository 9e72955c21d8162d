package services

import (
	"errors"
	"strings"
	"time"

	"github.com/strandapp/strand/internal/models"
)

var (
	ErrGoalLoadFailed      = errors.New("load goal failed")
	ErrGoalCreateFailed    = errors.New("create goal failed")
	ErrGoalUpdateFailed    = errors.New("update goal failed")
	ErrGoalDeleteFailed    = errors.New("delete goal failed")
	ErrGoalDateRange       = errors.New("goal end date precedes start date")
	ErrMilestoneNotFound   = errors.New("milestone not found")
	ErrMilestoneSaveFailed = errors.New("save milestone failed")
)

type GoalStore interface {
	ListByUser(userID uint) ([]models.Goal, error)
	FindByIDForUser(goalID uint, userID uint) (models.Goal, error)
	Create(goal *models.Goal) error
	Save(goal *models.Goal) error
	UpdateProgress(goalID uint, progress int) error
	SaveMilestone(milestone *models.Milestone) error
	ReplaceMilestones(goalID uint, milestones []models.Milestone) error
	Delete(goal *models.Goal) error
}

type MilestoneInput struct {
	Title    string
	Achieved bool
}

type GoalInput struct {
	Title       string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	Progress    int
	Milestones  []MilestoneInput
}

func NormalizeGoalInput(input GoalInput, location *time.Location) (GoalInput, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		input.Title = UntitledGoalPlaceholder
	}
	input.Description = strings.TrimSpace(input.Description)
	input.Progress = clampProgress(input.Progress)

	if input.StartDate != nil {
		start := DateAtLocation(*input.StartDate, location)
		input.StartDate = &start
	}
	if input.EndDate != nil {
		end := DateAtLocation(*input.EndDate, location)
		input.EndDate = &end
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return input, ErrGoalDateRange
	}

	milestones := make([]MilestoneInput, 0, len(input.Milestones))
	for _, milestone := range input.Milestones {
		milestone.Title = strings.TrimSpace(milestone.Title)
		if milestone.Title == "" {
			continue
		}
		milestones = append(milestones, milestone)
	}
	input.Milestones = milestones

	return input, nil
}

type GoalService struct {
	goals GoalStore
}

func NewGoalService(goals GoalStore) *GoalService {
	return &GoalService{goals: goals}
}

func (service *GoalService) FetchAllForUser(userID uint) ([]models.Goal, error) {
	return service.goals.ListByUser(userID)
}

func (service *GoalService) FetchByID(userID uint, goalID uint) (models.Goal, error) {
	return service.goals.FindByIDForUser(goalID, userID)
}

func (service *GoalService) CreateGoal(userID uint, input GoalInput) (models.Goal, error) {
	goal := models.Goal{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Progress:    input.Progress,
		Milestones:  buildMilestones(input.Milestones),
	}
	if err := service.goals.Create(&goal); err != nil {
		return models.Goal{}, ErrGoalCreateFailed
	}
	return goal, nil
}

func (service *GoalService) UpdateGoal(userID uint, goalID uint, input GoalInput) (models.Goal, error) {
	goal, err := service.goals.FindByIDForUser(goalID, userID)
	if err != nil {
		return models.Goal{}, ErrGoalLoadFailed
	}

	goal.Title = input.Title
	goal.Description = input.Description
	goal.StartDate = input.StartDate
	goal.EndDate = input.EndDate
	goal.Progress = input.Progress
	goal.Milestones = nil

	if err := service.goals.Save(&goal); err != nil {
		return models.Goal{}, ErrGoalUpdateFailed
	}
	if err := service.goals.ReplaceMilestones(goal.ID, buildMilestones(input.Milestones)); err != nil {
		return models.Goal{}, ErrGoalUpdateFailed
	}
	return service.goals.FindByIDForUser(goal.ID, userID)
}

func (service *GoalService) SetProgress(userID uint, goalID uint, progress int) (models.Goal, error) {
	goal, err := service.goals.FindByIDForUser(goalID, userID)
	if err != nil {
		return models.Goal{}, ErrGoalLoadFailed
	}
	if err := service.goals.UpdateProgress(goal.ID, clampProgress(progress)); err != nil {
		return models.Goal{}, ErrGoalUpdateFailed
	}
	return service.goals.FindByIDForUser(goal.ID, userID)
}

// ToggleMilestone flips the achieved flag of the milestone at the given
// position within the goal's ordered milestone list.
func (service *GoalService) ToggleMilestone(userID uint, goalID uint, position int) (models.Goal, error) {
	goal, err := service.goals.FindByIDForUser(goalID, userID)
	if err != nil {
		return models.Goal{}, ErrGoalLoadFailed
	}

	var target *models.Milestone
	for index := range goal.Milestones {
		if goal.Milestones[index].Position == position {
			target = &goal.Milestones[index]
			break
		}
	}
	if target == nil {
		return models.Goal{}, ErrMilestoneNotFound
	}

	target.Achieved = !target.Achieved
	if err := service.goals.SaveMilestone(target); err != nil {
		return models.Goal{}, ErrMilestoneSaveFailed
	}
	return goal, nil
}

func (service *GoalService) DeleteGoal(userID uint, goalID uint) error {
	goal, err := service.goals.FindByIDForUser(goalID, userID)
	if err != nil {
		return ErrGoalLoadFailed
	}
	if err := service.goals.Delete(&goal); err != nil {
		return ErrGoalDeleteFailed
	}
	return nil
}

func buildMilestones(inputs []MilestoneInput) []models.Milestone {
	milestones := make([]models.Milestone, 0, len(inputs))
	for index, input := range inputs {
		milestones = append(milestones, models.Milestone{
			Position: index,
			Title:    input.Title,
			Achieved: input.Achieved,
		})
	}
	return milestones
}
