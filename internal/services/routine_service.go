package services

import (
	"errors"
	"strings"
	"time"

	"github.com/strandapp/strand/internal/models"
)

var (
	ErrRoutineLoadFailed   = errors.New("load routine failed")
	ErrRoutineCreateFailed = errors.New("create routine failed")
	ErrRoutineUpdateFailed = errors.New("update routine failed")
	ErrRoutineDeleteFailed = errors.New("delete routine failed")
	ErrInvalidFrequency    = errors.New("invalid routine frequency")
)

type RoutineStore interface {
	ListByUser(userID uint) ([]models.Routine, error)
	FindByIDForUser(routineID uint, userID uint) (models.Routine, error)
	Create(routine *models.Routine) error
	Save(routine *models.Routine) error
	Delete(routine *models.Routine) error
}

type RoutineInput struct {
	Name        string
	Frequency   string
	TimeOfDay   string
	Products    []string
	Description string
	AnchorDate  *time.Time
}

func NormalizeRoutineInput(input RoutineInput, now time.Time, location *time.Location) (RoutineInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		input.Name = UntitledRoutineName
	}

	input.Frequency = strings.ToLower(strings.TrimSpace(input.Frequency))
	if input.Frequency == "" {
		input.Frequency = models.FrequencyDaily
	}
	if !models.IsValidFrequency(input.Frequency) {
		return input, ErrInvalidFrequency
	}

	input.TimeOfDay = strings.TrimSpace(input.TimeOfDay)
	if input.TimeOfDay == "" {
		input.TimeOfDay = DefaultTimeOfDay
	}

	input.Description = strings.TrimSpace(input.Description)
	input.Products = trimStringList(input.Products)

	if input.AnchorDate == nil {
		anchor := DateAtLocation(now, location)
		input.AnchorDate = &anchor
	} else {
		anchor := DateAtLocation(*input.AnchorDate, location)
		input.AnchorDate = &anchor
	}

	return input, nil
}

type RoutineService struct {
	routines RoutineStore
}

func NewRoutineService(routines RoutineStore) *RoutineService {
	return &RoutineService{routines: routines}
}

func (service *RoutineService) FetchAllForUser(userID uint) ([]models.Routine, error) {
	return service.routines.ListByUser(userID)
}

func (service *RoutineService) FetchByID(userID uint, routineID uint) (models.Routine, error) {
	return service.routines.FindByIDForUser(routineID, userID)
}

func (service *RoutineService) CreateRoutine(userID uint, input RoutineInput) (models.Routine, error) {
	routine := models.Routine{
		UserID:      userID,
		Name:        input.Name,
		Frequency:   input.Frequency,
		TimeOfDay:   input.TimeOfDay,
		Products:    input.Products,
		Description: input.Description,
		AnchorDate:  *input.AnchorDate,
	}
	if err := service.routines.Create(&routine); err != nil {
		return models.Routine{}, ErrRoutineCreateFailed
	}
	return routine, nil
}

func (service *RoutineService) UpdateRoutine(userID uint, routineID uint, input RoutineInput) (models.Routine, error) {
	routine, err := service.routines.FindByIDForUser(routineID, userID)
	if err != nil {
		return models.Routine{}, ErrRoutineLoadFailed
	}

	routine.Name = input.Name
	routine.Frequency = input.Frequency
	routine.TimeOfDay = input.TimeOfDay
	routine.Products = input.Products
	routine.Description = input.Description
	routine.AnchorDate = *input.AnchorDate

	if err := service.routines.Save(&routine); err != nil {
		return models.Routine{}, ErrRoutineUpdateFailed
	}
	return routine, nil
}

func (service *RoutineService) DeleteRoutine(userID uint, routineID uint) error {
	routine, err := service.routines.FindByIDForUser(routineID, userID)
	if err != nil {
		return ErrRoutineLoadFailed
	}
	if err := service.routines.Delete(&routine); err != nil {
		return ErrRoutineDeleteFailed
	}
	return nil
}
