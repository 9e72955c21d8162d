package services

import (
	"time"
)

const (
	ImportOutcomeImported = "imported"
	ImportOutcomeFailed   = "failed"
)

type LegacyImportInput struct {
	Goals    []LegacyRecord
	Routines []LegacyRecord
}

type ImportOutcome struct {
	Kind             string
	Index            int
	Title            string
	Status           string
	CalendarEligible bool
}

type ImportReport struct {
	GoalsImported    int
	RoutinesImported int
	Outcomes         []ImportOutcome
}

type ImportService struct {
	goals    GoalStore
	routines RoutineStore
}

func NewImportService(goals GoalStore, routines RoutineStore) *ImportService {
	return &ImportService{goals: goals, routines: routines}
}

// ImportLegacy resolves loose historical records into canonical rows. No
// record is rejected for missing fields; goals without a parseable start
// date are persisted but reported as not calendar-eligible.
func (service *ImportService) ImportLegacy(userID uint, input LegacyImportInput, now time.Time, location *time.Location) (ImportReport, error) {
	report := ImportReport{Outcomes: make([]ImportOutcome, 0, len(input.Goals)+len(input.Routines))}

	for index, record := range input.Goals {
		goal := ResolveGoal(record, location)
		goal.UserID = userID

		outcome := ImportOutcome{
			Kind:             "goal",
			Index:            index,
			Title:            goal.Title,
			Status:           ImportOutcomeImported,
			CalendarEligible: goal.StartDate != nil,
		}
		if err := service.goals.Create(&goal); err != nil {
			outcome.Status = ImportOutcomeFailed
			outcome.CalendarEligible = false
		} else {
			report.GoalsImported++
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	anchor := DateAtLocation(now, location)
	for index, record := range input.Routines {
		routine := ResolveRoutine(record)
		routine.UserID = userID
		routine.AnchorDate = anchor

		outcome := ImportOutcome{
			Kind:             "routine",
			Index:            index,
			Title:            routine.Name,
			Status:           ImportOutcomeImported,
			CalendarEligible: true,
		}
		if err := service.routines.Create(&routine); err != nil {
			outcome.Status = ImportOutcomeFailed
			outcome.CalendarEligible = false
		} else {
			report.RoutinesImported++
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	return report, nil
}
