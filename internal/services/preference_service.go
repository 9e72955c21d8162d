package services

import (
	"errors"

	"github.com/strandapp/strand/internal/models"
)

var (
	ErrInvalidTheme             = errors.New("invalid theme")
	ErrInvalidActiveTab         = errors.New("invalid active tab")
	ErrInvalidRoutineVisibility = errors.New("invalid routine visibility")
	ErrPreferenceSaveFailed     = errors.New("save preferences failed")
)

type PreferenceStore interface {
	FindByUser(userID uint) (models.Preference, error)
	Upsert(preference *models.Preference) error
}

// PreferenceChange is a partial update: nil fields leave the stored value
// untouched. All UI state transitions funnel through ApplyPreferenceChange
// so they stay testable without a DOM.
type PreferenceChange struct {
	Theme             *string
	SidebarCollapsed  *bool
	ActiveTab         *string
	RoutineVisibility *string
}

func ApplyPreferenceChange(preference models.Preference, change PreferenceChange) (models.Preference, error) {
	if change.Theme != nil {
		switch *change.Theme {
		case models.ThemeLight, models.ThemeDark:
			preference.Theme = *change.Theme
		default:
			return preference, ErrInvalidTheme
		}
	}
	if change.SidebarCollapsed != nil {
		preference.SidebarCollapsed = *change.SidebarCollapsed
	}
	if change.ActiveTab != nil {
		switch *change.ActiveTab {
		case models.TabJourney, models.TabCalendar, models.TabGoals, models.TabRoutines:
			preference.ActiveTab = *change.ActiveTab
		default:
			return preference, ErrInvalidActiveTab
		}
	}
	if change.RoutineVisibility != nil {
		switch *change.RoutineVisibility {
		case models.RoutineVisibilityAllDays, models.RoutineVisibilityFrequencyFiltered:
			preference.RoutineVisibility = *change.RoutineVisibility
		default:
			return preference, ErrInvalidRoutineVisibility
		}
	}
	return preference, nil
}

type PreferenceService struct {
	preferences PreferenceStore
}

func NewPreferenceService(preferences PreferenceStore) *PreferenceService {
	return &PreferenceService{preferences: preferences}
}

func (service *PreferenceService) FetchForUser(userID uint) (models.Preference, error) {
	return service.preferences.FindByUser(userID)
}

func (service *PreferenceService) Update(userID uint, change PreferenceChange) (models.Preference, error) {
	preference, err := service.preferences.FindByUser(userID)
	if err != nil {
		return models.Preference{}, err
	}

	updated, err := ApplyPreferenceChange(preference, change)
	if err != nil {
		return models.Preference{}, err
	}

	if err := service.preferences.Upsert(&updated); err != nil {
		return models.Preference{}, ErrPreferenceSaveFailed
	}
	return updated, nil
}
