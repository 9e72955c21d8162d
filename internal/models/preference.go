package models

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

const (
	RoutineVisibilityAllDays           = "all-days"
	RoutineVisibilityFrequencyFiltered = "frequency-filtered"
)

const (
	TabJourney  = "journey"
	TabCalendar = "calendar"
	TabGoals    = "goals"
	TabRoutines = "routines"
)

// Preference is the per-user UI state that the browser used to keep in local
// storage: theme, sidebar collapse, last active tab, plus the routine
// calendar visibility mode.
type Preference struct {
	ID                uint   `gorm:"primaryKey"`
	UserID            uint   `gorm:"uniqueIndex;not null"`
	Theme             string `gorm:"not null;default:light"`
	SidebarCollapsed  bool   `gorm:"not null;default:false"`
	ActiveTab         string `gorm:"not null;default:journey"`
	RoutineVisibility string `gorm:"not null;default:all-days"`
}

func DefaultPreference(userID uint) Preference {
	return Preference{
		UserID:            userID,
		Theme:             ThemeLight,
		SidebarCollapsed:  false,
		ActiveTab:         TabJourney,
		RoutineVisibility: RoutineVisibilityAllDays,
	}
}
