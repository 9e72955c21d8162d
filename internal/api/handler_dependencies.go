package api

import (
	"github.com/strandapp/strand/internal/db"
	"github.com/strandapp/strand/internal/services"
)

// ensureDependencies lets tests construct a bare Handler around a database
// and still reach fully wired services.
func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}

	if handler.authService == nil {
		handler.authService = services.NewAuthService(handler.repositories.Users)
	}
	if handler.entryService == nil {
		handler.entryService = services.NewEntryService(handler.repositories.Entries)
	}
	if handler.goalService == nil {
		handler.goalService = services.NewGoalService(handler.repositories.Goals)
	}
	if handler.routineService == nil {
		handler.routineService = services.NewRoutineService(handler.repositories.Routines)
	}
	if handler.preferenceService == nil {
		handler.preferenceService = services.NewPreferenceService(handler.repositories.Preferences)
	}
	if handler.importService == nil {
		handler.importService = services.NewImportService(handler.repositories.Goals, handler.repositories.Routines)
	}
}
