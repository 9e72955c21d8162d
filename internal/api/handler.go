package api

import (
	"time"

	"gorm.io/gorm"

	"github.com/strandapp/strand/internal/db"
	"github.com/strandapp/strand/internal/services"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories *db.Repositories

	authService       *services.AuthService
	entryService      *services.EntryService
	goalService       *services.GoalService
	routineService    *services.RoutineService
	preferenceService *services.PreferenceService
	importService     *services.ImportService
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.Local
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
	}
	handler.ensureDependencies()
	return handler
}
