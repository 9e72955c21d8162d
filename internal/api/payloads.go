package api

import (
	"time"

	"github.com/strandapp/strand/internal/services"
)

type credentialsInput struct {
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
}

type recoverInput struct {
	RecoveryCode string `json:"recovery_code" form:"recovery_code"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type deleteAccountInput struct {
	Password string `json:"password" form:"password"`
}

type entryPayload struct {
	Title          string   `json:"title" form:"title"`
	Body           string   `json:"body" form:"body"`
	RecordedAt     string   `json:"recorded_at" form:"recorded_at"`
	HealthRating   int      `json:"health_rating" form:"health_rating"`
	Mood           string   `json:"mood" form:"mood"`
	Products       []string `json:"products"`
	WithAttachment bool     `json:"with_attachment" form:"with_attachment"`
}

type milestonePayload struct {
	Title    string `json:"title"`
	Achieved bool   `json:"achieved"`
}

type goalPayload struct {
	Title       string             `json:"title" form:"title"`
	Description string             `json:"description" form:"description"`
	StartDate   string             `json:"start_date" form:"start_date"`
	EndDate     string             `json:"end_date" form:"end_date"`
	Progress    int                `json:"progress" form:"progress"`
	Milestones  []milestonePayload `json:"milestones"`
}

type progressPayload struct {
	Progress int `json:"progress" form:"progress"`
}

type routinePayload struct {
	Name        string   `json:"name" form:"name"`
	Frequency   string   `json:"frequency" form:"frequency"`
	TimeOfDay   string   `json:"time_of_day" form:"time_of_day"`
	Products    []string `json:"products"`
	Description string   `json:"description" form:"description"`
	AnchorDate  string   `json:"anchor_date" form:"anchor_date"`
}

type preferencePayload struct {
	Theme             *string `json:"theme"`
	SidebarCollapsed  *bool   `json:"sidebar_collapsed"`
	ActiveTab         *string `json:"active_tab"`
	RoutineVisibility *string `json:"routine_visibility"`
}

type legacyImportPayload struct {
	Goals    []services.LegacyRecord `json:"goals"`
	Routines []services.LegacyRecord `json:"routines"`
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)
