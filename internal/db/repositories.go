package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Entries     *EntryRepository
	Goals       *GoalRepository
	Routines    *RoutineRepository
	Preferences *PreferenceRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Entries:     NewEntryRepository(database),
		Goals:       NewGoalRepository(database),
		Routines:    NewRoutineRepository(database),
		Preferences: NewPreferenceRepository(database),
	}
}
