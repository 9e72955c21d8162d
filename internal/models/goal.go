package models

import "time"

// StartDate and EndDate are nullable: goals imported from legacy records may
// lack a parseable start date, which keeps them out of calendar views but not
// out of list/timeline views.
type Goal struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description string
	StartDate   *time.Time  `gorm:"type:date"`
	EndDate     *time.Time  `gorm:"type:date"`
	Progress    int         `gorm:"not null;default:0"`
	Milestones  []Milestone `gorm:"foreignKey:GoalID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Milestone struct {
	ID       uint   `gorm:"primaryKey"`
	GoalID   uint   `gorm:"not null;index"`
	Position int    `gorm:"not null"`
	Title    string `gorm:"not null"`
	Achieved bool   `gorm:"not null;default:false"`
}
