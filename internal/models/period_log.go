package models

import "time"

const (
	FlowLight  = "light"
	FlowMedium = "medium"
	FlowHeavy  = "heavy"
)

// PeriodLog is one logged menstrual cycle. StartDate and EndDate hold calendar
// days at UTC midnight. CycleLength is frozen at insert time.
type PeriodLog struct {
	ID            uint       `gorm:"primaryKey"`
	UserID        uint       `gorm:"not null;index:idx_period_logs_user_start,priority:1"`
	StartDate     time.Time  `gorm:"type:date;not null;index:idx_period_logs_user_start,priority:2"`
	EndDate       *time.Time `gorm:"type:date"`
	FlowIntensity string     `gorm:"not null;default:''"`
	Symptoms      []string   `gorm:"serializer:json"`
	Notes         string     `gorm:"not null;default:''"`
	CycleLength   *int
	CreatedAt     time.Time `gorm:"not null"`
}

func IsFlowIntensity(value string) bool {
	switch value {
	case FlowLight, FlowMedium, FlowHeavy:
		return true
	default:
		return false
	}
}
