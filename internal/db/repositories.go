package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	PeriodLogs  *PeriodLogRepository
	Predictions *PredictionRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		PeriodLogs:  NewPeriodLogRepository(database),
		Predictions: NewPredictionRepository(database),
	}
}
