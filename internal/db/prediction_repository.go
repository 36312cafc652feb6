package db

import (
	"github.com/terraincognita07/shecare/internal/models"
	"gorm.io/gorm"
)

type PredictionRepository struct {
	database *gorm.DB
}

func NewPredictionRepository(database *gorm.DB) *PredictionRepository {
	return &PredictionRepository{database: database}
}

func (repo *PredictionRepository) Create(prediction *models.Prediction) error {
	return repo.database.Create(prediction).Error
}

func (repo *PredictionRepository) ListByUser(userID uint) ([]models.Prediction, error) {
	predictions := make([]models.Prediction, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&predictions).Error; err != nil {
		return nil, err
	}
	return predictions, nil
}
