package db

import (
	"github.com/terraincognita07/shecare/internal/models"
	"gorm.io/gorm"
)

type PeriodLogRepository struct {
	database *gorm.DB
}

func NewPeriodLogRepository(database *gorm.DB) *PeriodLogRepository {
	return &PeriodLogRepository{database: database}
}

// CreateAfterLatest inserts entry in the same transaction that reads the
// user's latest log by start date, so annotate sees the pre-insert state.
func (repo *PeriodLogRepository) CreateAfterLatest(entry *models.PeriodLog, annotate func(latest models.PeriodLog, found bool)) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		latest, found, err := findLatestByUser(tx, entry.UserID)
		if err != nil {
			return err
		}
		annotate(latest, found)
		if entry.Symptoms == nil {
			entry.Symptoms = []string{}
		}
		return tx.Create(entry).Error
	})
}

func (repo *PeriodLogRepository) FindByID(id uint) (models.PeriodLog, bool, error) {
	entry := models.PeriodLog{}
	result := repo.database.Where("id = ?", id).Limit(1).Find(&entry)
	if result.Error != nil {
		return models.PeriodLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PeriodLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *PeriodLogRepository) FindLatestByUser(userID uint) (models.PeriodLog, bool, error) {
	return findLatestByUser(repo.database, userID)
}

// ListByUser returns the user's logs, latest start date first. limit <= 0 means all.
func (repo *PeriodLogRepository) ListByUser(userID uint, limit int) ([]models.PeriodLog, error) {
	query := repo.database.Where("user_id = ?", userID).Order("start_date DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	logs := make([]models.PeriodLog, 0)
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

var mutablePeriodLogColumns = map[string]bool{
	"end_date":       true,
	"flow_intensity": true,
	"symptoms":       true,
	"notes":          true,
}

// UpdateColumns writes the named columns of entry. Columns outside the
// mutable set, including start_date and cycle_length, are ignored.
func (repo *PeriodLogRepository) UpdateColumns(entry *models.PeriodLog, columns []string) (bool, error) {
	selected := make([]string, 0, len(columns))
	for _, column := range columns {
		if mutablePeriodLogColumns[column] {
			selected = append(selected, column)
		}
	}
	if len(selected) == 0 {
		_, found, err := repo.FindByID(entry.ID)
		return found, err
	}
	if entry.Symptoms == nil {
		entry.Symptoms = []string{}
	}

	result := repo.database.Model(&models.PeriodLog{ID: entry.ID}).Select(selected).Updates(entry)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *PeriodLogRepository) DeleteByID(id uint) (bool, error) {
	result := repo.database.Where("id = ?", id).Delete(&models.PeriodLog{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func findLatestByUser(database *gorm.DB, userID uint) (models.PeriodLog, bool, error) {
	entry := models.PeriodLog{}
	result := database.
		Where("user_id = ?", userID).
		Order("start_date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.PeriodLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PeriodLog{}, false, nil
	}
	return entry, true, nil
}
