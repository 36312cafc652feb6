package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/shecare/internal/models"
)

var (
	ErrPeriodLogNotFound     = errors.New("period log not found")
	ErrPeriodLogLoadFailed   = errors.New("load period log failed")
	ErrPeriodLogCreateFailed = errors.New("create period log failed")
	ErrPeriodLogUpdateFailed = errors.New("update period log failed")
	ErrPeriodLogDeleteFailed = errors.New("delete period log failed")
)

type PeriodLogRepository interface {
	CreateAfterLatest(entry *models.PeriodLog, annotate func(latest models.PeriodLog, found bool)) error
	FindByID(id uint) (models.PeriodLog, bool, error)
	FindLatestByUser(userID uint) (models.PeriodLog, bool, error)
	ListByUser(userID uint, limit int) ([]models.PeriodLog, error)
	UpdateColumns(entry *models.PeriodLog, columns []string) (bool, error)
	DeleteByID(id uint) (bool, error)
}

// PeriodService owns writes to a user's period logs. Writes for the same user
// are serialized so concurrent inserts compute cycle lengths from each other.
type PeriodService struct {
	logs  PeriodLogRepository
	locks *userLocks
	now   func() time.Time
}

func NewPeriodService(logs PeriodLogRepository, now func() time.Time) *PeriodService {
	if now == nil {
		now = time.Now
	}
	return &PeriodService{
		logs:  logs,
		locks: newUserLocks(),
		now:   now,
	}
}

// LogPeriod stores a new log and freezes its cycle length against the user's
// latest log at insert time. Invalid input never reaches the repository.
func (service *PeriodService) LogPeriod(userID uint, input PeriodLogInput) (models.PeriodLog, error) {
	normalized, err := NormalizePeriodLogInput(input)
	if err != nil {
		return models.PeriodLog{}, err
	}

	unlock := service.locks.lock(userID)
	defer unlock()

	entry := models.PeriodLog{
		UserID:        userID,
		StartDate:     normalized.StartDate,
		EndDate:       normalized.EndDate,
		FlowIntensity: normalized.FlowIntensity,
		Symptoms:      normalized.Symptoms,
		Notes:         normalized.Notes,
		CreatedAt:     service.now().UTC(),
	}
	if err := service.logs.CreateAfterLatest(&entry, func(latest models.PeriodLog, found bool) {
		entry.CycleLength = CycleLengthSince(latest, found, entry.StartDate)
	}); err != nil {
		return models.PeriodLog{}, fmt.Errorf("%w: %v", ErrPeriodLogCreateFailed, err)
	}
	return entry, nil
}

// GetPeriod treats logs owned by another user as missing.
func (service *PeriodService) GetPeriod(userID uint, periodID uint) (models.PeriodLog, error) {
	entry, found, err := service.logs.FindByID(periodID)
	if err != nil {
		return models.PeriodLog{}, fmt.Errorf("%w: %v", ErrPeriodLogLoadFailed, err)
	}
	if !found || entry.UserID != userID {
		return models.PeriodLog{}, ErrPeriodLogNotFound
	}
	return entry, nil
}

// LatestPeriod returns the user's log with the latest start date.
func (service *PeriodService) LatestPeriod(userID uint) (models.PeriodLog, bool, error) {
	entry, found, err := service.logs.FindLatestByUser(userID)
	if err != nil {
		return models.PeriodLog{}, false, fmt.Errorf("%w: %v", ErrPeriodLogLoadFailed, err)
	}
	return entry, found, nil
}

func (service *PeriodService) ListPeriods(userID uint, limit int) ([]models.PeriodLog, error) {
	logs, err := service.logs.ListByUser(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPeriodLogLoadFailed, err)
	}
	return logs, nil
}

// UpdatePeriod changes only end date, flow, symptoms and notes. Sibling cycle
// lengths are never recomputed.
func (service *PeriodService) UpdatePeriod(userID uint, periodID uint, patch PeriodLogPatch) (models.PeriodLog, error) {
	unlock := service.locks.lock(userID)
	defer unlock()

	entry, err := service.GetPeriod(userID, periodID)
	if err != nil {
		return models.PeriodLog{}, err
	}

	columns, err := applyPeriodLogPatch(&entry, patch)
	if err != nil {
		return models.PeriodLog{}, err
	}
	if len(columns) == 0 {
		return entry, nil
	}

	found, err := service.logs.UpdateColumns(&entry, columns)
	if err != nil {
		return models.PeriodLog{}, fmt.Errorf("%w: %v", ErrPeriodLogUpdateFailed, err)
	}
	if !found {
		return models.PeriodLog{}, ErrPeriodLogNotFound
	}
	return entry, nil
}

// DeletePeriod removes the log permanently. Stored cycle lengths of later logs
// keep pointing at the deleted start date.
func (service *PeriodService) DeletePeriod(userID uint, periodID uint) error {
	unlock := service.locks.lock(userID)
	defer unlock()

	if _, err := service.GetPeriod(userID, periodID); err != nil {
		return err
	}

	deleted, err := service.logs.DeleteByID(periodID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPeriodLogDeleteFailed, err)
	}
	if !deleted {
		return ErrPeriodLogNotFound
	}
	return nil
}
