package services

import (
	"fmt"
	"time"

	"github.com/terraincognita07/shecare/internal/models"
)

type PeriodLogReader interface {
	ListByUser(userID uint, limit int) ([]models.PeriodLog, error)
}

// CycleInsightsService derives read-only views from the stored logs. It keeps
// no state between calls; now is injectable for deterministic tests.
type CycleInsightsService struct {
	logs     PeriodLogReader
	location *time.Location
	now      func() time.Time
}

func NewCycleInsightsService(logs PeriodLogReader, location *time.Location, now func() time.Time) *CycleInsightsService {
	if location == nil {
		location = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &CycleInsightsService{
		logs:     logs,
		location: location,
		now:      now,
	}
}

func (service *CycleInsightsService) Summary(userID uint) (CycleSummary, bool, error) {
	logs, err := service.logs.ListByUser(userID, 0)
	if err != nil {
		return CycleSummary{}, false, fmt.Errorf("%w: %v", ErrPeriodLogLoadFailed, err)
	}
	summary, found := BuildCycleSummary(logs)
	return summary, found, nil
}

func (service *CycleInsightsService) Forecast(userID uint, horizon int) (CycleForecast, error) {
	logs, err := service.logs.ListByUser(userID, RecentCycleWindow)
	if err != nil {
		return CycleForecast{}, fmt.Errorf("%w: %v", ErrPeriodLogLoadFailed, err)
	}
	return BuildCycleForecast(logs, horizon), nil
}

func (service *CycleInsightsService) CurrentPhase(userID uint) (PhaseReport, bool, error) {
	// The latest log is always the head of the recent window.
	logs, err := service.logs.ListByUser(userID, RecentCycleWindow)
	if err != nil {
		return PhaseReport{}, false, fmt.Errorf("%w: %v", ErrPeriodLogLoadFailed, err)
	}
	report, found := BuildPhaseReport(logs, service.Today())
	return report, found, nil
}

// CycleVariation is the spread between the longest and shortest stored cycle
// lengths, or zero with fewer than two lengths.
func (service *CycleInsightsService) CycleVariation(userID uint) (int, error) {
	logs, err := service.logs.ListByUser(userID, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPeriodLogLoadFailed, err)
	}
	return CycleVariation(RecordedCycleLengths(logs)), nil
}

func (service *CycleInsightsService) Today() time.Time {
	return DateAtLocation(service.now(), service.location)
}
