package services

import (
	"time"

	"github.com/terraincognita07/shecare/internal/models"
)

const (
	DefaultForecastHorizon = 3
	MaxForecastHorizon     = 12

	fertileWindowStartOffset = 14
	fertileWindowEndOffset   = 10
	ovulationOffset          = 14
)

type ForecastStatus string

const (
	ForecastReady            ForecastStatus = "ready"
	ForecastNeedMorePeriods  ForecastStatus = "need_more_periods"
	ForecastInsufficientData ForecastStatus = "insufficient_data"
)

const (
	forecastNeedMorePeriodsMessage  = "Need at least 2 periods to predict"
	forecastInsufficientDataMessage = "Insufficient data"
)

type CycleForecastEntry struct {
	PeriodNumber       int
	PredictedStart     time.Time
	FertileWindowStart time.Time
	FertileWindowEnd   time.Time
	OvulationDay       time.Time
	AvgCycleLength     float64
}

// CycleForecast is ready only when Status is ForecastReady; otherwise Message
// explains which precondition failed and Entries is empty.
type CycleForecast struct {
	Status         ForecastStatus
	Message        string
	AvgCycleLength float64
	Entries        []CycleForecastEntry
}

// BuildCycleForecast projects horizon cycle starts from the latest log using
// the unrounded mean cycle length of the three most recent logs.
func BuildCycleForecast(logs []models.PeriodLog, horizon int) CycleForecast {
	if horizon <= 0 {
		horizon = DefaultForecastHorizon
	}

	recent := headPeriodLogs(SortPeriodLogsLatestFirst(logs), RecentCycleWindow)
	if len(recent) < 2 {
		return CycleForecast{
			Status:  ForecastNeedMorePeriods,
			Message: forecastNeedMorePeriodsMessage,
			Entries: []CycleForecastEntry{},
		}
	}

	lengths := RecordedCycleLengths(recent)
	if len(lengths) == 0 {
		return CycleForecast{
			Status:  ForecastInsufficientData,
			Message: forecastInsufficientDataMessage,
			Entries: []CycleForecastEntry{},
		}
	}

	averageCycle := averageInts(lengths)
	displayAverage := RoundToTenth(averageCycle)
	latestStart := CalendarDay(recent[0].StartDate)

	entries := make([]CycleForecastEntry, 0, horizon)
	for periodNumber := 1; periodNumber <= horizon; periodNumber++ {
		predictedStart := AddDays(latestStart, floorDays(averageCycle*float64(periodNumber)))
		// Ovulation shares the fertile window start offset, matching existing reports.
		entries = append(entries, CycleForecastEntry{
			PeriodNumber:       periodNumber,
			PredictedStart:     predictedStart,
			FertileWindowStart: AddDays(predictedStart, -fertileWindowStartOffset),
			FertileWindowEnd:   AddDays(predictedStart, -fertileWindowEndOffset),
			OvulationDay:       AddDays(predictedStart, -ovulationOffset),
			AvgCycleLength:     displayAverage,
		})
	}

	return CycleForecast{
		Status:         ForecastReady,
		AvgCycleLength: displayAverage,
		Entries:        entries,
	}
}
