package services

import (
	"time"

	"github.com/terraincognita07/shecare/internal/models"
)

// CycleSummary aggregates a user's full history. Nil pointers mean there was
// no data for that figure.
type CycleSummary struct {
	TotalPeriodsLogged int
	AvgCycleLength     *float64
	ShortestCycle      *int
	LongestCycle       *int
	AvgPeriodDuration  *float64
	LastPeriod         time.Time
}

// BuildCycleSummary returns false when there are no logs at all.
func BuildCycleSummary(logs []models.PeriodLog) (CycleSummary, bool) {
	if len(logs) == 0 {
		return CycleSummary{}, false
	}
	sorted := SortPeriodLogsLatestFirst(logs)

	summary := CycleSummary{
		TotalPeriodsLogged: len(sorted),
		LastPeriod:         CalendarDay(sorted[0].StartDate),
	}

	lengths := RecordedCycleLengths(sorted)
	if len(lengths) > 0 {
		average := RoundToTenth(averageInts(lengths))
		shortest, longest := minMaxInts(lengths)
		summary.AvgCycleLength = &average
		summary.ShortestCycle = &shortest
		summary.LongestCycle = &longest
	}

	durations := periodDurations(sorted)
	if len(durations) > 0 {
		average := RoundToTenth(averageInts(durations))
		summary.AvgPeriodDuration = &average
	}

	return summary, true
}

// periodDurations counts days inclusively, so a log ending on its start day lasts 1 day.
func periodDurations(logs []models.PeriodLog) []int {
	durations := make([]int, 0, len(logs))
	for _, entry := range logs {
		if entry.EndDate == nil {
			continue
		}
		durations = append(durations, DaysBetween(entry.StartDate, *entry.EndDate)+1)
	}
	return durations
}
