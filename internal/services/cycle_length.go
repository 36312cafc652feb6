package services

import (
	"math"
	"sort"
	"time"

	"github.com/terraincognita07/shecare/internal/models"
)

// RecentCycleWindow is how many of the latest logs feed the average used for
// forecasts and phase detection.
const RecentCycleWindow = 3

// CycleLengthSince is the stored cycle length for a log starting at start,
// given the user's latest log before the insert. Out-of-order data yields zero
// or negative lengths and is kept as-is.
func CycleLengthSince(previous models.PeriodLog, found bool, start time.Time) *int {
	if !found {
		return nil
	}
	length := DaysBetween(previous.StartDate, start)
	return &length
}

// SortPeriodLogsLatestFirst returns a copy ordered by start date descending,
// newest id first on equal dates.
func SortPeriodLogsLatestFirst(logs []models.PeriodLog) []models.PeriodLog {
	sorted := make([]models.PeriodLog, 0, len(logs))
	sorted = append(sorted, logs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		left := CalendarDay(sorted[i].StartDate)
		right := CalendarDay(sorted[j].StartDate)
		if left.Equal(right) {
			return sorted[i].ID > sorted[j].ID
		}
		return left.After(right)
	})
	return sorted
}

func RecordedCycleLengths(logs []models.PeriodLog) []int {
	lengths := make([]int, 0, len(logs))
	for _, entry := range logs {
		if entry.CycleLength != nil {
			lengths = append(lengths, *entry.CycleLength)
		}
	}
	return lengths
}

func averageInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var total int
	for _, value := range values {
		total += value
	}
	return float64(total) / float64(len(values))
}

func minMaxInts(values []int) (int, int) {
	low, high := values[0], values[0]
	for _, value := range values[1:] {
		if value < low {
			low = value
		}
		if value > high {
			high = value
		}
	}
	return low, high
}

// RoundToTenth rounds half away from zero: 28.25 -> 28.3, -1.25 -> -1.3.
func RoundToTenth(value float64) float64 {
	return math.Round(value*10) / 10
}

func floorDays(value float64) int {
	return int(math.Floor(value))
}

func headPeriodLogs(logs []models.PeriodLog, n int) []models.PeriodLog {
	if len(logs) <= n {
		return logs
	}
	return logs[:n]
}
