package services

import (
	"fmt"
	"time"

	"github.com/terraincognita07/shecare/internal/models"
)

const DefaultAverageCycleLength = 28.0

const (
	PhaseUnknown      = "Unknown"
	PhaseMenstruation = "Menstruation"
	PhaseFollicular   = "Follicular Phase"
	PhaseOvulation    = "Ovulation"
	PhaseLuteal       = "Luteal Phase"
	PhaseLatePeriod   = "Late Period"
)

const (
	menstruationLastDay = 5
	follicularLastDay   = 13
	ovulationLastDay    = 16
)

type CyclePhase struct {
	Name        string
	Description string
	Color       string
	DaysInPhase int
}

type PhaseReport struct {
	Phase               CyclePhase
	DaysSinceLastPeriod int
	DaysUntilNextPeriod int
	NextPeriodDate      time.Time
	AvgCycleLength      float64
}

// ClassifyCyclePhase maps days since the latest period start onto fixed day
// ranges. The first matching range wins, so short average cycles still report
// follicular and ovulation days before falling through to a late period.
func ClassifyCyclePhase(daysSincePeriod int, averageCycle float64) CyclePhase {
	switch {
	case daysSincePeriod < 0:
		return CyclePhase{
			Name:        PhaseUnknown,
			Description: "Period date is in the future",
			Color:       "#6c757d",
		}
	case daysSincePeriod <= menstruationLastDay:
		return CyclePhase{
			Name:        PhaseMenstruation,
			Description: "Your period is happening now. Take it easy and stay hydrated.",
			Color:       "#dc3545",
			DaysInPhase: daysSincePeriod + 1,
		}
	case daysSincePeriod <= follicularLastDay:
		return CyclePhase{
			Name:        PhaseFollicular,
			Description: "Your body is preparing for ovulation. Energy levels may be rising.",
			Color:       "#17a2b8",
			DaysInPhase: daysSincePeriod - menstruationLastDay,
		}
	case daysSincePeriod <= ovulationLastDay:
		return CyclePhase{
			Name:        PhaseOvulation,
			Description: "Most fertile time. You may feel energetic and confident.",
			Color:       "#28a745",
			DaysInPhase: daysSincePeriod - follicularLastDay,
		}
	case float64(daysSincePeriod) <= averageCycle:
		return CyclePhase{
			Name:        PhaseLuteal,
			Description: "Your body is preparing for your next period. PMS symptoms may occur.",
			Color:       "#ffc107",
			DaysInPhase: daysSincePeriod - ovulationLastDay,
		}
	default:
		daysLate := daysSincePeriod - floorDays(averageCycle)
		return CyclePhase{
			Name:        PhaseLatePeriod,
			Description: fmt.Sprintf("Your period is %d day(s) late based on your average cycle.", daysLate),
			Color:       "#6c757d",
		}
	}
}

// AverageRecentCycleLength averages the stored cycle lengths of the three most
// recent logs and falls back to DefaultAverageCycleLength.
func AverageRecentCycleLength(logs []models.PeriodLog) float64 {
	recent := headPeriodLogs(SortPeriodLogsLatestFirst(logs), RecentCycleWindow)
	lengths := RecordedCycleLengths(recent)
	if len(lengths) == 0 {
		return DefaultAverageCycleLength
	}
	return averageInts(lengths)
}

// BuildPhaseReport returns false when there are no logs. today should already
// be the caller's local calendar day.
func BuildPhaseReport(logs []models.PeriodLog, today time.Time) (PhaseReport, bool) {
	if len(logs) == 0 {
		return PhaseReport{}, false
	}

	latest := SortPeriodLogsLatestFirst(logs)[0]
	averageCycle := AverageRecentCycleLength(logs)
	daysSince := DaysBetween(latest.StartDate, today)
	nextPeriod := AddDays(latest.StartDate, floorDays(averageCycle))

	return PhaseReport{
		Phase:               ClassifyCyclePhase(daysSince, averageCycle),
		DaysSinceLastPeriod: daysSince,
		DaysUntilNextPeriod: DaysBetween(today, nextPeriod),
		NextPeriodDate:      nextPeriod,
		AvgCycleLength:      RoundToTenth(averageCycle),
	}, true
}
