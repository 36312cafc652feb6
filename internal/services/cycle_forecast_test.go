package services

import (
	"testing"

	"github.com/terraincognita07/shecare/internal/models"
)

func TestBuildCycleForecastNeedsTwoLogs(t *testing.T) {
	forecast := BuildCycleForecast([]models.PeriodLog{periodLogAt(1, "2026-01-01", nil)}, 3)
	if forecast.Status != ForecastNeedMorePeriods {
		t.Fatalf("expected %q, got %q", ForecastNeedMorePeriods, forecast.Status)
	}
	if forecast.Message != "Need at least 2 periods to predict" {
		t.Fatalf("unexpected message %q", forecast.Message)
	}
	if forecast.Entries == nil || len(forecast.Entries) != 0 {
		t.Fatalf("expected empty non-nil entries, got %#v", forecast.Entries)
	}
}

func TestBuildCycleForecastWithoutLengths(t *testing.T) {
	// Two logs without stored lengths, e.g. rows imported before lengths existed.
	logs := []models.PeriodLog{
		periodLogAt(1, "2026-01-01", nil),
		periodLogAt(2, "2026-02-01", nil),
	}
	forecast := BuildCycleForecast(logs, 3)
	if forecast.Status != ForecastInsufficientData {
		t.Fatalf("expected %q, got %q", ForecastInsufficientData, forecast.Status)
	}
	if forecast.Message != "Insufficient data" {
		t.Fatalf("unexpected message %q", forecast.Message)
	}
}

func TestBuildCycleForecastProjectsFromLatestStart(t *testing.T) {
	logs := []models.PeriodLog{
		periodLogAt(1, "2024-01-01", nil),
		periodLogAt(2, "2024-01-31", intPtr(30)),
	}

	forecast := BuildCycleForecast(logs, 3)
	if forecast.Status != ForecastReady {
		t.Fatalf("expected ready forecast, got %q", forecast.Status)
	}
	if forecast.AvgCycleLength != 30 {
		t.Fatalf("expected average 30, got %v", forecast.AvgCycleLength)
	}
	if len(forecast.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(forecast.Entries))
	}

	wantStarts := []string{"2024-03-01", "2024-03-31", "2024-04-30"}
	for index, entry := range forecast.Entries {
		if entry.PeriodNumber != index+1 {
			t.Fatalf("expected period number %d, got %d", index+1, entry.PeriodNumber)
		}
		if FormatDay(entry.PredictedStart) != wantStarts[index] {
			t.Fatalf("expected predicted start %s, got %s", wantStarts[index], FormatDay(entry.PredictedStart))
		}
		if DaysBetween(entry.FertileWindowStart, entry.PredictedStart) != 14 {
			t.Fatalf("expected fertile window start 14 days before, got %s", FormatDay(entry.FertileWindowStart))
		}
		if DaysBetween(entry.FertileWindowEnd, entry.PredictedStart) != 10 {
			t.Fatalf("expected fertile window end 10 days before, got %s", FormatDay(entry.FertileWindowEnd))
		}
		if !entry.OvulationDay.Equal(entry.FertileWindowStart) {
			t.Fatalf("expected ovulation day to equal fertile window start, got %s", FormatDay(entry.OvulationDay))
		}
	}
}

func TestBuildCycleForecastFloorsMultiplesOfUnroundedAverage(t *testing.T) {
	logs := []models.PeriodLog{
		periodLogAt(1, "2026-01-01", nil),
		periodLogAt(2, "2026-01-29", intPtr(28)),
		periodLogAt(3, "2026-02-27", intPtr(29)),
		periodLogAt(4, "2026-03-27", intPtr(28)),
	}

	forecast := BuildCycleForecast(logs, 3)
	// Recent window holds ids 4, 3, 2 so avg = 85/3 = 28.333...
	if forecast.AvgCycleLength != 28.3 {
		t.Fatalf("expected displayed average 28.3, got %v", forecast.AvgCycleLength)
	}
	wantOffsets := []int{28, 56, 85}
	for index, entry := range forecast.Entries {
		if got := DaysBetween(mustParseDay("2026-03-27"), entry.PredictedStart); got != wantOffsets[index] {
			t.Fatalf("expected offset %d for period %d, got %d", wantOffsets[index], index+1, got)
		}
		if entry.AvgCycleLength != 28.3 {
			t.Fatalf("expected entry average 28.3, got %v", entry.AvgCycleLength)
		}
	}
}

func TestBuildCycleForecastHorizon(t *testing.T) {
	logs := []models.PeriodLog{
		periodLogAt(1, "2026-01-01", nil),
		periodLogAt(2, "2026-01-29", intPtr(28)),
	}
	if got := len(BuildCycleForecast(logs, 0).Entries); got != DefaultForecastHorizon {
		t.Fatalf("expected default horizon %d, got %d", DefaultForecastHorizon, got)
	}
	if got := len(BuildCycleForecast(logs, 6).Entries); got != 6 {
		t.Fatalf("expected 6 entries, got %d", got)
	}
}
