package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestCycleInsightsWithoutData(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "ada@example.com")

	response := doJSON(t, app, http.MethodGet, "/api/periods/stats", token, nil)
	expectStatus(t, response, http.StatusOK)
	if stats := decodeJSON[map[string]any](t, response); stats["message"] != "No data available" {
		t.Fatalf("expected no data message, got %#v", stats)
	}

	response = doJSON(t, app, http.MethodGet, "/api/periods/phase", token, nil)
	expectStatus(t, response, http.StatusOK)
	phase := decodeJSON[map[string]any](t, response)
	if phase["message"] != "No period data available" {
		t.Fatalf("expected no period data message, got %#v", phase)
	}
	if value, present := phase["phase"]; !present || value != nil {
		t.Fatalf("expected null phase, got %#v", phase)
	}

	logTestPeriod(t, app, token, fiber.Map{"start_date": "2026-03-01"})
	response = doJSON(t, app, http.MethodGet, "/api/periods/forecast", token, nil)
	expectStatus(t, response, http.StatusOK)
	forecast := decodeJSON[map[string]any](t, response)
	if forecast["message"] != "Need at least 2 periods to predict" {
		t.Fatalf("expected need more periods message, got %#v", forecast)
	}
	if predictions, ok := forecast["predictions"].([]any); !ok || len(predictions) != 0 {
		t.Fatalf("expected empty predictions array, got %#v", forecast["predictions"])
	}
}

func TestCycleStats(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "ada@example.com")

	logTestPeriod(t, app, token, fiber.Map{"start_date": "2026-01-01", "end_date": "2026-01-05"})
	logTestPeriod(t, app, token, fiber.Map{"start_date": "2026-01-29", "end_date": "2026-01-31"})
	logTestPeriod(t, app, token, fiber.Map{"start_date": "2026-02-27"})

	response := doJSON(t, app, http.MethodGet, "/api/periods/stats", token, nil)
	expectStatus(t, response, http.StatusOK)
	stats := decodeJSON[cycleStatsView](t, response)

	if stats.TotalPeriodsLogged != 3 {
		t.Fatalf("expected 3 periods, got %d", stats.TotalPeriodsLogged)
	}
	if stats.AvgCycleLength == nil || *stats.AvgCycleLength != 28.5 {
		t.Fatalf("expected average cycle 28.5, got %v", stats.AvgCycleLength)
	}
	if *stats.ShortestCycle != 28 || *stats.LongestCycle != 29 {
		t.Fatalf("expected cycle range 28..29, got %d..%d", *stats.ShortestCycle, *stats.LongestCycle)
	}
	if stats.AvgPeriodDuration == nil || *stats.AvgPeriodDuration != 4 {
		t.Fatalf("expected average duration 4, got %v", stats.AvgPeriodDuration)
	}
	if stats.LastPeriod != "2026-02-27" {
		t.Fatalf("expected last period 2026-02-27, got %s", stats.LastPeriod)
	}
}

func TestCycleForecast(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "ada@example.com")

	logTestPeriod(t, app, token, fiber.Map{"start_date": "2024-01-01"})
	logTestPeriod(t, app, token, fiber.Map{"start_date": "2024-01-31"})

	response := doJSON(t, app, http.MethodGet, "/api/periods/forecast", token, nil)
	expectStatus(t, response, http.StatusOK)
	forecast := decodeJSON[struct {
		AvgCycleLength float64             `json:"avg_cycle_length"`
		Predictions    []forecastEntryView `json:"predictions"`
	}](t, response)

	if forecast.AvgCycleLength != 30 {
		t.Fatalf("expected average 30, got %v", forecast.AvgCycleLength)
	}
	want := []forecastEntryView{
		{PeriodNumber: 1, PredictedStart: "2024-03-01", FertileWindowStart: "2024-02-16", FertileWindowEnd: "2024-02-20", OvulationDay: "2024-02-16", AvgCycleLength: 30},
		{PeriodNumber: 2, PredictedStart: "2024-03-31", FertileWindowStart: "2024-03-17", FertileWindowEnd: "2024-03-21", OvulationDay: "2024-03-17", AvgCycleLength: 30},
		{PeriodNumber: 3, PredictedStart: "2024-04-30", FertileWindowStart: "2024-04-16", FertileWindowEnd: "2024-04-20", OvulationDay: "2024-04-16", AvgCycleLength: 30},
	}
	if len(forecast.Predictions) != len(want) {
		t.Fatalf("expected %d predictions, got %d", len(want), len(forecast.Predictions))
	}
	for index := range want {
		if forecast.Predictions[index] != want[index] {
			t.Fatalf("prediction %d: expected %#v, got %#v", index+1, want[index], forecast.Predictions[index])
		}
	}

	response = doJSON(t, app, http.MethodGet, "/api/periods/forecast?horizon=6", token, nil)
	expectStatus(t, response, http.StatusOK)
	if extended := decodeJSON[map[string][]forecastEntryView](t, response)["predictions"]; len(extended) != 6 {
		t.Fatalf("expected 6 predictions, got %d", len(extended))
	}

	for _, horizon := range []string{"0", "13", "abc"} {
		response = doJSON(t, app, http.MethodGet, "/api/periods/forecast?horizon="+horizon, token, nil)
		expectStatus(t, response, http.StatusBadRequest)
	}
}

func TestCurrentPhaseUsesInjectedClock(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "ada@example.com")

	logTestPeriod(t, app, token, fiber.Map{"start_date": "2026-01-28"})
	logTestPeriod(t, app, token, fiber.Map{"start_date": "2026-02-24"})

	response := doJSON(t, app, http.MethodGet, "/api/periods/phase", token, nil)
	expectStatus(t, response, http.StatusOK)
	phase := decodeJSON[phaseView](t, response)

	// 2026-02-24 to 2026-03-10 is 14 days with an average cycle of 27.
	if phase.CurrentPhase != "Ovulation" || phase.DaysInPhase != 1 {
		t.Fatalf("expected ovulation day 1, got %q day %d", phase.CurrentPhase, phase.DaysInPhase)
	}
	if phase.DaysSinceLastPeriod != 14 || phase.DaysUntilNextPeriod != 13 {
		t.Fatalf("expected 14 days since and 13 until, got %d and %d", phase.DaysSinceLastPeriod, phase.DaysUntilNextPeriod)
	}
	if phase.NextPeriodDate != "2026-03-23" || phase.PhaseColor != "#28a745" || phase.AvgCycleLength != 27 {
		t.Fatalf("unexpected phase payload %#v", phase)
	}
}
