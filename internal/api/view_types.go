package api

import (
	"time"

	"github.com/terraincognita07/shecare/internal/models"
	"github.com/terraincognita07/shecare/internal/services"
)

const timestampLayout = "2006-01-02 15:04:05"

type userView struct {
	ID                 uint    `json:"id"`
	Name               string  `json:"name"`
	Email              *string `json:"email"`
	IsAnonymous        bool    `json:"is_anonymous"`
	MustChangePassword bool    `json:"must_change_password"`
	CreatedAt          string  `json:"created_at"`
}

type sessionView struct {
	UserID             uint   `json:"user_id"`
	Name               string `json:"name"`
	IsAnonymous        bool   `json:"is_anonymous"`
	MustChangePassword bool   `json:"must_change_password"`
	Token              string `json:"token"`
}

type periodLogView struct {
	ID            uint     `json:"id"`
	StartDate     string   `json:"start_date"`
	EndDate       *string  `json:"end_date"`
	FlowIntensity *string  `json:"flow_intensity"`
	Symptoms      []string `json:"symptoms"`
	Notes         *string  `json:"notes"`
	CycleLength   *int     `json:"cycle_length"`
	CreatedAt     string   `json:"created_at"`
}

type cycleStatsView struct {
	TotalPeriodsLogged int      `json:"total_periods_logged"`
	AvgCycleLength     *float64 `json:"avg_cycle_length"`
	ShortestCycle      *int     `json:"shortest_cycle"`
	LongestCycle       *int     `json:"longest_cycle"`
	AvgPeriodDuration  *float64 `json:"avg_period_duration"`
	LastPeriod         string   `json:"last_period"`
}

type forecastEntryView struct {
	PeriodNumber       int     `json:"period_number"`
	PredictedStart     string  `json:"predicted_start"`
	FertileWindowStart string  `json:"fertile_window_start"`
	FertileWindowEnd   string  `json:"fertile_window_end"`
	OvulationDay       string  `json:"ovulation_day"`
	AvgCycleLength     float64 `json:"avg_cycle_length"`
}

type phaseView struct {
	CurrentPhase        string  `json:"current_phase"`
	Description         string  `json:"description"`
	DaysInPhase         int     `json:"days_in_phase"`
	DaysSinceLastPeriod int     `json:"days_since_last_period"`
	DaysUntilNextPeriod int     `json:"days_until_next_period"`
	NextPeriodDate      string  `json:"next_period_date"`
	PhaseColor          string  `json:"phase_color"`
	AvgCycleLength      float64 `json:"avg_cycle_length"`
}

type predictionView struct {
	ID               uint   `json:"id"`
	PCOSRisk         int    `json:"pcos_risk"`
	AnemiaRisk       int    `json:"anemia_risk"`
	BreastCancerRisk int    `json:"breast_cancer_risk"`
	CreatedAt        string `json:"created_at"`
}

type predictionHistoryView struct {
	ID           uint   `json:"id"`
	PCOS         int    `json:"pcos"`
	Anemia       int    `json:"anemia"`
	BreastCancer int    `json:"breast_cancer"`
	CreatedAt    string `json:"created_at"`
}

type nutritionView struct {
	Symptom string       `json:"symptom"`
	Meals   mealPlanView `json:"meals"`
	Tips    []string     `json:"tips"`
}

type mealPlanView struct {
	Breakfast []string `json:"breakfast"`
	Lunch     []string `json:"lunch"`
	Dinner    []string `json:"dinner"`
	Snack     []string `json:"snack"`
}

func formatTimestamp(value time.Time) string {
	return value.UTC().Format(timestampLayout)
}

func optionalText(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func buildUserView(user models.User) userView {
	return userView{
		ID:                 user.ID,
		Name:               user.Name,
		Email:              user.Email,
		IsAnonymous:        user.IsAnonymous,
		MustChangePassword: user.MustChangePassword,
		CreatedAt:          formatTimestamp(user.CreatedAt),
	}
}

func buildPeriodLogView(entry models.PeriodLog) periodLogView {
	view := periodLogView{
		ID:            entry.ID,
		StartDate:     services.FormatDay(entry.StartDate),
		FlowIntensity: optionalText(entry.FlowIntensity),
		Symptoms:      entry.Symptoms,
		Notes:         optionalText(entry.Notes),
		CycleLength:   entry.CycleLength,
		CreatedAt:     formatTimestamp(entry.CreatedAt),
	}
	if view.Symptoms == nil {
		view.Symptoms = []string{}
	}
	if entry.EndDate != nil {
		endDate := services.FormatDay(*entry.EndDate)
		view.EndDate = &endDate
	}
	return view
}

func buildPeriodLogViews(entries []models.PeriodLog) []periodLogView {
	views := make([]periodLogView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, buildPeriodLogView(entry))
	}
	return views
}

func buildCycleStatsView(summary services.CycleSummary) cycleStatsView {
	return cycleStatsView{
		TotalPeriodsLogged: summary.TotalPeriodsLogged,
		AvgCycleLength:     summary.AvgCycleLength,
		ShortestCycle:      summary.ShortestCycle,
		LongestCycle:       summary.LongestCycle,
		AvgPeriodDuration:  summary.AvgPeriodDuration,
		LastPeriod:         services.FormatDay(summary.LastPeriod),
	}
}

func buildForecastEntryViews(entries []services.CycleForecastEntry) []forecastEntryView {
	views := make([]forecastEntryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, forecastEntryView{
			PeriodNumber:       entry.PeriodNumber,
			PredictedStart:     services.FormatDay(entry.PredictedStart),
			FertileWindowStart: services.FormatDay(entry.FertileWindowStart),
			FertileWindowEnd:   services.FormatDay(entry.FertileWindowEnd),
			OvulationDay:       services.FormatDay(entry.OvulationDay),
			AvgCycleLength:     entry.AvgCycleLength,
		})
	}
	return views
}

func buildPhaseView(report services.PhaseReport) phaseView {
	return phaseView{
		CurrentPhase:        report.Phase.Name,
		Description:         report.Phase.Description,
		DaysInPhase:         report.Phase.DaysInPhase,
		DaysSinceLastPeriod: report.DaysSinceLastPeriod,
		DaysUntilNextPeriod: report.DaysUntilNextPeriod,
		NextPeriodDate:      services.FormatDay(report.NextPeriodDate),
		PhaseColor:          report.Phase.Color,
		AvgCycleLength:      report.AvgCycleLength,
	}
}

func buildPredictionHistoryViews(predictions []models.Prediction) []predictionHistoryView {
	views := make([]predictionHistoryView, 0, len(predictions))
	for _, prediction := range predictions {
		views = append(views, predictionHistoryView{
			ID:           prediction.ID,
			PCOS:         prediction.PCOSRisk,
			Anemia:       prediction.AnemiaRisk,
			BreastCancer: prediction.BreastCancerRisk,
			CreatedAt:    formatTimestamp(prediction.CreatedAt),
		})
	}
	return views
}

func buildNutritionView(advice services.NutritionAdvice) nutritionView {
	return nutritionView{
		Symptom: advice.Symptom,
		Meals: mealPlanView{
			Breakfast: nonNilStrings(advice.Meals.Breakfast),
			Lunch:     nonNilStrings(advice.Meals.Lunch),
			Dinner:    nonNilStrings(advice.Meals.Dinner),
			Snack:     nonNilStrings(advice.Meals.Snack),
		},
		Tips: nonNilStrings(advice.Tips),
	}
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
