package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/shecare/internal/services"
)

const maxListLimit = 1000

var (
	errInvalidDate    = errors.New("invalid date")
	errInvalidID      = errors.New("invalid id")
	errInvalidLimit   = errors.New("invalid limit")
	errInvalidHorizon = errors.New("invalid horizon")
)

func parseDayValue(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, nil
	}
	day, err := services.ParseDay(value)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return day, nil
}

// parseOptionalDay treats null and blank strings as "no date".
func parseOptionalDay(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	day, err := parseDayValue(*raw)
	if err != nil {
		return nil, err
	}
	return &day, nil
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params(name)), 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

// parseLimitQuery returns 0 (no limit) for a missing value.
func parseLimitQuery(raw string) (int, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(value)
	if err != nil || limit < 0 || limit > maxListLimit {
		return 0, errInvalidLimit
	}
	return limit, nil
}

func parseHorizonQuery(raw string) (int, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return services.DefaultForecastHorizon, nil
	}
	horizon, err := strconv.Atoi(value)
	if err != nil || horizon < 1 || horizon > services.MaxForecastHorizon {
		return 0, errInvalidHorizon
	}
	return horizon, nil
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func buildPeriodLogInput(payload periodLogPayload) (services.PeriodLogInput, error) {
	startDate, err := parseDayValue(payload.StartDate)
	if err != nil {
		return services.PeriodLogInput{}, err
	}
	endDate, err := parseOptionalDay(payload.EndDate)
	if err != nil {
		return services.PeriodLogInput{}, err
	}
	return services.PeriodLogInput{
		StartDate:     startDate,
		EndDate:       endDate,
		FlowIntensity: stringValue(payload.FlowIntensity),
		Symptoms:      payload.Symptoms,
		Notes:         stringValue(payload.Notes),
	}, nil
}

func buildPeriodLogPatch(payload periodPatchPayload) (services.PeriodLogPatch, error) {
	patch := services.PeriodLogPatch{
		FlowIntensity: payload.FlowIntensity,
		Symptoms:      payload.Symptoms,
		Notes:         payload.Notes,
	}
	endDate, err := parseOptionalDay(payload.EndDate)
	if err != nil {
		return services.PeriodLogPatch{}, err
	}
	patch.EndDate = endDate
	return patch, nil
}

// buildRiskAssessmentInput lets a zero BMI fall back to height and weight.
func buildRiskAssessmentInput(payload riskAssessmentPayload) services.RiskAssessmentInput {
	bmi := payload.BMI
	if bmi != nil && *bmi == 0 && payload.HeightCM > 0 && payload.WeightKG > 0 {
		bmi = nil
	}
	return services.RiskAssessmentInput{
		Age:               payload.Age,
		BMI:               bmi,
		HeightCM:          payload.HeightCM,
		WeightKG:          payload.WeightKG,
		CycleVariation:    payload.CycleVariation,
		AcneSeverity:      payload.AcneSeverity,
		AcneSeverityLabel: payload.AcneSeverityLabel,
		HairGrowth:        payload.HairGrowth,
		Fatigue:           payload.Fatigue,
		Hemoglobin:        payload.Hemoglobin,
		BreastLump:        payload.BreastLump,
		BreastPain:        payload.BreastPain,
	}
}
