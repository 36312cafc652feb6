package services

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/terraincognita07/shecare/internal/models"
)

const (
	MaxPeriodSymptoms      = 20
	MaxPeriodSymptomLength = 64
	MaxPeriodNotesLength   = 2000
)

var (
	ErrPeriodStartDateRequired = errors.New("period start date is required")
	ErrPeriodFlowInvalid       = errors.New("period flow intensity invalid")
	ErrPeriodRangeInvalid      = errors.New("period end date before start date")
	ErrPeriodSymptomsInvalid   = errors.New("period symptoms invalid")
	ErrPeriodNotesTooLong      = errors.New("period notes too long")
)

type PeriodLogInput struct {
	StartDate     time.Time
	EndDate       *time.Time
	FlowIntensity string
	Symptoms      []string
	Notes         string
}

// PeriodLogPatch carries the mutable fields of a log. Nil fields stay unchanged.
type PeriodLogPatch struct {
	EndDate       *time.Time
	FlowIntensity *string
	Symptoms      *[]string
	Notes         *string
}

func NormalizePeriodLogInput(input PeriodLogInput) (PeriodLogInput, error) {
	if input.StartDate.IsZero() {
		return PeriodLogInput{}, ErrPeriodStartDateRequired
	}
	input.StartDate = CalendarDay(input.StartDate)

	if input.EndDate != nil {
		endDate := CalendarDay(*input.EndDate)
		if endDate.Before(input.StartDate) {
			return PeriodLogInput{}, ErrPeriodRangeInvalid
		}
		input.EndDate = &endDate
	}

	flow, err := NormalizeFlowIntensity(input.FlowIntensity)
	if err != nil {
		return PeriodLogInput{}, err
	}
	input.FlowIntensity = flow

	symptoms, err := NormalizeSymptoms(input.Symptoms)
	if err != nil {
		return PeriodLogInput{}, err
	}
	input.Symptoms = symptoms

	notes, err := NormalizeNotes(input.Notes)
	if err != nil {
		return PeriodLogInput{}, err
	}
	input.Notes = notes
	return input, nil
}

// NormalizeFlowIntensity accepts an empty value as "not recorded".
func NormalizeFlowIntensity(raw string) (string, error) {
	flow := strings.ToLower(strings.TrimSpace(raw))
	if flow == "" {
		return "", nil
	}
	if !models.IsFlowIntensity(flow) {
		return "", ErrPeriodFlowInvalid
	}
	return flow, nil
}

// NormalizeSymptoms trims tags and drops blanks while keeping their order.
func NormalizeSymptoms(raw []string) ([]string, error) {
	symptoms := make([]string, 0, len(raw))
	for _, value := range raw {
		symptom := strings.TrimSpace(value)
		if symptom == "" {
			continue
		}
		if utf8.RuneCountInString(symptom) > MaxPeriodSymptomLength {
			return nil, ErrPeriodSymptomsInvalid
		}
		symptoms = append(symptoms, symptom)
	}
	if len(symptoms) > MaxPeriodSymptoms {
		return nil, ErrPeriodSymptomsInvalid
	}
	return symptoms, nil
}

func NormalizeNotes(raw string) (string, error) {
	notes := strings.TrimSpace(raw)
	if utf8.RuneCountInString(notes) > MaxPeriodNotesLength {
		return "", ErrPeriodNotesTooLong
	}
	return notes, nil
}

// applyPeriodLogPatch validates patch against entry and returns the changed columns.
func applyPeriodLogPatch(entry *models.PeriodLog, patch PeriodLogPatch) ([]string, error) {
	columns := make([]string, 0, 4)

	if patch.EndDate != nil {
		endDate := CalendarDay(*patch.EndDate)
		if endDate.Before(CalendarDay(entry.StartDate)) {
			return nil, ErrPeriodRangeInvalid
		}
		entry.EndDate = &endDate
		columns = append(columns, "end_date")
	}
	if patch.FlowIntensity != nil {
		flow, err := NormalizeFlowIntensity(*patch.FlowIntensity)
		if err != nil {
			return nil, err
		}
		entry.FlowIntensity = flow
		columns = append(columns, "flow_intensity")
	}
	if patch.Symptoms != nil {
		symptoms, err := NormalizeSymptoms(*patch.Symptoms)
		if err != nil {
			return nil, err
		}
		entry.Symptoms = symptoms
		columns = append(columns, "symptoms")
	}
	if patch.Notes != nil {
		notes, err := NormalizeNotes(*patch.Notes)
		if err != nil {
			return nil, err
		}
		entry.Notes = notes
		columns = append(columns, "notes")
	}
	return columns, nil
}
