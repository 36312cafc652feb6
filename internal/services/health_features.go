package services

import (
	"errors"
	"math"
	"strings"
)

var ErrBodyMeasurementsInvalid = errors.New("body measurements invalid")

var acneSeverityScores = map[string]float64{
	"none":     0,
	"mild":     1,
	"moderate": 2,
	"severe":   3,
}

// CalculateBMI rounds to two decimals.
func CalculateBMI(heightCM float64, weightKG float64) (float64, error) {
	if heightCM <= 0 || weightKG <= 0 {
		return 0, ErrBodyMeasurementsInvalid
	}
	heightM := heightCM / 100
	return math.Round(weightKG/(heightM*heightM)*100) / 100, nil
}

func CycleVariation(lengths []int) int {
	if len(lengths) < 2 {
		return 0
	}
	shortest, longest := minMaxInts(lengths)
	return longest - shortest
}

// AcneSeverityScore maps a severity label to 0..3. Unknown labels score 0.
func AcneSeverityScore(label string) float64 {
	return acneSeverityScores[strings.ToLower(strings.TrimSpace(label))]
}
