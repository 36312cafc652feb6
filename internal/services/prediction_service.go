package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/terraincognita07/shecare/internal/models"
)

var (
	ErrRiskBMIRequired          = errors.New("bmi or body measurements required")
	ErrRiskAcneSeverityRequired = errors.New("acne severity required")
	ErrRiskFeaturesInvalid      = errors.New("risk features invalid")
	ErrPredictionSaveFailed     = errors.New("save prediction failed")
	ErrPredictionLoadFailed     = errors.New("load predictions failed")
)

type PredictionRepository interface {
	Create(prediction *models.Prediction) error
	ListByUser(userID uint) ([]models.Prediction, error)
}

type CycleVariationSource interface {
	CycleVariation(userID uint) (int, error)
}

// RiskAssessmentInput mirrors the classifier features. BMI, cycle variation
// and acne severity may be derived when they are not given directly.
type RiskAssessmentInput struct {
	Age               float64
	BMI               *float64
	HeightCM          float64
	WeightKG          float64
	CycleVariation    *float64
	AcneSeverity      *float64
	AcneSeverityLabel string
	HairGrowth        float64
	Fatigue           float64
	Hemoglobin        float64
	BreastLump        float64
	BreastPain        float64
}

type PredictionService struct {
	models      RiskModels
	predictions PredictionRepository
	cycles      CycleVariationSource
	now         func() time.Time
}

func NewPredictionService(riskModels RiskModels, predictions PredictionRepository, cycles CycleVariationSource, now func() time.Time) *PredictionService {
	if now == nil {
		now = time.Now
	}
	return &PredictionService{
		models:      riskModels,
		predictions: predictions,
		cycles:      cycles,
		now:         now,
	}
}

func (service *PredictionService) BuildFeatures(userID uint, input RiskAssessmentInput) (RiskFeatures, error) {
	var bmi float64
	switch {
	case input.BMI != nil:
		bmi = *input.BMI
	default:
		calculated, err := CalculateBMI(input.HeightCM, input.WeightKG)
		if err != nil {
			return RiskFeatures{}, ErrRiskBMIRequired
		}
		bmi = calculated
	}

	var acne float64
	switch {
	case input.AcneSeverity != nil:
		acne = *input.AcneSeverity
	case input.AcneSeverityLabel != "":
		acne = AcneSeverityScore(input.AcneSeverityLabel)
	default:
		return RiskFeatures{}, ErrRiskAcneSeverityRequired
	}

	variation := 0.0
	if input.CycleVariation != nil {
		variation = *input.CycleVariation
	} else if service.cycles != nil {
		derived, err := service.cycles.CycleVariation(userID)
		if err != nil {
			return RiskFeatures{}, err
		}
		variation = float64(derived)
	}

	features := RiskFeatures{
		input.Age,
		bmi,
		variation,
		acne,
		input.HairGrowth,
		input.Fatigue,
		input.Hemoglobin,
		input.BreastLump,
		input.BreastPain,
	}
	for _, value := range features {
		if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
			return RiskFeatures{}, ErrRiskFeaturesInvalid
		}
	}
	return features, nil
}

// Assess runs the three classifiers and stores their labels unvalidated.
func (service *PredictionService) Assess(userID uint, input RiskAssessmentInput) (models.Prediction, error) {
	features, err := service.BuildFeatures(userID, input)
	if err != nil {
		return models.Prediction{}, err
	}

	prediction := models.Prediction{
		UserID:           userID,
		PCOSRisk:         service.models.PCOS.Predict(features),
		AnemiaRisk:       service.models.Anemia.Predict(features),
		BreastCancerRisk: service.models.BreastCancer.Predict(features),
		CreatedAt:        service.now().UTC(),
	}
	if err := service.predictions.Create(&prediction); err != nil {
		return models.Prediction{}, fmt.Errorf("%w: %v", ErrPredictionSaveFailed, err)
	}
	return prediction, nil
}

func (service *PredictionService) History(userID uint) ([]models.Prediction, error) {
	predictions, err := service.predictions.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPredictionLoadFailed, err)
	}
	return predictions, nil
}
