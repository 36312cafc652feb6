package services

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const RiskFeatureCount = 9

// RiskFeatureNames is the fixed order of the classifier input vector.
var RiskFeatureNames = [RiskFeatureCount]string{
	"age",
	"bmi",
	"cycle_variation",
	"acne_severity",
	"hair_growth",
	"fatigue",
	"hemoglobin",
	"breast_lump",
	"breast_pain",
}

//go:embed data/risk_models.yaml
var defaultRiskModelsYAML []byte

var ErrRiskModelsInvalid = errors.New("risk models invalid")

type RiskFeatures [RiskFeatureCount]float64

// RiskClassifier must return the same label for the same features.
type RiskClassifier interface {
	Predict(features RiskFeatures) int
}

type RiskModels struct {
	PCOS         RiskClassifier
	Anemia       RiskClassifier
	BreastCancer RiskClassifier
}

type LogisticRiskModel struct {
	Bias      float64   `yaml:"bias"`
	Weights   []float64 `yaml:"weights"`
	Threshold float64   `yaml:"threshold"`
}

func (model LogisticRiskModel) Probability(features RiskFeatures) float64 {
	score := model.Bias
	for index, weight := range model.Weights {
		score += weight * features[index]
	}
	return 1 / (1 + math.Exp(-score))
}

func (model LogisticRiskModel) Predict(features RiskFeatures) int {
	threshold := model.Threshold
	if threshold <= 0 || threshold >= 1 {
		threshold = 0.5
	}
	if model.Probability(features) >= threshold {
		return 1
	}
	return 0
}

type riskModelsFile struct {
	FeatureOrder []string                     `yaml:"feature_order"`
	Models       map[string]LogisticRiskModel `yaml:"models"`
}

func DefaultRiskModels() (RiskModels, error) {
	return ParseRiskModels(defaultRiskModelsYAML)
}

func LoadRiskModelsFile(path string) (RiskModels, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return RiskModels{}, fmt.Errorf("read risk models: %w", err)
	}
	return ParseRiskModels(raw)
}

func ParseRiskModels(raw []byte) (RiskModels, error) {
	var file riskModelsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return RiskModels{}, fmt.Errorf("%w: %v", ErrRiskModelsInvalid, err)
	}

	if len(file.FeatureOrder) != RiskFeatureCount {
		return RiskModels{}, fmt.Errorf("%w: expected %d features, got %d", ErrRiskModelsInvalid, RiskFeatureCount, len(file.FeatureOrder))
	}
	for index, name := range file.FeatureOrder {
		if name != RiskFeatureNames[index] {
			return RiskModels{}, fmt.Errorf("%w: feature %d is %q, want %q", ErrRiskModelsInvalid, index, name, RiskFeatureNames[index])
		}
	}

	pcos, err := lookupRiskModel(file.Models, "pcos")
	if err != nil {
		return RiskModels{}, err
	}
	anemia, err := lookupRiskModel(file.Models, "anemia")
	if err != nil {
		return RiskModels{}, err
	}
	breastCancer, err := lookupRiskModel(file.Models, "breast_cancer")
	if err != nil {
		return RiskModels{}, err
	}

	return RiskModels{PCOS: pcos, Anemia: anemia, BreastCancer: breastCancer}, nil
}

func lookupRiskModel(models map[string]LogisticRiskModel, name string) (LogisticRiskModel, error) {
	model, ok := models[name]
	if !ok {
		return LogisticRiskModel{}, fmt.Errorf("%w: missing model %q", ErrRiskModelsInvalid, name)
	}
	if len(model.Weights) != RiskFeatureCount {
		return LogisticRiskModel{}, fmt.Errorf("%w: model %q has %d weights", ErrRiskModelsInvalid, name, len(model.Weights))
	}
	values := append([]float64{model.Bias}, model.Weights...)
	for _, value := range values {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return LogisticRiskModel{}, fmt.Errorf("%w: model %q has non-finite values", ErrRiskModelsInvalid, name)
		}
	}
	return model, nil
}
