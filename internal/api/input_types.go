package api

type registerInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type credentialsInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type periodLogPayload struct {
	StartDate     string   `json:"start_date"`
	EndDate       *string  `json:"end_date"`
	FlowIntensity *string  `json:"flow_intensity"`
	Symptoms      []string `json:"symptoms"`
	Notes         *string  `json:"notes"`
}

// periodPatchPayload leaves fields that are absent or null unchanged.
type periodPatchPayload struct {
	EndDate       *string   `json:"end_date"`
	FlowIntensity *string   `json:"flow_intensity"`
	Symptoms      *[]string `json:"symptoms"`
	Notes         *string   `json:"notes"`
}

type riskAssessmentPayload struct {
	Age               float64  `json:"age"`
	BMI               *float64 `json:"bmi"`
	HeightCM          float64  `json:"height_cm"`
	WeightKG          float64  `json:"weight_kg"`
	CycleVariation    *float64 `json:"cycle_variation"`
	AcneSeverity      *float64 `json:"acne_severity"`
	AcneSeverityLabel string   `json:"acne_severity_label"`
	HairGrowth        float64  `json:"hair_growth"`
	Fatigue           float64  `json:"fatigue"`
	Hemoglobin        float64  `json:"hemoglobin"`
	BreastLump        float64  `json:"breast_lump"`
	BreastPain        float64  `json:"breast_pain"`
}
