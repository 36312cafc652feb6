package models

import "time"

// Prediction stores the labels returned by the risk classifiers as-is.
type Prediction struct {
	ID               uint      `gorm:"primaryKey"`
	UserID           uint      `gorm:"not null;index"`
	PCOSRisk         int       `gorm:"column:pcos_risk;not null"`
	AnemiaRisk       int       `gorm:"column:anemia_risk;not null"`
	BreastCancerRisk int       `gorm:"column:breast_cancer_risk;not null"`
	CreatedAt        time.Time `gorm:"not null"`
}
