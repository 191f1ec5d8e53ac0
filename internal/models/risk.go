package models

import "time"

// RiskAssessment is the overall risk evaluation for a job, one per render
type RiskAssessment struct {
	ID           string       `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	JobID        string       `gorm:"type:uuid;index;not null" json:"jobId"`
	OverallScore float64      `json:"overallScore"`
	RiskLevel    string       `gorm:"default:'low'" json:"riskLevel"`
	Factors      []RiskFactor `gorm:"foreignKey:AssessmentID" json:"factors"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name
func (RiskAssessment) TableName() string {
	return "risk_assessments"
}

// RiskFactor is a single identified hazard contributing to the overall score
type RiskFactor struct {
	ID           string  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	AssessmentID string  `gorm:"type:uuid;index;not null" json:"assessmentId"`
	Code         string  `gorm:"not null" json:"code"` // e.g. "ELEC-01"
	Name         string  `gorm:"not null" json:"name"`
	Severity     string  `gorm:"default:'low'" json:"severity"` // low, medium, high, critical
	Weight       float64 `json:"weight"`
	Description  string  `gorm:"type:text" json:"description,omitempty"`
	SortOrder    int     `gorm:"default:0" json:"sortOrder"`
}

// TableName specifies the table name
func (RiskFactor) TableName() string {
	return "risk_factors"
}
