package models

import (
	"time"

	"gorm.io/gorm"
)

// Job statuses
const (
	JobStatusDraft     = "draft"
	JobStatusActive    = "active"
	JobStatusCompleted = "completed"
	JobStatusArchived  = "archived"
)

// Risk levels
const (
	RiskLevelLow      = "low"
	RiskLevelMedium   = "medium"
	RiskLevelHigh     = "high"
	RiskLevelCritical = "critical"
)

// Job represents a unit of site work a Risk Snapshot is generated for.
// The renderer treats jobs as read-only; all mutation happens in the CRUD surface.
type Job struct {
	ID          string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	OrgID       string     `gorm:"type:uuid;index" json:"orgId"`
	ClientName  string     `gorm:"not null" json:"clientName"`
	JobType     string     `json:"jobType"`
	Location    string     `json:"location"`
	Status      string     `gorm:"default:'draft';index" json:"status"` // draft, active, completed, archived
	RiskScore   *float64   `json:"riskScore,omitempty"`
	RiskLevel   *string    `json:"riskLevel,omitempty"` // low, medium, high, critical
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Description string     `gorm:"type:text" json:"description"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name
func (Job) TableName() string {
	return "jobs"
}

// Organization holds branding input for the cover page
type Organization struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	AccentColor string `gorm:"default:'#1E3A5F'" json:"accentColor"` // hex, e.g. #1E3A5F
	Logo        []byte `gorm:"type:bytea" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name
func (Organization) TableName() string {
	return "organizations"
}
