package models

import "time"

// MitigationItem is a risk-reduction control tracked to completion
type MitigationItem struct {
	ID          string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	JobID       string     `gorm:"type:uuid;index;not null" json:"jobId"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CompletedBy string     `json:"completedBy,omitempty"`
	SortOrder   int        `gorm:"default:0" json:"sortOrder"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name
func (MitigationItem) TableName() string {
	return "mitigation_items"
}
