package models

import "time"

// ReportRun is one immutable generated Risk Snapshot: the bytes and their
// SHA-256 hash never change once written. Regenerating a report for the
// same job always inserts a new run (chain of custody).
type ReportRun struct {
	ID               string `gorm:"primaryKey;type:uuid" json:"id"`
	JobID            string `gorm:"type:uuid;index;not null" json:"jobId"`
	ContentHash      string `gorm:"type:varchar(64);not null;index" json:"contentHash"`
	PDF              []byte `gorm:"type:bytea" json:"-"`
	PageCount        int    `json:"pageCount"`
	Draft            bool   `gorm:"default:true" json:"draft"`
	GeneratorVersion string `gorm:"type:varchar(32)" json:"generatorVersion"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name
func (ReportRun) TableName() string {
	return "report_runs"
}
