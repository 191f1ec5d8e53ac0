package models

import "time"

// Evidence asset types
const (
	EvidenceTypePhoto      = "photo"
	EvidenceTypePermit     = "permit"
	EvidenceTypeInspection = "inspection"
	EvidenceTypeDocument   = "document"
)

// Evidence categories (explicit tag always wins over derived classification)
const (
	EvidenceCategoryBefore = "before"
	EvidenceCategoryDuring = "during"
	EvidenceCategoryAfter  = "after"
)

// EvidenceAsset is a photo or document attached to a job as proof.
// Content is the downloaded binary; nil means the fetch failed and the
// renderer shows a placeholder instead.
type EvidenceAsset struct {
	ID         string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	JobID      string     `gorm:"type:uuid;index;not null" json:"jobId"`
	Name       string     `gorm:"not null" json:"name"`
	Type       string     `gorm:"default:'photo';index" json:"type"` // photo, permit, inspection, document
	Category   *string    `json:"category,omitempty"`                // before, during, after (explicit tag)
	UploadedBy string     `json:"uploadedBy,omitempty"`
	TakenAt    *time.Time `json:"takenAt,omitempty"`
	Content    []byte     `gorm:"type:bytea" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name
func (EvidenceAsset) TableName() string {
	return "evidence_assets"
}
