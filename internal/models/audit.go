package models

import "time"

// Audit event names recorded by the CRUD surface. The timeline summarizer
// only narrates a fixed subset of these; everything else stays in the raw trail.
const (
	EventJobCreated          = "job.created"
	EventJobUpdated          = "job.updated"
	EventJobStatusChanged    = "job.status_changed"
	EventDocumentUploaded    = "document.uploaded"
	EventMitigationCompleted = "mitigation.completed"
	EventMitigationReopened  = "mitigation.reopened"
	EventReportGenerated     = "report.generated"
)

// AuditLogEntry is one append-only row per domain mutation
type AuditLogEntry struct {
	ID         string  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	JobID      string  `gorm:"type:uuid;index;not null" json:"jobId"`
	EventName  string  `gorm:"not null;index" json:"eventName"` // dotted namespace, e.g. job.created
	ActorID    *string `gorm:"type:uuid" json:"actorId,omitempty"`
	ActorName  *string `json:"actorName,omitempty"`
	ActorEmail *string `json:"actorEmail,omitempty"`
	Metadata   JSONB   `gorm:"type:jsonb;default:'{}'" json:"metadata"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

// TableName specifies the table name
func (AuditLogEntry) TableName() string {
	return "audit_log_entries"
}

// Actor returns the display name of whoever performed the event, "System" when unattributed
func (e AuditLogEntry) Actor() string {
	if e.ActorName != nil && *e.ActorName != "" {
		return *e.ActorName
	}
	if e.ActorEmail != nil && *e.ActorEmail != "" {
		return *e.ActorEmail
	}
	return "System"
}
