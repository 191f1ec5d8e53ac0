package models

import "time"

// Signature roles
const (
	SignatureRolePreparedBy = "prepared_by"
	SignatureRoleReviewedBy = "reviewed_by"
	SignatureRoleApprovedBy = "approved_by"
	SignatureRoleOther      = "other"
)

// RequiredSignatureRoles are the roles a final (non-draft) report must carry
var RequiredSignatureRoles = []string{
	SignatureRolePreparedBy,
	SignatureRoleReviewedBy,
	SignatureRoleApprovedBy,
}

// Signature is a captured sign-off. RawSVG comes from a browser drawing
// surface and is untrusted input; it is validated before rendering.
type Signature struct {
	ID          string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	JobID       string    `gorm:"type:uuid;index;not null" json:"jobId"`
	SignerName  string    `gorm:"not null" json:"signerName"`
	SignerTitle string    `json:"signerTitle,omitempty"`
	SignerEmail string    `json:"signerEmail,omitempty"`
	Role        string    `gorm:"default:'other';index" json:"role"` // prepared_by, reviewed_by, approved_by, other
	SignedAt    time.Time `json:"signedAt"`
	RawSVG      string    `gorm:"type:text" json:"-"`
	ContentHash string    `gorm:"type:varchar(64)" json:"contentHash,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name
func (Signature) TableName() string {
	return "signatures"
}
