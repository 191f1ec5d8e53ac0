package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fieldproof-com/fieldproofgo/internal/models"
)

// GeneratorVersion identifies the renderer build; it is stamped into every
// ReportRun so a stored hash can be re-verified against the right generator.
const GeneratorVersion = "1.4.0"

// Snapshot is the complete read-only input of one report run, captured once
// before rendering starts. Nothing is refetched mid-run, which keeps the
// output hash reproducible for the same snapshot and generator version.
type Snapshot struct {
	RunID        string
	Job          models.Job
	Organization models.Organization
	Assessment   *models.RiskAssessment
	Mitigations  []models.MitigationItem
	Evidence     []models.EvidenceAsset
	AuditLog     []models.AuditLogEntry
	Signatures   []models.Signature
	GeneratedAt  time.Time
	VerifyURL    string
}

// IsDraft reports whether the run renders with the DRAFT watermark: the job
// has not reached a terminal status, or a required sign-off role is missing.
func (s *Snapshot) IsDraft() bool {
	if s.Job.Status != models.JobStatusCompleted && s.Job.Status != models.JobStatusArchived {
		return true
	}
	signed := make(map[string]bool, len(s.Signatures))
	for _, sig := range s.Signatures {
		signed[sig.Role] = true
	}
	for _, role := range models.RequiredSignatureRoles {
		if !signed[role] {
			return true
		}
	}
	return false
}

// SectionVisibility decides whether a section appears, computed by each
// section from its own data so the logic lives next to what it depends on.
type SectionVisibility int

const (
	// SectionRendered means the section has content to draw
	SectionRendered SectionVisibility = iota
	// SectionOmitted means the section is skipped entirely, no placeholder page
	SectionOmitted
	// SectionExplainedEmpty means the section draws a "why this is empty" note
	SectionExplainedEmpty
)

// timestampLayout is the single fixed locale/timezone format for the document
const timestampLayout = "Jan 2, 2006 15:04 MST"

func formatTime(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return formatTime(*t)
}

func formatClock(t time.Time) string {
	return t.UTC().Format("15:04")
}

// riskLevelColor maps a risk level to its badge color
func riskLevelColor(level string) RGB {
	switch level {
	case models.RiskLevelCritical:
		return RGB{142, 36, 170}
	case models.RiskLevelHigh:
		return colorDanger
	case models.RiskLevelMedium:
		return colorWarn
	default:
		return colorGood
	}
}

// statusLabel renders a job status for display
func statusLabel(status string) string {
	if status == "" {
		return "Unknown"
	}
	return strings.ToUpper(status[:1]) + status[1:]
}

// accentRGB parses an organization's "#RRGGBB" accent color, falling back to
// the brand navy on any malformed value.
func accentRGB(hex string) RGB {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return colorBrand
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return colorBrand
	}
	return RGB{int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)}
}

// pluralize appends "s" for counts other than one
func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
