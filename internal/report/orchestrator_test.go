package report

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fieldproof-com/fieldproofgo/internal/models"
)

func fixedTestTime() time.Time {
	return time.Date(2026, 7, 20, 12, 0, 0, 0, time.UTC)
}

// testSnapshot builds a fully populated snapshot for a finalized job:
// terminal status, all required roles signed, every section has content.
func testSnapshot() *Snapshot {
	start := time.Date(2026, 7, 6, 7, 30, 0, 0, time.UTC)
	end := start.Add(9 * 24 * time.Hour)
	score := 7.2
	level := models.RiskLevelHigh
	doneAt := start.Add(26 * time.Hour)

	sigSVG := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 400 200"><path d="M 20 120 C 60 40 110 160 150 90 L 210 110"/></svg>`

	return &Snapshot{
		RunID: "2f1c9a4e-8d3b-4c6a-9e71-0b5f2d8a1c33",
		Job: models.Job{
			ID:          "7d9e2b10-4f5a-4e8c-b1d2-3a6c8e0f9a77",
			ClientName:  "Harbour Point Logistics",
			JobType:     "Switchboard upgrade",
			Location:    "Dock 4",
			Status:      models.JobStatusCompleted,
			RiskScore:   &score,
			RiskLevel:   &level,
			StartDate:   &start,
			EndDate:     &end,
			Description: "Replacement of the main distribution switchboard.",
		},
		Organization: models.Organization{
			Name:        "Northway Electrical",
			AccentColor: "#1E3A5F",
		},
		Assessment: &models.RiskAssessment{
			OverallScore: score,
			RiskLevel:    level,
			Factors: []models.RiskFactor{
				{Code: "ELEC-01", Name: "Live electrical work", Severity: models.RiskLevelCritical, Weight: 3.0, Description: "Feeders remain energized until stage 2 isolation."},
				{Code: "WAH-02", Name: "Work at height", Severity: models.RiskLevelMedium, Weight: 1.5},
			},
		},
		Mitigations: []models.MitigationItem{
			{Title: "Lockout/tagout applied", Completed: true, CompletedAt: &doneAt, CompletedBy: "M. Osei"},
			{Title: "Arc-flash PPE issued", Completed: true, CompletedAt: &doneAt, CompletedBy: "M. Osei"},
			{Title: "Temporary supply load-tested"},
		},
		Evidence: []models.EvidenceAsset{
			{Name: "Hot work permit", Type: models.EvidenceTypePermit, UploadedBy: "J. Reid"},
		},
		AuditLog: []models.AuditLogEntry{
			{EventName: models.EventJobCreated, CreatedAt: start.Add(-72 * time.Hour)},
			{EventName: models.EventMitigationCompleted, Metadata: models.JSONB{"title": "Lockout/tagout applied"}, CreatedAt: doneAt},
		},
		Signatures: []models.Signature{
			{SignerName: "Maya Osei", SignerTitle: "Site Supervisor", Role: models.SignatureRolePreparedBy, SignedAt: doneAt, RawSVG: sigSVG},
			{SignerName: "Jordan Reid", SignerTitle: "HSE Manager", Role: models.SignatureRoleReviewedBy, SignedAt: doneAt.Add(time.Hour), RawSVG: sigSVG},
			{SignerName: "Ana Calder", SignerTitle: "Project Director", Role: models.SignatureRoleApprovedBy, SignedAt: doneAt.Add(2 * time.Hour), RawSVG: sigSVG},
		},
		GeneratedAt: fixedTestTime(),
		VerifyURL:   "https://verify.fieldproof.app/runs/2f1c9a4e-8d3b-4c6a-9e71-0b5f2d8a1c33",
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	g := NewGenerator("FieldProof")
	snap := testSnapshot()

	first, err := g.Generate(snap)
	if err != nil {
		t.Fatalf("First render failed: %v", err)
	}
	second, err := g.Generate(snap)
	if err != nil {
		t.Fatalf("Second render failed: %v", err)
	}

	if !bytes.Equal(first.PDF, second.PDF) {
		t.Error("Same snapshot produced different bytes across renders")
	}
	if first.Hash != second.Hash {
		t.Errorf("Hash mismatch across renders: %s vs %s", first.Hash, second.Hash)
	}
}

func TestGenerate_IdempotentWithTiedAuditEvents(t *testing.T) {
	g := NewGenerator("FieldProof")
	snap := testSnapshot()

	// Distinct event types sharing one timestamp must not introduce any
	// run-to-run variation in the rendered bytes.
	at := fixedTestTime().Add(-time.Hour)
	snap.AuditLog = append(snap.AuditLog,
		models.AuditLogEntry{EventName: models.EventJobCreated, CreatedAt: at},
		models.AuditLogEntry{EventName: models.EventDocumentUploaded, Metadata: models.JSONB{"name": "permit.pdf"}, CreatedAt: at},
		models.AuditLogEntry{EventName: models.EventJobStatusChanged, Metadata: models.JSONB{"status": "active"}, CreatedAt: at},
	)

	first, err := g.Generate(snap)
	if err != nil {
		t.Fatalf("First render failed: %v", err)
	}
	for run := 0; run < 5; run++ {
		again, err := g.Generate(snap)
		if err != nil {
			t.Fatalf("Render %d failed: %v", run, err)
		}
		if !bytes.Equal(first.PDF, again.PDF) {
			t.Fatalf("Render %d: same snapshot produced different bytes", run)
		}
	}
}

func TestGenerate_HashMatchesBytes(t *testing.T) {
	g := NewGenerator("FieldProof")
	res, err := g.Generate(testSnapshot())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	sum := sha256.Sum256(res.PDF)
	if res.Hash != hex.EncodeToString(sum[:]) {
		t.Error("Result hash does not match SHA-256 of the returned bytes")
	}
}

func TestGenerate_RejectsMissingSnapshot(t *testing.T) {
	g := NewGenerator("FieldProof")

	if _, err := g.Generate(nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for nil snapshot, got %v", err)
	}
	if _, err := g.Generate(&Snapshot{GeneratedAt: fixedTestTime()}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for snapshot without a job, got %v", err)
	}
}

func TestGenerate_PageNumbersMatchFinalCount(t *testing.T) {
	g := NewGenerator("FieldProof")
	g.compress = false
	snap := testSnapshot()

	res, err := g.Generate(snap)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if res.PageCount < 2 {
		t.Fatalf("Expected cover plus at least one body page, got %d", res.PageCount)
	}

	// Every page, cover included, carries a footer with the real total
	for i := 1; i <= res.PageCount; i++ {
		footer := fmt.Sprintf("Page %d of %d", i, res.PageCount)
		if !bytes.Contains(res.PDF, []byte(footer)) {
			t.Errorf("Footer %q missing from document", footer)
		}
	}
	// No page claims a total the document never reached
	stale := fmt.Sprintf("Page 1 of %d", res.PageCount+1)
	if bytes.Contains(res.PDF, []byte(stale)) {
		t.Error("Document contains a footer with a stale page total")
	}
}

func TestGenerate_MultiPageOverflow(t *testing.T) {
	g := NewGenerator("FieldProof")
	snap := testSnapshot()

	// Enough controls to force several page breaks
	for i := 0; i < 120; i++ {
		snap.Mitigations = append(snap.Mitigations, models.MitigationItem{
			Title: fmt.Sprintf("Spot check %d", i),
		})
	}

	res, err := g.Generate(snap)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if res.PageCount < 4 {
		t.Errorf("Expected overflow onto several pages, got %d", res.PageCount)
	}
}

func TestGenerate_DraftWatermark(t *testing.T) {
	g := NewGenerator("FieldProof")
	g.compress = false

	snap := testSnapshot()
	snap.Job.Status = models.JobStatusActive

	res, err := g.Generate(snap)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !res.Draft {
		t.Error("Active job should render as a draft")
	}
	if !bytes.Contains(res.PDF, []byte("(DRAFT)")) {
		t.Error("Draft run missing the DRAFT watermark")
	}
}

func TestGenerate_FinalizedHasNoDraftMark(t *testing.T) {
	g := NewGenerator("FieldProof")
	g.compress = false

	res, err := g.Generate(testSnapshot())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if res.Draft {
		t.Error("Completed and fully signed job should not be a draft")
	}
	if bytes.Contains(res.PDF, []byte("(DRAFT)")) {
		t.Error("Finalized run carries a DRAFT watermark")
	}
}

func TestSnapshot_IsDraft(t *testing.T) {
	snap := testSnapshot()
	if snap.IsDraft() {
		t.Error("Completed job with all required roles signed should be final")
	}

	snap.Job.Status = models.JobStatusActive
	if !snap.IsDraft() {
		t.Error("Non-terminal job status should force draft")
	}

	snap.Job.Status = models.JobStatusArchived
	snap.Signatures = snap.Signatures[:2] // drop approved_by
	if !snap.IsDraft() {
		t.Error("Missing required sign-off role should force draft")
	}
}

func TestGenerate_EmptyControlsExplainedNotOmitted(t *testing.T) {
	snap := testSnapshot()
	snap.Mitigations = nil

	r := &renderer{snap: snap}
	if got := r.controlsVisibility(); got != SectionExplainedEmpty {
		t.Errorf("Expected explained empty state for zero controls, got %v", got)
	}

	// The run still succeeds and the section renders its explanation
	g := NewGenerator("FieldProof")
	g.compress = false
	res, err := g.Generate(snap)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.Contains(res.PDF, []byte("No controls have been recorded")) {
		t.Error("Explained empty state text missing from document")
	}
}

func TestGenerate_SparseSnapshotStillRenders(t *testing.T) {
	// Bare minimum: a job and nothing else. Optional sections are omitted
	// or explained, the document still finishes with a verifiable hash.
	snap := &Snapshot{
		RunID:        "run-sparse",
		Job:          models.Job{ID: "job-sparse", ClientName: "Acme", Status: models.JobStatusDraft},
		Organization: models.Organization{Name: "Acme Safety"},
		GeneratedAt:  fixedTestTime(),
		VerifyURL:    "https://verify.fieldproof.app/runs/run-sparse",
	}

	g := NewGenerator("FieldProof")
	res, err := g.Generate(snap)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if res.PageCount < 2 {
		t.Errorf("Expected cover plus body, got %d pages", res.PageCount)
	}
	if len(res.Hash) != 64 {
		t.Errorf("Expected a hex SHA-256 hash, got %q", res.Hash)
	}
	if !res.Draft {
		t.Error("Unsigned draft job must render as draft")
	}
}
