package report

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
)

// Result is the finished document: the bytes, their SHA-256 hash, and the
// reconciled page count from the stamping pass.
type Result struct {
	PDF       []byte
	Hash      string
	PageCount int
	Draft     bool
}

// Generator renders Risk Snapshots. Instances hold no per-run state, so
// reports for different jobs can be generated concurrently.
type Generator struct {
	Brand    string
	compress bool
}

// NewGenerator creates a generator with the given brand name
func NewGenerator(brand string) *Generator {
	if brand == "" {
		brand = "FieldProof"
	}
	return &Generator{Brand: brand, compress: true}
}

// renderer carries the per-run drawing state through the section renderers
type renderer struct {
	cv     *Canvas
	flow   *Flow
	snap   *Snapshot
	accent RGB
	brand  string
}

// section couples a renderer with its self-computed visibility
type section struct {
	name string
	vis  func() SectionVisibility
	draw func(SectionVisibility)
}

// Generate renders the snapshot in two passes: pass one lays out content
// section by section, pass two stamps header/watermark/footer once the page
// count is exactly known. Returns the bytes and their SHA-256 hash; on a
// document-level failure no partial bytes are returned.
func (g *Generator) Generate(snap *Snapshot) (*Result, error) {
	if snap == nil || snap.Job.ID == "" {
		return nil, fmt.Errorf("%w: job snapshot is missing", ErrInvalidInput)
	}

	cv, err := NewCanvas(snap.GeneratedAt, g.compress)
	if err != nil {
		return nil, err
	}
	cv.SetMeta(
		fmt.Sprintf("Risk Snapshot - %s", snap.Job.ClientName),
		snap.Organization.Name,
		fmt.Sprintf("Job safety compliance report for job %s", snap.Job.ID),
	)

	r := &renderer{
		cv:     cv,
		flow:   NewFlow(cv),
		snap:   snap,
		accent: accentRGB(snap.Organization.AccentColor),
		brand:  g.Brand,
	}

	// Pass one: content only. The cover is page 1; the first body section
	// opens page 2 and the rest flow on from there.
	r.renderCover()
	r.flow.NewPage()

	sections := []section{
		{"executive summary", r.summaryVisibility, r.renderSummary},
		{"hazard checklist", r.hazardsVisibility, r.renderHazards},
		{"controls", r.controlsVisibility, r.renderControls},
		{"timeline", r.timelineVisibility, r.renderTimeline},
		{"evidence photos", r.evidenceVisibility, r.renderEvidence},
		{"signatures", r.signaturesVisibility, r.renderSignatures},
		{"verification", r.verificationVisibility, r.renderVerification},
	}
	for _, s := range sections {
		v := s.vis()
		if v == SectionOmitted {
			log.Printf("📄 Section %q omitted: no content", s.name)
			continue
		}
		s.draw(v)
	}

	if depth := cv.StateDepth(); depth != 0 {
		return nil, fmt.Errorf("%w: graphics state stack unbalanced (depth %d)", ErrSurfaceInit, depth)
	}

	// Pass two: the page set is final, overlay every page exactly once.
	draft := snap.IsDraft()
	stampAll(cv, snap, g.Brand, draft)

	if err := cv.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSurfaceInit, err)
	}

	pdf, err := cv.Output()
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(pdf)
	return &Result{
		PDF:       pdf,
		Hash:      hex.EncodeToString(sum[:]),
		PageCount: cv.PageCount(),
		Draft:     draft,
	}, nil
}

// sectionTitle draws a section heading, breaking to a new page first when
// the heading plus a minimum amount of body would not fit.
func (r *renderer) sectionTitle(title string) {
	r.flow.EnsureSpace(34)
	y := r.flow.Y()
	r.cv.SetFontStyle("B", 15)
	r.cv.SetTextRGB(r.accent)
	r.cv.Text(marginX, y, title, r.flow.ContentWidth(), true)
	r.cv.StrokeLine(marginX, y+8, marginX+r.flow.ContentWidth(), y+8, colorGridLine, 0.3)
	r.flow.SetY(y + 13)
}

// emptyStateNote renders an intentional "why this is empty" explanation in
// place of section content. This is content, not a blank placeholder page.
func (r *renderer) emptyStateNote(text string) {
	w := r.flow.ContentWidth()
	h := r.cv.TextHeight(text, w-12) + 10
	r.flow.EnsureSpace(h)
	y := r.flow.Y()
	r.cv.FillRoundedRect(marginX, y, w, h, 2, colorBackground)
	r.cv.SetFontStyle("I", 10)
	r.cv.SetTextRGB(colorTextMuted)
	r.cv.Text(marginX+6, y+5, text, w-12, false)
	r.flow.SetY(y + h + 8)
}
