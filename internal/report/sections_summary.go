package report

import (
	"fmt"
	"strings"

	"github.com/fieldproof-com/fieldproofgo/internal/models"
)

// summaryVisibility: the summary always renders, it is built from the job
// row which every snapshot has.
func (r *renderer) summaryVisibility() SectionVisibility {
	return SectionRendered
}

// renderSummary draws the risk headline card, the quick stats row, and the
// job description.
func (r *renderer) renderSummary(SectionVisibility) {
	cv := r.cv
	r.sectionTitle("Executive Summary")

	w := r.flow.ContentWidth()

	// Headline card colored by overall risk level
	level := models.RiskLevelLow
	headline := "No elevated risk identified for this job"
	if r.snap.Job.RiskLevel != nil {
		level = *r.snap.Job.RiskLevel
	}
	switch level {
	case models.RiskLevelCritical:
		headline = "Critical risk - work requires sign-off before proceeding"
	case models.RiskLevelHigh:
		headline = "High risk - controls must be verified on site"
	case models.RiskLevelMedium:
		headline = "Medium risk - standard controls apply"
	}

	r.flow.EnsureSpace(34)
	y := r.flow.Y()
	cv.FillRoundedRect(marginX, y, w, 28, 3, riskLevelColor(level))
	cv.SetFontStyle("B", 20)
	cv.SetTextRGB(RGB{255, 255, 255})
	cv.TextAligned(marginX, y+6, w, strings.ToUpper(level)+" RISK", "C")
	cv.SetFontStyle("", 10)
	cv.TextAligned(marginX, y+17, w, headline, "C")
	r.flow.SetY(y + 34)

	// Quick stats: score, controls progress, evidence, sign-offs
	completed := 0
	for _, m := range r.snap.Mitigations {
		if m.Completed {
			completed++
		}
	}
	score := "N/A"
	if r.snap.Job.RiskScore != nil {
		score = fmt.Sprintf("%.1f", *r.snap.Job.RiskScore)
	}

	stats := []struct {
		label, value string
	}{
		{"RISK SCORE", score},
		{"CONTROLS", fmt.Sprintf("%d/%d", completed, len(r.snap.Mitigations))},
		{"EVIDENCE", fmt.Sprintf("%d", len(r.snap.Evidence))},
		{"SIGN-OFFS", fmt.Sprintf("%d", len(r.snap.Signatures))},
	}

	r.flow.EnsureSpace(22)
	y = r.flow.Y()
	colW := w / float64(len(stats))
	for i, s := range stats {
		x := marginX + float64(i)*colW
		cv.FillRect(x+1, y, colW-2, 7, colorBackground)
		cv.SetFontStyle("B", 8)
		cv.SetTextRGB(colorTextDark)
		cv.TextAligned(x, y+1.4, colW, s.label, "C")
		cv.SetFontStyle("B", 15)
		cv.TextAligned(x, y+9, colW, s.value, "C")
	}
	r.flow.SetY(y + 22)

	// Free-text description, when the job has one
	if desc := strings.TrimSpace(r.snap.Job.Description); desc != "" {
		cv.SetFontStyle("B", 11)
		cv.SetTextRGB(colorTextDark)
		r.flow.EnsureSpace(14 + cv.TextHeight(desc, w))
		cv.Text(marginX, r.flow.Y(), "Scope of Work", w, true)
		r.flow.Advance(7)
		cv.SetFontStyle("", 10)
		cv.SetTextRGB(colorTextDark)
		used := cv.Text(marginX, r.flow.Y(), desc, w, false)
		r.flow.Advance(used + 8)
	}
}
