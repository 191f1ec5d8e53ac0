package report

import (
	"fmt"
)

// controlsVisibility: a job without controls still gets an explanatory
// empty state, because "no controls recorded" is compliance-relevant.
func (r *renderer) controlsVisibility() SectionVisibility {
	if len(r.snap.Mitigations) == 0 {
		return SectionExplainedEmpty
	}
	return SectionRendered
}

// renderControls draws the completion progress bar and one row per control.
func (r *renderer) renderControls(vis SectionVisibility) {
	cv := r.cv
	r.sectionTitle("Controls & Mitigations")

	if vis == SectionExplainedEmpty {
		r.emptyStateNote("No controls have been recorded for this job. " +
			"Add mitigation items in the job workspace and complete them on site to populate this section.")
		return
	}

	w := r.flow.ContentWidth()
	completed := 0
	for _, m := range r.snap.Mitigations {
		if m.Completed {
			completed++
		}
	}
	ratio := float64(completed) / float64(len(r.snap.Mitigations))

	// Progress bar
	r.flow.EnsureSpace(16)
	y := r.flow.Y()
	cv.SetFontStyle("B", 10)
	cv.SetTextRGB(colorTextDark)
	cv.Text(marginX, y, fmt.Sprintf("%d of %s complete", completed, pluralize(len(r.snap.Mitigations), "control")), w, true)
	barY := y + 7
	cv.FillRoundedRect(marginX, barY, w, 4, 2, colorGridLine)
	if ratio > 0 {
		barColor := colorWarn
		if ratio >= 1 {
			barColor = colorGood
		}
		cv.FillRoundedRect(marginX, barY, w*ratio, 4, 2, barColor)
	}
	r.flow.SetY(barY + 10)

	// One atomic row per control
	for _, m := range r.snap.Mitigations {
		rowH := 9.0
		if m.Description != "" {
			cv.SetFontStyle("", 8)
			rowH += cv.TextHeight(m.Description, w-14) + 1
		}
		r.flow.EnsureSpace(rowH)
		y = r.flow.Y()

		// Status dot
		dotColor := colorGridLine
		if m.Completed {
			dotColor = colorGood
		}
		cv.FillRoundedRect(marginX+1, y+1.5, 3.5, 3.5, 1.75, dotColor)

		cv.SetFontStyle("B", 10)
		cv.SetTextRGB(colorTextDark)
		title := m.Title
		cv.TextAligned(marginX+8, y, w-8-52, title, "L")

		status := "Open"
		if m.Completed {
			status = "Done"
			if m.CompletedAt != nil {
				status = "Done " + formatTime(*m.CompletedAt)
			}
			if m.CompletedBy != "" {
				status += " by " + m.CompletedBy
			}
		}
		cv.SetFontStyle("", 8)
		cv.SetTextRGB(colorTextMuted)
		cv.TextAligned(marginX+w-52, y+0.8, 52, status, "R")

		if m.Description != "" {
			cv.SetFontStyle("", 8)
			cv.SetTextRGB(colorTextMuted)
			cv.Text(marginX+8, y+6, m.Description, w-14, false)
		}

		r.flow.SetY(y + rowH)
	}
	r.flow.Advance(8)
}
