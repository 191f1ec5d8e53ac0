package report

// timelineVisibility: omitted when no meaningful events survive the
// summarizer's allow-list.
func (r *renderer) timelineVisibility() SectionVisibility {
	if len(SummarizeTimeline(r.snap.AuditLog)) == 0 {
		return SectionOmitted
	}
	return SectionRendered
}

// renderTimeline draws the merged chronological narrative, one entry per
// summarized group with a connecting rail down the left side.
func (r *renderer) renderTimeline(SectionVisibility) {
	cv := r.cv
	r.sectionTitle("Activity Timeline")

	entries := SummarizeTimeline(r.snap.AuditLog)
	w := r.flow.ContentWidth()
	railX := marginX + 3.0
	textX := marginX + 10.0
	textW := w - 10.0

	for i, e := range entries {
		cv.SetFontStyle("", 10)
		rowH := 6.0 + cv.TextHeight(e.Description, textW)
		r.flow.EnsureSpace(rowH + 2)
		y := r.flow.Y()

		// Rail segment and node
		if i > 0 {
			cv.StrokeLine(railX, y-2, railX, y+2.5, colorGridLine, 0.4)
		}
		cv.FillRoundedRect(railX-1.6, y+1, 3.2, 3.2, 1.6, r.accent)
		if i < len(entries)-1 {
			cv.StrokeLine(railX, y+4.5, railX, y+rowH, colorGridLine, 0.4)
		}

		cv.SetFontStyle("B", 8)
		cv.SetTextRGB(colorTextMuted)
		cv.Text(textX, y, e.TimeLabel(), textW, true)

		cv.SetFontStyle("", 10)
		cv.SetTextRGB(colorTextDark)
		cv.Text(textX, y+5, e.Description, textW, false)

		r.flow.SetY(y + rowH + 2)
	}
	r.flow.Advance(6)
}
