package report

import (
	"fmt"
	"sort"
	"strings"
)

// hazardsVisibility: omitted entirely when no assessment or no factors exist
func (r *renderer) hazardsVisibility() SectionVisibility {
	if r.snap.Assessment == nil || len(r.snap.Assessment.Factors) == 0 {
		return SectionOmitted
	}
	return SectionRendered
}

// renderHazards draws the hazard checklist: one table row per risk factor
// with its code, severity badge, weight and optional description. Rows are
// atomic units: space is ensured before each row so one never splits across
// a page break.
func (r *renderer) renderHazards(SectionVisibility) {
	cv := r.cv
	r.sectionTitle("Hazard Checklist")

	w := r.flow.ContentWidth()
	factors := make([]int, len(r.snap.Assessment.Factors))
	for i := range factors {
		factors[i] = i
	}
	sort.SliceStable(factors, func(a, b int) bool {
		return r.snap.Assessment.Factors[factors[a]].SortOrder < r.snap.Assessment.Factors[factors[b]].SortOrder
	})

	// Column layout: code | hazard | severity | weight
	codeW, sevW, weightW := 24.0, 26.0, 18.0
	nameW := w - codeW - sevW - weightW

	// Header row
	r.flow.EnsureSpace(18)
	y := r.flow.Y()
	cv.FillRect(marginX, y, w, 7, colorBrand)
	cv.SetFontStyle("B", 9)
	cv.SetTextRGB(RGB{255, 255, 255})
	cv.TextAligned(marginX+2, y+1.4, codeW, "CODE", "L")
	cv.TextAligned(marginX+codeW, y+1.4, nameW, "HAZARD", "L")
	cv.TextAligned(marginX+codeW+nameW, y+1.4, sevW, "SEVERITY", "C")
	cv.TextAligned(marginX+codeW+nameW+sevW, y+1.4, weightW, "WEIGHT", "C")
	r.flow.SetY(y + 7)

	for n, idx := range factors {
		f := r.snap.Assessment.Factors[idx]

		rowH := 8.0
		desc := strings.TrimSpace(f.Description)
		if desc != "" {
			cv.SetFontStyle("", 8)
			rowH += cv.TextHeight(desc, nameW-2) + 1
		}
		r.flow.EnsureSpace(rowH)
		y = r.flow.Y()

		if n%2 == 1 {
			cv.FillRect(marginX, y, w, rowH, colorBackground)
		}

		cv.SetFontStyle("B", 9)
		cv.SetTextRGB(colorTextMuted)
		cv.TextAligned(marginX+2, y+1.6, codeW-2, f.Code, "L")

		cv.SetFontStyle("", 10)
		cv.SetTextRGB(colorTextDark)
		cv.TextAligned(marginX+codeW, y+1.4, nameW-2, f.Name, "L")

		badge := riskLevelColor(f.Severity)
		cv.FillRoundedRect(marginX+codeW+nameW+3, y+1.6, sevW-6, 5, 2.5, badge)
		cv.SetFontStyle("B", 7)
		cv.SetTextRGB(RGB{255, 255, 255})
		cv.TextAligned(marginX+codeW+nameW+3, y+2.4, sevW-6, strings.ToUpper(f.Severity), "C")

		cv.SetFontStyle("", 9)
		cv.SetTextRGB(colorTextDark)
		cv.TextAligned(marginX+codeW+nameW+sevW, y+1.6, weightW, fmt.Sprintf("%.1f", f.Weight), "C")

		if desc != "" {
			cv.SetFontStyle("", 8)
			cv.SetTextRGB(colorTextMuted)
			cv.Text(marginX+codeW, y+7.5, desc, nameW-2, false)
		}

		r.flow.SetY(y + rowH)
	}

	// Overall line under the table
	r.flow.Advance(3)
	r.flow.EnsureSpace(10)
	cv.SetFontStyle("B", 10)
	cv.SetTextRGB(colorTextDark)
	overall := fmt.Sprintf("Overall assessment: %.1f (%s)",
		r.snap.Assessment.OverallScore, strings.ToUpper(r.snap.Assessment.RiskLevel))
	cv.Text(marginX, r.flow.Y(), overall, w, true)
	r.flow.Advance(12)
}
