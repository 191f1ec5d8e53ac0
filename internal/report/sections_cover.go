package report

import (
	"fmt"
	"log"
	"strings"
)

// renderCover draws page 1 with absolute positioning. The cover carries no
// header, watermark or page number; the stamping pass only adds its footer.
func (r *renderer) renderCover() {
	cv := r.cv
	cv.AddPage()
	pageW, pageH := cv.PageSize()

	// Accent bars top and bottom
	cv.FillRect(0, 0, pageW, 8, r.accent)
	cv.FillRect(0, pageH-8, pageW, 8, r.accent)

	// Branding block, logo first when the organization has one
	y := 42.0
	if len(r.snap.Organization.Logo) > 0 {
		if err := cv.ImageFromBytes("org_logo", r.snap.Organization.Logo, pageW/2-15, y, 30, 0); err != nil {
			log.Printf("⚠️ Cover logo unavailable: %v", err)
		} else {
			y += 26
		}
	}

	cv.SetFontStyle("B", 30)
	cv.SetTextRGB(colorBrand)
	cv.TextAligned(0, y, pageW, strings.ToUpper(r.snap.Organization.Name), "C")
	y += 14

	cv.SetFontStyle("", 12)
	cv.SetTextRGB(colorTextMuted)
	cv.TextAligned(0, y, pageW, "Job Safety Compliance", "C")

	// Main title
	cv.SetFontStyle("B", 27)
	cv.SetTextRGB(colorTextDark)
	cv.TextAligned(0, 98, pageW, "Risk Snapshot", "C")

	// Job info box
	boxX, boxY := 40.0, 128.0
	boxW, boxH := pageW-80, 56.0
	cv.FillRoundedRect(boxX, boxY, boxW, boxH, 3, colorBackground)
	cv.OutlineRect(boxX, boxY, boxW, boxH, colorGridLine, 0.3)

	cv.SetFontStyle("B", 10)
	cv.SetTextRGB(colorTextMuted)
	cv.TextAligned(boxX, boxY+8, boxW, "CLIENT", "C")

	cv.SetFontStyle("B", 16)
	cv.SetTextRGB(colorTextDark)
	cv.TextAligned(boxX, boxY+16, boxW, r.snap.Job.ClientName, "C")

	detail := r.snap.Job.JobType
	if r.snap.Job.Location != "" {
		if detail != "" {
			detail += "  |  "
		}
		detail += r.snap.Job.Location
	}
	if detail != "" {
		cv.SetFontStyle("", 11)
		cv.SetTextRGB(colorTextMuted)
		cv.TextAligned(boxX, boxY+28, boxW, detail, "C")
	}

	// Risk badge inside the box when an assessment level exists
	if r.snap.Job.RiskLevel != nil {
		level := *r.snap.Job.RiskLevel
		badgeW := 44.0
		bx := pageW/2 - badgeW/2
		by := boxY + 40
		cv.FillRoundedRect(bx, by, badgeW, 8, 4, riskLevelColor(level))
		cv.SetFontStyle("B", 9)
		cv.SetTextRGB(RGB{255, 255, 255})
		cv.TextAligned(bx, by+1.8, badgeW, strings.ToUpper(level)+" RISK", "C")
	}

	// Work period
	cv.SetFontStyle("B", 10)
	cv.SetTextRGB(colorTextMuted)
	cv.TextAligned(0, 202, pageW, "WORK PERIOD", "C")

	period := "Not scheduled"
	if r.snap.Job.StartDate != nil {
		period = formatTime(*r.snap.Job.StartDate)
		if r.snap.Job.EndDate != nil {
			period += "  -  " + formatTime(*r.snap.Job.EndDate)
		} else {
			period += "  -  ongoing"
		}
	}
	cv.SetFontStyle("", 12)
	cv.SetTextRGB(colorTextDark)
	cv.TextAligned(0, 210, pageW, period, "C")

	// Generation stamp
	cv.SetFontStyle("", 9)
	cv.SetTextRGB(colorTextMuted)
	cv.TextAligned(0, pageH-42, pageW, fmt.Sprintf("Generated %s", formatTime(r.snap.GeneratedAt)), "C")
	cv.TextAligned(0, pageH-36, pageW, fmt.Sprintf("Run %s", r.snap.RunID), "C")
}
