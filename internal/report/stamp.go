package report

import (
	"fmt"
	"strings"
)

// stampAll is the post-process overlay pass. It runs only after the page
// set is final and immutable, so "Page i of N" can never drift from the
// real total the way an up-front estimate can. Every page gets a footer;
// non-cover pages additionally get the running header and the diagonal
// watermark.
func stampAll(cv *Canvas, snap *Snapshot, brand string, draft bool) {
	total := cv.PageCount()
	pageW, pageH := cv.PageSize()

	for i := 1; i <= total; i++ {
		cv.SetPage(i)

		stampFooter(cv, snap, i, total, pageW)
		if i == 1 {
			continue
		}
		stampHeader(cv, snap, brand, pageW)
		stampWatermark(cv, brand, draft, pageW, pageH)
	}
}

// stampFooter draws the confidentiality footer: every page including the cover
func stampFooter(cv *Canvas, snap *Snapshot, page, total int, pageW float64) {
	w := pageW - 2*marginX
	cv.StrokeLine(marginX, footerY-2, marginX+w, footerY-2, colorGridLine, 0.3)

	cv.SetFontStyle("", 8)
	cv.SetTextRGB(colorTextMuted)
	cv.TextAligned(marginX, footerY, w/3, "CONFIDENTIAL", "L")
	cv.TextAligned(marginX+w/3, footerY, w/3, fmt.Sprintf("Page %d of %d", page, total), "C")
	cv.TextAligned(marginX+2*w/3, footerY, w/3, fmt.Sprintf("Job %s", shortID(snap.Job.ID)), "R")
}

// stampHeader draws the running header band on non-cover pages
func stampHeader(cv *Canvas, snap *Snapshot, brand string, pageW float64) {
	w := pageW - 2*marginX

	cv.SetFontStyle("B", 10)
	cv.SetTextRGB(colorBrand)
	cv.TextAligned(marginX, 12, w/3, strings.ToUpper(brand), "L")

	cv.SetFontStyle("", 9)
	cv.SetTextRGB(colorTextMuted)
	cv.TextAligned(marginX+w/3, 12, w/3, "Risk Snapshot", "C")

	stampStatusChip(cv, snap.Job.Status, marginX+w-26, 11)

	cv.StrokeLine(marginX, headerBand-4, marginX+w, headerBand-4, colorGridLine, 0.3)
}

// stampStatusChip draws the small status pill at the right of the header
func stampStatusChip(cv *Canvas, status string, x, y float64) {
	col := colorTextMuted
	switch status {
	case "active":
		col = colorAccent
	case "completed":
		col = colorGood
	case "archived":
		col = colorTextDark
	}
	cv.FillRoundedRect(x, y, 26, 6, 3, col)
	cv.SetFontStyle("B", 7)
	cv.SetTextRGB(RGB{255, 255, 255})
	cv.TextAligned(x, y+1.2, 26, strings.ToUpper(status), "C")
}

// stampWatermark draws the diagonal low-opacity mark. The rotation and
// opacity live inside one state scope so they cannot leak into anything
// drawn afterwards.
func stampWatermark(cv *Canvas, brand string, draft bool, pageW, pageH float64) {
	mark := strings.ToUpper(brand)
	if draft {
		mark = "DRAFT"
	}

	cv.PushState()
	cv.Alpha(0.06)
	cv.Rotate(45, pageW/2, pageH/2)
	cv.SetFontStyle("B", 90)
	cv.SetTextRGB(colorBrand)
	tw := cv.StringWidth(mark)
	cv.Text(pageW/2-tw/2, pageH/2-18, mark, tw+10, true)
	cv.PopState()
}

// shortID abbreviates a uuid for display in single-line footer fields
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
