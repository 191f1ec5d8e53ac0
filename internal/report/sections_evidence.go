package report

import (
	"fmt"
	"log"

	"github.com/fieldproof-com/fieldproofgo/internal/models"
)

// Photo grid geometry
const (
	photoCellW = 54.0
	photoCellH = 48.0
	photoImgH  = 38.0
	photoGap   = 6.0
)

// evidenceVisibility: omitted when the job has no evidence at all
func (r *renderer) evidenceVisibility() SectionVisibility {
	if len(r.snap.Evidence) == 0 {
		return SectionOmitted
	}
	return SectionRendered
}

// renderEvidence draws evidence photos grouped into before/during/after
// buckets, three cells per row. Non-photo documents are listed below the
// grid. A photo whose binary failed to download renders an "image
// unavailable" placeholder in its slot instead of aborting the document.
func (r *renderer) renderEvidence(SectionVisibility) {
	cv := r.cv
	r.sectionTitle("Evidence Photos")

	buckets := make(map[PhotoBucket][]models.EvidenceAsset)
	var documents []models.EvidenceAsset
	for _, a := range r.snap.Evidence {
		if a.Type != models.EvidenceTypePhoto {
			documents = append(documents, a)
			continue
		}
		b := ClassifyPhoto(a, r.snap.Job.StartDate, r.snap.Job.EndDate)
		buckets[b] = append(buckets[b], a)
	}

	labels := map[PhotoBucket]string{
		BucketBefore: "Before Work",
		BucketDuring: "During Work",
		BucketAfter:  "After Work",
	}

	for _, bucket := range photoBucketOrder {
		photos := buckets[bucket]
		if len(photos) == 0 {
			continue
		}

		r.flow.EnsureSpace(10 + photoCellH)
		cv.SetFontStyle("B", 11)
		cv.SetTextRGB(colorTextDark)
		cv.Text(marginX, r.flow.Y(), fmt.Sprintf("%s (%d)", labels[bucket], len(photos)), r.flow.ContentWidth(), true)
		r.flow.Advance(7)

		col := 0
		for _, p := range photos {
			if col == 0 {
				r.flow.EnsureSpace(photoCellH + 2)
			}
			x := marginX + float64(col)*(photoCellW+photoGap)
			r.drawPhotoCell(p, x, r.flow.Y())
			col++
			if col == 3 {
				col = 0
				r.flow.Advance(photoCellH + 4)
			}
		}
		if col != 0 {
			r.flow.Advance(photoCellH + 4)
		}
		r.flow.Advance(2)
	}

	if len(documents) > 0 {
		r.flow.EnsureSpace(16)
		cv.SetFontStyle("B", 11)
		cv.SetTextRGB(colorTextDark)
		cv.Text(marginX, r.flow.Y(), fmt.Sprintf("Attached Documents (%d)", len(documents)), r.flow.ContentWidth(), true)
		r.flow.Advance(7)

		for _, d := range documents {
			r.flow.EnsureSpace(6)
			y := r.flow.Y()
			cv.SetFontStyle("", 9)
			cv.SetTextRGB(colorTextDark)
			line := fmt.Sprintf("%s (%s)", d.Name, d.Type)
			if d.UploadedBy != "" {
				line += " - uploaded by " + d.UploadedBy
			}
			cv.Text(marginX+4, y, line, r.flow.ContentWidth()-4, true)
			r.flow.SetY(y + 6)
		}
	}
	r.flow.Advance(6)
}

// drawPhotoCell renders one photo cell: frame, image or placeholder, caption
func (r *renderer) drawPhotoCell(p models.EvidenceAsset, x, y float64) {
	cv := r.cv
	cv.FillRect(x, y, photoCellW, photoImgH, colorBackground)
	cv.OutlineRect(x, y, photoCellW, photoImgH, colorGridLine, 0.2)

	if err := cv.ImageFromBytes("evidence_"+p.ID, p.Content, x+1, y+1, photoCellW-2, photoImgH-2); err != nil {
		log.Printf("⚠️ Evidence %s unavailable, rendering placeholder: %v", p.ID, err)
		cv.SetFontStyle("I", 8)
		cv.SetTextRGB(colorTextMuted)
		cv.TextAligned(x, y+photoImgH/2-2, photoCellW, "image unavailable", "C")
	}

	cv.SetFontStyle("", 7)
	cv.SetTextRGB(colorTextMuted)
	caption := p.Name
	if p.TakenAt != nil {
		caption += " - " + formatTime(*p.TakenAt)
	}
	cv.TextAligned(x, y+photoImgH+1.5, photoCellW, caption, "C")
}
