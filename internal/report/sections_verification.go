package report

import (
	"fmt"
	"log"

	qrcode "github.com/skip2/go-qrcode"
)

// verificationVisibility: the integrity section always renders; it is the
// chain-of-custody anchor of the document.
func (r *renderer) verificationVisibility() SectionVisibility {
	return SectionRendered
}

// renderVerification draws the integrity block: run identity, generator
// version, input inventory, per-signature content hashes, and a QR code
// pointing at the online verification endpoint for this run. The SHA-256 of
// the finished bytes cannot appear inside the bytes themselves; it is
// stored on the ReportRun and checked by the verifier.
func (r *renderer) renderVerification(SectionVisibility) {
	cv := r.cv
	r.sectionTitle("Integrity & Verification")

	w := r.flow.ContentWidth()
	r.flow.EnsureSpace(64)
	y := r.flow.Y()

	rows := [][2]string{
		{"Report run", r.snap.RunID},
		{"Generator version", GeneratorVersion},
		{"Generated at", formatTime(r.snap.GeneratedAt)},
		{"Job", r.snap.Job.ID},
		{"Inputs", fmt.Sprintf("%s, %s, %s, %s",
			pluralize(len(r.snap.Mitigations), "control"),
			pluralize(len(r.snap.Evidence), "evidence asset"),
			pluralize(len(r.snap.AuditLog), "audit event"),
			pluralize(len(r.snap.Signatures), "signature"))},
	}

	labelW := 40.0
	textW := w - sigStrokeBoxW - labelW - 10
	rowY := y
	for _, row := range rows {
		cv.SetFontStyle("B", 9)
		cv.SetTextRGB(colorTextMuted)
		cv.Text(marginX, rowY, row[0], labelW, true)
		cv.SetFontStyle("", 9)
		cv.SetTextRGB(colorTextDark)
		cv.Text(marginX+labelW, rowY, row[1], textW, true)
		rowY += 6
	}

	// Verification QR on the right
	if r.snap.VerifyURL != "" {
		qrPNG, err := qrcode.Encode(r.snap.VerifyURL, qrcode.Medium, 256)
		if err != nil {
			log.Printf("⚠️ Verification QR unavailable: %v", err)
		} else {
			qrSize := 34.0
			qrX := marginX + w - qrSize
			if imgErr := cv.ImageFromBytes("verify_qr", qrPNG, qrX, y, qrSize, qrSize); imgErr != nil {
				log.Printf("⚠️ Verification QR unavailable: %v", imgErr)
			} else {
				cv.SetFontStyle("", 7)
				cv.SetTextRGB(colorTextMuted)
				cv.TextAligned(qrX, y+qrSize+1, qrSize, "Scan to verify", "C")
			}
		}
	}
	r.flow.SetY(y + 46)

	// Signature content hashes, when captured
	hashed := 0
	for _, sig := range r.snap.Signatures {
		if sig.ContentHash != "" {
			hashed++
		}
	}
	if hashed > 0 {
		r.flow.EnsureSpace(10 + float64(hashed)*5)
		cv.SetFontStyle("B", 10)
		cv.SetTextRGB(colorTextDark)
		cv.Text(marginX, r.flow.Y(), "Signature Digests", w, true)
		r.flow.Advance(6)
		for _, sig := range r.snap.Signatures {
			if sig.ContentHash == "" {
				continue
			}
			cv.SetFontStyle("", 8)
			cv.SetTextRGB(colorTextMuted)
			cv.Text(marginX+4, r.flow.Y(), fmt.Sprintf("%s: %s", sig.SignerName, sig.ContentHash), w-4, true)
			r.flow.Advance(5)
		}
		r.flow.Advance(4)
	}

	note := "This document is generated from an immutable input snapshot. Its SHA-256 digest is recorded " +
		"with the report run at generation time; any byte-level modification after the fact will fail verification."
	r.flow.EnsureSpace(cv.TextHeight(note, w) + 4)
	cv.SetFontStyle("I", 8)
	cv.SetTextRGB(colorTextMuted)
	used := cv.Text(marginX, r.flow.Y(), note, w, false)
	r.flow.Advance(used + 6)
}
