package report

import (
	"log"
	"sort"

	"github.com/fieldproof-com/fieldproofgo/internal/models"
)

// Signature card geometry. Cards are atomic units: a card never splits
// across a page break.
const (
	sigCardH      = 42.0
	sigStrokeBoxW = 70.0
	sigStrokeBoxH = 24.0
)

var roleLabels = map[string]string{
	models.SignatureRolePreparedBy: "Prepared by",
	models.SignatureRoleReviewedBy: "Reviewed by",
	models.SignatureRoleApprovedBy: "Approved by",
	models.SignatureRoleOther:      "Witnessed by",
}

var roleOrder = map[string]int{
	models.SignatureRolePreparedBy: 0,
	models.SignatureRoleReviewedBy: 1,
	models.SignatureRoleApprovedBy: 2,
	models.SignatureRoleOther:      3,
}

// signaturesVisibility: an unsigned report still explains which sign-offs
// are outstanding, so this section never disappears silently.
func (r *renderer) signaturesVisibility() SectionVisibility {
	if len(r.snap.Signatures) == 0 {
		return SectionExplainedEmpty
	}
	return SectionRendered
}

// renderSignatures draws one card per captured sign-off, then a note for
// any required role still missing.
func (r *renderer) renderSignatures(vis SectionVisibility) {
	r.sectionTitle("Signatures & Compliance")

	if vis == SectionExplainedEmpty {
		r.emptyStateNote("No sign-offs have been captured yet. This report requires signatures from the " +
			"preparer, reviewer and approver before it is considered final; collect them in the job workspace.")
		return
	}

	sigs := make([]models.Signature, len(r.snap.Signatures))
	copy(sigs, r.snap.Signatures)
	sort.SliceStable(sigs, func(i, j int) bool {
		return roleOrder[sigs[i].Role] < roleOrder[sigs[j].Role]
	})

	for _, sig := range sigs {
		r.flow.EnsureSpace(sigCardH + 4)
		r.drawSignatureCard(sig, r.flow.Y())
		r.flow.Advance(sigCardH + 4)
	}

	// Outstanding required roles
	have := make(map[string]bool)
	for _, sig := range sigs {
		have[sig.Role] = true
	}
	var missing []string
	for _, role := range models.RequiredSignatureRoles {
		if !have[role] {
			missing = append(missing, roleLabels[role])
		}
	}
	if len(missing) > 0 {
		note := "Outstanding sign-offs: "
		for i, m := range missing {
			if i > 0 {
				note += ", "
			}
			note += m
		}
		note += ". The report remains in draft until all required roles have signed."
		r.emptyStateNote(note)
	}
	r.flow.Advance(4)
}

// drawSignatureCard renders one sign-off: signer identity on the left, the
// captured strokes (or a labeled placeholder when validation rejects the
// markup) on the right.
func (r *renderer) drawSignatureCard(sig models.Signature, y float64) {
	cv := r.cv
	w := r.flow.ContentWidth()

	cv.FillRoundedRect(marginX, y, w, sigCardH, 2, colorBackground)
	cv.OutlineRect(marginX, y, w, sigCardH, colorGridLine, 0.2)

	label := roleLabels[sig.Role]
	if label == "" {
		label = roleLabels[models.SignatureRoleOther]
	}

	cv.SetFontStyle("B", 8)
	cv.SetTextRGB(colorTextMuted)
	cv.Text(marginX+5, y+4, label, w/2, true)

	cv.SetFontStyle("B", 12)
	cv.SetTextRGB(colorTextDark)
	cv.Text(marginX+5, y+10, sig.SignerName, w/2-8, true)

	if sig.SignerTitle != "" {
		cv.SetFontStyle("", 9)
		cv.SetTextRGB(colorTextMuted)
		cv.Text(marginX+5, y+17, sig.SignerTitle, w/2-8, true)
	}

	cv.SetFontStyle("", 8)
	cv.SetTextRGB(colorTextMuted)
	cv.Text(marginX+5, y+sigCardH-8, "Signed "+formatTime(sig.SignedAt), w/2, true)

	// Stroke box on the right half
	boxX := marginX + w - sigStrokeBoxW - 6
	boxY := y + (sigCardH-sigStrokeBoxH)/2
	cv.FillRect(boxX, boxY, sigStrokeBoxW, sigStrokeBoxH, RGB{255, 255, 255})
	cv.StrokeLine(boxX+4, boxY+sigStrokeBoxH-3, boxX+sigStrokeBoxW-4, boxY+sigStrokeBoxH-3, colorGridLine, 0.2)

	drawing, err := ParseSignature(sig.RawSVG)
	if err != nil {
		log.Printf("⚠️ Signature %s rejected, rendering placeholder: %v", sig.ID, err)
		r.drawSignaturePlaceholder(boxX, boxY)
		return
	}
	if drawn := drawSignature(cv, drawing, boxX+3, boxY+2, sigStrokeBoxW-6, sigStrokeBoxH-6); drawn == 0 {
		log.Printf("⚠️ Signature %s had no drawable strokes, rendering placeholder", sig.ID)
		r.drawSignaturePlaceholder(boxX, boxY)
	}
}

// drawSignaturePlaceholder marks a rejected or empty signature capture
func (r *renderer) drawSignaturePlaceholder(boxX, boxY float64) {
	cv := r.cv
	cv.OutlineRect(boxX+3, boxY+2, sigStrokeBoxW-6, sigStrokeBoxH-6, colorGridLine, 0.2)
	cv.SetFontStyle("I", 7)
	cv.SetTextRGB(colorTextMuted)
	cv.TextAligned(boxX, boxY+sigStrokeBoxH/2-3, sigStrokeBoxW, "signature on file", "C")
	cv.TextAligned(boxX, boxY+sigStrokeBoxH/2+1, sigStrokeBoxW, "(not reproducible)", "C")
}
