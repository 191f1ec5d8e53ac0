package report

import (
	"math"
	"strings"
	"testing"
)

const minimalSignature = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 400 200"><path d="M 10 10 L 50 40 L 90 20"/></svg>`

func TestValidateSignatureMarkup_RejectsScript(t *testing.T) {
	// Structurally valid SVG, still rejected because of the script element
	raw := `<svg viewBox="0 0 400 200"><script>alert(1)</script><path d="M 0 0 L 10 10"/></svg>`
	if err := ValidateSignatureMarkup(raw); err == nil {
		t.Error("Expected rejection of markup containing <script>")
	}
}

func TestValidateSignatureMarkup_RejectsDangerousContent(t *testing.T) {
	cases := []string{
		`<svg onload="evil()"><path d="M 0 0 L 1 1"/></svg>`,
		`<svg><a href="javascript:evil()"><path d="M 0 0 L 1 1"/></a></svg>`,
		`<svg><iframe src="https://example.com"></iframe></svg>`,
		`<svg><object data="x"></object></svg>`,
		`<svg><embed src="x"></embed></svg>`,
		`<svg><foreignObject><div>x</div></foreignObject></svg>`,
		``,
		`   `,
		`<div><path d="M 0 0 L 1 1"/></div>`,
	}
	for _, raw := range cases {
		if err := ValidateSignatureMarkup(raw); err == nil {
			t.Errorf("Expected rejection of %q", raw)
		}
	}
}

func TestValidateSignatureMarkup_RejectsOversized(t *testing.T) {
	raw := `<svg viewBox="0 0 400 200"><path d="M 0 0 ` + strings.Repeat("L 1 1 ", 40000) + `"/></svg>`
	if len(raw) <= maxSignatureBytes {
		t.Fatal("Test input should exceed the byte cap")
	}
	if err := ValidateSignatureMarkup(raw); err == nil {
		t.Error("Expected rejection of oversized markup")
	}
}

func TestValidateSignatureMarkup_RejectsExcessPathData(t *testing.T) {
	// Under the byte cap in total, over the cumulative path-data cap
	var b strings.Builder
	b.WriteString(`<svg viewBox="0 0 400 200">`)
	for i := 0; i < 12; i++ {
		b.WriteString(`<path d="`)
		b.WriteString(strings.Repeat("M 1 1 ", 1390))
		b.WriteString(`"/>`)
	}
	b.WriteString(`</svg>`)
	raw := b.String()
	if len(raw) > maxSignatureBytes {
		t.Fatal("Test input should stay under the byte cap")
	}
	if err := ValidateSignatureMarkup(raw); err == nil {
		t.Error("Expected rejection of excess cumulative path data")
	}
}

func TestValidateSignatureMarkup_AcceptsMinimal(t *testing.T) {
	if err := ValidateSignatureMarkup(minimalSignature); err != nil {
		t.Errorf("Expected minimal signature to validate, got %v", err)
	}
}

func TestParseSignature_ExtractsAllStrokes(t *testing.T) {
	raw := `<svg viewBox="0 0 400 200">
		<path d="M 10 10 L 50 40"/>
		<path d="M 60 10 C 70 0 80 20 90 10"/>
		<polyline points="100,50 110,60 120,55"/>
	</svg>`

	d, err := ParseSignature(raw)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if len(d.Strokes) != 3 {
		t.Fatalf("Expected 3 strokes, got %d", len(d.Strokes))
	}
	// Polyline converts to path commands
	if !strings.HasPrefix(d.Strokes[2], "M ") || !strings.Contains(d.Strokes[2], " L ") {
		t.Errorf("Polyline not converted to path data: %q", d.Strokes[2])
	}
}

func TestParseSignature_DefaultViewBox(t *testing.T) {
	d, err := ParseSignature(`<svg><path d="M 0 0 L 10 10"/></svg>`)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if d.ViewBox.W != defaultCanvasWidth || d.ViewBox.H != defaultCanvasHeight {
		t.Errorf("Expected default canvas %gx%g, got %gx%g",
			defaultCanvasWidth, defaultCanvasHeight, d.ViewBox.W, d.ViewBox.H)
	}
}

func TestFitTransform_OriginTranslationInvariant(t *testing.T) {
	// The same drawing captured with a shifted view-box origin must land at
	// the same destination coordinates.
	zero := fitTransform(viewBox{MinX: 0, MinY: 0, W: 400, H: 200}, 20, 30, 64, 18)
	shifted := fitTransform(viewBox{MinX: 50, MinY: 30, W: 400, H: 200}, 20, 30, 64, 18)

	x1, y1 := zero.apply(10, 10)
	x2, y2 := shifted.apply(60, 40) // same point in the shifted system

	if math.Abs(x1-x2) > 1e-9 || math.Abs(y1-y2) > 1e-9 {
		t.Errorf("Origin shift moved the drawing: (%g, %g) vs (%g, %g)", x1, y1, x2, y2)
	}
}

func TestFitTransform_NoUpscalingBeyondClamp(t *testing.T) {
	// Tiny source in a big box: the scale clamps at the upscale limit
	tr := fitTransform(viewBox{W: 10, H: 10}, 0, 0, 100, 100)
	if tr.scale > maxStrokeUpscale {
		t.Errorf("Scale %g exceeds clamp %g", tr.scale, maxStrokeUpscale)
	}

	// Large source shrinks uniformly to fit
	tr = fitTransform(viewBox{W: 400, H: 200}, 0, 0, 64, 18)
	want := math.Min(64.0/400.0, 18.0/200.0)
	if math.Abs(tr.scale-want) > 1e-9 {
		t.Errorf("Expected uniform scale %g, got %g", want, tr.scale)
	}
}

func TestCompilePath_SupportedCommands(t *testing.T) {
	tr := strokeTransform{scale: 1}
	segs, err := compilePath("M 0 0 L 10 10 H 20 V 20 C 1 2 3 4 5 6 Q 7 8 9 10 Z", tr)
	if err != nil {
		t.Fatalf("Failed to compile: %v", err)
	}
	if len(segs) != 7 {
		t.Errorf("Expected 7 segments, got %d", len(segs))
	}
}

func TestCompilePath_RelativeCommands(t *testing.T) {
	tr := strokeTransform{scale: 1}
	segs, err := compilePath("m 10 10 l 5 5 l 5 -5", tr)
	if err != nil {
		t.Fatalf("Failed to compile: %v", err)
	}
	last := segs[len(segs)-1]
	if last.pt[0] != 20 || last.pt[1] != 10 {
		t.Errorf("Relative commands not accumulated: got (%g, %g)", last.pt[0], last.pt[1])
	}
}

func TestCompilePath_ImplicitLineTo(t *testing.T) {
	// Bare coordinate pairs after M continue as line-tos
	tr := strokeTransform{scale: 1}
	segs, err := compilePath("M 0 0 10 10 20 20", tr)
	if err != nil {
		t.Fatalf("Failed to compile: %v", err)
	}
	if len(segs) != 3 || segs[1].op != "L" || segs[2].op != "L" {
		t.Errorf("Implicit line-tos not handled: %+v", segs)
	}
}

func TestCompilePath_MalformedRejected(t *testing.T) {
	tr := strokeTransform{scale: 1}
	cases := []string{
		"",
		"10 10 L 20 20",   // no leading command
		"M 1",             // missing coordinate
		"M 1 2 A 3 4 5",   // arcs unsupported
		"M 1 2 L x y",     // non-numeric
	}
	for _, d := range cases {
		if _, err := compilePath(d, tr); err == nil {
			t.Errorf("Expected compile error for %q", d)
		}
	}
}

func TestDrawSignature_SkipsMalformedStrokeOnly(t *testing.T) {
	cv, err := NewCanvas(fixedTestTime(), false)
	if err != nil {
		t.Fatalf("Failed to create canvas: %v", err)
	}
	cv.AddPage()

	d := &signatureDrawing{
		ViewBox: viewBox{W: 400, H: 200},
		Strokes: []string{
			"M 10 10 L 50 40",
			"A 1 2 3",          // malformed, must be skipped
			"M 60 10 L 90 30",
		},
	}
	drawn := drawSignature(cv, d, 10, 10, 64, 18)
	if drawn != 2 {
		t.Errorf("Expected 2 drawable strokes, got %d", drawn)
	}
	if cvErr := cv.Err(); cvErr != nil {
		t.Errorf("Canvas error after skipping malformed stroke: %v", cvErr)
	}
}
