package report

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Hard caps applied before any extraction touches the markup, and again as
// loop bounds during extraction (defense in depth).
const (
	maxSignatureBytes   = 100 * 1024
	maxPathDataChars    = 100000
	defaultCanvasWidth  = 400.0
	defaultCanvasHeight = 200.0
	maxStrokeUpscale    = 1.2
)

var (
	svgRootRe  = regexp.MustCompile(`(?is)^\s*(?:<\?xml[^>]*\?>\s*)?(?:<!--.*?-->\s*)*<svg[\s>]`)
	handlerRe  = regexp.MustCompile(`(?i)\bon[a-z]+\s*=`)
	pathRe     = regexp.MustCompile(`(?is)<path[^>]*?\sd\s*=\s*["']([^"']*)["']`)
	polyRe     = regexp.MustCompile(`(?is)<poly(?:line|gon)[^>]*?\spoints\s*=\s*["']([^"']*)["']`)
	viewBoxRe  = regexp.MustCompile(`(?i)\bviewBox\s*=\s*["']\s*([-+0-9.eE]+)[\s,]+([-+0-9.eE]+)[\s,]+([-+0-9.eE]+)[\s,]+([-+0-9.eE]+)\s*["']`)
	numberRe   = regexp.MustCompile(`[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`)
	denylisted = []string{"<script", "javascript:", "<iframe", "<object", "<embed", "<foreignobject"}
)

// ValidateSignatureMarkup rejects unsafe or oversized vector markup before
// any parsing happens. A rejection downgrades the signature to a labeled
// placeholder; it never aborts report generation.
func ValidateSignatureMarkup(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("signature markup is empty")
	}
	if len(raw) > maxSignatureBytes {
		return fmt.Errorf("signature markup exceeds %d bytes", maxSignatureBytes)
	}
	if !svgRootRe.MatchString(raw) {
		return fmt.Errorf("signature markup is not an SVG document")
	}

	lower := strings.ToLower(raw)
	for _, bad := range denylisted {
		if strings.Contains(lower, bad) {
			return fmt.Errorf("signature markup contains disallowed content %q", bad)
		}
	}
	if handlerRe.MatchString(raw) {
		return fmt.Errorf("signature markup contains an event handler attribute")
	}

	total := 0
	for _, m := range pathRe.FindAllStringSubmatch(raw, -1) {
		total += len(m[1])
		if total > maxPathDataChars {
			return fmt.Errorf("signature path data exceeds %d characters", maxPathDataChars)
		}
	}
	for _, m := range polyRe.FindAllStringSubmatch(raw, -1) {
		total += len(m[1])
		if total > maxPathDataChars {
			return fmt.Errorf("signature path data exceeds %d characters", maxPathDataChars)
		}
	}
	return nil
}

// viewBox is the declared source coordinate system of the capture
type viewBox struct {
	MinX, MinY, W, H float64
}

// signatureDrawing is the extracted stroke geometry of one signature
type signatureDrawing struct {
	ViewBox viewBox
	Strokes []string // SVG path data, one entry per stroke
}

// ParseSignature validates raw markup and extracts its stroke geometry.
// Polyline and polygon point lists are converted to equivalent path data so
// downstream rendering only deals with one representation.
func ParseSignature(raw string) (*signatureDrawing, error) {
	if err := ValidateSignatureMarkup(raw); err != nil {
		return nil, err
	}

	d := &signatureDrawing{
		ViewBox: viewBox{W: defaultCanvasWidth, H: defaultCanvasHeight},
	}

	if m := viewBoxRe.FindStringSubmatch(raw); m != nil {
		minX, err1 := strconv.ParseFloat(m[1], 64)
		minY, err2 := strconv.ParseFloat(m[2], 64)
		w, err3 := strconv.ParseFloat(m[3], 64)
		h, err4 := strconv.ParseFloat(m[4], 64)
		if err1 == nil && err2 == nil && err3 == nil && err4 == nil && w > 0 && h > 0 {
			d.ViewBox = viewBox{MinX: minX, MinY: minY, W: w, H: h}
		}
	}

	remaining := maxPathDataChars
	for _, m := range pathRe.FindAllStringSubmatch(raw, -1) {
		remaining -= len(m[1])
		if remaining < 0 {
			break
		}
		if strings.TrimSpace(m[1]) != "" {
			d.Strokes = append(d.Strokes, m[1])
		}
	}
	for _, m := range polyRe.FindAllStringSubmatch(raw, -1) {
		remaining -= len(m[1])
		if remaining < 0 {
			break
		}
		if path := pointsToPath(m[1]); path != "" {
			d.Strokes = append(d.Strokes, path)
		}
	}

	if len(d.Strokes) == 0 {
		return nil, fmt.Errorf("signature markup contains no strokes")
	}
	return d, nil
}

// pointsToPath converts a polyline points list to "M x0 y0 L x1 y1 ..."
func pointsToPath(points string) string {
	nums := numberRe.FindAllString(points, -1)
	if len(nums) < 4 || len(nums)%2 != 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < len(nums); i += 2 {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(nums[i])
		b.WriteString(" ")
		b.WriteString(nums[i+1])
	}
	return b.String()
}

// strokeTransform maps source (viewBox) coordinates into a destination box:
// uniform scale, centered, with the viewBox origin subtracted so captures
// with a non-zero origin do not shift visually.
type strokeTransform struct {
	scale, dx, dy float64
}

func fitTransform(vb viewBox, x, y, w, h float64) strokeTransform {
	scale := math.Min(w/vb.W, h/vb.H)
	if scale > maxStrokeUpscale {
		scale = maxStrokeUpscale
	}
	return strokeTransform{
		scale: scale,
		dx:    x + (w-vb.W*scale)/2 - vb.MinX*scale,
		dy:    y + (h-vb.H*scale)/2 - vb.MinY*scale,
	}
}

func (t strokeTransform) apply(x, y float64) (float64, float64) {
	return t.dx + x*t.scale, t.dy + y*t.scale
}

// pathSegment is one drawing command in destination coordinates
type pathSegment struct {
	op string // "M", "L", "Q", "C"
	pt [6]float64
}

// compilePath parses SVG path data into absolute destination-space segments.
// Supported commands cover what browser signature pads emit: M/L/H/V/C/Q/Z
// in both absolute and relative forms. Anything else fails the stroke.
func compilePath(data string, t strokeTransform) ([]pathSegment, error) {
	if len(data) > maxPathDataChars {
		return nil, fmt.Errorf("path data too long")
	}

	var segs []pathSegment
	var cx, cy, startX, startY float64
	i := 0

	readNums := func(n int) ([]float64, error) {
		out := make([]float64, 0, n)
		for len(out) < n {
			loc := numberRe.FindStringIndex(data[i:])
			if loc == nil {
				return nil, fmt.Errorf("expected %d coordinates", n)
			}
			// Numbers must be adjacent to the command, not past the next one
			head := data[i : i+loc[0]]
			if strings.IndexFunc(head, isPathCommand) >= 0 {
				return nil, fmt.Errorf("expected %d coordinates", n)
			}
			v, err := strconv.ParseFloat(data[i+loc[0]:i+loc[1]], 64)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
			i += loc[1]
		}
		return out, nil
	}

	emit := func(op string, pts ...float64) {
		seg := pathSegment{op: op}
		for j := 0; j+1 < len(pts); j += 2 {
			seg.pt[j], seg.pt[j+1] = t.apply(pts[j], pts[j+1])
		}
		segs = append(segs, seg)
	}

	var cmd byte
	for i < len(data) {
		ch := data[i]
		switch {
		case isPathCommand(rune(ch)):
			cmd = ch
			i++
		case ch == ' ' || ch == ',' || ch == '\t' || ch == '\n' || ch == '\r':
			i++
			continue
		default:
			// Bare coordinates repeat the previous command; after an M they
			// continue as implicit line-tos.
			if cmd == 'M' {
				cmd = 'L'
			} else if cmd == 'm' {
				cmd = 'l'
			} else if cmd == 0 || cmd == 'Z' || cmd == 'z' {
				return nil, fmt.Errorf("unexpected content %q in path data", string(ch))
			}
		}

		rel := cmd >= 'a' && cmd <= 'z'
		switch cmd {
		case 'M', 'm':
			p, err := readNums(2)
			if err != nil {
				return nil, err
			}
			if rel {
				p[0] += cx
				p[1] += cy
			}
			cx, cy = p[0], p[1]
			startX, startY = cx, cy
			emit("M", cx, cy)
		case 'L', 'l':
			p, err := readNums(2)
			if err != nil {
				return nil, err
			}
			if rel {
				p[0] += cx
				p[1] += cy
			}
			cx, cy = p[0], p[1]
			emit("L", cx, cy)
		case 'H', 'h':
			p, err := readNums(1)
			if err != nil {
				return nil, err
			}
			if rel {
				p[0] += cx
			}
			cx = p[0]
			emit("L", cx, cy)
		case 'V', 'v':
			p, err := readNums(1)
			if err != nil {
				return nil, err
			}
			if rel {
				p[0] += cy
			}
			cy = p[0]
			emit("L", cx, cy)
		case 'Q', 'q':
			p, err := readNums(4)
			if err != nil {
				return nil, err
			}
			if rel {
				p[0] += cx
				p[1] += cy
				p[2] += cx
				p[3] += cy
			}
			cx, cy = p[2], p[3]
			emit("Q", p[0], p[1], p[2], p[3])
		case 'C', 'c':
			p, err := readNums(6)
			if err != nil {
				return nil, err
			}
			if rel {
				p[0] += cx
				p[1] += cy
				p[2] += cx
				p[3] += cy
				p[4] += cx
				p[5] += cy
			}
			cx, cy = p[4], p[5]
			emit("C", p[0], p[1], p[2], p[3], p[4], p[5])
		case 'Z', 'z':
			cx, cy = startX, startY
			emit("L", cx, cy)
		default:
			return nil, fmt.Errorf("unsupported path command %q", string(cmd))
		}

		if len(segs) > maxPathDataChars/4 {
			return nil, fmt.Errorf("path segment count exceeds bound")
		}
	}

	if len(segs) == 0 {
		return nil, fmt.Errorf("path data is empty")
	}
	return segs, nil
}

func isPathCommand(r rune) bool {
	switch r {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'Q', 'q', 'Z', 'z',
		'A', 'a', 'S', 's', 'T', 't':
		return true
	}
	return false
}

// drawSignature renders every stroke of a parsed signature into the given
// box. A malformed stroke is skipped; the remaining strokes still render.
// Returns how many strokes were drawn.
func drawSignature(cv *Canvas, d *signatureDrawing, x, y, w, h float64) int {
	t := fitTransform(d.ViewBox, x, y, w, h)
	drawn := 0
	for _, stroke := range d.Strokes {
		segs, err := compilePath(stroke, t)
		if err != nil {
			continue
		}
		for _, s := range segs {
			switch s.op {
			case "M":
				cv.PathMove(s.pt[0], s.pt[1])
			case "L":
				cv.PathLine(s.pt[0], s.pt[1])
			case "Q":
				cv.PathQuad(s.pt[0], s.pt[1], s.pt[2], s.pt[3])
			case "C":
				cv.PathCubic(s.pt[0], s.pt[1], s.pt[2], s.pt[3], s.pt[4], s.pt[5])
			}
		}
		cv.PathStroke(colorInk, 0.4)
		drawn++
	}
	return drawn
}
