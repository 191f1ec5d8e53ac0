package report

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// RGB is a 24-bit color
type RGB struct {
	R, G, B int
}

// Report color scheme
var (
	colorBrand      = RGB{30, 58, 95}    // Dark navy
	colorAccent     = RGB{52, 152, 219}  // Bright blue
	colorGood       = RGB{46, 204, 113}  // Green
	colorWarn       = RGB{241, 196, 15}  // Yellow
	colorDanger     = RGB{231, 76, 60}   // Red
	colorTextDark   = RGB{44, 62, 80}    // Dark text
	colorTextMuted  = RGB{127, 140, 141} // Muted text
	colorBackground = RGB{248, 249, 250} // Light gray bg
	colorGridLine   = RGB{220, 220, 220} // Table/grid lines
	colorInk        = RGB{25, 42, 86}    // Signature ink
)

// ptToMM converts font points to millimeters
const ptToMM = 25.4 / 72.0

// Canvas is a thin abstraction over the append-only PDF surface. All
// positioning is absolute; nothing reflows. Auto page break is disabled so
// page transitions only ever happen through the page-break coordinator.
type Canvas struct {
	pdf      *gofpdf.Fpdf
	fontSize float64
	depth    int
	pageW    float64
	pageH    float64
}

// NewCanvas initializes an A4 portrait surface with a pinned creation date
// so identical input snapshots produce byte-identical documents.
func NewCanvas(createdAt time.Time, compress bool) (*Canvas, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(compress)
	pdf.SetCreationDate(createdAt.UTC())
	pdf.SetModificationDate(createdAt.UTC())
	pdf.SetCatalogSort(true)
	if pdf.Err() {
		return nil, fmt.Errorf("%w: %v", ErrSurfaceInit, pdf.Error())
	}

	pdf.SetFont("Helvetica", "", 10)
	if pdf.Err() {
		return nil, fmt.Errorf("%w: %v", ErrFontUnavailable, pdf.Error())
	}

	w, h := pdf.GetPageSize()
	return &Canvas{pdf: pdf, fontSize: 10, pageW: w, pageH: h}, nil
}

// PageSize returns the page dimensions in mm
func (c *Canvas) PageSize() (float64, float64) {
	return c.pageW, c.pageH
}

// AddPage appends a new blank page and makes it current
func (c *Canvas) AddPage() {
	c.pdf.AddPage()
}

// PageCount returns the number of pages emitted so far
func (c *Canvas) PageCount() int {
	return c.pdf.PageCount()
}

// SetPage repositions the write head onto an existing page (stamping pass)
func (c *Canvas) SetPage(num int) {
	c.pdf.SetPage(num)
}

// SetFontStyle selects the active font style ("", "B", "I") and size in points
func (c *Canvas) SetFontStyle(style string, sizePt float64) {
	c.pdf.SetFont("Helvetica", style, sizePt)
	c.fontSize = sizePt
}

// SetTextRGB sets the active text color
func (c *Canvas) SetTextRGB(col RGB) {
	c.pdf.SetTextColor(col.R, col.G, col.B)
}

// LineHeight returns the vertical advance for the active font size
func (c *Canvas) LineHeight() float64 {
	return c.fontSize * ptToMM * 1.45
}

// Text draws s with its top-left corner at (x, y). With noWrap the text is
// kept to a single line and truncated with an ellipsis when it exceeds
// maxWidth; otherwise it wraps within maxWidth. Returns the height consumed.
func (c *Canvas) Text(x, y float64, s string, maxWidth float64, noWrap bool) float64 {
	lh := c.LineHeight()
	if noWrap {
		c.pdf.SetXY(x, y)
		c.pdf.CellFormat(maxWidth, lh, c.fitLine(s, maxWidth), "", 0, "L", false, 0, "")
		return lh
	}
	// MultiCell wraps continuation lines back to the left margin, so the
	// margin has to follow x for the duration of the call.
	c.pdf.SetLeftMargin(x)
	c.pdf.SetXY(x, y)
	c.pdf.MultiCell(maxWidth, lh, s, "", "L", false)
	used := c.pdf.GetY() - y
	c.pdf.SetLeftMargin(0)
	return used
}

// TextAligned draws a single non-wrapping line inside a box of width w.
// align is "L", "C" or "R".
func (c *Canvas) TextAligned(x, y, w float64, s, align string) {
	c.pdf.SetXY(x, y)
	c.pdf.CellFormat(w, c.LineHeight(), c.fitLine(s, w), "", 0, align, false, 0, "")
}

// fitLine truncates s so it fits within maxWidth at the active font.
// Trimming is rune-wise so a multi-byte character is never split.
func (c *Canvas) fitLine(s string, maxWidth float64) string {
	if maxWidth <= 0 || c.pdf.GetStringWidth(s) <= maxWidth {
		return s
	}
	const ellipsis = "..."
	runes := []rune(s)
	for len(runes) > 0 && c.pdf.GetStringWidth(string(runes)+ellipsis) > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return strings.TrimRight(string(runes), " ") + ellipsis
}

// StringWidth measures s at the active font
func (c *Canvas) StringWidth(s string) float64 {
	return c.pdf.GetStringWidth(s)
}

// TextHeight measures the height s will consume when wrapped to maxWidth
func (c *Canvas) TextHeight(s string, maxWidth float64) float64 {
	lh := c.LineHeight()
	lines := c.pdf.SplitLines([]byte(s), maxWidth)
	if len(lines) == 0 {
		return lh
	}
	return float64(len(lines)) * lh
}

// FillRect draws a filled rectangle
func (c *Canvas) FillRect(x, y, w, h float64, col RGB) {
	c.pdf.SetFillColor(col.R, col.G, col.B)
	c.pdf.Rect(x, y, w, h, "F")
}

// FillRoundedRect draws a filled rectangle with rounded corners
func (c *Canvas) FillRoundedRect(x, y, w, h, r float64, col RGB) {
	c.pdf.SetFillColor(col.R, col.G, col.B)
	c.pdf.RoundedRect(x, y, w, h, r, "1234", "F")
}

// OutlineRect draws a rectangle outline
func (c *Canvas) OutlineRect(x, y, w, h float64, col RGB, width float64) {
	c.pdf.SetDrawColor(col.R, col.G, col.B)
	c.pdf.SetLineWidth(width)
	c.pdf.Rect(x, y, w, h, "D")
}

// StrokeLine draws a straight line
func (c *Canvas) StrokeLine(x1, y1, x2, y2 float64, col RGB, width float64) {
	c.pdf.SetDrawColor(col.R, col.G, col.B)
	c.pdf.SetLineWidth(width)
	c.pdf.Line(x1, y1, x2, y2)
}

// ImageFromBytes registers raw image bytes under id and blits them into the
// given box. Undecodable content returns an error without poisoning the
// document error state; callers draw a placeholder instead.
func (c *Canvas) ImageFromBytes(id string, data []byte, x, y, w, h float64) error {
	if len(data) == 0 {
		return fmt.Errorf("image %s: no content", id)
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("image %s: %v", id, err)
	}

	var imgType string
	switch format {
	case "png":
		imgType = "PNG"
	case "jpeg":
		imgType = "JPG"
	case "gif":
		imgType = "GIF"
	default:
		return fmt.Errorf("image %s: unsupported format %s", id, format)
	}

	opts := gofpdf.ImageOptions{ImageType: imgType, ReadDpi: true}
	c.pdf.RegisterImageOptionsReader(id, opts, bytes.NewReader(data))
	c.pdf.ImageOptions(id, x, y, w, h, false, opts, 0, "")
	return nil
}

// PushState opens a nested graphics state scope. Transforms and opacity set
// inside the scope cannot leak out; every Push must be paired with a Pop.
func (c *Canvas) PushState() {
	c.pdf.TransformBegin()
	c.depth++
}

// PopState closes the innermost graphics state scope
func (c *Canvas) PopState() {
	if c.depth == 0 {
		return
	}
	c.pdf.TransformEnd()
	c.depth--
}

// StateDepth returns the current nesting depth; zero after a balanced render
func (c *Canvas) StateDepth() int {
	return c.depth
}

// Translate shifts the coordinate origin within the current state scope
func (c *Canvas) Translate(tx, ty float64) {
	c.pdf.TransformTranslate(tx, ty)
}

// Rotate rotates subsequent drawing by deg degrees around (x, y)
func (c *Canvas) Rotate(deg, x, y float64) {
	c.pdf.TransformRotate(deg, x, y)
}

// Alpha sets the opacity for subsequent drawing in the current state scope
func (c *Canvas) Alpha(a float64) {
	c.pdf.SetAlpha(a, "Normal")
}

// PathMove starts a new subpath at (x, y)
func (c *Canvas) PathMove(x, y float64) {
	c.pdf.MoveTo(x, y)
}

// PathLine appends a line segment to the current subpath
func (c *Canvas) PathLine(x, y float64) {
	c.pdf.LineTo(x, y)
}

// PathQuad appends a quadratic curve segment
func (c *Canvas) PathQuad(cx, cy, x, y float64) {
	c.pdf.CurveTo(cx, cy, x, y)
}

// PathCubic appends a cubic bezier segment
func (c *Canvas) PathCubic(cx0, cy0, cx1, cy1, x, y float64) {
	c.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
}

// PathStroke strokes the accumulated path unfilled
func (c *Canvas) PathStroke(col RGB, width float64) {
	c.pdf.SetDrawColor(col.R, col.G, col.B)
	c.pdf.SetLineWidth(width)
	c.pdf.SetLineCapStyle("round")
	c.pdf.SetLineJoinStyle("round")
	c.pdf.DrawPath("D")
}

// SetMeta writes document metadata
func (c *Canvas) SetMeta(title, author, subject string) {
	c.pdf.SetTitle(title, true)
	c.pdf.SetAuthor(author, true)
	c.pdf.SetSubject(subject, true)
	c.pdf.SetCreator("FieldProof Risk Snapshot Generator", true)
}

// Output finalizes the document and returns its bytes
func (c *Canvas) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output error: %w", err)
	}
	return buf.Bytes(), nil
}

// Err surfaces any sticky drawing error on the underlying surface
func (c *Canvas) Err() error {
	if c.pdf.Err() {
		return c.pdf.Error()
	}
	return nil
}
