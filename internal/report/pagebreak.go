package report

// Page geometry in mm (A4 portrait). The header band and footer reserve are
// kept clear during the content pass; the stamping pass draws into them once
// the total page count is final.
const (
	marginX       = 18.0
	contentTop    = 34.0
	contentBottom = 272.0
	headerBand    = 24.0
	footerY       = 282.0
)

// Flow is the page-break coordinator: it owns the vertical cursor between
// contentTop and contentBottom and is the only way sections start new pages.
// It never breaks inside an atomic visual unit; callers pre-measure units
// and call EnsureSpace before drawing them.
type Flow struct {
	cv *Canvas
	y  float64
}

// NewFlow starts a flow on the canvas's current page with the cursor at the
// content top.
func NewFlow(cv *Canvas) *Flow {
	return &Flow{cv: cv, y: contentTop}
}

// Y returns the current cursor position
func (f *Flow) Y() float64 {
	return f.y
}

// SetY moves the cursor to an absolute position on the current page
func (f *Flow) SetY(y float64) {
	f.y = y
}

// Advance moves the cursor down by h
func (f *Flow) Advance(h float64) {
	f.y += h
}

// Remaining reports the vertical space left before the footer reserve
func (f *Flow) Remaining() float64 {
	return contentBottom - f.y
}

// EnsureSpace starts a new page when less than h remains, resetting the
// cursor to the content top. Returns true if a page break happened.
// Headers, footers and watermarks are not drawn here: the stamping pass
// overlays them after the page set is final, so content flow can never
// disturb page-number bookkeeping.
func (f *Flow) EnsureSpace(h float64) bool {
	if f.Remaining() >= h {
		return false
	}
	f.cv.AddPage()
	f.y = contentTop
	return true
}

// NewPage unconditionally starts a fresh content page
func (f *Flow) NewPage() {
	f.cv.AddPage()
	f.y = contentTop
}

// ContentWidth is the usable width between the side margins
func (f *Flow) ContentWidth() float64 {
	w, _ := f.cv.PageSize()
	return w - 2*marginX
}
