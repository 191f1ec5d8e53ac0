package report

import (
	"testing"
)

func newTestFlow(t *testing.T) (*Canvas, *Flow) {
	t.Helper()
	cv, err := NewCanvas(fixedTestTime(), false)
	if err != nil {
		t.Fatalf("Failed to create canvas: %v", err)
	}
	f := NewFlow(cv)
	f.NewPage()
	return cv, f
}

func TestFlow_EnsureSpaceNoBreakWhenFits(t *testing.T) {
	cv, f := newTestFlow(t)

	if broke := f.EnsureSpace(50); broke {
		t.Error("EnsureSpace broke the page although the unit fits")
	}
	if cv.PageCount() != 1 {
		t.Errorf("Expected 1 page, got %d", cv.PageCount())
	}
	if f.Y() != contentTop {
		t.Errorf("Cursor moved without drawing: %g", f.Y())
	}
}

func TestFlow_EnsureSpaceBreaksAndResetsCursor(t *testing.T) {
	cv, f := newTestFlow(t)

	f.SetY(contentBottom - 10)
	if broke := f.EnsureSpace(30); !broke {
		t.Fatal("EnsureSpace did not break although the unit cannot fit")
	}
	if cv.PageCount() != 2 {
		t.Errorf("Expected 2 pages after break, got %d", cv.PageCount())
	}
	if f.Y() != contentTop {
		t.Errorf("Cursor not reset to content top after break: %g", f.Y())
	}
}

func TestFlow_ExactFitDoesNotBreak(t *testing.T) {
	cv, f := newTestFlow(t)

	f.SetY(contentBottom - 30)
	if broke := f.EnsureSpace(30); broke {
		t.Error("A unit exactly filling the remaining space must not break")
	}
	if cv.PageCount() != 1 {
		t.Errorf("Expected 1 page, got %d", cv.PageCount())
	}
}

func TestFlow_RemainingTracksCursor(t *testing.T) {
	_, f := newTestFlow(t)

	if got := f.Remaining(); got != contentBottom-contentTop {
		t.Errorf("Fresh page remaining = %g, want %g", got, contentBottom-contentTop)
	}
	f.Advance(40)
	if got := f.Remaining(); got != contentBottom-contentTop-40 {
		t.Errorf("Remaining after advance = %g", got)
	}
}

func TestFlow_NewPageAlwaysBreaks(t *testing.T) {
	cv, f := newTestFlow(t)

	f.NewPage()
	f.NewPage()
	if cv.PageCount() != 3 {
		t.Errorf("Expected 3 pages, got %d", cv.PageCount())
	}
	if f.Y() != contentTop {
		t.Errorf("Cursor not at content top on fresh page: %g", f.Y())
	}
}
