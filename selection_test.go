package tuikit

import (
	"errors"
	"testing"
)

func mustSelection(t *testing.T, length, height int, policy Policy) Selection {
	t.Helper()
	sel, err := NewSelection(length, height, policy)
	if err != nil {
		t.Fatalf("NewSelection(%d, %d): %v", length, height, err)
	}
	return sel
}

func checkInvariants(t *testing.T, s *Selection) {
	t.Helper()
	if s.Length() == 0 {
		return
	}
	if s.Cursor() < 0 || s.Cursor() >= s.Length() {
		t.Errorf("cursor %d out of range [0,%d)", s.Cursor(), s.Length())
	}
	if s.Cursor() < s.Offset() || s.Cursor() >= s.Offset()+s.Height() {
		t.Errorf("cursor %d outside viewport [%d,%d)", s.Cursor(), s.Offset(), s.Offset()+s.Height())
	}
	maxOffset := s.Length() - s.Height()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.Offset() < 0 || s.Offset() > maxOffset {
		t.Errorf("offset %d out of range [0,%d]", s.Offset(), maxOffset)
	}
}

func TestSelection(t *testing.T) {
	t.Run("ConstructionErrors", func(t *testing.T) {
		if _, err := NewSelection(-1, 3, Clamp); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("negative length: expected ErrInvalidConfiguration, got %v", err)
		}
		if _, err := NewSelection(5, 0, Clamp); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("zero height: expected ErrInvalidConfiguration, got %v", err)
		}
	})

	t.Run("ClampAtEnd", func(t *testing.T) {
		sel := mustSelection(t, 5, 3, Clamp)
		sel.MoveCursor(4)
		if moved := sel.MoveBy(1, 1); moved {
			t.Error("expected no movement past the last index")
		}
		if sel.Cursor() != 4 {
			t.Errorf("expected cursor 4, got %d", sel.Cursor())
		}
	})

	t.Run("ClampAtStart", func(t *testing.T) {
		sel := mustSelection(t, 5, 3, Clamp)
		if moved := sel.MoveBy(-1, 1); moved {
			t.Error("expected no movement before the first index")
		}
		if sel.Cursor() != 0 {
			t.Errorf("expected cursor 0, got %d", sel.Cursor())
		}
	})

	t.Run("RewindWraps", func(t *testing.T) {
		sel := mustSelection(t, 5, 3, Rewind)
		sel.MoveCursor(4)
		if moved := sel.MoveBy(1, 1); !moved {
			t.Error("expected wrap to count as movement")
		}
		if sel.Cursor() != 0 {
			t.Errorf("expected wrap to 0, got %d", sel.Cursor())
		}
		if moved := sel.MoveBy(-1, 1); !moved {
			t.Error("expected wrap to count as movement")
		}
		if sel.Cursor() != 4 {
			t.Errorf("expected wrap to 4, got %d", sel.Cursor())
		}
	})

	t.Run("RewindPageWrapsModularly", func(t *testing.T) {
		sel := mustSelection(t, 5, 3, Rewind)
		sel.MoveCursor(3)
		sel.MoveBy(1, 4)
		if sel.Cursor() != 2 {
			t.Errorf("expected (3+4) mod 5 = 2, got %d", sel.Cursor())
		}
		sel.MoveBy(-1, 8)
		if sel.Cursor() != 4 {
			t.Errorf("expected (2-8) mod 5 = 4, got %d", sel.Cursor())
		}
	})

	t.Run("ClampPageSaturates", func(t *testing.T) {
		sel := mustSelection(t, 5, 3, Clamp)
		sel.MoveBy(1, 100)
		if sel.Cursor() != 4 {
			t.Errorf("expected saturation at 4, got %d", sel.Cursor())
		}
		sel.MoveBy(-1, 100)
		if sel.Cursor() != 0 {
			t.Errorf("expected saturation at 0, got %d", sel.Cursor())
		}
	})

	t.Run("JumpSentinels", func(t *testing.T) {
		sel := mustSelection(t, 20, 5, Clamp)
		sel.MoveBy(JumpEnd, 1)
		if sel.Cursor() != 19 {
			t.Errorf("expected cursor 19, got %d", sel.Cursor())
		}
		checkInvariants(t, &sel)
		sel.MoveBy(JumpBegin, 1)
		if sel.Cursor() != 0 || sel.Offset() != 0 {
			t.Errorf("expected cursor 0 offset 0, got %d/%d", sel.Cursor(), sel.Offset())
		}
	})

	t.Run("ViewportInvariant", func(t *testing.T) {
		for _, policy := range []Policy{Clamp, Rewind} {
			sel := mustSelection(t, 20, 5, policy)
			steps := []struct{ delta, step int }{
				{1, 1}, {1, 8}, {1, 8}, {-1, 1}, {JumpEnd, 1},
				{1, 1}, {-1, 8}, {-1, 8}, {-1, 8}, {JumpBegin, 1}, {-1, 1},
			}
			for _, mv := range steps {
				sel.MoveBy(mv.delta, mv.step)
				checkInvariants(t, &sel)
			}
		}
	})

	t.Run("MinimalScroll", func(t *testing.T) {
		sel := mustSelection(t, 10, 3, Clamp)
		sel.MoveCursor(5)
		if sel.Offset() != 3 {
			t.Fatalf("expected offset 3 after moving to 5, got %d", sel.Offset())
		}
		// Moving within the window must not scroll.
		sel.MoveBy(-1, 1)
		if sel.Offset() != 3 {
			t.Errorf("expected offset unchanged, got %d", sel.Offset())
		}
		// Moving above the window scrolls just enough.
		sel.MoveCursor(2)
		if sel.Offset() != 2 {
			t.Errorf("expected offset 2, got %d", sel.Offset())
		}
	})

	t.Run("EmptyCollection", func(t *testing.T) {
		sel := mustSelection(t, 0, 3, Rewind)
		if sel.MoveBy(1, 1) || sel.MoveCursor(2) {
			t.Error("expected movement over empty collection to be a no-op")
		}
		if _, ok := sel.State(true); ok {
			t.Error("expected no state for empty collection")
		}
	})

	t.Run("StateScopedToScrollable", func(t *testing.T) {
		sel := mustSelection(t, 5, 3, Clamp)
		sel.MoveCursor(2)
		if _, ok := sel.State(false); ok {
			t.Error("expected no state when not scrollable")
		}
		if idx, ok := sel.State(true); !ok || idx != 2 {
			t.Errorf("expected (2, true), got (%d, %v)", idx, ok)
		}
	})

	t.Run("SetLengthClampsCursor", func(t *testing.T) {
		sel := mustSelection(t, 10, 3, Clamp)
		sel.MoveCursor(9)
		if err := sel.SetLength(4); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sel.Cursor() != 3 {
			t.Errorf("expected cursor clamped to 3, got %d", sel.Cursor())
		}
		checkInvariants(t, &sel)
		if err := sel.SetLength(0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sel.Cursor() != 0 || sel.Offset() != 0 {
			t.Errorf("expected reset cursor/offset, got %d/%d", sel.Cursor(), sel.Offset())
		}
		if err := sel.SetLength(-1); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("expected ErrInvalidConfiguration, got %v", err)
		}
	})

	t.Run("SetHeightRederivesOffset", func(t *testing.T) {
		sel := mustSelection(t, 10, 3, Clamp)
		sel.MoveCursor(9)
		if err := sel.SetHeight(10); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sel.Offset() != 0 {
			t.Errorf("expected offset 0 once everything fits, got %d", sel.Offset())
		}
		checkInvariants(t, &sel)
		if err := sel.SetHeight(0); !errors.Is(err, ErrInvalidViewport) {
			t.Errorf("expected ErrInvalidViewport, got %v", err)
		}
	})

	t.Run("VisibleRange", func(t *testing.T) {
		sel := mustSelection(t, 4, 10, Clamp)
		start, end := sel.VisibleRange()
		if start != 0 || end != 4 {
			t.Errorf("expected [0,4), got [%d,%d)", start, end)
		}
		sel = mustSelection(t, 20, 5, Clamp)
		sel.MoveCursor(12)
		start, end = sel.VisibleRange()
		if end-start != 5 || sel.Cursor() < start || sel.Cursor() >= end {
			t.Errorf("expected 5-row window around cursor, got [%d,%d)", start, end)
		}
	})
}
