package tuikit

import (
	"fmt"
	"math"
)

// Policy decides what happens when the cursor moves past a collection edge.
type Policy uint8

const (
	// Clamp saturates movement at the first and last index.
	Clamp Policy = iota
	// Rewind wraps movement to the opposite edge, modularly: stepping past
	// the end lands on 0, stepping before the start lands on length-1.
	Rewind
)

// Sentinel deltas for MoveBy that jump straight to a collection edge.
const (
	JumpBegin = math.MinInt
	JumpEnd   = math.MaxInt
)

// Selection tracks a cursor and a visible window over an ordered collection
// that may be larger than the viewport. It is the shared state core for
// list, table, radio, checkbox and select widgets: each widget owns one
// Selection plus its own extra state.
//
// Invariants, whenever length > 0:
//
//	0 ≤ cursor < length
//	offset ≤ cursor < offset+height
//	0 ≤ offset ≤ max(0, length-height)
//
// Selection is a plain value with no locking; a widget instance must only
// be driven from one goroutine at a time.
type Selection struct {
	cursor int
	offset int
	length int
	height int
	policy Policy
}

// NewSelection creates a controller over a collection of the given length
// with a viewport of the given height. A negative length or non-positive
// height is a configuration bug and is rejected.
func NewSelection(length, height int, policy Policy) (Selection, error) {
	if length < 0 {
		return Selection{}, fmt.Errorf("%w: negative length %d", ErrInvalidConfiguration, length)
	}
	if height <= 0 {
		return Selection{}, fmt.Errorf("%w: height %d", ErrInvalidConfiguration, height)
	}
	return Selection{length: length, height: height, policy: policy}, nil
}

// Cursor returns the current cursor index. Meaningless when Length is 0.
func (s *Selection) Cursor() int { return s.cursor }

// Offset returns the index of the first visible row.
func (s *Selection) Offset() int { return s.offset }

// Length returns the collection length.
func (s *Selection) Length() int { return s.length }

// Height returns the viewport height in rows.
func (s *Selection) Height() int { return s.height }

// SetLength updates the collection length, keeping the cursor in range
// when possible and re-deriving the scroll offset.
func (s *Selection) SetLength(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrInvalidConfiguration, n)
	}
	s.length = n
	if n == 0 {
		s.cursor = 0
		s.offset = 0
		return nil
	}
	if s.cursor >= n {
		s.cursor = n - 1
	}
	s.ensureVisible()
	return nil
}

// SetHeight updates the viewport height and re-derives the scroll offset.
func (s *Selection) SetHeight(h int) error {
	if h <= 0 {
		return fmt.Errorf("%w: height %d", ErrInvalidViewport, h)
	}
	s.height = h
	s.ensureVisible()
	return nil
}

// MoveCursor places the cursor at index, clamped into range.
func (s *Selection) MoveCursor(index int) bool {
	if s.length == 0 {
		return false
	}
	prev := s.cursor
	if index < 0 {
		index = 0
	}
	if index > s.length-1 {
		index = s.length - 1
	}
	s.cursor = index
	s.ensureVisible()
	return s.cursor != prev
}

// MoveBy moves the cursor by delta*step positions and reports whether it
// actually moved. Under Clamp the result saturates at the edges; under
// Rewind it wraps modularly, so multi-step moves wrap exactly like repeated
// single steps. The sentinels JumpBegin and JumpEnd jump to the first and
// last index regardless of step.
func (s *Selection) MoveBy(delta, step int) bool {
	if s.length == 0 {
		return false
	}
	if step == 0 {
		step = 1
	}
	prev := s.cursor
	switch delta {
	case JumpBegin:
		s.cursor = 0
	case JumpEnd:
		s.cursor = s.length - 1
	default:
		next := s.cursor + delta*step
		if s.policy == Rewind {
			next %= s.length
			if next < 0 {
				next += s.length
			}
		} else {
			if next < 0 {
				next = 0
			}
			if next > s.length-1 {
				next = s.length - 1
			}
		}
		s.cursor = next
	}
	s.ensureVisible()
	return s.cursor != prev
}

// State reports the externally visible selection: the cursor index, but
// only when the widget is scrollable and the collection is non-empty.
// Non-interactive widgets keep a cursor for rendering the highlighted row
// yet never expose it.
func (s *Selection) State(scrollable bool) (int, bool) {
	if !scrollable || s.length == 0 {
		return 0, false
	}
	return s.cursor, true
}

// VisibleRange returns the half-open range of row indexes inside the
// viewport window.
func (s *Selection) VisibleRange() (start, end int) {
	start = s.offset
	end = min(s.offset+s.height, s.length)
	return
}

// ensureVisible adjusts the scroll offset minimally so the cursor stays
// inside the viewport window.
func (s *Selection) ensureVisible() {
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+s.height {
		s.offset = s.cursor - s.height + 1
	}
	maxOffset := s.length - s.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.offset > maxOffset {
		s.offset = maxOffset
	}
	if s.offset < 0 {
		s.offset = 0
	}
}
