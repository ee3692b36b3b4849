package tuikit

import "testing"

func TestInput(t *testing.T) {
	t.Run("TypeAppends", func(t *testing.T) {
		in := NewInput()
		in.Perform(Type{Rune: 'h'})
		res, ok := in.Perform(Type{Rune: 'i'}).(Changed)
		if !ok || res.State.(TextState) != "hi" {
			t.Errorf("expected Changed to %q, got %v", "hi", res)
		}
	})

	t.Run("TypeAtCursor", func(t *testing.T) {
		in := NewInput().SetValue("hi")
		in.Perform(Move{Delta: -1})
		in.Perform(Type{Rune: 'x'})
		if in.Value() != "hxi" {
			t.Errorf("expected %q, got %q", "hxi", in.Value())
		}
	})

	t.Run("EraseBack", func(t *testing.T) {
		in := NewInput().SetValue("abc")
		res, ok := in.Perform(Erase{Back: true}).(Changed)
		if !ok || res.State.(TextState) != "ab" {
			t.Errorf("expected Changed to %q, got %v", "ab", res)
		}
		in.Perform(Jump{To: Begin})
		if _, ok := in.Perform(Erase{Back: true}).(Unchanged); !ok {
			t.Error("expected Unchanged erasing before the first rune")
		}
	})

	t.Run("EraseForward", func(t *testing.T) {
		in := NewInput().SetValue("abc")
		in.Perform(Jump{To: Begin})
		in.Perform(Erase{})
		if in.Value() != "bc" {
			t.Errorf("expected %q, got %q", "bc", in.Value())
		}
		in.Perform(Jump{To: End})
		if _, ok := in.Perform(Erase{}).(Unchanged); !ok {
			t.Error("expected Unchanged erasing past the last rune")
		}
	})

	t.Run("CursorMovesAreNotEdits", func(t *testing.T) {
		in := NewInput().SetValue("abc")
		if _, ok := in.Perform(Move{Delta: -1}).(Unchanged); !ok {
			t.Error("expected Unchanged for cursor movement")
		}
		if _, ok := in.Perform(Jump{To: Begin}).(Unchanged); !ok {
			t.Error("expected Unchanged for jump")
		}
	})

	t.Run("SentinelDeltasReachEdges", func(t *testing.T) {
		// Hosts drive every widget with the same Move commands, so the
		// JumpBegin/JumpEnd deltas must reach the edges here too.
		in := NewInput().SetValue("abc")
		in.Perform(Move{Delta: JumpBegin})
		if got := in.CursorColumn(); got != 0 {
			t.Errorf("expected cursor at start, got column %d", got)
		}
		in.Perform(Type{Rune: 'x'})
		if in.Value() != "xabc" {
			t.Errorf("expected insert at start, got %q", in.Value())
		}
		in.Perform(Move{Delta: JumpEnd})
		if got := in.CursorColumn(); got != 4 {
			t.Errorf("expected cursor at end, got column %d", got)
		}
	})

	t.Run("CursorColumnCountsCells", func(t *testing.T) {
		in := NewInput().SetValue("我a")
		if got := in.CursorColumn(); got != 3 {
			t.Errorf("expected column 3 at end, got %d", got)
		}
		in.Perform(Move{Delta: -1})
		if got := in.CursorColumn(); got != 2 {
			t.Errorf("expected column 2 before the narrow rune, got %d", got)
		}
		in.Perform(Move{Delta: -1})
		if got := in.CursorColumn(); got != 0 {
			t.Errorf("expected column 0 at start, got %d", got)
		}
	})

	t.Run("SubmitReportsValue", func(t *testing.T) {
		in := NewInput().SetValue("done")
		res, ok := in.Perform(Submit{}).(Submitted)
		if !ok || res.State.(TextState) != "done" {
			t.Errorf("expected Submitted %q, got %v", "done", res)
		}
	})
}
