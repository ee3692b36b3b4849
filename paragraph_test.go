package tuikit

import (
	"strings"
	"testing"
)

func TestParagraph(t *testing.T) {
	t.Run("WrapsToWidth", func(t *testing.T) {
		p := NewParagraph(Plain("lorem ipsum dolor sit amet"))
		if err := p.SetSize(11, 5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i, l := range p.Lines() {
			if l.Width() > 11 {
				t.Errorf("line %d exceeds width: %q", i, l.Text())
			}
		}
		if len(p.Lines()) < 2 {
			t.Errorf("expected wrapping, got %d lines", len(p.Lines()))
		}
	})

	t.Run("HeightCapsView", func(t *testing.T) {
		p := NewParagraph(Plain("one two three four five six seven eight"))
		p.SetSize(5, 2)
		view := p.View()
		if got := strings.Count(view, "\n") + 1; got != 2 {
			t.Errorf("expected view capped at 2 lines, got %d:\n%s", got, view)
		}
	})

	t.Run("AlignRight", func(t *testing.T) {
		p := NewParagraph(Plain("hi")).Align(AlignRight)
		p.SetSize(10, 1)
		if got := p.View(); got != "        hi" {
			t.Errorf("expected right-aligned text, got %q", got)
		}
	})

	t.Run("IgnoresCommands", func(t *testing.T) {
		p := NewParagraph(Plain("static"))
		p.SetSize(10, 1)
		if _, ok := p.Perform(Move{Delta: 1}).(Unchanged); !ok {
			t.Error("expected Unchanged")
		}
		if _, ok := p.State().(NoState); !ok {
			t.Error("expected NoState")
		}
	})
}

func TestLabel(t *testing.T) {
	t.Run("ClipsNeverWraps", func(t *testing.T) {
		l := NewLabel(Plain("a very long label that cannot fit"))
		l.SetSize(6, 1)
		view := l.View()
		if strings.Contains(view, "\n") {
			t.Errorf("expected single line, got %q", view)
		}
		if view != "a very" {
			t.Errorf("expected clipped text, got %q", view)
		}
	})

	t.Run("AlignCenter", func(t *testing.T) {
		l := NewLabel(Plain("ok")).Align(AlignCenter)
		l.SetSize(6, 1)
		if got := l.View(); got != "  ok" {
			t.Errorf("expected centered text, got %q", got)
		}
	})
}
