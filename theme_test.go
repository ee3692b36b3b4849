package tuikit

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestColorText(t *testing.T) {
	t.Run("Unmarshal", func(t *testing.T) {
		for _, tc := range []struct {
			in   string
			want Color
		}{
			{"", DefaultColor()},
			{"default", DefaultColor()},
			{"red", Red},
			{"bright-blue", BrightBlue},
			{"7", White},
			{"27", PaletteColor(27)},
			{"#00ff00", RGB(0, 255, 0)},
			{"#FF8800", RGB(0xff, 0x88, 0)},
		} {
			var c Color
			if err := c.UnmarshalText([]byte(tc.in)); err != nil {
				t.Errorf("%q: unexpected error: %v", tc.in, err)
				continue
			}
			if !c.Equal(tc.want) {
				t.Errorf("%q: expected %v, got %v", tc.in, tc.want, c)
			}
		}
	})

	t.Run("UnmarshalErrors", func(t *testing.T) {
		for _, in := range []string{"bogus", "#12345", "#zzzzzz", "300"} {
			var c Color
			if err := c.UnmarshalText([]byte(in)); !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("%q: expected ErrInvalidConfiguration, got %v", in, err)
			}
		}
	})

	t.Run("MarshalRoundTrip", func(t *testing.T) {
		for _, c := range []Color{White, PaletteColor(231), RGB(1, 2, 3)} {
			text, err := c.MarshalText()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var back Color
			if err := back.UnmarshalText(text); err != nil {
				t.Fatalf("%s: unexpected error: %v", text, err)
			}
			if !back.Equal(c) {
				t.Errorf("round trip changed %v to %v", c, back)
			}
		}
	})
}

func TestTheme(t *testing.T) {
	t.Run("PartialFileOverlaysDefaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "theme.toml")
		content := `
[accent]
fg = "#ff8800"
bold = true

[muted]
fg = "8"
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		theme, err := LoadTheme(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !theme.Accent.FG.Equal(RGB(0xff, 0x88, 0)) || !theme.Accent.Bold {
			t.Errorf("expected accent overridden, got %+v", theme.Accent)
		}
		if !theme.Muted.FG.Equal(BrightBlack) {
			t.Errorf("expected muted fg bright-black, got %+v", theme.Muted)
		}
		if !theme.Base.FG.Equal(White) {
			t.Errorf("expected base defaults retained, got %+v", theme.Base)
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		theme, err := LoadTheme(filepath.Join(t.TempDir(), "absent.toml"))
		if err == nil {
			t.Error("expected error for missing file")
		}
		if !theme.Highlight.BG.Equal(BrightCyan) {
			t.Error("expected defaults returned alongside the error")
		}
	})

	t.Run("InvalidColor", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "theme.toml")
		if err := os.WriteFile(path, []byte("[base]\nfg = \"chartreuse\"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadTheme(path); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("expected ErrInvalidConfiguration, got %v", err)
		}
	})
	t.Run("StyleConversion", func(t *testing.T) {
		ts := ThemeStyle{FG: Red, Bold: true, Underline: true}
		s := ts.Style()
		if !s.FG.Equal(Red) || !s.Attr.Has(AttrBold) || !s.Attr.Has(AttrUnderline) || s.Attr.Has(AttrDim) {
			t.Errorf("unexpected style %+v", s)
		}
	})
}
