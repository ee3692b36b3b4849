package tuikit

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// colorNames maps theme-file color names onto the 16 basic colors.
var colorNames = map[string]Color{
	"black":          Black,
	"red":            Red,
	"green":          Green,
	"yellow":         Yellow,
	"blue":           Blue,
	"magenta":        Magenta,
	"cyan":           Cyan,
	"white":          White,
	"bright-black":   BrightBlack,
	"bright-red":     BrightRed,
	"bright-green":   BrightGreen,
	"bright-yellow":  BrightYellow,
	"bright-blue":    BrightBlue,
	"bright-magenta": BrightMagenta,
	"bright-cyan":    BrightCyan,
	"bright-white":   BrightWhite,
}

// UnmarshalText parses a theme-file color: a basic color name, a palette
// index ("27"), a hex triplet ("#ff8800") or empty for the terminal
// default.
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(strings.ToLower(string(text)))
	if s == "" || s == "default" {
		*c = DefaultColor()
		return nil
	}
	if named, ok := colorNames[s]; ok {
		*c = named
		return nil
	}
	if strings.HasPrefix(s, "#") {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil || len(s) != 7 {
			return fmt.Errorf("%w: color %q", ErrInvalidConfiguration, s)
		}
		*c = Hex(uint32(v))
		return nil
	}
	idx, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return fmt.Errorf("%w: color %q", ErrInvalidConfiguration, s)
	}
	if idx < 16 {
		*c = BasicColor(uint8(idx))
	} else {
		*c = PaletteColor(uint8(idx))
	}
	return nil
}

// MarshalText renders the color in the same form UnmarshalText accepts.
func (c Color) MarshalText() ([]byte, error) {
	switch c.Mode {
	case Color16, Color256:
		return []byte(strconv.Itoa(int(c.Index))), nil
	case ColorRGB:
		return []byte(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)), nil
	}
	return []byte(""), nil
}

// ThemeStyle is one style entry in a theme file.
type ThemeStyle struct {
	FG        Color `toml:"fg"`
	BG        Color `toml:"bg"`
	Bold      bool  `toml:"bold"`
	Dim       bool  `toml:"dim"`
	Italic    bool  `toml:"italic"`
	Underline bool  `toml:"underline"`
}

// Style converts the theme entry into a widget style.
func (ts ThemeStyle) Style() Style {
	s := Style{FG: ts.FG, BG: ts.BG}
	if ts.Bold {
		s.Attr = s.Attr.With(AttrBold)
	}
	if ts.Dim {
		s.Attr = s.Attr.With(AttrDim)
	}
	if ts.Italic {
		s.Attr = s.Attr.With(AttrItalic)
	}
	if ts.Underline {
		s.Attr = s.Attr.With(AttrUnderline)
	}
	return s
}

// Theme is the closed set of styles widgets draw from. Every recognized
// option is an explicit field; there is no open-ended attribute map.
type Theme struct {
	Base      ThemeStyle `toml:"base"`
	Muted     ThemeStyle `toml:"muted"`
	Accent    ThemeStyle `toml:"accent"`
	Error     ThemeStyle `toml:"error"`
	Border    ThemeStyle `toml:"border"`
	Highlight ThemeStyle `toml:"highlight"`
}

// DefaultTheme is a dark theme with light text.
func DefaultTheme() Theme {
	return Theme{
		Base:      ThemeStyle{FG: White},
		Muted:     ThemeStyle{FG: BrightBlack},
		Accent:    ThemeStyle{FG: BrightCyan},
		Error:     ThemeStyle{FG: BrightRed},
		Border:    ThemeStyle{FG: BrightBlack},
		Highlight: ThemeStyle{FG: Black, BG: BrightCyan},
	}
}

// LoadTheme reads a TOML theme file over the defaults, so a partial file
// only overrides what it names.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()
	data, err := os.ReadFile(path)
	if err != nil {
		return theme, err
	}
	if err := toml.Unmarshal(data, &theme); err != nil {
		return theme, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return theme, nil
}
