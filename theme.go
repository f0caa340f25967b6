package inline

import (
	"sort"
	"strings"
)

const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiFaint     = "\x1b[2m"
	ansiItalic    = "\x1b[3m"
	ansiUnderline = "\x1b[4m"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used by the token renderers.
type Styles struct {
	Text       Style
	Marker     Style
	Escaped    Style
	Italic     Style
	Bold       Style
	BoldItalic Style
	Verbatim   Style
	TextGroup  Style
	Position   Style
}

// Theme provides named styles for token rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		b.WriteString(p)
	}
	return Style{Prefix: b.String()}
}

func fg(code string) string {
	return "\x1b[38;5;" + code + "m"
}

type palette struct {
	text, marker, escaped, emphasis, strong, verbatim, group, position string
}

func stylesFromPalette(p palette) Styles {
	return Styles{
		Text:       style(p.text),
		Marker:     style(ansiFaint, p.marker),
		Escaped:    style(p.escaped),
		Italic:     style(ansiItalic, p.emphasis),
		Bold:       style(ansiBold, p.strong),
		BoldItalic: style(ansiBold, ansiItalic, p.strong),
		Verbatim:   style(p.verbatim),
		TextGroup:  style(ansiUnderline, p.group),
		Position:   style(ansiFaint, p.position),
	}
}

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: stylesFromPalette(palette{
		marker: fg("244"), escaped: fg("173"), emphasis: fg("110"), strong: fg("215"),
		verbatim: fg("150"), group: fg("176"), position: fg("244"),
	})},
	"gruvbox": theme{name: "gruvbox", styles: stylesFromPalette(palette{
		text: fg("223"), marker: fg("245"), escaped: fg("208"), emphasis: fg("109"), strong: fg("214"),
		verbatim: fg("142"), group: fg("175"), position: fg("245"),
	})},
	"solarized-dark": theme{name: "solarized-dark", styles: stylesFromPalette(palette{
		text: fg("246"), marker: fg("240"), escaped: fg("166"), emphasis: fg("37"), strong: fg("136"),
		verbatim: fg("64"), group: fg("61"), position: fg("240"),
	})},
	"mono": theme{name: "mono", styles: stylesFromPalette(palette{})},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
