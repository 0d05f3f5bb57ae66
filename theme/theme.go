// Package theme computes the rendered appearance of blocks from a CSS theme
// stylesheet. It stands in for the host editor's computed-style lookup: the
// last resort of style capture when neither marks, cursor state nor block
// attributes have an opinion on a property.
package theme

import (
	_ "embed"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"scribe/css"
	"scribe/document"
	"scribe/style"
)

//go:embed default.css
var defaultSheet []byte

// Appearance is the displayed value set for one block kind. Colors are in
// canonical #rrggbb form, sizes in points, line height a unitless ratio
// rounded to one decimal.
type Appearance struct {
	FontFamily      string
	FontSize        float64
	FontWeight      int
	LetterSpacing   float64
	LineHeight      float64
	Color           string
	BackgroundColor string
	TextAlign       string
	Bold            bool
	Italic          bool
	Underline       bool
	Strikethrough   bool
}

// Get exposes the appearance as a property bag for style capture. Boolean
// emphasis reports only when set: a rendered "not underlined" is absence,
// not a value worth capturing.
func (a Appearance) Get(p style.Property) (any, bool) {
	switch p {
	case style.FontFamily:
		if a.FontFamily != "" {
			return a.FontFamily, true
		}
	case style.FontSize:
		if a.FontSize > 0 {
			return a.FontSize, true
		}
	case style.FontWeight:
		if a.FontWeight > 0 {
			return a.FontWeight, true
		}
	case style.LetterSpacing:
		if a.LetterSpacing != 0 {
			return a.LetterSpacing, true
		}
	case style.LineHeight:
		if a.LineHeight > 0 {
			return a.LineHeight, true
		}
	case style.Color:
		if a.Color != "" {
			return a.Color, true
		}
	case style.BackgroundColor:
		if a.BackgroundColor != "" {
			return a.BackgroundColor, true
		}
	case style.TextAlign:
		if a.TextAlign != "" {
			return a.TextAlign, true
		}
	case style.Bold:
		if a.Bold {
			return true, true
		}
	case style.Italic:
		if a.Italic {
			return true, true
		}
	case style.Underline:
		if a.Underline {
			return true, true
		}
	case style.Strikethrough:
		if a.Strikethrough {
			return true, true
		}
	}
	return nil, false
}

// Styler is the rendered-appearance lookup the engine consumes.
type Styler interface {
	Rendered(kind document.BlockKind, level int) Appearance
}

// Theme is a Styler backed by a parsed CSS sheet. Appearances are computed
// once per selector at load time, the engine queries them at will.
type Theme struct {
	byKey map[string]Appearance
	base  Appearance
}

// selectorFor maps a block to its theme selector.
func selectorFor(kind document.BlockKind, level int) string {
	switch kind {
	case document.KindHeading:
		if level >= style.MinHeadingLevel && level <= style.MaxHeadingLevel {
			return fmt.Sprintf("h%d", level)
		}
		return "h1"
	case document.KindTableCell:
		return "td"
	case document.KindCodeBlock:
		return "pre"
	default:
		return "p"
	}
}

// New parses a theme stylesheet and precomputes block appearances.
func New(data []byte, log *zap.Logger) (*Theme, error) {
	if log == nil {
		log = zap.NewNop()
	}
	sheet := css.NewParser(log).Parse(data)
	if len(sheet.Rules) == 0 {
		return nil, fmt.Errorf("theme stylesheet has no usable rules")
	}
	for _, w := range sheet.Warnings {
		log.Warn("Theme stylesheet", zap.String("warning", w))
	}

	t := &Theme{byKey: make(map[string]Appearance)}
	t.base = computeAppearance(sheet, "body", Appearance{
		// hard fallbacks when the sheet is silent
		FontFamily: "serif",
		FontSize:   12,
		FontWeight: 400,
		LineHeight: 1.2,
		Color:      "#000000",
		TextAlign:  "left",
	})
	for _, sel := range []string{"p", "h1", "h2", "h3", "h4", "h5", "h6", "td", "pre"} {
		t.byKey[sel] = computeAppearance(sheet, sel, t.base)
	}
	return t, nil
}

// Default returns the built-in theme.
func Default(log *zap.Logger) *Theme {
	t, err := New(defaultSheet, log)
	if err != nil {
		// the embedded sheet is part of the binary, this cannot happen
		panic(err)
	}
	return t
}

// Rendered returns the displayed appearance for a block kind.
func (t *Theme) Rendered(kind document.BlockKind, level int) Appearance {
	if a, ok := t.byKey[selectorFor(kind, level)]; ok {
		return a
	}
	return t.base
}

// computeAppearance overlays a selector's declarations onto base.
func computeAppearance(sheet *css.Stylesheet, selector string, base Appearance) Appearance {
	a := base

	if v, ok := sheet.Lookup(selector, "font-family"); ok {
		a.FontFamily = firstFamily(v)
	}
	if v, ok := sheet.Lookup(selector, "font-size"); ok {
		if pt, ok := v.Points(base.FontSize); ok {
			a.FontSize = pt
		}
	}
	if v, ok := sheet.Lookup(selector, "font-weight"); ok {
		switch {
		case v.Keyword == "bold":
			a.FontWeight = 700
		case v.Keyword == "normal":
			a.FontWeight = 400
		case v.IsNumeric():
			a.FontWeight = int(v.Value)
		}
	}
	if v, ok := sheet.Lookup(selector, "letter-spacing"); ok {
		if v.Keyword == "normal" {
			a.LetterSpacing = 0
		} else if pt, ok := v.Points(a.FontSize); ok {
			a.LetterSpacing = pt
		}
	}
	if v, ok := sheet.Lookup(selector, "line-height"); ok {
		if ratio, ok := v.Ratio(a.FontSize); ok {
			a.LineHeight = ratio
		}
	}
	if v, ok := sheet.Lookup(selector, "color"); ok {
		if c, ok := css.CanonicalColor(colorText(v)); ok {
			a.Color = c
		}
	}
	if v, ok := sheet.Lookup(selector, "background-color"); ok {
		if c, ok := css.CanonicalColor(colorText(v)); ok {
			a.BackgroundColor = c
		}
	}
	if v, ok := sheet.Lookup(selector, "text-align"); ok && v.Keyword != "" {
		a.TextAlign = v.Keyword
	}
	if v, ok := sheet.Lookup(selector, "font-style"); ok {
		a.Italic = v.Keyword == "italic" || v.Keyword == "oblique"
	}
	if v, ok := sheet.Lookup(selector, "text-decoration"); ok {
		a.Underline = strings.Contains(v.Raw, "underline")
		a.Strikethrough = strings.Contains(v.Raw, "line-through")
	}
	a.Bold = a.FontWeight >= 600
	return a
}

// colorText extracts the textual color form from a parsed value.
func colorText(v css.Value) string {
	if v.Keyword != "" {
		return v.Keyword
	}
	return v.Raw
}

// firstFamily takes the first family of a comma separated font stack.
func firstFamily(v css.Value) string {
	s := v.Raw
	if v.Keyword != "" && !strings.Contains(v.Keyword, ",") {
		s = v.Keyword
	}
	first := strings.TrimSpace(strings.Split(s, ",")[0])
	return strings.Trim(first, `"'`)
}

// static check
var _ Styler = (*Theme)(nil)
