// Package css parses the small CSS subset theme stylesheets use: flat
// rulesets with simple element selectors. It feeds the rendered-appearance
// fallback of style capture, so values keep enough typing to convert sizes
// to points and line heights to unitless ratios.
package css

import (
	"strconv"
	"strings"
	"unicode"
)

// Value represents a parsed CSS property value.
type Value struct {
	Raw     string  // Original CSS value string (e.g., "1.2em", "bold", "#ff0000")
	Value   float64 // Numeric value if applicable
	Unit    string  // Unit if applicable: "em", "px", "%", "pt", etc.
	Keyword string  // Keyword if applicable: "bold", "italic", "center", etc.
}

// IsNumeric returns true if the value has a numeric component.
func (v Value) IsNumeric() bool {
	if v.Unit != "" {
		return true
	}
	return v.Keyword == "" && v.Raw != ""
}

// Points converts the value to typographic points. em values scale against
// basePt, the caller's reference font size. Unitless values are treated as
// points. ok is false for keywords and percentages.
func (v Value) Points(basePt float64) (float64, bool) {
	switch v.Unit {
	case "pt":
		return v.Value, true
	case "px":
		// CSS reference pixel: 96 per inch against 72 points.
		return v.Value * 72.0 / 96.0, true
	case "em", "rem":
		return v.Value * basePt, true
	case "":
		if v.Keyword == "" && v.Raw != "" {
			return v.Value, true
		}
	}
	return 0, false
}

// Ratio converts the value to a unitless line-height ratio against the
// given font size in points, rounded to one decimal the way the rendered
// appearance fallback reports it.
func (v Value) Ratio(fontSizePt float64) (float64, bool) {
	if fontSizePt <= 0 {
		return 0, false
	}
	switch v.Unit {
	case "":
		if v.Keyword == "normal" {
			return 1.2, true
		}
		if v.Keyword == "" && v.Raw != "" {
			return roundRatio(v.Value), true
		}
	case "%":
		return roundRatio(v.Value / 100.0), true
	case "em", "rem":
		return roundRatio(v.Value), true
	case "pt":
		return roundRatio(v.Value / fontSizePt), true
	case "px":
		return roundRatio(v.Value * 72.0 / 96.0 / fontSizePt), true
	}
	return 0, false
}

func roundRatio(r float64) float64 {
	return float64(int(r*10+0.5)) / 10
}

// Rule is one flat ruleset: a simple element selector and its declarations.
type Rule struct {
	Selector   string
	Properties map[string]Value
}

// Stylesheet is a parsed theme sheet.
type Stylesheet struct {
	Rules    []Rule
	Warnings []string
}

// Lookup returns the last declaration of property for selector, following
// the CSS cascade where later rules override earlier ones.
func (s *Stylesheet) Lookup(selector, property string) (Value, bool) {
	var out Value
	found := false
	for _, r := range s.Rules {
		if r.Selector != selector {
			continue
		}
		if v, ok := r.Properties[property]; ok {
			out = v
			found = true
		}
	}
	return out, found
}

// parseDimension extracts numeric value and unit from a dimension token.
func parseDimension(s string) (float64, string) {
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}
	if numEnd == 0 {
		return 0, ""
	}
	num, _ := strconv.ParseFloat(s[:numEnd], 64)
	return num, strings.ToLower(s[numEnd:])
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
