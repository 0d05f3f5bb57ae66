package css

import (
	"fmt"
	"strconv"
	"strings"
)

// namedColors covers the CSS named colors theme sheets actually use.
var namedColors = map[string]string{
	"black":   "#000000",
	"silver":  "#c0c0c0",
	"gray":    "#808080",
	"grey":    "#808080",
	"white":   "#ffffff",
	"maroon":  "#800000",
	"red":     "#ff0000",
	"purple":  "#800080",
	"fuchsia": "#ff00ff",
	"green":   "#008000",
	"lime":    "#00ff00",
	"olive":   "#808000",
	"yellow":  "#ffff00",
	"navy":    "#000080",
	"blue":    "#0000ff",
	"teal":    "#008080",
	"aqua":    "#00ffff",
	"orange":  "#ffa500",
}

// CanonicalColor converts a color in any of the forms theme sheets and
// rendered styles produce (named, #rgb, #rrggbb, rgb(), rgba()) to the
// canonical lowercase #rrggbb form. ok is false when the input is not a
// recognizable color.
func CanonicalColor(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) == 0 {
		return "", false
	}
	if hex, ok := namedColors[s]; ok {
		return hex, true
	}
	if strings.HasPrefix(s, "#") {
		return canonicalHex(s)
	}
	if strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba(") {
		return canonicalRGB(s)
	}
	return "", false
}

func canonicalHex(s string) (string, bool) {
	hex := s[1:]
	switch len(hex) {
	case 3:
		var b strings.Builder
		b.WriteByte('#')
		for i := 0; i < 3; i++ {
			b.WriteByte(hex[i])
			b.WriteByte(hex[i])
		}
		s = b.String()
	case 6:
		// already long form
	case 8:
		// drop the alpha channel, the engine's color model has none
		s = s[:7]
	default:
		return "", false
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return "", false
		}
	}
	return s, true
}

func canonicalRGB(s string) (string, bool) {
	open := strings.IndexByte(s, '(')
	close := strings.IndexByte(s, ')')
	if open < 0 || close < open {
		return "", false
	}
	parts := strings.Split(s[open+1:close], ",")
	if len(parts) < 3 {
		return "", false
	}
	var ch [3]int
	for i := 0; i < 3; i++ {
		p := strings.TrimSpace(parts[i])
		var v int
		if strings.HasSuffix(p, "%") {
			pct, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
			if err != nil {
				return "", false
			}
			v = int(pct*255/100 + 0.5)
		} else {
			f, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return "", false
			}
			v = int(f + 0.5)
		}
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		ch[i] = v
	}
	return fmt.Sprintf("#%02x%02x%02x", ch[0], ch[1], ch[2]), true
}
