package css

import "testing"

func TestParseSimpleSheet(t *testing.T) {
	sheet := NewParser(nil).Parse([]byte(`
p { font-size: 12pt; line-height: 1.5; color: #333; }
h1, h2 { font-weight: 700; font-family: "Georgia"; }
h1 { font-size: 2em; }
`))

	if len(sheet.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", sheet.Warnings)
	}
	if len(sheet.Rules) != 4 {
		t.Fatalf("got %d rules, want 4", len(sheet.Rules))
	}

	if v, ok := sheet.Lookup("p", "font-size"); !ok || v.Value != 12 || v.Unit != "pt" {
		t.Errorf("p font-size = %+v, %v", v, ok)
	}
	if v, ok := sheet.Lookup("p", "line-height"); !ok || v.Value != 1.5 || v.Unit != "" {
		t.Errorf("p line-height = %+v, %v", v, ok)
	}
	if v, ok := sheet.Lookup("p", "color"); !ok || v.Keyword != "#333" {
		t.Errorf("p color = %+v, %v", v, ok)
	}
	if v, ok := sheet.Lookup("h2", "font-weight"); !ok || v.Value != 700 {
		t.Errorf("h2 font-weight = %+v, %v", v, ok)
	}
	if v, ok := sheet.Lookup("h1", "font-family"); !ok || v.Keyword != "Georgia" {
		t.Errorf("h1 font-family = %+v, %v", v, ok)
	}
	// later rules win the cascade
	if v, ok := sheet.Lookup("h1", "font-size"); !ok || v.Value != 2 || v.Unit != "em" {
		t.Errorf("h1 font-size = %+v, %v", v, ok)
	}
}

func TestParseSkipsUnsupported(t *testing.T) {
	sheet := NewParser(nil).Parse([]byte(`
@media print { p { color: black; } }
.fancy > p { color: red; }
td { background-color: rgb(250, 250, 250); }
`))

	if len(sheet.Rules) != 1 || sheet.Rules[0].Selector != "td" {
		t.Fatalf("rules = %+v", sheet.Rules)
	}
	if len(sheet.Warnings) == 0 {
		t.Error("expected warnings for skipped constructs")
	}
	if v, ok := sheet.Lookup("td", "background-color"); !ok || v.Keyword != "rgb(250, 250, 250)" && v.Keyword != "rgb(250,250,250)" {
		t.Errorf("td background = %+v, %v", v, ok)
	}
}

func TestValuePoints(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		base float64
		want float64
		ok   bool
	}{
		{"pt", Value{Raw: "14pt", Value: 14, Unit: "pt"}, 12, 14, true},
		{"px", Value{Raw: "16px", Value: 16, Unit: "px"}, 12, 12, true},
		{"em", Value{Raw: "2em", Value: 2, Unit: "em"}, 12, 24, true},
		{"bare number", Value{Raw: "10", Value: 10}, 12, 10, true},
		{"keyword", Value{Raw: "large", Keyword: "large"}, 12, 0, false},
		{"percent", Value{Raw: "120%", Value: 120, Unit: "%"}, 12, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.v.Points(tt.base)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Points() = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestValueRatio(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		size float64
		want float64
		ok   bool
	}{
		{"unitless", Value{Raw: "1.5", Value: 1.5}, 12, 1.5, true},
		{"normal keyword", Value{Raw: "normal", Keyword: "normal"}, 12, 1.2, true},
		{"percent", Value{Raw: "150%", Value: 150, Unit: "%"}, 12, 1.5, true},
		{"points", Value{Raw: "18pt", Value: 18, Unit: "pt"}, 12, 1.5, true},
		{"pixels", Value{Raw: "24px", Value: 24, Unit: "px"}, 12, 1.5, true},
		{"rounded to one decimal", Value{Raw: "20px", Value: 20, Unit: "px"}, 12, 1.3, true},
		{"zero font size", Value{Raw: "1.5", Value: 1.5}, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.v.Ratio(tt.size)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Ratio() = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCanonicalColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"#FFAA00", "#ffaa00", true},
		{"#fa0", "#ffaa00", true},
		{"#ffaa00ff", "#ffaa00", true},
		{"black", "#000000", true},
		{"Orange", "#ffa500", true},
		{"rgb(255, 170, 0)", "#ffaa00", true},
		{"rgba(255, 170, 0, 0.5)", "#ffaa00", true},
		{"rgb(100%, 0%, 0%)", "#ff0000", true},
		{"#12345", "", false},
		{"#xyzxyz", "", false},
		{"blueish", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := CanonicalColor(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("CanonicalColor(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}
