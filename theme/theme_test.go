package theme

import (
	"testing"

	"scribe/document"
	"scribe/style"
)

func TestDefaultTheme(t *testing.T) {
	th := Default(nil)

	p := th.Rendered(document.KindParagraph, 0)
	if p.FontFamily != "Source Serif Pro" {
		t.Errorf("paragraph font family = %q", p.FontFamily)
	}
	if p.FontSize != 12 {
		t.Errorf("paragraph font size = %g", p.FontSize)
	}
	if p.LineHeight != 1.5 {
		t.Errorf("paragraph line height = %g", p.LineHeight)
	}
	if p.Bold {
		t.Error("paragraph should not render bold")
	}

	h1 := th.Rendered(document.KindHeading, 1)
	if h1.FontSize != 24 {
		t.Errorf("h1 font size = %g, want 24 (2em of 12pt)", h1.FontSize)
	}
	if h1.FontWeight != 700 || !h1.Bold {
		t.Errorf("h1 weight = %d, bold = %v", h1.FontWeight, h1.Bold)
	}

	pre := th.Rendered(document.KindCodeBlock, 0)
	if pre.FontFamily != "JetBrains Mono" {
		t.Errorf("code block font family = %q", pre.FontFamily)
	}

	// out of range heading level falls back to h1
	if got := th.Rendered(document.KindHeading, 9); got.FontSize != 24 {
		t.Errorf("heading level 9 font size = %g", got.FontSize)
	}
}

func TestThemeOverlaysBase(t *testing.T) {
	th, err := New([]byte(`
body { font-size: 10pt; color: navy; line-height: 150%; }
h2 { font-size: 20px; font-style: italic; text-decoration: underline line-through; }
`), nil)
	if err != nil {
		t.Fatal(err)
	}

	h2 := th.Rendered(document.KindHeading, 2)
	if h2.FontSize != 15 {
		t.Errorf("h2 font size = %g, want 15 (20px)", h2.FontSize)
	}
	if !h2.Italic || !h2.Underline || !h2.Strikethrough {
		t.Errorf("h2 emphasis = %+v", h2)
	}
	if h2.Color != "#000080" {
		t.Errorf("h2 color = %q, want inherited navy", h2.Color)
	}

	p := th.Rendered(document.KindParagraph, 0)
	if p.LineHeight != 1.5 {
		t.Errorf("p line height = %g, want 1.5 (150%%)", p.LineHeight)
	}
}

func TestThemeRejectsEmptySheet(t *testing.T) {
	if _, err := New([]byte("/* nothing */"), nil); err == nil {
		t.Error("empty sheet should be rejected")
	}
}

func TestAppearanceGet(t *testing.T) {
	a := Appearance{
		FontFamily: "Georgia",
		FontSize:   14,
		FontWeight: 700,
		LineHeight: 1.4,
		Color:      "#111111",
		TextAlign:  "left",
		Bold:       true,
	}

	tests := []struct {
		prop style.Property
		want any
		ok   bool
	}{
		{style.FontFamily, "Georgia", true},
		{style.FontSize, 14.0, true},
		{style.FontWeight, 700, true},
		{style.LineHeight, 1.4, true},
		{style.Color, "#111111", true},
		{style.TextAlign, "left", true},
		{style.Bold, true, true},
		{style.Italic, nil, false}, // unset emphasis is absence, not false
		{style.BackgroundColor, nil, false},
		{style.LetterSpacing, nil, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.prop), func(t *testing.T) {
			got, ok := a.Get(tt.prop)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Get(%s) = %v, want %v", tt.prop, got, tt.want)
			}
		})
	}
}
