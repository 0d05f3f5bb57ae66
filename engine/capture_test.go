package engine

import (
	"testing"

	"scribe/document"
	"scribe/style"
	"scribe/theme"
)

// For each property the first source with a value wins and later sources
// cannot overwrite it.
func TestCaptureFirstSourceWins(t *testing.T) {
	p := paragraphBlock(
		markedRun("big", document.Marks{style.FontSize: 20.0, style.Bold: true}),
		markedRun(" small", document.Marks{style.FontSize: 14.0}),
	)
	p.Attrs = document.Attributes{style.TextAlign: "center"}
	doc := document.New(p)

	eng := New(doc, style.NewRegistry(), fakeStyler{a: theme.Appearance{
		FontFamily: "serif",
		FontSize:   12,
		Color:      "#111111",
		TextAlign:  "left",
	}}, nil)

	if err := doc.SetSelection(document.Range(p.ID, 0, 3)); err != nil {
		t.Fatal(err)
	}
	snap := eng.CaptureBlockStyle(eng.Context())

	if v, _ := snap.Get(style.FontSize); v != 20.0 {
		t.Errorf("fontSize = %v, want the first run's 20", v)
	}
	if v, _ := snap.Get(style.Bold); v != true {
		t.Errorf("bold = %v", v)
	}
	// run marks beat the rendered appearance, block attrs beat it too
	if v, _ := snap.Get(style.TextAlign); v != "center" {
		t.Errorf("textAlign = %v, want the block attribute", v)
	}
	// untouched properties fall through to the rendered appearance
	if v, _ := snap.Get(style.FontFamily); v != "serif" {
		t.Errorf("fontFamily = %v, want rendered fallback", v)
	}
	if v, _ := snap.Get(style.Color); v != "#111111" {
		t.Errorf("color = %v", v)
	}
}

func TestCaptureCursorMarksOnEmptyBlock(t *testing.T) {
	p := paragraphBlock()
	doc := document.New(p)
	eng := newTestEngine(doc)

	if err := doc.SetSelection(document.Cursor(p.ID, 0)); err != nil {
		t.Fatal(err)
	}
	if err := doc.Dispatch(document.NewTransaction().Add(
		document.StageCursorMark{Property: style.Italic, Value: true})); err != nil {
		t.Fatal(err)
	}

	snap := eng.CaptureBlockStyle(eng.Context())
	if v, ok := snap.Get(style.Italic); !ok || v != true {
		t.Errorf("staged italic not captured: %v, %v", v, ok)
	}
}

// Rendered booleans are captured only when set; a plain paragraph under a
// plain theme yields no bold/italic entries at all.
func TestCaptureRenderedBooleansOnlyWhenSet(t *testing.T) {
	p := paragraphBlock(markedRun("text", nil))
	doc := document.New(p)
	eng := New(doc, style.NewRegistry(), fakeStyler{a: theme.Appearance{
		FontSize: 12,
		Bold:     false,
	}}, nil)

	if err := doc.SetSelection(document.Range(p.ID, 0, 4)); err != nil {
		t.Fatal(err)
	}
	snap := eng.CaptureBlockStyle(eng.Context())
	if _, ok := snap.Get(style.Bold); ok {
		t.Error("rendered not-bold captured as a value")
	}
	if v, ok := snap.Get(style.FontSize); !ok || v != 12.0 {
		t.Errorf("fontSize = %v, %v", v, ok)
	}
}

func TestCaptureNilContext(t *testing.T) {
	doc := document.New()
	eng := newTestEngine(doc)
	snap := eng.CaptureBlockStyle(nil)
	if snap == nil || snap.Len() != 0 {
		t.Errorf("nil context capture = %v", snap)
	}
}
