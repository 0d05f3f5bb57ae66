package store

import (
	"testing"

	"scribe/style"
)

func ptr[T any](v T) *T { return &v }

func TestSaveLoadRoundTrip(t *testing.T) {
	st, err := Open(":memory:", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	reg := style.NewRegistry()
	if err := reg.Set(2, &style.Definition{
		FontFamily: ptr("Georgia"),
		FontSize:   ptr(18.0),
		Bold:       ptr(true),
		Divider: &style.Divider{
			Enabled:   true,
			Position:  style.DividerBelow,
			Style:     style.DividerSolid,
			Thickness: 1.5,
			Distance:  0.5,
			Color:     "#cccccc",
		},
	}); err != nil {
		t.Fatal(err)
	}
	if err := reg.SetProperty(4, style.Italic, true); err != nil {
		t.Fatal(err)
	}
	if err := st.Save(reg); err != nil {
		t.Fatal(err)
	}

	loaded := style.NewRegistry()
	if err := st.Load(loaded); err != nil {
		t.Fatal(err)
	}

	def := loaded.Get(2)
	if def == nil {
		t.Fatal("level 2 definition missing after load")
	}
	if def.FontFamily == nil || *def.FontFamily != "Georgia" {
		t.Errorf("fontFamily = %v", def.FontFamily)
	}
	if def.FontSize == nil || *def.FontSize != 18.0 {
		t.Errorf("fontSize = %v", def.FontSize)
	}
	if def.Bold == nil || !*def.Bold {
		t.Errorf("bold = %v", def.Bold)
	}
	if def.Divider == nil {
		t.Fatal("divider missing after load")
	}
	if def.Divider.Position != style.DividerBelow || def.Divider.Thickness != 1.5 {
		t.Errorf("divider = %+v", def.Divider)
	}
	if v, ok := loaded.GetProperty(4, style.Italic); !ok || v != true {
		t.Errorf("level 4 italic = %v, %v", v, ok)
	}
	// uncustomized levels stay absent
	if loaded.Get(1) != nil {
		t.Error("level 1 appeared out of nowhere")
	}
}

func TestSaveReplacesPreviousSnapshot(t *testing.T) {
	st, err := Open(":memory:", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	reg := style.NewRegistry()
	if err := reg.SetProperty(1, style.Bold, true); err != nil {
		t.Fatal(err)
	}
	if err := reg.SetProperty(3, style.Italic, true); err != nil {
		t.Fatal(err)
	}
	if err := st.Save(reg); err != nil {
		t.Fatal(err)
	}

	// level 3 customization removed before the second save
	reg.Clear(3)
	if err := st.Save(reg); err != nil {
		t.Fatal(err)
	}

	loaded := style.NewRegistry()
	if err := st.Load(loaded); err != nil {
		t.Fatal(err)
	}
	if loaded.Get(3) != nil {
		t.Error("cleared level survived the second save")
	}
	if loaded.Get(1) == nil {
		t.Error("kept level lost")
	}
}

func TestLoadEmptyDatabase(t *testing.T) {
	st, err := Open(":memory:", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	reg := style.NewRegistry()
	if err := reg.SetProperty(5, style.Bold, true); err != nil {
		t.Fatal(err)
	}
	if err := st.Load(reg); err != nil {
		t.Fatal(err)
	}
	// hydrate from an empty snapshot empties the registry
	if reg.Get(5) != nil {
		t.Error("stale level survived hydration from empty storage")
	}
}

func TestDefinitionCodecRoundTrip(t *testing.T) {
	in := &style.Definition{
		LineHeight:      ptr(1.4),
		LetterSpacing:   ptr(-0.2),
		TextColor:       ptr("#1a1a1a"),
		BackgroundColor: ptr("#ffffee"),
		Underline:       ptr(false),
	}
	blob, err := encodeDefinition(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := decodeDefinition(blob)
	if err != nil {
		t.Fatal(err)
	}
	if out.LineHeight == nil || *out.LineHeight != 1.4 {
		t.Errorf("lineHeight = %v", out.LineHeight)
	}
	if out.LetterSpacing == nil || *out.LetterSpacing != -0.2 {
		t.Errorf("letterSpacing = %v", out.LetterSpacing)
	}
	if out.TextColor == nil || *out.TextColor != "#1a1a1a" {
		t.Errorf("textColor = %v", out.TextColor)
	}
	if out.Underline == nil || *out.Underline != false {
		t.Errorf("underline = %v", out.Underline)
	}
	// absent stays absent
	if out.FontFamily != nil || out.Divider != nil {
		t.Errorf("absent fields materialized: %+v", out)
	}
}
