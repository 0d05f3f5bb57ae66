package engine

import (
	"testing"

	"scribe/document"
	"scribe/style"
)

func TestContextClassification(t *testing.T) {
	p := paragraphBlock(markedRun("plain text", nil))
	h := headingBlock(3, markedRun("title", nil))
	h2 := headingBlock(3, markedRun("another", nil))
	cell := document.NewBlock(document.KindTableCell, 0, "cell")
	doc := document.New(p, h, h2, cell)
	eng := newTestEngine(doc)

	tests := []struct {
		name      string
		sel       document.Selection
		wantKind  document.BlockKind
		wantLevel int
		wantMulti bool
		wantMixed bool
		wantEmpty bool
	}{
		{"cursor in paragraph", document.Cursor(p.ID, 2), document.KindParagraph, 0, false, false, true},
		{"range in heading", document.Range(h.ID, 0, 5), document.KindHeading, 3, false, false, false},
		{"cursor in table cell", document.Cursor(cell.ID, 0), document.KindTableCell, 0, false, false, true},
		{
			"two headings of one level",
			document.Selection{Anchor: document.Position{Block: h.ID, Offset: 0}, Head: document.Position{Block: h2.ID, Offset: 4}},
			document.KindHeading, 3, true, false, false,
		},
		{
			"paragraph and heading mixed",
			document.Selection{Anchor: document.Position{Block: p.ID, Offset: 0}, Head: document.Position{Block: h.ID, Offset: 2}},
			document.KindParagraph, 0, true, true, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := doc.SetSelection(tt.sel); err != nil {
				t.Fatal(err)
			}
			ctx := eng.Context()
			if ctx == nil {
				t.Fatal("context is nil")
			}
			if ctx.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", ctx.Kind, tt.wantKind)
			}
			if ctx.HeadingLevel != tt.wantLevel {
				t.Errorf("HeadingLevel = %d, want %d", ctx.HeadingLevel, tt.wantLevel)
			}
			if ctx.MultiBlock != tt.wantMulti {
				t.Errorf("MultiBlock = %v, want %v", ctx.MultiBlock, tt.wantMulti)
			}
			if ctx.Mixed != tt.wantMixed {
				t.Errorf("Mixed = %v, want %v", ctx.Mixed, tt.wantMixed)
			}
			if ctx.SelectionEmpty != tt.wantEmpty {
				t.Errorf("SelectionEmpty = %v, want %v", ctx.SelectionEmpty, tt.wantEmpty)
			}
		})
	}
}

func TestContextMixedHeadingLevels(t *testing.T) {
	h1 := headingBlock(1, markedRun("one", nil))
	h2 := headingBlock(2, markedRun("two", nil))
	doc := document.New(h1, h2)
	eng := newTestEngine(doc)

	sel := document.Selection{
		Anchor: document.Position{Block: h1.ID, Offset: 0},
		Head:   document.Position{Block: h2.ID, Offset: 3},
	}
	if err := doc.SetSelection(sel); err != nil {
		t.Fatal(err)
	}
	ctx := eng.Context()
	if !ctx.Mixed {
		t.Error("headings of different levels should classify as mixed")
	}
	if ctx.HeadingLevel != 0 {
		t.Errorf("mixed selection HeadingLevel = %d, want 0", ctx.HeadingLevel)
	}
}

func TestRunMarksAtCursor(t *testing.T) {
	b := paragraphBlock(
		markedRun("bold", document.Marks{style.Bold: true}),
		markedRun(" plain", nil),
	)

	tests := []struct {
		name     string
		offset   int
		wantBold bool
	}{
		{"start of block", 0, true},
		{"inside first run", 2, true},
		{"boundary continues previous run", 4, true},
		{"inside second run", 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := runMarksAt(b, tt.offset)
			_, got := m[style.Bold]
			if got != tt.wantBold {
				t.Errorf("bold at offset %d = %v, want %v", tt.offset, got, tt.wantBold)
			}
		})
	}
}
