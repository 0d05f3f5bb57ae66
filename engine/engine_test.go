package engine

import (
	"scribe/document"
	"scribe/style"
	"scribe/theme"
)

// fakeStyler returns a fixed appearance for every block, keeping the
// rendered fallback under test control.
type fakeStyler struct {
	a theme.Appearance
}

func (f fakeStyler) Rendered(document.BlockKind, int) theme.Appearance {
	return f.a
}

func newTestEngine(doc *document.Document) *Engine {
	return New(doc, style.NewRegistry(), fakeStyler{}, nil)
}

func markedRun(text string, marks document.Marks) document.Run {
	return document.Run{Text: text, Marks: marks}
}

func headingBlock(level int, runs ...document.Run) *document.Block {
	b := document.NewBlock(document.KindHeading, level, "")
	b.Runs = runs
	return b
}

func paragraphBlock(runs ...document.Run) *document.Block {
	b := document.NewBlock(document.KindParagraph, 0, "")
	b.Runs = runs
	return b
}
