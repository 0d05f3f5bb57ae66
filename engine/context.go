package engine

import (
	"scribe/document"
	"scribe/style"
)

// Context classifies the current selection. It is ephemeral: recomputed on
// every selection change, never cached across document mutations.
type Context struct {
	Kind           document.BlockKind
	HeadingLevel   int // 1..6, 0 when the anchor is not a heading
	MultiBlock     bool
	SelectionEmpty bool

	// Mixed is set when a multi-block selection spans different block
	// kinds (or heading levels). Reads then treat shared and block
	// authorities as ambiguous and fall through to the default.
	Mixed bool

	anchor *document.Block
	blocks []*document.Block
}

// Context resolves the current selection into a style context. Returns nil
// when there is no selection to classify - the only failure mode.
func (e *Engine) Context() *Context {
	if e.doc == nil {
		return nil
	}
	sel := e.doc.Selection()
	anchor, ok := e.doc.Block(sel.Anchor.Block)
	if !ok {
		return nil
	}
	blocks := e.doc.SelectedBlocks()
	if len(blocks) == 0 {
		blocks = []*document.Block{anchor}
	}

	ctx := &Context{
		Kind:           anchor.Kind,
		MultiBlock:     len(blocks) > 1,
		SelectionEmpty: sel.Empty(),
		anchor:         anchor,
		blocks:         blocks,
	}
	if anchor.Kind == document.KindHeading {
		ctx.HeadingLevel = anchor.Level
	}

	// A multi-block selection only presents a single authority when every
	// selected block agrees on kind (and level, for headings).
	for _, b := range blocks {
		if b.Kind != anchor.Kind || (b.Kind == document.KindHeading && b.Level != anchor.Level) {
			ctx.Mixed = true
			ctx.HeadingLevel = 0
			break
		}
	}
	return ctx
}

// cursorMarks returns the effective mark set at the cursor: marks staged for
// the next input override the marks of the run the cursor sits in.
func (e *Engine) cursorMarks(ctx *Context) document.Marks {
	out := make(document.Marks)
	if ctx.anchor != nil {
		if m := runMarksAt(ctx.anchor, e.doc.Selection().Anchor.Offset); m != nil {
			for k, v := range m {
				out[k] = v
			}
		}
	}
	for k, v := range e.doc.CursorMarks() {
		out[k] = v
	}
	return out
}

// runMarksAt finds the mark set governing a cursor offset: the run the
// offset falls into, or the run ending exactly at it - typing continues the
// preceding run's marks.
func runMarksAt(b *document.Block, offset int) document.Marks {
	if len(b.Runs) == 0 {
		return nil
	}
	pos := 0
	for i, r := range b.Runs {
		rl := r.Len()
		if offset > pos && offset <= pos+rl {
			return b.Runs[i].Marks
		}
		pos += rl
	}
	if offset == 0 {
		return b.Runs[0].Marks
	}
	return nil
}

// runRangeAt returns the rune range of the run governing a cursor offset,
// mirroring runMarksAt.
func runRangeAt(b *document.Block, offset int) (start, end int, ok bool) {
	if b == nil || len(b.Runs) == 0 {
		return 0, 0, false
	}
	pos := 0
	for _, r := range b.Runs {
		rl := r.Len()
		if offset > pos && offset <= pos+rl {
			return pos, pos + rl, true
		}
		pos += rl
	}
	if offset == 0 {
		return 0, b.Runs[0].Len(), true
	}
	return 0, 0, false
}

// markValue scans mark sources for an explicit inline mark. For a cursor the
// cursor state answers; for a range every overlapped run must agree -
// mixed selections never report a single inline value as authoritative.
func (e *Engine) markValue(ctx *Context, p style.Property) (any, bool) {
	if ctx.SelectionEmpty {
		v, ok := e.cursorMarks(ctx)[p]
		return v, ok
	}
	runs := e.doc.SelectedRuns()
	if len(runs) == 0 {
		return nil, false
	}
	first, ok := runs[0].Marks[p]
	if !ok {
		return nil, false
	}
	for _, r := range runs[1:] {
		v, ok := r.Marks[p]
		if !ok || v != first {
			return nil, false
		}
	}
	return first, true
}
