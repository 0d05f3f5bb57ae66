package document

import (
	"errors"
	"fmt"

	"scribe/style"
)

// ErrReadOnly is returned by Dispatch when the document refuses mutation.
var ErrReadOnly = errors.New("document is read-only")

// Document is the in-memory reference document engine. It is single threaded
// by contract: everything runs on the thread owning the document, no locking.
type Document struct {
	blocks      []*Block
	index       map[BlockID]int
	sel         Selection
	cursorMarks Marks
	readOnly    bool
	version     int64
	subs        map[int]func()
	nextSub     int
}

// New builds a document from blocks in document order.
func New(blocks ...*Block) *Document {
	d := &Document{subs: make(map[int]func())}
	d.blocks = make([]*Block, 0, len(blocks))
	d.index = make(map[BlockID]int, len(blocks))
	for _, b := range blocks {
		b.normalize()
		d.index[b.ID] = len(d.blocks)
		d.blocks = append(d.blocks, b)
	}
	if len(d.blocks) > 0 {
		d.sel = Cursor(d.blocks[0].ID, 0)
	}
	return d
}

// SetReadOnly toggles mutation refusal.
func (d *Document) SetReadOnly(ro bool) {
	d.readOnly = ro
}

// ReadOnly reports whether the document refuses mutation.
func (d *Document) ReadOnly() bool {
	return d.readOnly
}

// Blocks returns blocks in document order. Callers must treat the result as
// read-only; all mutation goes through Dispatch.
func (d *Document) Blocks() []*Block {
	return d.blocks
}

// Block finds a block by id.
func (d *Document) Block(id BlockID) (*Block, bool) {
	return d.lookup(id)
}

func (d *Document) lookup(id BlockID) (*Block, bool) {
	i, ok := d.index[id]
	if !ok {
		return nil, false
	}
	return d.blocks[i], true
}

// HeadingBlocks returns every heading block of the given level, in document
// order. Used by the document-wide strip of the heading assign transaction.
func (d *Document) HeadingBlocks(level int) []*Block {
	var out []*Block
	for _, b := range d.blocks {
		if b.Kind == KindHeading && b.Level == level {
			out = append(out, b)
		}
	}
	return out
}

// Selection returns the current selection.
func (d *Document) Selection() Selection {
	return d.sel
}

// SetSelection moves the selection. Staged cursor marks are discarded, they
// belong to the previous cursor position.
func (d *Document) SetSelection(sel Selection) error {
	if _, ok := d.index[sel.Anchor.Block]; !ok {
		return fmt.Errorf("selection anchor in unknown block %s", sel.Anchor.Block)
	}
	if _, ok := d.index[sel.Head.Block]; !ok {
		return fmt.Errorf("selection head in unknown block %s", sel.Head.Block)
	}
	d.sel = sel
	d.cursorMarks = nil
	return nil
}

// CursorMarks returns marks staged at the cursor for the next input.
func (d *Document) CursorMarks() Marks {
	return d.cursorMarks
}

// SelectedBlocks returns the blocks the current selection touches, in
// document order. A cursor touches exactly its block.
func (d *Document) SelectedBlocks() []*Block {
	start, end, ok := d.selectionBlockRange(d.sel)
	if !ok {
		return nil
	}
	return d.blocks[start : end+1]
}

// SelectedRuns returns copies of the run fragments the current selection
// overlaps, in document order. Empty selections overlap nothing.
func (d *Document) SelectedRuns() []Run {
	if d.sel.Empty() {
		return nil
	}
	var out []Run
	_ = d.eachSelectedSpan(d.sel, func(b *Block, start, end int) {
		pos := 0
		for _, r := range b.Runs {
			rl := r.Len()
			lo, hi := max(start, pos), min(end, pos+rl)
			if lo < hi {
				text := []rune(r.Text)[lo-pos : hi-pos]
				out = append(out, Run{Text: string(text), Marks: r.Marks.Clone()})
			}
			pos += rl
		}
	})
	return out
}

// WordAt expands a position to the word under it. ok is false when the
// cursor does not touch a word.
func (d *Document) WordAt(pos Position) (Selection, bool) {
	b, found := d.lookup(pos.Block)
	if !found {
		return Selection{}, false
	}
	start, end, ok := wordAround([]rune(b.Text()), pos.Offset)
	if !ok {
		return Selection{}, false
	}
	return Range(b.ID, start, end), true
}

// Dispatch commits a transaction atomically: edits are applied to a private
// copy of the affected state and the document only observes the result when
// every edit succeeded. Readers never see a torn write.
func (d *Document) Dispatch(tx *Transaction) error {
	if tx == nil || tx.Len() == 0 {
		return nil
	}
	if d.readOnly {
		return ErrReadOnly
	}

	shadow := &Document{
		blocks:      make([]*Block, len(d.blocks)),
		index:       d.index,
		sel:         d.sel,
		cursorMarks: d.cursorMarks.Clone(),
	}
	for i, b := range d.blocks {
		shadow.blocks[i] = b.Clone()
	}

	for _, e := range tx.edits {
		if err := e.apply(shadow); err != nil {
			return err
		}
	}

	d.blocks = shadow.blocks
	d.cursorMarks = shadow.cursorMarks
	d.version++
	for _, fn := range d.subs {
		fn()
	}
	return nil
}

// Version increases on every committed transaction.
func (d *Document) Version() int64 {
	return d.version
}

// Subscribe registers a change callback fired synchronously after every
// committed transaction. The returned func removes the subscription.
func (d *Document) Subscribe(fn func()) (cancel func()) {
	id := d.nextSub
	d.nextSub++
	d.subs[id] = fn
	return func() { delete(d.subs, id) }
}

// selectionBlockRange orders a selection into [start, end] block indices.
func (d *Document) selectionBlockRange(sel Selection) (int, int, bool) {
	ai, ok := d.index[sel.Anchor.Block]
	if !ok {
		return 0, 0, false
	}
	hi, ok := d.index[sel.Head.Block]
	if !ok {
		return 0, 0, false
	}
	if ai > hi {
		ai, hi = hi, ai
	}
	return ai, hi, true
}

// eachSelectedSpan invokes fn once per block the selection overlaps with the
// ordered [start, end) rune range inside that block.
func (d *Document) eachSelectedSpan(sel Selection, fn func(b *Block, start, end int)) error {
	ai, ok := d.index[sel.Anchor.Block]
	if !ok {
		return fmt.Errorf("selection anchor in unknown block %s", sel.Anchor.Block)
	}
	hi, ok := d.index[sel.Head.Block]
	if !ok {
		return fmt.Errorf("selection head in unknown block %s", sel.Head.Block)
	}
	start, startOff := ai, sel.Anchor.Offset
	end, endOff := hi, sel.Head.Offset
	if start > end || (start == end && startOff > endOff) {
		start, end = end, start
		startOff, endOff = endOff, startOff
	}
	for i := start; i <= end; i++ {
		b := d.blocks[i]
		lo, hi := 0, b.Len()
		if i == start {
			lo = startOff
		}
		if i == end {
			hi = endOff
		}
		if lo < hi {
			fn(b, lo, hi)
		}
	}
	return nil
}

// AttributeOf reads one block scoped attribute.
func (d *Document) AttributeOf(id BlockID, p style.Property) (any, bool) {
	b, ok := d.lookup(id)
	if !ok || b.Attrs == nil {
		return nil, false
	}
	v, ok := b.Attrs[p]
	return v, ok
}
