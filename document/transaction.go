package document

import (
	"fmt"

	"scribe/style"
)

// Edit is a single discrete operation inside a transaction.
type Edit interface {
	apply(d *Document) error
}

// Transaction is an ordered list of edits committed as one atomic unit.
// Either every edit applies or the document is left untouched.
type Transaction struct {
	edits []Edit
}

// NewTransaction returns an empty transaction.
func NewTransaction() *Transaction {
	return &Transaction{}
}

// Add appends edits, returning the transaction for chaining.
func (t *Transaction) Add(edits ...Edit) *Transaction {
	t.edits = append(t.edits, edits...)
	return t
}

// Len returns the number of queued edits.
func (t *Transaction) Len() int {
	if t == nil {
		return 0
	}
	return len(t.edits)
}

// AddMark sets an inline mark over a text range.
type AddMark struct {
	Range    Selection
	Property style.Property
	Value    any
}

func (e AddMark) apply(d *Document) error {
	if e.Value == nil {
		return fmt.Errorf("add mark %s: nil value", e.Property)
	}
	return d.eachSelectedSpan(e.Range, func(b *Block, start, end int) {
		b.applyMark(start, end, e.Property, e.Value)
	})
}

// RemoveMark removes an inline mark from a text range.
type RemoveMark struct {
	Range    Selection
	Property style.Property
}

func (e RemoveMark) apply(d *Document) error {
	return d.eachSelectedSpan(e.Range, func(b *Block, start, end int) {
		b.applyMark(start, end, e.Property, nil)
	})
}

// ClearBlockMark removes an inline mark from every run of a block.
type ClearBlockMark struct {
	Block    BlockID
	Property style.Property
}

func (e ClearBlockMark) apply(d *Document) error {
	b, ok := d.lookup(e.Block)
	if !ok {
		return fmt.Errorf("clear mark %s: unknown block %s", e.Property, e.Block)
	}
	b.clearMark(e.Property)
	return nil
}

// SetBlockAttr sets a block scoped attribute.
type SetBlockAttr struct {
	Block    BlockID
	Property style.Property
	Value    any
}

func (e SetBlockAttr) apply(d *Document) error {
	b, ok := d.lookup(e.Block)
	if !ok {
		return fmt.Errorf("set attribute %s: unknown block %s", e.Property, e.Block)
	}
	if b.Attrs == nil {
		b.Attrs = make(Attributes)
	}
	b.Attrs[e.Property] = e.Value
	return nil
}

// RemoveBlockAttr removes a block scoped attribute.
type RemoveBlockAttr struct {
	Block    BlockID
	Property style.Property
}

func (e RemoveBlockAttr) apply(d *Document) error {
	b, ok := d.lookup(e.Block)
	if !ok {
		return fmt.Errorf("remove attribute %s: unknown block %s", e.Property, e.Block)
	}
	delete(b.Attrs, e.Property)
	return nil
}

// StageCursorMark stages a mark at the cursor so it applies to the next
// typed input. Used when writing inline properties on an empty selection.
type StageCursorMark struct {
	Property style.Property
	Value    any
}

func (e StageCursorMark) apply(d *Document) error {
	if d.cursorMarks == nil {
		d.cursorMarks = make(Marks)
	}
	if e.Value == nil {
		delete(d.cursorMarks, e.Property)
	} else {
		d.cursorMarks[e.Property] = e.Value
	}
	return nil
}
