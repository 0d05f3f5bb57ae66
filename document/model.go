// Package document implements the block/run document model the style engine
// operates on: an in-memory reference realization of the host editor's
// document API. Blocks own runs, runs own mark sets, and every mutation goes
// through an atomic transaction so undo/redo style consumers always observe
// the document in the state left by the most recently completed transaction.
package document

import (
	"strings"

	"github.com/google/uuid"

	"scribe/style"
)

// BlockKind classifies a structural node of the document tree.
type BlockKind int

const (
	KindParagraph BlockKind = iota
	KindHeading
	KindTableCell
	KindCodeBlock
	KindOther
)

func (k BlockKind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindHeading:
		return "heading"
	case KindTableCell:
		return "tableCell"
	case KindCodeBlock:
		return "codeBlock"
	default:
		return "other"
	}
}

// ParseBlockKind maps a textual kind back to BlockKind, defaulting to other.
func ParseBlockKind(s string) BlockKind {
	switch s {
	case "paragraph":
		return KindParagraph
	case "heading":
		return KindHeading
	case "tableCell":
		return KindTableCell
	case "codeBlock":
		return KindCodeBlock
	default:
		return KindOther
	}
}

// BlockID identifies a block for the lifetime of the document.
type BlockID string

// NewBlockID mints a fresh block identity. V7 keeps ids sortable by creation
// time which makes debug output stable.
func NewBlockID() BlockID {
	if id, err := uuid.NewV7(); err == nil {
		return BlockID(id.String())
	}
	return BlockID(uuid.New().String())
}

// Marks is a mark set: property name to value mapping carried by a run.
type Marks map[style.Property]any

// Clone returns an independent copy.
func (m Marks) Clone() Marks {
	if m == nil {
		return nil
	}
	c := make(Marks, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// Equal reports whether two mark sets carry identical marks.
func (m Marks) Equal(other Marks) bool {
	if len(m) != len(other) {
		return false
	}
	for k, v := range m {
		if ov, ok := other[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Attributes is the block scoped property bag, independent of inline runs.
type Attributes map[style.Property]any

// Clone returns an independent copy.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	c := make(Attributes, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

// Run is a maximal span of text inside a block sharing the same mark set.
type Run struct {
	Text  string
	Marks Marks
}

// Len returns run length in runes.
func (r Run) Len() int {
	return len([]rune(r.Text))
}

// Block is a node in the document tree.
type Block struct {
	ID    BlockID
	Kind  BlockKind
	Level int // heading level 1..6, meaningful only for KindHeading
	Attrs Attributes
	Runs  []Run
}

// NewBlock creates a block of the given kind with a fresh identity.
func NewBlock(kind BlockKind, level int, text string) *Block {
	b := &Block{ID: NewBlockID(), Kind: kind, Level: level, Attrs: make(Attributes)}
	if len(text) > 0 {
		b.Runs = []Run{{Text: text, Marks: make(Marks)}}
	}
	return b
}

// Text returns the block's plain text.
func (b *Block) Text() string {
	var sb strings.Builder
	for _, r := range b.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Len returns block text length in runes.
func (b *Block) Len() int {
	n := 0
	for _, r := range b.Runs {
		n += r.Len()
	}
	return n
}

// Clone deep copies the block.
func (b *Block) Clone() *Block {
	c := &Block{ID: b.ID, Kind: b.Kind, Level: b.Level, Attrs: b.Attrs.Clone()}
	c.Runs = make([]Run, len(b.Runs))
	for i, r := range b.Runs {
		c.Runs[i] = Run{Text: r.Text, Marks: r.Marks.Clone()}
	}
	return c
}

// normalize merges adjacent runs with identical mark sets and drops empty
// runs, restoring the "maximal span" invariant after an edit.
func (b *Block) normalize() {
	if len(b.Runs) == 0 {
		return
	}
	out := b.Runs[:0]
	for _, r := range b.Runs {
		if len(r.Text) == 0 {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Marks.Equal(r.Marks) {
			out[n-1].Text += r.Text
			continue
		}
		out = append(out, r)
	}
	b.Runs = out
}

// splitAt ensures a run boundary exists at the given rune offset.
func (b *Block) splitAt(offset int) {
	if offset <= 0 || offset >= b.Len() {
		return
	}
	pos := 0
	for i, r := range b.Runs {
		rl := r.Len()
		if offset < pos+rl {
			if offset == pos {
				return // already a boundary
			}
			head := string([]rune(r.Text)[:offset-pos])
			tail := string([]rune(r.Text)[offset-pos:])
			split := []Run{
				{Text: head, Marks: r.Marks.Clone()},
				{Text: tail, Marks: r.Marks.Clone()},
			}
			b.Runs = append(b.Runs[:i], append(split, b.Runs[i+1:]...)...)
			return
		}
		pos += rl
	}
}

// applyMark sets (or removes, when value is nil) a mark over the rune range
// [start, end) of the block, splitting runs at the boundaries.
func (b *Block) applyMark(start, end int, p style.Property, value any) {
	if start >= end {
		return
	}
	b.splitAt(start)
	b.splitAt(end)
	pos := 0
	for i := range b.Runs {
		rl := b.Runs[i].Len()
		if pos >= start && pos+rl <= end {
			if b.Runs[i].Marks == nil {
				b.Runs[i].Marks = make(Marks)
			}
			if value == nil {
				delete(b.Runs[i].Marks, p)
			} else {
				b.Runs[i].Marks[p] = value
			}
		}
		pos += rl
	}
	b.normalize()
}

// clearMark removes the mark from every run of the block.
func (b *Block) clearMark(p style.Property) {
	for i := range b.Runs {
		delete(b.Runs[i].Marks, p)
	}
	b.normalize()
}

// hasMark reports whether any run of the block carries the mark.
func (b *Block) hasMark(p style.Property) bool {
	for _, r := range b.Runs {
		if _, ok := r.Marks[p]; ok {
			return true
		}
	}
	return false
}
