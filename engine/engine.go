// Package engine is the style resolution and propagation core: it presents
// one unambiguous current value for any property at any cursor position,
// attributes where that value came from, and routes every write to the
// correct authority - the instance marks on the document or the heading
// level shared definitions in the registry.
package engine

import (
	"go.uber.org/zap"

	"scribe/document"
	"scribe/style"
	"scribe/theme"
)

// Document is the slice of the host editor's document API the engine
// consumes. *document.Document satisfies it; a real host would adapt its own
// document model.
type Document interface {
	Selection() document.Selection
	Blocks() []*document.Block
	Block(document.BlockID) (*document.Block, bool)
	HeadingBlocks(level int) []*document.Block
	SelectedBlocks() []*document.Block
	SelectedRuns() []document.Run
	CursorMarks() document.Marks
	WordAt(document.Position) (document.Selection, bool)
	ReadOnly() bool
	Dispatch(*document.Transaction) error
}

var _ Document = (*document.Document)(nil)

// Engine binds the document, the style registry and the rendered-appearance
// lookup together. It holds no state of its own besides those collaborators;
// everything it reports is recomputed from them on demand.
type Engine struct {
	doc    Document
	reg    *style.Registry
	styler theme.Styler
	log    *zap.Logger
}

// New creates an engine. The registry and styler are injected rather than
// reached for, so tests and hosts can substitute their own.
func New(doc Document, reg *style.Registry, styler theme.Styler, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{doc: doc, reg: reg, styler: styler, log: log.Named("style-engine")}
}

// Registry exposes the injected registry for hydration and persistence.
func (e *Engine) Registry() *style.Registry {
	return e.reg
}
