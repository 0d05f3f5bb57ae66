package engine

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"scribe/document"
	"scribe/style"
)

// ErrCannotToggle is returned when a boolean mark cannot be toggled in the
// current context: read-only document, disallowed block kind, or a property
// that is not a boolean mark at all.
var ErrCannotToggle = errors.New("mark cannot be toggled in this context")

// SetValue writes a property as an instance level override on the current
// selection: an inline mark for inline properties (staged at the cursor when
// the selection is empty), a block attribute for block scoped ones.
// Heading level shared writes go through AssignHeadingValue instead.
// A nil context makes the write a no-op.
func (e *Engine) SetValue(ctx *Context, p style.Property, value any) error {
	if ctx == nil || value == nil {
		return nil
	}
	tx := document.NewTransaction()
	e.addInstanceWrite(tx, ctx, e.doc.Selection(), p, value)
	if tx.Len() == 0 {
		return nil
	}
	return e.doc.Dispatch(tx)
}

// addInstanceWrite queues the edits an instance level write needs, against
// an explicit target selection so the format painter can reuse it.
func (e *Engine) addInstanceWrite(tx *document.Transaction, ctx *Context, target document.Selection, p style.Property, value any) {
	if p.IsBlockScoped() && !p.IsBoolean() {
		for _, b := range ctx.blocks {
			tx.Add(document.SetBlockAttr{Block: b.ID, Property: p, Value: value})
		}
		return
	}
	if !p.IsInline() {
		return
	}
	if target.Empty() {
		tx.Add(document.StageCursorMark{Property: p, Value: value})
		return
	}
	tx.Add(document.AddMark{Range: target, Property: p, Value: value})
}

// AssignHeadingValue routes a level-wide change: it records the new shared
// value for the heading level and strips the corresponding instance marks
// from every run inside every heading of that level, document-wide, in one
// atomic document transaction. Without the strip the assignment would be
// invisible - instance marks always win over the shared definition.
func (e *Engine) AssignHeadingValue(level int, p style.Property, value any) error {
	if level < style.MinHeadingLevel || level > style.MaxHeadingLevel {
		return fmt.Errorf("heading level %d out of range", level)
	}
	// reject before touching the registry, not only when the strip happens
	// to carry edits
	if e.doc.ReadOnly() {
		return document.ErrReadOnly
	}
	tx := document.NewTransaction()
	e.addHeadingStrip(tx, level, p)
	if err := e.doc.Dispatch(tx); err != nil {
		return fmt.Errorf("stripping %s overrides for level %d: %w", p, level, err)
	}
	if err := e.reg.SetProperty(level, p, value); err != nil {
		return err
	}
	e.log.Debug("Assigned heading level value",
		zap.Int("level", level), zap.String("property", string(p)))
	return nil
}

// AssignHeadingStyle promotes a whole snapshot (typically captured from an
// existing block) into the shared definition of a heading level, stripping
// conflicting instance marks for every property the snapshot carries.
func (e *Engine) AssignHeadingStyle(level int, snap *style.Snapshot) error {
	if level < style.MinHeadingLevel || level > style.MaxHeadingLevel {
		return fmt.Errorf("heading level %d out of range", level)
	}
	if e.doc.ReadOnly() {
		return document.ErrReadOnly
	}
	if snap.Len() == 0 {
		return nil
	}
	tx := document.NewTransaction()
	for _, p := range snap.Properties() {
		e.addHeadingStrip(tx, level, p)
	}
	if err := e.doc.Dispatch(tx); err != nil {
		return fmt.Errorf("stripping overrides for level %d: %w", level, err)
	}
	if err := e.reg.Set(level, snap.Definition()); err != nil {
		return err
	}
	e.log.Debug("Assigned heading level style",
		zap.Int("level", level), zap.Int("properties", snap.Len()))
	return nil
}

// addHeadingStrip queues removal of an inline mark from every heading block
// of the level that actually carries it.
func (e *Engine) addHeadingStrip(tx *document.Transaction, level int, p style.Property) {
	if !p.IsInline() {
		return
	}
	for _, b := range e.doc.HeadingBlocks(level) {
		for _, r := range b.Runs {
			if _, ok := r.Marks[p]; ok {
				tx.Add(document.ClearBlockMark{Block: b.ID, Property: p})
				break
			}
		}
	}
}

// ClearValue removes the most specific authority currently answering for
// the property, following the same priority order reads use: instance mark
// first, then the heading level shared value, then the block attribute.
// Clearing what is not there is a no-op, so the operation is idempotent.
func (e *Engine) ClearValue(ctx *Context, p style.Property) error {
	if ctx == nil {
		return nil
	}

	if _, _, ok := e.resolveInstanceMark(ctx, p); ok {
		tx := document.NewTransaction()
		if ctx.SelectionEmpty {
			// drop the staged mark and the mark of the run the cursor
			// sits in; other runs of the block keep their overrides
			tx.Add(document.StageCursorMark{Property: p, Value: nil})
			if start, end, ok := runRangeAt(ctx.anchor, e.doc.Selection().Anchor.Offset); ok {
				tx.Add(document.RemoveMark{Range: document.Range(ctx.anchor.ID, start, end), Property: p})
			}
		} else {
			tx.Add(document.RemoveMark{Range: e.doc.Selection(), Property: p})
		}
		return e.doc.Dispatch(tx)
	}

	if _, _, ok := e.resolveHeadingShared(ctx, p); ok {
		e.reg.ClearProperty(ctx.HeadingLevel, p)
		return nil
	}

	if _, _, ok := e.resolveBlockAttribute(ctx, p); ok {
		tx := document.NewTransaction()
		for _, b := range ctx.blocks {
			tx.Add(document.RemoveBlockAttr{Block: b.ID, Property: p})
		}
		return e.doc.Dispatch(tx)
	}
	return nil
}

// CanToggle reports whether a boolean mark may be toggled under the context:
// false for non-boolean properties, read-only documents and block kinds
// that forbid emphasis (code blocks keep their verbatim text plain).
func (e *Engine) CanToggle(ctx *Context, p style.Property) bool {
	if ctx == nil || !p.IsBoolean() {
		return false
	}
	if e.doc.ReadOnly() {
		return false
	}
	if ctx.Kind == document.KindCodeBlock && p != style.Code {
		return false
	}
	return true
}

// Toggle flips a boolean mark: it reads the current state through the full
// priority chain and writes the negation as an instance level override.
// Returns the new state.
func (e *Engine) Toggle(ctx *Context, p style.Property) (bool, error) {
	if !e.CanToggle(ctx, p) {
		return false, ErrCannotToggle
	}
	current, _ := e.ReadStyle(ctx, p, false).Value.(bool)
	next := !current
	if err := e.SetValue(ctx, p, next); err != nil {
		return current, multierr.Append(fmt.Errorf("toggling %s", p), err)
	}
	return next, nil
}
