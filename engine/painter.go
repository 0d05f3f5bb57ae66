package engine

import (
	"go.uber.org/zap"

	"scribe/document"
	"scribe/style"
)

// PainterMode selects how the armed painter behaves after an apply.
type PainterMode int

const (
	// ModeToggle disarms after one apply.
	ModeToggle PainterMode = iota
	// ModeHold stays armed and applies repeatedly until the hold
	// modifier is released.
	ModeHold
)

func (m PainterMode) String() string {
	if m == ModeHold {
		return "hold"
	}
	return "toggle"
}

// painterState is the tagged state of the painter machine. Keeping it a
// single value (instead of active/mode/modifier booleans kept consistent by
// convention) means every transition is explicit.
type painterState int

const (
	stateIdle painterState = iota
	stateArmed
)

// Painter captures a style snapshot from one selection and re-applies the
// identical property set to later selections.
//
// States: idle, armed(toggle), armed(hold).
//
//	idle   --Capture(non-empty selection)--> armed(toggle)
//	armed(toggle) --Apply--> idle
//	armed(*)      --HoldDown--> armed(hold)
//	armed(hold)   --Apply--> armed(hold)
//	armed(hold)   --HoldUp--> idle
//	any           --Deactivate (Escape)--> idle
type Painter struct {
	eng      *Engine
	state    painterState
	mode     PainterMode
	snapshot *style.Snapshot
}

// NewPainter returns an idle painter bound to the engine.
func (e *Engine) NewPainter() *Painter {
	return &Painter{eng: e}
}

// Active reports whether the painter is armed.
func (p *Painter) Active() bool {
	return p.state == stateArmed
}

// Mode returns the current interaction mode, meaningful while armed.
func (p *Painter) Mode() PainterMode {
	return p.mode
}

// Snapshot returns the stored snapshot, nil while idle.
func (p *Painter) Snapshot() *style.Snapshot {
	if p.state != stateArmed {
		return nil
	}
	return p.snapshot
}

// Capture snapshots the block under the current selection and arms the
// painter in toggle mode. Capturing from an empty selection is a no-op -
// there is nothing to capture.
func (p *Painter) Capture() bool {
	sel := p.eng.doc.Selection()
	if sel.Empty() {
		return false
	}
	ctx := p.eng.Context()
	if ctx == nil {
		return false
	}
	p.snapshot = p.eng.CaptureBlockStyle(ctx)
	p.state = stateArmed
	p.mode = ModeToggle
	p.eng.log.Debug("Format painter armed", zap.Int("properties", p.snapshot.Len()))
	return true
}

// HoldDown switches an armed painter into hold mode (modifier pressed).
func (p *Painter) HoldDown() {
	if p.state == stateArmed {
		p.mode = ModeHold
	}
}

// HoldUp releases the hold modifier, disarming the painter.
func (p *Painter) HoldUp() {
	if p.state == stateArmed && p.mode == ModeHold {
		p.reset()
	}
}

// Deactivate discards the snapshot and returns to idle (Escape).
func (p *Painter) Deactivate() {
	p.reset()
}

func (p *Painter) reset() {
	p.state = stateIdle
	p.mode = ModeToggle
	p.snapshot = nil
}

// Apply writes every property of the stored snapshot to the current
// selection as one atomic transaction. An empty target selection expands to
// the word under the cursor; when no word is found, or the painter is not
// armed, Apply is a no-op. In toggle mode a successful apply disarms the
// painter; in hold mode it stays armed.
func (p *Painter) Apply() error {
	if p.state != stateArmed || p.snapshot == nil || p.snapshot.Len() == 0 {
		return nil
	}

	target := p.eng.doc.Selection()
	if target.Empty() {
		word, ok := p.eng.doc.WordAt(target.Anchor)
		if !ok {
			return nil
		}
		target = word
	}

	ctx := p.eng.Context()
	if ctx == nil {
		return nil
	}

	tx := document.NewTransaction()
	for _, prop := range p.snapshot.Properties() {
		v, _ := p.snapshot.Get(prop)
		p.eng.addInstanceWrite(tx, ctx, target, prop, v)
	}
	if err := p.eng.doc.Dispatch(tx); err != nil {
		return err
	}

	if p.mode == ModeToggle {
		p.reset()
	}
	return nil
}
