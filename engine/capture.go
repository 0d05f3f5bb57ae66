package engine

import (
	"go.uber.org/zap"

	"scribe/style"
)

// CaptureBlockStyle builds a full style snapshot from the block under the
// selection anchor. Sources are scanned per property in priority order and
// the first non-null value sticks:
//
//  1. every text run of the block, in document order
//  2. the cursor's own staged marks (an empty block with marks staged
//     for the next input still has a look worth capturing)
//  3. the block's own block scoped attributes
//  4. the rendered appearance of the block - ambient/default styling that
//     no explicit mark or attribute carries, with colors canonicalized and
//     line height as a unitless ratio
//
// A block whose runs disagree on a property captures the first run's value;
// that is the documented behavior of the snapshot, not an error.
func (e *Engine) CaptureBlockStyle(ctx *Context) *style.Snapshot {
	snap := style.NewSnapshot()
	if ctx == nil || ctx.anchor == nil {
		return snap
	}

	for _, r := range ctx.anchor.Runs {
		for _, p := range style.InlineProperties {
			if v, ok := r.Marks[p]; ok {
				snap.SetIfAbsent(p, v)
			}
		}
	}

	for _, p := range style.InlineProperties {
		if v, ok := e.doc.CursorMarks()[p]; ok {
			snap.SetIfAbsent(p, v)
		}
	}

	for _, p := range style.BlockProperties {
		if v, ok := ctx.anchor.Attrs[p]; ok {
			snap.SetIfAbsent(p, v)
		}
	}

	if e.styler != nil {
		rendered := e.styler.Rendered(ctx.anchor.Kind, ctx.anchor.Level)
		for _, p := range style.InlineProperties {
			if v, ok := rendered.Get(p); ok {
				snap.SetIfAbsent(p, v)
			}
		}
		for _, p := range style.BlockProperties {
			if v, ok := rendered.Get(p); ok {
				snap.SetIfAbsent(p, v)
			}
		}
	}

	e.log.Debug("Captured block style",
		zap.String("block", string(ctx.anchor.ID)),
		zap.Int("properties", snap.Len()))
	return snap
}
