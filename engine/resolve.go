package engine

import "scribe/style"

// resolverFunc is one authority in the priority chain. It answers with a
// value and its source, or reports that the authority has no opinion.
type resolverFunc func(ctx *Context, p style.Property) (any, style.Source, bool)

// resolvers returns the authority chain in priority order: instance mark,
// heading level shared definition, block attribute. First match wins; the
// caller supplied default closes the chain.
func (e *Engine) resolvers() []resolverFunc {
	return []resolverFunc{
		e.resolveInstanceMark,
		e.resolveHeadingShared,
		e.resolveBlockAttribute,
	}
}

// ReadStyle resolves the current value of a property under the given
// context. A nil context (no selection, no document) degrades to the
// caller supplied default - reads never fail.
func (e *Engine) ReadStyle(ctx *Context, p style.Property, def any) style.Value {
	out := style.Value{Property: p, Value: def, Source: style.SourceDefault}
	if ctx == nil {
		return out
	}
	for _, resolve := range e.resolvers() {
		if v, src, ok := resolve(ctx, p); ok {
			out.Value = v
			out.Source = src
			return out
		}
	}
	return out
}

func (e *Engine) resolveInstanceMark(ctx *Context, p style.Property) (any, style.Source, bool) {
	if !p.IsInline() {
		return nil, 0, false
	}
	if v, ok := e.markValue(ctx, p); ok {
		return v, style.SourceInstanceMark, true
	}
	return nil, 0, false
}

func (e *Engine) resolveHeadingShared(ctx *Context, p style.Property) (any, style.Source, bool) {
	if ctx.Mixed || ctx.HeadingLevel == 0 || e.reg == nil {
		return nil, 0, false
	}
	if v, ok := e.reg.GetProperty(ctx.HeadingLevel, p); ok {
		return v, style.SourceHeadingLevelShared, true
	}
	return nil, 0, false
}

func (e *Engine) resolveBlockAttribute(ctx *Context, p style.Property) (any, style.Source, bool) {
	if ctx.Mixed || ctx.anchor == nil || ctx.anchor.Attrs == nil {
		return nil, 0, false
	}
	if v, ok := ctx.anchor.Attrs[p]; ok {
		return v, style.SourceBlockAttribute, true
	}
	return nil, 0, false
}
