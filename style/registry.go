package style

import "fmt"

// Registry holds at most one shared style definition per heading level.
// It is the only mutable shared resource of the engine: hydrated at document
// open, mutated by user actions, serialized at save. All mutation funnels
// through the operations below and every one of them bumps the version and
// notifies subscribers, so UI reflecting heading level styles stays live.
//
// The registry itself never touches storage - persistence is a collaborator
// (see the store package).
//
// NOTE: like the rest of the engine this is single threaded by contract,
// everything runs on the thread owning the document.
type Registry struct {
	levels  map[int]*Definition
	version int64
	subs    map[int]func()
	nextSub int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		levels: make(map[int]*Definition),
		subs:   make(map[int]func()),
	}
}

func validLevel(level int) bool {
	return level >= MinHeadingLevel && level <= MaxHeadingLevel
}

// Get returns the definition for a heading level or nil when the level has
// not been customized. The returned value is owned by the registry, callers
// must not mutate it.
func (r *Registry) Get(level int) *Definition {
	if !validLevel(level) {
		return nil
	}
	return r.levels[level]
}

// GetProperty returns the registry's opinion on a single property at a level.
func (r *Registry) GetProperty(level int, p Property) (any, bool) {
	return r.Get(level).Get(p)
}

// Set installs a definition for a heading level, replacing any previous one.
func (r *Registry) Set(level int, def *Definition) error {
	if !validLevel(level) {
		return fmt.Errorf("heading level %d out of range", level)
	}
	if def != nil && def.Divider != nil {
		if err := def.Divider.Validate(); err != nil {
			return err
		}
	}
	if def.Empty() {
		delete(r.levels, level)
	} else {
		r.levels[level] = def.Clone()
	}
	r.bump()
	return nil
}

// SetProperty updates a single property of a level's definition, creating the
// definition on first customization.
func (r *Registry) SetProperty(level int, p Property, value any) error {
	if !validLevel(level) {
		return fmt.Errorf("heading level %d out of range", level)
	}
	def := r.levels[level]
	if def == nil {
		def = &Definition{}
		r.levels[level] = def
	}
	def.Set(p, value)
	r.bump()
	return nil
}

// ClearProperty drops a single property opinion. Removing the last opinion
// removes the definition. Clearing what is not there is a no-op.
func (r *Registry) ClearProperty(level int, p Property) {
	def := r.Get(level)
	if def == nil {
		return
	}
	if _, ok := def.Get(p); !ok {
		return
	}
	def.Unset(p)
	if def.Empty() {
		delete(r.levels, level)
	}
	r.bump()
}

// Clear removes the whole definition for a level. Idempotent.
func (r *Registry) Clear(level int) {
	if _, exists := r.levels[level]; !exists {
		return
	}
	delete(r.levels, level)
	r.bump()
}

// SetDivider installs the divider configuration for a level.
func (r *Registry) SetDivider(level int, div Divider) error {
	if !validLevel(level) {
		return fmt.Errorf("heading level %d out of range", level)
	}
	if err := div.Validate(); err != nil {
		return err
	}
	def := r.levels[level]
	if def == nil {
		def = &Definition{}
		r.levels[level] = def
	}
	d := div
	def.Divider = &d
	r.bump()
	return nil
}

// ClearDivider drops the divider configuration for a level. Idempotent.
func (r *Registry) ClearDivider(level int) {
	def := r.Get(level)
	if def == nil || def.Divider == nil {
		return
	}
	def.Divider = nil
	if def.Empty() {
		delete(r.levels, level)
	}
	r.bump()
}

// Hydrate replaces registry content wholesale, used when loading persisted
// state at document open. Levels out of range and empty definitions are
// silently dropped - absence is a valid value.
func (r *Registry) Hydrate(levels map[int]*Definition) {
	r.levels = make(map[int]*Definition, len(levels))
	for level, def := range levels {
		if !validLevel(level) || def.Empty() {
			continue
		}
		r.levels[level] = def.Clone()
	}
	r.bump()
}

// Export deep copies registry content for persistence.
func (r *Registry) Export() map[int]*Definition {
	out := make(map[int]*Definition, len(r.levels))
	for level, def := range r.levels {
		out[level] = def.Clone()
	}
	return out
}

// Version increases on every mutation. Readers caching resolved values must
// re-query whenever it changes.
func (r *Registry) Version() int64 {
	return r.version
}

// Subscribe registers a change callback invoked synchronously on every
// mutation. The returned func removes the subscription.
func (r *Registry) Subscribe(fn func()) (cancel func()) {
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	return func() { delete(r.subs, id) }
}

func (r *Registry) bump() {
	r.version++
	for _, fn := range r.subs {
		fn()
	}
}
