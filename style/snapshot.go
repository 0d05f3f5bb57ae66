package style

// Snapshot is a captured bag of property values. It is the same shape as a
// heading level definition plus the boolean marks, and is used both to
// promote a block's look into a Definition and as the format painter payload.
type Snapshot struct {
	values map[Property]any
	order  []Property // capture order, first write wins
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{values: make(map[Property]any)}
}

// SetIfAbsent records a value for the property unless one was already
// captured. Capture scans sources in priority order and must never let a
// later, weaker source overwrite an earlier one.
func (s *Snapshot) SetIfAbsent(p Property, value any) {
	if value == nil {
		return
	}
	if _, exists := s.values[p]; exists {
		return
	}
	s.values[p] = value
	s.order = append(s.order, p)
}

// Get returns the captured value for a property.
func (s *Snapshot) Get(p Property) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.values[p]
	return v, ok
}

// Len returns the number of captured properties.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Properties returns captured properties in capture order.
func (s *Snapshot) Properties() []Property {
	if s == nil {
		return nil
	}
	out := make([]Property, len(s.order))
	copy(out, s.order)
	return out
}

// Definition converts the snapshot into a heading level definition.
func (s *Snapshot) Definition() *Definition {
	def := &Definition{}
	for _, p := range s.Properties() {
		def.Set(p, s.values[p])
	}
	return def
}

// SnapshotFromDefinition builds a snapshot carrying every opinion of def.
func SnapshotFromDefinition(def *Definition) *Snapshot {
	s := NewSnapshot()
	for _, p := range def.Properties() {
		if v, ok := def.Get(p); ok {
			s.SetIfAbsent(p, v)
		}
	}
	return s
}
