package deepentry

// Slot represents a mutable reference to a resolved, present value.
// A slot reads and writes through the container chain it was resolved from,
// so it must not be kept once the containers above it are modified elsewhere.
type Slot[V any] struct {
	get func() V
	set func(V)
}

// Get returns slot value
func (s *Slot[V]) Get() V {
	return s.get()
}

// Set replaces slot value
func (s *Slot[V]) Set(value V) {
	s.set(value)
}

// Update replaces slot value with fn result, it returns the new value
func (s *Slot[V]) Update(fn func(value V) V) V {
	value := fn(s.get())
	s.set(value)
	return value
}

func newSlot[V any](get func() V, set func(V)) *Slot[V] {
	return &Slot[V]{get: get, set: set}
}
