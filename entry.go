package deepentry

type (
	//Entry represents a resolved leaf location that may or may not hold a value yet.
	//
	//All intermediate containers leading to the entry exist once the entry is returned.
	Entry[V any] interface {
		//OrInsert returns the existing slot, inserting value first if absent
		OrInsert(value V) *Slot[V]
		//OrInsertWith returns the existing slot, inserting fn() first if absent; fn is only called when absent
		OrInsertWith(fn func() V) *Slot[V]
		//OrDefault returns the existing slot, inserting the zero value first if absent
		OrDefault() *Slot[V]
		//AndModify replaces a present value with fn result, absent entries are left untouched
		AndModify(fn func(value V) V) Entry[V]
		//Exists returns true if leaf slot is present
		Exists() bool
	}

	mapEntry[K comparable, V any] struct {
		m   map[K]V
		key K
	}

	sliceEntry[T any] struct {
		holder *Slot[[]T]
		index  int
	}
)

func (e *mapEntry[K, V]) Exists() bool {
	_, ok := e.m[e.key]
	return ok
}

func (e *mapEntry[K, V]) OrInsert(value V) *Slot[V] {
	if !e.Exists() {
		e.m[e.key] = value
	}
	return e.slot()
}

func (e *mapEntry[K, V]) OrInsertWith(fn func() V) *Slot[V] {
	if !e.Exists() {
		e.m[e.key] = fn()
	}
	return e.slot()
}

func (e *mapEntry[K, V]) OrDefault() *Slot[V] {
	var zero V
	return e.OrInsert(zero)
}

func (e *mapEntry[K, V]) AndModify(fn func(value V) V) Entry[V] {
	if value, ok := e.m[e.key]; ok {
		e.m[e.key] = fn(value)
	}
	return e
}

func (e *mapEntry[K, V]) slot() *Slot[V] {
	m, key := e.m, e.key
	return newSlot(func() V { return m[key] }, func(v V) { m[key] = v })
}

func (e *sliceEntry[T]) Exists() bool {
	return e.index < len(e.holder.Get())
}

func (e *sliceEntry[T]) OrInsert(value T) *Slot[T] {
	if !e.Exists() {
		e.insert(value)
	}
	return e.slot()
}

func (e *sliceEntry[T]) OrInsertWith(fn func() T) *Slot[T] {
	if !e.Exists() {
		e.insert(fn())
	}
	return e.slot()
}

func (e *sliceEntry[T]) OrDefault() *Slot[T] {
	var zero T
	return e.OrInsert(zero)
}

func (e *sliceEntry[T]) AndModify(fn func(value T) T) Entry[T] {
	if e.Exists() {
		items := e.holder.Get()
		items[e.index] = fn(items[e.index])
	}
	return e
}

func (e *sliceEntry[T]) insert(value T) {
	items := grow(e.holder.Get(), e.index)
	items[e.index] = value
	e.holder.Set(items)
}

func (e *sliceEntry[T]) slot() *Slot[T] {
	holder, index := e.holder, e.index
	return newSlot(func() T { return holder.Get()[index] }, func(v T) { holder.Get()[index] = v })
}

// grow extends items with zero values so that index is within bounds, it never shrinks
func grow[T any](items []T, index int) []T {
	if index < len(items) {
		return items
	}
	return append(items, make([]T, index+1-len(items))...)
}
