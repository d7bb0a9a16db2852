package deepentry

type (
	//Path represents a composite key leading from container C to a leaf slot of type V.
	//
	//A path is either a scalar key (MapKey, Index) or a pair of a scalar key and a nested path
	//(KeyPath, IndexPath). Each level's key type is fixed by the container it addresses,
	//so a path whose shape disagrees with the container does not compile.
	Path[C, V any] interface {
		resolve(holder *Slot[C]) Entry[V]
	}

	mapLeaf[K comparable, V any] struct {
		key K
	}

	mapPath[K comparable, V, L any] struct {
		key  K
		rest Path[V, L]
	}

	sliceIndex[T any] struct {
		index int
	}

	slicePath[T, L any] struct {
		index int
		rest  Path[T, L]
	}
)

// MapKey returns a terminal map key path
func MapKey[K comparable, V any](key K) Path[map[K]V, V] {
	return &mapLeaf[K, V]{key: key}
}

// KeyPath returns a map key path continuing with rest in the value stored under key
func KeyPath[K comparable, V, L any](key K, rest Path[V, L]) Path[map[K]V, L] {
	return &mapPath[K, V, L]{key: key, rest: rest}
}

// Index returns a terminal slice index path
func Index[T any](index int) Path[[]T, T] {
	checkIndex(index)
	return &sliceIndex[T]{index: index}
}

// IndexPath returns a slice index path continuing with rest in the item stored at index
func IndexPath[T, L any](index int, rest Path[T, L]) Path[[]T, L] {
	checkIndex(index)
	return &slicePath[T, L]{index: index, rest: rest}
}

func (p *mapLeaf[K, V]) resolve(holder *Slot[map[K]V]) Entry[V] {
	return &mapEntry[K, V]{m: ensureMap(holder), key: p.key}
}

func (p *mapPath[K, V, L]) resolve(holder *Slot[map[K]V]) Entry[L] {
	m, key := ensureMap(holder), p.key
	if _, ok := m[key]; !ok {
		var child V
		m[key] = child
	}
	return p.rest.resolve(newSlot(func() V { return m[key] }, func(v V) { m[key] = v }))
}

func (p *sliceIndex[T]) resolve(holder *Slot[[]T]) Entry[T] {
	return &sliceEntry[T]{holder: holder, index: p.index}
}

func (p *slicePath[T, L]) resolve(holder *Slot[[]T]) Entry[L] {
	index := p.index
	if items := holder.Get(); index >= len(items) {
		holder.Set(grow(items, index))
	}
	return p.rest.resolve(newSlot(func() T { return holder.Get()[index] }, func(v T) { holder.Get()[index] = v }))
}

func ensureMap[K comparable, V any](holder *Slot[map[K]V]) map[K]V {
	m := holder.Get()
	if m == nil {
		m = make(map[K]V)
		holder.Set(m)
	}
	return m
}

func checkIndex(index int) {
	if index < 0 {
		panic(&IndexError{Index: index})
	}
}
