package deepentry

// Resolve returns the entry addressed by path in container, creating every missing
// intermediate map or slice on the way.
//
//	var data map[Animal][]map[Fruit]int
//	path := deepentry.KeyPath(Animal("pig"), deepentry.IndexPath(6, deepentry.MapKey[Fruit, int]("apple")))
//	deepentry.Resolve(&data, path).OrDefault().Update(func(n int) int { return n + 1 })
//
// Resolving a path that already exists does not modify the container until a terminal
// entry operation inserts a value.
func Resolve[C, V any](container *C, path Path[C, V]) Entry[V] {
	if container == nil {
		panic("deepentry: nil container")
	}
	return path.resolve(newSlot(func() C { return *container }, func(v C) { *container = v }))
}
