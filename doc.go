// Package deepentry provides auto-vivifying access to a slot nested in maps and slices.
//
// A composite key addresses the slot one container level at a time. Resolving it creates
// every missing intermediate map or slice; slices grow to cover the requested index and
// fill the gap with zero values. The returned Entry inserts the leaf value on demand:
//
//	type Animal string
//	type Fruit string
//
//	var data map[Animal][]map[Fruit]int
//	path := deepentry.KeyPath(Animal("pig"), deepentry.IndexPath(6, deepentry.MapKey[Fruit, int]("apple")))
//	deepentry.Resolve(&data, path).OrDefault().Update(func(n int) int { return n + 1 })
//	deepentry.Resolve(&data, path).OrInsert(0).Get() // 1
//
// Resolve checks key shape at compile time. ResolveAny accepts a run-time Key instead and
// panics with *ShapeMismatchError when the key does not fit the container:
//
//	doc := map[string]interface{}{}
//	deepentry.ResolveAny(doc, deepentry.Keys("pig", 6, "apple")).OrInsert(1)
//
// Entries and slots borrow the root container: they are meant for a single operation and
// are not safe for concurrent use.
package deepentry
