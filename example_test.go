package deepentry_test

import (
	"fmt"

	"github.com/viant/deepentry"
)

type (
	Animal string
	Fruit  string
)

func ExampleResolve() {
	var data map[Animal][]map[Fruit]int
	path := deepentry.KeyPath(Animal("pig"), deepentry.IndexPath(6, deepentry.MapKey[Fruit, int]("apply")))

	deepentry.Resolve(&data, path).OrDefault().Update(func(n int) int { return n + 1 })
	fmt.Println(deepentry.Resolve(&data, path).OrInsert(0).Get())
	fmt.Println(len(data["pig"]))
	// Output:
	// 1
	// 7
}

func ExampleResolveAny() {
	doc := map[string]interface{}{}
	deepentry.ResolveAny(doc, deepentry.Keys("users", 1, "name")).OrInsert("Alice")
	fmt.Println(doc)
	// Output: map[users:[<nil> map[name:Alice]]]
}

func ExampleResolve_orInsertWith() {
	counts := []int{4}
	value := deepentry.Resolve(&counts, deepentry.Index[int](0)).OrInsertWith(func() int {
		panic("not called for a present slot")
	}).Get()
	fmt.Println(value)
	// Output: 4
}
