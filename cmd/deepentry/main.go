package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/viant/deepentry"
)

type (
	Animal string
	Fruit  string
)

func main() {
	var data map[Animal][]map[Fruit]int
	path := deepentry.KeyPath(Animal("pig"), deepentry.IndexPath(6, deepentry.MapKey[Fruit, int]("apply")))

	deepentry.Resolve(&data, path).OrDefault().Update(func(count int) int { return count + 1 })
	count := deepentry.Resolve(&data, path).OrInsert(0).Get()

	fmt.Printf("pig[6][apply] = %v\n", count)
	config := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true, DisableCapacities: true}
	config.Dump(data)
	if count != 1 {
		fmt.Fprintf(os.Stderr, "unexpected count: %v\n", count)
		os.Exit(1)
	}
}
