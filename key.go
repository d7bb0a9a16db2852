package deepentry

import (
	"fmt"
	"strings"
)

// Key represents a run-time composite key: a scalar Value, followed by Rest when the
// addressed value lives in a nested container.
type Key struct {
	Value interface{}
	Rest  *Key
}

// Keys builds a composite key from a flat list of scalar keys, outermost first
func Keys(parts ...interface{}) Key {
	if len(parts) == 0 {
		panic("deepentry: empty key")
	}
	key := Key{Value: parts[len(parts)-1]}
	for i := len(parts) - 2; i >= 0; i-- {
		rest := key
		key = Key{Value: parts[i], Rest: &rest}
	}
	return key
}

// IsScalar returns true if key has no nested part
func (k Key) IsScalar() bool {
	return k.Rest == nil
}

// Depth returns number of container levels the key addresses
func (k Key) Depth() int {
	depth := 1
	for rest := k.Rest; rest != nil; rest = rest.Rest {
		depth++
	}
	return depth
}

// String returns key in the [a][b][c] form
func (k Key) String() string {
	builder := strings.Builder{}
	for key := &k; key != nil; key = key.Rest {
		builder.WriteString(fmt.Sprintf("[%v]", key.Value))
	}
	return builder.String()
}
