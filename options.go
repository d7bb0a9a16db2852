package deepentry

import "reflect"

type (
	options struct {
		vivify func(key interface{}) interface{}
	}

	//Option represents ResolveAny option
	Option func(o *options)
)

func newOptions(opts []Option) *options {
	result := &options{}
	for _, opt := range opts {
		opt(result)
	}
	if result.vivify == nil {
		result.vivify = vivify
	}
	return result
}

// WithVivifier sets the factory creating a container for an empty interface slot;
// it receives the key about to be applied to the new container.
func WithVivifier(fn func(key interface{}) interface{}) Option {
	return func(o *options) {
		o.vivify = fn
	}
}

// vivify creates []interface{} for integer keys, map[string]interface{} for string keys,
// map[interface{}]interface{} otherwise
func vivify(key interface{}) interface{} {
	if key == nil {
		return map[interface{}]interface{}{}
	}
	switch reflect.TypeOf(key).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return []interface{}{}
	case reflect.String:
		return map[string]interface{}{}
	}
	return map[interface{}]interface{}{}
}
