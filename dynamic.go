package deepentry

import (
	"fmt"
	"math"
	"reflect"

	"github.com/viant/deepentry/internal/cache"
	"github.com/viant/xunsafe"
)

var sliceCache = cache.New[reflect.Type, *xunsafe.Slice]()

type resolver struct {
	options *options
}

// ResolveAny returns the entry addressed by key in container, where container shape is only
// known at run time. Container has to be a non nil pointer (to a map, slice, pointer or interface)
// or a non nil map.
//
// Missing maps and slices are created on the way, empty interface slots are filled with a
// container matching the next key (see WithVivifier). A key that does not fit the container
// nesting panics with *ShapeMismatchError, a negative index panics with *IndexError.
func ResolveAny(container interface{}, key Key, opts ...Option) Entry[interface{}] {
	holder, rType := rootHolder(container)
	r := &resolver{options: newOptions(opts)}
	return r.resolve(holder, rType, key, "")
}

func rootHolder(container interface{}) (*Slot[reflect.Value], reflect.Type) {
	value := reflect.ValueOf(container)
	switch value.Kind() {
	case reflect.Ptr:
		if value.IsNil() {
			panic(&ShapeMismatchError{Type: value.Type(), Reason: "nil container pointer"})
		}
		elem := value.Elem()
		return newSlot(func() reflect.Value { return elem }, func(v reflect.Value) { elem.Set(v) }), elem.Type()
	case reflect.Map:
		if value.IsNil() {
			panic(&ShapeMismatchError{Type: value.Type(), Reason: "nil map container"})
		}
		return newSlot(func() reflect.Value { return value }, func(v reflect.Value) { value = v }), value.Type()
	case reflect.Invalid:
		panic(&ShapeMismatchError{Reason: "nil container"})
	}
	panic(&ShapeMismatchError{Type: value.Type(), Reason: "expected map or pointer container"})
}

func (r *resolver) resolve(holder *Slot[reflect.Value], rType reflect.Type, key Key, path string) Entry[interface{}] {
	switch rType.Kind() {
	case reflect.Interface:
		holder, rType = r.unwrap(holder, rType, key, path)
		return r.resolve(holder, rType, key, path)
	case reflect.Ptr:
		if holder.Get().IsNil() {
			holder.Set(reflect.New(rType.Elem()))
		}
		elem := newSlot(func() reflect.Value { return holder.Get().Elem() }, func(v reflect.Value) { holder.Get().Elem().Set(v) })
		return r.resolve(elem, rType.Elem(), key, path)
	case reflect.Map:
		return r.resolveMap(holder, rType, key, path)
	case reflect.Slice:
		return r.resolveSlice(holder, rType, key, path)
	}
	panic(&ShapeMismatchError{Path: path, Key: key.Value, Type: rType, Reason: "not a map or slice"})
}

func (r *resolver) resolveMap(holder *Slot[reflect.Value], rType reflect.Type, key Key, path string) Entry[interface{}] {
	aMap := holder.Get()
	if aMap.IsNil() {
		aMap = reflect.MakeMap(rType)
		holder.Set(aMap)
	}
	mapKey, ok := convert(key.Value, rType.Key())
	if !ok {
		panic(&ShapeMismatchError{Path: path, Key: key.Value, Type: rType, Reason: fmt.Sprintf("expected %v key", rType.Key())})
	}
	if key.IsScalar() {
		return &anyMapEntry{aMap: aMap, key: mapKey, path: appendPath(path, key.Value)}
	}
	checkNested(rType.Elem(), *key.Rest, appendPath(path, key.Value))
	if !aMap.MapIndex(mapKey).IsValid() {
		aMap.SetMapIndex(mapKey, reflect.Zero(rType.Elem()))
	}
	child := newSlot(func() reflect.Value { return aMap.MapIndex(mapKey) }, func(v reflect.Value) { aMap.SetMapIndex(mapKey, v) })
	return r.resolve(child, rType.Elem(), *key.Rest, appendPath(path, key.Value))
}

func (r *resolver) resolveSlice(holder *Slot[reflect.Value], rType reflect.Type, key Key, path string) Entry[interface{}] {
	index, ok := asIndex(key.Value)
	if !ok {
		panic(&ShapeMismatchError{Path: path, Key: key.Value, Type: rType, Reason: "expected int index"})
	}
	checkIndex(index)
	if key.IsScalar() {
		xSlice := sliceCache.GetOrCreate(rType, newSliceAccessor)
		return &anySliceEntry{holder: holder, rType: rType, xSlice: xSlice, index: index, path: appendPath(path, index)}
	}
	checkNested(rType.Elem(), *key.Rest, appendPath(path, index))
	if items := holder.Get(); index >= items.Len() {
		holder.Set(growValue(items, rType, index))
	}
	child := newSlot(func() reflect.Value { return holder.Get().Index(index) }, func(v reflect.Value) { holder.Get().Index(index).Set(v) })
	return r.resolve(child, rType.Elem(), *key.Rest, appendPath(path, index))
}

// unwrap replaces an interface slot with its dynamic value, creating a container when the slot is empty
func (r *resolver) unwrap(holder *Slot[reflect.Value], rType reflect.Type, key Key, path string) (*Slot[reflect.Value], reflect.Type) {
	current := holder.Get()
	if current.IsNil() {
		created := reflect.ValueOf(r.options.vivify(key.Value))
		if !created.IsValid() || !created.Type().AssignableTo(rType) {
			panic(&ShapeMismatchError{Path: path, Key: key.Value, Type: rType, Reason: "can not create container"})
		}
		holder.Set(created)
		current = created
	} else {
		current = current.Elem()
	}
	concrete := newSlot(func() reflect.Value {
		value := holder.Get()
		if value.Kind() == reflect.Interface {
			value = value.Elem()
		}
		return value
	}, holder.Set)
	return concrete, current.Type()
}

func newSliceAccessor(rType reflect.Type) *xunsafe.Slice {
	return xunsafe.NewSlice(rType)
}

func growValue(items reflect.Value, rType reflect.Type, index int) reflect.Value {
	if index < items.Len() {
		return items
	}
	count := index + 1 - items.Len()
	return reflect.AppendSlice(items, reflect.MakeSlice(rType, count, count))
}

// checkNested panics when a value of rType can not hold the container key addresses,
// so that no zero child is written for a key that can not be resolved
func checkNested(rType reflect.Type, key Key, path string) {
	for rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	switch rType.Kind() {
	case reflect.Map, reflect.Slice, reflect.Interface:
		return
	}
	panic(&ShapeMismatchError{Path: path, Key: key.Value, Type: rType, Reason: "not a map or slice"})
}

// convert returns value as rType, numeric values are converted across numeric kinds only when
// the conversion is exact
func convert(value interface{}, rType reflect.Type) (reflect.Value, bool) {
	if value == nil {
		switch rType.Kind() {
		case reflect.Interface, reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(rType), true
		}
		return reflect.Value{}, false
	}
	rValue := reflect.ValueOf(value)
	if rValue.Type().AssignableTo(rType) {
		return rValue, true
	}
	if isNumeric(rValue.Kind()) && isNumeric(rType.Kind()) {
		return convertNumber(rValue, rType)
	}
	if rValue.Kind() == rType.Kind() && rValue.Type().ConvertibleTo(rType) {
		return rValue.Convert(rType), true
	}
	return reflect.Value{}, false
}

func convertNumber(rValue reflect.Value, rType reflect.Type) (reflect.Value, bool) {
	result := reflect.New(rType).Elem()
	switch {
	case isInt(rType.Kind()):
		n, ok := asInt64(rValue)
		if !ok || result.OverflowInt(n) {
			return reflect.Value{}, false
		}
		result.SetInt(n)
	case isUint(rType.Kind()):
		n, ok := asUint64(rValue)
		if !ok || result.OverflowUint(n) {
			return reflect.Value{}, false
		}
		result.SetUint(n)
	default:
		f := asFloat64(rValue)
		if result.OverflowFloat(f) {
			return reflect.Value{}, false
		}
		result.SetFloat(f)
	}
	return result, true
}

func asInt64(rValue reflect.Value) (int64, bool) {
	switch kind := rValue.Kind(); {
	case isInt(kind):
		return rValue.Int(), true
	case isUint(kind):
		n := rValue.Uint()
		return int64(n), n <= math.MaxInt64
	default:
		f := rValue.Float()
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}
		return int64(f), true
	}
}

func asUint64(rValue reflect.Value) (uint64, bool) {
	switch kind := rValue.Kind(); {
	case isInt(kind):
		n := rValue.Int()
		return uint64(n), n >= 0
	case isUint(kind):
		return rValue.Uint(), true
	default:
		f := rValue.Float()
		if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
			return 0, false
		}
		return uint64(f), true
	}
}

func asFloat64(rValue reflect.Value) float64 {
	switch kind := rValue.Kind(); {
	case isInt(kind):
		return float64(rValue.Int())
	case isUint(kind):
		return float64(rValue.Uint())
	default:
		return rValue.Float()
	}
}

func asIndex(value interface{}) (int, bool) {
	if value == nil {
		return 0, false
	}
	rValue := reflect.ValueOf(value)
	switch kind := rValue.Kind(); {
	case isInt(kind):
		n := rValue.Int()
		return int(n), n >= math.MinInt && n <= math.MaxInt
	case isUint(kind):
		n := rValue.Uint()
		return int(n), n <= math.MaxInt
	}
	return 0, false
}

func isInt(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(kind reflect.Kind) bool {
	switch kind {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isNumeric(kind reflect.Kind) bool {
	return isInt(kind) || isUint(kind) || kind == reflect.Float32 || kind == reflect.Float64
}

func appendPath(path string, key interface{}) string {
	return path + fmt.Sprintf("[%v]", key)
}
