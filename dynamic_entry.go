package deepentry

import (
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

type (
	anyMapEntry struct {
		aMap reflect.Value
		key  reflect.Value
		path string
	}

	anySliceEntry struct {
		holder *Slot[reflect.Value]
		rType  reflect.Type
		xSlice *xunsafe.Slice
		index  int
		path   string
	}
)

func (e *anyMapEntry) Exists() bool {
	return e.aMap.MapIndex(e.key).IsValid()
}

func (e *anyMapEntry) OrInsert(value interface{}) *Slot[interface{}] {
	if !e.Exists() {
		e.aMap.SetMapIndex(e.key, e.value(value))
	}
	return e.slot()
}

func (e *anyMapEntry) OrInsertWith(fn func() interface{}) *Slot[interface{}] {
	if !e.Exists() {
		e.aMap.SetMapIndex(e.key, e.value(fn()))
	}
	return e.slot()
}

func (e *anyMapEntry) OrDefault() *Slot[interface{}] {
	if !e.Exists() {
		e.aMap.SetMapIndex(e.key, reflect.Zero(e.aMap.Type().Elem()))
	}
	return e.slot()
}

func (e *anyMapEntry) AndModify(fn func(value interface{}) interface{}) Entry[interface{}] {
	if e.Exists() {
		e.slot().Update(fn)
	}
	return e
}

func (e *anyMapEntry) value(value interface{}) reflect.Value {
	return valueOf(value, e.aMap.Type().Elem(), e.path)
}

func (e *anyMapEntry) slot() *Slot[interface{}] {
	return newSlot(func() interface{} {
		return e.aMap.MapIndex(e.key).Interface()
	}, func(v interface{}) {
		e.aMap.SetMapIndex(e.key, e.value(v))
	})
}

func (e *anySliceEntry) Exists() bool {
	return e.index < e.xSlice.Len(e.pointer())
}

func (e *anySliceEntry) OrInsert(value interface{}) *Slot[interface{}] {
	if !e.Exists() {
		e.insert(e.value(value))
	}
	return e.slot()
}

func (e *anySliceEntry) OrInsertWith(fn func() interface{}) *Slot[interface{}] {
	if !e.Exists() {
		e.insert(e.value(fn()))
	}
	return e.slot()
}

func (e *anySliceEntry) OrDefault() *Slot[interface{}] {
	if !e.Exists() {
		e.insert(reflect.Zero(e.rType.Elem()))
	}
	return e.slot()
}

func (e *anySliceEntry) AndModify(fn func(value interface{}) interface{}) Entry[interface{}] {
	if e.Exists() {
		e.slot().Update(fn)
	}
	return e
}

func (e *anySliceEntry) insert(value reflect.Value) {
	items := growValue(e.holder.Get(), e.rType, e.index)
	items.Index(e.index).Set(value)
	e.holder.Set(items)
}

// pointer returns a pointer to a copy of the slice header, the copy shares the backing array
func (e *anySliceEntry) pointer() unsafe.Pointer {
	header := reflect.New(e.rType)
	header.Elem().Set(e.holder.Get())
	return header.UnsafePointer()
}

func (e *anySliceEntry) value(value interface{}) reflect.Value {
	return valueOf(value, e.rType.Elem(), e.path)
}

func (e *anySliceEntry) slot() *Slot[interface{}] {
	return newSlot(func() interface{} {
		return e.holder.Get().Index(e.index).Interface()
	}, func(v interface{}) {
		e.holder.Get().Index(e.index).Set(e.value(v))
	})
}

// valueOf converts value to rType, nil stands for the zero value
func valueOf(value interface{}, rType reflect.Type, path string) reflect.Value {
	if value == nil {
		return reflect.Zero(rType)
	}
	result, ok := convert(value, rType)
	if !ok {
		panic(&ShapeMismatchError{Path: path, Key: value, Type: rType, Reason: "value does not fit slot"})
	}
	return result
}
