package cache

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap_GetOrCreate(t *testing.T) {
	aMap := New[string, int]()
	var calls int32
	create := func(k string) int {
		atomic.AddInt32(&calls, 1)
		return len(k)
	}

	wg := sync.WaitGroup{}
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, 3, aMap.GetOrCreate("abc", create))
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
	value, ok := aMap.Get("abc")
	assert.True(t, ok)
	assert.Equal(t, 3, value)
}

func TestMap_Get(t *testing.T) {
	aMap := New[int, string]()
	_, ok := aMap.Get(1)
	assert.False(t, ok)
	assert.Equal(t, "a", aMap.GetOrCreate(1, func(int) string { return "a" }))
	assert.Equal(t, "a", aMap.GetOrCreate(1, func(int) string { return "b" }))
}
