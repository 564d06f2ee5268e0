package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("counter", 42)
	require.NoError(t, err)
	assert.True(t, isNew)

	value, exists := r.Get("counter")
	assert.True(t, exists)
	assert.Equal(t, 42, value)

	// Ghi đè item cũ
	isNew, err = r.Register("counter", 7)
	require.NoError(t, err)
	assert.False(t, isNew)

	value, _ = r.Get("counter")
	assert.Equal(t, 7, value)
}

func TestRegistry_RegisterEmptyName(t *testing.T) {
	r := NewRegistry[string]()

	_, err := r.Register("", "value")
	assert.Error(t, err)
}

func TestRegistry_GetMissing(t *testing.T) {
	r := NewRegistry[string]()

	value, exists := r.Get("missing")
	assert.False(t, exists)
	assert.Empty(t, value)
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[string]()
	calls := 0

	creator := func() (string, error) {
		calls++
		return "created", nil
	}

	value, err := r.GetOrCreate("item", creator)
	require.NoError(t, err)
	assert.Equal(t, "created", value)

	// Lần gọi thứ hai trả về item đã tồn tại, không gọi creator
	value, err = r.GetOrCreate("item", creator)
	require.NoError(t, err)
	assert.Equal(t, "created", value)
	assert.Equal(t, 1, calls)
}

func TestRegistry_GetOrCreateError(t *testing.T) {
	r := NewRegistry[string]()

	_, err := r.GetOrCreate("item", func() (string, error) {
		return "", fmt.Errorf("boom")
	})
	assert.Error(t, err)

	_, exists := r.Get("item")
	assert.False(t, exists)
}

func TestRegistry_ClearAndClearAll(t *testing.T) {
	r := NewRegistry[int]()
	_, _ = r.Register("a", 1)
	_, _ = r.Register("b", 2)

	r.Clear("a")
	_, exists := r.Get("a")
	assert.False(t, exists)
	_, exists = r.Get("b")
	assert.True(t, exists)

	r.ClearAll()
	assert.Empty(t, r.Names())
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _ = r.Register(fmt.Sprintf("item_%d", n%10), n)
			_, _ = r.Get(fmt.Sprintf("item_%d", n%10))
		}(i)
	}
	wg.Wait()

	assert.Len(t, r.Names(), 10)
}
