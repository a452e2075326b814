package redaction

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePutGetDelete(t *testing.T) {
	store := NewStore()
	m := NewMap()

	store.Put(m)
	got, ok := store.Get(m.ID)
	require.True(t, ok)
	assert.Same(t, m, got)
	assert.Equal(t, 1, store.Len())

	assert.True(t, store.Delete(m.ID))
	assert.False(t, store.Delete(m.ID))
	_, ok = store.Get(m.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m := NewMap()
			store.Put(m)
			_, ok := store.Get(m.ID)
			assert.True(t, ok)
			assert.True(t, store.Delete(m.ID))
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, store.Len())
}
