package server

import (
	"reflect"
	"sync"
	"testing"

	"github.com/huangsam/maturity/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	first := r.Add("", "/tmp/a.xlsx", &schema.Workbook{Source: "/tmp/a.xlsx"})
	second := r.Add("upload.xlsx", "", &schema.Workbook{Source: "upload.xlsx"})

	assert.Equal(t, "a.xlsx", first.Name)
	assert.Equal(t, 1, first.Version)
	assert.NotEqual(t, first.ID, second.ID)

	got, ok := r.Get(second.ID)
	require.True(t, ok)
	assert.Same(t, second, got)

	_, ok = r.Get("nope")
	assert.False(t, ok)

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}

func TestRegistryReplace(t *testing.T) {
	r := NewRegistry()
	entry := r.Add("a.xlsx", "", &schema.Workbook{Source: "a"})

	updated, ok := r.Replace(entry.ID, &schema.Workbook{Source: "b"})
	require.True(t, ok)
	assert.Equal(t, 2, updated.Version)
	assert.Equal(t, "b", updated.Workbook.Source)

	// The entry handed out earlier is left untouched.
	assert.Equal(t, 1, entry.Version)
	assert.Equal(t, "a", entry.Workbook.Source)

	_, ok = r.Replace("nope", &schema.Workbook{})
	assert.False(t, ok)
}

func TestRegistryConcurrent(t *testing.T) {
	r := NewRegistry()
	entry := r.Add("a.xlsx", "", &schema.Workbook{})

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.Replace(entry.ID, &schema.Workbook{})
		}()
		go func() {
			defer wg.Done()
			_, _ = r.Get(entry.ID)
			_ = r.List()
		}()
	}
	wg.Wait()

	got, ok := r.Get(entry.ID)
	require.True(t, ok)
	assert.Equal(t, 21, got.Version)
}

func TestRegistryLockIsInternal(t *testing.T) {
	typ := reflect.TypeOf(NewRegistry())
	for _, name := range []string{"Lock", "Unlock", "RLock", "RUnlock"} {
		_, ok := typ.MethodByName(name)
		assert.False(t, ok, "Registry exposes %s", name)
	}
}
