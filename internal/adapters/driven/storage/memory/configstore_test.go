package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("storage.backend", "sqlite"))
	require.NoError(t, store.Set("storage.backend", "memory"))

	val, ok := store.Get("storage.backend")
	assert.True(t, ok)
	assert.Equal(t, "memory", val)

	_, ok = store.Get("storage.data_dir")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("fees.paypal_rate", "0.05")
	_ = store.Set("fees.credit_card_rate", 0.03)
	_ = store.Set("fees.pix_rate", 0)
	_ = store.Set("legacy.count", int64(7))
	_ = store.Set("output.styled", true)
	_ = store.Set("fees.enabled", []string{"pix", "paypal"})
	_ = store.Set("mixed", []any{"pix", 3, "paypal"})

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"string", store.GetString("fees.paypal_rate"), "0.05"},
		{"string wrong type", store.GetString("output.styled"), ""},
		{"string missing", store.GetString("missing"), ""},
		{"float", store.GetFloat("fees.credit_card_rate"), 0.03},
		{"float from int", store.GetFloat("fees.pix_rate"), 0.0},
		{"float from int64", store.GetFloat("legacy.count"), 7.0},
		{"float from string", store.GetFloat("fees.paypal_rate"), 0.0},
		{"bool", store.GetBool("output.styled"), true},
		{"bool wrong type", store.GetBool("fees.paypal_rate"), false},
		{"slice", store.GetStringSlice("fees.enabled"), []string{"pix", "paypal"}},
		{"mixed slice", store.GetStringSlice("mixed"), []string{"pix", "paypal"}},
		{"slice wrong type", store.GetStringSlice("output.styled"), []string(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestConfigStore_StringSliceIsCopied(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("fees.enabled", []string{"pix"})

	got := store.GetStringSlice("fees.enabled")
	got[0] = "paypal"

	assert.Equal(t, []string{"pix"}, store.GetStringSlice("fees.enabled"))
}

func TestConfigStore_PersistenceNoOps(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("output.styled", false)

	require.NoError(t, store.Save())
	require.NoError(t, store.Load())

	_, ok := store.Get("output.styled")
	assert.True(t, ok)
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := fmt.Sprintf("key.%d", id%5)
			_ = store.Set(key, id)
			_ = store.GetFloat(key)
			_, _ = store.Get(key)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 5; i++ {
		_, ok := store.Get(fmt.Sprintf("key.%d", i))
		assert.True(t, ok)
	}
}
