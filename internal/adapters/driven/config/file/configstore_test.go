package file

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".solidkit", "config.toml"), store.Path())
}

func TestNewConfigStore_WithNestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	_, err := NewConfigStore(dir)

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	_, err := NewConfigStore(filepath.Join(blocker, "sub"))

	assert.Error(t, err)
}

func TestNewConfigStore_CorruptedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not = [valid"), 0600))

	_, err := NewConfigStore(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}

func TestConfigStore_TypedGetters(t *testing.T) {
	dir := t.TempDir()
	content := `
[storage]
backend = "sqlite"

[fees]
credit_card_rate = 0.025
pix_rate = 0
paypal_rate = "0.05"
enabled = ["pix", "paypal"]

[output]
styled = false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", store.GetString("storage.backend"))
	assert.Equal(t, "0.05", store.GetString("fees.paypal_rate"))
	assert.Equal(t, "", store.GetString("fees.credit_card_rate"))
	assert.InDelta(t, 0.025, store.GetFloat("fees.credit_card_rate"), 1e-9)
	assert.Equal(t, 0.0, store.GetFloat("fees.pix_rate"))
	assert.Equal(t, 0.0, store.GetFloat("fees.paypal_rate"))
	assert.Equal(t, []string{"pix", "paypal"}, store.GetStringSlice("fees.enabled"))
	assert.Nil(t, store.GetStringSlice("storage.backend"))

	_, ok := store.Get("output.styled")
	assert.True(t, ok)
	assert.False(t, store.GetBool("output.styled"))
	assert.False(t, store.GetBool("storage.backend"))
}

func TestConfigStore_Persistence(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("storage.backend", "memory"))
	require.NoError(t, store.Set("fees.pix_rate", "0.01"))
	require.NoError(t, store.Set("fees.enabled", []string{"pix"}))
	require.NoError(t, store.Set("output.styled", true))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "memory", reopened.GetString("storage.backend"))
	assert.Equal(t, "0.01", reopened.GetString("fees.pix_rate"))
	assert.Equal(t, []string{"pix"}, reopened.GetStringSlice("fees.enabled"))
	assert.True(t, reopened.GetBool("output.styled"))
}

func TestConfigStore_WritesTables(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("storage.backend", "sqlite"))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[storage]")
	assert.NotContains(t, string(raw), `"storage.backend"`)
}

func TestConfigStore_ConflictingKeys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("fees.pix_rate", "0"))

	err = store.Set("fees", "flat")

	require.Error(t, err)
	_, ok := store.Get("fees")
	assert.False(t, ok, "failed set must not stick")
}

func TestConfigStore_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions only")
	}
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("storage.backend", "console"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Load_MissingFileIsEmpty(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Load())
	_, ok := store.Get("storage.backend")
	assert.False(t, ok)
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Set("output.styled", true)
			_ = store.GetBool("output.styled")
			_ = store.GetFloat("fees.pix_rate")
		}()
	}
	wg.Wait()

	assert.True(t, store.GetBool("output.styled"))
}

func TestNestMap(t *testing.T) {
	nested, err := nestMap(map[string]any{
		"storage.backend":  "sqlite",
		"fees.pix_rate":    "0",
		"fees.paypal_rate": "0.05",
		"top":              1,
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"storage": map[string]any{"backend": "sqlite"},
		"fees":    map[string]any{"pix_rate": "0", "paypal_rate": "0.05"},
		"top":     1,
	}, nested)
	assert.Equal(t, map[string]any{
		"storage.backend":  "sqlite",
		"fees.pix_rate":    "0",
		"fees.paypal_rate": "0.05",
		"top":              1,
	}, flattenMap(nested, ""))
}
