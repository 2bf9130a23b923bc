package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *ConfigStore {
	t.Helper()
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".cleanpaste", "config.toml"), store.Path())
}

func TestNewConfigStore_WithNestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("this is not valid TOML {{{[["), 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("transform.case_mode", "title"))
	require.NoError(t, store.Set("transform.fix_line_breaks", true))
	require.NoError(t, store.Set("window.width", 80))

	assert.Equal(t, "title", store.GetString("transform.case_mode"))
	assert.True(t, store.GetBool("transform.fix_line_breaks"))
	assert.Equal(t, 80, store.GetInt("window.width"))

	assert.Empty(t, store.GetString("transform.fix_line_breaks"))
	assert.False(t, store.GetBool("transform.case_mode"))
	assert.Zero(t, store.GetInt("missing"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_Persistence_NestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("transform.remove_emojis", true))
	require.NoError(t, store.Set("transform.case_mode", "upper"))
	require.NoError(t, store.Set("ui.theme", "light"))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	var onDisk map[string]any
	require.NoError(t, toml.Unmarshal(raw, &onDisk))
	transform, ok := onDisk["transform"].(map[string]any)
	require.True(t, ok, "expected [transform] table, got %s", raw)
	assert.Equal(t, "upper", transform["case_mode"])
	assert.Equal(t, true, transform["remove_emojis"])

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "upper", reloaded.GetString("transform.case_mode"))
	assert.True(t, reloaded.GetBool("transform.remove_emojis"))
	assert.Equal(t, "light", reloaded.GetString("ui.theme"))
}

func TestConfigStore_Persistence_Int64FromTOML(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("window.width", 120))

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	val, ok := reloaded.Get("window.width")
	require.True(t, ok)
	assert.IsType(t, int64(0), val)
	assert.Equal(t, 120, reloaded.GetInt("window.width"))
}

func TestConfigStore_Delete(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("squeeze.level", "advanced"))

	require.NoError(t, store.Delete("squeeze.level"))
	require.NoError(t, store.Delete("squeeze.level"))

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	_, ok := reloaded.Get("squeeze.level")
	assert.False(t, ok)
}

func TestConfigStore_Load_NonExistent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Load())
	_, ok := store.Get("anything")
	assert.False(t, ok)
}

func TestConfigStore_Load_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), nil, 0600))

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	assert.Empty(t, store.GetString("ui.theme"))
}

func TestConfigStore_Load_InvalidTOML(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("valid", "data"))

	require.NoError(t, os.WriteFile(store.Path(), []byte("invalid toml syntax ][}{"), 0600))

	assert.Error(t, store.Load())
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("ui.theme", "dark"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Set_WriteErrorRollsBack(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("ui.theme", "dark"))

	// Replace the file with a directory so the next write fails.
	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	err := store.Set("ui.theme", "light")

	assert.Error(t, err)
	assert.Equal(t, "dark", store.GetString("ui.theme"))

	err = store.Set("transform.code_compact", true)
	assert.Error(t, err)
	_, ok := store.Get("transform.code_compact")
	assert.False(t, ok)
}

func TestConfigStore_Set_UnmarshallableValue(t *testing.T) {
	store := newTestStore(t)

	err := store.Set("channel", make(chan int))

	assert.Error(t, err)
	_, ok := store.Get("channel")
	assert.False(t, ok)
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("transform.remove_emojis", n%2 == 0)
			_ = store.GetBool("transform.remove_emojis")
		}(i)
	}
	wg.Wait()

	_, ok := store.Get("transform.remove_emojis")
	assert.True(t, ok)
}

func TestFlattenMap(t *testing.T) {
	nested := map[string]any{
		"transform": map[string]any{"case_mode": "title", "remove_emojis": true},
		"top":       "level",
	}

	flat := flattenMap(nested, "")

	assert.Equal(t, map[string]any{
		"transform.case_mode":     "title",
		"transform.remove_emojis": true,
		"top":                     "level",
	}, flat)
}

func TestUnflattenMap(t *testing.T) {
	tests := []struct {
		name     string
		flat     map[string]any
		expected map[string]any
	}{
		{
			name:     "empty",
			flat:     map[string]any{},
			expected: map[string]any{},
		},
		{
			name: "round trip shape",
			flat: map[string]any{"transform.case_mode": "title", "ui.theme": "dark", "top": 1},
			expected: map[string]any{
				"transform": map[string]any{"case_mode": "title"},
				"ui":        map[string]any{"theme": "dark"},
				"top":       1,
			},
		},
		{
			name:     "table wins over scalar",
			flat:     map[string]any{"ui": "oops", "ui.theme": "light"},
			expected: map[string]any{"ui": map[string]any{"theme": "light"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, unflattenMap(tt.flat))
		})
	}
}
