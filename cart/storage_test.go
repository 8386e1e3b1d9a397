package cart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorageRoundTrip(t *testing.T) {
	store := NewFileStorage(filepath.Join(t.TempDir(), "session.json"))

	lines := []Line{{ProductId: "1", Name: "Gulmohar Lawn Suit", Price: 3500, Quantity: 2, Size: "M"}}
	require.NoError(t, store.SaveLines(lines))

	settings := testSettings()
	require.NoError(t, store.SaveSettings(settings))

	loaded, err := store.LoadLines()
	require.NoError(t, err)
	assert.Equal(t, lines, loaded)

	loadedSettings, ok, err := store.LoadSettings()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, settings.ShippingOptions, loadedSettings.ShippingOptions)
}

func TestLoadLinesDropsMalformedEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	state := `{"cart":[
		{"id":"1","name":"ok","price":3500,"quantity":1,"size":"M"},
		{"id":"2","name":"missing price","quantity":1,"size":"M"},
		{"id":"3","name":"missing quantity","price":100,"size":"M"},
		{"name":"missing id","price":100,"quantity":1,"size":"M"}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(state), 0o644))

	lines, err := NewFileStorage(path).LoadLines()
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "1", lines[0].ProductId)
}

func TestMissingFileReadsAsEmptySession(t *testing.T) {
	store := NewFileStorage(filepath.Join(t.TempDir(), "nope.json"))

	lines, err := store.LoadLines()
	require.NoError(t, err)
	assert.Empty(t, lines)

	_, ok, err := store.LoadSettings()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCorruptFileIsDiscarded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	lines, err := NewFileStorage(path).LoadLines()
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestEngineMirrorsMutationsToStorage(t *testing.T) {
	store := NewFileStorage(filepath.Join(t.TempDir(), "session.json"))
	engine := NewEngine(store, nil)
	p := testProduct(1, "100101", "Gulmohar Lawn Suit", 3500, "M")

	engine.AddItem(p, 2, "M")

	persisted, err := store.LoadLines()
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, 2, persisted[0].Quantity)

	engine.Clear()
	persisted, err = store.LoadLines()
	require.NoError(t, err)
	assert.Empty(t, persisted)
}
