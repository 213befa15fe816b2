package kvstore

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type prefs struct {
	Theme string   `json:"theme"`
	Seen  []string `json:"seen"`
}

func TestStore_SaveLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := New(fs, "data/kv")

	require.True(t, s.Save("prefs", prefs{Theme: "dark", Seen: []string{"faq"}}))

	var got prefs
	require.True(t, s.Load("prefs", &got))
	assert.Equal(t, prefs{Theme: "dark", Seen: []string{"faq"}}, got)

	exists, err := afero.Exists(fs, "data/kv/prefs.json")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestStore_LoadMissing(t *testing.T) {
	s := New(afero.NewMemMapFs(), "kv")
	var v string
	assert.False(t, s.Load("nothing", &v))
}

func TestStore_LoadCorrupt(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "kv/bad.json", []byte("{"), 0o644))

	var v map[string]any
	assert.False(t, New(fs, "kv").Load("bad", &v))
}

func TestStore_SaveUnencodable(t *testing.T) {
	s := New(afero.NewMemMapFs(), "kv")
	assert.False(t, s.Save("ch", make(chan int)))
}

func TestStore_InvalidKeys(t *testing.T) {
	s := New(afero.NewMemMapFs(), "kv")
	for _, k := range []string{"", ".", "..", "../escape", `a\b`} {
		assert.False(t, s.Save(k, 1), k)
		assert.False(t, s.Remove(k), k)
	}
}

func TestStore_RemoveAndClear(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := New(fs, "kv")
	require.True(t, s.Save("a", 1))
	require.True(t, s.Save("b", 2))
	require.NoError(t, afero.WriteFile(fs, "kv/notes.txt", []byte("keep"), 0o644))

	assert.True(t, s.Remove("a"))
	assert.True(t, s.Remove("a"), "removing twice is fine")
	assert.Equal(t, []string{"b"}, s.Keys())

	assert.True(t, s.Clear())
	assert.Empty(t, s.Keys())
	exists, _ := afero.Exists(fs, "kv/notes.txt")
	assert.True(t, exists, "only values are cleared")
}

func TestStore_ClearMissingDir(t *testing.T) {
	assert.True(t, New(afero.NewMemMapFs(), "never").Clear())
}

func TestStore_ReadOnlyFs(t *testing.T) {
	s := New(afero.NewReadOnlyFs(afero.NewMemMapFs()), "kv")
	assert.False(t, s.Save("x", 1))
}
