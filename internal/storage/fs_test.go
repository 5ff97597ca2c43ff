package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/benbeisheim/jungle-backend/internal/model"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewFS(t.TempDir())
	gs := model.NewGameState()
	require.NoError(t, gs.MakeMove(model.Position{Row: 2, Col: 4}, model.Position{Row: 3, Col: 4}))

	require.NoError(t, store.Save("midgame", gs.Save()))

	doc, err := store.Load("midgame")
	require.NoError(t, err)

	restored, err := model.RestoreGameState(doc)
	require.NoError(t, err)
	require.Equal(t, model.PlayerBlue, restored.ToMove())
	require.Len(t, restored.MoveHistory(), 1)
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "saves")
	store := NewFS(dir)

	require.NoError(t, store.Save("first", model.NewGameState().Save()))

	_, err := os.Stat(filepath.Join(dir, "first.json"))
	require.NoError(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	store := NewFS(t.TempDir())

	_, err := store.Load("nope")
	require.ErrorIs(t, err, model.ErrIOFailure)
}

func TestLoadGarbageFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644))

	_, err := NewFS(dir).Load("broken")
	require.ErrorIs(t, err, model.ErrCorruptSave)
}

func TestNameSanitizing(t *testing.T) {
	dir := t.TempDir()
	store := NewFS(dir)

	require.NoError(t, store.Save("../escape", model.NewGameState().Save()))

	_, err := os.Stat(filepath.Join(dir, "escape.json"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(filepath.Dir(dir), "escape.json"))
	require.True(t, os.IsNotExist(err))
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	store := NewFS(dir)

	names, err := store.List()
	require.NoError(t, err)
	require.Empty(t, names)

	doc := model.NewGameState().Save()
	require.NoError(t, store.Save("alpha", doc))
	require.NoError(t, store.Save("beta", doc))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	names, err = store.List()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"alpha", "beta"}, names)
}

func TestListMissingDirectory(t *testing.T) {
	store := NewFS(filepath.Join(t.TempDir(), "never-created"))

	names, err := store.List()
	require.NoError(t, err)
	require.Nil(t, names)
}
