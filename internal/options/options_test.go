package options

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "dropdown-options.json")

	s := Load(path)
	require.Equal(t, Defaults(), s.All())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk Dropdowns
	require.NoError(t, json.Unmarshal(data, &onDisk))
	require.Equal(t, Defaults(), onDisk)
}

func TestLoad_CorruptFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := Load(path)
	require.Equal(t, Defaults().Statuses, s.Statuses())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, json.Valid(data))
}

func TestLoad_BackfillsProjects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.json")
	// key casing of files written by the desktop tracker
	legacy := `{"TaskTypes":[{"Value":0,"Display":"Dev"}],"Statuses":["Open"],"Priorities":[{"Value":5,"Display":"Top"}]}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	s := Load(path)
	require.Equal(t, []Choice{{Value: 0, Display: "Dev"}}, s.TaskTypes())
	require.Equal(t, []string{"Open"}, s.Statuses())
	require.Equal(t, []Choice{{Value: 5, Display: "Top"}}, s.Priorities())
	require.Equal(t, DefaultProjects(), s.Projects())

	reloaded := Load(path)
	require.Equal(t, DefaultProjects(), reloaded.Projects())
	require.Equal(t, []string{"Open"}, reloaded.Statuses())
}

func TestLoad_KeepsValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.json")
	want := Dropdowns{Statuses: []string{"A"}, Projects: []string{}}
	data, err := json.Marshal(want)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	s := Load(path)
	require.Equal(t, []string{"A"}, s.Statuses())
	require.Empty(t, s.Projects())
}

func TestGetters_ReturnCopies(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "options.json"))
	statuses := s.Statuses()
	statuses[0] = "mutated"
	require.NotEqual(t, "mutated", s.Statuses()[0])
}
