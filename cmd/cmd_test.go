package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/glassnotes/internal/notes"
)

// run executes the root command against a scratch database.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	base := []string{
		"--config", filepath.Join(dir, "config.yaml"),
		"--db", filepath.Join(dir, "notes.db"),
		"--log-level", "error",
	}
	rootCmd.SetArgs(append(args, base...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCLI_AddListEditDelete(t *testing.T) {
	t.Setenv("GLASSNOTES_NOTIFY_ENABLED", "false")
	dir := t.TempDir()

	out, err := run(t, dir, "add", "buy", "milk")
	require.NoError(t, err)
	assert.Equal(t, "Note 1 added.\n", out)

	_, err = run(t, dir, "add", "call mom")
	require.NoError(t, err)

	out, err = run(t, dir, "list", "--format", "json", "--limit", "0")
	require.NoError(t, err)
	var got struct {
		Notes []notes.Note `json:"notes"`
		Total int          `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, 2, got.Total)
	assert.Equal(t, "buy milk", got.Notes[0].Body)
	assert.Equal(t, "call mom", got.Notes[1].Title)

	_, err = run(t, dir, "edit", "1", "buy oat milk")
	require.NoError(t, err)
	out, err = run(t, dir, "list", "--format", "quiet", "--limit", "0")
	require.NoError(t, err)
	assert.Equal(t, "buy oat milk\ncall mom\n", out)

	out, err = run(t, dir, "delete", "2")
	require.NoError(t, err)
	assert.Equal(t, "Note 2 deleted.\n", out)

	out, err = run(t, dir, "list", "--format", "quiet", "--limit", "1")
	require.NoError(t, err)
	assert.Equal(t, "buy oat milk\n", out)
}

func TestCLI_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "delete", "42")
	assert.ErrorContains(t, err, "not found")

	_, err = run(t, dir, "edit", "x", "text")
	assert.ErrorContains(t, err, "invalid note ID")

	_, err = run(t, dir, "add", "   ")
	assert.Error(t, err)

	_, err = run(t, dir, "list", "--format", "xml")
	assert.Error(t, err)
}

func TestCLI_MalformedIDsTouchNothing(t *testing.T) {
	t.Setenv("GLASSNOTES_NOTIFY_ENABLED", "false")
	dir := t.TempDir()
	for i := 0; i < 16; i++ {
		_, err := run(t, dir, "add", "note")
		require.NoError(t, err)
	}

	for _, id := range []string{"12abc", "0x10", "7 8", "1e3", "0", "+"} {
		_, err := run(t, dir, "delete", id)
		assert.ErrorContains(t, err, "invalid note ID", "delete %q", id)
		_, err = run(t, dir, "edit", id, "changed")
		assert.ErrorContains(t, err, "invalid note ID", "edit %q", id)
	}

	out, err := run(t, dir, "list", "--format", "json", "--limit", "0")
	require.NoError(t, err)
	var got struct {
		Notes []notes.Note `json:"notes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Notes, 16)
	for _, n := range got.Notes {
		assert.Equal(t, "note", n.Body)
	}
}

func TestNoteID(t *testing.T) {
	id, err := noteID("12")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	for _, s := range []string{"", "12abc", "0x10", "7 8", "1e3", "0", "-3", " 5"} {
		_, err := noteID(s)
		assert.Error(t, err, s)
	}
}

func TestCLI_Version(t *testing.T) {
	out, err := run(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "glassnotes")
}
