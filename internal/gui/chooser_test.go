package gui

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChooser(t *testing.T, dir string) *FileDialogChooser {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	w := test.NewWindow(widget.NewLabel(""))
	t.Cleanup(w.Close)
	c := NewFileDialogChooser(w, nil)
	c.dir = dir
	return c
}

func TestSaveDialogLeavesExistingFileAlone(t *testing.T) {
	dir := t.TempDir()
	name := "WT employee list 2020-09-03.csv"
	existing := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(existing, []byte("OLD;EXPORT;keep@me\n"), 0o644))

	c := newTestChooser(t, dir)
	var gotPath string
	var gotOK bool
	d := c.newSaveDialog(name, func(path string, ok bool) { gotPath, gotOK = path, ok })
	d.Show()
	d.Submit()

	assert.True(t, gotOK)
	assert.Equal(t, existing, gotPath)
	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "OLD;EXPORT;keep@me\n", string(data))
}

func TestSaveDialogCancel(t *testing.T) {
	dir := t.TempDir()
	c := newTestChooser(t, dir)
	calls := 0
	var gotOK bool
	d := c.newSaveDialog("list.csv", func(_ string, ok bool) { calls++; gotOK = ok })
	d.Show()
	d.Hide()

	assert.Equal(t, 1, calls)
	assert.False(t, gotOK)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveFormFolderChange(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()

	form := newSaveForm(first, "list.csv")
	form.setDir(second)
	path, err := form.path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(second, "list.csv"), path)
	assert.Equal(t, second, form.dirLabel.Text)
}

func TestSaveFormTrimsName(t *testing.T) {
	form := newSaveForm("/exports", "  list.csv ")

	path, err := form.path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/exports", "list.csv"), path)
}

func TestValidateFileName(t *testing.T) {
	for _, tc := range []struct {
		name  string
		valid bool
	}{
		{"WT employee list 2020-09-03.csv", true},
		{"list", true},
		{"", false},
		{"   ", false},
		{".", false},
		{"..", false},
		{"sub/list.csv", false},
		{`sub\list.csv`, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := validateFileName(tc.name)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestStubChooser(t *testing.T) {
	stub := &StubChooser{}
	var gotOK bool
	stub.ChooseSavePath("WT employee list 2020-09-03.csv", func(_ string, ok bool) { gotOK = ok })
	assert.False(t, gotOK)

	stub.OK, stub.Path = true, "/tmp/x.csv"
	var gotPath string
	stub.ChooseSavePath("again.csv", func(path string, ok bool) { gotPath, gotOK = path, ok })
	assert.True(t, gotOK)
	assert.Equal(t, "/tmp/x.csv", gotPath)
	assert.Equal(t, []string{"WT employee list 2020-09-03.csv", "again.csv"}, stub.Suggested)
}
