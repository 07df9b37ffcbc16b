package gui

import (
	"os"
	"path/filepath"
	"strings"

	"employee-list/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/pkg/errors"
)

const (
	SaveDialogTitle = "Save a file"
	SaveConfirm     = "Save"
	SaveDismiss     = "Cancel"
	BrowseLabel     = "Browse..."
)

// SavePathChooser asks the user where to store the export. done receives
// ok=false when the user cancels.
type SavePathChooser interface {
	ChooseSavePath(suggestedName string, done func(path string, ok bool))
}

// FileDialogChooser asks for a folder and a file name in a form dialog. It
// only composes the destination path and never opens the file itself, so an
// existing export is untouched until the writer replaces it.
type FileDialogChooser struct {
	window fyne.Window
	logger logger.Logger

	// dir is where the next save starts; it follows the last confirmed folder.
	dir string
}

func NewFileDialogChooser(window fyne.Window, log logger.Logger) *FileDialogChooser {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		dir = "."
	}
	return &FileDialogChooser{window: window, logger: log, dir: dir}
}

func (c *FileDialogChooser) ChooseSavePath(suggestedName string, done func(path string, ok bool)) {
	c.newSaveDialog(suggestedName, done).Show()
}

func (c *FileDialogChooser) newSaveDialog(suggestedName string, done func(path string, ok bool)) *dialog.FormDialog {
	form := newSaveForm(c.dir, suggestedName)
	browse := widget.NewButton(BrowseLabel, func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil {
				c.logger.Error("SaveDialog", err, nil)
				return
			}
			if uri != nil {
				form.setDir(uri.Path())
			}
		}, c.window)
	})

	items := []*widget.FormItem{
		widget.NewFormItem("File name", form.name),
		widget.NewFormItem("Folder", container.NewBorder(nil, nil, nil, browse, form.dirLabel)),
	}

	return dialog.NewForm(SaveDialogTitle, SaveConfirm, SaveDismiss, items, func(confirmed bool) {
		if !confirmed {
			done("", false)
			return
		}

		path, err := form.path()
		if err != nil {
			c.logger.Warning("SaveDialog", "invalid destination", map[string]interface{}{
				"error": err.Error(),
			})
			dialog.ShowError(err, c.window)
			done("", false)
			return
		}

		c.dir = form.dir
		done(path, true)
	}, c.window)
}

// saveForm holds the inputs of the save dialog.
type saveForm struct {
	name     *widget.Entry
	dirLabel *widget.Label
	dir      string
}

func newSaveForm(dir, suggestedName string) *saveForm {
	f := &saveForm{
		name:     widget.NewEntry(),
		dirLabel: widget.NewLabel(""),
	}
	f.name.SetText(suggestedName)
	f.name.Validator = validateFileName
	f.dirLabel.Truncation = fyne.TextTruncateEllipsis
	f.setDir(dir)
	return f
}

func (f *saveForm) setDir(dir string) {
	f.dir = dir
	f.dirLabel.SetText(dir)
}

func (f *saveForm) path() (string, error) {
	name := strings.TrimSpace(f.name.Text)
	if err := validateFileName(name); err != nil {
		return "", err
	}
	return filepath.Join(f.dir, name), nil
}

func validateFileName(name string) error {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return errors.New("file name is empty")
	case name == "." || name == "..":
		return errors.Errorf("%q is not a file name", name)
	case strings.ContainsAny(name, `/\`):
		return errors.New("file name must not contain a path separator")
	}
	return nil
}

// StubChooser answers without any UI. It is used headless and in tests.
type StubChooser struct {
	Path string
	OK   bool

	Suggested []string
}

func (s *StubChooser) ChooseSavePath(suggestedName string, done func(path string, ok bool)) {
	s.Suggested = append(s.Suggested, suggestedName)
	if !s.OK {
		done("", false)
		return
	}
	done(s.Path, true)
}
