package gui

import (
	"image/color"

	"employee-list/internal/models"
	"employee-list/internal/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	Title            = "Employee list generator"
	TokenPlaceholder = "Insert Access token..."
	FetchLabel       = "Get list from HiBob"
	SaveLabel        = "Save employee list"
	HelpCloseLabel   = "Close"
	HelpText         = "To get an Access token, log in to HiBob and click on your name in the top right. " +
		"Then select API Access and copy the token.\n\n" +
		"If you don't have a token, generate one and check 'Full employee read'."

	helpWidth  = 200
	helpHeight = 180
)

// View is the single form of the application. It renders session state and
// forwards user input to the handlers set by the controller.
type View struct {
	window fyne.Window

	title           *canvas.Text
	tokenEntry      *widget.Entry
	helpButton      *widget.Button
	helpPopUp       *widget.PopUp
	helpCloseButton *widget.Button
	fetchButton     *widget.Button
	list            *widget.List
	saveButton      *widget.Button
	statusLabel     *widget.Label
	content         *fyne.Container

	// rows is what the list shows; replaced together with the session list.
	rows []models.Employee

	tokenChangedHandler func(string)
	fetchHandler        func()
	saveHandler         func()
	helpHandler         func(bool)
}

func NewView(window fyne.Window) *View {
	v := &View{window: window}
	v.initializeComponents()
	v.buildLayout()
	return v
}

func (v *View) initializeComponents() {
	v.title = canvas.NewText(Title, theme.Color(theme.ColorNameForeground))
	v.title.TextSize = 28
	v.title.TextStyle = fyne.TextStyle{Bold: true}
	v.title.Alignment = fyne.TextAlignCenter

	v.tokenEntry = widget.NewPasswordEntry()
	v.tokenEntry.SetPlaceHolder(TokenPlaceholder)
	v.tokenEntry.OnChanged = func(token string) {
		if v.tokenChangedHandler != nil {
			v.tokenChangedHandler(token)
		}
	}

	v.helpButton = widget.NewButton("?", func() {
		if v.helpHandler != nil {
			v.helpHandler(!v.helpPopUp.Visible())
		}
	})

	helpLabel := widget.NewLabel(HelpText)
	helpLabel.Wrapping = fyne.TextWrapWord
	helpBox := container.NewGridWrap(fyne.NewSize(helpWidth, helpHeight), helpLabel)
	v.helpCloseButton = widget.NewButton(HelpCloseLabel, func() {
		if v.helpHandler != nil {
			v.helpHandler(false)
		}
	})
	// Modal so that a tap outside cannot hide it behind the session's back;
	// the close button is the only way out.
	v.helpPopUp = widget.NewModalPopUp(
		container.NewPadded(container.NewVBox(helpBox, v.helpCloseButton)),
		v.window.Canvas(),
	)
	// A fresh pop-up reports itself visible until it is hidden once.
	v.helpPopUp.Hide()

	v.fetchButton = widget.NewButton(FetchLabel, func() {
		if v.fetchHandler != nil {
			v.fetchHandler()
		}
	})
	v.fetchButton.Importance = widget.HighImportance

	v.list = widget.NewList(
		func() int { return len(v.rows) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(v.rows) {
				return
			}
			obj.(*widget.Label).SetText(v.rows[id].Row())
		},
	)

	v.saveButton = widget.NewButton(SaveLabel, func() {
		if v.saveHandler != nil {
			v.saveHandler()
		}
	})

	v.statusLabel = widget.NewLabel("")
	v.statusLabel.TextStyle = fyne.TextStyle{Italic: true}
}

func (v *View) buildLayout() {
	tokenRow := container.NewBorder(nil, nil, nil, v.helpButton, v.tokenEntry)

	top := container.NewVBox(
		v.title,
		tokenRow,
		v.fetchButton,
	)

	divider := canvas.NewRectangle(color.Transparent)
	divider.SetMinSize(fyne.NewSize(0, theme.Padding()))

	bottom := container.NewVBox(
		divider,
		v.saveButton,
		v.statusLabel,
	)

	v.content = container.NewBorder(top, bottom, nil, nil, v.list)
}

func (v *View) Content() fyne.CanvasObject {
	return v.content
}

func (v *View) Window() fyne.Window {
	return v.window
}

func (v *View) SetTokenChangedHandler(handler func(string)) {
	v.tokenChangedHandler = handler
}

func (v *View) SetFetchHandler(handler func()) {
	v.fetchHandler = handler
}

func (v *View) SetSaveHandler(handler func()) {
	v.saveHandler = handler
}

func (v *View) SetHelpHandler(handler func(visible bool)) {
	v.helpHandler = handler
}

// Render brings every widget in line with s. Must run on the UI thread.
func (v *View) Render(s session.State) {
	if s.CanFetch() {
		v.fetchButton.Enable()
	} else {
		v.fetchButton.Disable()
	}

	if s.CanSave() {
		v.saveButton.Enable()
	} else {
		v.saveButton.Disable()
	}

	if s.Phase() == session.Fetching {
		v.fetchButton.SetText(FetchLabel + "...")
	} else {
		v.fetchButton.SetText(FetchLabel)
	}

	if !sameRows(v.rows, s.Employees) {
		v.rows = s.Employees
		v.list.Refresh()
	}

	v.statusLabel.SetText(s.Notice)
	v.renderHelp(s.HelpVisible)
}

func (v *View) renderHelp(visible bool) {
	switch {
	case visible && !v.helpPopUp.Visible():
		v.helpPopUp.Show()
	case !visible && v.helpPopUp.Visible():
		v.helpPopUp.Hide()
	}
}

// Rows exposes what the list currently displays.
func (v *View) Rows() []string {
	out := make([]string, len(v.rows))
	for i, e := range v.rows {
		out[i] = e.Row()
	}
	return out
}

func (v *View) FetchEnabled() bool {
	return !v.fetchButton.Disabled()
}

func (v *View) SaveEnabled() bool {
	return !v.saveButton.Disabled()
}

func (v *View) Status() string {
	return v.statusLabel.Text
}

func sameRows(a, b []models.Employee) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}
