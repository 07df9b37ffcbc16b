package app

import (
	"time"

	"employee-list/internal/config"
	"employee-list/internal/gui"
	"employee-list/internal/hibob"
	"employee-list/internal/logger"
	"employee-list/internal/session"
	"employee-list/internal/shutdown"
	"employee-list/internal/storage"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const (
	AppName    = "Employee List"
	AppID      = "com.hibob.employeelist"
	AppVersion = "1.0.0"

	shutdownTimeout = 5 * time.Second
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	view       *gui.View
	controller *Controller
	lifecycle  *shutdown.Manager
	logger     logger.Logger
}

func NewApplication(cfg config.Config, log logger.Logger) *Application {
	fyneApp := fyneapp.NewWithID(AppID)
	window := fyneApp.NewWindow(gui.Title)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()

	lifecycle := shutdown.NewManager(log, shutdownTimeout)

	store := session.NewStore(fyne.Do, log)
	client := hibob.NewClient(cfg.APIURL, nil, log)
	view := gui.NewView(window)
	controller := NewController(
		lifecycle.Context(),
		store,
		client,
		gui.NewFileDialogChooser(window, log),
		storage.NewAtomicWriter(log),
		log,
	)
	controller.Bind(view)
	lifecycle.OnShutdown("controller", controller.Shutdown)

	log.Info("Application", "initialized", map[string]interface{}{
		"version":  AppVersion,
		"endpoint": client.URL(),
	})

	return &Application{
		fyneApp:    fyneApp,
		window:     window,
		view:       view,
		controller: controller,
		lifecycle:  lifecycle,
		logger:     log,
	}
}

// Run shows the window and blocks until the application quits.
func (a *Application) Run() {
	a.window.SetContent(a.view.Content())
	a.window.SetMaster()
	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "window closed", nil)
		a.lifecycle.Shutdown()
	})

	a.lifecycle.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.window.ShowAndRun()
	a.lifecycle.Shutdown()
}
