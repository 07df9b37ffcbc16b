package app

import (
	"context"
	"sync"
	"time"

	"employee-list/internal/directory"
	"employee-list/internal/gui"
	"employee-list/internal/hibob"
	"employee-list/internal/logger"
	"employee-list/internal/session"
)

// Fetcher retrieves the raw people payload.
type Fetcher interface {
	FetchEmployees(ctx context.Context, token string) ([]byte, error)
}

// FileWriter persists the export.
type FileWriter interface {
	WriteFile(path, text string) error
}

// View is the part of the form the controller drives.
type View interface {
	SetTokenChangedHandler(handler func(string))
	SetFetchHandler(handler func())
	SetSaveHandler(handler func())
	SetHelpHandler(handler func(visible bool))
	Render(s session.State)
}

// Controller turns user actions into session actions and side effects.
// Its exported handlers run on the UI thread.
type Controller struct {
	store   *session.Store
	fetcher Fetcher
	chooser gui.SavePathChooser
	writer  FileWriter
	logger  logger.Logger
	now     func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewController(
	ctx context.Context,
	store *session.Store,
	fetcher Fetcher,
	chooser gui.SavePathChooser,
	writer FileWriter,
	log logger.Logger,
) *Controller {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	ctx, cancel := context.WithCancel(ctx)
	return &Controller{
		store:   store,
		fetcher: fetcher,
		chooser: chooser,
		writer:  writer,
		logger:  log,
		now:     time.Now,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Bind connects the view's inputs to the controller and subscribes it to
// state changes.
func (c *Controller) Bind(view View) {
	view.SetTokenChangedHandler(c.TokenChanged)
	view.SetFetchHandler(c.Fetch)
	view.SetSaveHandler(c.Save)
	view.SetHelpHandler(c.ToggleHelp)
	c.store.Subscribe(view.Render)
}

func (c *Controller) TokenChanged(token string) {
	c.store.Dispatch(session.TokenChanged{Token: token})
}

func (c *Controller) ToggleHelp(visible bool) {
	c.store.Dispatch(session.HelpToggled{Visible: visible})
}

// Fetch starts one request in the background. The outcome is posted back to
// the UI thread as exactly one action.
func (c *Controller) Fetch() {
	state := c.store.State()
	if !state.CanFetch() {
		c.logger.Debug("Controller", "fetch ignored without token", nil)
		return
	}

	token := state.Token
	c.store.Dispatch(session.FetchStarted{})

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.store.Post(c.load(token))
	}()
}

func (c *Controller) load(token string) session.Action {
	start := c.now()

	body, err := c.fetcher.FetchEmployees(c.ctx, token)
	if err != nil {
		c.logger.Error("Controller", err, map[string]interface{}{"stage": "fetch"})
		return session.FetchFailed{Err: err}
	}

	employees, err := hibob.Decode(body)
	if err != nil {
		c.logger.Error("Controller", err, map[string]interface{}{
			"stage": "decode",
			"bytes": len(body),
		})
		return session.FetchFailed{Err: err}
	}

	c.logger.Info("Controller", "employee list loaded", map[string]interface{}{
		"employees":   len(employees),
		"duration_ms": c.now().Sub(start).Milliseconds(),
	})
	return session.FetchSucceeded{Employees: directory.Sort(employees)}
}

// Save exports the list held at the moment of the click. Cancelling the
// dialog writes nothing.
func (c *Controller) Save() {
	state := c.store.State()
	if !state.CanSave() {
		c.logger.Debug("Controller", "save ignored before a successful fetch", nil)
		return
	}

	text := directory.FormatCSV(state.Employees)
	suggested := directory.SuggestedFileName(c.now())

	c.chooser.ChooseSavePath(suggested, func(path string, ok bool) {
		if !ok {
			c.logger.Debug("Controller", "save cancelled", nil)
			return
		}

		err := c.writer.WriteFile(path, text)
		c.store.Dispatch(session.SaveFinished{Path: path, Err: err})
	})
}

// Wait blocks until every fetch started so far has posted its result.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Shutdown cancels in-flight requests and waits for them to return.
func (c *Controller) Shutdown() {
	c.cancel()
	c.wg.Wait()
	c.logger.Debug("Controller", "shutdown completed", nil)
}
