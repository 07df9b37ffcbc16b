package session

import "employee-list/internal/logger"

// UIThread schedules fn on the goroutine that owns the store. In the
// application this is fyne.Do.
type UIThread func(fn func())

// Store owns the current State. Dispatch must only be called on the UI
// thread; background work hands its result over with Post.
type Store struct {
	state     State
	uiThread  UIThread
	listeners []func(State)
	logger    logger.Logger
}

func NewStore(uiThread UIThread, log logger.Logger) *Store {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Store{uiThread: uiThread, logger: log}
}

func (s *Store) State() State {
	return s.state
}

// Subscribe registers fn and immediately calls it with the current state.
func (s *Store) Subscribe(fn func(State)) {
	s.listeners = append(s.listeners, fn)
	fn(s.state)
}

func (s *Store) Dispatch(action Action) {
	before := s.state.Phase()
	s.state = Reduce(s.state, action)

	if after := s.state.Phase(); after != before {
		s.logger.Debug("SessionStore", "phase changed", map[string]interface{}{
			"from":      before.String(),
			"to":        after.String(),
			"employees": len(s.state.Employees),
		})
	}

	for _, fn := range s.listeners {
		fn(s.state)
	}
}

// Post dispatches action on the UI thread. Safe from any goroutine.
func (s *Store) Post(action Action) {
	s.uiThread(func() {
		s.Dispatch(action)
	})
}
