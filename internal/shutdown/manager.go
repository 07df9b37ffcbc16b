// Package shutdown ties the process lifetime to a context. The context ends
// on SIGINT or SIGTERM, or when Shutdown is called; the registered hooks then
// run newest first.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"slices"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"employee-list/internal/logger"
)

type hook struct {
	name string
	fn   func()
}

type Manager struct {
	logger  logger.Logger
	timeout time.Duration

	ctx  context.Context
	stop context.CancelFunc

	mu        sync.Mutex
	hooks     []hook
	once      sync.Once
	requested atomic.Bool
}

func NewManager(log logger.Logger, timeout time.Duration) *Manager {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	return &Manager{
		logger:  log,
		timeout: timeout,
		ctx:     ctx,
		stop:    stop,
	}
}

// OnShutdown registers fn to run once the context has ended. Each hook gets
// the manager's timeout before the next one starts.
func (m *Manager) OnShutdown(name string, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hooks = append(m.hooks, hook{name: name, fn: fn})
}

// Context is cancelled as soon as shutdown starts.
func (m *Manager) Context() context.Context {
	return m.ctx
}

// Listen runs the hooks and then onSignal when a signal ends the context.
// It does nothing if Shutdown was called first.
func (m *Manager) Listen(onSignal func()) {
	go func() {
		<-m.ctx.Done()
		if m.requested.Load() {
			return
		}

		m.logger.Info("ShutdownManager", "shutdown signal received", nil)
		m.Shutdown()
		if onSignal != nil {
			onSignal()
		}
	}()
}

// Shutdown cancels the context and runs the hooks. Later calls block until
// the first one has finished.
func (m *Manager) Shutdown() {
	m.once.Do(func() {
		m.requested.Store(true)
		m.stop()

		m.mu.Lock()
		hooks := slices.Clone(m.hooks)
		m.mu.Unlock()

		m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
			"hooks": len(hooks),
		})
		for i := len(hooks) - 1; i >= 0; i-- {
			m.run(hooks[i])
		}
		m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
	})
}

func (m *Manager) run(h hook) {
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		h.fn()
	}()

	select {
	case <-finished:
	case <-time.After(m.timeout):
		m.logger.Warning("ShutdownManager", "shutdown hook timed out", map[string]interface{}{
			"hook":    h.name,
			"timeout": m.timeout.String(),
		})
	}
}
