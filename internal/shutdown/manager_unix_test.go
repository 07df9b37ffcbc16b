//go:build unix

package shutdown

import (
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenHandlesSignal(t *testing.T) {
	var r recorder
	m := NewManager(nil, time.Second)
	m.OnShutdown("controller", r.hook("controller", 0))
	signalled := make(chan struct{})
	m.Listen(func() { close(signalled) })

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case <-signalled:
	case <-time.After(2 * time.Second):
		t.Fatal("signal not handled")
	}
	assert.Equal(t, []string{"controller"}, r.names())
	assert.Error(t, m.Context().Err())
}
