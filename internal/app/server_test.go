//go:build !integration

package app

import (
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewServer(t *testing.T) {
	server := NewServer(okHandler(), "8080")

	assert.NotNil(t, server)
	assert.NotNil(t, server.httpServer)
	assert.Equal(t, ":8080", server.httpServer.Addr)
	assert.Equal(t, 10*time.Second, server.httpServer.ReadTimeout)
	assert.Equal(t, 20*time.Second, server.httpServer.WriteTimeout)
	assert.Equal(t, 90*time.Second, server.httpServer.IdleTimeout)
	assert.Equal(t, 15*time.Second, server.drainTimeout)
}

func TestServer_Shutdown(t *testing.T) {
	server := NewServer(okHandler(), "0")

	err := server.Shutdown()
	assert.NoError(t, err)
}

func TestServer_ShutdownRunsDrainsInOrder(t *testing.T) {
	var order []string
	server := NewServer(okHandler(), "0",
		func() { order = append(order, "delivery") },
		func() { order = append(order, "logger") },
		func() { order = append(order, "db") },
	)

	require.NoError(t, server.Shutdown())
	assert.Equal(t, []string{"delivery", "logger", "db"}, order)
}

func TestServer_Run_GracefulShutdownOnSignal(t *testing.T) {
	drained := false
	server := NewServer(okHandler(), "0", func() { drained = true })

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run()
	}()

	// Let the listener come up before signaling.
	time.Sleep(100 * time.Millisecond)

	proc, _ := os.FindProcess(os.Getpid())
	_ = proc.Signal(syscall.SIGTERM)

	select {
	case err := <-errChan:
		assert.NoError(t, err)
		assert.True(t, drained)
	case <-time.After(2 * time.Second):
		t.Fatal("Server did not shutdown in time")
	}
}
