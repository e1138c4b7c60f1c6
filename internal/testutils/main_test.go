package testutils

import (
	"os"
	"os/signal"
	"syscall"
	"testing"
)

// TestMain makes sure the shared Postgres container is purged even when the
// run is interrupted
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	CleanupSharedContainer()
	os.Exit(code)
}
