package handlers_test

import (
	"os"
	"testing"

	"gradproject-teams/internal/testutils"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
