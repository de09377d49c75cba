package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"toolmanager/internal/tools"
)

func newTestDispatcher(t *testing.T, approver tools.Approver) *tools.Dispatcher {
	t.Helper()
	dispatcher, err := tools.NewDispatcher(tools.NewBuiltinRegistry(), tools.Options{
		WorkDir:  t.TempDir(),
		HomeDir:  t.TempDir(),
		Policy:   tools.DefaultPolicy(),
		Approver: approver,
	})
	require.NoError(t, err)
	return dispatcher
}
