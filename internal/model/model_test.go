package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateKnown(t *testing.T) {
	t.Parallel()

	require.False(t, State{}.Known())
	require.True(t, State{Exists: true}.Known())
	require.True(t, State{Exists: true, Value: "enabled"}.Known())
	require.True(t, State{Value: "disabled"}.Known())
}

func TestResultFailed(t *testing.T) {
	t.Parallel()

	res := &Result{Status: StatusApplied}
	require.False(t, res.Failed())
	require.NoError(t, res.FirstError())

	first := errors.New("stop timed out")
	res.Errors = append(res.Errors, first, errors.New("start refused"))
	require.True(t, res.Failed())
	require.ErrorIs(t, res.FirstError(), first)
}
