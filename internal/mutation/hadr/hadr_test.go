package hadr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Prasad4455/dbatools/internal/model"
	"github.com/Prasad4455/dbatools/internal/target"
)

type hadrSession struct {
	enabled bool
	readErr error
	setErr  error
	sets    []bool
}

func (s *hadrSession) Close() error { return nil }

func (s *hadrSession) HadrEnabled(context.Context) (bool, error) {
	if s.readErr != nil {
		return false, s.readErr
	}
	return s.enabled, nil
}

func (s *hadrSession) SetHadrEnabled(_ context.Context, enabled bool) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.sets = append(s.sets, enabled)
	s.enabled = enabled
	return nil
}

type bareSession struct{}

func (bareSession) Close() error { return nil }

func TestReadRendersFlagValue(t *testing.T) {
	t.Parallel()

	m := NewDisable()

	state, err := m.Read(context.Background(), &hadrSession{enabled: true})
	require.NoError(t, err)
	require.Equal(t, model.State{Exists: true, Value: ValueEnabled}, state)

	state, err = m.Read(context.Background(), &hadrSession{enabled: false})
	require.NoError(t, err)
	require.Equal(t, model.State{Exists: true, Value: ValueDisabled}, state)
}

func TestReadPropagatesQueryFailure(t *testing.T) {
	t.Parallel()

	m := NewDisable()
	boom := errors.New("property query failed")

	_, err := m.Read(context.Background(), &hadrSession{readErr: boom})
	require.ErrorIs(t, err, boom)
}

func TestReadRejectsIncapableSession(t *testing.T) {
	t.Parallel()

	m := NewDisable()
	_, err := m.Read(context.Background(), bareSession{})
	require.Error(t, err)
}

func TestApplySetsFlagToDisabled(t *testing.T) {
	t.Parallel()

	m := NewDisable()
	sess := &hadrSession{enabled: true}

	err := m.Apply(context.Background(), sess, model.State{Exists: true, Value: ValueEnabled})
	require.NoError(t, err)
	require.Equal(t, []bool{false}, sess.sets)
}

func TestSatisfiedOnlyWhenDisabled(t *testing.T) {
	t.Parallel()

	m := NewDisable()
	require.True(t, m.Satisfied(model.State{Exists: true, Value: ValueDisabled}))
	require.False(t, m.Satisfied(model.State{Exists: true, Value: ValueEnabled}))
}

func TestNeverSkipsUnconditionally(t *testing.T) {
	t.Parallel()

	m := NewDisable()
	skip, _ := m.Skip(model.State{Exists: true, Value: ValueDisabled})
	require.False(t, skip)
}

func TestDescribeNamesTargetAndTransition(t *testing.T) {
	t.Parallel()

	m := NewDisable()
	desc := m.Describe(target.New("sql01", "DEV1"), model.State{Exists: true, Value: ValueEnabled})
	require.Contains(t, desc, `sql01\DEV1`)
	require.Contains(t, desc, "currently enabled")
}

func TestRequiresRestart(t *testing.T) {
	t.Parallel()

	require.True(t, NewDisable().RequiresRestart())
}
