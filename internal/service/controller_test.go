package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const queryOutputTemplate = `
SERVICE_NAME: %s
        TYPE               : 10  WIN32_OWN_PROCESS
        STATE              : 4  %s
        WIN32_EXIT_CODE    : 0  (0x0)
`

func testController(run runFunc) *ScController {
	return &ScController{
		WaitTimeout:  200 * time.Millisecond,
		PollInterval: 5 * time.Millisecond,
		run:          run,
	}
}

// scriptedRun records invocations and answers queries from a state map.
type scriptedRun struct {
	states   map[string]string
	commands [][]string
	startErr error
}

func (s *scriptedRun) fn(_ context.Context, args ...string) (string, error) {
	s.commands = append(s.commands, args)

	verb, name := args[1], args[2]
	switch verb {
	case "stop":
		s.states[name] = "STOPPED"
		return "", nil
	case "start":
		if s.startErr != nil {
			return "start failed", s.startErr
		}
		s.states[name] = "RUNNING"
		return "", nil
	case "query":
		return strings.ReplaceAll(queryOutputTemplate, "%s", s.states[name]), nil
	}
	return "", errors.New("unexpected verb " + verb)
}

func TestStopServicesStopsInOrder(t *testing.T) {
	t.Parallel()

	run := &scriptedRun{states: map[string]string{"SQLAgent$DEV1": "RUNNING", "MSSQL$DEV1": "RUNNING"}}
	c := testController(run.fn)

	err := c.StopServices(context.Background(), "sql01", []string{"SQLAgent$DEV1", "MSSQL$DEV1"})
	require.NoError(t, err)

	var stops []string
	for _, cmd := range run.commands {
		require.Equal(t, `\\sql01`, cmd[0])
		if cmd[1] == "stop" {
			stops = append(stops, cmd[2])
		}
	}
	require.Equal(t, []string{"SQLAgent$DEV1", "MSSQL$DEV1"}, stops)
}

func TestStopTreatsNotStartedAsStopped(t *testing.T) {
	t.Parallel()

	calls := 0
	run := func(_ context.Context, args ...string) (string, error) {
		calls++
		if args[1] == "stop" {
			return "[SC] ControlService FAILED 1062:\nThe service has not been started.", errors.New("exit status 1")
		}
		return strings.ReplaceAll(queryOutputTemplate, "%s", "STOPPED"), nil
	}

	c := testController(run)
	err := c.StopServices(context.Background(), "sql01", []string{"SQLSERVERAGENT"})
	require.NoError(t, err)
	require.GreaterOrEqual(t, calls, 2)
}

func TestStartServicesPropagatesFailure(t *testing.T) {
	t.Parallel()

	run := &scriptedRun{
		states:   map[string]string{"SQLSERVERAGENT": "STOPPED"},
		startErr: errors.New("exit status 5"),
	}
	c := testController(run.fn)

	err := c.StartServices(context.Background(), "sql01", []string{"SQLSERVERAGENT"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "SQLSERVERAGENT")
}

func TestWaitForStateTimesOut(t *testing.T) {
	t.Parallel()

	run := func(_ context.Context, args ...string) (string, error) {
		if args[1] == "query" {
			return strings.ReplaceAll(queryOutputTemplate, "%s", "STOP_PENDING"), nil
		}
		return "", nil
	}

	c := testController(run)
	err := c.StopServices(context.Background(), "sql01", []string{"MSSQLSERVER"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "did not reach STOPPED")
}

func TestQueryStateParsesScOutput(t *testing.T) {
	t.Parallel()

	out := strings.ReplaceAll(queryOutputTemplate, "%s", "RUNNING")
	require.Equal(t, "RUNNING", queryState(out))
	require.Equal(t, "", queryState("garbage"))
}
