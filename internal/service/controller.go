// Package service controls Windows services on target hosts for the
// dependent-service restart cascade. The production implementation shells
// out to sc.exe against the remote service control manager.
package service

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/Prasad4455/dbatools/internal/logger"
	"github.com/Prasad4455/dbatools/internal/mutator"
)

const (
	stateRunning = "RUNNING"
	stateStopped = "STOPPED"

	// sc.exe error 1062: the service has not been started.
	notStartedMarker = "1062"
)

// runFunc executes a service-control command and returns its combined
// output. Injectable so tests never touch a real service manager.
type runFunc func(ctx context.Context, args ...string) (string, error)

// ScController drives sc.exe against a remote host.
type ScController struct {
	Logger       *logger.Logger
	WaitTimeout  time.Duration
	PollInterval time.Duration

	run runFunc
}

// NewScController creates a controller with production defaults.
func NewScController(log *logger.Logger) *ScController {
	return &ScController{
		Logger:       log,
		WaitTimeout:  2 * time.Minute,
		PollInterval: 2 * time.Second,
		run:          runSc,
	}
}

var _ mutator.ServiceController = (*ScController)(nil)

func runSc(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "sc.exe", args...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

// StopServices stops each named service in order and waits for it to reach
// the stopped state before moving on.
func (c *ScController) StopServices(ctx context.Context, host string, names []string) error {
	for _, name := range names {
		c.Logger.Debugf("stopping service %s on %s", name, host)

		output, err := c.run(ctx, scHost(host), "stop", name)
		if err != nil && !strings.Contains(output, notStartedMarker) {
			return fmt.Errorf("stop %s: %w: %s", name, err, strings.TrimSpace(output))
		}

		if err := c.waitForState(ctx, host, name, stateStopped); err != nil {
			return err
		}
	}
	return nil
}

// StartServices starts each named service in order and waits for it to reach
// the running state before moving on.
func (c *ScController) StartServices(ctx context.Context, host string, names []string) error {
	for _, name := range names {
		c.Logger.Debugf("starting service %s on %s", name, host)

		output, err := c.run(ctx, scHost(host), "start", name)
		if err != nil {
			return fmt.Errorf("start %s: %w: %s", name, err, strings.TrimSpace(output))
		}

		if err := c.waitForState(ctx, host, name, stateRunning); err != nil {
			return err
		}
	}
	return nil
}

func (c *ScController) waitForState(ctx context.Context, host, name, want string) error {
	deadline := time.Now().Add(c.WaitTimeout)

	for {
		output, err := c.run(ctx, scHost(host), "query", name)
		if err != nil {
			return fmt.Errorf("query %s: %w: %s", name, err, strings.TrimSpace(output))
		}
		if queryState(output) == want {
			return nil
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("service %s on %s did not reach %s within %s", name, host, want, c.WaitTimeout)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.PollInterval):
		}
	}
}

// queryState extracts the STATE value from `sc query` output.
func queryState(output string) string {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "STATE") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		return fields[len(fields)-1]
	}
	return ""
}

func scHost(host string) string {
	return `\\` + host
}
