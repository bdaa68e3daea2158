// Package hadr implements the flag-toggle mutation that disables the
// high-availability (HADR) feature flag on a SQL Server instance. The flag
// only takes effect after the instance services restart.
package hadr

import (
	"context"
	"fmt"

	"github.com/Prasad4455/dbatools/internal/model"
	"github.com/Prasad4455/dbatools/internal/mutator"
	"github.com/Prasad4455/dbatools/internal/target"
)

const (
	// ValueEnabled is the rendered state of an instance with HADR on.
	ValueEnabled = "enabled"
	// ValueDisabled is the rendered state of an instance with HADR off.
	ValueDisabled = "disabled"
)

// Session is the capability a connection session must provide for HADR
// management.
type Session interface {
	HadrEnabled(ctx context.Context) (bool, error)
	SetHadrEnabled(ctx context.Context, enabled bool) error
}

type disableMutation struct{}

// NewDisable creates the disable-HADR mutation.
func NewDisable() mutator.Mutation {
	return &disableMutation{}
}

var _ mutator.Mutation = (*disableMutation)(nil)

func (m *disableMutation) Name() string { return "disable-hadr" }

func (m *disableMutation) Describe(tgt target.Target, prior model.State) string {
	return fmt.Sprintf("disable HADR on %s (currently %s)", tgt.FullName(), prior.Value)
}

func (m *disableMutation) Read(ctx context.Context, sess mutator.Session) (model.State, error) {
	hs, ok := sess.(Session)
	if !ok {
		return model.State{}, fmt.Errorf("session does not support HADR management")
	}

	enabled, err := hs.HadrEnabled(ctx)
	if err != nil {
		return model.State{}, err
	}

	value := ValueDisabled
	if enabled {
		value = ValueEnabled
	}
	// The flag always exists; only its value varies.
	return model.State{Exists: true, Value: value}, nil
}

func (m *disableMutation) Skip(model.State) (bool, string) {
	return false, ""
}

func (m *disableMutation) Satisfied(prior model.State) bool {
	return prior.Value == ValueDisabled
}

func (m *disableMutation) Apply(ctx context.Context, sess mutator.Session, _ model.State) error {
	hs, ok := sess.(Session)
	if !ok {
		return fmt.Errorf("session does not support HADR management")
	}
	return hs.SetHadrEnabled(ctx, false)
}

func (m *disableMutation) RequiresRestart() bool { return true }
