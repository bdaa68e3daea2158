package mutator

import (
	"context"
	"io"

	"github.com/Prasad4455/dbatools/internal/model"
	"github.com/Prasad4455/dbatools/internal/target"
)

// Credential is an opaque SQL login reference passed through to the
// connection provider. A nil Credential means integrated authentication.
type Credential struct {
	User     string
	Password string
}

// Session is a live handle to one target's management surface. Mutations
// type-assert it to the capability interfaces they need.
type Session interface {
	io.Closer
}

// Connector establishes sessions against targets.
type Connector interface {
	Connect(ctx context.Context, tgt target.Target, cred *Credential) (Session, error)
}

// ServiceController stops and starts Windows services on a target host.
// Both calls walk the name slice in order.
type ServiceController interface {
	StopServices(ctx context.Context, host string, names []string) error
	StartServices(ctx context.Context, host string, names []string) error
}

// ApprovalGate decides whether an intended transition may proceed.
// Unattended implementations auto-approve.
type ApprovalGate interface {
	Confirm(description string) bool
}

// Mutation is one guarded change policy. Read is strictly read-only; Apply
// is the single side-effecting operation and is only invoked after the
// approval gate passed.
type Mutation interface {
	// Name identifies the mutation in results and logs.
	Name() string

	// Describe renders the intended transition for the approval gate.
	Describe(tgt target.Target, prior model.State) string

	// Read queries the managed property or object. A query failure is a
	// read error, never conflated with the object being absent.
	Read(ctx context.Context, sess Session) (model.State, error)

	// Skip reports whether the mutation is a structural no-op for the
	// observed prior state (e.g. removing an object that does not exist),
	// along with a message for the result. This skip is unconditional.
	Skip(prior model.State) (bool, string)

	// Satisfied reports whether the prior state already matches the
	// desired end-state. Honored only when the request opts in to the
	// skip-if-satisfied policy; the default is to always apply.
	Satisfied(prior model.State) bool

	// Apply performs the change. Last writer wins; no optimistic locking
	// is attempted.
	Apply(ctx context.Context, sess Session, prior model.State) error

	// RequiresRestart reports whether the change only takes effect after
	// the dependent services restart.
	RequiresRestart() bool
}

// Request bundles a mutation policy with its execution options.
type Request struct {
	Mutation Mutation

	// Force triggers the dependent-service stop/start cascade after a
	// successful apply.
	Force bool

	// SkipIfSatisfied short-circuits the apply when the prior state
	// already matches the desired state. Off by default.
	SkipIfSatisfied bool

	Credential *Credential
}
