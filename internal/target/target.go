package target

import (
	"strings"

	dbaerrors "github.com/Prasad4455/dbatools/pkg/errors"
)

// DefaultInstance is the logical name of the unnamed SQL Server instance.
const DefaultInstance = "MSSQLSERVER"

const (
	defaultEngineService = "MSSQLSERVER"
	defaultAgentService  = "SQLSERVERAGENT"
	engineServicePrefix  = "MSSQL$"
	agentServicePrefix   = "SQLAgent$"
)

// Target identifies one addressable managed instance (host + logical
// instance name). It is immutable for the duration of one invocation.
type Target struct {
	Host     string
	Instance string
}

// New builds a Target, treating an empty instance name as the default
// instance.
func New(host, instance string) Target {
	instance = strings.TrimSpace(instance)
	if instance == "" {
		instance = DefaultInstance
	}
	return Target{Host: strings.TrimSpace(host), Instance: instance}
}

// Parse interprets a target spec of the form `host` or `host\instance`.
func Parse(spec string) (Target, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Target{}, dbaerrors.NewValidationError("target", "target spec is empty", nil)
	}

	host, instance, found := strings.Cut(spec, `\`)
	host = strings.TrimSpace(host)
	if host == "" {
		return Target{}, dbaerrors.NewValidationError("target", "target spec is missing a host", nil)
	}
	if found && strings.TrimSpace(instance) == "" {
		return Target{}, dbaerrors.NewValidationError("target", "target spec has an empty instance name", nil)
	}

	return New(host, instance), nil
}

// IsDefault reports whether the target addresses the unnamed instance.
func (t Target) IsDefault() bool {
	return strings.EqualFold(t.Instance, DefaultInstance)
}

// FullName renders the fully qualified instance name: bare host for the
// default instance, `host\instance` otherwise.
func (t Target) FullName() string {
	if t.IsDefault() {
		return t.Host
	}
	return t.Host + `\` + t.Instance
}

// EngineServiceName derives the Windows service name of the database engine:
// MSSQLSERVER for the default instance, MSSQL$<name> for named instances.
func (t Target) EngineServiceName() string {
	if t.IsDefault() {
		return defaultEngineService
	}
	return engineServicePrefix + t.Instance
}

// AgentServiceName derives the Windows service name of the SQL Agent:
// SQLSERVERAGENT for the default instance, SQLAgent$<name> for named
// instances. The derivation must be exact; a wrong name makes the service
// cascade silently target nothing.
func (t Target) AgentServiceName() string {
	if t.IsDefault() {
		return defaultAgentService
	}
	return agentServicePrefix + t.Instance
}

// CascadeServiceNames returns the dependent services touched by a forced
// restart, agent first, engine second. Stop and start both walk the slice in
// this order.
func (t Target) CascadeServiceNames() []string {
	return []string{t.AgentServiceName(), t.EngineServiceName()}
}
