package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Prasad4455/dbatools/internal/target"
	dbaerrors "github.com/Prasad4455/dbatools/pkg/errors"
)

// Document represents a batch-run document listing the instances a mutation
// should be applied to.
type Document struct {
	Version     string      `yaml:"version" validate:"required,semver"`
	Name        string      `yaml:"name" validate:"required,min=1,max=100"`
	Description string      `yaml:"description,omitempty"`
	Settings    Settings    `yaml:"settings,omitempty"`
	Targets     []string    `yaml:"targets" validate:"required,min=1,dive,target_spec"`
	Credential  *Credential `yaml:"credential,omitempty"`
}

// Settings holds batch execution parameters.
type Settings struct {
	// Parallel bounds concurrent target processing; 1 means sequential.
	Parallel int `yaml:"parallel,omitempty" validate:"omitempty,min=1,max=32"`
	// Timeout is the per-target workflow deadline in seconds.
	Timeout int `yaml:"timeout,omitempty" validate:"omitempty,min=1,max=86400"`
}

// Credential references SQL login credentials. The password is never stored
// in the document; it is resolved from the named environment variable.
type Credential struct {
	User        string `yaml:"user" validate:"required"`
	PasswordEnv string `yaml:"password_env" validate:"required"`
}

// ParsedTargets converts the raw target specs into Target values. The
// document is validated before this is called, so specs are well formed.
func (d *Document) ParsedTargets() ([]target.Target, error) {
	targets := make([]target.Target, 0, len(d.Targets))
	for i, spec := range d.Targets {
		tgt, err := target.Parse(spec)
		if err != nil {
			return nil, dbaerrors.NewValidationError(fmt.Sprintf("targets[%d]", i), err.Error(), err)
		}
		targets = append(targets, tgt)
	}
	return targets, nil
}

// ResolvePassword reads the credential's password from the environment.
func (c *Credential) ResolvePassword() (string, error) {
	if c == nil {
		return "", nil
	}
	value, ok := os.LookupEnv(c.PasswordEnv)
	if !ok || strings.TrimSpace(value) == "" {
		return "", dbaerrors.NewValidationError("credential.password_env",
			fmt.Sprintf("environment variable %s is not set", c.PasswordEnv), nil)
	}
	return value, nil
}
