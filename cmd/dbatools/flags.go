package main

import (
	"strings"

	"github.com/Prasad4455/dbatools/internal/config"
	"github.com/Prasad4455/dbatools/internal/mutator"
	"github.com/Prasad4455/dbatools/internal/target"
	dbaerrors "github.com/Prasad4455/dbatools/pkg/errors"
)

// batchOptions holds the flags shared by every mutation command.
type batchOptions struct {
	targetSpecs []string
	targetsFile string
	user        string
	passwordEnv string
	confirm     bool
	parallel    int
	timeout     int
	dryRun      bool
	verbose     bool
}

func validateBatchOptions(opts *batchOptions) error {
	if len(opts.targetSpecs) == 0 && strings.TrimSpace(opts.targetsFile) == "" {
		return dbaerrors.NewValidationError("targets",
			"at least one target or a targets file is required", nil)
	}
	if opts.user != "" && opts.passwordEnv == "" {
		return dbaerrors.NewValidationError("password-env",
			"--password-env is required when --user is set", nil)
	}
	if opts.user == "" && opts.passwordEnv != "" {
		return dbaerrors.NewValidationError("user",
			"--user is required when --password-env is set", nil)
	}
	return nil
}

// resolveBatch turns the options into targets, credential and settings,
// merging the targets file (if any) with command-line values. Command-line
// values win over file values.
func resolveBatch(opts *batchOptions) ([]target.Target, *mutator.Credential, config.Settings, error) {
	var targets []target.Target
	var cred *config.Credential
	var settings config.Settings

	if strings.TrimSpace(opts.targetsFile) != "" {
		doc, err := config.ParseDocument(opts.targetsFile)
		if err != nil {
			return nil, nil, settings, err
		}
		targets, err = doc.ParsedTargets()
		if err != nil {
			return nil, nil, settings, err
		}
		settings = doc.Settings
		cred = doc.Credential
	}

	seen := make(map[string]bool, len(targets))
	for _, tgt := range targets {
		seen[strings.ToLower(tgt.FullName())] = true
	}
	for _, spec := range opts.targetSpecs {
		tgt, err := target.Parse(spec)
		if err != nil {
			return nil, nil, settings, err
		}
		key := strings.ToLower(tgt.FullName())
		if seen[key] {
			continue
		}
		seen[key] = true
		targets = append(targets, tgt)
	}

	if opts.parallel > 0 {
		settings.Parallel = opts.parallel
	}
	if opts.timeout > 0 {
		settings.Timeout = opts.timeout
	}
	if opts.user != "" {
		cred = &config.Credential{User: opts.user, PasswordEnv: opts.passwordEnv}
	}

	var resolved *mutator.Credential
	if cred != nil {
		password, err := cred.ResolvePassword()
		if err != nil {
			return nil, nil, settings, err
		}
		resolved = &mutator.Credential{User: cred.User, Password: password}
	}

	return targets, resolved, settings, nil
}
