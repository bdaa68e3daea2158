package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Prasad4455/dbatools/internal/target"
	dbaerrors "github.com/Prasad4455/dbatools/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("target_spec", func(fl validator.FieldLevel) bool {
			_, err := target.Parse(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateDocument performs schema and cross-field validation on the batch
// document.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return dbaerrors.NewValidationError("document", "document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(doc.Targets))
	for i, spec := range doc.Targets {
		tgt, err := target.Parse(spec)
		if err != nil {
			return dbaerrors.NewValidationError(fmt.Sprintf("targets[%d]", i), err.Error(), err)
		}
		key := strings.ToLower(tgt.FullName())
		if prev, exists := seen[key]; exists {
			return dbaerrors.NewValidationError(fmt.Sprintf("targets[%d]", i),
				fmt.Sprintf("duplicate target %q (first listed at index %d)", tgt.FullName(), prev), nil)
		}
		seen[key] = i
	}

	return nil
}

func convertValidationError(err error) error {
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return dbaerrors.NewValidationError("document", invalid.Error(), err)
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return dbaerrors.NewValidationError(first.Namespace(),
			fmt.Sprintf("failed %q validation", first.Tag()), err)
	}

	return dbaerrors.NewValidationError("document", err.Error(), err)
}
