package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	wisperrors "github.com/wisp-ui/wisp/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?$`)
	positions     = map[string]struct{}{
		PositionTopLeft:     {},
		PositionTopRight:    {},
		PositionBottomLeft:  {},
		PositionBottomRight: {},
	}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("position", func(fl validator.FieldLevel) bool {
			_, ok := positions[fl.Field().String()]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return wisperrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}

// ValidPosition reports whether position names a supported toast position.
func ValidPosition(position string) bool {
	_, ok := positions[position]
	return ok
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlFieldPath(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return wisperrors.NewValidationError(field, msg, err)
	}

	return wisperrors.NewValidationError("config", err.Error(), err)
}

// yamlFieldPath drops the root struct name from the namespace, leaving the
// dotted yaml path such as "toasts.max".
func yamlFieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
