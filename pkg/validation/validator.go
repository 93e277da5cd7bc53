// Package validation wraps a shared go-playground validator for data files.
package validation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

//nolint:gochecknoglobals // Singleton validator, caches struct metadata
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// GetValidator returns the singleton validator instance.
func GetValidator() (v *validator.Validate) {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	v = validate
	return v
}

// Struct validates s and flattens any field errors into a single message.
func Struct(s interface{}) (err error) {
	err = GetValidator().Struct(s)
	if err == nil {
		return err
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		err = errors.Wrap(err, "validation failed")
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, describe(fe))
	}

	err = errors.New(strings.Join(messages, "; "))
	return err
}

func describe(fe validator.FieldError) (msg string) {
	field := fe.Namespace()
	switch fe.Tag() {
	case "required":
		msg = fmt.Sprintf("%s is required", field)
	case "min":
		msg = fmt.Sprintf("%s must have at least %s entries", field, fe.Param())
	case "oneof":
		msg = fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		msg = fmt.Sprintf("%s failed '%s' validation", field, fe.Tag())
	}
	return msg
}
