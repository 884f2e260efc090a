package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/alpaca/pkg/errors"
)

var (
	validatorOnce sync.Once
	validate      *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			return yamlTagName(field.Tag.Get("yaml"), field.Name)
		})
	})
	return validate
}

// ValidateSettings checks value ranges and enumerations.
func ValidateSettings(s Settings) error {
	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return apperrors.NewValidationError("", err.Error(), err)
	}

	ve := ves[0]
	field := yamlishFieldName(ve.Namespace())
	message := fmt.Sprintf("failed validation for tag '%s'", ve.Tag())
	if ve.Param() != "" {
		message = fmt.Sprintf("%s (%s)", message, ve.Param())
	}
	return apperrors.NewValidationError(field, message, err)
}

// yamlishFieldName drops the root struct name from a validator namespace,
// e.g. "Settings.export.size" becomes "export.size".
func yamlishFieldName(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}

func yamlTagName(tag, fallback string) string {
	name := strings.SplitN(tag, ",", 2)[0]
	switch name {
	case "":
		return strings.ToLower(fallback)
	case "-":
		return ""
	default:
		return name
	}
}
