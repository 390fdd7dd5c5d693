// AngelaMos | 2026
// validation.go

package core

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that reports fields by their JSON name
// and looks through Nullable wrappers.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(
		nullableValue[string],
		Nullable[string]{},
	)
	v.RegisterCustomTypeFunc(
		nullableValue[int64],
		Nullable[int64]{},
	)
	v.RegisterCustomTypeFunc(
		nullableValue[map[string]any],
		Nullable[map[string]any]{},
	)

	return v
}

func nullableValue[T any](field reflect.Value) any {
	n, ok := field.Interface().(Nullable[T])
	if !ok || !n.Valid {
		return nil
	}
	return n.Value
}

func FormatValidationError(err error) map[string]string {
	details := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		details["body"] = err.Error()
		return details
	}

	for _, fe := range verrs {
		field := fe.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}

		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		details[field] = rule
	}

	return details
}
