package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":  "{field} is required",
	"oneof":     "{field} must be one of {param}",
	"max":       "{field} must be at most {param} characters",
	"min":       "{field} must be at least {param}",
	"email":     "{field} must be a valid email address",
	"datetime":  "{field} must use the {param} format",
	"species":   "{field} must be Dog or Cat",
	"mimetypes": "{field} must be one of {param}",
	"uuid":      "{field} must be a valid UUID",
}

// message renders the first failed rule as a client-facing sentence.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) || len(valErrors) == 0 {
		return err.Error()
	}

	first := valErrors[0]

	field := first.Field()
	if field == "" {
		field = "value"
	}

	template, ok := messages[first.Tag()]
	if !ok {
		return first.Error()
	}

	return strings.NewReplacer("{field}", field, "{param}", first.Param()).Replace(template)
}
