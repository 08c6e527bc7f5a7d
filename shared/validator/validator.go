package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"petstay/shared/base64"
	"petstay/shared/failure"
	"reflect"
	"slices"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// speciesValues are the pet categories rooms are built for.
var speciesValues = []string{"dog", "cat"}

var validate = newValidate()

func newValidate() *val.Validate {
	v := val.New(val.WithRequiredStructEnabled())

	// report fields by their wire name
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	custom := map[string]val.Func{
		"mimetypes": validateMimetype,
		"species":   validateSpecies,
	}

	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}

	return v
}

// validateMimetype accepts a bare content type or a base64 data URI whose type is in
// the space separated param list.
func validateMimetype(field val.FieldLevel) bool {
	contentType := base64.ContentType(field.Field().String())
	if contentType == "" {
		return false
	}

	return slices.Contains(strings.Fields(field.Param()), contentType)
}

func validateSpecies(field val.FieldLevel) bool {
	return slices.Contains(speciesValues, strings.ToLower(strings.TrimSpace(field.Field().String())))
}

// Validate decodes a JSON body into data and validates it. Both failures surface as
// 400 VALIDATION_ERROR.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
