package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"rooming/shared/constant"
	"rooming/shared/failure"
	"slices"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func registerDateValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := time.Parse(constant.DateFormat, value)

	return err == nil
}

func registerRoomingStatusValidation(field val.FieldLevel) bool {
	return slices.Contains(constant.RoomingStatuses, field.Field().String())
}

func registerAgreementTypeValidation(field val.FieldLevel) bool {
	return slices.Contains(constant.AgreementTypes, field.Field().String())
}

func registerNotBlankValidation(field val.FieldLevel) bool {
	return strings.TrimSpace(field.Field().String()) != ""
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// Report JSON names so messages match the request body.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	validations := map[string]val.Func{
		"date":           registerDateValidation,
		"rooming_status": registerRoomingStatusValidation,
		"agreement_type": registerAgreementTypeValidation,
		"notblank":       registerNotBlankValidation,
	}

	for tag, fn := range validations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
