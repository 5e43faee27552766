package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const fallbackMessage = "{field} is invalid"

// Templates per validation tag. {field} is the json name, {param} the tag argument.
var messages = map[string]string{
	"required": "{field} is required",
	"notblank": "{field} is required",
	"email":    "{field} must be a valid email address",
	"oneof":    "{field} must be one of {param}",

	"min": "{field} must be greater than or equal to {param}",
	"gte": "{field} must be greater than or equal to {param}",
	"gt":  "{field} must be greater than {param}",
	"max": "{field} must be less than or equal to {param}",
	"lte": "{field} must be less than or equal to {param}",

	"date":           "{field} must be a date in YYYY-MM-DD format",
	"rooming_status": "{field} must be one of Active, Closed, Cancelled",
	"agreement_type": "{field} must be one of leisure, staff, artist",
}

// message reports the first failing field only.
func message(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err.Error()
	}

	first := fieldErrors[0]

	template, ok := messages[first.Tag()]
	if !ok {
		template = fallbackMessage
	}

	return strings.NewReplacer("{field}", first.Field(), "{param}", first.Param()).Replace(template)
}
