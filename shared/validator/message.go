package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// anonymousField names values checked with ValidateVar, which carry no field name.
const anonymousField = "value"

var messages = map[string]string{
	"required":     "{field} is required",
	"gte":          "{field} must be greater than or equal to {param}",
	"lte":          "{field} must be less than or equal to {param}",
	"oneof":        "{field} must be one of {param}",
	"max":          "{field} must be at most {param} characters long",
	"min":          "{field} must be at least {param} characters long",
	"gt":           "{field} must be greater than {param}",
	"resourcetype": "{field} must be WORKSPACE or CONFERENCE_ROOM",
	"date":         "{field} must be a date in YYYY-MM-DD format",
	"clock":        "{field} must be a time in HH:MM format",
	"timestamp":    "{field} must be a timestamp in YYYY-MM-DD HH:MM format",
}

// message renders the first validation failure of err. Fields are named by their json tag.
func message(err error) string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		template, ok := messages[valErr.Tag()]
		if !ok {
			continue
		}

		field := valErr.Field()
		if field == "" {
			field = anonymousField
		}

		return strings.NewReplacer("{field}", field, "{param}", valErr.Param()).Replace(template)
	}

	return valErrors.Error()
}
