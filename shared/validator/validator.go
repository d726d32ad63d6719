package validator

import (
	"coworking/shared/constant"
	"coworking/shared/failure"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// resourceTypes is filled by the resource model so that this package stays free of domain imports.
var resourceTypes = map[string]bool{}

// RegisterResourceTypes declares the accepted values of the resourcetype tag.
func RegisterResourceTypes(types ...string) {
	for _, t := range types {
		resourceTypes[t] = true
	}
}

func layoutValidation(layout string) val.Func {
	return func(field val.FieldLevel) bool {
		str, ok := field.Field().Interface().(string)
		if !ok {
			return false
		}

		_, err := time.Parse(layout, str)

		return err == nil
	}
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	err := validate.RegisterValidation("resourcetype", func(fl val.FieldLevel) bool {
		return resourceTypes[fl.Field().String()]
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("date", layoutValidation(constant.DateLayout))
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("clock", layoutValidation(constant.TimeLayout))
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("timestamp", layoutValidation(constant.DateTimeLayout))
	if err != nil {
		panic(err)
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
