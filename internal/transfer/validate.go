package transfer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/maheshrc27/nexus/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
		return models.IsPlatform(fl.Field().String())
	})
}

// Validate checks v against its validate tags and returns the message of
// the first failing field, or nil.
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		return errors.New(message(vErrs[0]))
	}
	return err
}

func message(fe validator.FieldError) string {
	// dive reports elements as name[i]; messages refer to the whole field.
	field := strings.SplitN(fe.Field(), "[", 2)[0]
	switch fe.Tag() {
	case "email":
		return "Invalid email address"
	case "eqfield":
		return "Passwords don't match"
	case "platform":
		return fmt.Sprintf("Invalid platform %q", fe.Value())
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "url":
		return fmt.Sprintf("%s must contain valid URLs", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "min":
		switch {
		case field == "password" || field == "confirmPassword":
			return "Password must be at least 6 characters"
		case fe.Kind() == reflect.Slice:
			return fmt.Sprintf("%s must contain at least %s item", field, fe.Param())
		case fe.Kind() == reflect.String:
			return fmt.Sprintf("%s must not be empty", field)
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if field == "password" || field == "confirmPassword" {
			return fmt.Sprintf("Password must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	}
	return fmt.Sprintf("Invalid %s", field)
}
