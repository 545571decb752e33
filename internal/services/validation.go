package services

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// States are the state codes offered by the venue and artist forms.
var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI", "ID", "IL",
	"IN", "IA", "KS", "KY", "LA", "ME", "MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC",
	"ND", "OH", "OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI", "SC", "SD",
	"TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

// GenreChoices are the genres offered by the venue and artist forms.
var GenreChoices = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk", "Funk",
	"Hip-Hop", "Heavy Metal", "Instrumental", "Jazz", "Musical Theatre", "Pop", "Punk",
	"R&B", "Reggae", "Rock n Roll", "Soul", "Swing", "Other",
}

var phonePattern = regexp.MustCompile(`^\(?[0-9]{3}\)?[-. ]?[0-9]{3}[-. ]?[0-9]{4}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	mustRegister(v, "us_state", func(fl validator.FieldLevel) bool {
		return lookupChoice(States, fl.Field().String()) != ""
	})
	mustRegister(v, "genre", func(fl validator.FieldLevel) bool {
		return lookupChoice(GenreChoices, fl.Field().String()) != ""
	})
	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// lookupChoice returns the canonical spelling of value in choices, or "".
func lookupChoice(choices []string, value string) string {
	value = strings.TrimSpace(value)
	for _, c := range choices {
		if strings.EqualFold(c, value) {
			return c
		}
	}
	return ""
}

// Validate checks a command struct and converts failures into a
// *ValidationError keyed by form field name.
func Validate(cmd interface{}) error {
	err := validate.Struct(cmd)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := &ValidationError{}
	for _, fe := range fieldErrs {
		verr.Add(fieldName(fe.Field()), message(fe))
	}
	return verr
}

// fieldName folds element errors ("genres[1]") into their field.
func fieldName(field string) string {
	if i := strings.IndexByte(field, '['); i >= 0 {
		return field[:i]
	}
	return field
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "gt":
		return "This field is required."
	case "min":
		return fmt.Sprintf("Select at least %s.", fe.Param())
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
	case "url":
		return "Invalid URL."
	case "phone":
		return "Invalid phone number."
	case "us_state":
		return "Not a valid choice."
	case "genre":
		return fmt.Sprintf("'%v' is not a valid choice for this field.", fe.Value())
	default:
		return "Invalid value."
	}
}
