package render

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9-_.]+$`)

func newValidator() *validator.Validate {
	validate := validator.New()

	_ = validate.RegisterValidation("username", validateUsername)
	_ = validate.RegisterValidation("password", validatePassword)
	_ = validate.RegisterValidation("notblank", validateNotBlank)
	validate.RegisterTagNameFunc(useJSONTagNames)

	return validate
}

func useJSONTagNames(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	// skip if tag key says it should be ignored
	if name == "-" {
		return ""
	}
	return name
}

// Username rule: trimmed, at least 3 characters, A-Za-z0-9-_. only
func validateUsername(fl validator.FieldLevel) bool {
	username := strings.TrimSpace(fl.Field().String())
	return len(username) >= 3 && usernameRe.MatchString(username)
}

// Password rule: trimmed, at least 8 characters
func validatePassword(fl validator.FieldLevel) bool {
	return len(strings.TrimSpace(fl.Field().String())) >= 8
}

// Not blank: at least one non whitespace character
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
