package http

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	countryCodePattern = regexp.MustCompile(`^[A-Z]{2}$`)

	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the "country" binding rule to gin's validator and
// makes validation errors report JSON field names. The rule checks the ISO
// code format only, so a well-formed but unsupported country still reaches
// the engine and gets its own error.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin binding engine is not go-playground/validator")
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		registerErr = v.RegisterValidation("country", validateCountryCode)
	})
	return registerErr
}

func validateCountryCode(fl validator.FieldLevel) bool {
	return countryCodePattern.MatchString(fl.Field().String())
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}
