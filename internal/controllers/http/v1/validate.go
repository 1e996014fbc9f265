package http

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// City names may contain letters of any alphabet, spaces, hyphens and
	// apostrophes ("Rostov-on-Don", "N'Djamena").
	_ = v.RegisterValidation("cityname", func(fl validator.FieldLevel) bool {
		return isCityName(fl.Field().String())
	})

	return v
}

func isCityName(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}

	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' && r != '-' && r != '\'' {
			return false
		}
	}

	return true
}
