package apierror

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// camelCase json name -> kata terpisah (departmentCode -> department Code)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}

	caser := cases.Title(language.English)
	return caser.String(strings.ToLower(b.String()))
}

// FieldMessages memetakan validator.ValidationErrors ke pesan per field,
// keyed by nama field json. labels boleh memberi label manusiawi per field
// (mis. "departmentCode" -> "Code"); selain itu nama field dihumanisasi.
// Pesan error yang bukan ValidationErrors dipetakan ke key kosong.
func FieldMessages(err error, labels map[string]string) map[string]string {
	if err == nil {
		return nil
	}

	msgs := make(map[string]string)

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		msgs[""] = ErrInvalidInput.Message
		return msgs
	}

	for _, e := range errs {
		field := e.Field()
		if _, seen := msgs[field]; seen {
			continue // pesan pertama per field yang dipakai
		}

		label := labels[field]
		if label == "" {
			label = formatFieldName(field)
		}
		msgs[field] = fieldMessage(e, label)
	}
	return msgs
}

func fieldMessage(e validator.FieldError, label string) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must not exceed %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must not exceed %s", label, e.Param())
	case "email":
		return "Invalid email format"
	case "depcode":
		return fmt.Sprintf("%s must contain only uppercase letters and numbers", label)
	case "alphaspace":
		return fmt.Sprintf("%s can only contain letters", label)
	case "adult":
		return "Employee must be at least 18 years old"
	case "gt":
		if e.Param() == "0" {
			return fmt.Sprintf("%s must be positive", label)
		}
		return fmt.Sprintf("%s must be greater than %s", label, e.Param())
	case "lte":
		return fmt.Sprintf("%s is too large", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
