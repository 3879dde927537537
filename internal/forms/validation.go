// Package forms holds the typed admin drafts and turns them into backend payloads.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/bklyngarment/storefront/internal/models"
)

// FieldErrors maps a wire field name to a human-readable message.
type FieldErrors map[string]string

// Form returns the form-level message, if any.
func (f FieldErrors) Form() string { return f[FormMessage] }

// ValidationError is returned by Normalize when a draft cannot become a payload.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func payloadValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// report json names so errors line up with the form inputs
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		_ = validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			return models.IsCategory(fl.Field().String())
		})
	})
	return validate
}

// check validates payload and merges the result into fields.
func check(payload any, fields FieldErrors) error {
	err := payloadValidator().Struct(payload)
	var ve validator.ValidationErrors
	if err != nil && !errors.As(err, &ve) {
		return fmt.Errorf("failed to validate payload: %w", err)
	}
	for _, fe := range ve {
		if _, taken := fields[fe.Field()]; !taken {
			fields[fe.Field()] = messageForTag(fe.Tag(), fe.Param())
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return "This field is required."
	case "url":
		return "Enter a full URL (https://...)."
	case "gte":
		return "Must be at least " + param + "."
	case "category":
		return "Pick one of: " + strings.Join(models.Categories, ", ") + "."
	default:
		return "Invalid value."
	}
}
