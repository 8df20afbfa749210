// Package validation holds the input schemas for every entity. Each
// Validate* helper normalizes its input and returns a *validation.Error
// listing every violated constraint, or nil when the input is valid.
// Validators are pure and never touch the database.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single violated constraint
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error aggregates all field failures of one validation run
type Error struct {
	Fields []FieldError
}

// Error implements the error interface
func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func newFieldError(field, message string) *Error {
	return &Error{Fields: []FieldError{{Field: field, Message: message}}}
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report field paths by json tag, matching the wire names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	if err := validate.RegisterValidation("slug", validSlug); err != nil {
		panic(err)
	}
}

// validSlug enforces the slug format: lowercase letters, digits and
// hyphens, not starting or ending with a hyphen.
func validSlug(fl validator.FieldLevel) bool {
	return isSlug(fl.Field().String())
}

func isSlug(s string) bool {
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, "-") || strings.HasSuffix(s, "-") {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return true
}

// structOf validates any tagged input struct and aggregates the failures
func structOf(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError, programmer mistake
		return newFieldError("", err.Error())
	}
	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return out
}

// messageFor renders a human-readable message for one violated rule
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("maximum %s %s allowed", fe.Param(), fe.Field())
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be less than %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be a positive integer", fe.Field())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", fe.Field())
	case "datetime":
		return fmt.Sprintf("%s must be a valid ISO datetime", fe.Field())
	case "slug":
		return fmt.Sprintf("%s must contain only lowercase letters, numbers, and hyphens, and cannot start or end with a hyphen", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// ID validates a positive integer identifier
func ID(field string, id int64) error {
	if id <= 0 {
		return newFieldError(field, fmt.Sprintf("%s must be a positive integer", field))
	}
	return nil
}

// Slug validates a slug on its own, outside of a schema
func Slug(slug string) error {
	if slug == "" {
		return newFieldError("slug", "slug is required")
	}
	if len(slug) > 255 {
		return newFieldError("slug", "slug must be less than 255 characters")
	}
	if !isSlug(slug) {
		return newFieldError("slug", "slug must contain only lowercase letters, numbers, and hyphens, and cannot start or end with a hyphen")
	}
	return nil
}

// Email validates an email address on its own
func Email(email string) error {
	if err := validate.Var(email, "required,email,max=255"); err != nil {
		return newFieldError("email", "email must be a valid email address")
	}
	return nil
}
