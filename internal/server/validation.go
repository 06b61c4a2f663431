package server

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validation failure reasons
const (
	ReasonRequired   = "Field required"
	ReasonMinLength  = "String should have at least 1 character"
	ReasonNotInteger = "Input should be a valid integer"
)

// FieldError describes one invalid request field
type FieldError struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// ValidationError is returned when request input fails validation. It lists
// every offending field.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Name, f.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Raw request inputs. A nil pointer means the input was absent. Fields are
// checked in declaration order, which is the order errors are reported in.

type spacesRequest struct {
	Token *string `name:"x-typetalk-token" validate:"required,min=1"`
}

type topicsRequest struct {
	SpaceKey *string `name:"space_key" validate:"required,min=1"`
	Token    *string `name:"x-typetalk-token" validate:"required,min=1"`
}

type messagesRequest struct {
	TopicID string  `name:"topic_id" validate:"int64"`
	FromID  *string `name:"from_id" validate:"omitnil,int64"`
	Token   *string `name:"x-typetalk-token" validate:"required,min=1"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			return field.Tag.Get("name")
		})
		_ = validate.RegisterValidation("int64", func(fl validator.FieldLevel) bool {
			_, err := strconv.ParseInt(fl.Field().String(), 10, 64)
			return err == nil
		})
	})
	return validate
}

// validateRequest checks req and converts failures into a *ValidationError
func validateRequest(req any) error {
	err := getValidator().Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate request: %w", err)
	}

	fields := make([]FieldError, len(fieldErrs))
	for i, fe := range fieldErrs {
		fields[i] = FieldError{Name: fe.Field(), Reason: reason(fe.Tag())}
	}
	return &ValidationError{Fields: fields}
}

func reason(tag string) string {
	switch tag {
	case "required":
		return ReasonRequired
	case "min":
		return ReasonMinLength
	case "int64":
		return ReasonNotInteger
	default:
		return "Failed " + tag + " validation"
	}
}

// headerValue returns nil when the header is absent
func headerValue(r *http.Request, key string) *string {
	values, ok := r.Header[http.CanonicalHeaderKey(key)]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

// queryValue returns nil when the parameter is absent
func queryValue(r *http.Request, name string) *string {
	values, ok := r.URL.Query()[name]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

// parseInt64 is only called on values that passed validation
func parseInt64(raw string) int64 {
	n, _ := strconv.ParseInt(raw, 10, 64)
	return n
}
