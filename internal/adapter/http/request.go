// Package http provides the HTTP handler layer for the route offer API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/cosmos-odyssey/route-offer-service/internal/domain"
)

// RouteQueryRequest is the origin/destination pair of a search.
// It binds from the query string on GET /routes and from the body on session searches.
type RouteQueryRequest struct {
	// From is the departure planet (e.g., "Earth")
	From string `json:"from" query:"from" validate:"required,max=64" example:"Earth"`

	// To is the destination planet (e.g., "Saturn")
	To string `json:"to" query:"to" validate:"required,max=64" example:"Saturn"`
}

// SortRequest selects the field of the sort toggle.
type SortRequest struct {
	// Field is one of price, duration, departure, arrival, stops
	Field string `json:"field" validate:"required,oneof=price duration departure arrival stops" example:"price"`
}

// FilterRequest selects the carrier filter. Empty or "all" shows every offer.
type FilterRequest struct {
	Carrier string `json:"carrier" validate:"max=128" example:"SpaceX"`
}

// offerPath addresses one offer row of a session view.
type offerPath struct {
	SessionID string `param:"id" validate:"required"`
	Index     int    `param:"index" validate:"min=0"`
}

// Normalize trims surrounding whitespace so blank locations fail "required".
func (r *RouteQueryRequest) Normalize() {
	r.From = strings.TrimSpace(r.From)
	r.To = strings.TrimSpace(r.To)
}

// Validate normalizes and validates the route query.
func (r *RouteQueryRequest) Validate() error {
	r.Normalize()
	return validateStruct(r)
}

// ToDomain converts the request to a domain query.
func (r *RouteQueryRequest) ToDomain() domain.RouteQuery {
	return domain.RouteQuery{From: r.From, To: r.To}
}

// Validate validates the sort request.
func (r *SortRequest) Validate() error {
	r.Field = strings.ToLower(strings.TrimSpace(r.Field))
	return validateStruct(r)
}

// Validate validates the filter request and maps an empty carrier to all.
func (r *FilterRequest) Validate() error {
	r.Carrier = strings.TrimSpace(r.Carrier)
	if r.Carrier == "" {
		r.Carrier = domain.CarrierAll
	}
	return validateStruct(r)
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(v.Errors))
	for i, e := range v.Errors {
		messages[i] = e.Message
	}
	return strings.Join(messages, "; ")
}

// Unwrap makes request validation failures match domain.ErrInvalidRequest.
func (v *ValidationErrors) Unwrap() error {
	return domain.ErrInvalidRequest
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator returns the shared validator. Field names are reported by their
// json, then param, tag so messages match what the client sent.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "param"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return fld.Name
		})
	})
	return validate
}

// validateStruct runs the tag validation of s and converts failures to ValidationErrors.
func validateStruct(s interface{}) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.WrapInvalidRequest("%v", err)
	}

	errs := &ValidationErrors{}
	for _, fe := range fieldErrs {
		errs.Add(fe.Field(), translateError(fe))
	}
	return errs
}

// translateError converts a validator.FieldError to a human-readable message.
func translateError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
