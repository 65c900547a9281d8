package event

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const objectName = "event"

// Candidate is the client-supplied shape of an event for create and update.
// Timestamps are pointers so that "absent" can be told apart from the zero time.
type Candidate struct {
	Name        string `name:"name" validate:"required,notblank"`
	Description string `name:"description" validate:"required,notblank"`

	BeginEnrollmentDateTime *time.Time `name:"beginEnrollmentDateTime" validate:"required"`
	CloseEnrollmentDateTime *time.Time `name:"closeEnrollmentDateTime" validate:"required"`
	BeginEventDateTime      *time.Time `name:"beginEventDateTime" validate:"required"`
	EndEventDateTime        *time.Time `name:"endEventDateTime" validate:"required"`

	Location          string `name:"location" validate:"max=255"`
	BasePrice         int    `name:"basePrice" validate:"min=0"`
	MaxPrice          int    `name:"maxPrice"`
	LimitOfEnrollment int    `name:"limitOfEnrollment" validate:"min=0"`
}

type FieldViolation struct {
	Field          string `json:"field,omitempty"`
	ObjectName     string `json:"objectName"`
	Code           string `json:"code"`
	DefaultMessage string `json:"defaultMessage"`
	RejectedValue  any    `json:"rejectedValue,omitempty"`
}

type Violations []FieldViolation

// Fields lists the distinct field names, in first-seen order.
func (vs Violations) Fields() []string {
	seen := map[string]bool{}
	var out []string
	for _, v := range vs {
		if v.Field == "" || seen[v.Field] {
			continue
		}
		seen[v.Field] = true
		out = append(out, v.Field)
	}
	return out
}

type Phase string

const (
	PhaseStructural Phase = "structural"
	PhaseBusiness   Phase = "business"
)

// ValidationError rejects a write. Both phases share the same body shape.
type ValidationError struct {
	Phase      Phase
	Violations Violations
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s validation failed: %s", e.Phase, strings.Join(e.Violations.Fields(), ", "))
}

// MalformedBody turns a body decoding failure into a structural rejection.
func MalformedBody(err error) *ValidationError {
	msg := "request body is not valid JSON"
	if err != nil {
		msg = "request body is not valid JSON: " + err.Error()
	}
	return &ValidationError{
		Phase: PhaseStructural,
		Violations: Violations{{
			ObjectName:     objectName,
			Code:           "InvalidJson",
			DefaultMessage: msg,
		}},
	}
}

type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if n := fld.Tag.Get("name"); n != "" {
			return n
		}
		return fld.Name
	})
	mustRegister(v, "notblank", validateNotBlank)
	return &Validator{v: v}
}

// mustRegister panics on a bad rule so the failure surfaces at startup
// instead of on the first validated request.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q validation: %v", tag, err))
	}
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Validate runs the structural rules and, only when they all pass, the
// business rules. It returns nil when the candidate is acceptable.
func (v *Validator) Validate(c Candidate) *ValidationError {
	if vs := v.Structural(c); len(vs) > 0 {
		return &ValidationError{Phase: PhaseStructural, Violations: vs}
	}
	if vs := v.Business(c); len(vs) > 0 {
		return &ValidationError{Phase: PhaseBusiness, Violations: vs}
	}
	return nil
}

// Structural checks presence and per-field format.
func (v *Validator) Structural(c Candidate) Violations {
	err := v.v.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Violations{{ObjectName: objectName, Code: "Invalid", DefaultMessage: err.Error()}}
	}

	out := make(Violations, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		code, msg := describeFieldError(fe)
		out = append(out, FieldViolation{
			Field:          fe.Field(),
			ObjectName:     objectName,
			Code:           code,
			DefaultMessage: msg,
			RejectedValue:  rejected(fe.Value()),
		})
	}
	return out
}

func describeFieldError(fe validator.FieldError) (string, string) {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.String {
			return "NotEmpty", fmt.Sprintf("%s must not be empty", field)
		}
		return "NotNull", fmt.Sprintf("%s must not be null", field)
	case "notblank":
		return "NotBlank", fmt.Sprintf("%s must not be blank", field)
	case "min":
		return "Min", fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "max":
		return "Size", fmt.Sprintf("%s size must be between 0 and %s", field, fe.Param())
	default:
		return "Invalid", fmt.Sprintf("%s is invalid", field)
	}
}

func rejected(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return nil
	}
	return v
}

// Business checks the cross-field rules. Absent timestamps are skipped here;
// they are a structural concern.
func (v *Validator) Business(c Candidate) Violations {
	var out Violations

	if c.BasePrice > c.MaxPrice && c.MaxPrice != 0 {
		out = append(out,
			FieldViolation{
				Field:          "basePrice",
				ObjectName:     objectName,
				Code:           "wrongValue",
				DefaultMessage: "basePrice is wrong",
				RejectedValue:  c.BasePrice,
			},
			FieldViolation{
				Field:          "maxPrice",
				ObjectName:     objectName,
				Code:           "wrongValue",
				DefaultMessage: "maxPrice is wrong",
				RejectedValue:  c.MaxPrice,
			},
		)
	}

	if end := c.EndEventDateTime; end != nil {
		if before(end, c.BeginEventDateTime) ||
			before(end, c.BeginEnrollmentDateTime) ||
			before(end, c.CloseEnrollmentDateTime) {
			out = append(out, FieldViolation{
				Field:          "endEventDateTime",
				ObjectName:     objectName,
				Code:           "wrongValue",
				DefaultMessage: "endEventDateTime is wrong",
				RejectedValue:  end.UTC(),
			})
		}
	}

	return out
}

func before(t, other *time.Time) bool {
	return other != nil && t.Before(*other)
}
