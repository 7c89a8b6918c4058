package http

import (
	"math"
	"regexp"

	loanDomain "hrms-loan-service/internal/domain/loan"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

var validReasons = map[loanDomain.ReasonType]bool{
	loanDomain.ReasonMedical:   true,
	loanDomain.ReasonEmergency: true,
	loanDomain.ReasonEducation: true,
	loanDomain.ReasonHousing:   true,
	loanDomain.ReasonFamily:    true,
	loanDomain.ReasonPersonal:  true,
	loanDomain.ReasonOther:     true,
}

var validDecisions = map[loanDomain.Decision]bool{
	loanDomain.DecisionApproved: true,
	loanDomain.DecisionRejected: true,
	loanDomain.DecisionDeferred: true,
}

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// actor/employee id = 32-char lowercase hex
	_ = v.RegisterValidation("hex32", func(fl validator.FieldLevel) bool {
		return reHex32.MatchString(fl.Field().String())
	})
	// max 2 decimal places
	_ = v.RegisterValidation("dec2", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return math.Abs(f-(math.Round(f*100)/100)) < 1e-9
	})
	// one of the known loan reason categories
	_ = v.RegisterValidation("reason", func(fl validator.FieldLevel) bool {
		return validReasons[loanDomain.ReasonType(fl.Field().String())]
	})
	// a legal review decision
	_ = v.RegisterValidation("decision", func(fl validator.FieldLevel) bool {
		return validDecisions[loanDomain.Decision(fl.Field().String())]
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "hex32":
			out = append(out, FieldError{Field: field, Message: "must be 32-char lowercase hex"})
		case "dec2":
			out = append(out, FieldError{Field: field, Message: "must have at most 2 decimal places"})
		case "reason":
			out = append(out, FieldError{Field: field, Message: "must be a known reason type"})
		case "decision":
			out = append(out, FieldError{Field: field, Message: "must be approved, rejected or deferred"})
		case "gt":
			out = append(out, FieldError{Field: field, Message: "must be greater than " + e.Param()})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		case "oneof":
			out = append(out, FieldError{Field: field, Message: "must be one of " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
