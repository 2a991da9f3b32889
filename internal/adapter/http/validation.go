package http

import (
	"errors"
	"math"
	"net/http"

	"koperasi-loan-service/internal/domain/actor"
	"koperasi-loan-service/internal/domain/ledger"
	"koperasi-loan-service/internal/domain/loan"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
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

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// max 2 decimal places (monetary amounts)
	_ = v.RegisterValidation("dec2", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return math.Abs(f-(math.Round(f*100)/100)) < 1e-9
	})
	// a known loan status value
	_ = v.RegisterValidation("loanstatus", func(fl validator.FieldLevel) bool {
		_, err := loan.ParseStatus(fl.Field().String())
		return err == nil
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
		case "gt":
			out = append(out, FieldError{Field: field, Message: "must be greater than " + e.Param()})
		case "dec2":
			out = append(out, FieldError{Field: field, Message: "must have at most 2 decimal places"})
		case "oneof":
			out = append(out, FieldError{Field: field, Message: "must be one of: " + e.Param()})
		case "loanstatus":
			out = append(out, FieldError{Field: field, Message: "is not a known loan status"})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}

// writeDomainError maps domain errors onto HTTP statuses.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, loan.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "loan not found"})
	case errors.Is(err, loan.ErrTerminalState):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "loan is already in a final state"})
	case errors.Is(err, loan.ErrStatusConflict):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "loan status changed, re-read and retry"})
	case errors.Is(err, loan.ErrReasonRequired),
		errors.Is(err, loan.ErrInvalidAction),
		errors.Is(err, loan.ErrInvalidInput),
		errors.Is(err, loan.ErrUnknownStatus),
		errors.Is(err, actor.ErrNotFound):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, actor.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	case errors.Is(err, ledger.ErrUnavailable):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "accounting system unavailable"})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
