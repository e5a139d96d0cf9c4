/*
errors.go - Error kinds shared by the calculation packages

PURPOSE:
  The calculator knows exactly one failure: a query needs configuration
  that was never supplied. Everything else (zero hours per week, odd
  dates) flows through the arithmetic unchecked.

USAGE:
  _, err := calc.VacationDebtHours(day)
  if errors.Is(err, generic.ErrPrecondition) {
      var pe *generic.PreconditionError
      errors.As(err, &pe)
      fmt.Println("configure", pe.Field)
  }

SEE ALSO:
  - worktime/calculator.go: raises these errors
  - api/handlers.go: maps them to HTTP 422
*/
package generic

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

// ErrPrecondition is returned when required configuration is missing.
var ErrPrecondition = errors.New("required configuration missing")

// Configuration fields a query can depend on.
const (
	FieldRegions                = "regions"
	FieldVacationDaysTotal      = "vacation_days_total"
	FieldEstimatedSickDaysTotal = "estimated_sick_days_total"
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// PreconditionError names the configuration field a query required.
type PreconditionError struct {
	Field string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s not set", e.Field)
}

func (e *PreconditionError) Unwrap() error {
	return ErrPrecondition
}

// Missing builds a PreconditionError for field.
func Missing(field string) error {
	return &PreconditionError{Field: field}
}

// IsPrecondition returns true if err is a missing-configuration failure.
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrPrecondition)
}

// MissingField returns the field named by a PreconditionError in err's
// chain, or "" when there is none.
func MissingField(err error) string {
	var pe *PreconditionError
	if errors.As(err, &pe) {
		return pe.Field
	}
	return ""
}
