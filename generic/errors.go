/*
errors.go - Centralized error types for the leave engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  The leave package returns these errors; outer layers classify them.

ERROR CATEGORIES:
  1. Invalid input - Rejected eagerly at construction (bad dates, salary,
     misaligned periods, spans crossing a month). Safe to show to the caller.
  2. Invalid carry-over state - A rest balance was asked for more than it
     holds. Allocator invariant violation: fatal, never retried.

USAGE:
  if errors.Is(err, generic.ErrInvalidInput) {
      // 400 with err.Error() as the message
  }

SEE ALSO:
  - leave/contract.go: Contract validation
  - leave/allocation.go: Rest balances
*/
package generic

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidInput is returned when a contract, period or month span
	// cannot be constructed from the given values.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCarryOverState is returned when a deduction would drive a
	// rest balance below zero outside of settlement.
	ErrInvalidCarryOverState = errors.New("invalid carry-over state")

	// ErrInvalidPeriod is returned when a period is malformed (end before start).
	ErrInvalidPeriod = fmt.Errorf("%w: end before start", ErrInvalidInput)
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidInputError names the offending field.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// CarryOverError provides details about an over-deduction.
type CarryOverError struct {
	Rest      string
	Remaining decimal.Decimal
	Requested decimal.Decimal
}

func (e *CarryOverError) Error() string {
	return fmt.Sprintf("%s rest: cannot deduct %s, only %s remaining",
		e.Rest, e.Requested, e.Remaining)
}

func (e *CarryOverError) Unwrap() error {
	return ErrInvalidCarryOverState
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsInvariantViolation returns true if the error signals a broken allocator
// invariant rather than bad input.
func IsInvariantViolation(err error) bool {
	return errors.Is(err, ErrInvalidCarryOverState)
}
