/*
balance.go - Carry-over rest balances

PURPOSE:
  A Rest tracks the unpaid remainder of an entitlement while monthly
  payments are deducted from it. It answers "how much of this value is
  still owed?"

RULES:
  - Deduct(amount) never drives the rest below zero. Asking for more than
    what remains is an invariant violation (ErrInvalidCarryOverState).
  - DeductUpTo(amount) takes at most what remains and reports what it took.
    This is how the allocator pays a fixed share whose rounding may overshoot
    the last cents of the rest.
  - Settle() pays out whatever remains and zeroes the rest. Only settlement
    may do this.

EXAMPLE:
  rest := generic.NewRest("amortized", d("100.00"))
  rest.Deduct(d("8.33"))   // remaining 91.67
  rest.Deduct(d("95.00"))  // CarryOverError, remaining unchanged
  rest.Settle()            // returns 91.67, remaining 0
*/
package generic

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// REST - Unpaid remainder of an entitlement
// =============================================================================

type Rest struct {
	Name      string
	Initial   decimal.Decimal
	Remaining decimal.Decimal
}

// NewRest opens a rest holding the full amount.
func NewRest(name string, amount decimal.Decimal) *Rest {
	return &Rest{Name: name, Initial: amount, Remaining: amount}
}

// Deduct removes amount from the rest.
func (r *Rest) Deduct(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return &InvalidInputError{
			Field:   r.Name + " deduction",
			Message: fmt.Sprintf("%s is negative", amount),
		}
	}
	if amount.GreaterThan(r.Remaining) {
		return &CarryOverError{Rest: r.Name, Remaining: r.Remaining, Requested: amount}
	}
	r.Remaining = r.Remaining.Sub(amount)
	return nil
}

// DeductUpTo removes min(amount, remaining) and returns the amount taken.
func (r *Rest) DeductUpTo(amount decimal.Decimal) (decimal.Decimal, error) {
	taken := decimal.Min(amount, r.Remaining)
	if err := r.Deduct(taken); err != nil {
		return decimal.Zero, err
	}
	return taken, nil
}

// Settle empties the rest and returns what was left in it.
func (r *Rest) Settle() decimal.Decimal {
	left := r.Remaining
	r.Remaining = decimal.Zero
	return left
}

// Paid is how much has left the rest so far.
func (r *Rest) Paid() decimal.Decimal {
	return r.Initial.Sub(r.Remaining)
}

func (r *Rest) IsEmpty() bool {
	return r.Remaining.IsZero()
}
