package leave

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/warp/leave-engine/generic"
)

// =============================================================================
// CONTRACT - The aggregate fed by the outer layers
// =============================================================================

// Contract is an employment contract: a date range and a monthly gross salary.
// It is immutable once constructed.
type Contract struct {
	Start  generic.Date
	End    generic.Date
	Salary decimal.Decimal
}

// NewContract validates the inputs eagerly. start must be strictly before end
// and salary must be positive.
func NewContract(start, end generic.Date, salary decimal.Decimal) (*Contract, error) {
	if start.IsZero() || end.IsZero() {
		return nil, &generic.InvalidInputError{Field: "dates", Message: "start and end dates are required"}
	}
	if !start.Before(end) {
		return nil, &generic.InvalidInputError{
			Field:   "dates",
			Message: fmt.Sprintf("start date %s should be before end date %s", start, end),
		}
	}
	if !salary.IsPositive() {
		return nil, &generic.InvalidInputError{
			Field:   "salary",
			Message: fmt.Sprintf("must be a positive amount, got %s", salary),
		}
	}
	return &Contract{Start: start, End: end, Salary: salary}, nil
}

// Span returns the contract as a generic.Period.
func (c *Contract) Span() generic.Period {
	return generic.Period{Start: c.Start, End: c.End}
}

// Periods splits the contract into leave years and values each of them.
// Periods are contiguous: periods[i].End + 1 day == periods[i+1].Start.
func (c *Contract) Periods() ([]*AccrualPeriod, error) {
	pieces := LeaveYear.Split(c.Span())
	periods := make([]*AccrualPeriod, 0, len(pieces))
	for i, piece := range pieces {
		p, err := NewAccrualPeriod(i, piece.Start, piece.End, c.Salary)
		if err != nil {
			return nil, fmt.Errorf("period %d: %w", i, err)
		}
		periods = append(periods, p)
	}
	return periods, nil
}

// =============================================================================
// SCHEDULE - Full computation output
// =============================================================================

// Schedule is everything the engine derives from one contract.
type Schedule struct {
	Contract    Contract
	Periods     []*AccrualPeriod
	Payments    []MonthlyPayment
	Allocations []PeriodAllocation
}

// Schedule runs the whole pipeline. It either returns a complete schedule or
// an error; there are no partial results.
func (c *Contract) Schedule() (*Schedule, error) {
	periods, err := c.Periods()
	if err != nil {
		return nil, err
	}
	payments, allocations, err := Allocate(periods, c.End)
	if err != nil {
		return nil, err
	}
	return &Schedule{
		Contract:    *c,
		Periods:     periods,
		Payments:    payments,
		Allocations: allocations,
	}, nil
}

// Simulate validates a contract and computes its schedule.
func Simulate(start, end generic.Date, salary decimal.Decimal) (*Schedule, error) {
	contract, err := NewContract(start, end, salary)
	if err != nil {
		return nil, err
	}
	return contract.Schedule()
}

// PaymentsFor returns the months belonging to one accrual period.
func (s *Schedule) PaymentsFor(periodIndex int) []MonthlyPayment {
	var out []MonthlyPayment
	for _, p := range s.Payments {
		if p.PeriodIndex == periodIndex {
			out = append(out, p)
		}
	}
	return out
}

// TotalEntitlement is the sum of every period's final value.
func (s *Schedule) TotalEntitlement() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.Periods {
		total = total.Add(p.ValueFinal)
	}
	return total
}
