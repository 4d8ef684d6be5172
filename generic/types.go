/*
Package generic provides the calendar and money primitives of the leave engine.

PURPOSE:
  This package contains domain-agnostic types and helpers for working with
  calendar spans and amounts of money. Nothing in here knows about paid leave:
  the leave package builds accrual periods and payment schedules on top of it.

KEY CONCEPTS:
  - Date: A calendar day (no time of day, always UTC)
  - Period: A closed range of days, cut into months with Period.Months()
  - FiscalYear: A fixed-boundary year (e.g. June 1 - May 31) and its splitter
  - Prorata: Share of a calendar month covered by a partial-month span
  - Rounding: Money and ratios to 2 places, day counts to 3

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal to avoid floating-point errors
  2. Determinism: Round at every step, never deferred to the end
  3. Immutability: Dates and periods are values, never mutated in place

USAGE:
  fy := generic.FiscalYear{StartMonth: time.June}
  pieces := fy.Split(generic.Period{
      Start: generic.NewDate(2020, time.January, 1),
      End:   generic.NewDate(2021, time.September, 30),
  })
  // [2020-01-01, 2020-05-31] [2020-06-01, 2021-05-31] [2021-06-01, 2021-09-30]

SEE ALSO:
  - calendar.go: IsFullMonth, DaysInMonth, ProrataRatio
  - period.go: Period, FiscalYear
  - errors.go: InvalidInput and carry-over error kinds
*/
package generic

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// ROUNDING - Half away from zero, applied at every computation step
// =============================================================================

const (
	MoneyPlaces = 2
	RatioPlaces = 2
	DaysPlaces  = 3
)

func RoundMoney(d decimal.Decimal) decimal.Decimal { return d.Round(MoneyPlaces) }
func RoundRatio(d decimal.Decimal) decimal.Decimal { return d.Round(RatioPlaces) }
func RoundDays(d decimal.Decimal) decimal.Decimal  { return d.Round(DaysPlaces) }

// Sum adds a list of decimals.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
