/*
Package leave implements the paid-leave accrual and payout engine.

PURPOSE:
  Given an employment contract (start, end, monthly gross salary), the
  engine computes how much paid leave the employee earns in each leave year
  and how that entitlement is paid out month by month.

PIPELINE:
  Contract
    -> split into accrual periods (leave years, June 1 - May 31)
    -> value each period (maintain-salary vs ten-percent, keep the max)
    -> allocate payments over the calendar months (three payout schemes)
    -> settle every outstanding rest in the contract's last month

VALUATION METHODS:
  Maintain-salary: salary / 22 working days * leave days accrued
  Ten-percent:     10% of the gross salary earned over the period
  Final value:     the greater of the two

PAYOUT SCHEMES (alternatives, each pays every period's final value once):
  Settlement:  lump sum of last period's value in June (rollover month)
  Amortized:   last period's value / 12, every month of the current period
  Percentage:  10% of each month's salary, topped up in June with what the
               previous period's value still owes

EXAMPLE:
  contract, err := leave.NewContract(
      generic.NewDate(2020, time.March, 15),
      generic.NewDate(2020, time.May, 31),
      decimal.NewFromInt(506),
  )
  schedule, err := contract.Schedule()
  // schedule.Periods[0].ValueFinal == 146.63

SEE ALSO:
  - contract.go: Contract aggregate and splitter
  - accrual.go: Leave-value calculator
  - allocation.go: Monthly allocator
  - reconcile.go: Per-period payout totals
*/
package leave

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/leave-engine/generic"
)

// =============================================================================
// STATUTORY CONSTANTS
// =============================================================================

var (
	// LeaveYear is the accrual window: June 1 - May 31.
	LeaveYear = generic.FiscalYear{StartMonth: time.June}

	// RolloverMonth is when last period's entitlement falls due.
	RolloverMonth = LeaveYear.StartMonth

	// DaysPerMonth is leave earned per month worked.
	DaysPerMonth = decimal.RequireFromString("2.5")

	// WorkingDaysPerMonth converts a monthly salary into a daily one.
	WorkingDaysPerMonth = decimal.NewFromInt(22)

	// TenPercent is the rate of the ten-percent method.
	TenPercent = decimal.RequireFromString("0.1")

	// AmortizationMonths spreads last period's value "by the dozen".
	AmortizationMonths = decimal.NewFromInt(12)
)
