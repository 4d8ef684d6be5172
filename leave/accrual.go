package leave

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/warp/leave-engine/generic"
)

// =============================================================================
// ACCRUAL PERIOD - One leave year (or a clipped piece of one)
// =============================================================================

// AccrualPeriod holds the entitlement earned over one leave year of a
// contract. Every field is computed once by NewAccrualPeriod.
type AccrualPeriod struct {
	Index  int
	Start  generic.Date
	End    generic.Date
	Salary decimal.Decimal

	MonthsAccrued       decimal.Decimal
	LeaveDaysAccrued    decimal.Decimal
	ValueMaintainSalary decimal.Decimal
	ValueTenPercent     decimal.Decimal
	ValueFinal          decimal.Decimal
}

// NewAccrualPeriod validates the span and values it.
func NewAccrualPeriod(index int, start, end generic.Date, salary decimal.Decimal) (*AccrualPeriod, error) {
	span, err := generic.NewPeriod(start, end)
	if err != nil {
		return nil, err
	}
	if !LeaveYear.Within(span) {
		return nil, &generic.InvalidInputError{
			Field: "period",
			Message: fmt.Sprintf("%s crosses the leave year boundary (must end by %s)",
				span, LeaveYear.PeriodFor(start).End),
		}
	}
	if !salary.IsPositive() {
		return nil, &generic.InvalidInputError{Field: "salary", Message: "must be positive"}
	}

	p := &AccrualPeriod{Index: index, Start: start, End: end, Salary: salary}
	if p.MonthsAccrued, err = monthsAccrued(span); err != nil {
		return nil, err
	}
	p.LeaveDaysAccrued = leaveDays(p.MonthsAccrued)
	p.ValueMaintainSalary = maintainSalaryValue(salary, p.LeaveDaysAccrued)
	p.ValueTenPercent = tenPercentValue(salary, p.MonthsAccrued, p.LeaveDaysAccrued)
	p.ValueFinal = decimal.Max(p.ValueMaintainSalary, p.ValueTenPercent)
	return p, nil
}

// Span returns the period as a generic.Period.
func (p *AccrualPeriod) Span() generic.Period {
	return generic.Period{Start: p.Start, End: p.End}
}

// IsFullYear is true for a whole June 1 - May 31 period.
func (p *AccrualPeriod) IsFullYear() bool {
	year := LeaveYear.PeriodFor(p.Start)
	return year.Start.Equal(p.Start) && year.End.Equal(p.End)
}

// =============================================================================
// CALCULATOR
// =============================================================================

// monthsAccrued sums the month fractions of the span: 1 per whole calendar
// month, the prorata ratio for a partial first or last month.
func monthsAccrued(span generic.Period) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, month := range span.Months() {
		fraction, err := generic.MonthFraction(month)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(fraction)
	}
	return total, nil
}

func leaveDays(months decimal.Decimal) decimal.Decimal {
	if !months.IsPositive() {
		return decimal.Zero
	}
	return generic.RoundDays(months.Mul(DaysPerMonth))
}

func maintainSalaryValue(salary, leaveDays decimal.Decimal) decimal.Decimal {
	if !leaveDays.IsPositive() {
		return decimal.Zero
	}
	daily := salary.Div(WorkingDaysPerMonth)
	return generic.RoundMoney(daily.Mul(leaveDays))
}

func tenPercentValue(salary, months, leaveDays decimal.Decimal) decimal.Decimal {
	if !leaveDays.IsPositive() {
		return decimal.Zero
	}
	return generic.RoundMoney(salary.Mul(months).Mul(TenPercent))
}
