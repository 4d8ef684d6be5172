/*
allocation.go - Monthly allocator

PURPOSE:
  Walks the accrual periods of a contract month by month and computes what
  each payout scheme pays that month. The previous period's final value and
  its unpaid percentage remainder are threaded from one period to the next
  as an accumulator; no period ever reads or writes a sibling.

PER MONTH:
  perceived  = salary, or salary * prorata for a partial month
  amortized  = round(previous final / 12), taken from the amortized rest
  percentage = round(perceived * 10%), plus the previous period's unpaid
               percentage rest in June
  settlement = previous final in June, else 0

CONTRACT END:
  The month ending on the contract's end date settles everything: every
  amortized rest still holding cents, the current amortized rest and the
  current final value go to amortized, the current
  percentage rest goes to percentage, the current final value goes to
  settlement. The period is then SETTLED.

PERIOD STATES:
  open -> rolled_over   walk finished, value carried into the next period
  open -> settled       contract ended inside this period

ROUNDING:
  Twelve rounded shares of a value can overshoot it by a few cents. Shares
  are capped at what the rest still holds, so a rest never goes negative and
  the last share of a year can be smaller than the others.
  Rounding down leaves up to half a cent per month in a rolled-over amortized
  rest. Those rests are carried forward and paid in the contract's last month.
  The monthly tenth is taken from the unrounded perceived salary.
*/
package leave

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/warp/leave-engine/generic"
)

// =============================================================================
// OUTPUT TYPES
// =============================================================================

// MonthlyPayment is what each payout scheme pays for one calendar month.
type MonthlyPayment struct {
	PeriodIndex int
	Start       generic.Date
	End         generic.Date

	PerceivedSalary   decimal.Decimal
	PaymentSettlement decimal.Decimal
	PaymentAmortized  decimal.Decimal
	PaymentPercentage decimal.Decimal

	// Settled marks the contract's last month, which absorbs every rest.
	Settled bool
}

// IsRollover is true for the month opening a leave year.
func (m MonthlyPayment) IsRollover() bool {
	return m.Start.Month() == RolloverMonth
}

type PeriodState string

const (
	PeriodOpen       PeriodState = "open"
	PeriodRolledOver PeriodState = "rolled_over"
	PeriodSettled    PeriodState = "settled"
)

// Payout is what each scheme has paid toward one period's final value.
type Payout struct {
	Settlement decimal.Decimal
	Amortized  decimal.Decimal
	Percentage decimal.Decimal
}

// PeriodAllocation is the outcome of one period's walk.
type PeriodAllocation struct {
	PeriodIndex int
	State       PeriodState

	// What is left of the previous period's value under the amortized scheme
	// once the allocation is complete.
	AmortizedRest decimal.Decimal

	// What is left of this period's value under the percentage scheme. It is
	// paid in the next period's rollover month.
	PercentageRest decimal.Decimal

	// Paid toward this period's own final value, across this walk and the next.
	Paid Payout
}

func (a *PeriodAllocation) close(to PeriodState) error {
	if a.State != PeriodOpen {
		return fmt.Errorf("%w: period %d must be open to become %s, got %s",
			generic.ErrInvalidCarryOverState, a.PeriodIndex, to, a.State)
	}
	a.State = to
	return nil
}

// =============================================================================
// ALLOCATOR
// =============================================================================

// carryOver is what one period hands to the next.
type carryOver struct {
	prevFinal      decimal.Decimal
	percentageRest *generic.Rest

	// Amortized rests of rolled-over periods that still hold cents.
	owed []owedRest
}

// owedRest is an unpaid amortized rest and the payout it is credited to.
type owedRest struct {
	rest *generic.Rest
	paid *Payout
}

// Allocate computes the monthly payments of an ordered, gapless period
// sequence. contractEnd is the last day of the contract: the month ending
// there settles.
func Allocate(periods []*AccrualPeriod, contractEnd generic.Date) ([]MonthlyPayment, []PeriodAllocation, error) {
	var payments []MonthlyPayment
	allocations := make([]PeriodAllocation, len(periods))
	amortizedRests := make([]*generic.Rest, len(periods))
	paid := make([]Payout, len(periods)+1) // paid[i+1] is period i; paid[0] absorbs the zero carry

	carry := carryOver{
		prevFinal:      decimal.Zero,
		percentageRest: generic.NewRest("percentage", decimal.Zero),
	}

	for i, period := range periods {
		w := walk{
			period:      period,
			carry:       carry,
			contractEnd: contractEnd,
			prevPaid:    &paid[i],
			ownPaid:     &paid[i+1],
			alloc:       PeriodAllocation{PeriodIndex: period.Index, State: PeriodOpen},
		}
		months, next, err := w.run()
		if err != nil {
			return nil, nil, fmt.Errorf("allocating period %d %s: %w", period.Index, period.Span(), err)
		}
		payments = append(payments, months...)
		allocations[i] = w.alloc
		amortizedRests[i] = w.amortized
		carry = next
	}

	for i := range allocations {
		allocations[i].AmortizedRest = amortizedRests[i].Remaining
		allocations[i].Paid = paid[i+1]
	}
	return payments, allocations, nil
}

// walk is the allocator state for one period. It owns both rests for the
// duration of the walk.
type walk struct {
	period      *AccrualPeriod
	carry       carryOver
	contractEnd generic.Date
	prevPaid    *Payout
	ownPaid     *Payout
	alloc       PeriodAllocation
	amortized   *generic.Rest
}

func (w *walk) run() ([]MonthlyPayment, carryOver, error) {
	amortized := generic.NewRest("amortized", w.carry.prevFinal)
	w.amortized = amortized
	current := generic.NewRest("percentage", w.period.ValueFinal)
	share := generic.RoundMoney(w.carry.prevFinal.Div(AmortizationMonths))

	var payments []MonthlyPayment
	for _, month := range w.period.Span().Months() {
		payment, err := w.month(month)
		if err != nil {
			return nil, w.carry, err
		}

		taken, err := amortized.DeductUpTo(share)
		if err != nil {
			return nil, w.carry, err
		}
		payment.PaymentAmortized = taken
		w.prevPaid.Amortized = w.prevPaid.Amortized.Add(taken)

		tenth := payment.PaymentPercentage
		w.ownPaid.Percentage = w.ownPaid.Percentage.Add(tenth)
		if payment.IsRollover() {
			topUp := w.carry.percentageRest.Settle()
			payment.PaymentSettlement = w.carry.prevFinal
			payment.PaymentPercentage = tenth.Add(topUp)
			w.prevPaid.Settlement = w.prevPaid.Settlement.Add(w.carry.prevFinal)
			w.prevPaid.Percentage = w.prevPaid.Percentage.Add(topUp)
		}
		if _, err := current.DeductUpTo(tenth); err != nil {
			return nil, w.carry, err
		}

		if month.End.Equal(w.contractEnd) {
			w.settle(&payment, amortized, current)
			if err := w.alloc.close(PeriodSettled); err != nil {
				return nil, w.carry, err
			}
		}
		payments = append(payments, payment)
	}

	if w.alloc.State == PeriodOpen {
		if err := w.alloc.close(PeriodRolledOver); err != nil {
			return nil, w.carry, err
		}
	}
	w.alloc.PercentageRest = current.Remaining

	next := carryOver{prevFinal: w.period.ValueFinal, percentageRest: current, owed: w.carry.owed}
	if w.alloc.State == PeriodSettled {
		next.owed = nil
	} else if !amortized.IsEmpty() {
		next.owed = append(next.owed, owedRest{rest: amortized, paid: w.prevPaid})
	}
	return payments, next, nil
}

// month fills the perceived salary and the monthly tenth.
func (w *walk) month(month generic.Period) (MonthlyPayment, error) {
	fraction, err := generic.MonthFraction(month)
	if err != nil {
		return MonthlyPayment{}, err
	}
	perceived := w.period.Salary.Mul(fraction)

	return MonthlyPayment{
		PeriodIndex:       w.period.Index,
		Start:             month.Start,
		End:               month.End,
		PerceivedSalary:   generic.RoundMoney(perceived),
		PaymentSettlement: decimal.Zero,
		PaymentAmortized:  decimal.Zero,
		PaymentPercentage: generic.RoundMoney(perceived.Mul(TenPercent)),
	}, nil
}

// settle pays out every outstanding rest in the contract's last month.
func (w *walk) settle(payment *MonthlyPayment, amortized, current *generic.Rest) {
	final := w.period.ValueFinal

	for _, o := range w.carry.owed {
		left := o.rest.Settle()
		payment.PaymentAmortized = payment.PaymentAmortized.Add(left)
		o.paid.Amortized = o.paid.Amortized.Add(left)
	}

	amortizedLeft := amortized.Settle()
	payment.PaymentAmortized = generic.Sum(payment.PaymentAmortized, amortizedLeft, final)
	w.prevPaid.Amortized = w.prevPaid.Amortized.Add(amortizedLeft)
	w.ownPaid.Amortized = w.ownPaid.Amortized.Add(final)

	currentLeft, carriedLeft := current.Settle(), w.carry.percentageRest.Settle()
	payment.PaymentPercentage = generic.Sum(payment.PaymentPercentage, currentLeft, carriedLeft)
	w.ownPaid.Percentage = w.ownPaid.Percentage.Add(currentLeft)
	w.prevPaid.Percentage = w.prevPaid.Percentage.Add(carriedLeft)

	payment.PaymentSettlement = payment.PaymentSettlement.Add(final)
	w.ownPaid.Settlement = w.ownPaid.Settlement.Add(final)

	payment.Settled = true
}
