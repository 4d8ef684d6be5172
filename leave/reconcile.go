package leave

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// RECONCILIATION - Did every scheme pay each period's value?
// =============================================================================

// PeriodReconciliation compares what each scheme paid toward a period with
// the period's final value. A positive difference is an overpayment.
type PeriodReconciliation struct {
	PeriodIndex int
	ValueFinal  decimal.Decimal
	Paid        Payout

	SettlementDiff decimal.Decimal
	AmortizedDiff  decimal.Decimal
	PercentageDiff decimal.Decimal
}

// Balanced reports whether every scheme is within tolerance of the value.
func (r PeriodReconciliation) Balanced(tolerance decimal.Decimal) bool {
	for _, diff := range []decimal.Decimal{r.SettlementDiff, r.AmortizedDiff, r.PercentageDiff} {
		if diff.Abs().GreaterThan(tolerance) {
			return false
		}
	}
	return true
}

// RoundingTolerance bounds the drift a period can accumulate: one cent per
// monthly tenth over at most a year.
var RoundingTolerance = decimal.RequireFromString("0.01").Mul(AmortizationMonths)

// Reconcile lists, per period, the totals each scheme paid toward it.
func (s *Schedule) Reconcile() []PeriodReconciliation {
	out := make([]PeriodReconciliation, len(s.Periods))
	for i, p := range s.Periods {
		paid := s.Allocations[i].Paid
		out[i] = PeriodReconciliation{
			PeriodIndex:    p.Index,
			ValueFinal:     p.ValueFinal,
			Paid:           paid,
			SettlementDiff: paid.Settlement.Sub(p.ValueFinal),
			AmortizedDiff:  paid.Amortized.Sub(p.ValueFinal),
			PercentageDiff: paid.Percentage.Sub(p.ValueFinal),
		}
	}
	return out
}

// Balanced is true when every period reconciles within RoundingTolerance.
func (s *Schedule) Balanced() bool {
	for _, r := range s.Reconcile() {
		if !r.Balanced(RoundingTolerance) {
			return false
		}
	}
	return true
}
