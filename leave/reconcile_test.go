package leave_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/leave-engine/leave"
)

func TestReconcile_SettledContractPaysEveryPeriodInFull(t *testing.T) {
	s, err := leave.Simulate(date(2020, time.January, 1), date(2021, time.September, 30), money("1000"))
	require.NoError(t, err)

	recs := s.Reconcile()
	require.Len(t, recs, 3)
	for _, r := range recs {
		assertDecimal(t, "0", r.SettlementDiff, "period %d settlement", r.PeriodIndex)
		assertDecimal(t, "0", r.AmortizedDiff, "period %d amortized", r.PeriodIndex)
		assertDecimal(t, "0", r.PercentageDiff, "period %d percentage", r.PeriodIndex)
	}
	assert.True(t, s.Balanced())
}

func TestReconcile_AmortizedResidueIsPaidInFull(t *testing.T) {
	// GIVEN: A first period valued 775.57, amortized as 12 * 64.63
	// THEN: The missing cent is paid at contract end and every period reconciles exactly

	s, err := leave.Simulate(date(2020, time.January, 15), date(2021, time.June, 30), money("1500"))
	require.NoError(t, err)

	recs := s.Reconcile()
	require.Len(t, recs, 3)

	assertDecimal(t, "775.57", recs[0].ValueFinal)
	assertDecimal(t, "775.57", recs[0].Paid.Amortized)
	for _, r := range recs {
		assertDecimal(t, "0", r.SettlementDiff, "period %d settlement", r.PeriodIndex)
		assertDecimal(t, "0", r.AmortizedDiff, "period %d amortized", r.PeriodIndex)
		assertDecimal(t, "0", r.PercentageDiff, "period %d percentage", r.PeriodIndex)
		assert.True(t, r.Balanced(money("0")))
	}
	assert.True(t, s.Balanced())
}

func TestPeriodReconciliation_Balanced(t *testing.T) {
	r := leave.PeriodReconciliation{
		SettlementDiff: money("0"),
		AmortizedDiff:  money("0"),
		PercentageDiff: money("-0.01"),
	}

	assert.True(t, r.Balanced(leave.RoundingTolerance))
	assert.False(t, r.Balanced(money("0")))
}

func TestReconcile_LongContractsStayBalanced(t *testing.T) {
	salaries := []string{"200", "506", "777.77", "1000", "1200"}
	for _, salary := range salaries {
		t.Run(salary, func(t *testing.T) {
			s, err := leave.Simulate(date(2015, time.September, 23), date(2024, time.January, 9), money(salary))
			require.NoError(t, err)
			assert.True(t, s.Balanced())

			for _, r := range s.Reconcile() {
				assertDecimal(t, "0", r.AmortizedDiff, "period %d amortized", r.PeriodIndex)
			}
			_, amortized, _ := sumPayments(s.Payments)
			assertDecimal(t, s.TotalEntitlement().String(), amortized)
		})
	}
}
