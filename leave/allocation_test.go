package leave_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/leave-engine/generic"
	"github.com/warp/leave-engine/leave"
)

// expectedMonth is one row of an expected payment table.
type expectedMonth struct {
	start                             string
	perceived                         string
	settlement, amortized, percentage string
	settled                           bool
}

func assertPayments(t *testing.T, want []expectedMonth, got []leave.MonthlyPayment) {
	t.Helper()
	require.Len(t, got, len(want))
	for i, w := range want {
		g := got[i]
		assert.Equal(t, w.start, g.Start.String(), "month %d start", i)
		assertDecimal(t, w.perceived, g.PerceivedSalary, "%s perceived", w.start)
		assertDecimal(t, w.settlement, g.PaymentSettlement, "%s settlement", w.start)
		assertDecimal(t, w.amortized, g.PaymentAmortized, "%s amortized", w.start)
		assertDecimal(t, w.percentage, g.PaymentPercentage, "%s percentage", w.start)
		assert.Equal(t, w.settled, g.Settled, "%s settled", w.start)
	}
}

func sumPayments(payments []leave.MonthlyPayment) (settlement, amortized, percentage decimal.Decimal) {
	for _, p := range payments {
		settlement = settlement.Add(p.PaymentSettlement)
		amortized = amortized.Add(p.PaymentAmortized)
		percentage = percentage.Add(p.PaymentPercentage)
	}
	return
}

// =============================================================================
// SINGLE PERIOD
// =============================================================================

func TestAllocate_SinglePeriodSettlesInLastMonth(t *testing.T) {
	// GIVEN: 2020-03-15 to 2020-05-31 at 506/month, final value 146.63
	// WHEN: Allocating
	// THEN: Nothing to amortize or settle before May; May pays the whole value
	//       under every scheme and tops up the percentage remainder

	s, err := leave.Simulate(date(2020, time.March, 15), date(2020, time.May, 31), money("506"))
	require.NoError(t, err)

	assertPayments(t, []expectedMonth{
		{"2020-03-15", "278.30", "0", "0", "27.83", false},
		{"2020-04-01", "506.00", "0", "0", "50.60", false},
		{"2020-05-01", "506.00", "146.63", "146.63", "68.20", true},
	}, s.Payments)

	require.Len(t, s.Allocations, 1)
	assert.Equal(t, leave.PeriodSettled, s.Allocations[0].State)
	assertDecimal(t, "0", s.Allocations[0].PercentageRest)
}

func TestAllocate_ContractEndingMidMonthSettlesThatMonth(t *testing.T) {
	s, err := leave.Simulate(date(2021, time.June, 1), date(2021, time.June, 15), money("1000"))
	require.NoError(t, err)

	require.Len(t, s.Payments, 1)
	last := s.Payments[0]
	assert.True(t, last.Settled)
	assert.Equal(t, "2021-06-15", last.End.String())
	assertDecimal(t, "500.00", last.PerceivedSalary)
	assertDecimal(t, "56.82", last.PaymentSettlement)
	assertDecimal(t, "56.82", last.PaymentAmortized)
	assertDecimal(t, "56.82", last.PaymentPercentage)
}

// =============================================================================
// MULTI PERIOD
// =============================================================================

func TestAllocate_ThreePeriods(t *testing.T) {
	// GIVEN: 2020-01-01 to 2021-09-30 at 1000/month
	//        finals 568.18, 1363.64, 454.55
	// WHEN: Allocating
	// THEN: Each June settles the previous final, amortizes it over twelve
	//       months and tops up its unpaid percentage remainder

	s, err := leave.Simulate(date(2020, time.January, 1), date(2021, time.September, 30), money("1000"))
	require.NoError(t, err)
	require.Len(t, s.Payments, 21)

	assertPayments(t, []expectedMonth{
		{"2020-01-01", "1000.00", "0", "0", "100.00", false},
		{"2020-02-01", "1000.00", "0", "0", "100.00", false},
		{"2020-03-01", "1000.00", "0", "0", "100.00", false},
		{"2020-04-01", "1000.00", "0", "0", "100.00", false},
		{"2020-05-01", "1000.00", "0", "0", "100.00", false},
		{"2020-06-01", "1000.00", "568.18", "47.35", "168.18", false},
		{"2020-07-01", "1000.00", "0", "47.35", "100.00", false},
		{"2020-08-01", "1000.00", "0", "47.35", "100.00", false},
		{"2020-09-01", "1000.00", "0", "47.35", "100.00", false},
		{"2020-10-01", "1000.00", "0", "47.35", "100.00", false},
		{"2020-11-01", "1000.00", "0", "47.35", "100.00", false},
		{"2020-12-01", "1000.00", "0", "47.35", "100.00", false},
		{"2021-01-01", "1000.00", "0", "47.35", "100.00", false},
		{"2021-02-01", "1000.00", "0", "47.35", "100.00", false},
		{"2021-03-01", "1000.00", "0", "47.35", "100.00", false},
		{"2021-04-01", "1000.00", "0", "47.35", "100.00", false},
		{"2021-05-01", "1000.00", "0", "47.33", "100.00", false},
		{"2021-06-01", "1000.00", "1363.64", "113.64", "263.64", false},
		{"2021-07-01", "1000.00", "0", "113.64", "100.00", false},
		{"2021-08-01", "1000.00", "0", "113.64", "100.00", false},
		{"2021-09-01", "1000.00", "454.55", "1477.27", "154.55", true},
	}, s.Payments)

	settlement, amortized, percentage := sumPayments(s.Payments)
	assertDecimal(t, "2386.37", settlement)
	assertDecimal(t, "2386.37", amortized)
	assertDecimal(t, "2386.37", percentage)
}

func TestAllocate_PeriodStates(t *testing.T) {
	s, err := leave.Simulate(date(2020, time.January, 1), date(2021, time.September, 30), money("1000"))
	require.NoError(t, err)
	require.Len(t, s.Allocations, 3)

	assert.Equal(t, leave.PeriodRolledOver, s.Allocations[0].State)
	assert.Equal(t, leave.PeriodRolledOver, s.Allocations[1].State)
	assert.Equal(t, leave.PeriodSettled, s.Allocations[2].State)

	// 568.18 - 5 * 100 is left to top up in June 2020
	assertDecimal(t, "68.18", s.Allocations[0].PercentageRest)
	// 1363.64 - 12 * 100
	assertDecimal(t, "163.64", s.Allocations[1].PercentageRest)
	assertDecimal(t, "0", s.Allocations[1].AmortizedRest)
}

func TestAllocate_AmortizedResidueSettlesAtContractEnd(t *testing.T) {
	// GIVEN: 2020-01-15 to 2021-06-30 at 1500/month
	//        first final 775.57 amortized as 12 * 64.63 = 775.56
	// WHEN: The contract ends in June 2021
	// THEN: The cent left in the first period's amortized rest is paid in the last month

	s, err := leave.Simulate(date(2020, time.January, 15), date(2021, time.June, 30), money("1500"))
	require.NoError(t, err)
	require.Len(t, s.Allocations, 3)

	for _, a := range s.Allocations {
		assertDecimal(t, "0", a.AmortizedRest, "period %d amortized rest", a.PeriodIndex)
	}
	assertDecimal(t, "775.57", s.Allocations[0].Paid.Amortized)

	may2021 := s.Payments[len(s.Payments)-2]
	assert.Equal(t, "2021-05-01", may2021.Start.String())
	assertDecimal(t, "64.63", may2021.PaymentAmortized)

	last := s.Payments[len(s.Payments)-1]
	assert.True(t, last.Settled)
	assertDecimal(t, "2215.90", last.PaymentSettlement)
	assertDecimal(t, "2215.91", last.PaymentAmortized)
	assertDecimal(t, "415.90", last.PaymentPercentage)

	june2020 := s.Payments[5]
	assert.True(t, june2020.IsRollover())
	assertDecimal(t, "775.57", june2020.PaymentSettlement)
	assertDecimal(t, "64.63", june2020.PaymentAmortized)
	assertDecimal(t, "243.07", june2020.PaymentPercentage)

	settlement, amortized, percentage := sumPayments(s.Payments)
	assertDecimal(t, "2991.47", settlement)
	assertDecimal(t, "2991.47", amortized)
	assertDecimal(t, "2991.47", percentage)
}

func TestAllocate_TenthUsesUnroundedPerceivedSalary(t *testing.T) {
	// GIVEN: 1000.09/month from March 15, so March perceives 1000.09 * 0.55 = 550.0495
	// THEN: March shows 550.05 perceived, but its tenth is round(55.00495) = 55.00

	s, err := leave.Simulate(date(2020, time.March, 15), date(2020, time.May, 31), money("1000.09"))
	require.NoError(t, err)

	assertPayments(t, []expectedMonth{
		{"2020-03-15", "550.05", "0", "0", "55.00", false},
		{"2020-04-01", "1000.09", "0", "0", "100.01", false},
		{"2020-05-01", "1000.09", "289.80", "289.80", "134.79", true},
	}, s.Payments)
}

// =============================================================================
// PROPERTIES
// =============================================================================

func TestAllocate_IsDeterministic(t *testing.T) {
	start, end, salary := date(2019, time.July, 17), date(2022, time.March, 3), money("1234.56")

	first, err := leave.Simulate(start, end, salary)
	require.NoError(t, err)
	second, err := leave.Simulate(start, end, salary)
	require.NoError(t, err)

	require.Equal(t, len(first.Payments), len(second.Payments))
	for i := range first.Payments {
		a, b := first.Payments[i], second.Payments[i]
		assert.True(t, a.Start.Equal(b.Start))
		assert.True(t, a.PaymentSettlement.Equal(b.PaymentSettlement))
		assert.True(t, a.PaymentAmortized.Equal(b.PaymentAmortized))
		assert.True(t, a.PaymentPercentage.Equal(b.PaymentPercentage))
	}
}

func TestAllocate_PaymentsNeverNegativeAndCoverEveryMonth(t *testing.T) {
	contracts := []struct {
		start, end generic.Date
		salary     string
	}{
		{date(2019, time.July, 17), date(2022, time.March, 3), "1234.56"},
		{date(2020, time.February, 29), date(2020, time.March, 1), "200"},
		{date(2017, time.June, 1), date(2021, time.May, 31), "1200"},
	}

	for _, c := range contracts {
		start, end := c.start, c.end
		t.Run(start.String()+"_"+end.String(), func(t *testing.T) {
			s, err := leave.Simulate(start, end, money(c.salary))
			require.NoError(t, err)
			require.NotEmpty(t, s.Payments)

			assert.True(t, s.Payments[0].Start.Equal(start))
			assert.True(t, s.Payments[len(s.Payments)-1].End.Equal(end))
			for i, p := range s.Payments {
				assert.False(t, p.PaymentSettlement.IsNegative(), "%s settlement", p.Start)
				assert.False(t, p.PaymentAmortized.IsNegative(), "%s amortized", p.Start)
				assert.False(t, p.PaymentPercentage.IsNegative(), "%s percentage", p.Start)
				assert.Equal(t, i == len(s.Payments)-1, p.Settled)
				if i > 0 {
					assert.True(t, s.Payments[i-1].End.AddDays(1).Equal(p.Start))
				}
			}

			settlement, amortized, percentage := sumPayments(s.Payments)
			assert.True(t, settlement.Equal(s.TotalEntitlement()), "settlement %s", settlement)
			assert.True(t, amortized.Equal(s.TotalEntitlement()), "amortized %s", amortized)
			assert.True(t, percentage.Equal(s.TotalEntitlement()), "percentage %s", percentage)
		})
	}
}
