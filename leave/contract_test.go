package leave_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/leave-engine/generic"
	"github.com/warp/leave-engine/leave"
)

func TestNewContract_Validation(t *testing.T) {
	tests := []struct {
		name       string
		start, end generic.Date
		salary     string
		field      string
	}{
		{"end before start", date(2021, time.May, 1), date(2021, time.April, 1), "1000", "dates"},
		{"same day", date(2021, time.May, 1), date(2021, time.May, 1), "1000", "dates"},
		{"missing start", generic.Date{}, date(2021, time.May, 1), "1000", "dates"},
		{"zero salary", date(2020, time.January, 1), date(2021, time.May, 1), "0", "salary"},
		{"negative salary", date(2020, time.January, 1), date(2021, time.May, 1), "-10", "salary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := leave.NewContract(tt.start, tt.end, money(tt.salary))

			require.Error(t, err)
			assert.ErrorIs(t, err, generic.ErrInvalidInput)
			assert.True(t, generic.IsClientError(err))
			var inputErr *generic.InvalidInputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.field, inputErr.Field)
		})
	}
}

func TestNewContract_ReversedDatesMessage(t *testing.T) {
	_, err := leave.NewContract(date(2021, time.May, 1), date(2021, time.April, 1), money("1000"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start date 2021-05-01 should be before end date 2021-04-01")
}

func TestContract_Periods_SplitsOnLeaveYears(t *testing.T) {
	// GIVEN: A contract from 2020-01-01 to 2021-09-30 at 1000/month
	// WHEN: Splitting into accrual periods
	// THEN: Three periods valued 568.18, 1363.64, 454.55

	c, err := leave.NewContract(date(2020, time.January, 1), date(2021, time.September, 30), money("1000"))
	require.NoError(t, err)

	periods, err := c.Periods()
	require.NoError(t, err)
	require.Len(t, periods, 3)

	want := []struct {
		span   string
		months string
		final  string
	}{
		{"[2020-01-01, 2020-05-31]", "5", "568.18"},
		{"[2020-06-01, 2021-05-31]", "12", "1363.64"},
		{"[2021-06-01, 2021-09-30]", "4", "454.55"},
	}
	for i, w := range want {
		assert.Equal(t, i, periods[i].Index)
		assert.Equal(t, w.span, periods[i].Span().String())
		assertDecimal(t, w.months, periods[i].MonthsAccrued, "period %d months", i)
		assertDecimal(t, w.final, periods[i].ValueFinal, "period %d final", i)
	}
}

func TestContract_Periods_AreGapless(t *testing.T) {
	c, err := leave.NewContract(date(2018, time.October, 9), date(2023, time.February, 14), money("842.10"))
	require.NoError(t, err)

	periods, err := c.Periods()
	require.NoError(t, err)
	require.NotEmpty(t, periods)

	assert.True(t, periods[0].Start.Equal(c.Start))
	assert.True(t, periods[len(periods)-1].End.Equal(c.End))
	for i := 1; i < len(periods); i++ {
		assert.True(t, periods[i-1].End.AddDays(1).Equal(periods[i].Start),
			"gap between period %d and %d", i-1, i)
		assert.Equal(t, time.June, periods[i].Start.Month())
	}
}

func TestSimulate_RejectsInvalidContract(t *testing.T) {
	s, err := leave.Simulate(date(2021, time.June, 1), date(2021, time.January, 1), money("1000"))
	assert.Nil(t, s)
	assert.ErrorIs(t, err, generic.ErrInvalidInput)
}

func TestSchedule_TotalEntitlement(t *testing.T) {
	s, err := leave.Simulate(date(2020, time.January, 1), date(2021, time.September, 30), money("1000"))
	require.NoError(t, err)

	assertDecimal(t, "2386.37", s.TotalEntitlement())
}

func TestSchedule_PaymentsFor(t *testing.T) {
	s, err := leave.Simulate(date(2020, time.January, 1), date(2021, time.September, 30), money("1000"))
	require.NoError(t, err)

	assert.Len(t, s.PaymentsFor(0), 5)
	assert.Len(t, s.PaymentsFor(1), 12)
	assert.Len(t, s.PaymentsFor(2), 4)
	assert.Empty(t, s.PaymentsFor(3))
}
