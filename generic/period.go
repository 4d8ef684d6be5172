package generic

import (
	"fmt"
	"time"
)

// =============================================================================
// PERIOD - A closed range of calendar days
// =============================================================================

// Period is the closed interval [Start, End].
//
// Examples:
//   - Leave year 2020: 2020-06-01 - 2021-05-31
//   - One payroll month: 2021-01-01 - 2021-01-31
//   - A partial month at contract start: 2021-01-15 - 2021-01-31
type Period struct {
	Start Date
	End   Date
}

// NewPeriod validates that start is not after end.
func NewPeriod(start, end Date) (Period, error) {
	if end.Before(start) {
		return Period{}, fmt.Errorf("%w: %s is before %s", ErrInvalidPeriod, end, start)
	}
	return Period{Start: start, End: end}, nil
}

// Contains returns true if d is within the period [Start, End]
func (p Period) Contains(d Date) bool {
	return d.AfterOrEqual(p.Start) && d.BeforeOrEqual(p.End)
}

// Days returns the number of calendar days in the period, both ends included.
func (p Period) Days() int {
	return DaysBetween(p.Start, p.End) + 1
}

// Months cuts the period into consecutive calendar-month spans. Only the first
// and last spans can be partial.
func (p Period) Months() []Period {
	var months []Period
	current := p.Start
	for current.BeforeOrEqual(p.End) {
		end := MinDate(EndOfMonth(current.Year(), current.Month()), p.End)
		months = append(months, Period{Start: current, End: end})
		current = end.AddDays(1)
	}
	return months
}

// String returns a string representation of the period.
func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}

// =============================================================================
// FISCAL YEAR - Fixed-boundary year used to cut contracts into leave periods
// =============================================================================

// FiscalYear describes a year that opens on the 1st of StartMonth.
// Paid leave runs June 1 - May 31: FiscalYear{StartMonth: time.June}.
type FiscalYear struct {
	StartMonth time.Month
}

// PeriodFor returns the fiscal year that contains the given date.
func (fy FiscalYear) PeriodFor(date Date) Period {
	year := date.Year()
	fiscalStart := NewDate(year, fy.StartMonth, 1)

	// If date is before fiscal year start, we're in previous fiscal year
	if date.Before(fiscalStart) {
		fiscalStart = NewDate(year-1, fy.StartMonth, 1)
	}

	fiscalEnd := Date{Time: fiscalStart.Time.AddDate(1, 0, -1)}
	return Period{Start: fiscalStart, End: fiscalEnd}
}

// Within reports whether p does not cross a fiscal-year boundary, i.e. its
// end is no later than the last day of the fiscal year its start falls in.
func (fy FiscalYear) Within(p Period) bool {
	return p.End.BeforeOrEqual(fy.PeriodFor(p.Start).End)
}

// Split partitions span into consecutive fiscal-year pieces. The first piece
// may start mid-year and the last may end mid-year; every piece in between is
// a whole fiscal year.
func (fy FiscalYear) Split(span Period) []Period {
	var pieces []Period
	current := span.Start
	for current.BeforeOrEqual(span.End) {
		end := MinDate(fy.PeriodFor(current).End, span.End)
		pieces = append(pieces, Period{Start: current, End: end})
		current = end.AddDays(1)
	}
	return pieces
}
