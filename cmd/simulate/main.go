/*
main.go - Command-line simulator

PURPOSE:
  Computes a contract's leave schedule without starting the server. Prints
  the accrual periods and the monthly payment schedule as aligned tables,
  or the same JSON document POST /api/simulations returns.

USAGE:
  simulate -start 2020-01-01 -end 2021-09-30 -salary 1000
  simulate -start 2020-03-15 -end 2020-05-31 -salary 506 -json

EXIT CODES:
  0  success
  1  engine failure
  2  bad flags or invalid contract
*/
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/warp/leave-engine/api"
	"github.com/warp/leave-engine/generic"
	"github.com/warp/leave-engine/leave"
)

var errUsage = errors.New("usage")

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, errUsage), generic.IsClientError(err):
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	start := fs.String("start", "", "contract start date (YYYY-MM-DD)")
	end := fs.String("end", "", "contract end date (YYYY-MM-DD)")
	salary := fs.String("salary", "", "monthly gross salary")
	asJSON := fs.Bool("json", false, "print JSON instead of tables")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *start == "" || *end == "" || *salary == "" {
		fs.Usage()
		return fmt.Errorf("%w: -start, -end and -salary are required", errUsage)
	}

	startDate, err := generic.ParseDate(*start)
	if err != nil {
		return err
	}
	endDate, err := generic.ParseDate(*end)
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(*salary)
	if err != nil {
		return &generic.InvalidInputError{Field: "salary", Message: fmt.Sprintf("%q is not a number", *salary)}
	}

	schedule, err := leave.Simulate(startDate, endDate, amount)
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(api.ToSimulationDTO(uuid.NewString(), schedule))
	}
	return printTables(stdout, schedule)
}

func printTables(w io.Writer, s *leave.Schedule) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(w, "Contract %s to %s, salary %s\n\n", s.Contract.Start, s.Contract.End, s.Contract.Salary.StringFixed(2))

	fmt.Fprintln(tw, "Period\tStart\tEnd\tMonths\tDays\tMaintain\tTen %\tFinal\tState\t")
	for i, p := range s.Periods {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			p.Index, p.Start, p.End,
			p.MonthsAccrued.StringFixed(2),
			p.LeaveDaysAccrued.StringFixed(3),
			p.ValueMaintainSalary.StringFixed(2),
			p.ValueTenPercent.StringFixed(2),
			p.ValueFinal.StringFixed(2),
			s.Allocations[i].State)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	settlement, amortized, percentage := decimal.Zero, decimal.Zero, decimal.Zero
	fmt.Fprintln(tw, "Month\tPeriod\tPerceived\tSettlement\tAmortized\tPercentage\t\t")
	for _, m := range s.Payments {
		mark := ""
		if m.Settled {
			mark = "settled"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t\n",
			m.Start.Time.Format("2006-01"), m.PeriodIndex,
			m.PerceivedSalary.StringFixed(2),
			m.PaymentSettlement.StringFixed(2),
			m.PaymentAmortized.StringFixed(2),
			m.PaymentPercentage.StringFixed(2),
			mark)
		settlement = settlement.Add(m.PaymentSettlement)
		amortized = amortized.Add(m.PaymentAmortized)
		percentage = percentage.Add(m.PaymentPercentage)
	}
	fmt.Fprintf(tw, "Total\t\t\t%s\t%s\t%s\t\t\n",
		settlement.StringFixed(2), amortized.StringFixed(2), percentage.StringFixed(2))
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nEntitlement %s, balanced: %t\n", s.TotalEntitlement().StringFixed(2), s.Balanced())
	return nil
}
