/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the leave engine's model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

TYPES:
  Simulation:
    SimulationRequest, SimulationDTO
    ContractDTO, PeriodDTO, PaymentDTO, PeriodTotalsDTO, SummaryDTO

  Scenarios:
    ScenarioDTO

AMOUNTS:
  Money, ratios and day counts are decimal.Decimal and serialize as JSON
  strings ("568.18") so clients never see binary float drift.

VALIDATION:
  SimulationRequest carries go-playground/validator tags. Semantic checks
  (start before end, salary positive) are repeated by the engine.

SEE ALSO:
  - handlers.go: Uses these types
  - leave/contract.go: Schedule, the source of every response field
*/
package api

import (
	"github.com/shopspring/decimal"
	"github.com/warp/leave-engine/generic"
	"github.com/warp/leave-engine/leave"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// SimulationRequest is the body of POST /api/simulations.
type SimulationRequest struct {
	StartDate string          `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string          `json:"end_date" validate:"required,datetime=2006-01-02"`
	Salary    decimal.Decimal `json:"salary" validate:"required,gt=0"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// SimulationDTO is a computed schedule.
type SimulationDTO struct {
	ID       string            `json:"id"`
	Scenario string            `json:"scenario,omitempty"`
	Contract ContractDTO       `json:"contract"`
	Periods  []PeriodDTO       `json:"periods"`
	Payments []PaymentDTO      `json:"payments"`
	Totals   []PeriodTotalsDTO `json:"totals"`
	Summary  SummaryDTO        `json:"summary"`
}

// ContractDTO echoes the validated contract.
type ContractDTO struct {
	StartDate generic.Date    `json:"start_date"`
	EndDate   generic.Date    `json:"end_date"`
	Salary    decimal.Decimal `json:"salary"`
}

// PeriodDTO is one accrual period.
type PeriodDTO struct {
	Index               int             `json:"index"`
	StartDate           generic.Date    `json:"start_date"`
	EndDate             generic.Date    `json:"end_date"`
	MonthsAccrued       decimal.Decimal `json:"months_accrued"`
	LeaveDaysAccrued    decimal.Decimal `json:"leave_days_accrued"`
	ValueMaintainSalary decimal.Decimal `json:"value_maintain_salary"`
	ValueTenPercent     decimal.Decimal `json:"value_ten_percent"`
	ValueFinal          decimal.Decimal `json:"value_final"`
	State               string          `json:"state"`
}

// PaymentDTO is one month of the payment schedule.
type PaymentDTO struct {
	PeriodIndex       int             `json:"period_index"`
	StartDate         generic.Date    `json:"start_date"`
	EndDate           generic.Date    `json:"end_date"`
	PerceivedSalary   decimal.Decimal `json:"perceived_salary"`
	PaymentSettlement decimal.Decimal `json:"payment_settlement"`
	PaymentAmortized  decimal.Decimal `json:"payment_amortized"`
	PaymentPercentage decimal.Decimal `json:"payment_percentage"`
	Settled           bool            `json:"settled,omitempty"`
}

// PeriodTotalsDTO is what each scheme paid toward one period's value.
type PeriodTotalsDTO struct {
	PeriodIndex    int             `json:"period_index"`
	ValueFinal     decimal.Decimal `json:"value_final"`
	PaidSettlement decimal.Decimal `json:"paid_settlement"`
	PaidAmortized  decimal.Decimal `json:"paid_amortized"`
	PaidPercentage decimal.Decimal `json:"paid_percentage"`
	Balanced       bool            `json:"balanced"`
}

// SummaryDTO sums the whole schedule.
type SummaryDTO struct {
	TotalEntitlement decimal.Decimal `json:"total_entitlement"`
	TotalSettlement  decimal.Decimal `json:"total_settlement"`
	TotalAmortized   decimal.Decimal `json:"total_amortized"`
	TotalPercentage  decimal.Decimal `json:"total_percentage"`
	Balanced         bool            `json:"balanced"`
}

// ScenarioDTO describes a canned contract.
type ScenarioDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	Salary      decimal.Decimal `json:"salary"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// HealthDTO is the body of GET /api/health.
type HealthDTO struct {
	Status string `json:"status"`
}

// =============================================================================
// CONVERSION
// =============================================================================

// ToSimulationDTO renders a schedule for the wire. cmd/simulate -json uses it too.
func ToSimulationDTO(id string, s *leave.Schedule) SimulationDTO {
	dto := SimulationDTO{
		ID: id,
		Contract: ContractDTO{
			StartDate: s.Contract.Start,
			EndDate:   s.Contract.End,
			Salary:    s.Contract.Salary,
		},
		Periods:  make([]PeriodDTO, 0, len(s.Periods)),
		Payments: make([]PaymentDTO, 0, len(s.Payments)),
		Totals:   make([]PeriodTotalsDTO, 0, len(s.Periods)),
	}

	for i, p := range s.Periods {
		dto.Periods = append(dto.Periods, PeriodDTO{
			Index:               p.Index,
			StartDate:           p.Start,
			EndDate:             p.End,
			MonthsAccrued:       p.MonthsAccrued,
			LeaveDaysAccrued:    p.LeaveDaysAccrued,
			ValueMaintainSalary: p.ValueMaintainSalary,
			ValueTenPercent:     p.ValueTenPercent,
			ValueFinal:          p.ValueFinal,
			State:               string(s.Allocations[i].State),
		})
	}

	summary := SummaryDTO{TotalEntitlement: s.TotalEntitlement(), Balanced: s.Balanced()}
	for _, m := range s.Payments {
		dto.Payments = append(dto.Payments, PaymentDTO{
			PeriodIndex:       m.PeriodIndex,
			StartDate:         m.Start,
			EndDate:           m.End,
			PerceivedSalary:   m.PerceivedSalary,
			PaymentSettlement: m.PaymentSettlement,
			PaymentAmortized:  m.PaymentAmortized,
			PaymentPercentage: m.PaymentPercentage,
			Settled:           m.Settled,
		})
		summary.TotalSettlement = summary.TotalSettlement.Add(m.PaymentSettlement)
		summary.TotalAmortized = summary.TotalAmortized.Add(m.PaymentAmortized)
		summary.TotalPercentage = summary.TotalPercentage.Add(m.PaymentPercentage)
	}
	dto.Summary = summary

	for _, r := range s.Reconcile() {
		dto.Totals = append(dto.Totals, PeriodTotalsDTO{
			PeriodIndex:    r.PeriodIndex,
			ValueFinal:     r.ValueFinal,
			PaidSettlement: r.Paid.Settlement,
			PaidAmortized:  r.Paid.Amortized,
			PaidPercentage: r.Paid.Percentage,
			Balanced:       r.Balanced(leave.RoundingTolerance),
		})
	}
	return dto
}
