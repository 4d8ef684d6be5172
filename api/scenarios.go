/*
scenarios.go - Canned contracts for demos and smoke tests

PURPOSE:
  Provides pre-built contracts that exercise specific parts of the engine.
  Running a scenario is exactly a POST /api/simulations with its inputs.

AVAILABLE SCENARIOS:
  short-spring:     Contract inside one leave year, settles in May
  three-periods:    Leading, whole and trailing leave years at 1000/month
  amortized-cent:   Rounded twelfths leave a cent, paid at contract end
  multi-year:       Several whole leave years with a cents salary

USAGE VIA API:
  GET /api/scenarios
  GET /api/scenarios/three-periods

ADDING NEW SCENARIOS:
  Append to the 'scenarios' slice with a unique ID. Inputs go through the
  same validation as client requests.

SEE ALSO:
  - handlers.go: Simulate
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "short-spring",
		Name:        "Short Spring Contract",
		Description: "Starts mid-March, ends with the leave year on May 31; one partial period settled at contract end",
		StartDate:   "2020-03-15",
		EndDate:     "2020-05-31",
		Salary:      decimal.NewFromInt(506),
	},
	{
		ID:          "three-periods",
		Name:        "Three Leave Years",
		Description: "Partial leading year, one whole year, partial trailing year; each June settles and amortizes the previous value",
		StartDate:   "2020-01-01",
		EndDate:     "2021-09-30",
		Salary:      decimal.NewFromInt(1000),
	},
	{
		ID:          "amortized-cent",
		Name:        "Amortization Residue",
		Description: "A 775.57 value amortized in twelve rounded shares leaves one cent, paid with the final settlement",
		StartDate:   "2020-01-15",
		EndDate:     "2021-06-30",
		Salary:      decimal.NewFromInt(1500),
	},
	{
		ID:          "multi-year",
		Name:        "Multi-Year Contract",
		Description: "Mid-month start and end across several leave years with a salary in cents",
		StartDate:   "2019-07-17",
		EndDate:     "2023-02-14",
		Salary:      decimal.RequireFromString("1234.56"),
	},
}

func findScenario(id string) (ScenarioDTO, bool) {
	for _, s := range scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return ScenarioDTO{}, false
}

// =============================================================================
// HANDLERS
// =============================================================================

// ListScenarios returns available scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// RunScenario computes one scenario's schedule.
func (h *Handler) RunScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	scenario, ok := findScenario(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Scenario not found", nil)
		return
	}

	req := SimulationRequest{
		StartDate: scenario.StartDate,
		EndDate:   scenario.EndDate,
		Salary:    scenario.Salary,
	}
	if err := h.validateRequest(req); err != nil {
		writeError(w, http.StatusInternalServerError, "Invalid scenario", err)
		return
	}

	dto, err := h.simulate(r.Context(), req, scenario.ID)
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}
