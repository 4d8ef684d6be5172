/*
handlers.go - HTTP API handlers for the leave engine

PURPOSE:
  Exposes the paid-leave engine via REST API. Handles HTTP request/response,
  JSON serialization and input validation, and delegates to leave.Simulate.

ENDPOINTS:
  Simulations:
    POST   /api/simulations        Compute a schedule for a contract
    GET    /api/simulations        Recently computed schedules, newest first
    GET    /api/simulations/{id}   One recently computed schedule

  Scenarios:
    GET    /api/scenarios          List canned contracts
    GET    /api/scenarios/{id}     Compute a canned contract's schedule

  Health:
    GET    /api/health             Liveness probe

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Logger: structured logger (log/slog)
  - Validate: request validator (go-playground/validator)
  - NewID: simulation ID generator (google/uuid)
  - History: bounded in-memory store of recent results (store.Memory)
  The engine itself is stateless; History is the only shared state and it
  locks internally.

REQUEST FLOW:
  1. Decode JSON body
  2. Validate tags (format, presence, sign)
  3. Parse dates, call leave.Simulate
  4. Serialize response
  5. Map errors to status codes

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed body, failed validation, generic.ErrInvalidInput
  - 404: Unknown scenario or simulation
  - 500: Anything else, including generic.ErrInvalidCarryOverState

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Canned contracts
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/warp/leave-engine/generic"
	"github.com/warp/leave-engine/leave"
	"github.com/warp/leave-engine/store"
)

const (
	maxBodyBytes       = 1 << 20
	DefaultHistorySize = 100
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Logger   *slog.Logger
	Validate *validator.Validate
	NewID    func() string
	History  *store.Memory[SimulationDTO]
}

// NewHandler creates a handler keeping the last historySize results. A nil
// logger falls back to slog.Default.
func NewHandler(logger *slog.Logger, historySize int) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		Logger:   logger.With("component", "api"),
		Validate: newValidator(),
		NewID:    uuid.NewString,
		History:  store.NewMemory[SimulationDTO](historySize),
	}
}

// newValidator teaches the validator to read decimal.Decimal as a number so
// numeric tags (gt, required) apply to amounts.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// =============================================================================
// HEALTH
// =============================================================================

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthDTO{Status: "ok"})
}

// =============================================================================
// SIMULATIONS
// =============================================================================

// Simulate computes the schedule of the contract in the request body.
func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	var req SimulationRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	dto, err := h.simulate(r.Context(), req, "")
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

// GetSimulation returns a result from History.
func (h *Handler) GetSimulation(w http.ResponseWriter, r *http.Request) {
	dto, err := h.History.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Simulation not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get simulation", err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

// ListSimulations returns recent results, newest first. ?limit=N caps the
// count.
func (h *Handler) ListSimulations(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer", err)
			return
		}
		limit = n
	}
	writeJSON(w, http.StatusOK, h.History.Recent(r.Context(), limit))
}

// simulate parses the validated request, runs the engine and records the
// result in History.
func (h *Handler) simulate(ctx context.Context, req SimulationRequest, scenario string) (SimulationDTO, error) {
	start, err := generic.ParseDate(req.StartDate)
	if err != nil {
		return SimulationDTO{}, fmt.Errorf("start_date: %w", err)
	}
	end, err := generic.ParseDate(req.EndDate)
	if err != nil {
		return SimulationDTO{}, fmt.Errorf("end_date: %w", err)
	}

	schedule, err := leave.Simulate(start, end, req.Salary)
	if err != nil {
		return SimulationDTO{}, err
	}

	id := h.NewID()
	h.Logger.Info("simulation computed",
		"simulation_id", id,
		"start_date", start.String(),
		"end_date", end.String(),
		"periods", len(schedule.Periods),
		"payments", len(schedule.Payments),
		"balanced", schedule.Balanced(),
	)
	dto := ToSimulationDTO(id, schedule)
	dto.Scenario = scenario
	if err := h.History.Put(ctx, id, dto); err != nil {
		h.Logger.Warn("simulation not recorded", "simulation_id", id, "error", err)
	}
	return dto, nil
}

// validateRequest runs the struct tags and flattens the failures into one
// readable error.
func (h *Handler) validateRequest(req any) error {
	err := h.Validate.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
		case "datetime":
			messages = append(messages, fmt.Sprintf("%s must be a date formatted as YYYY-MM-DD", e.Field()))
		case "gt":
			messages = append(messages, fmt.Sprintf("%s must be greater than %s", e.Field(), e.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s failed %s", e.Field(), e.Tag()))
		}
	}
	return errors.New(strings.Join(messages, "; "))
}

// writeEngineError maps engine errors to a status code. Input errors are the
// caller's fault; everything else is ours and is logged.
func (h *Handler) writeEngineError(w http.ResponseWriter, r *http.Request, err error) {
	if generic.IsClientError(err) {
		writeCodedError(w, http.StatusBadRequest, "invalid_input", err.Error(), nil)
		return
	}
	code := "internal"
	if generic.IsInvariantViolation(err) {
		code = "invalid_carry_over_state"
	}
	h.Logger.Error("simulation failed", "error", err, "path", r.URL.Path, "code", code)
	writeCodedError(w, http.StatusInternalServerError, code, "Failed to compute schedule", err.Error())
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	var details any
	if err != nil {
		details = err.Error()
	}
	writeCodedError(w, status, "", message, details)
}

func writeCodedError(w http.ResponseWriter, status int, code, message string, details any) {
	writeJSON(w, status, ErrorResponse{Error: message, Code: code, Details: details})
}
