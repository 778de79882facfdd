package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/vaidy-in/dealdesk/internal/domain"
	"github.com/vaidy-in/dealdesk/internal/observability"
)

// Handler handles HTTP requests.
type Handler struct {
	estimator *domain.EstimatorService
	store     domain.ScenarioStore
}

// NewHandler creates a new HTTP handler (DI constructor). The store may be
// nil when no persistence backend is configured; scenario endpoints then
// return 503.
func NewHandler(estimator *domain.EstimatorService, store domain.ScenarioStore) *Handler {
	return &Handler{
		estimator: estimator,
		store:     store,
	}
}

// HandleEstimate processes estimate requests. The body is a full scenario
// document; the response carries both tier estimates and any issues.
func (h *Handler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Early validation.
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var scenario domain.Scenario
	if err := json.NewDecoder(r.Body).Decode(&scenario); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	logger := observability.FromContext(ctx)
	logger.Info("estimate request received",
		zap.Int("seats", scenario.Deal.Seats),
		zap.Int("term_months", scenario.Deal.TermMonths),
	)

	estimate, err := h.estimator.Estimate(ctx, &scenario)
	if err != nil {
		logger.Error("estimate failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	logger.Info("estimate succeeded",
		zap.Float64("vanilla_cost", estimate.Vanilla.Costs.Total),
		zap.Float64("premium_cost", estimate.Premium.Costs.Total),
		zap.Int("issues", len(estimate.Issues)),
	)

	writeJSON(ctx, w, estimate)
}

// HandleDefaults returns the built-in default scenario.
func (h *Handler) HandleDefaults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(r.Context(), w, domain.DefaultScenario())
}

// HandleScenarios routes /v1/scenarios and /v1/scenarios/{name} requests.
func (h *Handler) HandleScenarios(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.store == nil {
		http.Error(w, "scenario store not configured", http.StatusServiceUnavailable)
		return
	}

	name := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/scenarios"), "/")

	switch {
	case name == "" && r.Method == http.MethodGet:
		h.listScenarios(ctx, w)
	case name != "" && r.Method == http.MethodGet:
		h.loadScenario(ctx, w, name)
	case name != "" && r.Method == http.MethodPut:
		h.saveScenario(ctx, w, r, name)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) listScenarios(ctx context.Context, w http.ResponseWriter) {
	names, err := h.store.List(ctx)
	if err != nil {
		observability.FromContext(ctx).Error("scenario list failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, map[string][]string{"scenarios": names})
}

func (h *Handler) loadScenario(ctx context.Context, w http.ResponseWriter, name string) {
	ctx = observability.WithScenario(ctx, name)

	scenario, err := h.store.Load(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrScenarioNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		observability.FromContext(ctx).Error("scenario load failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, scenario)
}

func (h *Handler) saveScenario(ctx context.Context, w http.ResponseWriter, r *http.Request, name string) {
	ctx = observability.WithScenario(ctx, name)

	var scenario domain.Scenario
	if err := json.NewDecoder(r.Body).Decode(&scenario); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.store.Save(ctx, name, &scenario); err != nil {
		observability.FromContext(ctx).Error("scenario save failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	observability.FromContext(ctx).Info("scenario saved")

	w.WriteHeader(http.StatusNoContent)
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
	}); err != nil {
		// Already written status, can't change it, just log.
		return
	}
}
