package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vaidy-in/dealdesk/internal/domain"
)

// memStore is an in-memory ScenarioStore for handler tests.
type memStore struct {
	scenarios map[string]*domain.Scenario
}

func newMemStore() *memStore {
	return &memStore{scenarios: make(map[string]*domain.Scenario)}
}

func (s *memStore) Save(_ context.Context, name string, scenario *domain.Scenario) error {
	copied := *scenario
	s.scenarios[name] = &copied
	return nil
}

func (s *memStore) Load(_ context.Context, name string) (*domain.Scenario, error) {
	scenario, ok := s.scenarios[name]
	if !ok {
		return nil, domain.ErrScenarioNotFound
	}
	copied := *scenario
	return &copied, nil
}

func (s *memStore) List(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(s.scenarios))
	for name := range s.scenarios {
		names = append(names, name)
	}
	return names, nil
}

func newTestHandler(store domain.ScenarioStore) *Handler {
	return NewHandler(domain.NewEstimatorService(nil), store)
}

func TestHandleEstimate_DefaultScenario(t *testing.T) {
	handler := newTestHandler(nil)

	reqBody, err := json.Marshal(domain.DefaultScenario())
	require.NoError(t, err)

	httpReq := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewReader(reqBody))
	w := httptest.NewRecorder()

	handler.HandleEstimate(w, httpReq)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var estimate domain.Estimate
	err = json.NewDecoder(w.Body).Decode(&estimate)
	require.NoError(t, err)

	require.Empty(t, estimate.Issues)
	require.Positive(t, estimate.Vanilla.Costs.Total)
	require.Positive(t, estimate.Premium.Costs.Total)
	require.Greater(t, estimate.Premium.Costs.Total, estimate.Vanilla.Costs.Total)
}

func TestHandleEstimate_MethodNotAllowed(t *testing.T) {
	handler := newTestHandler(nil)

	httpReq := httptest.NewRequest(http.MethodGet, "/v1/estimates", nil)
	w := httptest.NewRecorder()

	handler.HandleEstimate(w, httpReq)

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHandleEstimate_InvalidJSON(t *testing.T) {
	handler := newTestHandler(nil)

	httpReq := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewReader([]byte("invalid json")))
	w := httptest.NewRecorder()

	handler.HandleEstimate(w, httpReq)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleEstimate_InvalidInputsStillSucceed(t *testing.T) {
	handler := newTestHandler(nil)

	scenario := domain.DefaultScenario()
	scenario.Deal.Seats = -5

	reqBody, err := json.Marshal(scenario)
	require.NoError(t, err)

	httpReq := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewReader(reqBody))
	w := httptest.NewRecorder()

	handler.HandleEstimate(w, httpReq)

	// Validation problems surface as issues, not as HTTP errors.
	require.Equal(t, http.StatusOK, w.Code)

	var estimate domain.Estimate
	err = json.NewDecoder(w.Body).Decode(&estimate)
	require.NoError(t, err)
	require.NotEmpty(t, estimate.Issues)
}

func TestHandleDefaults(t *testing.T) {
	handler := newTestHandler(nil)

	httpReq := httptest.NewRequest(http.MethodGet, "/v1/defaults", nil)
	w := httptest.NewRecorder()

	handler.HandleDefaults(w, httpReq)

	require.Equal(t, http.StatusOK, w.Code)

	var scenario domain.Scenario
	err := json.NewDecoder(w.Body).Decode(&scenario)
	require.NoError(t, err)

	defaults := domain.DefaultScenario()
	require.Equal(t, defaults.Deal.Seats, scenario.Deal.Seats)
	require.InDelta(t, defaults.Premium.BasePricePerSeatMonth, scenario.Premium.BasePricePerSeatMonth, 0.0001)
}

func TestHandleScenarios_StoreNotConfigured(t *testing.T) {
	handler := newTestHandler(nil)

	httpReq := httptest.NewRequest(http.MethodGet, "/v1/scenarios/acme", nil)
	w := httptest.NewRecorder()

	handler.HandleScenarios(w, httpReq)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleScenarios_SaveLoadList(t *testing.T) {
	store := newMemStore()
	handler := newTestHandler(store)

	scenario := domain.DefaultScenario()
	scenario.Deal.Seats = 1200

	reqBody, err := json.Marshal(scenario)
	require.NoError(t, err)

	// Save
	httpReq := httptest.NewRequest(http.MethodPut, "/v1/scenarios/acme-renewal", bytes.NewReader(reqBody))
	w := httptest.NewRecorder()
	handler.HandleScenarios(w, httpReq)
	require.Equal(t, http.StatusNoContent, w.Code)

	// Load
	httpReq = httptest.NewRequest(http.MethodGet, "/v1/scenarios/acme-renewal", nil)
	w = httptest.NewRecorder()
	handler.HandleScenarios(w, httpReq)
	require.Equal(t, http.StatusOK, w.Code)

	var loaded domain.Scenario
	err = json.NewDecoder(w.Body).Decode(&loaded)
	require.NoError(t, err)
	require.Equal(t, 1200, loaded.Deal.Seats)

	// List
	httpReq = httptest.NewRequest(http.MethodGet, "/v1/scenarios", nil)
	w = httptest.NewRecorder()
	handler.HandleScenarios(w, httpReq)
	require.Equal(t, http.StatusOK, w.Code)

	var listing map[string][]string
	err = json.NewDecoder(w.Body).Decode(&listing)
	require.NoError(t, err)
	require.Equal(t, []string{"acme-renewal"}, listing["scenarios"])
}

func TestHandleScenarios_LoadNotFound(t *testing.T) {
	handler := newTestHandler(newMemStore())

	httpReq := httptest.NewRequest(http.MethodGet, "/v1/scenarios/missing", nil)
	w := httptest.NewRecorder()

	handler.HandleScenarios(w, httpReq)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleScenarios_MethodNotAllowed(t *testing.T) {
	handler := newTestHandler(newMemStore())

	httpReq := httptest.NewRequest(http.MethodDelete, "/v1/scenarios/acme", nil)
	w := httptest.NewRecorder()

	handler.HandleScenarios(w, httpReq)

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHandleHealth(t *testing.T) {
	handler := newTestHandler(nil)

	httpReq := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handler.HandleHealth(w, httpReq)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response map[string]string
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)
	require.Equal(t, "healthy", response["status"])
}
