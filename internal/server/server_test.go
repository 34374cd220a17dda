package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/meridian/internal/core"
	"github.com/agenthands/meridian/internal/core/model"
	"github.com/agenthands/meridian/internal/provider"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := core.NewMeridian(provider.PilotNetwork(), nil, nil)
	require.NoError(t, m.LoadGraph(context.Background()))

	s := &Server{Meridian: m}
	return s.SetupRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSimulateEndpoint(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/simulate", gin.H{"supplier_id": "S1", "delay_days": 5})
	require.Equal(t, http.StatusOK, w.Code)

	var result model.SimulationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "S1", result.SupplierID)
	assert.Len(t, result.AffectedPaths, 4)
	assert.Equal(t, 780.0, result.TotalImpact)
	assert.Empty(t, result.Narrative)
}

func TestSimulateEndpoint_Narrated(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/simulate", gin.H{"supplier_id": "S1", "delay_days": 5, "narrate": true})
	require.Equal(t, http.StatusOK, w.Code)

	var result model.SimulationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.NotEmpty(t, result.Narrative)
}

func TestSimulateEndpoint_Validation(t *testing.T) {
	r := testRouter(t)

	// Missing delay_days fails binding.
	w := doJSON(t, r, http.MethodPost, "/simulate", gin.H{"supplier_id": "S1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// delay_days of zero passes binding (pointer field) but is a valid run.
	w = doJSON(t, r, http.MethodPost, "/simulate", gin.H{"supplier_id": "S1", "delay_days": 0})
	assert.Equal(t, http.StatusOK, w.Code)

	// Negative delay is rejected by the engine.
	w = doJSON(t, r, http.MethodPost, "/simulate", gin.H{"supplier_id": "S1", "delay_days": -3})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSimulateEndpoint_UnknownSupplier(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/simulate", gin.H{"supplier_id": "S_MISSING", "delay_days": 5})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSLADropEndpoint(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/sla-drop?region=APAC", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Region  string  `json:"region"`
		SLADrop float64 `json:"sla_drop"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "APAC", resp.Region)
	assert.Equal(t, 31.43, resp.SLADrop)
}

func TestResetEndpoint(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/simulate", gin.H{"supplier_id": "S1", "delay_days": 10})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var status model.EngineStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.False(t, status.SimulationLive)
	assert.Equal(t, 1, status.RunCount)
}

func TestRiskEndpoints(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/risk/suppliers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var suppliers struct {
		Suppliers []model.SupplierRisk `json:"suppliers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &suppliers))
	assert.Len(t, suppliers.Suppliers, 4)

	w = doJSON(t, r, http.MethodGet, "/risk/critical-paths", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var paths struct {
		CriticalPaths []model.CriticalPath `json:"critical_paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &paths))
	assert.NotEmpty(t, paths.CriticalPaths)
	assert.LessOrEqual(t, len(paths.CriticalPaths), 10)
}

func TestDashboardAndStatsEndpoints(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/metrics/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var metrics model.DashboardMetrics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &metrics))
	assert.Equal(t, 13, metrics.Network.Nodes)

	w = doJSON(t, r, http.MethodGet, "/graph/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats model.GraphStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 14, stats.Edges)
}

func TestScenarioEndpoints(t *testing.T) {
	r := testRouter(t)

	doJSON(t, r, http.MethodPost, "/simulate", gin.H{"supplier_id": "S1", "delay_days": 5})
	doJSON(t, r, http.MethodPost, "/simulate", gin.H{"supplier_id": "S2", "delay_days": 10})

	w := doJSON(t, r, http.MethodGet, "/scenarios", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history struct {
		Scenarios []model.Scenario `json:"scenarios"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history.Scenarios, 2)

	ids := []string{history.Scenarios[0].ID, history.Scenarios[1].ID}
	w = doJSON(t, r, http.MethodPost, "/scenarios/compare", gin.H{"scenario_ids": ids})
	require.Equal(t, http.StatusOK, w.Code)
	var cmp model.ScenarioComparison
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cmp))
	assert.Len(t, cmp.Scenarios, 2)
	assert.NotEmpty(t, cmp.HighestImpact)

	w = doJSON(t, r, http.MethodPost, "/scenarios/compare", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReloadEndpoint(t *testing.T) {
	r := testRouter(t)

	doJSON(t, r, http.MethodPost, "/simulate", gin.H{"supplier_id": "S1", "delay_days": 5})

	w := doJSON(t, r, http.MethodPost, "/reload", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/status", nil)
	var status model.EngineStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, 0, status.RunCount)
}
