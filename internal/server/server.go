package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/agenthands/meridian/internal/config"
	"github.com/agenthands/meridian/internal/core"
	"github.com/agenthands/meridian/internal/core/simulation"
	"github.com/agenthands/meridian/internal/driver"
	"github.com/agenthands/meridian/internal/insight"
	"github.com/agenthands/meridian/internal/llm"
	"github.com/agenthands/meridian/internal/provider"
)

type Server struct {
	Meridian *core.Meridian
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Could not load %s: %v. Using defaults with env overrides", cfgPath, err)
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	d, err := driver.NewNeo4jDriver(cfg.Neo4j.URI, cfg.Neo4j.User, cfg.Neo4j.Password)
	if err != nil {
		log.Fatalf("Failed to connect to graph database: %v", err)
	}

	var narrator insight.Narrator = insight.NewRuleNarrator()
	if cfg.LLM.Provider != "" {
		client, err := llm.NewClient(cfg.LLM)
		if err != nil {
			log.Printf("LLM narrator unavailable (%v), using rule-based narration", err)
		} else {
			narrator = insight.NewLLMNarrator(client)
		}
	}

	m := core.NewMeridian(provider.NewNeo4jProvider(d), narrator, cfg)
	if err := m.LoadGraph(context.Background()); err != nil {
		log.Fatalf("Failed to load supply network: %v", err)
	}

	return &Server{Meridian: m}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/simulate", s.Simulate)
	r.POST("/reset", s.Reset)
	r.GET("/sla-drop", s.SLADrop)
	r.GET("/risk/suppliers", s.SupplierRisk)
	r.GET("/risk/critical-paths", s.CriticalPaths)
	r.GET("/metrics/dashboard", s.Dashboard)
	r.GET("/graph/stats", s.GraphStats)
	r.GET("/scenarios", s.Scenarios)
	r.POST("/scenarios/compare", s.CompareScenarios)
	r.GET("/status", s.Status)
	r.POST("/reload", s.Reload)

	return r
}

type SimulateRequest struct {
	SupplierID string `json:"supplier_id" binding:"required"`
	DelayDays  *int   `json:"delay_days" binding:"required"`
	Narrate    bool   `json:"narrate"`
}

func (s *Server) Simulate(c *gin.Context) {
	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result, err := s.Meridian.SimulateDelay(c.Request.Context(), req.SupplierID, *req.DelayDays, req.Narrate)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) Reset(c *gin.Context) {
	if err := s.Meridian.Reset(); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

func (s *Server) SLADrop(c *gin.Context) {
	drop, err := s.Meridian.RegionalSLADrop(c.Query("region"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"region": c.Query("region"), "sla_drop": drop})
}

func (s *Server) SupplierRisk(c *gin.Context) {
	scores, err := s.Meridian.SupplierRiskScores()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suppliers": scores})
}

func (s *Server) CriticalPaths(c *gin.Context) {
	paths, err := s.Meridian.CriticalPaths()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"critical_paths": paths})
}

func (s *Server) Dashboard(c *gin.Context) {
	metrics, err := s.Meridian.DashboardMetrics()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

func (s *Server) GraphStats(c *gin.Context) {
	stats, err := s.Meridian.GraphStats()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) Scenarios(c *gin.Context) {
	history, err := s.Meridian.History()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"scenarios": history})
}

type CompareRequest struct {
	ScenarioIDs []string `json:"scenario_ids" binding:"required"`
}

func (s *Server) CompareScenarios(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	cmp, err := s.Meridian.CompareScenarios(req.ScenarioIDs)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, cmp)
}

func (s *Server) Status(c *gin.Context) {
	status, err := s.Meridian.Status()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (s *Server) Reload(c *gin.Context) {
	if err := s.Meridian.Reload(c.Request.Context()); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reloaded"})
}

// abortWithError maps the engine's error taxonomy onto HTTP statuses so
// callers can distinguish every failure kind.
func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, simulation.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, simulation.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, core.ErrGraphNotLoaded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		log.Printf("Request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
