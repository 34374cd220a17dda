package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[neo4j]
uri = "bolt://graph:7687"
user = "neo4j"
password = "secret"

[simulation]
sla_threshold_days = 14

[llm]
provider = "openai"
model = "gpt-4o-mini"

[server]
port = "9090"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "bolt://graph:7687", cfg.Neo4j.URI)
	assert.Equal(t, "neo4j", cfg.Neo4j.User)
	assert.Equal(t, "secret", cfg.Neo4j.Password)
	assert.Equal(t, 14, cfg.Simulation.SLAThresholdDays)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_BadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[neo4j\nuri ="), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_PartialFileGetsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[neo4j]\nuser = \"neo4j\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4j.URI)
	assert.Equal(t, 10, cfg.Simulation.SLAThresholdDays)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4j.URI)
	assert.Equal(t, 10, cfg.Simulation.SLAThresholdDays)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Empty(t, cfg.LLM.Provider)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("NEO4J_URI", "bolt://env:7687")
	t.Setenv("NEO4J_PASSWORD", "envsecret")
	t.Setenv("LLM_PROVIDER", "claude")
	t.Setenv("PORT", "7000")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, "bolt://env:7687", cfg.Neo4j.URI)
	assert.Equal(t, "envsecret", cfg.Neo4j.Password)
	assert.Equal(t, "claude", cfg.LLM.Provider)
	assert.Equal(t, "7000", cfg.Server.Port)
}

func TestApplyEnv_EmptyVarsIgnored(t *testing.T) {
	t.Setenv("NEO4J_URI", "")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4j.URI)
}
