package config

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "America/Guatemala", cfg.Location.String())
	assert.Equal(t, "La Cazuela Chapina", cfg.NegocioNombre)
	assert.Equal(t, 30*time.Second, cfg.LLMTimeout())
	assert.InDelta(t, 0.40, cfg.CostoEstimadoProductos, 1e-9)
	assert.InDelta(t, 0.45, cfg.CostoEstimadoCombos, 1e-9)
	assert.False(t, cfg.IsProduction())
	assert.Empty(t, cfg.CORSOrigins())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("ASISTENTE_RATE_LIMIT", "5")
	t.Setenv("COSTO_ESTIMADO_COMBOS", "0.5")
	t.Setenv("LLM_TIMEOUT_SECONDS", "10")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://pos.cazuela.gt, ,https://admin.cazuela.gt")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, []string{"https://pos.cazuela.gt", "https://admin.cazuela.gt"}, cfg.CORSOrigins())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 5, cfg.AsistenteRateLimit)
	assert.InDelta(t, 0.5, cfg.CostoEstimadoCombos, 1e-9)
	assert.Equal(t, 10*time.Second, cfg.LLMTimeout())
}

func TestLoad_RequiereSecreto(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoad_ZonaHorariaInvalida(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TIMEZONE", "Marte/Olympus")

	_, err := Load()
	assert.ErrorContains(t, err, "TIMEZONE")
}
