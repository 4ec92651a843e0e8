package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func init() { gin.SetMode(gin.TestMode) }

func protegido(roles ...string) *gin.Engine {
	r := gin.New()
	g := r.Group("/v1", JWTAuth(testSecret))
	if len(roles) > 0 {
		g.Use(RequireRole(roles...))
	}
	g.GET("/yo", func(c *gin.Context) {
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"sub": claims.Subject, "rol": claims.Rol})
	})
	return r
}

func pedir(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/yo", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_TokenValido(t *testing.T) {
	token, err := GenerarToken(testSecret, "caja-01", "Caja 1", RolCajero, time.Hour)
	require.NoError(t, err)

	w := pedir(protegido(), token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sub":"caja-01","rol":"cajero"}`, w.Body.String())
}

func TestJWTAuth_Rechazos(t *testing.T) {
	expirado, err := GenerarToken(testSecret, "caja-01", "Caja 1", RolCajero, -time.Minute)
	require.NoError(t, err)
	otraClave, err := GenerarToken("otra-clave", "caja-01", "Caja 1", RolCajero, time.Hour)
	require.NoError(t, err)
	rolDesconocido, err := GenerarToken(testSecret, "caja-01", "Caja 1", "gerente", time.Hour)
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, JWTClaims{Rol: RolAdministrador}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	cases := map[string]string{
		"sin token":        "",
		"expirado":         expirado,
		"firma incorrecta": otraClave,
		"rol desconocido":  rolDesconocido,
		"alg none":         none,
		"basura":           "abc.def.ghi",
	}
	r := protegido()
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			w := pedir(r, token)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "detail")
		})
	}
}

func TestRequireRole(t *testing.T) {
	r := protegido(RolSupervisor, RolAdministrador)

	cajero, err := GenerarToken(testSecret, "u1", "Ana", RolCajero, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, pedir(r, cajero).Code)

	supervisor, err := GenerarToken(testSecret, "u2", "Luis", RolSupervisor, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, pedir(r, supervisor).Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", 100))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestRateLimiter_SinRedisDejaPasar(t *testing.T) {
	r := gin.New()
	r.Use(RateLimiter(nil, "asistente", 1, time.Minute))
	r.GET("/chat", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/chat", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://pos.cazuela.gt"}))
	r.GET("/v1/catalogo", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/v1/catalogo", nil)
	req.Header.Set("Origin", "https://pos.cazuela.gt")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://pos.cazuela.gt", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/catalogo", nil)
	req.Header.Set("Origin", "https://otro.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRecoveryYErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(), ErrorHandler())
	r.GET("/panic", func(c *gin.Context) { panic("boom: dsn=postgres://secreto") })
	r.GET("/error", func(c *gin.Context) { _ = c.Error(errors.New("pq: timeout")) })
	r.GET("/escrito", func(c *gin.Context) {
		_ = c.Error(errors.New("xlsx"))
		c.JSON(http.StatusBadRequest, gin.H{"detail": "fecha inválida"})
	})

	for _, path := range []string{"/panic", "/error"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code, path)
		assert.JSONEq(t, `{"detail":"Error interno del servidor"}`, w.Body.String(), path)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/escrito", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "fecha inválida")
}

func TestNivelPorStatus(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, nivelPorStatus(http.StatusCreated))
	assert.Equal(t, zerolog.WarnLevel, nivelPorStatus(http.StatusConflict))
	assert.Equal(t, zerolog.ErrorLevel, nivelPorStatus(http.StatusServiceUnavailable))
}
