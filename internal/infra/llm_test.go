package infra

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLLM(t *testing.T, handler http.HandlerFunc) *LLMClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewLLMClient(LLMConfig{
		BaseURL:     srv.URL + "/api/v1/",
		APIKey:      "sk-test",
		Model:       "openai/gpt-4o-mini",
		MaxTokens:   500,
		Temperature: 0.7,
		Timeout:     5 * time.Second,
		Referer:     "https://lacazuelachapina.com",
		Titulo:      "La Cazuela Chapina",
	}, NewCircuitBreaker(CircuitBreakerConfig{Nombre: "llm-test", FailureThreshold: 2}))
}

func TestLLMClient_Completar(t *testing.T) {
	var recibido chatRequest
	llm := newTestLLM(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "https://lacazuelachapina.com", r.Header.Get("HTTP-Referer"))
		assert.Equal(t, "La Cazuela Chapina", r.Header.Get("X-Title"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&recibido))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"¡Buenas! Le recomiendo el atol de elote."}}]}`))
	})

	resp, err := llm.Completar(context.Background(), "eres un asistente", "hola")
	require.NoError(t, err)
	assert.Equal(t, "¡Buenas! Le recomiendo el atol de elote.", resp)

	assert.Equal(t, "openai/gpt-4o-mini", recibido.Model)
	assert.Equal(t, 500, recibido.MaxTokens)
	assert.InDelta(t, 0.7, recibido.Temperature, 1e-9)
	require.Len(t, recibido.Messages, 2)
	assert.Equal(t, chatMessage{Role: "system", Content: "eres un asistente"}, recibido.Messages[0])
	assert.Equal(t, chatMessage{Role: "user", Content: "hola"}, recibido.Messages[1])
}

func TestLLMClient_ErrorDelProveedorAbreElBreaker(t *testing.T) {
	llamadas := 0
	llm := newTestLLM(t, func(w http.ResponseWriter, _ *http.Request) {
		llamadas++
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"rate limited"}`))
	})

	_, err := llm.Completar(context.Background(), "s", "u")
	require.Error(t, err)
	assert.ErrorContains(t, err, "429")
	assert.ErrorContains(t, err, "rate limited")

	_, err = llm.Completar(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Equal(t, "open", llm.Estado())

	_, err = llm.Completar(context.Background(), "s", "u")
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, 2, llamadas)
}

func TestLLMClient_SinChoices(t *testing.T) {
	llm := newTestLLM(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, err := llm.Completar(context.Background(), "s", "u")
	assert.ErrorIs(t, err, ErrSinRespuesta)
	assert.Equal(t, "closed", llm.Estado())
}
