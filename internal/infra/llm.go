package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// LLMConfig points the client at an OpenAI-compatible chat completions API.
type LLMConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
	Referer     string
	Titulo      string
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

var ErrSinRespuesta = errors.New("llm: respuesta sin contenido")

// LLMClient sends one system + user exchange per call. All calls go through
// a circuit breaker so a failing provider is not hammered.
type LLMClient struct {
	cfg        LLMConfig
	httpClient *http.Client
	breaker    *CircuitBreaker
}

func NewLLMClient(cfg LLMConfig, breaker *CircuitBreaker) *LLMClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if breaker == nil {
		breaker = NewCircuitBreaker(DefaultCBConfig("llm"))
	}
	return &LLMClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    breaker,
	}
}

// Estado is the breaker state reported by /health.
func (c *LLMClient) Estado() string { return c.breaker.State().String() }

func (c *LLMClient) Completar(ctx context.Context, sistema, usuario string) (string, error) {
	var respuesta string
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		var err error
		respuesta, err = c.enviar(ctx, sistema, usuario)
		return err
	})
	return respuesta, err
}

func (c *LLMClient) enviar(ctx context.Context, sistema, usuario string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: sistema},
			{Role: "user", Content: usuario},
		},
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("llm: marshal payload: %w", err)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("llm: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	if c.cfg.Referer != "" {
		req.Header.Set("HTTP-Referer", c.cfg.Referer)
	}
	if c.cfg.Titulo != "" {
		req.Header.Set("X-Title", c.cfg.Titulo)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm: provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detalle, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("llm: provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(detalle)))
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("llm: decode response: %w", err)
	}
	if len(result.Choices) == 0 || strings.TrimSpace(result.Choices[0].Message.Content) == "" {
		return "", ErrSinRespuesta
	}
	return result.Choices[0].Message.Content, nil
}
