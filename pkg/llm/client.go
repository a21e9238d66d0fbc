// Package llm wraps the OpenAI-compatible gateway behind two narrow
// clients: a Reasoner for evaluation/extraction prompts and an Embedder
// for dense vectors.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/autodiag/refinery/pkg/config"
)

// ChatAPI captures the subset of the go-openai client used by the
// Reasoner. Satisfied by *openai.Client and by test fakes.
type ChatAPI interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (
		openai.ChatCompletionResponse, error)
}

// EmbeddingAPI captures the subset of the go-openai client used by the
// Embedder.
type EmbeddingAPI interface {
	CreateEmbeddings(ctx context.Context, conv openai.EmbeddingRequestConverter) (
		openai.EmbeddingResponse, error)
}

// Reasoner issues chat completions that must come back as JSON.
type Reasoner struct {
	api         ChatAPI
	model       string
	temperature float32
	timeout     time.Duration
}

// Embedder issues embedding calls for chunk content.
type Embedder struct {
	api     EmbeddingAPI
	model   string
	timeout time.Duration
}

// NewClients builds the Reasoner and Embedder from configuration. Both
// share one underlying HTTP client.
func NewClients(cfg *config.LLMConfig) (*Reasoner, *Embedder) {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	apiCfg.BaseURL = cfg.BaseURL
	client := openai.NewClientWithConfig(apiCfg)

	slog.Info("LLM clients configured",
		"base_url", cfg.BaseURL,
		"reasoner_model", cfg.ReasonerModel,
		"embedder_model", cfg.EmbedderModel)

	reasoner := &Reasoner{
		api:         client,
		model:       cfg.ReasonerModel,
		temperature: float32(cfg.Temperature),
		timeout:     cfg.ReasonerTimeout,
	}
	embedder := &Embedder{
		api:     client,
		model:   cfg.EmbedderModel,
		timeout: cfg.EmbedderTimeout,
	}
	return reasoner, embedder
}

// NewReasonerFromAPI wraps an existing chat API (useful for testing).
func NewReasonerFromAPI(api ChatAPI, model string, timeout time.Duration) *Reasoner {
	return &Reasoner{api: api, model: model, temperature: 0.1, timeout: timeout}
}

// NewEmbedderFromAPI wraps an existing embedding API (useful for testing).
func NewEmbedderFromAPI(api EmbeddingAPI, model string, timeout time.Duration) *Embedder {
	return &Embedder{api: api, model: model, timeout: timeout}
}

// Complete sends a system+user prompt pair and returns the raw response
// text. JSON mode is requested but not trusted; callers parse with
// ParseJSONObject which tolerates prose-wrapped replies.
func (r *Reasoner) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       r.model,
		Temperature: r.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// Embed returns one vector per input text, in input order.
func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.api.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input: texts,
		Model: openai.EmbeddingModel(e.model),
	})
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: sent %d texts, got %d vectors",
			len(texts), len(resp.Data))
	}

	vectors := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		vectors[i] = d.Embedding
	}
	return vectors, nil
}
