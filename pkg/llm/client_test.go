package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChat struct {
	lastRequest openai.ChatCompletionRequest
	response    string
	err         error
}

func (f *fakeChat) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (
	openai.ChatCompletionResponse, error) {
	f.lastRequest = req
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.response}},
		},
	}, nil
}

type fakeEmbeddings struct {
	vectors [][]float32
	err     error
}

func (f *fakeEmbeddings) CreateEmbeddings(_ context.Context, _ openai.EmbeddingRequestConverter) (
	openai.EmbeddingResponse, error) {
	if f.err != nil {
		return openai.EmbeddingResponse{}, f.err
	}
	data := make([]openai.Embedding, len(f.vectors))
	for i, v := range f.vectors {
		data[i] = openai.Embedding{Embedding: v}
	}
	return openai.EmbeddingResponse{Data: data}, nil
}

func TestReasoner_Complete(t *testing.T) {
	fake := &fakeChat{response: `{"ok": true}`}
	reasoner := NewReasonerFromAPI(fake, "test-model", time.Minute)

	got, err := reasoner.Complete(context.Background(), "system prompt", "user prompt")
	require.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, got)

	assert.Equal(t, "test-model", fake.lastRequest.Model)
	require.Len(t, fake.lastRequest.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, fake.lastRequest.Messages[0].Role)
	assert.Equal(t, "user prompt", fake.lastRequest.Messages[1].Content)
	require.NotNil(t, fake.lastRequest.ResponseFormat)
	assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, fake.lastRequest.ResponseFormat.Type)
}

func TestReasoner_Complete_Error(t *testing.T) {
	fake := &fakeChat{err: errors.New("gateway unavailable")}
	reasoner := NewReasonerFromAPI(fake, "test-model", time.Minute)

	_, err := reasoner.Complete(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gateway unavailable")
}

func TestEmbedder_Embed(t *testing.T) {
	fake := &fakeEmbeddings{vectors: [][]float32{{0.1, 0.2}, {0.3, 0.4}}}
	embedder := NewEmbedderFromAPI(fake, "embed-model", time.Minute)

	got, err := embedder.Embed(context.Background(), []string{"chunk one", "chunk two"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []float32{0.1, 0.2}, got[0])
	assert.Equal(t, []float32{0.3, 0.4}, got[1])
}

func TestEmbedder_Embed_CountMismatch(t *testing.T) {
	fake := &fakeEmbeddings{vectors: [][]float32{{0.1}}}
	embedder := NewEmbedderFromAPI(fake, "embed-model", time.Minute)

	_, err := embedder.Embed(context.Background(), []string{"a", "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mismatch")
}

func TestEmbedder_Embed_EmptyInput(t *testing.T) {
	embedder := NewEmbedderFromAPI(&fakeEmbeddings{}, "embed-model", time.Minute)

	got, err := embedder.Embed(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}
