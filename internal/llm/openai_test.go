package llm_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	infraerrors "github.com/jonesrussell/north-cloud/content-creator/infrastructure/errors"
	"github.com/jonesrussell/north-cloud/content-creator/internal/llm"
	"github.com/jonesrussell/north-cloud/content-creator/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textRequest() prompt.TextRequest {
	return prompt.TextRequest{
		Model:       "gpt-3.5-turbo",
		Messages:    []prompt.Message{{Role: prompt.RoleUser, Content: "Write a creative marketing content for the Travel field."}},
		MaxTokens:   300,
		Temperature: prompt.Temperature,
	}
}

func TestOpenAIClient_Generate(t *testing.T) {
	t.Parallel()

	var got prompt.TextRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"\n  Pack light, travel far.  \n"},"finish_reason":"stop"}]}`))
	}))
	t.Cleanup(srv.Close)

	client := llm.NewOpenAIClient(srv.URL+"/v1/", "sk-test", llm.WithHTTPClient(srv.Client()))

	text, err := client.Generate(t.Context(), textRequest())
	require.NoError(t, err)
	assert.Equal(t, "Pack light, travel far.", text)

	assert.Equal(t, "gpt-3.5-turbo", got.Model)
	assert.Equal(t, 300, got.MaxTokens)
	assert.InDelta(t, 0.7, got.Temperature, 0)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
}

func TestOpenAIClient_UpstreamErrorIsNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"You exceeded your current quota","type":"insufficient_quota"}}`))
	}))
	t.Cleanup(srv.Close)

	client := llm.NewOpenAIClient(srv.URL, "sk-test", llm.WithHTTPClient(srv.Client()))

	_, err := client.Generate(t.Context(), textRequest())
	require.Error(t, err)

	var httpErr *infraerrors.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.StatusCode)
	assert.Equal(t, "You exceeded your current quota", httpErr.Message)
	assert.Equal(t, int32(1), calls.Load())
}

func TestOpenAIClient_EmptyChoices(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	t.Cleanup(srv.Close)

	client := llm.NewOpenAIClient(srv.URL, "", llm.WithHTTPClient(srv.Client()))

	_, err := client.Generate(t.Context(), textRequest())
	require.ErrorIs(t, err, llm.ErrEmptyResponse)
}

func TestOpenAIClient_MalformedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	t.Cleanup(srv.Close)

	client := llm.NewOpenAIClient(srv.URL, "", llm.WithHTTPClient(srv.Client()))

	_, err := client.Generate(t.Context(), textRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode chat completion")
}

func TestNew_SelectsProvider(t *testing.T) {
	t.Parallel()

	openai, err := llm.New(llm.Config{Provider: "openai", APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderOpenAI, openai.Provider())

	anthropic, err := llm.New(llm.Config{Provider: "Anthropic", APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderAnthropic, anthropic.Provider())

	_, err = llm.New(llm.Config{Provider: "cohere"})
	require.Error(t, err)
}
