package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_Success(t *testing.T) {
	var gotAuth string
	var gotBody chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "generated text"}},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "key-123", BaseURL: srv.URL})
	text, err := client.Generate(context.Background(), "write a title")
	assert.NoError(t, err)
	assert.Equal(t, "generated text", text)

	assert.Equal(t, "Bearer key-123", gotAuth)
	assert.Equal(t, DefaultModel, gotBody.Model)
	assert.Len(t, gotBody.Messages, 1)
	assert.Equal(t, "user", gotBody.Messages[0].Role)
	assert.Equal(t, "write a title", gotBody.Messages[0].Content)
	assert.Equal(t, defaultMaxTokens, gotBody.MaxTokens)
}

func TestGenerate_EmptyChoicesReturnsFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "key", BaseURL: srv.URL})
	text, err := client.Generate(context.Background(), "prompt")
	assert.NoError(t, err)
	assert.Equal(t, fallbackContent, text)
}

func TestGenerate_Non2xxReturnsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "key", BaseURL: srv.URL})
	_, err := client.Generate(context.Background(), "prompt")

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.Status)
}

func TestGenerate_MissingAPIKey(t *testing.T) {
	client := NewClient(Config{})
	_, err := client.Generate(context.Background(), "prompt")
	assert.Error(t, err)
}
