package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(url string) *Client {
	return &Client{
		apiKey:  "test-key",
		model:   "gemini-1.5-flash",
		baseURL: url,
		client:  http.DefaultClient,
	}
}

func TestSessionSend(t *testing.T) {
	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-1.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"role":  "model",
					"parts": []map[string]string{{"text": "We offer six core services."}},
				}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := testClient(srv.URL)
	session := client.StartSession("system prompt", []domain.ChatTurn{
		{Role: domain.ChatRoleUser, Content: "earlier question"},
		{Role: domain.ChatRoleModel, Content: "earlier answer"},
	})

	reply, err := session.Send(context.Background(), "What services do you offer?")
	require.NoError(t, err)
	assert.Equal(t, "We offer six core services.", reply)

	// System instruction travels separately from the turn contents
	require.NotNil(t, got.SystemInstruction)
	assert.Equal(t, "system prompt", got.SystemInstruction.Parts[0].Text)

	// History first, current message last with role user
	require.Len(t, got.Contents, 3)
	assert.Equal(t, "user", got.Contents[0].Role)
	assert.Equal(t, "model", got.Contents[1].Role)
	assert.Equal(t, "user", got.Contents[2].Role)
	assert.Equal(t, "What services do you offer?", got.Contents[2].Parts[0].Text)
}

func TestSessionSendEmptyHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var got generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		require.Len(t, got.Contents, 1)
		assert.Equal(t, "user", got.Contents[0].Role)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{"parts": []map[string]string{{"text": "Hello!"}}}},
			},
		})
	}))
	defer srv.Close()

	session := testClient(srv.URL).StartSession("prompt", nil)
	reply, err := session.Send(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "Hello!", reply)
}

func TestSessionSendProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer srv.Close()

	session := testClient(srv.URL).StartSession("prompt", nil)
	_, err := session.Send(context.Background(), "hi")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestSessionSendNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	session := testClient(srv.URL).StartSession("prompt", nil)
	_, err := session.Send(context.Background(), "hi")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}
