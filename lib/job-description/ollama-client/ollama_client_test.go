package ollamaclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	ollamamodels "jd-generator-backend/models/api/ollama"
)

func TestComplete(t *testing.T) {
	t.Run(`returns the response text for a successful call`, func(t *testing.T) {
		var received ollamamodels.OllamaRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			_ = json.NewEncoder(w).Encode(ollamamodels.OllamaResponse{
				Model:    received.Model,
				Response: `{"description":"ok"}`,
				Done:     true,
			})
		}))
		defer server.Close()

		client := NewClient(server.URL, "llama3:latest")
		answer, err := client.Complete(context.Background(), "some prompt")
		require.NoError(t, err)
		require.Equal(t, `{"description":"ok"}`, answer)
		require.Equal(t, "llama3:latest", received.Model)
		require.Equal(t, "some prompt", received.Prompt)
		require.False(t, received.Stream)
	})

	t.Run(`non-200 status is an error`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewClient(server.URL, "llama3:latest")
		_, err := client.Complete(context.Background(), "prompt")
		require.Error(t, err)
		require.Contains(t, err.Error(), "ollama API error")
	})

	t.Run(`unreachable backend is an error`, func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", "llama3:latest")
		_, err := client.Complete(context.Background(), "prompt")
		require.Error(t, err)
	})

	t.Run(`cancelled context aborts the call`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		client := NewClient(server.URL, "llama3:latest")
		_, err := client.Complete(ctx, "prompt")
		require.Error(t, err)
	})
}
