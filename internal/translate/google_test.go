package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGoogleProvider_Translate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.Equal(t, "json", r.URL.Query().Get("alt"))

		var req googleTranslateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "What is X?", req.Q)
		require.Equal(t, "es", req.Target)
		require.Equal(t, "text", req.Format)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"translations": []map[string]any{
					{"translatedText": "¿Qué es X?"},
				},
			},
		})
	}))
	defer srv.Close()

	p := NewGoogleProvider("test-key", srv.URL)
	out, err := p.Translate(context.Background(), "What is X?", "es", FormatText)
	require.NoError(t, err)
	require.Equal(t, "¿Qué es X?", out)
}

func TestGoogleProvider_Translate_HTMLFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req googleTranslateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "html", req.Format)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"translations": []map[string]any{
					{"translatedText": "<p>X es...</p>"},
				},
			},
		})
	}))
	defer srv.Close()

	p := NewGoogleProvider("test-key", srv.URL)
	out, err := p.Translate(context.Background(), "<p>X is...</p>", "es", FormatHTML)
	require.NoError(t, err)
	require.Equal(t, "<p>X es...</p>", out)
}

func TestGoogleProvider_Translate_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	p := NewGoogleProvider("bad-key", srv.URL)
	_, err := p.Translate(context.Background(), "text", "es", FormatText)

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	require.Contains(t, provErr.Message, "403")
}

func TestGoogleProvider_Translate_MissingPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{}})
	}))
	defer srv.Close()

	p := NewGoogleProvider("test-key", srv.URL)
	_, err := p.Translate(context.Background(), "text", "es", FormatText)

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
}

func TestGoogleProvider_Translate_TransportError(t *testing.T) {
	// Point at a server that is already closed.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	p := NewGoogleProvider("test-key", srv.URL)
	_, err := p.Translate(context.Background(), "text", "es", FormatText)

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
}
