package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultGoogleBaseURL is the Google Cloud Translation v2 endpoint.
const DefaultGoogleBaseURL = "https://translation.googleapis.com/language/translate/v2"

// GoogleProvider calls the Google Cloud Translation v2 REST API.
type GoogleProvider struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// NewGoogleProvider creates a Google Translate provider. baseURL is
// overridable for tests.
func NewGoogleProvider(apiKey, baseURL string) *GoogleProvider {
	if baseURL == "" {
		baseURL = DefaultGoogleBaseURL
	}
	return &GoogleProvider{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		apiKey:     apiKey,
		baseURL:    baseURL,
	}
}

type googleTranslateRequest struct {
	Q      string `json:"q"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type googleTranslateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText         string `json:"translatedText"`
			DetectedSourceLanguage string `json:"detectedSourceLanguage,omitempty"`
		} `json:"translations"`
	} `json:"data"`
}

func (p *GoogleProvider) Translate(ctx context.Context, text, targetLang string, format Format) (string, error) {
	body, err := json.Marshal(googleTranslateRequest{
		Q:      text,
		Target: targetLang,
		Format: string(format),
	})
	if err != nil {
		return "", &ProviderError{Provider: ProviderGoogle, Message: "encode request", Cause: err}
	}

	params := url.Values{}
	params.Set("key", p.apiKey)
	params.Set("alt", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"?"+params.Encode(), bytes.NewReader(body))
	if err != nil {
		return "", &ProviderError{Provider: ProviderGoogle, Message: "build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", &ProviderError{Provider: ProviderGoogle, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &ProviderError{
			Provider: ProviderGoogle,
			Message:  fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Provider: ProviderGoogle, Message: "read response", Cause: err}
	}

	var parsed googleTranslateResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", &ProviderError{Provider: ProviderGoogle, Message: "decode response", Cause: err}
	}
	if len(parsed.Data.Translations) == 0 {
		return "", &ProviderError{Provider: ProviderGoogle, Message: "response missing translations"}
	}

	return parsed.Data.Translations[0].TranslatedText, nil
}

func (p *GoogleProvider) Name() string {
	return ProviderGoogle
}

var _ Provider = (*GoogleProvider)(nil)
