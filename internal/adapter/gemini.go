package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/nutri-track/internal/config"
	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/MKhiriev/nutri-track/internal/utils"
)

const geminiAPIKeyHeader = "x-goog-api-key"

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type geminiAdapter struct {
	client *utils.HTTPClient
	apiKey string
	model  string

	logger *logger.Logger
}

// NewGeminiAdapter constructs a [GenerativeAdapter] for the generateContent
// endpoint of the configured model.
func NewGeminiAdapter(cfg config.Adapter, logger *logger.Logger) GenerativeAdapter {
	logger.Debug().
		Str("model", cfg.GeminiModel).
		Bool("configured", cfg.GeminiAPIKey != "").
		Msg("creating generative adapter")

	return &geminiAdapter{
		client: utils.NewHTTPClient(strings.TrimRight(cfg.GeminiBaseURL, "/"), cfg.RequestTimeout),
		apiKey: cfg.GeminiAPIKey,
		model:  cfg.GeminiModel,
		logger: logger,
	}
}

func (g *geminiAdapter) GenerateContent(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx)

	if g.apiKey == "" {
		return "", ErrNotConfigured
	}

	var result geminiResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(geminiAPIKeyHeader, g.apiKey).
		SetPathParam("model", g.model).
		SetBody(geminiRequest{Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}}}).
		SetResult(&result).
		Post("/models/{model}:generateContent")
	if err != nil {
		log.Err(err).Str("func", "*geminiAdapter.GenerateContent").Msg("generateContent request failed")
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*geminiAdapter.GenerateContent").Int("status", resp.StatusCode()).Msg("generateContent returned an error")
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	text := strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}
