package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/campushub/student-assist-api/pkg/config"
)

const promptTemplate = `You are a helpful assistant that analyzes student data. Below is the student database in JSON format:

%s

Analyze the data and answer the following question in a concise and plain-text format:
%s

Do not use JSON, markdown, or any special formatting. Provide only the requested information.`

// GeminiGateway wraps the generative model behind the fail-soft contract: a
// call is attempted exactly once with a bounded timeout, and any failure
// becomes a textual answer instead of an error.
type GeminiGateway struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
	logger  *zap.Logger
	metrics *MetricsService
}

// NewGeminiGateway constructs a gateway from configuration.
func NewGeminiGateway(ctx context.Context, cfg config.GeminiConfig, logger *zap.Logger, metrics *MetricsService) (*GeminiGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiGateway{
		client:  client,
		model:   client.GenerativeModel(cfg.Model),
		timeout: cfg.Timeout,
		logger:  logger,
		metrics: metrics,
	}, nil
}

// Close releases the underlying client.
func (g *GeminiGateway) Close() error {
	return g.client.Close()
}

// Ask builds the prompt from the serialized visible records and the question,
// invokes the model once and sanitizes the reply. It never returns an error:
// failures come back as "Error: <cause>" so the pipeline always has text to
// store and display.
func (g *GeminiGateway) Ask(ctx context.Context, question, recordsJSON string) string {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	resp, err := g.model.GenerateContent(ctx, genai.Text(buildPrompt(question, recordsJSON)))
	if err != nil {
		g.metrics.ObserveGateway(time.Since(start), true)
		g.logger.Warn("gemini call failed", zap.Error(err))
		return fmt.Sprintf("Error: %v", err)
	}

	text := responseText(resp)
	if text == "" {
		g.metrics.ObserveGateway(time.Since(start), true)
		g.logger.Warn("gemini returned no text parts")
		return "Error: model returned an empty response"
	}

	g.metrics.ObserveGateway(time.Since(start), false)
	return Sanitize(text)
}

func buildPrompt(question, recordsJSON string) string {
	return fmt.Sprintf(promptTemplate, recordsJSON, question)
}

func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String()
}
