package ai

import (
	"context"
	"encoding/json"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/rs/zerolog"

	"rift-rewind/internal/config"
	"rift-rewind/internal/domain"
	"rift-rewind/internal/stats"
)

// BedrockClient classifies a season of match overviews via an Anthropic
// model on AWS Bedrock. The model is treated as an opaque judge; everything
// it returns is validated against the closed tag vocabularies before use.
type BedrockClient struct {
	client  *bedrockruntime.Client
	modelID string
	logger  zerolog.Logger
}

func NewBedrockClient(cfg *config.Config, logger zerolog.Logger) (*BedrockClient, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return &BedrockClient{
		client:  bedrockruntime.NewFromConfig(awsCfg),
		modelID: cfg.BedrockModelID,
		logger:  logger.With().Str("component", "ai").Logger(),
	}, nil
}

type anthropicRequest struct {
	AnthropicVersion string             `json:"anthropic_version"`
	MaxTokens        int                `json:"max_tokens"`
	System           string             `json:"system"`
	Messages         []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// AnalyzeSeason sends the per-month performances to the model and returns
// its validated classification.
func (c *BedrockClient) AnalyzeSeason(ctx context.Context, months []stats.MonthlyOverview) (*QueryResponse, error) {
	prompt, err := buildPrompt(months)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(anthropicRequest{
		AnthropicVersion: "bedrock-2023-05-31",
		MaxTokens:        2048,
		System:           buildSystemPrompt(),
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encoding model request: %w", err)
	}

	contentType := "application/json"
	out, err := c.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     &c.modelID,
		ContentType: &contentType,
		Body:        body,
	})
	if err != nil {
		return nil, fmt.Errorf("invoking model: %w", err)
	}

	var resp anthropicResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return nil, fmt.Errorf("decoding model response: %w", err)
	}
	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("model returned empty content")
	}

	text := stripCodeFences(resp.Content[0].Text)
	var result QueryResponse
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		c.logger.Error().Str("raw", text).Msg("model returned unparseable analysis")
		return nil, fmt.Errorf("decoding analysis: %w", err)
	}
	if err := validate(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

func validate(r *QueryResponse) error {
	if !domain.ValidPlaystyle(r.Playstyle.Type) {
		return fmt.Errorf("invalid playstyle tag %q", r.Playstyle.Type)
	}
	for _, s := range r.Strengths {
		if !domain.ValidGameplayElement(s.Type) {
			return fmt.Errorf("invalid strength tag %q", s.Type)
		}
	}
	for _, w := range r.Weaknesses {
		if !domain.ValidGameplayElement(w.Type) {
			return fmt.Errorf("invalid weakness tag %q", w.Type)
		}
	}
	for _, a := range r.Advice {
		if !domain.ValidAdviceType(a.Type) {
			return fmt.Errorf("invalid advice tag %q", a.Type)
		}
	}
	return nil
}
