package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// The Messages API rejects an empty conversation, so the prompt rides in the
// system block and this turn asks for the analysis.
const anthropicUserTurn = "Analyze the resume against the job description."

type anthropicService struct {
	client anthropic.Client
	model  string
}

func NewAnthropicService(apiKey, model, baseURL string) LLMClient {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &anthropicService{
		client: anthropic.NewClient(opts...),
		model:  model,
	}
}

// Complete implements LLMClient.
func (a *anthropicService) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: 4096,
		System: []anthropic.TextBlockParam{
			{Text: prompt},
		},
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: anthropicUserTurn},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call Claude API: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", errors.New("empty response from Claude")
	}

	return resp.Content[0].AsText().Text, nil
}

func (a *anthropicService) Provider() string { return "anthropic" }

func (a *anthropicService) Model() string { return a.model }
