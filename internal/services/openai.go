package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type openAIService struct {
	client *resty.Client
	model  string
}

// NewOpenAIService talks to any OpenAI-compatible /chat/completions endpoint.
func NewOpenAIService(apiKey, model, baseURL string) LLMClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json")

	return &openAIService{
		client: client,
		model:  model,
	}
}

// Complete implements LLMClient. The whole prompt travels as a single system
// message.
func (o *openAIService) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.R().
		SetContext(ctx).
		SetBody(chatCompletionRequest{
			Model: o.model,
			Messages: []chatMessage{
				{Role: "system", Content: prompt},
			},
		}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	body := resp.Body()
	if resp.IsError() {
		msg := gjson.GetBytes(body, "error.message").String()
		if msg == "" {
			msg = strings.TrimSpace(string(body))
		}
		return "", fmt.Errorf("chat completion failed with status %d: %s", resp.StatusCode(), msg)
	}

	if !gjson.ValidBytes(body) {
		return "", errors.New("chat completion returned malformed JSON")
	}

	choices := gjson.GetBytes(body, "choices")
	if !choices.IsArray() || len(choices.Array()) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	content := gjson.GetBytes(body, "choices.0.message.content")
	if !content.Exists() || content.Type == gjson.Null {
		return "", errors.New("chat completion returned no message content")
	}

	return content.String(), nil
}

func (o *openAIService) Provider() string { return "openai" }

func (o *openAIService) Model() string { return o.model }
