package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "edutracker_go_backend/internal/errors"

	"github.com/google/uuid"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	studyTipsSystemPrompt = "You are a helpful study assistant. Provide exactly 3 practical study tips as bullet points. Keep each tip under 15 words."
	clarifySystemPrompt   = "You are a helpful study assistant. Provide a clear, concise summary to clarify the student's doubt. Keep it under 50 words."

	studyTipsMaxTokens = 150
	clarifyMaxTokens   = 100
)

// CompletionClient is the slice of the OpenAI-compatible client the assistant
// needs; the Groq endpoint speaks the same wire format.
type CompletionClient interface {
	NewCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)
}

type openAICompletionClient struct {
	client openai.Client
}

func (c *openAICompletionClient) NewCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	return c.client.Chat.Completions.New(ctx, params)
}

// NewGroqClient builds the completion client for the Groq endpoint. An empty
// apiKey yields a nil client; the assistant then rejects requests with a
// configuration error without touching the network.
func NewGroqClient(apiKey, baseURL string, timeout time.Duration) CompletionClient {
	if apiKey == "" {
		return nil
	}
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithRequestTimeout(timeout),
	)
	return &openAICompletionClient{client: client}
}

// AssistantService generates study tips and doubt clarifications through the
// completion API, serving repeats from the response cache.
type AssistantService struct {
	client CompletionClient
	model  string
	cache  *ResponseCacheService
}

func NewAssistantService(client CompletionClient, model string, cache *ResponseCacheService) *AssistantService {
	return &AssistantService{
		client: client,
		model:  model,
		cache:  cache,
	}
}

// GetStudyTips returns cached or freshly generated study tips for a subject.
func (as *AssistantService) GetStudyTips(ctx context.Context, userID uuid.UUID, subject string) (string, error) {
	if strings.TrimSpace(subject) == "" {
		return "", apperrors.NewValidationError("Subject must not be empty")
	}
	return as.cache.GetOrGenerate(ctx, userID, KindStudyTips, subject, func(ctx context.Context, query string) (string, error) {
		return as.complete(ctx, studyTipsSystemPrompt, fmt.Sprintf("Give me study tips for: %s", query), studyTipsMaxTokens)
	})
}

// GetDoubtClarification returns a cached or freshly generated clarification.
func (as *AssistantService) GetDoubtClarification(ctx context.Context, userID uuid.UUID, doubt string) (string, error) {
	if strings.TrimSpace(doubt) == "" {
		return "", apperrors.NewValidationError("Doubt must not be empty")
	}
	return as.cache.GetOrGenerate(ctx, userID, KindClarification, doubt, func(ctx context.Context, query string) (string, error) {
		return as.complete(ctx, clarifySystemPrompt, fmt.Sprintf("Clarify this doubt: %s", query), clarifyMaxTokens)
	})
}

// complete issues one chat completion and extracts its text. Failures are
// surfaced to the caller as-is; no retries at this layer.
func (as *AssistantService) complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int64) (string, error) {
	if as.client == nil {
		return "", apperrors.NewNotConfiguredError("AI assistant API key is not configured")
	}

	completion, err := as.client.NewCompletion(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Model:       openai.ChatModel(as.model),
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(maxTokens),
	})
	if err != nil {
		return "", apperrors.NewUpstreamError("AI assistant request failed", err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", apperrors.NewUpstreamError("AI assistant returned no content", fmt.Errorf("empty choices in completion response"))
	}

	return completion.Choices[0].Message.Content, nil
}
