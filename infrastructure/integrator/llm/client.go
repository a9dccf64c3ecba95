package llm

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/internal/config"
)

const (
	RoleSystem = openai.ChatMessageRoleSystem
	RoleUser   = openai.ChatMessageRoleUser
)

var ErrEmptyCompletion = errors.New("LLM retornou resposta vazia")

type Message struct {
	Role    string
	Content string
}

// Schema pede resposta em JSON estrito no formato descrito.
type Schema struct {
	Name       string
	Definition jsonschema.Definition
}

type Client interface {
	Complete(ctx context.Context, messages []Message, schema *Schema) (string, error)
}

type OpenAIClient struct {
	api   *openai.Client
	model string
}

var _ Client = (*OpenAIClient)(nil)

func NewOpenAIClient(cfg config.OpenAI) *OpenAIClient {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	return &OpenAIClient{
		api:   openai.NewClientWithConfig(clientCfg),
		model: cfg.Model,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, messages []Message, schema *Schema) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: make([]openai.ChatCompletionMessage, 0, len(messages)),
	}

	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	if schema != nil {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   schema.Name,
				Schema: &schema.Definition,
				Strict: true,
			},
		}
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			logrus.WithFields(logrus.Fields{
				"status": apiErr.HTTPStatusCode,
				"type":   apiErr.Type,
			}).Error("llm: erro na API da OpenAI")
		}
		return "", errors.Wrap(err, "erro ao gerar conteúdo com IA")
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}

	logrus.WithFields(logrus.Fields{
		"model":  resp.Model,
		"tokens": resp.Usage.TotalTokens,
	}).Debug("llm: resposta recebida")

	return resp.Choices[0].Message.Content, nil
}
