package translation

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/robohr/ai-service/config"
	"github.com/robohr/ai-service/pkg/llms"
	"github.com/robohr/ai-service/pkg/llms/openairetryclient"
)

var _ Provider = &OpenAIProvider{}

// OpenAIProvider translates text with a chat completion. Prompting the
// model with the language pair keeps the request shape identical for
// every pair we support.
type OpenAIProvider struct {
	client *openairetryclient.OpenAIRetryClient
	model  string
}

func NewOpenAIProvider(cfg *config.Config) *OpenAIProvider {
	return &OpenAIProvider{
		client: llms.NewOpenAIRetryClient(cfg),
		model:  cfg.OpenAI.Model,
	}
}

func (p *OpenAIProvider) Translate(
	ctx context.Context,
	text, sourceLang, targetLang string,
) (string, error) {
	prompt := fmt.Sprintf(
		"Translate the following text from %s to %s. "+
			"Focus on HR and workplace terminology. "+
			"Reply with the translation only.",
		languageName(sourceLang), languageName(targetLang),
	)

	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0.0,
	}

	resp, err := p.client.CreateChatCompletionWithRetry(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}
	return resp.Choices[0].Message.Content, nil
}

func languageName(code string) string {
	if name, ok := supportedLanguages[code]; ok {
		return name
	}
	return code
}
