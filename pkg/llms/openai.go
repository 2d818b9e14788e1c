package llms

import (
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/robohr/ai-service/config"
	"github.com/robohr/ai-service/internal"
	"github.com/robohr/ai-service/pkg/llms/openairetryclient"
)

var log = internal.GetLogger()

const (
	openAIAPITimeout  = 90 * time.Second
	openAIMaxAttempts = 5
)

// NewOpenAIRetryClient creates a new OpenAIRetryClient from the config.
// Fatal if the API key is not set while an openai provider is configured.
func NewOpenAIRetryClient(cfg *config.Config) *openairetryclient.OpenAIRetryClient {
	apiKey := cfg.OpenAI.APIKey
	if apiKey == "" {
		log.Fatal("OpenAI API key is not set. Ensure HRAI_OPENAI_API_KEY is set in your environment.")
	}

	client := openai.NewClient(apiKey)
	return &openairetryclient.OpenAIRetryClient{
		Client: *client,
		Config: struct {
			Timeout     time.Duration
			MaxAttempts uint
		}{
			Timeout:     openAIAPITimeout,
			MaxAttempts: openAIMaxAttempts,
		},
	}
}
