package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"

	"github.com/robohr/ai-service/pkg/llms/openairetryclient"
	"github.com/robohr/ai-service/pkg/models"
)

var (
	_ Transcriber = &OpenAIProvider{}
	_ Synthesizer = &OpenAIProvider{}
)

// OpenAIProvider transcribes audio with Whisper and synthesizes speech with
// the OpenAI TTS API.
type OpenAIProvider struct {
	client *openairetryclient.OpenAIRetryClient
}

func NewOpenAIProvider(client *openairetryclient.OpenAIRetryClient) *OpenAIProvider {
	return &OpenAIProvider{client: client}
}

func (p *OpenAIProvider) Transcribe(
	ctx context.Context,
	audio []byte,
	language string,
) (*models.Transcript, error) {
	resp, err := p.client.CreateTranscriptionWithRetry(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: "audio.wav",
		Reader:   bytes.NewReader(audio),
		Language: language,
	})
	if err != nil {
		return nil, fmt.Errorf("whisper transcription failed: %w", err)
	}

	return &models.Transcript{
		Text:     resp.Text,
		Language: language,
		// Whisper does not report a confidence score.
		Confidence: 0.9,
	}, nil
}

var openAIVoices = map[string]openai.SpeechVoice{
	"alloy":   openai.VoiceAlloy,
	"echo":    openai.VoiceEcho,
	"fable":   openai.VoiceFable,
	"onyx":    openai.VoiceOnyx,
	"nova":    openai.VoiceNova,
	"shimmer": openai.VoiceShimmer,
}

func (p *OpenAIProvider) Synthesize(
	ctx context.Context,
	text, _, voice string,
) ([]byte, string, error) {
	speechVoice, ok := openAIVoices[voice]
	if !ok {
		speechVoice = openai.VoiceAlloy
	}

	resp, err := p.client.CreateSpeechWithRetry(ctx, openai.CreateSpeechRequest{
		Model:          openai.TTSModel1,
		Input:          text,
		Voice:          speechVoice,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, "", fmt.Errorf("speech synthesis failed: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read synthesized audio: %w", err)
	}
	return audio, "mp3", nil
}
