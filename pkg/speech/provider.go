package speech

import (
	"context"

	"github.com/robohr/ai-service/pkg/models"
)

const (
	ProviderMock   = "mock"
	ProviderOpenAI = "openai"
)

// Transcriber converts audio to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, language string) (*models.Transcript, error)
}

// Synthesizer converts text to audio, returning the audio bytes and format.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, language, voice string) ([]byte, string, error)
}

var (
	_ Transcriber = &MockProvider{}
	_ Synthesizer = &MockProvider{}
)

// MockProvider returns canned transcripts and placeholder audio. It stands in
// for a real speech backend in demos and tests.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

var mockTranscripts = map[string]string{
	"en": "Show me my attendance for this week",
	"es": "Muéstrame mi asistencia de esta semana",
	"fr": "Montrez-moi ma présence cette semaine",
}

func (p *MockProvider) Transcribe(
	_ context.Context,
	_ []byte,
	language string,
) (*models.Transcript, error) {
	text, ok := mockTranscripts[language]
	if !ok {
		text = "Show me my attendance"
	}
	return &models.Transcript{
		Text:       text,
		Language:   language,
		Confidence: 0.9,
	}, nil
}

func (p *MockProvider) Synthesize(
	_ context.Context,
	_, _, _ string,
) ([]byte, string, error) {
	return []byte("mock_audio_data"), "mp3", nil
}
