package models

import (
	"context"

	"github.com/robohr/ai-service/config"
)

// CommandProcessor interprets natural language commands.
type CommandProcessor interface {
	Process(ctx context.Context, text, lang string, employeeID *int64) (*CommandResult, error)
	Healthy() bool
}

// SpeechProcessor converts between audio and text.
type SpeechProcessor interface {
	Transcribe(ctx context.Context, audio []byte, language string) (*Transcript, error)
	Synthesize(ctx context.Context, req *SynthesisRequest) (*SynthesisResponse, error)
	ValidateAudio(audio []byte, filename string) (*AudioInfo, error)
	Languages() map[string]string
	Voices(language string) map[string]string
	Stats() (*AudioStats, error)
	Healthy() bool
}

// TranslationService translates text between languages.
type TranslationService interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
	TranslateWithConfidence(
		ctx context.Context,
		text, sourceLang, targetLang string,
	) (*TranslationResponse, error)
	BatchTranslate(ctx context.Context, texts []string, sourceLang, targetLang string) ([]string, error)
	DetectLanguage(text string) string
	Languages() map[string]string
	Stats(ctx context.Context) (*TranslationStats, error)
	ClearCache(ctx context.Context) (int64, error)
	Healthy() bool
}

// AppState is a struct that holds the state of the application
// Use cmd.NewAppState to create a new instance
type AppState struct {
	NLP         CommandProcessor
	Speech      SpeechProcessor
	Translation TranslationService
	History     HistoryStore
	Config      *config.Config
}
