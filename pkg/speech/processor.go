package speech

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/robohr/ai-service/config"
	"github.com/robohr/ai-service/internal"
	"github.com/robohr/ai-service/pkg/llms"
	"github.com/robohr/ai-service/pkg/models"
)

var log = internal.GetLogger()

var _ models.SpeechProcessor = &Processor{}

const (
	maxAudioDuration = 300 // seconds
	audioSampleRate  = 16000
)

var supportedFormats = []string{"wav", "mp3", "ogg", "flac"}

// Processor converts between audio and text using the configured provider.
type Processor struct {
	appConfig   *config.Config
	transcriber Transcriber
	synthesizer Synthesizer
	files       *FileStore
}

// NewProcessor creates a speech processor with the provider selected by
// speech.provider. Use this to correctly initialize the processor.
func NewProcessor(cfg *config.Config) (*Processor, error) {
	files, err := NewFileStore(
		cfg.Speech.AudioDir,
		time.Duration(cfg.Speech.MaxFileAge)*time.Minute,
	)
	if err != nil {
		return nil, err
	}

	var transcriber Transcriber
	var synthesizer Synthesizer
	switch cfg.Speech.Provider {
	case ProviderMock, "":
		provider := NewMockProvider()
		transcriber, synthesizer = provider, provider
	case ProviderOpenAI:
		provider := NewOpenAIProvider(llms.NewOpenAIRetryClient(cfg))
		transcriber, synthesizer = provider, provider
	default:
		return nil, fmt.Errorf("speech.provider (%s) is not supported", cfg.Speech.Provider)
	}

	log.Info("Using speech provider: ", cfg.Speech.Provider)

	return &Processor{
		appConfig:   cfg,
		transcriber: transcriber,
		synthesizer: synthesizer,
		files:       files,
	}, nil
}

// Files exposes the underlying audio file store, used to serve generated
// audio and to run the sweeper.
func (p *Processor) Files() *FileStore {
	return p.files
}

func (p *Processor) Transcribe(
	ctx context.Context,
	audio []byte,
	language string,
) (*models.Transcript, error) {
	if len(audio) == 0 {
		return nil, models.NewBadRequestError("audio payload is empty")
	}
	if max := p.appConfig.Speech.MaxFileSize; max > 0 && int64(len(audio)) > max {
		return nil, models.NewBadRequestError(
			fmt.Sprintf("audio payload exceeds %s", humanize.Bytes(uint64(max))),
		)
	}
	if language == "" {
		language = "en"
	}

	log.Debugf("transcribing %d bytes of audio, language %s", len(audio), language)
	return p.transcriber.Transcribe(ctx, audio, language)
}

func (p *Processor) Synthesize(
	ctx context.Context,
	req *models.SynthesisRequest,
) (*models.SynthesisResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, models.NewBadRequestError("text is empty")
	}
	language := req.Lang
	if language == "" {
		language = "en"
	}

	audio, format, err := p.synthesizer.Synthesize(ctx, req.Text, language, req.Voice)
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}

	filename := fmt.Sprintf("tts_%s.%s", uuid.New().String(), format)
	if _, err := p.files.Save(filename, audio); err != nil {
		return nil, err
	}

	return &models.SynthesisResponse{
		Success:  true,
		AudioURL: "/audio/" + filename,
		Text:     req.Text,
		Language: language,
		Format:   format,
	}, nil
}

// ValidateAudio checks an uploaded payload against the size cap and format
// allowlist. Duration, sample rate and channels are placeholder values; a
// production build would inspect the container headers.
func (p *Processor) ValidateAudio(audio []byte, filename string) (*models.AudioInfo, error) {
	if max := p.appConfig.Speech.MaxFileSize; max > 0 && int64(len(audio)) > max {
		return &models.AudioInfo{Valid: false, Size: len(audio)},
			models.NewBadRequestError(
				fmt.Sprintf("audio payload exceeds %s", humanize.Bytes(uint64(max))),
			)
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if format == "" {
		format = "wav"
	}
	for _, supported := range supportedFormats {
		if format == supported {
			return &models.AudioInfo{
				Valid:      true,
				Format:     format,
				Duration:   5.0,
				SampleRate: audioSampleRate,
				Channels:   1,
				Size:       len(audio),
			}, nil
		}
	}

	return &models.AudioInfo{Valid: false, Format: format, Size: len(audio)},
		models.NewBadRequestError(fmt.Sprintf("unsupported audio format %q", format))
}

func (p *Processor) Languages() map[string]string {
	languages := make(map[string]string, len(supportedLanguages))
	for code, name := range supportedLanguages {
		languages[code] = name
	}
	return languages
}

func (p *Processor) Voices(language string) map[string]string {
	if voices, ok := voiceCatalog[language]; ok {
		return voices
	}
	return defaultVoices
}

func (p *Processor) Stats() (*models.AudioStats, error) {
	count, totalSize, err := p.files.Stats()
	if err != nil {
		return nil, fmt.Errorf("failed to stat audio directory: %w", err)
	}

	return &models.AudioStats{
		TempFiles:        count,
		TotalSizeBytes:   totalSize,
		TotalSize:        humanize.Bytes(uint64(totalSize)),
		AudioDirectory:   p.files.Dir(),
		SupportedFormats: supportedFormats,
		MaxDuration:      maxAudioDuration,
		SampleRate:       audioSampleRate,
	}, nil
}

func (p *Processor) Healthy() bool {
	return p.transcriber != nil && p.synthesizer != nil
}
