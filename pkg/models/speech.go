package models

type Transcript struct {
	Text       string  `json:"text"`
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
}

type TranscriptResponse struct {
	Success    bool    `json:"success"`
	Transcript string  `json:"transcript"`
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
}

type SynthesisRequest struct {
	Text  string  `json:"text"  validate:"required"`
	Lang  string  `json:"lang"`
	Voice string  `json:"voice,omitempty"`
	Speed float64 `json:"speed,omitempty"`
	Pitch float64 `json:"pitch,omitempty"`
}

type SynthesisResponse struct {
	Success  bool   `json:"success"`
	AudioURL string `json:"audio_url"`
	Text     string `json:"text"`
	Language string `json:"language"`
	Format   string `json:"format"`
}

// AudioInfo describes an uploaded audio payload.
type AudioInfo struct {
	Valid      bool    `json:"valid"`
	Format     string  `json:"format"`
	Duration   float64 `json:"duration"`
	SampleRate int     `json:"sample_rate"`
	Channels   int     `json:"channels"`
	Size       int     `json:"size"`
}

type AudioStats struct {
	TempFiles        int      `json:"temp_files"`
	TotalSizeBytes   int64    `json:"total_size_bytes"`
	TotalSize        string   `json:"total_size"`
	AudioDirectory   string   `json:"audio_directory"`
	SupportedFormats []string `json:"supported_formats"`
	MaxDuration      int      `json:"max_duration_seconds"`
	SampleRate       int      `json:"sample_rate"`
}
