package models

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
	Version   string            `json:"version"`
	Uptime    float64           `json:"uptime_seconds"`
}

type ServiceInfoResponse struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Endpoints map[string]string `json:"endpoints"`
}

type CapabilitiesResponse struct {
	SupportedLanguages []string          `json:"supported_languages"`
	Commands           []string          `json:"commands"`
	SpeechFormats      []string          `json:"speech_formats"`
	Features           []string          `json:"features"`
	Models             map[string]string `json:"models"`
	Version            string            `json:"version"`
}
