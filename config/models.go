package config

// Config holds the configuration of the application
// Use config.LoadConfig to create a new instance
type Config struct {
	OpenAI      OpenAIConfig      `mapstructure:"openai"`
	NLP         NLPConfig         `mapstructure:"nlp"`
	Speech      SpeechConfig      `mapstructure:"speech"`
	Translation TranslationConfig `mapstructure:"translation"`
	Cache       CacheConfig       `mapstructure:"cache"`
	Store       StoreConfig       `mapstructure:"store"`
	Server      ServerConfig      `mapstructure:"server"`
	Log         LogConfig         `mapstructure:"log"`
	Auth        AuthConfig        `mapstructure:"auth"`
}

type OpenAIConfig struct {
	// APIKey is loaded from ENV not config file.
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type NLPConfig struct {
	ConfidenceThreshold float64 `mapstructure:"confidence_threshold"`
	CacheEnabled        bool    `mapstructure:"cache_enabled"`
}

type SpeechConfig struct {
	// Provider selects the speech backend. One of "mock" or "openai".
	Provider string `mapstructure:"provider"`
	AudioDir string `mapstructure:"audio_dir"`
	// MaxFileSize caps uploaded audio, in bytes.
	MaxFileSize int64 `mapstructure:"max_file_size"`
	// MaxFileAge is how long generated audio is kept, in minutes.
	MaxFileAge int `mapstructure:"max_file_age"`
	// SweepEvery is the audio sweeper interval, in minutes. 0 disables the sweeper.
	SweepEvery int `mapstructure:"sweep_every"`
}

type TranslationConfig struct {
	// Provider selects the translation backend. One of "mock", "remote" or "openai".
	Provider     string `mapstructure:"provider"`
	RemoteURL    string `mapstructure:"remote_url"`
	CacheEnabled bool   `mapstructure:"cache_enabled"`
	// CacheTTL is the translation cache TTL, in seconds.
	CacheTTL int `mapstructure:"cache_ttl"`
	// MaxLength caps the length of a single translation request.
	MaxLength int `mapstructure:"max_length"`
}

type CacheConfig struct {
	Type  string      `mapstructure:"type"`
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	URL string `mapstructure:"url"`
}

type StoreConfig struct {
	Type     string         `mapstructure:"type"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	// PurgeEvery is the interval at which soft deleted history records are
	// hard deleted, in minutes. 0 disables the purge processor.
	PurgeEvery int `mapstructure:"purge_every"`
}

type PostgresConfig struct {
	DSN string `mapstructure:"dsn"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type AuthConfig struct {
	Secret   string `mapstructure:"secret"`
	Required bool   `mapstructure:"required"`
}
