package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Redis     RedisConfig
	Google    GoogleConfig
	YouTube   YouTubeConfig
	Embedding EmbeddingConfig
	Index     IndexConfig
	Quiz      QuizConfig
	Session   SessionConfig
	Export    ExportConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// GoogleConfig carries the Gemini model credentials and the service-account
// credentials used for the Forms API.
type GoogleConfig struct {
	APIKey          string
	Model           string
	EmbeddingModel  string
	CredentialsFile string
	CredentialsJSON string
}

type YouTubeConfig struct {
	APIKey      string
	SearchSize  int64
	MaxResults  int
	QueryLength int
}

type EmbeddingConfig struct {
	Source string // "googleai" or "openai"
	OpenAI struct {
		APIKey string
		Model  string
	}
	CacheTTL time.Duration
}

type IndexConfig struct {
	Dir          string
	ChunkSize    int
	ChunkOverlap int
}

type QuizConfig struct {
	DefaultQuestions  int
	MaxQuestions      int
	GenerationRetries int
	ContextChunks     int
	AskContextChunks  int
	RequestTimeout    time.Duration
}

type SessionConfig struct {
	TTL time.Duration
}

type ExportConfig struct {
	LogoPath string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// Env-only deployment is fine; anything else is a real failure.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout"),
			WriteTimeout: viper.GetDuration("server.write_timeout"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Google: GoogleConfig{
			APIKey:          viper.GetString("google.api_key"),
			Model:           viper.GetString("google.model"),
			EmbeddingModel:  viper.GetString("google.embedding_model"),
			CredentialsFile: viper.GetString("google.credentials_file"),
			CredentialsJSON: viper.GetString("google.credentials_json"),
		},
		YouTube: YouTubeConfig{
			APIKey:      viper.GetString("youtube.api_key"),
			SearchSize:  viper.GetInt64("youtube.search_size"),
			MaxResults:  viper.GetInt("youtube.max_results"),
			QueryLength: viper.GetInt("youtube.query_length"),
		},
		Index: IndexConfig{
			Dir:          viper.GetString("index.dir"),
			ChunkSize:    viper.GetInt("index.chunk_size"),
			ChunkOverlap: viper.GetInt("index.chunk_overlap"),
		},
		Quiz: QuizConfig{
			DefaultQuestions:  viper.GetInt("quiz.default_questions"),
			MaxQuestions:      viper.GetInt("quiz.max_questions"),
			GenerationRetries: viper.GetInt("quiz.generation_retries"),
			ContextChunks:     viper.GetInt("quiz.context_chunks"),
			AskContextChunks:  viper.GetInt("quiz.ask_context_chunks"),
			RequestTimeout:    viper.GetDuration("quiz.request_timeout"),
		},
		Session: SessionConfig{
			TTL: viper.GetDuration("session.ttl"),
		},
		Export: ExportConfig{
			LogoPath: viper.GetString("export.logo_path"),
		},
	}
	config.Embedding.Source = viper.GetString("embedding.source")
	config.Embedding.OpenAI.APIKey = viper.GetString("embedding.openai.api_key")
	config.Embedding.OpenAI.Model = viper.GetString("embedding.openai.model")
	config.Embedding.CacheTTL = viper.GetDuration("embedding.cache_ttl")

	// Override with environment variables if set
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		config.Google.APIKey = key
	}
	if key := os.Getenv("YOUTUBE_API_KEY"); key != "" {
		config.YouTube.APIKey = key
	}
	if creds := os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"); creds != "" {
		config.Google.CredentialsJSON = creds
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		config.Embedding.OpenAI.APIKey = key
	}
	if addr := os.Getenv("REDIS_ADDRESS"); addr != "" {
		config.Redis.Address = addr
	}
	if pw := os.Getenv("REDIS_PASSWORD"); pw != "" {
		config.Redis.Password = pw
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("redis.address", "localhost:6379")
	viper.SetDefault("google.model", "gemini-1.5-flash")
	viper.SetDefault("google.embedding_model", "embedding-001")
	viper.SetDefault("youtube.search_size", 15)
	viper.SetDefault("youtube.max_results", 5)
	viper.SetDefault("youtube.query_length", 100)
	viper.SetDefault("embedding.source", "googleai")
	viper.SetDefault("embedding.openai.model", "text-embedding-ada-002")
	viper.SetDefault("embedding.cache_ttl", 168*time.Hour)
	viper.SetDefault("index.dir", "data/db")
	viper.SetDefault("index.chunk_size", 1000)
	viper.SetDefault("index.chunk_overlap", 100)
	viper.SetDefault("quiz.default_questions", 5)
	viper.SetDefault("quiz.max_questions", 20)
	viper.SetDefault("quiz.generation_retries", 2)
	viper.SetDefault("quiz.context_chunks", 5)
	viper.SetDefault("quiz.ask_context_chunks", 3)
	viper.SetDefault("quiz.request_timeout", 60*time.Second)
	viper.SetDefault("session.ttl", 24*time.Hour)
	viper.SetDefault("export.logo_path", "data/logo.png")
}

// Validate checks credentials eagerly; a failure here is fatal at startup.
func (c *Config) Validate() error {
	if c.Google.APIKey == "" {
		return fmt.Errorf("configuration error: google.api_key (GEMINI_API_KEY) is required")
	}
	if c.YouTube.APIKey == "" {
		return fmt.Errorf("configuration error: youtube.api_key (YOUTUBE_API_KEY) is required")
	}
	if c.Google.CredentialsFile == "" && c.Google.CredentialsJSON == "" {
		return fmt.Errorf("configuration error: forms service-account credentials are required (google.credentials_file or GOOGLE_SERVICE_ACCOUNT_JSON)")
	}
	if c.Embedding.Source == "openai" && c.Embedding.OpenAI.APIKey == "" {
		return fmt.Errorf("configuration error: embedding.openai.api_key is required when embedding.source is openai")
	}
	if c.Index.ChunkOverlap >= c.Index.ChunkSize {
		return fmt.Errorf("configuration error: index.chunk_overlap must be smaller than index.chunk_size")
	}
	return nil
}
