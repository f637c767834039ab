package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime settings, resolved from the environment.
type Config struct {
	Port string

	GeminiAPIKey string
	VideoModel   string
	TextModel    string
	PollInterval time.Duration
	OutputDir    string
	MaxScenes    int

	CohereAPIKey string

	RedisAddr string

	S3Bucket  string
	AWSRegion string

	YouTubeServiceAccountFile string

	KafkaBrokers []string
	KafkaTopic   string
	KafkaGroupID string

	LogLevel  string
	LogFormat string
}

// Load resolves configuration from environment variables, applying defaults.
// Callers are expected to have loaded .env (godotenv) beforehand.
func Load() Config {
	return Config{
		Port: GetEnvOrDefault("PORT", DefaultPort),

		GeminiAPIKey: firstEnv("GEMINI_API_KEY", "GOOGLE_API_KEY"),
		VideoModel:   GetEnvOrDefault("VIDEO_MODEL", DefaultVideoModel),
		TextModel:    GetEnvOrDefault("TEXT_MODEL", DefaultTextModel),
		PollInterval: envDuration("POLL_INTERVAL", DefaultPollInterval),
		OutputDir:    GetEnvOrDefault("OUTPUT_DIR", OutputDir),
		MaxScenes:    envInt("MAX_SCENES", DefaultMaxScenes),

		CohereAPIKey: os.Getenv("COHERE_API_KEY"),

		RedisAddr: os.Getenv("REDIS_ADDR"),

		S3Bucket:  os.Getenv("S3_BUCKET"),
		AWSRegion: GetEnvOrDefault("AWS_REGION", "us-east-1"),

		YouTubeServiceAccountFile: os.Getenv("YOUTUBE_SERVICE_ACCOUNT_FILE"),

		KafkaBrokers: envList("KAFKA_BOOTSTRAP_SERVERS", "localhost:9092"),
		KafkaTopic:   GetEnvOrDefault("KAFKA_TOPIC", KafkaTopic),
		KafkaGroupID: GetEnvOrDefault("KAFKA_GROUP_ID", KafkaGroupID),

		LogLevel:  GetEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: GetEnvOrDefault("LOG_FORMAT", "console"),
	}
}

// GetEnvOrDefault returns the value of an environment variable or a default value
func GetEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func envDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultVal
}

func envList(key, defaultVal string) []string {
	raw := GetEnvOrDefault(key, defaultVal)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
