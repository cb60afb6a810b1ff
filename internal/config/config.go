package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort    string
	LogLevel    string
	SecretKey   string
	CORSOrigins []string

	IngestBatchSize    int
	IngestMaxBatchSize int
	IngestChunkSize    int
	IngestPreviewSize  int
	IngestWorkers      int
	MaxUploadBytes     int64
	UploadsPerMinute   int
	SpoolDir           string

	ClassifierModelPath string
	ClassifierTimeout   time.Duration

	OTLPEndpoint string
}

// PostgresURL builds the lib/pq connection string.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",

		HTTPPort:    "9446",
		LogLevel:    "info",
		SecretKey:   "super-secret-default",
		CORSOrigins: []string{"*"},

		IngestBatchSize:    1000,
		IngestMaxBatchSize: 10000,
		IngestChunkSize:    200,
		IngestPreviewSize:  10,
		IngestWorkers:      4,
		MaxUploadBytes:     50 * 1024 * 1024,
		UploadsPerMinute:   10,
		SpoolDir:           os.TempDir(),

		ClassifierModelPath: "model.gob",
		ClassifierTimeout:   2 * time.Second,
	}

	overrideString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	overrideString(&env.PostgresPort, "POSTGRES_PORT")
	overrideString(&env.PostgresDB, "POSTGRES_DB")
	overrideString(&env.PostgresUsername, "POSTGRES_USERNAME")
	overrideString(&env.PostgresPassword, "POSTGRES_PASSWORD")

	overrideString(&env.HTTPPort, "HTTP_PORT")
	overrideString(&env.LogLevel, "LOG_LEVEL")
	overrideString(&env.SecretKey, "SECRET_KEY")
	overrideString(&env.SpoolDir, "SPOOL_DIR")
	overrideString(&env.ClassifierModelPath, "CLASSIFIER_MODEL_PATH")
	overrideString(&env.OTLPEndpoint, "OTEL_EXPORTER_OTLP_ENDPOINT")

	if origins := os.Getenv("CORS_ORIGINS"); len(origins) != 0 {
		env.CORSOrigins = splitList(origins)
	}

	ints := []struct {
		key    string
		target *int
	}{
		{"INGEST_BATCH_SIZE", &env.IngestBatchSize},
		{"INGEST_MAX_BATCH_SIZE", &env.IngestMaxBatchSize},
		{"INGEST_CHUNK_SIZE", &env.IngestChunkSize},
		{"INGEST_PREVIEW_SIZE", &env.IngestPreviewSize},
		{"INGEST_WORKERS", &env.IngestWorkers},
		{"UPLOADS_PER_MINUTE", &env.UploadsPerMinute},
	}
	for _, item := range ints {
		if err := overridePositiveInt(item.target, item.key); err != nil {
			return nil, err
		}
	}

	if raw := os.Getenv("MAX_UPLOAD_BYTES"); len(raw) != 0 {
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || value <= 0 {
			return nil, fmt.Errorf("config: MAX_UPLOAD_BYTES must be a positive integer, got %q", raw)
		}
		env.MaxUploadBytes = value
	}

	if raw := os.Getenv("CLASSIFIER_TIMEOUT"); len(raw) != 0 {
		value, err := time.ParseDuration(raw)
		if err != nil || value <= 0 {
			return nil, fmt.Errorf("config: CLASSIFIER_TIMEOUT must be a positive duration, got %q", raw)
		}
		env.ClassifierTimeout = value
	}

	if env.IngestBatchSize > env.IngestMaxBatchSize {
		return nil, fmt.Errorf("config: INGEST_BATCH_SIZE %d exceeds INGEST_MAX_BATCH_SIZE %d",
			env.IngestBatchSize, env.IngestMaxBatchSize)
	}

	return &env, nil
}

func overrideString(target *string, key string) {
	if value := os.Getenv(key); len(value) != 0 {
		*target = value
	}
}

func overridePositiveInt(target *int, key string) error {
	raw := os.Getenv(key)
	if len(raw) == 0 {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fmt.Errorf("config: %s must be a positive integer, got %q", key, raw)
	}
	*target = value
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
