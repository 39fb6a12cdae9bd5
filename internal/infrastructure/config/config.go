// Package config reads the service settings from the environment.
package config

import (
	"crypto/rand"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
)

const (
	defaultHTTPAddress     = ":8080"
	defaultAWSRegion       = "us-east-1"
	defaultInvoicesTable   = "invoices"
	defaultFiscalKeysTable = "invoice_fiscal_keys"
	defaultS3Endpoint      = "localhost:9000"
	defaultProofBucket     = "proof-photos"
	defaultProofMaxBytes   = 10 << 20
	defaultRedisAddr       = "localhost:6379"
	defaultWorkerCount     = 5
	defaultSessionTTL      = 12 * time.Hour
	defaultPageSize        = 10
)

// Config is the typed view of every setting the binaries need.
type Config struct {
	HTTPAddress  string
	InvoiceStore string

	AWSRegion        string
	DynamoDBEndpoint string
	InvoicesTable    string
	FiscalKeysTable  string

	DatabaseURL string

	S3Endpoint         string
	S3AccessKey        string
	S3SecretKey        string
	S3UseSSL           bool
	S3Region           string
	ProofBucket        string
	ProofPublicBaseURL string
	ProofMaxBytes      int64

	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	WorkerConcurrency int

	AdminEmail        string
	AdminPasswordHash string
	SessionSecret     []byte
	SessionTTL        time.Duration

	PageSize int
}

// Load reads the environment, falling back to local-friendly defaults.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddress:  readEnv("HTTP_ADDRESS", defaultHTTPAddress),
		InvoiceStore: strings.ToLower(readEnv("INVOICE_STORE", StoreDynamoDB)),

		AWSRegion:        readEnv("AWS_REGION", defaultAWSRegion),
		DynamoDBEndpoint: readEnv("DYNAMODB_ENDPOINT", ""),
		InvoicesTable:    readEnv("INVOICES_TABLE", defaultInvoicesTable),
		FiscalKeysTable:  readEnv("FISCAL_KEYS_TABLE", defaultFiscalKeysTable),

		DatabaseURL: readEnv("DATABASE_URL", ""),

		S3Endpoint:         readEnv("S3_ENDPOINT", defaultS3Endpoint),
		S3AccessKey:        readEnv("S3_ACCESS_KEY", "minioadmin"),
		S3SecretKey:        readEnv("S3_SECRET_KEY", "minioadmin"),
		S3UseSSL:           parseBool("S3_USE_SSL", false),
		S3Region:           readEnv("S3_REGION", ""),
		ProofBucket:        readEnv("PROOF_BUCKET", defaultProofBucket),
		ProofPublicBaseURL: strings.TrimRight(readEnv("PROOF_PUBLIC_BASE_URL", ""), "/"),
		ProofMaxBytes:      parseInt64("PROOF_MAX_BYTES", defaultProofMaxBytes),

		RedisAddr:         readEnv("REDIS_ADDR", defaultRedisAddr),
		RedisPassword:     readEnv("REDIS_PASSWORD", ""),
		RedisDB:           parseInt("REDIS_DB", 0),
		WorkerConcurrency: parseInt("WORKER_CONCURRENCY", defaultWorkerCount),

		AdminEmail:        strings.ToLower(strings.TrimSpace(readEnv("ADMIN_EMAIL", ""))),
		AdminPasswordHash: readEnv("ADMIN_PASSWORD_HASH", ""),
		SessionSecret:     parseSecret("SESSION_SECRET"),
		SessionTTL:        parseDuration("SESSION_TTL", defaultSessionTTL),

		PageSize: parseInt("PAGE_SIZE", defaultPageSize),
	}

	if cfg.InvoiceStore != StoreDynamoDB && cfg.InvoiceStore != StorePostgres {
		return nil, &InvalidSettingError{Key: "INVOICE_STORE", Value: cfg.InvoiceStore}
	}
	if cfg.InvoiceStore == StorePostgres && cfg.DatabaseURL == "" {
		return nil, &InvalidSettingError{Key: "DATABASE_URL", Value: ""}
	}
	if cfg.SessionSecret == nil {
		// Sessions do not survive a restart without a configured secret.
		cfg.SessionSecret = randomSecret()
	}
	if cfg.ProofMaxBytes <= 0 {
		cfg.ProofMaxBytes = defaultProofMaxBytes
	}
	if cfg.WorkerConcurrency <= 0 {
		cfg.WorkerConcurrency = defaultWorkerCount
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	return cfg, nil
}

// ProofBaseURL is the prefix of public proof photo URLs, without trailing slash.
func (c *Config) ProofBaseURL() string {
	if c.ProofPublicBaseURL != "" {
		return c.ProofPublicBaseURL
	}
	scheme := "http"
	if c.S3UseSSL {
		scheme = "https"
	}
	return scheme + "://" + c.S3Endpoint
}

type InvalidSettingError struct {
	Key   string
	Value string
}

func (e *InvalidSettingError) Error() string {
	return "config: invalid " + e.Key + "=" + strconv.Quote(e.Value)
}

func readEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func parseBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func parseInt64(key string, def int64) int64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return parsed
		}
	}
	return def
}

func parseInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func parseDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}

func parseSecret(key string) []byte {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return []byte(v)
	}
	return nil
}

func randomSecret() []byte {
	buf := make([]byte, 32)
	_, _ = rand.Read(buf)
	return buf
}
