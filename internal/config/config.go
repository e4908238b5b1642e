package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	AppName    = "faqdesk"
	AppVersion = "1.0.0"
)

// DefaultTargetLanguages are the languages every FAQ is translated into.
var DefaultTargetLanguages = []string{"hi", "bn", "es", "fr"}

type Config struct {
	Addr    string
	DataDir string
	DBPath  string

	// Redis connection URL for the answer cache. Empty means the
	// in-process cache backend is used instead.
	RedisURL string
	CacheTTL time.Duration

	TranslateProvider string
	TranslateAPIKey   string
	TranslateBaseURL  string
	TranslateModel    string
	TranslateQPS      int

	TargetLanguages []string

	LogLevel string
}

func Load() Config {
	addr := getenv("FAQDESK_ADDR", ":8080")
	dataDir := getenv("FAQDESK_DATA_DIR", "./data")
	dbPath := getenv("FAQDESK_DB_PATH", filepath.Join(dataDir, "faqdesk.db"))

	ttl := time.Hour
	if v := os.Getenv("FAQDESK_CACHE_TTL_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}

	qps := 0
	if v := os.Getenv("FAQDESK_TRANSLATE_QPS"); v != "" {
		qps, _ = strconv.Atoi(v)
	}

	languages := DefaultTargetLanguages
	if v := os.Getenv("FAQDESK_TARGET_LANGUAGES"); v != "" {
		languages = splitLanguages(v)
	}

	return Config{
		Addr:              addr,
		DataDir:           filepath.Clean(dataDir),
		DBPath:            filepath.Clean(dbPath),
		RedisURL:          os.Getenv("FAQDESK_REDIS_URL"),
		CacheTTL:          ttl,
		TranslateProvider: getenv("FAQDESK_TRANSLATE_PROVIDER", "google"),
		TranslateAPIKey:   os.Getenv("FAQDESK_TRANSLATE_API_KEY"),
		TranslateBaseURL:  os.Getenv("FAQDESK_TRANSLATE_BASE_URL"),
		TranslateModel:    os.Getenv("FAQDESK_TRANSLATE_MODEL"),
		TranslateQPS:      qps,
		TargetLanguages:   languages,
		LogLevel:          getenv("FAQDESK_LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitLanguages(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if lang := strings.TrimSpace(p); lang != "" {
			out = append(out, lang)
		}
	}
	if len(out) == 0 {
		return DefaultTargetLanguages
	}
	return out
}
