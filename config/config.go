package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

const (
	defaultPort            = "8080"
	defaultFeedTable       = "THEFEED"
	defaultCacheTTLSeconds = 300
	defaultTimeoutSeconds  = 10
)

type AppConfig struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Server     ServerConfig     `yaml:"server"`
	Feed       FeedConfig       `yaml:"feed"`
	ContentAPI ContentAPIConfig `yaml:"content_api"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	// AdminAPIKey guards cache administration endpoints. Read from ADMIN_API_KEY only.
	AdminAPIKey string `yaml:"-"`
}

// FeedConfig controls the in-process feed cache.
type FeedConfig struct {
	// CacheTTLSeconds 가 0 이하이면 기본값(300초)을 사용한다.
	CacheTTLSeconds int `yaml:"cache_ttl_seconds"`
}

// ContentAPIConfig describes the Airtable-backed content API.
// BaseURL may be overridden by CONTENT_API_BASE_URL; APIKey comes from CONTENT_API_KEY only.
type ContentAPIConfig struct {
	BaseURL        string `yaml:"base_url"`
	Table          string `yaml:"table"`
	Origin         string `yaml:"origin"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	APIKey         string `yaml:"-"`
}

func (f FeedConfig) CacheTTL() time.Duration {
	return time.Duration(f.CacheTTLSeconds) * time.Second
}

func (c ContentAPIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Configured reports whether both the base URL and the API key are present.
func (c ContentAPIConfig) Configured() bool {
	return c.BaseURL != "" && c.APIKey != ""
}

var config *AppConfig

// InitApp loads .env and config.yaml from the detected base path.
func InitApp() {
	c, err := Load(GetBasePath())
	if err != nil {
		panic(err)
	}
	config = &c
}

// InitAppFrom is InitApp with an explicit base directory.
func InitAppFrom(basePath string) error {
	c, err := Load(basePath)
	if err != nil {
		return err
	}
	config = &c
	return nil
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// Load reads basePath/.env and basePath/config.yaml. A missing config.yaml
// is not an error: defaults and environment values are used instead.
func Load(basePath string) (AppConfig, error) {
	// .env 는 선택 사항이다. 이미 설정된 환경변수는 덮어쓰지 않는다.
	_ = godotenv.Load(filepath.Join(basePath, ENV_FILE))

	var c AppConfig
	data, err := os.ReadFile(filepath.Join(basePath, CONFIG_FILE))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return AppConfig{}, fmt.Errorf("failed to parse %s: %w", CONFIG_FILE, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return AppConfig{}, fmt.Errorf("failed to read %s: %w", CONFIG_FILE, err)
	}

	applyEnv(&c)
	setDefaults(&c)

	if err := validate(c); err != nil {
		return AppConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

func applyEnv(c *AppConfig) {
	if v := os.Getenv("CONTENT_API_BASE_URL"); v != "" {
		c.ContentAPI.BaseURL = v
	}
	if v := os.Getenv("CONTENT_API_ORIGIN"); v != "" {
		c.ContentAPI.Origin = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	c.ContentAPI.APIKey = os.Getenv("CONTENT_API_KEY")
	c.Server.AdminAPIKey = os.Getenv("ADMIN_API_KEY")
}

func setDefaults(c *AppConfig) {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Server.Port == "" {
		c.Server.Port = defaultPort
	}
	if c.Feed.CacheTTLSeconds <= 0 {
		c.Feed.CacheTTLSeconds = defaultCacheTTLSeconds
	}
	if c.ContentAPI.Table == "" {
		c.ContentAPI.Table = defaultFeedTable
	}
	if c.ContentAPI.TimeoutSeconds <= 0 {
		c.ContentAPI.TimeoutSeconds = defaultTimeoutSeconds
	}
	c.ContentAPI.BaseURL = strings.TrimSpace(c.ContentAPI.BaseURL)
}

func validate(c AppConfig) error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "notice", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level %q", c.Logging.Level)
	}
	for _, origin := range c.Server.AllowedOrigins {
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("allowed_origins must not contain empty values")
		}
	}
	return nil
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return cwd
}
