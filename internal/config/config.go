package config

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

var (
	cfg     *APIConfig
	loadErr error
	once    sync.Once
)

// APIConfig represents the root element.
type APIConfig struct {
	XMLName        xml.Name             `xml:"API"`
	RequestDump    bool                 `xml:"REQUEST_DUMP,attr"`
	Context        ContextConfig        `xml:"CONTEXT"`
	Authentication AuthenticationConfig `xml:"AUTHENTICATION"`
	DB             DBConfig             `xml:"DB"`
	Cache          CacheConfig          `xml:"CACHE"`
	Logging        LoggingConfig        `xml:"LOGGING"`
	RateLimit      RateLimitConfig      `xml:"RATE_LIMIT"`
	Content        ContentConfig        `xml:"CONTENT"`
	THIRD_PARTY    ThirdPartyConfig     `xml:"THIRD_PARTY"`
}

// ContextConfig holds basic server settings.
type ContextConfig struct {
	Port     int    `xml:"PORT"`
	Host     string `xml:"HOST"`
	Path     string `xml:"PATH"`
	TimeZone string `xml:"TIME_ZONE"`
}

// ThirdPartyConfig holds the image host credentials.
type ThirdPartyConfig struct {
	ImgurClientID string `xml:"IMGUR_CLIENT_ID"`
	ImgurBaseURL  string `xml:"IMGUR_BASE_URL"`
}

// AuthenticationConfig holds token settings. TTLs are in minutes.
type AuthenticationConfig struct {
	AccessSecret    string `xml:"ACCESS_SECRET"`
	RefreshSecret   string `xml:"REFRESH_SECRET"`
	AccessTokenTTL  int    `xml:"ACCESS_TOKEN_TTL"`
	RefreshTokenTTL int    `xml:"REFRESH_TOKEN_TTL"`
}

// DBConfig holds database connection settings.
type DBConfig struct {
	Initialize bool         `xml:"INITIALIZE"`
	Host       string       `xml:"HOST"`
	Port       int          `xml:"PORT"`
	SSLMode    string       `xml:"SSL_MODE"`
	Names      DBNames      `xml:"NAMES"`
	Username   string       `xml:"USERNAME"`
	Password   DBPassword   `xml:"PASSWORD"`
	Pool       DBPoolConfig `xml:"POOL"`
}

// DBNames holds the names defined in the DB section.
type DBNames struct {
	SERENITY string `xml:"SERENITY,attr"`
}

// DBPassword holds password details.
type DBPassword struct {
	Type  string `xml:"TYPE,attr"`
	Value string `xml:",chardata"`
}

// DBPoolConfig holds database connection pooling settings.
type DBPoolConfig struct {
	MaxOpenConns    int `xml:"MAX_OPEN_CONNS"`
	MaxIdleConns    int `xml:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int `xml:"CONN_MAX_LIFETIME"`
}

// CacheConfig holds the redis settings. TTL is in seconds.
type CacheConfig struct {
	Enabled  bool   `xml:"ENABLED,attr"`
	Addr     string `xml:"ADDR"`
	Password string `xml:"PASSWORD"`
	DB       int    `xml:"DB"`
	TTL      int    `xml:"TTL"`
}

// LoggingConfig holds log file rotation settings.
type LoggingConfig struct {
	Debug      bool   `xml:"DEBUG,attr"`
	Dir        string `xml:"DIR"`
	MaxSizeMB  int    `xml:"MAX_SIZE_MB"`
	MaxBackups int    `xml:"MAX_BACKUPS"`
	MaxAgeDays int    `xml:"MAX_AGE_DAYS"`
}

// RateLimitConfig holds the per-client request budget.
type RateLimitConfig struct {
	RequestsPerSecond float64 `xml:"REQUESTS_PER_SECOND"`
	Burst             int     `xml:"BURST"`
}

// ContentConfig points at optional YAML overrides for the questionnaire and
// the chatbot rules.
type ContentConfig struct {
	MoodFile string `xml:"MOOD_FILE"`
	ChatFile string `xml:"CHAT_FILE"`
}

// LoadConfig loads and parses the XML configuration from the given file, then
// applies .env and environment overrides. It only reads the file once.
func LoadConfig(xmlPath string) (*APIConfig, error) {
	once.Do(func() {
		f, err := os.Open(xmlPath)
		if err != nil {
			loadErr = err
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			loadErr = err
			return
		}

		newCfg, err := ParseConfig(data)
		if err != nil {
			loadErr = err
			return
		}

		// .env is optional
		_ = godotenv.Load()
		newCfg.ApplyEnv()

		cfg = newCfg
	})

	if loadErr != nil {
		return nil, loadErr
	}
	if cfg == nil {
		return nil, os.ErrInvalid
	}
	return cfg, nil
}

// ParseConfig decodes an XML document and fills in defaults.
func ParseConfig(data []byte) (*APIConfig, error) {
	var c APIConfig
	if err := xml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *APIConfig) applyDefaults() {
	if c.Context.Host == "" {
		c.Context.Host = "0.0.0.0"
	}
	if c.Context.Port == 0 {
		c.Context.Port = 8080
	}
	if c.Context.TimeZone == "" {
		c.Context.TimeZone = "UTC"
	}
	if c.Authentication.AccessTokenTTL == 0 {
		c.Authentication.AccessTokenTTL = 15
	}
	if c.Authentication.RefreshTokenTTL == 0 {
		c.Authentication.RefreshTokenTTL = 7 * 24 * 60
	}
	if c.DB.Port == 0 {
		c.DB.Port = 5432
	}
	if c.DB.SSLMode == "" {
		c.DB.SSLMode = "disable"
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 300
	}
	if c.Logging.Dir == "" {
		c.Logging.Dir = "logs"
	}
	if c.Logging.MaxSizeMB == 0 {
		c.Logging.MaxSizeMB = 50
	}
	if c.RateLimit.RequestsPerSecond == 0 {
		c.RateLimit.RequestsPerSecond = 5
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 10
	}
	if c.THIRD_PARTY.ImgurBaseURL == "" {
		c.THIRD_PARTY.ImgurBaseURL = "https://api.imgur.com"
	}
}

// ApplyEnv overrides secrets from the environment.
func (c *APIConfig) ApplyEnv() {
	if v := os.Getenv("SERENITY_ACCESS_SECRET"); v != "" {
		c.Authentication.AccessSecret = v
	}
	if v := os.Getenv("SERENITY_REFRESH_SECRET"); v != "" {
		c.Authentication.RefreshSecret = v
	}
	if v := os.Getenv("SERENITY_DB_PASSWORD"); v != "" {
		c.DB.Password = DBPassword{Type: "plain", Value: v}
	}
	if v := os.Getenv("SERENITY_IMGUR_CLIENT_ID"); v != "" {
		c.THIRD_PARTY.ImgurClientID = v
	}
	if v := os.Getenv("SERENITY_REDIS_ADDR"); v != "" {
		c.Cache.Addr = v
		c.Cache.Enabled = true
	}
	if v := os.Getenv("SERENITY_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Context.Port = port
		}
	}
}

// Validate reports settings that would make the server unusable.
func (c *APIConfig) Validate() error {
	if c.Context.Port < 0 || c.Context.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Context.Port)
	}
	if c.Authentication.AccessTokenTTL < 0 || c.Authentication.RefreshTokenTTL < 0 {
		return errors.New("token TTLs must be positive")
	}
	if c.Cache.Enabled && c.Cache.Addr == "" {
		return errors.New("cache enabled without ADDR")
	}
	return nil
}

// DSN builds the postgres connection string.
func (c *APIConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.DB.Host, c.DB.Port, c.DB.Username, c.DB.Password.Value, c.DB.Names.SERENITY, c.DB.SSLMode, c.Context.TimeZone)
}

// GetConfig returns the loaded configuration.
func GetConfig() *APIConfig {
	return cfg
}
