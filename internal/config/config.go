package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/picatz/b64/pkg/alphabet"
	"github.com/picatz/b64/pkg/base64"
)

// WorkerConfig holds batch worker pool configuration
type WorkerConfig struct {
	PoolSize  int `mapstructure:"pool_size"`
	QueueSize int `mapstructure:"queue_size"` // 0 means unbounded
}

// Config holds the b64 command configuration
type Config struct {
	Debug       bool         `mapstructure:"debug"`
	Alphabet    string       `mapstructure:"alphabet"`     // "standard" or "url"
	Padding     string       `mapstructure:"padding"`      // single ASCII character
	OmitPadding bool         `mapstructure:"omit_padding"` // takes precedence over padding
	Workers     WorkerConfig `mapstructure:"workers"`
}

// Load loads configuration from an optional config file, .env files under
// envPath and B64_* environment variables, in increasing precedence.
func Load(configFile string, envPath string) (*Config, error) {
	// A missing file that was asked for is an error; a missing default one is not
	if configFile != "" {
		if _, err := os.Stat(configFile); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v := configureViper(configFile, envPath)

	v.SetDefault("debug", false)
	v.SetDefault("alphabet", alphabet.Standard.String())
	v.SetDefault("padding", string(alphabet.StdPadding))
	v.SetDefault("omit_padding", false)
	v.SetDefault("workers.pool_size", 4)
	v.SetDefault("workers.queue_size", 0)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration describes a usable encoding
func (c *Config) Validate() error {
	if _, err := alphabet.ParseVariant(c.Alphabet); err != nil {
		return err
	}
	if !c.OmitPadding && utf8.RuneCountInString(c.Padding) != 1 {
		return fmt.Errorf("padding must be a single character, got %q", c.Padding)
	}
	if c.Workers.PoolSize <= 0 {
		return errors.New("workers.pool_size must be positive")
	}
	if c.Workers.QueueSize < 0 {
		return errors.New("workers.queue_size cannot be negative")
	}
	return nil
}

// Encoding returns the encoding described by the configuration
func (c *Config) Encoding() (*base64.Encoding, error) {
	variant, err := alphabet.ParseVariant(c.Alphabet)
	if err != nil {
		return nil, err
	}

	if c.OmitPadding {
		return base64.NewEncoding(variant, base64.WithoutPadding())
	}
	pad, _ := utf8.DecodeRuneInString(c.Padding)
	return base64.NewEncoding(variant, base64.WithPadding(pad))
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("b64")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("B64")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees env vars for keys viper already knows about
	for _, key := range []string{
		"debug",
		"alphabet",
		"padding",
		"omit_padding",
		"workers.pool_size",
		"workers.queue_size",
	} {
		_ = v.BindEnv(key)
	}
	return v
}

// loadEnv loads .env files from envPath, later files overriding earlier ones
func loadEnv(envPath string) {
	if envPath == "" {
		envPath = "config/"
	}
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Overload(filepath.Join(envPath, envFile))
	}
}
