package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "config/config.yaml"

type Config struct {
	App            AppConfig            `yaml:"app" envconfig:"APP"`
	Server         ServerConfig         `yaml:"server" envconfig:"SERVER"`
	OpenWeatherMap OpenWeatherMapConfig `yaml:"openweathermap" envconfig:"OWM"`
	Display        DisplayConfig        `yaml:"display" envconfig:"DISPLAY"`
	Log            LogConfig            `yaml:"log" envconfig:"LOG"`
	Sentry         SentryConfig         `yaml:"sentry" envconfig:"SENTRY"`
}

type AppConfig struct {
	Name    string `yaml:"name" split_words:"true"`
	Version string `yaml:"version" split_words:"true"`
	Env     string `yaml:"env" split_words:"true"`
}

type ServerConfig struct {
	Port         string        `yaml:"port" split_words:"true"`
	ReadTimeout  time.Duration `yaml:"read_timeout" split_words:"true"`
	WriteTimeout time.Duration `yaml:"write_timeout" split_words:"true"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" split_words:"true"`
}

type OpenWeatherMapConfig struct {
	BaseURL         string        `yaml:"base_url" split_words:"true"`
	APIKey          string        `yaml:"api_key,omitempty" split_words:"true"`
	Timeout         time.Duration `yaml:"timeout" split_words:"true"`
	RatePerSecond   float64       `yaml:"rate_per_second" split_words:"true"`
	Burst           int           `yaml:"burst" split_words:"true"`
	BreakerFailures uint32        `yaml:"breaker_failures" split_words:"true"`
	BreakerTimeout  time.Duration `yaml:"breaker_timeout" split_words:"true"`
}

type DisplayConfig struct {
	Timezone      string        `yaml:"timezone" split_words:"true"`
	Locale        string        `yaml:"locale" split_words:"true"`
	ThemeInterval time.Duration `yaml:"theme_interval" split_words:"true"`
}

type LogConfig struct {
	Level string `yaml:"level" split_words:"true"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn" split_words:"true"`
	Debug bool   `yaml:"debug" split_words:"true"`
}

// Default returns the configuration used when neither a file nor the environment set a value.
func Default() Config {
	return Config{
		App: AppConfig{
			Name:    "weather-card",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		OpenWeatherMap: OpenWeatherMapConfig{
			BaseURL:         "https://api.openweathermap.org/data/2.5",
			Timeout:         10 * time.Second,
			RatePerSecond:   1,
			Burst:           2,
			BreakerFailures: 5,
			BreakerTimeout:  time.Minute,
		},
		Display: DisplayConfig{
			Timezone:      "Local",
			Locale:        "en_US",
			ThemeInterval: time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// NewConfig loads the file named by CONFIG_PATH (default config/config.yaml).
func NewConfig() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = DefaultPath
	}
	return Load(path)
}

// Load builds the configuration from defaults, then the YAML file at path if it
// exists, then .env, then the process environment. Later sources win.
func Load(path string) (*Config, error) {
	cnf := Default()

	if yamlData, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(yamlData, &cnf); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// a missing .env is fine
	_ = godotenv.Load()

	if err := envconfig.Process("", &cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	if err := cnf.Validate(); err != nil {
		return nil, err
	}

	return &cnf, nil
}

func (c *Config) Validate() error {
	switch {
	case c.App.Name == "":
		return errors.New("app.name is required")
	case c.Server.Port == "":
		return errors.New("server.port is required")
	case c.OpenWeatherMap.BaseURL == "":
		return errors.New("openweathermap.base_url is required")
	case c.OpenWeatherMap.Timeout <= 0:
		return errors.New("openweathermap.timeout must be positive")
	case c.OpenWeatherMap.RatePerSecond <= 0:
		return errors.New("openweathermap.rate_per_second must be positive")
	case c.OpenWeatherMap.Burst < 1:
		return errors.New("openweathermap.burst must be at least 1")
	case c.Display.ThemeInterval <= 0:
		return errors.New("display.theme_interval must be positive")
	}

	if _, err := c.DisplayLocation(); err != nil {
		return fmt.Errorf("display.timezone: %w", err)
	}

	return nil
}

// DisplayLocation resolves the timezone used for clock display and day boundaries.
func (c *Config) DisplayLocation() (*time.Location, error) {
	return time.LoadLocation(c.Display.Timezone)
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
