package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AI     AIConfig       `yaml:"ai"`
	Board  *BoardConfig   `yaml:"board,omitempty"`
	Editor EditorDefaults `yaml:"editor"`

	LogLevel string `yaml:"log_level,omitempty"`
}

// AIConfig selects the provider used for optimize, variations and suggestions
type AIConfig struct {
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key,omitempty"`
	Model    string `yaml:"model,omitempty"`
	BaseURL  string `yaml:"base_url,omitempty"`
}

// BoardConfig is a stored board session
type BoardConfig struct {
	URL             string    `yaml:"url"`
	Token           string    `yaml:"token"`
	TokenObtainedAt time.Time `yaml:"token_obtained_at"`
	UserEmail       string    `yaml:"user_email"`
	UserName        string    `yaml:"user_name"`
}

type EditorDefaults struct {
	TargetModel   string   `yaml:"target_model,omitempty"`
	AspectRatio   string   `yaml:"aspect_ratio,omitempty"`
	AvoidKeywords []string `yaml:"avoid_keywords,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		AI: AIConfig{
			Provider: ProviderNone,
		},
	}
}

func ConfigDir() (string, error) {
	if dir := os.Getenv("PIX3L_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "pix3lprompt"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads the config file. It returns nil, nil when no file exists yet.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.AI.Provider == "" {
		cfg.AI.Provider = ProviderNone
	}

	return &cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// ApplyEnv loads a .env file when present and lets PIX3L_* variables
// override the AI settings and log level.
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("PIX3L_PROVIDER"); v != "" {
		c.AI.Provider = strings.ToLower(v)
	}
	if v := os.Getenv("PIX3L_API_KEY"); v != "" {
		c.AI.APIKey = v
	}
	if v := os.Getenv("PIX3L_MODEL"); v != "" {
		c.AI.Model = v
	}
	if v := os.Getenv("PIX3L_BASE_URL"); v != "" {
		c.AI.BaseURL = v
	}
	if v := os.Getenv("PIX3L_LOG_LEVEL"); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
}
