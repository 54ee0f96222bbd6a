package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/suapapa/lotto645/internal/lotto"
)

type Prompt struct {
	Retrieve string `yaml:"retrieve"`
	System   string `yaml:"system"`
	User     string `yaml:"user_fmt"`
}

type AIConfig struct {
	Enabled     bool   `yaml:"enabled" env:"AI_ENABLED"`
	Model       string `yaml:"model" env:"AI_MODEL" env-default:"googleai/gemini-2.0-flash"`
	PromptFile  string `yaml:"prompt_file" env:"AI_PROMPT_FILE" env-default:".prompt.yaml"`
	RecentDraws int    `yaml:"recent_draws" env:"AI_RECENT_DRAWS" env-default:"50"`
}

type Config struct {
	Environment      string   `yaml:"environment" env:"ENVIRONMENT" env-default:"development"`
	TelegramAPIToken string   `yaml:"tg_api_token" env:"TG_API_TOKEN"`
	ChatIDs          []int64  `yaml:"tg_chat_ids" env:"TG_CHAT_IDS"` // empty serves every chat
	HistoryCSV       string   `yaml:"history_csv" env:"LOTTO_HISTORY_CSV"`
	LenientParse     bool     `yaml:"lenient_parse" env:"LOTTO_LENIENT_PARSE"`
	Seed             uint64   `yaml:"seed" env:"LOTTO_SEED"`
	MetricsAddr      string   `yaml:"metrics_addr" env:"METRICS_ADDR"`
	AI               AIConfig `yaml:"ai"`
	Prompt           *Prompt  `yaml:"-"`
}

// loadConfig decodes the YAML file at fp, if there is one, and then applies
// environment overrides and defaults.
func loadConfig(fp string) (*Config, error) {
	c := &Config{}
	if fp != "" {
		f, err := os.Open(fp)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to open config file: %w", err)
		default:
			defer f.Close()
			if err := yaml.NewDecoder(f).Decode(c); err != nil {
				return nil, fmt.Errorf("failed to decode config file: %w", err)
			}
		}
	}

	if err := cleanenv.ReadEnv(c); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if c.AI.RecentDraws < 1 {
		return nil, fmt.Errorf("ai.recent_draws must be positive, got %d", c.AI.RecentDraws)
	}

	if c.AI.Enabled {
		pt, err := loadPrompt(c.AI.PromptFile)
		if err != nil {
			return nil, err
		}
		c.Prompt = pt
	}

	return c, nil
}

func loadPrompt(pp string) (*Prompt, error) {
	p, err := os.Open(pp)
	if err != nil {
		return nil, fmt.Errorf("failed to open prompt file: %w", err)
	}
	defer p.Close()

	pt := &Prompt{}
	if err := yaml.NewDecoder(p).Decode(pt); err != nil {
		return nil, fmt.Errorf("failed to decode prompt file: %w", err)
	}
	if pt.System == "" || pt.User == "" {
		return nil, fmt.Errorf("prompt file %s needs system and user_fmt", pp)
	}
	return pt, nil
}

// validateBot checks what only the bot needs.
func (c *Config) validateBot() error {
	if c.TelegramAPIToken == "" {
		return fmt.Errorf("missing Telegram API token")
	}
	return nil
}

func (c *Config) compareOptions() []lotto.CompareOption {
	if c.LenientParse {
		return []lotto.CompareOption{lotto.WithLenientParse()}
	}
	return nil
}
