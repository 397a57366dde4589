package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/AmineOuatt/othello-game/othello"
)

type Config struct {
	GhostMode        bool   `json:"ghost_mode"`
	AiDepth          int    `json:"ai_depth"`
	HintDepth        int    `json:"hint_depth"`
	AiMoveDelayMs    int    `json:"ai_move_delay_ms"`
	AiLogSearchStats bool   `json:"ai_log_search_stats"`
	TickIntervalMs   int    `json:"tick_interval_ms"`
	ListenAddr       string `json:"listen_addr"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		GhostMode: false,

		// Difficulty 1/3/5 maps to easy/medium/hard; medium is the default.
		AiDepth:   3,
		HintDepth: 4,

		// Keeps AI vs AI games watchable in the browser.
		AiMoveDelayMs: 250,

		AiLogSearchStats: false,
		TickIntervalMs:   50,
		ListenAddr:       ":8080",
	}
}

func (c Config) Validate() error {
	if c.AiDepth <= 0 {
		return fmt.Errorf("ai_depth %d: %w", c.AiDepth, othello.ErrInvalidDepth)
	}
	if c.HintDepth <= 0 {
		return fmt.Errorf("hint_depth %d: %w", c.HintDepth, othello.ErrInvalidDepth)
	}
	if c.AiMoveDelayMs < 0 {
		return fmt.Errorf("ai_move_delay_ms must not be negative")
	}
	if c.TickIntervalMs <= 0 {
		return fmt.Errorf("tick_interval_ms must be positive")
	}
	return nil
}

// LoadConfigFile overlays the JSON object in path on top of DefaultConfig, so
// the file only needs the fields it changes.
func LoadConfigFile(path string) (Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}
