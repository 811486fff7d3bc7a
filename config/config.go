package config

import (
	"fmt"
	"os"
	"strconv"

	"gomoku/game"
	"gomoku/meta"

	"github.com/joho/godotenv"
)

type Config struct {
	Rules        game.Rules
	CenterRadius int // -1 derives the radius from the board size
	Port         string
	LogLevel     string
	Games        int
	OutputDir    string
	Seed         uint64
}

// Load reads GOMOKU_* environment variables, falling back to the defaults in meta.
func Load() (*Config, error) {
	cfg := &Config{
		Rules: game.Rules{
			BoardSize: GetEnvAsInt("GOMOKU_BOARD_SIZE", meta.BOARD_SIZE),
			WinSize:   GetEnvAsInt("GOMOKU_WIN_SIZE", meta.WIN_SIZE),
		},
		CenterRadius: GetEnvAsInt("GOMOKU_CENTER_RADIUS", -1),
		Port:         GetEnv("GOMOKU_PORT", meta.AGENT_PORT),
		LogLevel:     GetEnv("GOMOKU_LOG_LEVEL", "info"),
		Games:        GetEnvAsInt("GOMOKU_GAMES", meta.GAMES_PER_MATCHUP),
		OutputDir:    GetEnv("GOMOKU_OUTPUT_DIR", meta.OUTPUT_DIR),
		Seed:         GetEnvAsUint64("GOMOKU_SEED", 1),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads the first env file that exists; variables already set in
// the environment win. It reports whether a file was loaded.
func LoadDotEnv(files ...string) bool {
	for _, file := range files {
		if err := godotenv.Load(file); err == nil {
			return true
		}
	}
	return false
}

func (c *Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if c.Games <= 0 {
		return fmt.Errorf("invalid config: games %d must be positive", c.Games)
	}
	if c.CenterRadius < -1 {
		return fmt.Errorf("invalid config: center radius %d", c.CenterRadius)
	}
	return nil
}

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func GetEnvAsUint64(key string, defaultValue uint64) uint64 {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseUint(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}
