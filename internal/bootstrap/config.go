package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"

	"gogame/internal/domain/board"
)

const (
	minBoardSize = 2
	maxBoardSize = 19
)

type Config struct {
	ServerPort     string `mapstructure:"SERVER_PORT"`
	IsLocalCors    bool   `mapstructure:"LOCAL_CORS"`
	BoardSize      int    `mapstructure:"BOARD_SIZE"`
	PlayerColor    string `mapstructure:"PLAYER_COLOR"`
	BotSeed        int64  `mapstructure:"BOT_SEED"`
	BotAutoplay    bool   `mapstructure:"BOT_AUTOPLAY"`
	LogDevelopment bool   `mapstructure:"LOG_DEVELOPMENT"`
}

// Setup reads cfgPath if it exists and lets environment variables override it.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("SERVER_PORT", ":8080")
	v.SetDefault("LOCAL_CORS", false)
	v.SetDefault("BOARD_SIZE", 9)
	v.SetDefault("PLAYER_COLOR", "black")
	v.SetDefault("BOT_SEED", 0)
	v.SetDefault("BOT_AUTOPLAY", true)
	v.SetDefault("LOG_DEVELOPMENT", false)
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		err := v.ReadInConfig()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := ValidateBoardSize(c.BoardSize); err != nil {
		return err
	}
	if _, err := board.ParseStone(c.PlayerColor); err != nil {
		return fmt.Errorf("PLAYER_COLOR: %w", err)
	}
	return nil
}

// PlayerStone is the configured human color. Validate has already checked it.
func (c *Config) PlayerStone() board.Stone {
	s, err := board.ParseStone(c.PlayerColor)
	if err != nil {
		return board.Black
	}
	return s
}

func ValidateBoardSize(size int) error {
	if size < minBoardSize || size > maxBoardSize {
		return fmt.Errorf("board size %d outside %d..%d", size, minBoardSize, maxBoardSize)
	}
	return nil
}
