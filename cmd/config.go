package cmd

import (
	"fmt"

	"gql2csv/internal/export"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogSettings struct {
	Level string `mapstructure:"level"`
}

type CSVSettings struct {
	BoolStyle string `mapstructure:"bool_style"`
}

type BatchSettings struct {
	Jobs   int    `mapstructure:"jobs"`
	OutDir string `mapstructure:"out_dir"`
}

type AppSettings struct {
	Log   LogSettings   `mapstructure:"log"`
	CSV   CSVSettings   `mapstructure:"csv"`
	Batch BatchSettings `mapstructure:"batch"`
}

// BoolStyle returns the parsed csv.bool_style setting.
func (s *AppSettings) BoolStyle() export.BoolStyle {
	style, _ := export.ParseBoolStyle(s.CSV.BoolStyle)
	return style
}

// LoadSettings returns the merged flag > env > config > default settings.
func LoadSettings() (*AppSettings, error) {
	var settings AppSettings
	if err := viper.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if _, err := zapcore.ParseLevel(settings.Log.Level); err != nil {
		return nil, fmt.Errorf("invalid log.level %q: %w", settings.Log.Level, err)
	}
	if _, err := export.ParseBoolStyle(settings.CSV.BoolStyle); err != nil {
		return nil, fmt.Errorf("invalid csv.bool_style: %w", err)
	}
	if settings.Batch.Jobs < 1 {
		return nil, fmt.Errorf("batch.jobs must be at least 1, got %d", settings.Batch.Jobs)
	}

	return &settings, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(lvl)
	return config.Build()
}
