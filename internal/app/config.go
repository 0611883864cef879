package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"weekgrid/internal/domain"
	"weekgrid/internal/grid"
	"weekgrid/internal/source"
)

// Config holds runtime options.
type Config struct {
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`

	StartDay  string   `mapstructure:"start_day"` // empty: first calendar day
	Days      []string `mapstructure:"days"`
	Policy    string   `mapstructure:"policy"`
	CellWidth int      `mapstructure:"cell_width"`

	GeminiAPIKey      string  `mapstructure:"gemini_api_key"`
	GeminiModel       string  `mapstructure:"gemini_model"`
	GeminiTemperature float32 `mapstructure:"gemini_temperature"`
	GeminiMaxTokens   int32   `mapstructure:"gemini_max_tokens"`

	PDFFont     string  `mapstructure:"pdf_font"`
	PDFFontSize float64 `mapstructure:"pdf_font_size"`
}

// LoadConfig reads configuration. With path set, that file must exist;
// otherwise weekgrid.yaml is looked up in the working directory and in
// $HOME/.config/weekgrid. Environment variables use the WEEKGRID_ prefix,
// and GEMINI_API_KEY is honoured as is. A .env file in the working directory
// is loaded first when present.
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("weekgrid")
	v.AutomaticEnv()
	_ = v.BindEnv("gemini_api_key", "WEEKGRID_GEMINI_API_KEY", "GEMINI_API_KEY")

	v.SetDefault("env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("start_day", "")
	v.SetDefault("days", []string(domain.WorkWeek))
	v.SetDefault("policy", grid.Coarse.String())
	v.SetDefault("cell_width", grid.DefaultCellWidth)
	v.SetDefault("gemini_model", source.DefaultGeminiModel)
	v.SetDefault("gemini_temperature", 0.1)
	v.SetDefault("gemini_max_tokens", 1000)
	v.SetDefault("pdf_font", "")
	v.SetDefault("pdf_font_size", 9)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("weekgrid")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "weekgrid"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// IsProduction reports whether the production logger should be used.
func (c Config) IsProduction() bool { return c.Env == "production" }

// Calendar returns the configured day set.
func (c Config) Calendar() (domain.Calendar, error) {
	if len(c.Days) == 0 {
		return domain.WorkWeek, nil
	}
	return domain.NewCalendar(c.Days)
}

// RenderOptions builds grid options from the configuration.
func (c Config) RenderOptions() (grid.Options, error) {
	cal, err := c.Calendar()
	if err != nil {
		return grid.Options{}, err
	}
	policy, err := grid.ParsePolicy(c.Policy)
	if err != nil {
		return grid.Options{}, err
	}
	// Fail on a bad start day here rather than after a model round trip.
	if _, err := cal.Rotate(c.StartDay); err != nil {
		return grid.Options{}, err
	}
	return grid.Options{
		Calendar: cal,
		StartDay: c.StartDay,
		Policy:   policy,
		Glyphs:   grid.BlockGlyphs(c.CellWidth),
	}, nil
}

// Gemini returns the model parameters.
func (c Config) Gemini() source.GeminiConfig {
	return source.GeminiConfig{
		APIKey:          c.GeminiAPIKey,
		Model:           c.GeminiModel,
		Temperature:     c.GeminiTemperature,
		MaxOutputTokens: c.GeminiMaxTokens,
	}
}
