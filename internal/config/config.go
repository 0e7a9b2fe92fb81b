package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gookit/validate"
	"github.com/spf13/viper"
)

// FinalSlideType selects what the synthesized final slide shows.
type FinalSlideType string

const (
	FinalSlideBlack FinalSlideType = "black"
	FinalSlideText  FinalSlideType = "text"
	FinalSlideImage FinalSlideType = "image"
)

// Settings is the live kiosk configuration. The root TUI model owns a single
// copy for the lifetime of the process and replaces it wholesale when the
// settings form is saved. There is no durable storage.
type Settings struct {
	AutoStartDay     int `mapstructure:"auto_start_day" validate:"min:0|max:6"`     // 0 = Sunday
	AutoStartHour    int `mapstructure:"auto_start_hour" validate:"min:0|max:23"`
	AutoStartMinute  int `mapstructure:"auto_start_minute" validate:"min:0|max:59"`
	CountdownMinutes int `mapstructure:"countdown_minutes" validate:"min:1|max:60"`

	FinalSlideType    FinalSlideType `mapstructure:"final_slide_type" validate:"in:black,text,image"`
	FinalSlideContent string         `mapstructure:"final_slide_content"`
}

// DefaultSettings matches the club's usual program: Wednesday 6 PM with a
// five minute countdown and a plain black final slide.
func DefaultSettings() Settings {
	return Settings{
		AutoStartDay:     3,
		AutoStartHour:    18,
		AutoStartMinute:  0,
		CountdownMinutes: 5,
		FinalSlideType:   FinalSlideBlack,
	}
}

// Clamp forces every numeric field into its valid range and the slide type
// onto a known value. Inputs are clamped before acceptance rather than
// rejected so the kiosk never ends up with an unusable configuration.
func (s *Settings) Clamp() {
	s.AutoStartDay = clampInt(s.AutoStartDay, 0, 6)
	s.AutoStartHour = clampInt(s.AutoStartHour, 0, 23)
	s.AutoStartMinute = clampInt(s.AutoStartMinute, 0, 59)
	s.CountdownMinutes = clampInt(s.CountdownMinutes, 1, 60)

	switch s.FinalSlideType {
	case FinalSlideBlack, FinalSlideText, FinalSlideImage:
	default:
		s.FinalSlideType = FinalSlideBlack
	}
}

func (s Settings) Validate() error {
	v := validate.Struct(s)
	if !v.Validate() {
		return v.Errors.OneError()
	}
	return nil
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// LoggerConfig controls the file logger. The TUI owns the terminal, so logs
// always go to a file.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"in:trace,debug,info,warn,error"`
	File  string `mapstructure:"file"`
}

// Config is everything read at startup: the initial settings, an optional
// custom deck file, and logger options.
type Config struct {
	Settings Settings     `mapstructure:"settings"`
	DeckPath string       `mapstructure:"deck_path"`
	Logger   LoggerConfig `mapstructure:"logger"`
}

// Load reads the YAML config at path, or the default location when path is
// empty. A missing default config file is not an error: the kiosk must
// always come up, so defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	for key, val := range defaults() {
		v.SetDefault(key, val)
	}

	v.BindEnv("logger.level", "CLUBKIOSK_LOG_LEVEL")
	v.BindEnv("logger.file", "CLUBKIOSK_LOG_FILE")
	v.BindEnv("deck_path", "CLUBKIOSK_DECK_PATH")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		dir, err := DefaultConfigDir()
		if err == nil {
			v.AddConfigPath(dir)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	conf.Settings.Clamp()
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c Config) Validate() error {
	if err := c.Settings.Validate(); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	v := validate.Struct(c.Logger)
	if !v.Validate() {
		return fmt.Errorf("logger: %w", v.Errors.OneError())
	}
	return nil
}

func defaults() map[string]any {
	s := DefaultSettings()
	return map[string]any{
		"settings.auto_start_day":      s.AutoStartDay,
		"settings.auto_start_hour":     s.AutoStartHour,
		"settings.auto_start_minute":   s.AutoStartMinute,
		"settings.countdown_minutes":   s.CountdownMinutes,
		"settings.final_slide_type":    string(s.FinalSlideType),
		"settings.final_slide_content": s.FinalSlideContent,
		"logger.level":                 "info",
	}
}

// DefaultConfigDir returns ~/.config/clubkiosk
func DefaultConfigDir() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "clubkiosk"), nil
}

// DefaultLogPath returns ~/.config/clubkiosk/clubkiosk.log
func DefaultLogPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "clubkiosk.log"), nil
}
