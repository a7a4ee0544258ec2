package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ReminderConfig struct {
	Enabled  bool     `mapstructure:"enabled"`
	Time     string   `mapstructure:"time"`     // "17:00"
	Workdays []string `mapstructure:"workdays"` // ["Mon","Tue","Wed","Thu","Fri"]
	Holidays []string `mapstructure:"holidays"` // ["2025-01-26", "2025-08-15"]
	Timezone string   `mapstructure:"timezone"` // e.g. "Asia/Kolkata" (optional)
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"` // empty: glassnotes.log in the data dir
}

type GestureConfig struct {
	TouchSlop     float64 `mapstructure:"touch_slop"`
	SwipeDistance float64 `mapstructure:"swipe_distance"`
	SwipeVelocity float64 `mapstructure:"swipe_velocity"`
}

type CaptureConfig struct {
	Mode    string        `mapstructure:"mode"`    // prompt | command
	Command []string      `mapstructure:"command"` // argv of an external recognizer
	Timeout time.Duration `mapstructure:"timeout"`
}

type NotifyConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type Config struct {
	Theme    string         `mapstructure:"theme"`
	DBPath   string         `mapstructure:"db_path"`
	Log      LogConfig      `mapstructure:"log"`
	Gesture  GestureConfig  `mapstructure:"gesture"`
	Capture  CaptureConfig  `mapstructure:"capture"`
	Notify   NotifyConfig   `mapstructure:"notify"`
	Reminder ReminderConfig `mapstructure:"reminder"`
}

const (
	CaptureModePrompt  = "prompt"
	CaptureModeCommand = "command"
)

func Default() Config {
	return Config{
		Theme: "default",
		Log:   LogConfig{Level: "info"},
		Gesture: GestureConfig{
			TouchSlop:     8,
			SwipeDistance: 100,
			SwipeVelocity: 100,
		},
		Capture: CaptureConfig{
			Mode:    CaptureModePrompt,
			Timeout: 15 * time.Second,
		},
		Notify: NotifyConfig{Enabled: false},
		Reminder: ReminderConfig{
			Enabled:  false,
			Time:     "17:00",
			Workdays: []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
			Holidays: []string{},
			Timezone: "",
		},
	}
}

// DefaultPath is ~/.config/glassnotes/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "glassnotes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file at path (DefaultPath when empty). A missing
// file is not an error. GLASSNOTES_* environment variables override file
// values, e.g. GLASSNOTES_LOG_LEVEL=debug.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetEnvPrefix("glassnotes")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// defaults
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("db_path", cfg.DBPath)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("gesture.touch_slop", cfg.Gesture.TouchSlop)
	v.SetDefault("gesture.swipe_distance", cfg.Gesture.SwipeDistance)
	v.SetDefault("gesture.swipe_velocity", cfg.Gesture.SwipeVelocity)
	v.SetDefault("capture.mode", cfg.Capture.Mode)
	v.SetDefault("capture.command", cfg.Capture.Command)
	v.SetDefault("capture.timeout", cfg.Capture.Timeout)
	v.SetDefault("notify.enabled", cfg.Notify.Enabled)
	v.SetDefault("reminder.enabled", cfg.Reminder.Enabled)
	v.SetDefault("reminder.time", cfg.Reminder.Time)
	v.SetDefault("reminder.workdays", cfg.Reminder.Workdays)
	v.SetDefault("reminder.holidays", cfg.Reminder.Holidays)
	v.SetDefault("reminder.timezone", cfg.Reminder.Timezone)

	if err := v.ReadInConfig(); err != nil {
		// ok if missing
		if _, statErr := os.Stat(path); statErr == nil {
			return cfg, fmt.Errorf("config read: %w", err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}

	// normalize workdays
	for i, d := range cfg.Reminder.Workdays {
		cfg.Reminder.Workdays[i] = normalizeDay(d)
	}
	cfg.Capture.Mode = strings.ToLower(strings.TrimSpace(cfg.Capture.Mode))
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the app cannot run with.
func (c Config) Validate() error {
	switch c.Capture.Mode {
	case CaptureModePrompt:
	case CaptureModeCommand:
		if len(c.Capture.Command) == 0 {
			return fmt.Errorf("capture.mode is %q but capture.command is empty", c.Capture.Mode)
		}
	default:
		return fmt.Errorf("unknown capture.mode %q (want prompt|command)", c.Capture.Mode)
	}
	if _, err := time.Parse("15:04", c.Reminder.Time); c.Reminder.Enabled && err != nil {
		return fmt.Errorf("reminder.time %q: want HH:MM", c.Reminder.Time)
	}
	return nil
}

func (c Config) Location() *time.Location {
	if tz := strings.TrimSpace(c.Reminder.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}

func normalizeDay(d string) string {
	d = strings.ToLower(strings.TrimSpace(d))
	if len(d) > 3 {
		d = d[:3]
	}
	if d == "" {
		return d
	}
	return strings.ToUpper(d[:1]) + d[1:]
}
