package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/harrisonrobin/taskbar/pkg/errors"
	"github.com/harrisonrobin/taskbar/pkg/signals"
)

const (
	xdgAppName = "taskbar"
	configFile = "config.yaml"
	envPrefix  = "TASKBAR"
)

// Config controls one run. The zero-configuration defaults notify "waybar"
// with SIGRTMIN+8 and write into the user cache directory.
type Config struct {
	// CacheDir holds the summary and log files (default: os.UserCacheDir)
	CacheDir string `mapstructure:"cache_dir"`
	// OutputFile is the summary file name inside CacheDir
	OutputFile string `mapstructure:"output_file"`
	// LogFile is the log file name inside CacheDir
	LogFile string `mapstructure:"log_file"`
	// LogLevel is one of DEBUG, INFO, WARN, ERROR
	LogLevel string `mapstructure:"log_level"`
	// ProcessName is the exact command name of the processes to notify
	ProcessName string `mapstructure:"process_name"`
	// SignalOffset is added to SIGRTMIN; Waybar's `signal: 8` means 8
	SignalOffset int `mapstructure:"signal_offset"`
	// TaskBinary is the Taskwarrior executable
	TaskBinary string `mapstructure:"task_binary"`
	// SignalMin and SignalMax are the platform's SIGRTMIN and SIGRTMAX
	// (glibc: 34 and 64; musl: 35 and 64)
	SignalMin int `mapstructure:"signal_min"`
	SignalMax int `mapstructure:"signal_max"`
	// Debug also prints the summary, indented, to stdout
	Debug bool `mapstructure:"debug"`

	// cacheDirErr is why the default cache directory could not be resolved
	cacheDirErr error
}

// setDefaults registers the defaults and returns the error, if any, from
// resolving the user cache directory.
func setDefaults(v *viper.Viper) error {
	cacheDir, err := os.UserCacheDir()
	v.SetDefault("cache_dir", cacheDir)
	v.SetDefault("output_file", "waybar-tasks.json")
	v.SetDefault("log_file", "waybar-task-hook.log")
	v.SetDefault("log_level", "info")
	v.SetDefault("process_name", "waybar")
	v.SetDefault("signal_offset", 8)
	v.SetDefault("task_binary", "task")
	v.SetDefault("signal_min", signals.DefaultBounds.Min)
	v.SetDefault("signal_max", signals.DefaultBounds.Max)
	v.SetDefault("debug", false)
	return err
}

// GetConfigPath returns the optional config file location.
func GetConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, xdgAppName, configFile), nil
}

// Load reads the config file at GetConfigPath, if any, on top of the
// defaults, then applies TASKBAR_* environment overrides.
func Load() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		path = ""
	}
	return LoadFile(path)
}

// LoadFile is Load with an explicit config file. A missing file, or an empty
// path, leaves the defaults in place.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	cacheDirErr := setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, &errors.ConfigError{Op: "read " + path, Err: err}
			}
		} else if !os.IsNotExist(err) {
			return nil, &errors.ConfigError{Op: "stat " + path, Err: err}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &errors.ConfigError{Op: "decode", Err: err}
	}
	cfg.cacheDirErr = cacheDirErr
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations a run cannot start with. The signal
// offset is range-checked later, against the platform's bounds.
func (c *Config) Validate() error {
	switch {
	case c.CacheDir == "":
		return &errors.ConfigError{Op: "failed to determine cache directory", Err: c.cacheDirErr}
	case c.OutputFile == "":
		return &errors.ConfigError{Op: "output_file must not be empty"}
	case c.LogFile == "":
		return &errors.ConfigError{Op: "log_file must not be empty"}
	case c.ProcessName == "":
		return &errors.ConfigError{Op: "process_name must not be empty"}
	case c.TaskBinary == "":
		return &errors.ConfigError{Op: "task_binary must not be empty"}
	case c.SignalMin < 1 || c.SignalMax <= c.SignalMin:
		return &errors.ConfigError{Op: fmt.Sprintf("invalid realtime signal range %d..%d", c.SignalMin, c.SignalMax)}
	}
	return nil
}

// Bounds is the realtime signal window the offset is resolved against.
func (c *Config) Bounds() signals.Bounds {
	return signals.Bounds{Min: c.SignalMin, Max: c.SignalMax}
}

// OutputPath is the absolute path of the summary file.
func (c *Config) OutputPath() string {
	return filepath.Join(c.CacheDir, c.OutputFile)
}

// LogPath is the absolute path of the log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.CacheDir, c.LogFile)
}
