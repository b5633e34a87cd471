package appconfig

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
	"pkt.systems/toterm/internal/persist"
)

// Load reads configuration from the provided path. If path is empty, uses DefaultConfigPath.
// A missing file yields the defaults.
func Load(path string) (Config, error) {
	return LoadFs(afero.NewOsFs(), path)
}

// LoadFs is Load against an explicit filesystem.
func LoadFs(fs afero.Fs, path string) (Config, error) {
	path, err := ResolvePath(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := DefaultConfig()
	if err != nil {
		return Config{}, err
	}

	v := newViper(fs, cfg)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return Config{}, err
	}
	if exists {
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, err
			}
		} else {
			if !v.IsSet("config_version") {
				return Config{}, fmt.Errorf("config_version is required; expected %d", CurrentConfigVersion)
			}
			if v.GetInt("config_version") != CurrentConfigVersion {
				return Config{}, fmt.Errorf("unsupported config_version %d; expected %d", v.GetInt("config_version"), CurrentConfigVersion)
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	expandConfigEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Set returns a copy of cfg with key (dotted, e.g. "terminal.history_limit")
// set from its string form. Unknown keys and values that fail validation are
// rejected.
func Set(cfg Config, key, value string) (Config, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if !isKnownKey(key) {
		return Config{}, fmt.Errorf("unknown config key %q", key)
	}
	if key == "config_version" {
		return Config{}, fmt.Errorf("config_version cannot be changed")
	}
	v := newViper(afero.NewMemMapFs(), cfg)
	v.Set(key, value)
	var out Config
	if err := v.Unmarshal(&out); err != nil {
		return Config{}, fmt.Errorf("set %s: %w", key, err)
	}
	expandConfigEnv(&out)
	if err := out.Validate(); err != nil {
		return Config{}, err
	}
	return out, nil
}

// Keys returns every settable config key in sorted order.
func Keys() []string {
	out := make([]string, 0, len(knownKeys))
	for _, key := range knownKeys {
		if key == "config_version" {
			continue
		}
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

var knownKeys = []string{
	"config_version",
	"language",
	"data_dir",
	"appearance.font_family",
	"appearance.font_size_pt",
	"appearance.background_color",
	"appearance.text_color",
	"terminal.custom_prompt",
	"terminal.show_time_in_prompt",
	"terminal.show_path_in_prompt",
	"terminal.history_limit",
	"advanced.enable_auto_complete",
	"advanced.startup_command",
	"advanced.enable_command_logging",
	"advanced.log_file_path",
}

func isKnownKey(key string) bool {
	for _, known := range knownKeys {
		if known == key {
			return true
		}
	}
	return false
}

func newViper(fs afero.Fs, cfg Config) *viper.Viper {
	v := viper.New()
	v.SetFs(fs)
	v.SetDefault("config_version", cfg.ConfigVersion)
	v.SetDefault("language", cfg.Language)
	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("appearance.font_family", cfg.Appearance.FontFamily)
	v.SetDefault("appearance.font_size_pt", cfg.Appearance.FontSizePt)
	v.SetDefault("appearance.background_color", cfg.Appearance.BackgroundColor)
	v.SetDefault("appearance.text_color", cfg.Appearance.TextColor)
	v.SetDefault("terminal.custom_prompt", cfg.Terminal.CustomPrompt)
	v.SetDefault("terminal.show_time_in_prompt", cfg.Terminal.ShowTimeInPrompt)
	v.SetDefault("terminal.show_path_in_prompt", cfg.Terminal.ShowPathInPrompt)
	v.SetDefault("terminal.history_limit", cfg.Terminal.HistoryLimit)
	v.SetDefault("advanced.enable_auto_complete", cfg.Advanced.EnableAutoComplete)
	v.SetDefault("advanced.startup_command", cfg.Advanced.StartupCommand)
	v.SetDefault("advanced.enable_command_logging", cfg.Advanced.EnableCommandLogging)
	v.SetDefault("advanced.log_file_path", cfg.Advanced.LogFilePath)
	return v
}

// ResolvePath expands path, or returns DefaultConfigPath when it is empty.
func ResolvePath(path string) (string, error) {
	if path != "" {
		return expandEnv(path), nil
	}
	return DefaultConfigPath()
}

func expandConfigEnv(cfg *Config) {
	if cfg == nil {
		return
	}
	cfg.DataDir = expandEnv(cfg.DataDir)
	cfg.Advanced.LogFilePath = expandEnv(cfg.Advanced.LogFilePath)
}

func expandEnv(value string) string {
	if value == "" {
		return value
	}
	if value == "~" || strings.HasPrefix(value, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			value = home + value[1:]
		}
	}
	return os.Expand(value, func(key string) string {
		if key == "" {
			return ""
		}
		if val, ok := lookupEnv(key); ok {
			return val
		}
		return "$" + key
	})
}

func lookupEnv(key string) (string, bool) {
	if val, ok := os.LookupEnv(key); ok {
		return val, true
	}
	switch key {
	case "UID":
		return fmt.Sprintf("%d", os.Getuid()), true
	case "GID":
		return fmt.Sprintf("%d", os.Getgid()), true
	}
	return "", false
}

// Save writes cfg to path atomically.
func Save(path string, cfg Config) (string, error) {
	return SaveFs(afero.NewOsFs(), path, cfg)
}

// SaveFs is Save against an explicit filesystem.
func SaveFs(fs afero.Fs, path string, cfg Config) (string, error) {
	path, err := ResolvePath(path)
	if err != nil {
		return "", err
	}
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	cfg.ConfigVersion = CurrentConfigVersion
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	if err := persist.WriteFileAtomic(fs, path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// WriteDefault writes the default config to the target path.
func WriteDefault(path string, overwrite bool) (string, error) {
	fs := afero.NewOsFs()
	path, err := ResolvePath(path)
	if err != nil {
		return "", err
	}
	if !overwrite {
		if exists, _ := afero.Exists(fs, path); exists {
			return "", fmt.Errorf("config already exists at %s", path)
		}
	}
	cfg, err := DefaultConfig()
	if err != nil {
		return "", err
	}
	return SaveFs(fs, path, cfg)
}
