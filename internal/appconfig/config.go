package appconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"pkt.systems/toterm/schema"
)

// Config is the top-level application configuration.
type Config struct {
	ConfigVersion int              `mapstructure:"config_version" yaml:"config_version"`
	Language      string           `mapstructure:"language" yaml:"language"`
	DataDir       string           `mapstructure:"data_dir" yaml:"data_dir"`
	Appearance    AppearanceConfig `mapstructure:"appearance" yaml:"appearance"`
	Terminal      TerminalConfig   `mapstructure:"terminal" yaml:"terminal"`
	Advanced      AdvancedConfig   `mapstructure:"advanced" yaml:"advanced"`
}

// CurrentConfigVersion marks the supported config version.
const CurrentConfigVersion = 1

// AppearanceConfig controls fonts and colors.
type AppearanceConfig struct {
	FontFamily      string `mapstructure:"font_family" yaml:"font_family"`
	FontSizePt      int    `mapstructure:"font_size_pt" yaml:"font_size_pt"`
	BackgroundColor string `mapstructure:"background_color" yaml:"background_color"`
	TextColor       string `mapstructure:"text_color" yaml:"text_color"`
}

// TerminalConfig controls the prompt and history.
type TerminalConfig struct {
	CustomPrompt     string `mapstructure:"custom_prompt" yaml:"custom_prompt"`
	ShowTimeInPrompt bool   `mapstructure:"show_time_in_prompt" yaml:"show_time_in_prompt"`
	ShowPathInPrompt bool   `mapstructure:"show_path_in_prompt" yaml:"show_path_in_prompt"`
	HistoryLimit     int    `mapstructure:"history_limit" yaml:"history_limit"`
}

// AdvancedConfig controls completion, startup and command logging.
type AdvancedConfig struct {
	EnableAutoComplete   bool   `mapstructure:"enable_auto_complete" yaml:"enable_auto_complete"`
	StartupCommand       string `mapstructure:"startup_command" yaml:"startup_command"`
	EnableCommandLogging bool   `mapstructure:"enable_command_logging" yaml:"enable_command_logging"`
	LogFilePath          string `mapstructure:"log_file_path" yaml:"log_file_path"`
}

const (
	MinFontSize     = 8
	MaxFontSize     = 24
	MinHistoryLimit = 10
	MaxHistoryLimit = 1000
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		ConfigVersion: CurrentConfigVersion,
		Language:      "en",
		DataDir:       filepath.Join(home, ".ToTerminal"),
		Appearance: AppearanceConfig{
			FontFamily:      string(schema.DefaultFont),
			FontSizePt:      12,
			BackgroundColor: "#004b23",
			TextColor:       "#ccff33",
		},
		Terminal: TerminalConfig{
			CustomPrompt:     "user@ToTerminal:~$",
			ShowTimeInPrompt: true,
			ShowPathInPrompt: true,
			HistoryLimit:     100,
		},
		Advanced: AdvancedConfig{
			EnableAutoComplete:   true,
			StartupCommand:       "",
			EnableCommandLogging: false,
			LogFilePath:          filepath.Join(home, "ToTerminal.log"),
		},
	}, nil
}

// DefaultConfigPath returns the standard config path.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".ToTerminal", "config.yaml"), nil
}

// ScriptsPath returns the scripts registry file under the data directory.
func (c Config) ScriptsPath() string {
	return filepath.Join(c.DataDir, "scripts", "scripts.json")
}

// ShellLogPath returns the file that receives logs while the shell owns the screen.
func (c Config) ShellLogPath() string {
	return filepath.Join(c.DataDir, "toterm.log")
}

// Validate checks ranges and enum membership.
func (c Config) Validate() error {
	var problems []string
	if _, ok := schema.NormalizeFontFamily(c.Appearance.FontFamily); !ok {
		problems = append(problems, fmt.Sprintf("appearance.font_family %q is not supported", c.Appearance.FontFamily))
	}
	if c.Appearance.FontSizePt < MinFontSize || c.Appearance.FontSizePt > MaxFontSize {
		problems = append(problems, fmt.Sprintf("appearance.font_size_pt must be between %d and %d", MinFontSize, MaxFontSize))
	}
	if !colorPattern.MatchString(c.Appearance.BackgroundColor) {
		problems = append(problems, fmt.Sprintf("appearance.background_color %q must be #rrggbb", c.Appearance.BackgroundColor))
	}
	if !colorPattern.MatchString(c.Appearance.TextColor) {
		problems = append(problems, fmt.Sprintf("appearance.text_color %q must be #rrggbb", c.Appearance.TextColor))
	}
	if c.Terminal.HistoryLimit < MinHistoryLimit || c.Terminal.HistoryLimit > MaxHistoryLimit {
		problems = append(problems, fmt.Sprintf("terminal.history_limit must be between %d and %d", MinHistoryLimit, MaxHistoryLimit))
	}
	switch c.Language {
	case "en", "es":
	default:
		problems = append(problems, fmt.Sprintf("language %q is not supported (en, es)", c.Language))
	}
	if strings.TrimSpace(c.DataDir) == "" {
		problems = append(problems, "data_dir is required")
	}
	if c.Advanced.EnableCommandLogging && strings.TrimSpace(c.Advanced.LogFilePath) == "" {
		problems = append(problems, "advanced.log_file_path is required when command logging is enabled")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}
