package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/naoina/toml"
	"gopkg.in/yaml.v3"

	"skibidi/interpreter-go/pkg/interpreter"
	"skibidi/interpreter-go/pkg/runtime"
)

// ConfigEnv names an explicit configuration file, taking precedence over
// discovery.
const ConfigEnv = "SKIBIDI_CONFIG"

// ConfigFileNames are searched, in order, in each directory by FindConfig.
var ConfigFileNames = []string{"skibidi.yml", "skibidi.yaml", "skibidi.toml"}

// ErrConfigNotFound is returned by FindConfig when no configuration file
// exists in the start directory or any parent.
var ErrConfigNotFound = errors.New("config file not found")

var logLevels = []string{"debug", "verbose", "info", "warning", "error", "critical"}

// Config holds run settings loaded from skibidi.yml / skibidi.toml.
type Config struct {
	Path string `yaml:"-" toml:"-"`

	SymbolCapacity int    `yaml:"symbol_capacity" toml:"symbol_capacity"`
	Recovery       string `yaml:"recovery" toml:"recovery"`
	Switch         string `yaml:"switch" toml:"switch"`
	LogLevel       string `yaml:"log_level" toml:"log_level"`
	Color          string `yaml:"color" toml:"color"`
	DumpSymbols    bool   `yaml:"dump_symbols" toml:"dump_symbols"`
}

// DefaultConfig matches interpreter.DefaultOptions.
func DefaultConfig() *Config {
	return &Config{
		SymbolCapacity: runtime.DefaultCapacity,
		Recovery:       interpreter.RecoverWithDefault.String(),
		Switch:         interpreter.SwitchFaithful.String(),
		LogLevel:       "warning",
		Color:          "auto",
	}
}

// ValidationError aggregates configuration or document failures.
type ValidationError struct {
	Source string
	Issues []string
}

func (e *ValidationError) Error() string {
	label := "config"
	if e.Source != "" {
		label = e.Source
	}
	if len(e.Issues) == 0 {
		return label + ": invalid configuration"
	}
	var b strings.Builder
	b.WriteString(label)
	b.WriteString(" validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not a known setting", field)
	},
}

// LoadConfig reads a YAML or TOML file on top of DefaultConfig and validates
// the result.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(absPath)) {
	case ".yml", ".yaml":
		decoder := yaml.NewDecoder(file)
		decoder.KnownFields(true)
		if err := decoder.Decode(cfg); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("config: %s is empty", absPath)
			}
			return nil, fmt.Errorf("config: parse %s: %w", absPath, err)
		}
	case ".toml":
		if err := decodeTOML(file, absPath, cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("config: unsupported file type %q (want .yml, .yaml or .toml)", filepath.Ext(absPath))
	}
	cfg.Path = absPath
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeTOML(file *os.File, absPath string, cfg *Config) error {
	reader := bufio.NewReader(file)
	if _, err := reader.Peek(1); errors.Is(err, io.EOF) {
		return fmt.Errorf("config: %s is empty", absPath)
	}
	err := tomlSettings.NewDecoder(reader).Decode(cfg)
	if err == nil {
		return nil
	}
	// Line errors already carry the position; prefix the file name.
	if _, ok := err.(*toml.LineError); ok {
		return fmt.Errorf("config: %s, %s", absPath, err.Error())
	}
	return fmt.Errorf("config: parse %s: %w", absPath, err)
}

// Validate checks every enumerated setting and reports all problems at once.
func (c *Config) Validate() error {
	errs := ValidationError{Source: "config"}
	if c.Path != "" {
		errs.Source = "config " + c.Path
	}
	if _, err := ParseRecovery(c.Recovery); err != nil {
		errs.Issues = append(errs.Issues, err.Error())
	}
	if _, err := ParseSwitchMode(c.Switch); err != nil {
		errs.Issues = append(errs.Issues, err.Error())
	}
	if !validLogLevel(c.LogLevel) {
		errs.Issues = append(errs.Issues, fmt.Sprintf("log_level %q must be one of %s", c.LogLevel, strings.Join(logLevels, ", ")))
	}
	switch strings.ToLower(c.Color) {
	case "auto", "always", "never":
	default:
		errs.Issues = append(errs.Issues, fmt.Sprintf("color %q must be auto, always or never", c.Color))
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// Options maps the configuration onto interpreter options. Streams and the
// reporter are left for the caller.
func (c *Config) Options() interpreter.Options {
	opts := interpreter.DefaultOptions()
	opts.SymbolCapacity = c.SymbolCapacity
	if policy, err := ParseRecovery(c.Recovery); err == nil {
		opts.Recovery = policy
	}
	if mode, err := ParseSwitchMode(c.Switch); err == nil {
		opts.Switch = mode
	}
	return opts
}

// ParseRecovery accepts "continue" and "strict"; empty means continue.
func ParseRecovery(value string) (interpreter.RecoveryPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "continue":
		return interpreter.RecoverWithDefault, nil
	case "strict":
		return interpreter.Escalate, nil
	default:
		return interpreter.RecoverWithDefault, fmt.Errorf("recovery %q must be continue or strict", value)
	}
}

// ParseSwitchMode accepts "faithful" and "conventional"; empty means faithful.
func ParseSwitchMode(value string) (interpreter.SwitchMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "faithful":
		return interpreter.SwitchFaithful, nil
	case "conventional":
		return interpreter.SwitchConventional, nil
	default:
		return interpreter.SwitchFaithful, fmt.Errorf("switch %q must be faithful or conventional", value)
	}
}

func validLogLevel(level string) bool {
	level = strings.ToLower(strings.TrimSpace(level))
	for _, known := range logLevels {
		if level == known {
			return true
		}
	}
	return false
}

// FindConfig walks from start towards the filesystem root and returns the
// first configuration file it sees.
func FindConfig(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory %q: %w", start, err)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	origin := dir
	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			info, err := os.Stat(candidate)
			if err == nil && !info.IsDir() {
				return candidate, nil
			}
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return "", err
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no skibidi config found from %s upwards: %w", origin, ErrConfigNotFound)
		}
		dir = parent
	}
}

// ResolveConfig picks the configuration for a run: an explicit path, then
// $SKIBIDI_CONFIG, then the nearest file above start. Without any file the
// defaults are returned.
func ResolveConfig(explicit, start string) (*Config, error) {
	path := strings.TrimSpace(explicit)
	if path == "" {
		path = strings.TrimSpace(os.Getenv(ConfigEnv))
	}
	if path == "" {
		found, err := FindConfig(start)
		if err != nil {
			if errors.Is(err, ErrConfigNotFound) {
				return DefaultConfig(), nil
			}
			return nil, err
		}
		path = found
	}
	return LoadConfig(path)
}
