package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/nikogura/distro-quiz/pkg/logging"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix marks environment variables that override config values.
// DISTRO_QUIZ_TOP_N sets top_n, DISTRO_QUIZ_LOG_LEVEL sets log.level.
const EnvPrefix = "DISTRO_QUIZ_"

// Config represents the application configuration.
type Config struct {
	Language  string    `koanf:"language" yaml:"language"`
	TopN      int       `koanf:"top_n" yaml:"top_n"`
	Catalog   string    `koanf:"catalog" yaml:"catalog"`
	Questions string    `koanf:"questions" yaml:"questions"`
	Log       LogConfig `koanf:"log" yaml:"log"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `koanf:"level" yaml:"level"`
	Format string `koanf:"format" yaml:"format"`
}

// Default returns the built-in configuration. Empty Catalog and Questions
// select the data compiled into the binary.
func Default() (cfg Config) {
	cfg = Config{
		Language: "en",
		TopN:     3,
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
	return cfg
}

// DefaultPath returns ~/.distro-quiz/config.yaml.
func DefaultPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}

	path = filepath.Join(homeDir, ".distro-quiz", "config.yaml")
	return path, err
}

// Load layers defaults, the config file and environment variables, in that
// order. A missing file at the default location is not an error; a missing
// file that was asked for explicitly is.
func Load(configPath string) (cfg Config, err error) {
	k := koanf.New(".")

	defaults := Default()
	err = k.Load(structs.Provider(&defaults, "koanf"), nil)
	if err != nil {
		err = errors.Wrap(err, "failed to load config defaults")
		return cfg, err
	}

	var path string
	var found bool
	path, found, err = Resolve(configPath)
	if err != nil {
		return cfg, err
	}

	if found {
		err = k.Load(file.Provider(path), yaml.Parser())
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	}

	err = k.Load(env.Provider(EnvPrefix, ".", envToKey), nil)
	if err != nil {
		err = errors.Wrap(err, "failed to load environment overrides")
		return cfg, err
	}

	err = k.Unmarshal("", &cfg)
	if err != nil {
		err = errors.Wrap(err, "failed to decode config")
		return cfg, err
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// Resolve returns the config file Load reads and whether it exists. An
// empty configPath means the default location, which may be absent; an
// explicit path must exist.
func Resolve(configPath string) (path string, found bool, err error) {
	path = configPath
	explicit := path != ""
	if !explicit {
		path, err = DefaultPath()
		if err != nil {
			return path, found, err
		}
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		found = true
	case explicit && os.IsNotExist(statErr):
		err = errors.Errorf("config file not found: %s (run 'distro-quiz init' to create)", path)
	case explicit:
		err = errors.Wrapf(statErr, "failed to read config file: %s", path)
	}

	return path, found, err
}

// Overrides lists the environment variables that override config values.
func Overrides() (names []string) {
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, EnvPrefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// envToKey maps DISTRO_QUIZ_LOG_LEVEL to log.level and DISTRO_QUIZ_TOP_N to top_n.
func envToKey(name string) (key string) {
	key = strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	if rest, found := strings.CutPrefix(key, "log_"); found {
		key = "log." + rest
	}
	return key
}

// Validate checks the configuration values.
func (c *Config) Validate() (err error) {
	if c.TopN < 1 {
		err = errors.Errorf("top_n must be at least 1, got %d", c.TopN)
		return err
	}

	if c.Language != "" {
		_, err = language.Parse(c.Language)
		if err != nil {
			err = errors.Wrapf(err, "invalid language tag: %s", c.Language)
			return err
		}
	}

	if c.Log.Format != "console" && c.Log.Format != "json" {
		err = errors.Errorf("log.format must be console or json, got %q", c.Log.Format)
		return err
	}

	if !logging.ValidLevel(c.Log.Level) {
		err = errors.Errorf("unknown log.level: %s", c.Log.Level)
		return err
	}

	return err
}

// InitConfig writes the default configuration file.
func InitConfig(configPath string) (err error) {
	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return err
	}

	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	var data []byte
	data, err = yamlv3.Marshal(Default())
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}
