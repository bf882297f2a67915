package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	yaml "gopkg.in/yaml.v3"

	"github.com/birdayz/flip/pkg/keypad"
)

// EnvConfigPath names a config file to use when --config is not given.
const EnvConfigPath = "FLIP_CONFIG"

// Profile is a named set of separators and policies.
type Profile struct {
	Name            string
	CharSeparator   string `yaml:"char-separator,omitempty"`
	WordSeparator   string `yaml:"word-separator,omitempty"`
	InputSeparator  string `yaml:"input-separator,omitempty"`
	OutputSeparator string `yaml:"output-separator,omitempty"`
	SkipUnencodable bool   `yaml:"skip-unencodable,omitempty"`
	Lenient         bool   `yaml:"lenient,omitempty"`
}

// Settings converts the profile into codec settings.
func (p *Profile) Settings() keypad.Settings {
	if p == nil {
		return keypad.Settings{}
	}
	return keypad.Settings{
		CharSeparator:   p.CharSeparator,
		WordSeparator:   p.WordSeparator,
		InputSeparator:  p.InputSeparator,
		OutputSeparator: p.OutputSeparator,
		SkipUnencodable: p.SkipUnencodable,
		Lenient:         p.Lenient,
	}
}

// MarshalYAML writes separators double quoted. yaml.v3 emits a lone "\n"
// as an empty block scalar, which reads back as "".
func (p Profile) MarshalYAML() (any, error) {
	return profileYAML{
		Name:            p.Name,
		CharSeparator:   separator(p.CharSeparator),
		WordSeparator:   separator(p.WordSeparator),
		InputSeparator:  separator(p.InputSeparator),
		OutputSeparator: separator(p.OutputSeparator),
		SkipUnencodable: p.SkipUnencodable,
		Lenient:         p.Lenient,
	}, nil
}

type profileYAML struct {
	Name            string    `yaml:"name"`
	CharSeparator   separator `yaml:"char-separator,omitempty"`
	WordSeparator   separator `yaml:"word-separator,omitempty"`
	InputSeparator  separator `yaml:"input-separator,omitempty"`
	OutputSeparator separator `yaml:"output-separator,omitempty"`
	SkipUnencodable bool      `yaml:"skip-unencodable,omitempty"`
	Lenient         bool      `yaml:"lenient,omitempty"`
}

type separator string

func (s separator) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: string(s)}, nil
}

type Config struct {
	CurrentProfile  string     `yaml:"current-profile"`
	ProfileOverride string     `yaml:"-"`
	Profiles        []*Profile `yaml:"profiles"`
	// configPath is the file path used for reading and writing this config.
	configPath string `yaml:"-"`
}

// Path returns the file this config is read from and written to.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) HasProfile(name string) bool {
	for _, profile := range c.Profiles {
		if profile.Name == name {
			return true
		}
	}
	return false
}

func (c *Config) SetCurrentProfile(name string) error {
	oldProfile := c.CurrentProfile
	for _, profile := range c.Profiles {
		if profile.Name == name {
			c.CurrentProfile = name

			if err := c.Write(); err != nil {
				// "Revert" change to the config struct, either
				// everything is successful or nothing.
				c.CurrentProfile = oldProfile
				return err
			}
			return nil
		}
	}
	return fmt.Errorf("could not find profile with name %v", name)
}

// UpsertProfile replaces the profile with the same name or appends p.
// It reports whether an existing profile was replaced.
func (c *Config) UpsertProfile(p *Profile) bool {
	for i, profile := range c.Profiles {
		if profile.Name == p.Name {
			c.Profiles[i] = p
			return true
		}
	}
	c.Profiles = append(c.Profiles, p)
	return false
}

// RemoveProfile deletes the named profile. It reports whether it existed.
func (c *Config) RemoveProfile(name string) bool {
	for i, profile := range c.Profiles {
		if profile.Name == name {
			c.Profiles = append(c.Profiles[:i], c.Profiles[i+1:]...)
			if c.CurrentProfile == name {
				c.CurrentProfile = ""
			}
			return true
		}
	}
	return false
}

func (c *Config) ActiveProfile() *Profile {
	if c == nil {
		return nil
	}

	toSearch := c.ProfileOverride
	if c.ProfileOverride == "" {
		toSearch = c.CurrentProfile
	}

	if toSearch == "" {
		return nil
	}

	for _, profile := range c.Profiles {
		if profile.Name == toSearch {
			// Return a copy so command line overrides are not written
			// back into the config.
			p := *profile
			return &p
		}
	}
	return nil
}

func (c *Config) Write() error {
	configPath := c.configPath
	if configPath == "" {
		var err error
		configPath, err = getDefaultConfigPath()
		if err != nil {
			return err
		}
	}
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(configDir, "config.*.tmp")
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}
	tmpPath := tmpFile.Name()

	encoder := yaml.NewEncoder(tmpFile)
	if err := encoder.Encode(c); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encode config: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp config file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp config file: %w", err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp config file: %w", err)
	}
	c.configPath = configPath
	return nil
}

// ReadConfig loads the config at cfgPath. An empty cfgPath falls back to
// $FLIP_CONFIG and then to $HOME/.flip/config; only the default file may be
// missing.
func ReadConfig(cfgPath string) (c Config, err error) {
	resolvedPath, err := resolveConfigPath(cfgPath)
	if err != nil {
		return Config{}, err
	}

	file, err := os.OpenFile(resolvedPath, os.O_RDONLY, 0644)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{configPath: resolvedPath}, nil
		}
		return Config{}, fmt.Errorf("open config file: %w", err)
	}
	defer file.Close()
	decoder := yaml.NewDecoder(file)
	err = decoder.Decode(&c)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	c.configPath = resolvedPath
	return c, nil
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func resolveConfigPath(cfgPath string) (string, error) {
	if cfgPath == "" {
		cfgPath = os.Getenv(EnvConfigPath)
	}
	if cfgPath == "" {
		return getDefaultConfigPath()
	}
	if !fileExists(cfgPath) {
		return "", fmt.Errorf("config file %q does not exist", cfgPath)
	}
	return cfgPath, nil
}

func getDefaultConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}

	return filepath.Join(home, ".flip", "config"), nil
}
