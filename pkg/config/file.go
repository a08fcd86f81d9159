package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultPath is the default config file location.
const DefaultPath = "~/.config/cnctl/config.toml"

var defaultFileConfig = &RawFileConfig{
	Address: "127.0.0.1",
	Port:    50005,
}

var _ Config = &File{}

// File is a TOML-file-backed Config. A missing file yields the defaults.
type File struct {
	c        *RawFileConfig
	mu       *sync.RWMutex
	filepath string
}

// RawFileConfig is the on-disk shape of the config file.
type RawFileConfig struct {
	Address string `toml:"address,omitempty"`
	Port    int    `toml:"port,omitempty"`
}

func NewFile(configPath string) (*File, error) {
	resolved, err := expandPath(configPath)
	if err != nil {
		return nil, err
	}

	f := &File{
		filepath: resolved,
		mu:       &sync.RWMutex{},
	}
	if err := f.Load(); err != nil {
		return nil, err
	}

	return f, nil
}

func (f *File) Address() string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if strings.TrimSpace(f.c.Address) == "" {
		return defaultFileConfig.Address
	}
	return f.c.Address
}

func (f *File) Port() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c.Port == 0 {
		return defaultFileConfig.Port
	}
	return f.c.Port
}

func (f *File) APIAddress() string {
	return fmt.Sprintf("%s:%d", f.Address(), f.Port())
}

func (f *File) SetAddress(address string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.Address = address
}

func (f *File) SetPort(port int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.Port = port
}

func (f *File) Load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, err := os.ReadFile(f.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file yet. Use the defaults.
			f.c = &RawFileConfig{}
			return nil
		}
		return pkgerrors.Wrapf(err, "failed to read file %s", f.filepath)
	}

	if strings.TrimSpace(string(b)) == "" {
		f.c = &RawFileConfig{}
		return nil
	}

	conf := RawFileConfig{}
	if err := toml.Unmarshal(b, &conf); err != nil {
		return pkgerrors.Wrapf(err, "failed to unmarshal config from file %s", f.filepath)
	}
	f.c = &conf

	return nil
}

func (f *File) Save() error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c == nil {
		return pkgerrors.New("config is nil")
	}

	if err := os.MkdirAll(filepath.Dir(f.filepath), 0755); err != nil {
		return pkgerrors.Wrapf(err, "failed to create config directory for %s", f.filepath)
	}

	b, err := toml.Marshal(f.c)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to marshal config")
	}

	if err := os.WriteFile(f.filepath, b, 0644); err != nil {
		return pkgerrors.Wrapf(err, "failed to write file %s", f.filepath)
	}

	return nil
}

// LogrusFields returns the effective config for debug logging.
func (f *File) LogrusFields() logrus.Fields {
	return logrus.Fields{
		"address": f.Address(),
		"port":    f.Port(),
		"file":    f.filepath,
	}
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = DefaultPath
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", pkgerrors.Wrapf(err, "failed to resolve home directory")
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
