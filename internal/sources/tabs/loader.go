package tabs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and parsing of a tabs YAML config
type Loader struct {
	filePath string
}

// NewLoader creates a new tabs config loader
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Path returns the config file this loader reads
func (l *Loader) Path() string {
	return l.filePath
}

// Load reads and parses the config file
func (l *Loader) Load() (TabsConfig, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tabs config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML sequence of entries. An empty document yields no entries.
func Parse(data []byte) (TabsConfig, error) {
	var config TabsConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&config); err != nil {
		if errors.Is(err, io.EOF) {
			return TabsConfig{}, nil
		}
		return nil, fmt.Errorf("failed to parse tabs yaml: %w", err)
	}
	return config, nil
}
