package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	wisperrors "github.com/wisp-ui/wisp/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads, decodes, and validates the configuration file at path. Fields
// missing from the document keep their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wisperrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates a configuration document. path is only used
// in error messages.
func Parse(path string, data []byte) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, wisperrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
