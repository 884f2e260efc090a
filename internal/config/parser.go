package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/alpaca/pkg/errors"
)

var lineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a settings file. Keys missing from the file keep their default
// values. An empty path returns Default().
func Load(path string) (Settings, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, apperrors.NewParseError(path, 0, fmt.Errorf("read settings: %w", err))
	}

	return Parse(path, data)
}

// Parse decodes settings from data on top of Default() and validates them.
// path is used only for error reporting.
func Parse(path string, data []byte) (Settings, error) {
	settings := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
		line := extractLine(err)
		return Settings{}, apperrors.NewParseError(path, line, err)
	}

	if err := ValidateSettings(settings); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := lineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
