package deck

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadError reports that the question source could not be fetched or parsed.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load questions from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load fetches and parses the question source, which is either a local file
// or an http(s) URL. Every failure is returned as a *LoadError.
func Load(ctx context.Context, source string) (Deck, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return Deck{}, &LoadError{Source: "<empty>", Err: fmt.Errorf("no data source configured")}
	}

	var (
		data []byte
		err  error
	)
	if isRemote(source) {
		data, err = NewClient().Fetch(ctx, source)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return Deck{}, &LoadError{Source: source, Err: err}
	}

	questions, err := Parse(data, formatFor(source))
	if err != nil {
		return Deck{}, &LoadError{Source: source, Err: err}
	}
	return New(questions), nil
}

// Format selects the decoder used by Parse.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// Parse decodes a question array in the given format.
func Parse(data []byte, format Format) ([]Question, error) {
	var questions []Question
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &questions); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &questions); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	}
	return questions, nil
}

func formatFor(source string) Format {
	name := source
	if isRemote(source) {
		name = strings.SplitN(source, "?", 2)[0]
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

func isRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
