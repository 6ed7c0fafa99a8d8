package jsoncol

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML form of ParseOpt.
type fileConfig struct {
	NaNString                   *string  `yaml:"nan_string"`
	InfinityString              *string  `yaml:"infinity_string"`
	MinusInfinityString         *string  `yaml:"minus_infinity_string"`
	MissingString               *string  `yaml:"missing_string"`
	TreatSentinelStringsAsFloat bool     `yaml:"treat_sentinel_strings_as_float"`
	MaxDepth                    int      `yaml:"max_depth"`
	MaxBytes                    int64    `yaml:"max_bytes"`
	OnDuplicateKey              Severity `yaml:"on_duplicate_key"`
	Initial                     int      `yaml:"initial"`
	Resize                      float64  `yaml:"resize"`
}

// LoadConfig reads ParseOpt from a YAML file.
func LoadConfig(path string) (ParseOpt, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ParseOpt{}, err
	}
	opt, err := ParseConfig(data)
	if err != nil {
		return ParseOpt{}, fmt.Errorf("%s: %w", path, err)
	}
	return opt, nil
}

// ParseConfig decodes ParseOpt from YAML. Unknown keys are rejected; an empty
// document yields the zero ParseOpt.
func ParseConfig(data []byte) (ParseOpt, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var fc fileConfig
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return ParseOpt{}, fmt.Errorf("jsoncol: config: %w", err)
	}
	switch {
	case fc.MaxDepth < 0:
		return ParseOpt{}, fmt.Errorf("jsoncol: config: max_depth must not be negative, got %d", fc.MaxDepth)
	case fc.MaxBytes < 0:
		return ParseOpt{}, fmt.Errorf("jsoncol: config: max_bytes must not be negative, got %d", fc.MaxBytes)
	case fc.Initial < 0:
		return ParseOpt{}, fmt.Errorf("jsoncol: config: initial must not be negative, got %d", fc.Initial)
	case fc.Resize != 0 && fc.Resize <= 1:
		return ParseOpt{}, fmt.Errorf("jsoncol: config: resize must be greater than 1, got %g", fc.Resize)
	}
	return ParseOpt{
		Sentinels: SentinelConfig{
			NaNString:                   fc.NaNString,
			InfinityString:              fc.InfinityString,
			MinusInfinityString:         fc.MinusInfinityString,
			MissingString:               fc.MissingString,
			TreatSentinelStringsAsFloat: fc.TreatSentinelStringsAsFloat,
		},
		MaxDepth:       fc.MaxDepth,
		MaxBytes:       fc.MaxBytes,
		OnDuplicateKey: fc.OnDuplicateKey,
		Initial:        fc.Initial,
		Resize:         fc.Resize,
	}, nil
}

// UnmarshalYAML accepts "ignore", "warn" or "error".
func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	for i, name := range severityNames {
		if value.Value == name {
			*s = Severity(i)
			return nil
		}
	}
	return fmt.Errorf("line %d: unknown severity %q", value.Line, value.Value)
}
