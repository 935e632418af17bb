package rules

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

var defaultRuleSet = sync.OnceValues(func() (*RuleSet, error) {
	return Parse("embedded default", defaultYAML)
})

// Default returns the embedded rule set. It is decoded and validated once
// per process.
func Default() (*RuleSet, error) {
	return defaultRuleSet()
}

// MustDefault is like Default but panics if the embedded rules are invalid.
func MustDefault() *RuleSet {
	rs, err := Default()
	if err != nil {
		panic(err)
	}
	return rs
}

// Load reads and validates a rules file from disk.
func Load(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes and validates a rules document. source names the document
// in error messages.
func Parse(source string, data []byte) (*RuleSet, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, &ErrInvalidRules{Source: source, Err: fmt.Errorf("decode yaml: %w", err)}
	}
	if err := validateSchema(tree); err != nil {
		return nil, &ErrInvalidRules{Source: source, Err: err}
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, &ErrInvalidRules{Source: source, Err: fmt.Errorf("decode rules: %w", err)}
	}
	if err := validateDocument(doc); err != nil {
		return nil, &ErrInvalidRules{Source: source, Err: err}
	}

	return newRuleSet(doc), nil
}
