package blueprint

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition is the on-disk shape of a machine.
type Definition struct {
	Initial     string    `yaml:"initial"`
	States      []string  `yaml:"states"`
	Events      []string  `yaml:"events"`
	Transitions []RuleDef `yaml:"transitions"`
}

// RuleDef is one transition row. Action names a callback in the registry
// passed to Build; an empty action means the transition fires silently.
type RuleDef struct {
	From   string `yaml:"from"`
	On     string `yaml:"on"`
	To     string `yaml:"to"`
	Action string `yaml:"action,omitempty"`
}

// Load reads a YAML definition from r.
func Load(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("failed to decode definition: %w", err)
	}
	if err := def.validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Parse reads a YAML definition from a byte slice.
func Parse(data []byte) (*Definition, error) {
	return Load(bytes.NewReader(data))
}

// LoadFile reads a YAML definition from disk.
func LoadFile(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open definition: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// validate checks structural completeness; name resolution happens in Build.
func (d *Definition) validate() error {
	if len(d.States) == 0 {
		return fmt.Errorf("definition declares no states")
	}
	if len(d.Events) == 0 {
		return fmt.Errorf("definition declares no events")
	}
	if d.Initial == "" {
		return fmt.Errorf("definition has no initial state")
	}
	return nil
}
