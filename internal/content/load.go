package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultYAML []byte

// Default returns the built-in profile.
func Default() (*Profile, error) {
	p, err := Parse(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("parsing built-in profile: %w", err)
	}
	return p, nil
}

// Load reads a profile from path, or the built-in profile when path is empty.
func Load(path string) (*Profile, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a YAML profile and validates it. Unknown keys are rejected.
func Parse(data []byte) (*Profile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Profile
	if err := dec.Decode(&p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the fields every section depends on.
func (p *Profile) Validate() error {
	if p.FirstName == "" {
		return fmt.Errorf("first_name is required")
	}
	if p.Email == "" {
		return fmt.Errorf("email is required")
	}
	for i, s := range p.Skills {
		if s.Name == "" {
			return fmt.Errorf("skills[%d]: name is required", i)
		}
	}
	for i, pr := range p.Projects {
		if pr.Title == "" {
			return fmt.Errorf("projects[%d]: title is required", i)
		}
	}
	return nil
}
