package compiler

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestFilename is the conventional project file name.
const ManifestFilename = "adlproject.yaml"

// Manifest is the project file describing what to compile. Imports names
// the decorator libraries the source expects; the compiler records
// invocations against them but does not execute their bodies.
type Manifest struct {
	Name    string   `yaml:"name"`
	Entry   string   `yaml:"entry"`
	Imports []string `yaml:"imports,omitempty"`
}

// LoadManifest reads and validates a project manifest. The entry path is
// resolved relative to the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if m.Entry == "" {
		return nil, fmt.Errorf("manifest %s: missing required field %q", path, "entry")
	}
	if !filepath.IsAbs(m.Entry) {
		m.Entry = filepath.Join(filepath.Dir(path), m.Entry)
	}
	return &m, nil
}
