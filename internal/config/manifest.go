package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Upload is one manifest entry: a file tagged with a company and report type.
type Upload struct {
	File    string `yaml:"file"`
	Company string `yaml:"company"`
	Type    string `yaml:"type"`
	// Sheet overrides the configured sheet for this file.
	Sheet string `yaml:"sheet,omitempty"`
}

// Manifest lists the uploads of one consolidation run.
type Manifest struct {
	Uploads []Upload `yaml:"uploads"`
}

// LoadManifest reads a manifest. Relative file paths are resolved against
// the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for i, u := range m.Uploads {
		if u.File == "" {
			return nil, fmt.Errorf("manifest %s: upload %d has no file", path, i+1)
		}
		if !filepath.IsAbs(u.File) {
			m.Uploads[i].File = filepath.Join(dir, u.File)
		}
	}
	return &m, nil
}
