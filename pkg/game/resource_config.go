package game

import (
	"fmt"
	"path"

	"gopkg.in/yaml.v3"
)

// ResourceConfig represents the resource manifest loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: ""
//	groups:
//	  menu:
//	    images: [...]
//	    fonts: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Manifest version
	BasePath string                   `yaml:"base_path"` // Prefix joined to every resource path
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup is a set of resources that are requested together,
// e.g. everything the menus need before they can be shown.
type ResourceGroup struct {
	Images []ResourceEntry `yaml:"images"`
	Fonts  []ResourceEntry `yaml:"fonts"`
}

// ResourceEntry maps a resource ID (e.g. "FONT_UI") to a file path.
type ResourceEntry struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// Entries returns all entries of the group, images first, in manifest order.
func (g ResourceGroup) Entries() []ResourceEntry {
	entries := make([]ResourceEntry, 0, len(g.Images)+len(g.Fonts))
	entries = append(entries, g.Images...)
	entries = append(entries, g.Fonts...)
	return entries
}

// ParseResourceConfig parses and validates a YAML manifest.
//
// Resource IDs must be unique across all groups and every entry needs a path.
func ParseResourceConfig(data []byte) (*ResourceConfig, error) {
	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse resource config: %w", err)
	}

	seen := make(map[string]string)
	for groupName, group := range config.Groups {
		for _, entry := range group.Entries() {
			if entry.ID == "" {
				return nil, fmt.Errorf("resource config: group %q has an entry without id", groupName)
			}
			if entry.Path == "" {
				return nil, fmt.Errorf("resource config: resource %s has no path", entry.ID)
			}
			if other, dup := seen[entry.ID]; dup {
				return nil, fmt.Errorf("resource config: resource %s declared in groups %q and %q", entry.ID, other, groupName)
			}
			seen[entry.ID] = groupName
		}
	}

	return &config, nil
}

// buildFullPath joins the manifest base path and a resource path.
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return path.Clean(relativePath)
	}
	return path.Join(basePath, relativePath)
}
