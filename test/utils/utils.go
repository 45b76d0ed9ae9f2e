// Package utils provides shared helpers for the e2e suite: resource name
// generation, environment configuration, and resource template rendering.
package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"sigs.k8s.io/yaml"
)

// RandomSuffixName returns prefix plus a random lowercase hex suffix,
// truncated to maxLen. The result contains only lowercase alphanumerics so
// it is valid both as a Kubernetes object name (no underscores) and as a
// Keyspaces resource name (no hyphens).
func RandomSuffixName(prefix string, maxLen int) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	name := prefix + suffix
	if len(name) > maxLen {
		name = name[:maxLen]
	}
	return name
}

// RenderTemplate reads a YAML resource template and substitutes every
// $NAME$ placeholder with its replacement value. It fails if a placeholder
// has no replacement, so missing values surface as errors instead of
// invalid resources.
func RenderTemplate(path string, replacements map[string]string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template: %w", err)
	}

	rendered := string(data)
	for key, value := range replacements {
		rendered = strings.ReplaceAll(rendered, "$"+key+"$", value)
	}

	if start := strings.Index(rendered, "$"); start != -1 {
		if end := strings.Index(rendered[start+1:], "$"); end != -1 {
			return nil, fmt.Errorf("template %s: no replacement for placeholder %s", path, rendered[start:start+end+2])
		}
	}
	return []byte(rendered), nil
}

// LoadResource renders a template and unmarshals it into obj.
func LoadResource(path string, replacements map[string]string, obj any) error {
	data, err := RenderTemplate(path, replacements)
	if err != nil {
		return err
	}
	if err := yaml.UnmarshalStrict(data, obj); err != nil {
		return fmt.Errorf("decoding template %s: %w", path, err)
	}
	return nil
}
