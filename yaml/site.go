// Package yaml loads newsgrab.Site definitions from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/fwojciec/newsgrab"
	"gopkg.in/yaml.v3"
)

// LoadSite reads the site file at path, fills defaults and validates it.
// Durations are written as Go duration strings ("5m", "1h").
func LoadSite(path string) (*newsgrab.Site, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, newsgrab.Errorf(newsgrab.ENOTFOUND, "site file %s not found", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read site file: %w", err)
	}
	return ParseSite(data)
}

// ParseSite decodes a site definition. Unknown keys are rejected so that
// typos in selector lists do not silently fall back to the defaults.
func ParseSite(data []byte) (*newsgrab.Site, error) {
	var site newsgrab.Site

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&site); err != nil && !errors.Is(err, io.EOF) {
		return nil, newsgrab.Errorf(newsgrab.EINVALID, "failed to parse site file: %v", err)
	}

	site.SetDefaults()
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

// MarshalSite encodes site in the format LoadSite reads.
func MarshalSite(site *newsgrab.Site) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(site); err != nil {
		return nil, fmt.Errorf("failed to encode site: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode site: %w", err)
	}
	return buf.Bytes(), nil
}
