package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/targetgraph/pkg/errors"
)

// Model file formats understood by [Read].
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// FormatFromPath picks the model format from a file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// LoadFile reads and validates the project description at path.
func LoadFile(path string) (*Project, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidModel, err, "load %s", path)
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "model file %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	p, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Read decodes a project description in the given format and validates it.
// Read does not close r.
func Read(r io.Reader, format string) (*Project, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var p Project
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&p)
	case FormatYAML:
		err = yaml.Unmarshal(data, &p)
	case FormatTOML:
		err = toml.Unmarshal(data, &p)
	default:
		return nil, errors.Wrap(errors.ErrCodeInvalidModel, ErrUnsupportedFormat, "format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidModel, err, "decode %s", format)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks that every target, link and alias carries a usable name.
func (p *Project) Validate() error {
	for gi, g := range p.Generators {
		for ti, t := range g.Targets {
			if err := errors.ValidateTargetName(t.Name); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidModel, err, "generator %d, target %d", gi, ti)
			}
			for li, l := range t.Links {
				if err := errors.ValidateTargetName(l.Name); err != nil {
					return errors.Wrap(errors.ErrCodeInvalidModel, err, "target %s, link %d", t.Name, li)
				}
			}
		}
		for alias, real := range g.Aliases {
			if err := errors.ValidateTargetName(alias); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidModel, err, "generator %d, alias", gi)
			}
			if err := errors.ValidateTargetName(real); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidModel, err, "generator %d, alias %s", gi, alias)
			}
		}
	}
	return nil
}
