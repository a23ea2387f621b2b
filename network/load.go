package network

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Supported description formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// FormatOf maps a file name to its format by extension.
func FormatOf(name string) (string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Load reads and validates a network description file. The format follows
// the file extension.
func Load(name string) (*Network, error) {
	format, err := FormatOf(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("network: open: %w", err)
	}
	defer f.Close()

	n, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("network: %s: %w", name, err)
	}
	return n, nil
}

// Decode reads a description in the given format and validates it.
func Decode(r io.Reader, format string) (*Network, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("network: read: %w", err)
	}

	var n Network
	switch format {
	case FormatTOML:
		if _, err = toml.Decode(string(data), &n); err != nil {
			return nil, fmt.Errorf("network: toml: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&n); err != nil {
			return nil, fmt.Errorf("network: yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err = n.Validate(); err != nil {
		return nil, err
	}
	return &n, nil
}

// Encode writes n in the given format.
func Encode(w io.Writer, n *Network, format string) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(n)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(n); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
