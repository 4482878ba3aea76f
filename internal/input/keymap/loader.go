package keymap

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dshills/bindery/internal/input/key"
	"gopkg.in/yaml.v3"
)

// Format is a keymap file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// document is the on-disk structure for keymap files.
type document struct {
	Keymaps []keymapConfig `json:"keymaps" yaml:"keymaps"`
}

type keymapConfig struct {
	Name     string          `json:"name" yaml:"name"`
	Editor   string          `json:"editor,omitempty" yaml:"editor,omitempty"`
	Region   string          `json:"region,omitempty" yaml:"region,omitempty"`
	Modal    bool            `json:"modal,omitempty" yaml:"modal,omitempty"`
	Layer    Layer           `json:"layer" yaml:"layer"`
	Source   string          `json:"source,omitempty" yaml:"source,omitempty"`
	Bindings []bindingConfig `json:"bindings" yaml:"bindings"`
}

type bindingConfig struct {
	Trigger     key.Trigger `json:"trigger" yaml:"trigger"`
	Command     string      `json:"command" yaml:"command"`
	Args        Args        `json:"args,omitempty" yaml:"args,omitempty"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
}

func toConfig(k *Keymap) keymapConfig {
	config := keymapConfig{
		Name:     k.Name,
		Editor:   k.Scope.Editor,
		Region:   k.Scope.Region,
		Modal:    k.Scope.Modal,
		Layer:    k.Layer,
		Source:   k.Source,
		Bindings: make([]bindingConfig, 0, len(k.Bindings)),
	}
	for _, b := range k.Bindings {
		config.Bindings = append(config.Bindings, bindingConfig{
			Trigger:     b.Trigger,
			Command:     b.Command,
			Args:        b.Args,
			Description: b.Description,
		})
	}
	return config
}

func fromConfig(config keymapConfig) *Keymap {
	km := &Keymap{
		Name: config.Name,
		Scope: Scope{
			Editor: config.Editor,
			Region: config.Region,
			Modal:  config.Modal,
		},
		Layer:    config.Layer,
		Source:   config.Source,
		Bindings: make([]Binding, 0, len(config.Bindings)),
	}
	for _, bc := range config.Bindings {
		km.Bindings = append(km.Bindings, Binding{
			Command:     bc.Command,
			Trigger:     bc.Trigger,
			Args:        bc.Args,
			Description: bc.Description,
		})
	}
	return km
}

func toDocument(keymaps []*Keymap) document {
	doc := document{Keymaps: make([]keymapConfig, 0, len(keymaps))}
	for _, km := range keymaps {
		doc.Keymaps = append(doc.Keymaps, toConfig(km))
	}
	return doc
}

func fromDocument(doc document) []*Keymap {
	out := make([]*Keymap, 0, len(doc.Keymaps))
	for _, c := range doc.Keymaps {
		out = append(out, fromConfig(c))
	}
	return out
}

// Encode writes keymaps to w in the given format. Keymap, binding and
// argument order is preserved.
func Encode(w io.Writer, format Format, keymaps []*Keymap) error {
	doc := toDocument(keymaps)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding keymaps: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding keymaps: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Decode reads keymaps from r in the given format. The result is not
// validated; NewTable does that.
func Decode(r io.Reader, format Format) ([]*Keymap, error) {
	var doc document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding keymaps: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decoding keymaps: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return fromDocument(doc), nil
}

// MarshalJSON converts a keymap to JSON.
func (k *Keymap) MarshalJSON() ([]byte, error) {
	return json.Marshal(toConfig(k))
}

// UnmarshalJSON parses a keymap from JSON.
func (k *Keymap) UnmarshalJSON(data []byte) error {
	var config keymapConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return err
	}
	*k = *fromConfig(config)
	return nil
}

// Loader loads keymaps from configuration files.
type Loader struct {
	// searchPaths are directories to search for keymap files.
	searchPaths []string
}

// NewLoader creates a new keymap loader.
func NewLoader(paths ...string) *Loader {
	return &Loader{
		searchPaths: append([]string(nil), paths...),
	}
}

// AddSearchPath adds a directory to search for keymap files.
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// SearchPaths returns the configured directories.
func (l *Loader) SearchPaths() []string {
	return append([]string(nil), l.searchPaths...)
}

// LoadFile loads keymaps from a JSON or YAML file. Keymaps without a
// source are tagged "file:<name>".
func (l *Loader) LoadFile(path string) ([]*Keymap, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening keymap file: %w", err)
	}
	defer f.Close()

	keymaps, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for _, km := range keymaps {
		if km.Source == "" {
			km.Source = "file:" + filepath.Base(path)
		}
	}
	return keymaps, nil
}

// LoadAll loads every keymap file in the search paths. Files are read in
// lexical order within each directory, directories in the order added.
// The first unreadable file aborts the load.
func (l *Loader) LoadAll() ([]*Keymap, error) {
	keymaps := make([]*Keymap, 0)

	for _, dir := range l.searchPaths {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("reading keymap directory: %w", err)
		}

		names := make([]string, 0, len(entries))
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if _, err := FormatFromPath(e.Name()); err == nil {
				names = append(names, e.Name())
			}
		}
		sort.Strings(names)

		for _, name := range names {
			loaded, err := l.LoadFile(filepath.Join(dir, name))
			if err != nil {
				return nil, err
			}
			keymaps = append(keymaps, loaded...)
		}
	}

	return keymaps, nil
}

// SaveFile writes keymaps to path, choosing the format from its extension.
func SaveFile(path string, keymaps []*Keymap) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating keymap file: %w", err)
	}
	if err := Encode(f, format, keymaps); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing keymap file: %w", err)
	}
	return nil
}
