package config

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/bindery/internal/config/loader"
)

// maxIncludeDepth bounds nested include directives.
const maxIncludeDepth = 8

// Options control where configuration is read from.
type Options struct {
	// Path is the configuration file. When empty, DefaultPath is used and
	// a missing file is not an error.
	Path string

	// FS reads configuration files. Defaults to the OS file system.
	FS loader.FileSystem

	// Env reads environment overrides. Defaults to the process environment.
	// Use NoEnv to ignore the environment.
	Env func(string) (string, bool)
}

// NoEnv is an Options.Env that reports every variable as unset.
func NoEnv(string) (string, bool) { return "", false }

// Load reads defaults, then the configuration file, then environment
// overrides, each replacing the one before.
func Load(opts Options) (Config, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = loader.DefaultFS()
	}

	path := opts.Path
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	var merged map[string]any
	source := ""
	if path != "" {
		if _, err := fsys.Stat(path); err == nil {
			file, err := loader.NewTOMLLoaderWithFS(fsys, path).LoadWithIncludes(path, maxIncludeDepth)
			if err != nil {
				return Config{}, err
			}
			merged = loader.DeepMerge(merged, file)
			source = path
		} else if explicit {
			return Config{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
	}

	env := loader.NewEnvLoader()
	if opts.Env != nil {
		env = loader.NewEnvLoaderWithLookup(opts.Env)
	}
	overrides, err := env.Load()
	if err != nil {
		return Config{}, err
	}
	merged = loader.DeepMerge(merged, overrides)

	cfg, err := decode(merged, source)
	if err != nil {
		return Config{}, err
	}
	cfg.Source = source

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", displaySource(source), err)
	}
	return cfg, nil
}

// Parse decodes a single TOML document over the defaults without reading
// the environment.
func Parse(data []byte) (Config, error) {
	m, err := loader.Parse("<input>", data)
	if err != nil {
		return Config{}, err
	}
	cfg, err := decode(m, "<input>")
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decode re-encodes the merged tree and strictly decodes it over Default,
// so unknown keys and mistyped values are reported.
func decode(m map[string]any, source string) (Config, error) {
	cfg := Default()
	if len(m) == 0 {
		return cfg, nil
	}

	data, err := toml.Marshal(m)
	if err != nil {
		return Config{}, fmt.Errorf("encoding merged config: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		pe := loader.NewParseError(displaySource(source), err)
		// Positions refer to the re-encoded document, not the user's file.
		pe.Line, pe.Column = 0, 0
		return Config{}, pe
	}
	return cfg, nil
}

func displaySource(source string) string {
	if source == "" {
		return "<defaults>"
	}
	return source
}

// Marshal encodes cfg as TOML.
func Marshal(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}
