package loader

import (
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of every recognized environment variable.
const EnvPrefix = "BINDERY_"

// EnvLoader loads configuration overrides from environment variables.
// Only mapped variables are read.
type EnvLoader struct {
	lookup  func(string) (string, bool)
	mapping map[string]string
}

// NewEnvLoader creates a loader with the default variable mapping.
func NewEnvLoader() *EnvLoader {
	return &EnvLoader{
		lookup:  os.LookupEnv,
		mapping: DefaultEnvMapping(),
	}
}

// NewEnvLoaderWithLookup creates a loader reading variables through lookup.
func NewEnvLoaderWithLookup(lookup func(string) (string, bool)) *EnvLoader {
	return &EnvLoader{
		lookup:  lookup,
		mapping: DefaultEnvMapping(),
	}
}

// DefaultEnvMapping returns the variable to config path mapping.
func DefaultEnvMapping() map[string]string {
	return map[string]string{
		EnvPrefix + "PLATFORM":        "keymap.platform",
		EnvPrefix + "APPLE":           "keymap.apple",
		EnvPrefix + "LEGACY":          "keymap.legacy",
		EnvPrefix + "SELECT_MOUSE":    "keymap.select_mouse",
		EnvPrefix + "ACTION_MOUSE":    "keymap.action_mouse",
		EnvPrefix + "KEYMAP_PATH":     "keymap.paths",
		EnvPrefix + "LOG_LEVEL":       "logging.level",
		EnvPrefix + "LOG_DEVELOPMENT": "logging.development",
		EnvPrefix + "DOUBLE_CLICK_MS": "click.double_click_ms",
		EnvPrefix + "CLICK_DISTANCE":  "click.max_distance",
	}
}

// AddMapping maps another variable to a config path.
func (l *EnvLoader) AddMapping(envVar, path string) {
	l.mapping[envVar] = path
}

// Load returns the set variables as a nested map. Empty values count as set.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)
	for env, path := range l.mapping {
		val, ok := l.lookup(env)
		if !ok {
			continue
		}
		if strings.HasSuffix(path, ".paths") {
			setByPath(config, path, splitList(val))
			continue
		}
		setByPath(config, path, parseValue(val))
	}
	return config, nil
}

// splitList splits a path list on the OS list separator.
func splitList(s string) []any {
	var out []any
	for _, p := range strings.Split(s, string(os.PathListSeparator)) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseValue converts booleans and integers; anything else stays a string.
func parseValue(s string) any {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return s
}

// setByPath sets value in a nested map at a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}
