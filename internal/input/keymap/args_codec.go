package keymap

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the arguments as a JSON object in insertion order.
func (a Args) MarshalJSON() ([]byte, error) {
	out := []byte("{}")
	for _, arg := range a {
		raw, err := argValueJSON(arg.Value)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", arg.Name, err)
		}
		out, err = sjson.SetRawBytes(out, escapePath(arg.Name), raw)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", arg.Name, err)
		}
	}
	return out, nil
}

// UnmarshalJSON decodes a JSON object, keeping document order.
func (a *Args) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: malformed JSON", ErrInvalidArgs)
	}
	res := gjson.ParseBytes(data)
	if res.Type == gjson.Null {
		*a = nil
		return nil
	}
	parsed, err := argsFromJSON(res)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func argsFromJSON(res gjson.Result) (Args, error) {
	if !res.IsObject() {
		return nil, fmt.Errorf("%w: expected object, got %s", ErrInvalidArgs, res.Type)
	}
	var (
		out  Args
		ferr error
	)
	res.ForEach(func(k, v gjson.Result) bool {
		val, err := argValueFromJSON(v)
		if err != nil {
			ferr = fmt.Errorf("argument %q: %w", k.String(), err)
			return false
		}
		out = append(out, Arg{Name: k.String(), Value: val})
		return true
	})
	if ferr != nil {
		return nil, ferr
	}
	return out, nil
}

func argValueJSON(v any) ([]byte, error) {
	switch x := v.(type) {
	case bool:
		return []byte(strconv.FormatBool(x)), nil
	case int:
		return []byte(strconv.Itoa(x)), nil
	case float64:
		s, err := formatFloat(x)
		return []byte(s), err
	case string:
		return json.Marshal(x)
	case Args:
		return x.MarshalJSON()
	case []any:
		out := []byte("[]")
		for i, item := range x {
			raw, err := argValueJSON(item)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			if out, err = sjson.SetRawBytes(out, "-1", raw); err != nil {
				return nil, err
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidArgs, v)
	}
}

func argValueFromJSON(v gjson.Result) (any, error) {
	switch v.Type {
	case gjson.True:
		return true, nil
	case gjson.False:
		return false, nil
	case gjson.String:
		return v.Str, nil
	case gjson.Number:
		if strings.ContainsAny(v.Raw, ".eE") {
			return v.Num, nil
		}
		return int(v.Int()), nil
	case gjson.JSON:
		if v.IsObject() {
			return argsFromJSON(v)
		}
		var (
			items []any
			ferr  error
		)
		v.ForEach(func(_, item gjson.Result) bool {
			if item.Type == gjson.JSON || item.Type == gjson.Null {
				ferr = fmt.Errorf("%w: list elements must be scalars", ErrInvalidArgs)
				return false
			}
			val, err := argValueFromJSON(item)
			if err != nil {
				ferr = err
				return false
			}
			items = append(items, val)
			return true
		})
		if ferr != nil {
			return nil, ferr
		}
		if items == nil {
			items = []any{}
		}
		return items, nil
	default:
		return nil, fmt.Errorf("%w: null value", ErrInvalidArgs)
	}
}

// formatFloat renders floats so they always read back as floats.
func formatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: non-finite float", ErrInvalidArgs)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s, nil
}

// escapePath escapes an object key for use as an sjson path.
func escapePath(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\', '!', '=', '<', '>', '%', ':':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MarshalYAML encodes the arguments as an ordered YAML mapping.
func (a Args) MarshalYAML() (any, error) {
	return argsYAMLNode(a)
}

// UnmarshalYAML decodes a YAML mapping, keeping document order.
func (a *Args) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := argsFromYAML(node)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func argsYAMLNode(a Args) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, arg := range a {
		val, err := argValueYAML(arg.Value)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", arg.Name, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: arg.Name},
			val)
	}
	return node, nil
}

func argValueYAML(v any) (*yaml.Node, error) {
	scalar := func(tag, value string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
	}
	switch x := v.(type) {
	case bool:
		return scalar("!!bool", strconv.FormatBool(x)), nil
	case int:
		return scalar("!!int", strconv.Itoa(x)), nil
	case float64:
		s, err := formatFloat(x)
		if err != nil {
			return nil, err
		}
		return scalar("!!float", s), nil
	case string:
		return scalar("!!str", x), nil
	case Args:
		return argsYAMLNode(x)
	case []any:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for i, item := range x {
			n, err := argValueYAML(item)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			seq.Content = append(seq.Content, n)
		}
		return seq, nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidArgs, v)
	}
}

func argsFromYAML(node *yaml.Node) (Args, error) {
	node = resolveAlias(node)
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: expected mapping at line %d", ErrInvalidArgs, node.Line)
	}
	var out Args
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		val, err := argValueFromYAML(node.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", name, err)
		}
		out = append(out, Arg{Name: name, Value: val})
	}
	return out, nil
}

func argValueFromYAML(node *yaml.Node) (any, error) {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.MappingNode:
		return argsFromYAML(node)
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			item = resolveAlias(item)
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: list elements must be scalars", ErrInvalidArgs)
			}
			val, err := yamlScalar(item)
			if err != nil {
				return nil, err
			}
			items = append(items, val)
		}
		return items, nil
	case yaml.ScalarNode:
		return yamlScalar(node)
	default:
		return nil, fmt.Errorf("%w: unsupported YAML node at line %d", ErrInvalidArgs, node.Line)
	}
}

func yamlScalar(node *yaml.Node) (any, error) {
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case bool, int, float64, string:
		return x, nil
	case int64:
		return int(x), nil
	case uint64:
		return int(x), nil
	case nil:
		return nil, fmt.Errorf("%w: null value at line %d", ErrInvalidArgs, node.Line)
	default:
		return nil, fmt.Errorf("%w: unsupported scalar %T at line %d", ErrInvalidArgs, v, node.Line)
	}
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
