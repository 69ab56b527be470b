package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/lumber-inc/internal/game"
)

// UnknownKeyError is returned for a YAML key no config field maps to.
type UnknownKeyError struct {
	Path       string
	Key        string
	Line       int
	Suggestion string
}

func (e *UnknownKeyError) Error() string {
	where := e.Key
	if e.Path != "" {
		where = e.Path + "." + e.Key
	}
	if e.Suggestion != "" {
		return fmt.Sprintf("line %d: unknown key %q (did you mean %q?)", e.Line, where, e.Suggestion)
	}
	return fmt.Sprintf("line %d: unknown key %q", e.Line, where)
}

// Load reads a YAML config file and layers it over game.DefaultConfig.
func Load(path string) (game.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return game.Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults. Keys left out keep their default;
// an explicit null on a scene node removes it.
func Parse(data []byte) (game.Config, error) {
	cfg := game.DefaultConfig()

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return game.Config{}, fmt.Errorf("parsing config YAML: %w", err)
	}
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		doc := root.Content[0]
		if err := checkKeys(doc, reflect.TypeOf(cfg), ""); err != nil {
			return game.Config{}, err
		}
		if err := doc.Decode(&cfg); err != nil {
			return game.Config{}, fmt.Errorf("decoding config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return game.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault returns the defaults when path is empty.
func LoadOrDefault(path string) (game.Config, error) {
	if strings.TrimSpace(path) == "" {
		return game.DefaultConfig(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return game.Config{}, fmt.Errorf("config file %s not found: %w", path, err)
	}
	return cfg, err
}

func checkKeys(node *yaml.Node, t reflect.Type, path string) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || node.Kind != yaml.MappingNode {
		return nil
	}

	fields := yamlFields(t)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		ft, ok := fields[key.Value]
		if !ok {
			return &UnknownKeyError{
				Path:       path,
				Key:        key.Value,
				Line:       key.Line,
				Suggestion: closestKey(key.Value, fields),
			}
		}
		sub := key.Value
		if path != "" {
			sub = path + "." + key.Value
		}
		if err := checkKeys(node.Content[i+1], ft, sub); err != nil {
			return err
		}
	}
	return nil
}

func yamlFields(t reflect.Type) map[string]reflect.Type {
	out := make(map[string]reflect.Type, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		out[name] = f.Type
	}
	return out
}

func closestKey(key string, fields map[string]reflect.Type) string {
	best := ""
	bestDist := -1
	for name := range fields {
		d := levenshtein.ComputeDistance(key, name)
		if bestDist < 0 || d < bestDist || (d == bestDist && name < best) {
			best, bestDist = name, d
		}
	}
	if bestDist < 0 || bestDist > suggestLimit(len(key)) {
		return ""
	}
	return best
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
