package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/appengine-ltd/lumber-inc/internal/game"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lumber.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
forest:
  width: 3
  cut_down_duration: 2
avatar:
  max_logs: 5
  spawn: {x: 1, z: -2}
sell:
  price: 25
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Forest.Width != 3 || cfg.Forest.Height != 5 {
		t.Fatalf("expected width override with default height, got %dx%d", cfg.Forest.Width, cfg.Forest.Height)
	}
	if cfg.Forest.CutDownDuration != 2 || cfg.Forest.RubbingDuration != 1.5 {
		t.Fatalf("unexpected forest timings %+v", cfg.Forest)
	}
	if cfg.Avatar.MaxLogs != 5 || cfg.Avatar.Spawn != (game.Vec3{X: 1, Z: -2}) {
		t.Fatalf("unexpected avatar config %+v", cfg.Avatar)
	}
	if cfg.Avatar.Clips.Chop != "Lumber_Chop" {
		t.Fatalf("expected default clips to survive, got %+v", cfg.Avatar.Clips)
	}
	if cfg.Sell.Price != 25 || cfg.Sell.InitialDelay != 0.5 {
		t.Fatalf("unexpected sell config %+v", cfg.Sell)
	}
	if cfg.Scene.Table == nil || cfg.Scene.Table.Position.X != -9 {
		t.Fatalf("expected default table, got %+v", cfg.Scene.Table)
	}
}

func TestParseNullSceneNodeRemovesIt(t *testing.T) {
	cfg, err := Parse([]byte("scene:\n  sell_place: null\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Scene.SellPlace != nil {
		t.Fatalf("expected sell place removed, got %+v", cfg.Scene.SellPlace)
	}
	if cfg.Scene.Ground == nil {
		t.Fatalf("expected other nodes kept")
	}
}

func TestParseEmptyDocumentIsDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Forest.Width != 5 || cfg.Avatar.MoveSpeed != 5 {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestParseUnknownKeySuggestsClosest(t *testing.T) {
	_, err := Parse([]byte("avatar:\n  max_log: 10\n"))
	var uerr *UnknownKeyError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UnknownKeyError, got %v", err)
	}
	if uerr.Path != "avatar" || uerr.Key != "max_log" || uerr.Line != 2 {
		t.Fatalf("unexpected error fields %+v", uerr)
	}
	if uerr.Suggestion != "max_logs" {
		t.Fatalf("expected suggestion max_logs, got %q", uerr.Suggestion)
	}
	if !strings.Contains(err.Error(), `did you mean "max_logs"`) {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestParseNestedUnknownKey(t *testing.T) {
	_, err := Parse([]byte("scene:\n  table:\n    positon: {x: 1}\n"))
	var uerr *UnknownKeyError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UnknownKeyError, got %v", err)
	}
	if uerr.Path != "scene.table" || uerr.Suggestion != "position" {
		t.Fatalf("unexpected error fields %+v", uerr)
	}
}

func TestParseRejectsInvalidValues(t *testing.T) {
	_, err := Parse([]byte("forest:\n  regrow_scale: 3\n"))
	if err == nil || !strings.Contains(err.Error(), "regrow scale") {
		t.Fatalf("expected validation error, got %v", err)
	}
	_, err = Parse([]byte("forest: [1, 2\n"))
	if err == nil || !strings.Contains(err.Error(), "parsing config YAML") {
		t.Fatalf("expected YAML syntax error, got %v", err)
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	if err != nil || cfg.Avatar.MaxLogs != 30 {
		t.Fatalf("expected defaults for empty path, got %+v err=%v", cfg.Avatar, err)
	}
	_, err = LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
