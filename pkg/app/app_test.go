package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/coinfountain/pkg/config"
	"github.com/decker502/coinfountain/pkg/embedded"
	"github.com/decker502/coinfountain/pkg/scenes"
	"github.com/decker502/coinfountain/pkg/types"
)

func TestLoadSceneConfig_BuiltInDefaults(t *testing.T) {
	embedded.Init(nil)

	cfg, err := LoadSceneConfig("")
	if err != nil {
		t.Fatalf("LoadSceneConfig failed: %v", err)
	}
	if cfg.Explode.Count != 20 {
		t.Errorf("explode count = %d, want the default 20", cfg.Explode.Count)
	}
}

func TestLoadSceneConfig_Embedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		config.DefaultCoinFountainConfigPath: {Data: []byte("explode:\n  count: 7\n")},
	})
	defer embedded.Init(nil)

	cfg, err := LoadSceneConfig("")
	if err != nil {
		t.Fatalf("LoadSceneConfig failed: %v", err)
	}
	if cfg.Explode.Count != 7 {
		t.Errorf("explode count = %d, want 7", cfg.Explode.Count)
	}
	if cfg.Flow.Quantity != 5 {
		t.Errorf("unset fields keep defaults, flow quantity = %d", cfg.Flow.Quantity)
	}
}

func TestLoadSceneConfig_EmbeddedMissing(t *testing.T) {
	embedded.Init(fstest.MapFS{})
	defer embedded.Init(nil)

	if _, err := LoadSceneConfig(""); err == nil {
		t.Error("expected an error when the embedded config is missing")
	}
}

func TestLoadSceneConfig_Path(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fountain.yaml")
	if err := os.WriteFile(path, []byte("controller:\n  initialMode: flow\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSceneConfig(path)
	if err != nil {
		t.Fatalf("LoadSceneConfig failed: %v", err)
	}
	if cfg.Controller.InitialMode != types.EmitterModeFlow {
		t.Errorf("initial mode = %v, want flow", cfg.Controller.InitialMode)
	}
}

func TestNewApp_InvalidMode(t *testing.T) {
	embedded.Init(nil)

	if _, err := NewApp(Config{Verbose: true, InitialMode: "sideways"}); err == nil {
		t.Error("expected an error for an unknown mode")
	}
}

func TestNewApp_StartsGamePlay(t *testing.T) {
	embedded.Init(nil)

	a, err := NewApp(Config{Verbose: true, InitialMode: "basic"})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	sm := a.GetSceneManager()
	if sm.CurrentKey() != scenes.GamePlayKey {
		t.Errorf("CurrentKey() = %q, want %q", sm.CurrentKey(), scenes.GamePlayKey)
	}
	scene, ok := sm.GetCurrentScene().(*scenes.GamePlayScene)
	if !ok {
		t.Fatalf("current scene is %T", sm.GetCurrentScene())
	}
	if scene.Controller().Mode() != types.EmitterModeBasic {
		t.Errorf("mode = %v, want basic", scene.Controller().Mode())
	}

	w, h := a.Layout(0, 0)
	if w != config.GameWindowWidth || h != config.GameWindowHeight {
		t.Errorf("Layout() = %dx%d", w, h)
	}
}
