// Package main provides a coin fountain viewer for checking the emission
// modes without playing the scene by hand.
//
// Usage:
//
//	go run ./cmd/fountain_viewer [flags]
//
// Flags:
//
//	--phase <seconds>   How long each mode is demonstrated (default 3)
//	--config <path>     Scene config (default: built-in defaults)
//	--seed <n>          Random seed for leap and particle draws (0 = random)
//	--verbose           Enable verbose logging
//
// Controls:
//
//	M       - Toggle manual mode (real keyboard instead of the auto-pilot)
//	Tab     - Toggle debug overlay
//	Q/Esc   - Quit
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/coinfountain/pkg/app"
	"github.com/decker502/coinfountain/pkg/config"
	"github.com/decker502/coinfountain/pkg/game"
	"github.com/decker502/coinfountain/pkg/scenes"
	"github.com/decker502/coinfountain/pkg/systems"
)

var (
	phaseFlag   = flag.Float64("phase", 3, "Seconds spent on each emission mode")
	configFlag  = flag.String("config", "", "Scene config path (default: built-in defaults)")
	seedFlag    = flag.Int64("seed", 0, "Random seed (0 = random)")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

// FountainViewerGame implements ebiten.Game for the viewer
type FountainViewerGame struct {
	scene *scenes.GamePlayScene
	pilot *autoPilot
	debug bool
}

// NewFountainViewerGame creates the viewer and starts the scene
func NewFountainViewerGame(cfg *config.CoinFountainConfig, phaseSeconds float64, seed int64) (*FountainViewerGame, error) {
	if phaseSeconds <= 0 {
		return nil, fmt.Errorf("phase must be positive, got %.2f", phaseSeconds)
	}
	if seed == 0 {
		seed = rand.Int63()
	}
	log.Printf("Seed: %d", seed)

	bindings := systems.DefaultKeyBindings()
	pilot := newAutoPilot(bindings, int(phaseSeconds/config.FixedDeltaTime))

	scene := scenes.NewGamePlayScene(game.NewResourceManager(), cfg, scenes.GamePlayOptions{
		Debug:    true,
		Keys:     pilot,
		Bindings: &bindings,
		Rng:      rand.New(rand.NewSource(seed)),
	})

	sm := game.NewSceneManager()
	sm.Add(scene.Key(), scene)
	if err := sm.Start(scene.Key()); err != nil {
		return nil, err
	}

	return &FountainViewerGame{scene: scene, pilot: pilot, debug: true}, nil
}

// Update advances the auto-pilot and the scene
func (g *FountainViewerGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.pilot.manual = !g.pilot.manual
		log.Printf("Manual mode: %v", g.pilot.manual)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.debug = !g.debug
		g.scene.SetDebug(g.debug)
	}

	g.scene.Update(config.FixedDeltaTime)
	g.pilot.Advance()
	return nil
}

// Draw draws the scene and the viewer status line
func (g *FountainViewerGame) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)

	status := fmt.Sprintf("AUTO-PLAY: %s", g.pilot.Mode())
	if g.pilot.manual {
		status = "MANUAL"
	}
	ebitenutil.DebugPrintAt(screen, status+"   (M = manual, Q = quit)", 16, config.GameWindowHeight-24)
}

// Layout returns the logical screen size
func (g *FountainViewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	cfg, err := app.LoadSceneConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	viewer, err := NewFountainViewerGame(cfg, *phaseFlag, *seedFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize viewer: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Coin Fountain Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}
