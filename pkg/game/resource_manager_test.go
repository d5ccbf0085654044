package game

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/coinfountain/pkg/config"
	"github.com/decker502/coinfountain/pkg/embedded"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func TestLoadImageMissingFile(t *testing.T) {
	rm := NewResourceManager()
	_, err := rm.LoadImage(filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Fatal("expected error for missing image")
	}
}

func TestLoadImageFromEmbeddedAndCache(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/images/coin.png": {Data: encodePNG(t, 12, 10)},
	})
	defer embedded.Init(nil)

	rm := NewResourceManager()
	img, err := rm.LoadImage("data/images/coin.png")
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 10 {
		t.Errorf("unexpected size %v", img.Bounds())
	}

	again, err := rm.LoadImage("data/images/coin.png")
	if err != nil || again != img {
		t.Error("second LoadImage should return the cached image")
	}
}

func TestLoadSceneAssetsFallsBackToGenerated(t *testing.T) {
	cfg := config.DefaultCoinFountainConfig()
	cfg.Assets[AssetCoin] = filepath.Join(t.TempDir(), "does-not-exist.png")

	rm := NewResourceManager()
	if err := rm.LoadSceneAssets(cfg); err != nil {
		t.Fatalf("LoadSceneAssets failed: %v", err)
	}

	for _, key := range []string{AssetCoin, AssetStarBig, AssetBackground} {
		if rm.GetImage(key) == nil {
			t.Errorf("expected image for %q", key)
		}
	}
	if got := len(rm.GetFrames(AssetStarBig)); got != cfg.BasicCoin.FrameCount {
		t.Errorf("expected %d flip frames, got %d", cfg.BasicCoin.FrameCount, got)
	}
}

func TestLoadSceneAssetsSplitsSpriteSheet(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/images/star.png": {Data: encodePNG(t, 40, 10)},
	})
	defer embedded.Init(nil)

	cfg := config.DefaultCoinFountainConfig()
	cfg.BasicCoin.FrameCount = 4
	cfg.Assets[AssetStarBig] = "data/images/star.png"

	rm := NewResourceManager()
	if err := rm.LoadSceneAssets(cfg); err != nil {
		t.Fatalf("LoadSceneAssets failed: %v", err)
	}

	frames := rm.GetFrames(AssetStarBig)
	if len(frames) != 4 {
		t.Fatalf("expected 4 frames, got %d", len(frames))
	}
	if frames[0].Bounds().Dx() != 10 {
		t.Errorf("expected frame width 10, got %d", frames[0].Bounds().Dx())
	}
}

func TestLoadSceneAssetsBadColor(t *testing.T) {
	cfg := config.DefaultCoinFountainConfig()
	cfg.World.BackgroundColor = "nope"

	if err := NewResourceManager().LoadSceneAssets(cfg); err == nil {
		t.Error("expected error for invalid background color")
	}
}

func TestDefaultFontFaceCached(t *testing.T) {
	rm := NewResourceManager()
	if rm.DefaultFontFace() == nil {
		t.Fatal("expected a font face")
	}
	if rm.DefaultFontFace() != rm.DefaultFontFace() {
		t.Error("font face should be cached")
	}
}
