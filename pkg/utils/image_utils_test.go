package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestSplitFrames(t *testing.T) {
	sheet := ebiten.NewImage(80, 10)

	frames := SplitFrames(sheet, 4)
	if len(frames) != 4 {
		t.Fatalf("expected 4 frames, got %d", len(frames))
	}
	for i, f := range frames {
		b := f.Bounds()
		if b.Dx() != 20 || b.Dy() != 10 {
			t.Errorf("frame %d size = %dx%d, want 20x10", i, b.Dx(), b.Dy())
		}
		if b.Min.X != i*20 {
			t.Errorf("frame %d starts at x=%d, want %d", i, b.Min.X, i*20)
		}
	}

	if got := SplitFrames(sheet, 1); len(got) != 1 || got[0] != sheet {
		t.Error("frameCount 1 should return the sheet itself")
	}
	if got := SplitFrames(nil, 4); got != nil {
		t.Error("nil sheet should return nil")
	}
}

func TestNewFlipFrames(t *testing.T) {
	face := NewCoinImage(8)
	frames := NewFlipFrames(face, 6)
	if len(frames) != 6 {
		t.Fatalf("expected 6 frames, got %d", len(frames))
	}
	for i, f := range frames {
		if f.Bounds().Dx() != 16 || f.Bounds().Dy() != 16 {
			t.Errorf("frame %d has size %v, want 16x16", i, f.Bounds())
		}
	}

	if got := NewFlipFrames(face, 0); len(got) != 1 || got[0] != face {
		t.Error("frameCount 0 should yield the face itself")
	}
	if got := NewFlipFrames(nil, 4); got != nil {
		t.Error("nil face should yield nil")
	}
}
