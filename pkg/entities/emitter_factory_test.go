package entities

import (
	"image/color"
	"testing"

	"github.com/decker502/coinfountain/pkg/components"
	"github.com/decker502/coinfountain/pkg/config"
	"github.com/decker502/coinfountain/pkg/ecs"
)

func TestNewCoinEmitter(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultCoinFountainConfig().Emitter

	id, err := NewCoinEmitter(em, cfg, 640, 700, "coin")
	if err != nil {
		t.Fatalf("NewCoinEmitter failed: %v", err)
	}

	emitter, ok := ecs.GetComponent[*components.EmitterComponent](em, id)
	if !ok {
		t.Fatal("emitter component missing")
	}
	if emitter.MaxParticles != 100 {
		t.Errorf("expected pool of 100, got %d", emitter.MaxParticles)
	}
	if emitter.MinSpeedX != -600 || emitter.MinSpeedY != -1700 || emitter.MaxSpeedX != 600 || emitter.MaxSpeedY != -800 {
		t.Errorf("unexpected speed range: %+v", emitter)
	}
	if emitter.MinScale != 0.1 || emitter.MaxScale != 0.3 {
		t.Errorf("unexpected scale range: %.2f..%.2f", emitter.MinScale, emitter.MaxScale)
	}
	if emitter.GravityY != 2000 || emitter.Lifespan != 2 {
		t.Errorf("unexpected gravity/lifespan: %.0f %.2f", emitter.GravityY, emitter.Lifespan)
	}
	if emitter.Flowing {
		t.Error("new emitter must not be flowing")
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 640 || pos.Y != 700 {
		t.Errorf("unexpected origin (%.0f, %.0f)", pos.X, pos.Y)
	}
}

func TestNewCoinEmitterRejectsEmptyPool(t *testing.T) {
	cfg := config.DefaultCoinFountainConfig().Emitter
	cfg.MaxParticles = 0
	if _, err := NewCoinEmitter(ecs.NewEntityManager(), cfg, 0, 0, "coin"); err == nil {
		t.Error("expected error for empty particle pool")
	}
}

func TestNewParticleAndBackground(t *testing.T) {
	em := ecs.NewEntityManager()

	pid := NewParticle(em, nil, ParticleSpec{Emitter: 7, X: 1, Y: 2, VelocityY: -900, Scale: 0.2, Lifespan: 1.5})
	p, ok := ecs.GetComponent[*components.ParticleComponent](em, pid)
	if !ok || p.Emitter != 7 || p.Lifespan != 1.5 || p.VelocityY != -900 {
		t.Errorf("unexpected particle: %+v", p)
	}
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, pid)
	if sprite.Scale != 0.2 || sprite.Z != ZParticle {
		t.Errorf("unexpected particle sprite: %+v", sprite)
	}

	bid := NewBackground(em, nil, "background", 1280, 720, color.RGBA{A: 255})
	bg, ok := ecs.GetComponent[*components.BackgroundComponent](em, bid)
	if !ok || bg.Width != 1280 || bg.Height != 720 || !bg.FixedToCamera {
		t.Errorf("unexpected background: %+v", bg)
	}
}
