package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/coinfountain/pkg/systems"
	"github.com/decker502/coinfountain/pkg/types"
)

func TestAutoPilot_DrivesController(t *testing.T) {
	pilot := newAutoPilot(systems.DefaultKeyBindings(), 3)
	input := systems.NewInputSystem(pilot, systems.DefaultKeyBindings())
	rec := &countingEmitter{}
	c := systems.NewEmitterModeController(rec, types.EmitterModeBasic, types.EmitterModeDefault)

	want := []types.EmitterMode{
		types.EmitterModeDefault,
		types.EmitterModeFlow,
		types.EmitterModeExplode,
		types.EmitterModeBasic,
	}
	for _, mode := range want {
		for f := 0; f < 3; f++ {
			c.OnInputSample(input.SampleDirection())
			c.Tick(input.SampleTrigger())
			pilot.Advance()
		}
		if c.Mode() != mode {
			t.Errorf("after phase, mode = %v, want %v", c.Mode(), mode)
		}
	}

	// 每个阶段：1 帧方向键 + 2 帧发射
	if rec.total != 8 {
		t.Errorf("emissions = %d, want 8", rec.total)
	}
}

func TestAutoPilot_DirectionOnlyOnFirstFrame(t *testing.T) {
	pilot := newAutoPilot(systems.DefaultKeyBindings(), 4)

	if !pilot.IsKeyPressed(ebiten.KeyArrowLeft) || pilot.IsKeyPressed(ebiten.KeySpace) {
		t.Error("first frame should press only the direction key")
	}
	pilot.Advance()
	if pilot.IsKeyPressed(ebiten.KeyArrowLeft) || !pilot.IsKeyPressed(ebiten.KeySpace) {
		t.Error("later frames should hold only the trigger")
	}
}

type countingEmitter struct{ total int }

func (c *countingEmitter) EmitDefault() { c.total++ }
func (c *countingEmitter) EmitBasic()   { c.total++ }
func (c *countingEmitter) EmitFlow()    { c.total++ }
func (c *countingEmitter) EmitExplode() { c.total++ }
