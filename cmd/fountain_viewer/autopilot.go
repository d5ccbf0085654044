package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/coinfountain/pkg/systems"
	"github.com/decker502/coinfountain/pkg/types"
)

// autoPilot 是一个脚本化的按键来源，依次演示四种发射模式
//
// 每个阶段第一帧按下对应的方向键，之后按住发射键直到阶段结束。
// manual 为 true 时直接读取真实键盘。
type autoPilot struct {
	bindings    systems.KeyBindings
	phases      []types.EmitterMode
	phaseFrames int

	phase  int
	frame  int
	manual bool
}

func newAutoPilot(bindings systems.KeyBindings, phaseFrames int) *autoPilot {
	return &autoPilot{
		bindings: bindings,
		phases: []types.EmitterMode{
			types.EmitterModeDefault,
			types.EmitterModeFlow,
			types.EmitterModeExplode,
			types.EmitterModeBasic,
		},
		phaseFrames: phaseFrames,
	}
}

// Advance 前进一帧，必须在场景 Update 之后调用
func (a *autoPilot) Advance() {
	if a.manual {
		return
	}
	a.frame++
	if a.frame >= a.phaseFrames {
		a.frame = 0
		a.phase = (a.phase + 1) % len(a.phases)
	}
}

// Mode 返回当前阶段演示的模式
func (a *autoPilot) Mode() types.EmitterMode {
	return a.phases[a.phase]
}

func (a *autoPilot) directionKeys() []ebiten.Key {
	switch a.Mode() {
	case types.EmitterModeDefault:
		return a.bindings.Left
	case types.EmitterModeFlow:
		return a.bindings.Right
	case types.EmitterModeExplode:
		return a.bindings.Up
	case types.EmitterModeBasic:
		return a.bindings.Down
	}
	return nil
}

// IsKeyPressed 实现 systems.KeySource
func (a *autoPilot) IsKeyPressed(key ebiten.Key) bool {
	if a.manual {
		return ebiten.IsKeyPressed(key)
	}
	if a.frame == 0 {
		return containsKey(a.directionKeys(), key)
	}
	return containsKey(a.bindings.Trigger, key)
}

func containsKey(keys []ebiten.Key, key ebiten.Key) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
