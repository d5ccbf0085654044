package systems

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// fakeKeys 用集合模拟按住的按键
type fakeKeys map[ebiten.Key]bool

func (f fakeKeys) IsKeyPressed(key ebiten.Key) bool { return f[key] }

func TestInputSystem_SampleDirection(t *testing.T) {
	tests := []struct {
		name    string
		pressed fakeKeys
		want    DirectionalInput
	}{
		{"nothing", fakeKeys{}, DirectionalInput{}},
		{"arrow left", fakeKeys{ebiten.KeyArrowLeft: true}, DirectionalInput{Left: true}},
		{"wasd right", fakeKeys{ebiten.KeyD: true}, DirectionalInput{Right: true}},
		{"up and down", fakeKeys{ebiten.KeyArrowUp: true, ebiten.KeyS: true}, DirectionalInput{Up: true, Down: true}},
		{"trigger only", fakeKeys{ebiten.KeySpace: true}, DirectionalInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewInputSystem(tt.pressed, DefaultKeyBindings())
			if got := s.SampleDirection(); got != tt.want {
				t.Errorf("SampleDirection() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInputSystem_SampleTrigger(t *testing.T) {
	s := NewInputSystem(fakeKeys{ebiten.KeySpace: true}, DefaultKeyBindings())
	if !s.SampleTrigger().Held {
		t.Error("space should hold the trigger")
	}

	s = NewInputSystem(fakeKeys{ebiten.KeyArrowLeft: true}, DefaultKeyBindings())
	if s.SampleTrigger().Held {
		t.Error("arrow keys must not hold the trigger")
	}
}

func TestInputSystem_CustomBindings(t *testing.T) {
	bindings := KeyBindings{
		Left:    []ebiten.Key{ebiten.KeyJ},
		Trigger: []ebiten.Key{ebiten.KeyEnter},
	}
	s := NewInputSystem(fakeKeys{ebiten.KeyJ: true, ebiten.KeyEnter: true, ebiten.KeyArrowLeft: true}, bindings)

	dir := s.SampleDirection()
	if !dir.Left || dir.Right || dir.Up || dir.Down {
		t.Errorf("SampleDirection() = %+v, want only Left", dir)
	}
	if !s.SampleTrigger().Held {
		t.Error("custom trigger should be held")
	}
}

func TestDirectionalInput_Any(t *testing.T) {
	if (DirectionalInput{}).Any() {
		t.Error("empty input should report no direction")
	}
	if !(DirectionalInput{Down: true}).Any() {
		t.Error("Down should count as a direction")
	}
}
