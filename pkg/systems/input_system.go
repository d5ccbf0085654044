package systems

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/coinfountain/pkg/utils"
)

// KeySource 提供按键按住状态
// 生产环境使用 utils.KeyboardSource，测试使用假实现
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
}

// DirectionalInput 一帧的方向键快照
type DirectionalInput struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
}

// Any 报告是否有方向键被按住
func (d DirectionalInput) Any() bool {
	return d.Left || d.Right || d.Up || d.Down
}

// TriggerInput 一帧的发射键快照
type TriggerInput struct {
	Held bool
}

// KeyBindings 方向与发射的按键绑定，每个动作可以绑定多个键
type KeyBindings struct {
	Left    []ebiten.Key
	Right   []ebiten.Key
	Up      []ebiten.Key
	Down    []ebiten.Key
	Trigger []ebiten.Key
}

// DefaultKeyBindings 方向键 + WASD，空格发射
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:    []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right:   []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Up:      []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		Down:    []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		Trigger: []ebiten.Key{ebiten.KeySpace},
	}
}

// InputSystem 每帧轮询键盘状态
// 只读取输入，不持有任何游戏状态
type InputSystem struct {
	source   KeySource
	bindings KeyBindings
}

// NewInputSystem 创建输入系统
//
// 参数:
//   - source: 按键状态来源，为 nil 时使用 Ebitengine 键盘
//   - bindings: 按键绑定
func NewInputSystem(source KeySource, bindings KeyBindings) *InputSystem {
	if source == nil {
		source = utils.KeyboardSource{}
	}
	return &InputSystem{
		source:   source,
		bindings: bindings,
	}
}

// SampleDirection 采样方向键
func (s *InputSystem) SampleDirection() DirectionalInput {
	pressed := s.source.IsKeyPressed
	return DirectionalInput{
		Left:  utils.AnyPressed(pressed, s.bindings.Left...),
		Right: utils.AnyPressed(pressed, s.bindings.Right...),
		Up:    utils.AnyPressed(pressed, s.bindings.Up...),
		Down:  utils.AnyPressed(pressed, s.bindings.Down...),
	}
}

// SampleTrigger 采样发射键
func (s *InputSystem) SampleTrigger() TriggerInput {
	return TriggerInput{Held: utils.AnyPressed(s.source.IsKeyPressed, s.bindings.Trigger...)}
}
