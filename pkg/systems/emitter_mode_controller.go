package systems

import (
	"fmt"
	"log"

	"github.com/decker502/coinfountain/pkg/types"
)

// CoinEmitter 是四种发射策略的集合
// 控制器按当前模式调用其中一个方法
type CoinEmitter interface {
	EmitDefault()
	EmitBasic()
	EmitFlow()
	EmitExplode()
}

// ModeChangeFunc 模式切换回调
type ModeChangeFunc func(from, to types.EmitterMode)

// EmitterModeController 管理金币喷泉的发射模式
//
// 状态机：四个状态 {Default, Basic, Flow, Explode}，没有终止状态。
// 方向键按 Left、Right、Up、Down 的优先级选择模式；
// 发射键按住时每帧调用当前模式对应的策略。
type EmitterModeController struct {
	emitter  CoinEmitter
	mode     types.EmitterMode
	fallback types.EmitterMode
	onChange []ModeChangeFunc
}

// NewEmitterModeController 创建模式控制器
//
// 参数:
//   - emitter: 发射策略，不能为 nil
//   - initial: 初始模式
//   - fallback: Reset() 使用的回退模式
//
// 任一参数无效时 panic：这属于调用方的编程错误，不是运行时可恢复的错误。
func NewEmitterModeController(emitter CoinEmitter, initial, fallback types.EmitterMode) *EmitterModeController {
	if emitter == nil {
		panic("systems: NewEmitterModeController requires a non-nil CoinEmitter")
	}
	if !initial.IsValid() {
		panic(fmt.Sprintf("systems: invalid initial emitter mode %d", int(initial)))
	}
	if !fallback.IsValid() {
		panic(fmt.Sprintf("systems: invalid fallback emitter mode %d", int(fallback)))
	}
	return &EmitterModeController{
		emitter:  emitter,
		mode:     initial,
		fallback: fallback,
	}
}

// Mode 返回当前模式
func (c *EmitterModeController) Mode() types.EmitterMode {
	return c.mode
}

// Fallback 返回 Reset() 使用的回退模式
func (c *EmitterModeController) Fallback() types.EmitterMode {
	return c.fallback
}

// OnModeChange 注册模式切换回调
func (c *EmitterModeController) OnModeChange(fn ModeChangeFunc) {
	if fn != nil {
		c.onChange = append(c.onChange, fn)
	}
}

// SetMode 切换到指定模式
// 与当前模式相同时不做任何事；无效值被忽略
func (c *EmitterModeController) SetMode(requested types.EmitterMode) {
	if !requested.IsValid() {
		log.Printf("[EmitterMode] Ignoring invalid mode %d", int(requested))
		return
	}
	if requested == c.mode {
		return
	}
	c.transition(requested)
}

// Reset 将模式重置为回退模式
func (c *EmitterModeController) Reset() {
	if c.mode != c.fallback {
		c.transition(c.fallback)
	}
}

func (c *EmitterModeController) transition(to types.EmitterMode) {
	from := c.mode
	c.mode = to
	log.Printf("[EmitterMode] %s -> %s", from, to)
	for _, fn := range c.onChange {
		fn(from, to)
	}
}

// OnInputSample 根据方向键选择模式
//
// 每帧只处理一个方向，优先级 Left > Right > Up > Down。
// 没有方向键按下时保持当前模式（不会触发 Reset）。
func (c *EmitterModeController) OnInputSample(input DirectionalInput) {
	switch {
	case input.Left:
		c.SetMode(types.EmitterModeDefault)
	case input.Right:
		c.SetMode(types.EmitterModeFlow)
	case input.Up:
		c.SetMode(types.EmitterModeExplode)
	case input.Down:
		c.SetMode(types.EmitterModeBasic)
	}
}

// Tick 发射键按住时执行当前模式的策略
func (c *EmitterModeController) Tick(trigger TriggerInput) {
	if !trigger.Held {
		return
	}

	switch c.mode {
	case types.EmitterModeDefault:
		c.emitter.EmitDefault()
	case types.EmitterModeFlow:
		c.emitter.EmitFlow()
	case types.EmitterModeExplode:
		c.emitter.EmitExplode()
	case types.EmitterModeBasic:
		c.emitter.EmitBasic()
	default:
		// 未知模式不发射
	}
}
