package entities

import (
	"fmt"

	"github.com/decker502/coinfountain/pkg/components"
	"github.com/decker502/coinfountain/pkg/ecs"
)

// FlipAnimation 物理金币的循环翻转动画名
const FlipAnimation = "flip"

// BasicCoinSpec 物理金币的创建参数
type BasicCoinSpec struct {
	X, Y         float64 // 出生点（锚点位置）
	GravityX     float64
	GravityY     float64
	AnimationFPS float64
	ImageKey     string // 序列帧资源键
}

// NewBasicCoin 创建物理金币实体
//
// 金币锚点居中，开启重力，不与世界边界碰撞（穿出世界时触发出界回调而不是反弹），
// 并立即开始循环播放翻转动画。
//
// 参数:
//   - em: 实体管理器
//   - src: 图像资源（可为 nil）
//   - spec: 创建参数
//
// 返回:
//   - ecs.EntityID: 金币实体ID
//   - error: em 为 nil 时返回错误
func NewBasicCoin(em *ecs.EntityManager, src ImageSource, spec BasicCoinSpec) (ecs.EntityID, error) {
	if em == nil {
		return ecs.InvalidEntity, fmt.Errorf("entity manager cannot be nil")
	}

	frames := framesOf(src, spec.ImageKey)

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: spec.X, Y: spec.Y})

	sprite := &components.SpriteComponent{
		AnchorX: 0.5,
		AnchorY: 0.5,
		Scale:   1,
		Visible: true,
		Z:       ZCoin,
	}
	if len(frames) > 0 {
		sprite.Image = frames[0]
	}
	em.AddComponent(id, sprite)

	em.AddComponent(id, &components.AnimationComponent{
		Name:      FlipAnimation,
		Frames:    frames,
		FPS:       spec.AnimationFPS,
		IsLooping: true,
		IsPlaying: true,
	})

	em.AddComponent(id, &components.ArcadeBodyComponent{
		Enabled:            true,
		GravityX:           spec.GravityX,
		GravityY:           spec.GravityY,
		CollideWorldBounds: false,
		CheckWorldBounds:   true,
		InWorld:            true,
	})

	return id, nil
}

// KillSprite 让实体失活：隐藏精灵、停用刚体并清零速度
// 实体本身保留，之后可以用 ReviveSprite 复用
func KillSprite(em *ecs.EntityManager, id ecs.EntityID) {
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id); ok {
		sprite.Visible = false
	}
	if body, ok := ecs.GetComponent[*components.ArcadeBodyComponent](em, id); ok {
		body.Enabled = false
		body.VelocityX = 0
		body.VelocityY = 0
	}
}

// ReviveSprite 重新激活被 Kill 的实体并放到指定位置
func ReviveSprite(em *ecs.EntityManager, id ecs.EntityID, x, y float64) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok {
		pos.X = x
		pos.Y = y
	}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id); ok {
		sprite.Visible = true
	}
	if body, ok := ecs.GetComponent[*components.ArcadeBodyComponent](em, id); ok {
		body.Enabled = true
		body.InWorld = true
	}
}

// IsAlive 报告实体是否存在且处于激活状态
func IsAlive(em *ecs.EntityManager, id ecs.EntityID) bool {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id)
	return ok && sprite.Visible
}
