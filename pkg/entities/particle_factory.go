package entities

import (
	"github.com/decker502/coinfountain/pkg/components"
	"github.com/decker502/coinfountain/pkg/ecs"
)

// ParticleSpec 单个粒子的初始状态
type ParticleSpec struct {
	Emitter            ecs.EntityID
	ImageKey           string
	X, Y               float64
	VelocityX          float64
	VelocityY          float64
	GravityX           float64
	GravityY           float64
	Scale              float64
	RotationSpeed      float64 // 度/秒
	Lifespan           float64 // 秒
	CollideWorldBounds bool
	Bounce             float64
}

// NewParticle 创建粒子实体
// 粒子由 ParticleEmitterSystem 负责更新和回收
func NewParticle(em *ecs.EntityManager, src ImageSource, spec ParticleSpec) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: spec.X, Y: spec.Y})
	em.AddComponent(id, &components.SpriteComponent{
		Image:   imageOf(src, spec.ImageKey),
		AnchorX: 0.5,
		AnchorY: 0.5,
		Scale:   spec.Scale,
		Visible: true,
		Z:       ZParticle,
	})
	em.AddComponent(id, &components.ParticleComponent{
		Emitter:            spec.Emitter,
		VelocityX:          spec.VelocityX,
		VelocityY:          spec.VelocityY,
		GravityX:           spec.GravityX,
		GravityY:           spec.GravityY,
		RotationSpeed:      spec.RotationSpeed,
		Lifespan:           spec.Lifespan,
		CollideWorldBounds: spec.CollideWorldBounds,
		Bounce:             spec.Bounce,
	})

	return id
}
