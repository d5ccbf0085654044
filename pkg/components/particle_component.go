package components

import "github.com/decker502/coinfountain/pkg/ecs"

// ParticleComponent represents a single particle instance in the particle system.
// Position lives in PositionComponent and the visual in SpriteComponent;
// this component holds the motion and lifecycle state.
//
// This is a pure data component following ECS principles - it contains no methods.
type ParticleComponent struct {
	// Emitter 生成该粒子的发射器实体
	Emitter ecs.EntityID

	// Velocity (速度, 像素/秒)
	VelocityX float64
	VelocityY float64

	// Gravity (重力, 像素/秒²) - copied from the emitter at spawn time
	GravityX float64
	GravityY float64

	// RotationSpeed 旋转速度（度/秒）
	RotationSpeed float64

	// Lifecycle (生命周期, 秒)
	Age      float64
	Lifespan float64

	CollideWorldBounds bool
	Bounce             float64
}
