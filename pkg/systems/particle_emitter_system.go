package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/decker502/coinfountain/pkg/components"
	"github.com/decker502/coinfountain/pkg/config"
	"github.com/decker502/coinfountain/pkg/ecs"
	"github.com/decker502/coinfountain/pkg/entities"
)

// ParticleEmitterSystem manages coin emitters and the particles they spawn.
//
// It offers the three emission commands of an arcade emitter:
//   - EmitParticle: one particle right now
//   - Flow: a timed sequence of batches, stopped after a total count
//   - Explode: an instantaneous burst
//
// The system processes particles in two phases each frame:
//  1. Update all emitters (advance flow timers, spawn batches)
//  2. Update all particles (apply gravity and velocity, world bounds, expire)
//
// Every emitter owns a fixed particle pool; when all of it is alive, further
// emission is skipped until particles expire.
type ParticleEmitterSystem struct {
	entityManager *ecs.EntityManager
	images        entities.ImageSource
	bounds        config.WorldBounds
	rng           *rand.Rand
}

// NewParticleEmitterSystem creates a new ParticleEmitterSystem instance.
//
// 参数:
//   - em: 实体管理器
//   - images: 粒子纹理来源（可为 nil）
//   - bounds: 世界边界，用于粒子的边界碰撞
//   - rng: 随机数源，为 nil 时使用随机种子
func NewParticleEmitterSystem(em *ecs.EntityManager, images entities.ImageSource, bounds config.WorldBounds, rng *rand.Rand) *ParticleEmitterSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &ParticleEmitterSystem{
		entityManager: em,
		images:        images,
		bounds:        bounds,
		rng:           rng,
	}
}

func (ps *ParticleEmitterSystem) emitter(emitterID ecs.EntityID) (*components.EmitterComponent, *components.PositionComponent) {
	emitter, ok := ecs.GetComponent[*components.EmitterComponent](ps.entityManager, emitterID)
	if !ok {
		panic("systems: entity is not a particle emitter")
	}
	position, ok := ecs.GetComponent[*components.PositionComponent](ps.entityManager, emitterID)
	if !ok {
		panic("systems: particle emitter has no position")
	}
	return emitter, position
}

func (ps *ParticleEmitterSystem) between(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + ps.rng.Float64()*(max-min)
}

// EmitParticle 从发射点发射一个粒子，使用发射器当前的寿命
//
// 返回:
//   - bool: 粒子池已满时返回 false
func (ps *ParticleEmitterSystem) EmitParticle(emitterID ecs.EntityID) bool {
	emitter, position := ps.emitter(emitterID)
	return ps.spawn(emitterID, emitter, position)
}

func (ps *ParticleEmitterSystem) spawn(emitterID ecs.EntityID, emitter *components.EmitterComponent, position *components.PositionComponent) bool {
	if emitter.ActiveParticles >= emitter.MaxParticles {
		return false
	}

	entities.NewParticle(ps.entityManager, ps.images, entities.ParticleSpec{
		Emitter:            emitterID,
		ImageKey:           emitter.ImageKey,
		X:                  position.X,
		Y:                  position.Y,
		VelocityX:          ps.between(emitter.MinSpeedX, emitter.MaxSpeedX),
		VelocityY:          ps.between(emitter.MinSpeedY, emitter.MaxSpeedY),
		GravityX:           emitter.GravityX,
		GravityY:           emitter.GravityY,
		Scale:              ps.between(emitter.MinScale, emitter.MaxScale),
		RotationSpeed:      ps.between(emitter.MinRotation, emitter.MaxRotation),
		Lifespan:           emitter.Lifespan,
		CollideWorldBounds: emitter.CollideWorldBounds,
		Bounce:             emitter.Bounce,
	})

	emitter.ActiveParticles++
	emitter.TotalEmitted++
	return true
}

// Flow 开始（或重新开始）定时分批发射
//
// 第一批立即发射，之后每 interval 秒发射 quantity 个，
// 成功发射 total 个后自动停止（total <= 0 表示不限）。
// 重复调用会重置计数，与宿主发射器的语义一致。
//
// 参数:
//   - lifespan: 粒子寿命（秒）
//   - interval: 批次间隔（秒）
//   - quantity: 每批数量
//   - total: 总数上限
func (ps *ParticleEmitterSystem) Flow(emitterID ecs.EntityID, lifespan, interval float64, quantity, total int) {
	emitter, position := ps.emitter(emitterID)

	emitter.Lifespan = lifespan
	emitter.Flowing = true
	emitter.FlowInterval = interval
	emitter.FlowQuantity = quantity
	emitter.FlowTotal = total
	emitter.FlowEmitted = 0
	emitter.FlowCountdown = interval

	ps.emitBatch(emitterID, emitter, position)
}

// emitBatch 发射一批粒子，达到总数时停止流式发射
func (ps *ParticleEmitterSystem) emitBatch(emitterID ecs.EntityID, emitter *components.EmitterComponent, position *components.PositionComponent) {
	for i := 0; i < emitter.FlowQuantity; i++ {
		if ps.spawn(emitterID, emitter, position) {
			emitter.FlowEmitted++
		}
		if emitter.FlowTotal > 0 && emitter.FlowEmitted >= emitter.FlowTotal {
			emitter.Flowing = false
			return
		}
	}
}

// Explode 瞬间发射 count 个粒子并停止正在进行的流式发射
//
// 返回:
//   - int: 实际发射的数量（受粒子池限制）
func (ps *ParticleEmitterSystem) Explode(emitterID ecs.EntityID, lifespan float64, count int) int {
	emitter, position := ps.emitter(emitterID)

	emitter.Lifespan = lifespan
	emitter.Flowing = false

	emitted := 0
	for i := 0; i < count; i++ {
		if !ps.spawn(emitterID, emitter, position) {
			break
		}
		emitted++
	}
	if emitted < count {
		log.Printf("[ParticleEmitter] Explode: pool exhausted, emitted %d/%d", emitted, count)
	}
	return emitted
}

// Kill 停止发射并销毁该发射器的所有粒子
func (ps *ParticleEmitterSystem) Kill(emitterID ecs.EntityID) {
	emitter, _ := ps.emitter(emitterID)
	emitter.Flowing = false

	for _, id := range ecs.GetEntitiesWith1[*components.ParticleComponent](ps.entityManager) {
		particle, _ := ecs.GetComponent[*components.ParticleComponent](ps.entityManager, id)
		if particle.Emitter == emitterID {
			ps.release(id)
		}
	}
	emitter.ActiveParticles = 0
}

// ActiveParticles 返回发射器当前存活的粒子数
func (ps *ParticleEmitterSystem) ActiveParticles(emitterID ecs.EntityID) int {
	emitter, _ := ps.emitter(emitterID)
	return emitter.ActiveParticles
}

// Update processes all emitters and particles for the current frame.
// dt is the delta time in seconds since the last frame.
func (ps *ParticleEmitterSystem) Update(dt float64) {
	ps.updateEmitters(dt)
	ps.updateParticles(dt)
}

func (ps *ParticleEmitterSystem) updateEmitters(dt float64) {
	emitterEntities := ecs.GetEntitiesWith2[
		*components.EmitterComponent,
		*components.PositionComponent,
	](ps.entityManager)

	for _, emitterID := range emitterEntities {
		emitter, _ := ecs.GetComponent[*components.EmitterComponent](ps.entityManager, emitterID)
		position, _ := ecs.GetComponent[*components.PositionComponent](ps.entityManager, emitterID)

		if !emitter.Flowing {
			continue
		}

		emitter.FlowCountdown -= dt
		for emitter.Flowing && emitter.FlowCountdown <= 0 {
			ps.emitBatch(emitterID, emitter, position)
			emitter.FlowCountdown += emitter.FlowInterval
		}
	}
}

func (ps *ParticleEmitterSystem) updateParticles(dt float64) {
	particleEntities := ecs.GetEntitiesWith3[
		*components.ParticleComponent,
		*components.PositionComponent,
		*components.SpriteComponent,
	](ps.entityManager)

	for _, id := range particleEntities {
		particle, _ := ecs.GetComponent[*components.ParticleComponent](ps.entityManager, id)
		position, _ := ecs.GetComponent[*components.PositionComponent](ps.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](ps.entityManager, id)

		particle.Age += dt
		if particle.Age >= particle.Lifespan {
			ps.expire(id, particle)
			continue
		}

		particle.VelocityX += particle.GravityX * dt
		particle.VelocityY += particle.GravityY * dt
		position.X += particle.VelocityX * dt
		position.Y += particle.VelocityY * dt
		sprite.Rotation += particle.RotationSpeed * dt * math.Pi / 180

		if particle.CollideWorldBounds {
			ps.collideWorldBounds(particle, position, sprite)
		}
	}
}

// collideWorldBounds 将粒子限制在世界内并按 Bounce 反弹
func (ps *ParticleEmitterSystem) collideWorldBounds(particle *components.ParticleComponent, position *components.PositionComponent, sprite *components.SpriteComponent) {
	left, top, right, bottom := sprite.Bounds(position.X, position.Y)

	if left < ps.bounds.X {
		position.X += ps.bounds.X - left
		particle.VelocityX = -particle.VelocityX * particle.Bounce
	} else if right > ps.bounds.Right() {
		position.X -= right - ps.bounds.Right()
		particle.VelocityX = -particle.VelocityX * particle.Bounce
	}

	if top < ps.bounds.Y {
		position.Y += ps.bounds.Y - top
		particle.VelocityY = -particle.VelocityY * particle.Bounce
	} else if bottom > ps.bounds.Bottom() {
		position.Y -= bottom - ps.bounds.Bottom()
		particle.VelocityY = -particle.VelocityY * particle.Bounce
	}
}

func (ps *ParticleEmitterSystem) expire(id ecs.EntityID, particle *components.ParticleComponent) {
	ps.release(id)
	if emitter, ok := ecs.GetComponent[*components.EmitterComponent](ps.entityManager, particle.Emitter); ok && emitter.ActiveParticles > 0 {
		emitter.ActiveParticles--
	}
}

// release 回收粒子实体
// 立即移除粒子组件并隐藏精灵，实体在帧末 RemoveMarkedEntities 时才真正删除，
// 这样同一帧内不会被重复处理或绘制
func (ps *ParticleEmitterSystem) release(id ecs.EntityID) {
	ecs.RemoveComponent[*components.ParticleComponent](ps.entityManager, id)
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](ps.entityManager, id); ok {
		sprite.Visible = false
	}
	ps.entityManager.DestroyEntity(id)
}
