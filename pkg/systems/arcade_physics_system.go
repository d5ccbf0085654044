package systems

import (
	"log"

	"github.com/decker502/coinfountain/pkg/components"
	"github.com/decker502/coinfountain/pkg/config"
	"github.com/decker502/coinfountain/pkg/ecs"
)

// OutOfBoundsHandler 实体完全离开世界时的回调
type OutOfBoundsHandler func(id ecs.EntityID)

// ArcadePhysicsSystem 街机式物理
//
// 对拥有 ArcadeBodyComponent 的实体做速度/重力积分，并处理世界边界：
//   - CollideWorldBounds: 限制在世界内并按 Bounce 反弹
//   - CheckWorldBounds: 完全离开世界时触发一次出界回调
//
// 没有刚体间碰撞。
type ArcadePhysicsSystem struct {
	entityManager *ecs.EntityManager
	bounds        config.WorldBounds
	outOfBounds   map[ecs.EntityID]OutOfBoundsHandler
}

// NewArcadePhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器
//   - bounds: 世界边界
//
// 返回:
//   - *ArcadePhysicsSystem: 物理系统实例
func NewArcadePhysicsSystem(em *ecs.EntityManager, bounds config.WorldBounds) *ArcadePhysicsSystem {
	return &ArcadePhysicsSystem{
		entityManager: em,
		bounds:        bounds,
		outOfBounds:   make(map[ecs.EntityID]OutOfBoundsHandler),
	}
}

// Bounds 返回世界边界
func (s *ArcadePhysicsSystem) Bounds() config.WorldBounds {
	return s.bounds
}

// OnOutOfBounds 为实体注册出界回调，重复注册会覆盖
func (s *ArcadePhysicsSystem) OnOutOfBounds(id ecs.EntityID, handler OutOfBoundsHandler) {
	if handler == nil {
		delete(s.outOfBounds, id)
		return
	}
	s.outOfBounds[id] = handler
}

// RemoveOutOfBounds 移除实体的出界回调
func (s *ArcadePhysicsSystem) RemoveOutOfBounds(id ecs.EntityID) {
	delete(s.outOfBounds, id)
}

// Update 积分所有启用的刚体
//
// 使用半隐式欧拉：先用重力更新速度，再用新速度更新位置。
func (s *ArcadePhysicsSystem) Update(deltaTime float64) {
	bodies := ecs.GetEntitiesWith2[
		*components.ArcadeBodyComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range bodies {
		body, _ := ecs.GetComponent[*components.ArcadeBodyComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if !body.Enabled {
			continue
		}

		body.VelocityX += body.GravityX * deltaTime
		body.VelocityY += body.GravityY * deltaTime
		pos.X += body.VelocityX * deltaTime
		pos.Y += body.VelocityY * deltaTime

		left, top, right, bottom := s.boundsOf(id, pos)

		if body.CollideWorldBounds {
			s.collide(body, pos, left, top, right, bottom)
			continue
		}

		if body.CheckWorldBounds {
			inWorld := s.bounds.Intersects(left, top, right, bottom)
			if body.InWorld && !inWorld {
				body.InWorld = false
				s.fireOutOfBounds(id)
			} else if inWorld {
				body.InWorld = true
			}
		}
	}

	// 清理已经被删除的实体的回调
	for id := range s.outOfBounds {
		if !s.entityManager.Exists(id) {
			delete(s.outOfBounds, id)
		}
	}
}

func (s *ArcadePhysicsSystem) boundsOf(id ecs.EntityID, pos *components.PositionComponent) (left, top, right, bottom float64) {
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		return sprite.Bounds(pos.X, pos.Y)
	}
	return pos.X, pos.Y, pos.X, pos.Y
}

func (s *ArcadePhysicsSystem) collide(body *components.ArcadeBodyComponent, pos *components.PositionComponent, left, top, right, bottom float64) {
	if left < s.bounds.X {
		pos.X += s.bounds.X - left
		body.VelocityX = -body.VelocityX * body.Bounce
	} else if right > s.bounds.Right() {
		pos.X -= right - s.bounds.Right()
		body.VelocityX = -body.VelocityX * body.Bounce
	}

	if top < s.bounds.Y {
		pos.Y += s.bounds.Y - top
		body.VelocityY = -body.VelocityY * body.Bounce
	} else if bottom > s.bounds.Bottom() {
		pos.Y -= bottom - s.bounds.Bottom()
		body.VelocityY = -body.VelocityY * body.Bounce
	}
}

func (s *ArcadePhysicsSystem) fireOutOfBounds(id ecs.EntityID) {
	handler, ok := s.outOfBounds[id]
	if !ok {
		return
	}
	log.Printf("[ArcadePhysics] Entity %d left the world", id)
	handler(id)
}
