package systems

import (
	"log"

	"github.com/decker502/coinfountain/pkg/components"
	"github.com/decker502/coinfountain/pkg/ecs"
)

// AnimationSystem 管理所有实体的帧动画
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建一个新的动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
	}
}

// Update 更新所有动画实体的帧
func (s *AnimationSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith2[
		*components.AnimationComponent,
		*components.SpriteComponent,
	](s.entityManager)

	for _, id := range ids {
		anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

		// 隐藏的精灵（被 Kill）不推进动画
		if !anim.IsPlaying || anim.IsFinished || !sprite.Visible {
			continue
		}
		if len(anim.Frames) == 0 || anim.FPS <= 0 {
			continue
		}

		frameDuration := 1.0 / anim.FPS
		anim.FrameCounter += deltaTime

		for anim.FrameCounter >= frameDuration {
			anim.FrameCounter -= frameDuration
			anim.CurrentFrame++

			if anim.CurrentFrame >= len(anim.Frames) {
				if anim.IsLooping {
					anim.CurrentFrame = 0
				} else {
					// 非循环动画: 停在最后一帧并标记完成
					anim.CurrentFrame = len(anim.Frames) - 1
					anim.IsFinished = true
					anim.IsPlaying = false
					log.Printf("[AnimationSystem] Animation %q finished (entity %d)", anim.Name, id)
					break
				}
			}
		}

		sprite.Image = anim.Frames[anim.CurrentFrame]
	}
}

// Play 从第一帧开始播放实体的动画
func (s *AnimationSystem) Play(id ecs.EntityID, loop bool) {
	anim, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
	if !ok {
		return
	}
	anim.CurrentFrame = 0
	anim.FrameCounter = 0
	anim.IsLooping = loop
	anim.IsPlaying = true
	anim.IsFinished = false
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok && len(anim.Frames) > 0 {
		sprite.Image = anim.Frames[0]
	}
}
