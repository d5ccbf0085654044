package entities

import (
	"fmt"

	"github.com/decker502/coinfountain/pkg/components"
	"github.com/decker502/coinfountain/pkg/config"
	"github.com/decker502/coinfountain/pkg/ecs"
)

// NewCoinEmitter 创建金币粒子发射器实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 发射器配置（速度、缩放、重力、粒子池等）
//   - x, y: 发射点世界坐标
//   - imageKey: 粒子纹理资源键
//
// 返回:
//   - ecs.EntityID: 发射器实体ID
//   - error: 参数无效时返回错误
func NewCoinEmitter(em *ecs.EntityManager, cfg config.EmitterConfig, x, y float64, imageKey string) (ecs.EntityID, error) {
	if em == nil {
		return ecs.InvalidEntity, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg.MaxParticles <= 0 {
		return ecs.InvalidEntity, fmt.Errorf("emitter needs a positive particle pool, got %d", cfg.MaxParticles)
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.EmitterComponent{
		MaxParticles:       cfg.MaxParticles,
		MinSpeedX:          cfg.MinSpeed.X,
		MinSpeedY:          cfg.MinSpeed.Y,
		MaxSpeedX:          cfg.MaxSpeed.X,
		MaxSpeedY:          cfg.MaxSpeed.Y,
		MinScale:           cfg.Scale.Min,
		MaxScale:           cfg.Scale.Max,
		MinRotation:        cfg.Rotation.Min,
		MaxRotation:        cfg.Rotation.Max,
		GravityX:           cfg.Gravity.X,
		GravityY:           cfg.Gravity.Y,
		Lifespan:           config.MsToSeconds(cfg.LifespanMs),
		CollideWorldBounds: cfg.CollideWorldBounds,
		Bounce:             cfg.Bounce,
		ImageKey:           imageKey,
	})

	return id, nil
}
