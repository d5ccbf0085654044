package systems

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/coinfountain/pkg/components"
	"github.com/decker502/coinfountain/pkg/config"
	"github.com/decker502/coinfountain/pkg/ecs"
	"github.com/decker502/coinfountain/pkg/entities"
)

// CoinFountain 实现四种金币发射策略
//
//   - Default: 从发射点发射一个粒子
//   - Flow: 启动定时分批发射
//   - Explode: 瞬间爆发
//   - Basic: 用随机的起跳速度发射一个物理金币
//
// 物理金币只创建一次；出界时被 Kill，下次 Basic 发射时复活并复用。
type CoinFountain struct {
	entityManager *ecs.EntityManager
	particles     *ParticleEmitterSystem
	physics       *ArcadePhysicsSystem
	images        entities.ImageSource
	rng           *rand.Rand

	emitterID ecs.EntityID
	coinID    ecs.EntityID

	flow      config.FlowConfig
	explode   config.ExplodeConfig
	basicCoin config.BasicCoinConfig
	coinImage string

	lastLeap config.Vector
}

// CoinFountainOptions CoinFountain 的依赖与参数
type CoinFountainOptions struct {
	EntityManager *ecs.EntityManager
	Particles     *ParticleEmitterSystem
	Physics       *ArcadePhysicsSystem
	Images        entities.ImageSource // 可为 nil
	Rng           *rand.Rand           // 为 nil 时使用随机种子

	// Emitter 由 entities.NewCoinEmitter 创建的发射器实体
	Emitter ecs.EntityID
	// CoinImageKey 物理金币序列帧的资源键
	CoinImageKey string

	Config *config.CoinFountainConfig
}

// NewCoinFountain 创建发射策略集合
//
// 返回:
//   - *CoinFountain: 策略实例
//   - error: 缺少必需的依赖时返回错误
func NewCoinFountain(opts CoinFountainOptions) (*CoinFountain, error) {
	if opts.EntityManager == nil || opts.Particles == nil || opts.Physics == nil {
		return nil, fmt.Errorf("coin fountain requires an entity manager, a particle system and a physics system")
	}
	if opts.Config == nil {
		return nil, fmt.Errorf("coin fountain requires a config")
	}
	if !ecs.HasComponent[*components.EmitterComponent](opts.EntityManager, opts.Emitter) {
		return nil, fmt.Errorf("entity %d is not a particle emitter", opts.Emitter)
	}
	if len(opts.Config.BasicCoin.LeapPattern) == 0 {
		return nil, fmt.Errorf("coin fountain requires a leap pattern")
	}

	rng := opts.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	return &CoinFountain{
		entityManager: opts.EntityManager,
		particles:     opts.Particles,
		physics:       opts.Physics,
		images:        opts.Images,
		rng:           rng,
		emitterID:     opts.Emitter,
		flow:          opts.Config.Flow,
		explode:       opts.Config.Explode,
		basicCoin:     opts.Config.BasicCoin,
		coinImage:     opts.CoinImageKey,
	}, nil
}

// EmitDefault 发射一个粒子
func (f *CoinFountain) EmitDefault() {
	f.particles.EmitParticle(f.emitterID)
}

// EmitFlow 开始定时分批发射
func (f *CoinFountain) EmitFlow() {
	f.particles.Flow(
		f.emitterID,
		config.MsToSeconds(f.flow.LifespanMs),
		config.MsToSeconds(f.flow.IntervalMs),
		f.flow.Quantity,
		f.flow.Total,
	)
}

// EmitExplode 瞬间爆发
func (f *CoinFountain) EmitExplode() {
	f.particles.Explode(f.emitterID, config.MsToSeconds(f.explode.LifespanMs), f.explode.Count)
}

// EmitBasic 发射物理金币
//
// 起跳速度从起跳表中均匀随机选取：方向与预设是两次独立的抽样。
// 金币不存在时在世界底部中央创建；已被 Kill 时在同一位置复活。
func (f *CoinFountain) EmitBasic() {
	if f.coinID == ecs.InvalidEntity || !f.entityManager.Exists(f.coinID) {
		if err := f.spawnCoin(); err != nil {
			log.Printf("[CoinFountain] Failed to create basic coin: %v", err)
			return
		}
	} else if !entities.IsAlive(f.entityManager, f.coinID) {
		x, y := f.spawnPoint()
		entities.ReviveSprite(f.entityManager, f.coinID, x, y)
	}

	leap := f.sampleLeap()
	f.lastLeap = leap

	body, ok := ecs.GetComponent[*components.ArcadeBodyComponent](f.entityManager, f.coinID)
	if !ok {
		return
	}
	body.VelocityX = leap.X
	body.VelocityY = leap.Y
}

func (f *CoinFountain) sampleLeap() config.Vector {
	pattern := f.basicCoin.LeapPattern
	dir := pattern[f.rng.Intn(len(pattern))]
	return dir[f.rng.Intn(len(dir))]
}

func (f *CoinFountain) spawnPoint() (float64, float64) {
	bounds := f.physics.Bounds()
	return bounds.CenterX(), bounds.Bottom()
}

func (f *CoinFountain) spawnCoin() error {
	x, y := f.spawnPoint()
	id, err := entities.NewBasicCoin(f.entityManager, f.images, entities.BasicCoinSpec{
		X:            x,
		Y:            y,
		GravityX:     f.basicCoin.Gravity.X,
		GravityY:     f.basicCoin.Gravity.Y,
		AnimationFPS: f.basicCoin.AnimationFPS,
		ImageKey:     f.coinImage,
	})
	if err != nil {
		return err
	}

	em := f.entityManager
	f.physics.OnOutOfBounds(id, func(id ecs.EntityID) {
		entities.KillSprite(em, id)
	})
	f.coinID = id

	log.Printf("[CoinFountain] Basic coin created (entity %d) at (%.0f, %.0f)", id, x, y)
	return nil
}

// Coin 返回物理金币实体，尚未创建时返回 ecs.InvalidEntity
func (f *CoinFountain) Coin() ecs.EntityID {
	return f.coinID
}

// Emitter 返回粒子发射器实体
func (f *CoinFountain) Emitter() ecs.EntityID {
	return f.emitterID
}

// LastLeap 返回最近一次 Basic 发射使用的起跳速度
func (f *CoinFountain) LastLeap() config.Vector {
	return f.lastLeap
}
