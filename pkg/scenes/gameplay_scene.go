// Package scenes 包含金币喷泉演示的场景
package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/coinfountain/pkg/config"
	"github.com/decker502/coinfountain/pkg/ecs"
	"github.com/decker502/coinfountain/pkg/entities"
	"github.com/decker502/coinfountain/pkg/game"
	"github.com/decker502/coinfountain/pkg/systems"
	"github.com/decker502/coinfountain/pkg/types"
)

// GamePlayKey 是 GamePlay 场景在 SceneManager 中的注册键
const GamePlayKey = "GamePlay"

const (
	hudX = 16
	hudY = 16
)

var hudColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// GamePlayOptions 场景启动参数
type GamePlayOptions struct {
	// InitialMode 覆盖配置中的初始模式，EmitterModeUnknown 表示使用配置
	InitialMode types.EmitterMode
	// Debug 显示调试覆盖层
	Debug bool
	// Keys 按键来源，为 nil 时读取 Ebitengine 键盘
	Keys systems.KeySource
	// Bindings 按键绑定，为 nil 时使用默认绑定
	Bindings *systems.KeyBindings
	// Rng 随机数源，为 nil 时使用随机种子
	Rng *rand.Rand
}

// GamePlayScene 金币喷泉场景
//
// 场景由一个粒子发射器和一个物理金币组成；方向键切换发射模式，
// 空格键按住时按当前模式持续发射。
type GamePlayScene struct {
	resourceManager *game.ResourceManager
	cfg             *config.CoinFountainConfig
	opts            GamePlayOptions

	entityManager *ecs.EntityManager
	bounds        config.WorldBounds

	inputSystem     *systems.InputSystem
	physicsSystem   *systems.ArcadePhysicsSystem
	particleSystem  *systems.ParticleEmitterSystem
	animationSystem *systems.AnimationSystem
	renderSystem    *systems.RenderSystem

	fountain   *systems.CoinFountain
	controller *systems.EmitterModeController

	emitterID ecs.EntityID
	hudFace   text.Face
	created   bool
}

// NewGamePlayScene 创建场景（尚未创建任何实体，见 Create）
//
// 参数:
//   - rm: 资源管理器
//   - cfg: 场景配置，为 nil 时使用默认配置
//   - opts: 启动参数
func NewGamePlayScene(rm *game.ResourceManager, cfg *config.CoinFountainConfig, opts GamePlayOptions) *GamePlayScene {
	if cfg == nil {
		cfg = config.DefaultCoinFountainConfig()
	}
	return &GamePlayScene{
		resourceManager: rm,
		cfg:             cfg,
		opts:            opts,
	}
}

// Key 实现 game.Keyed
func (s *GamePlayScene) Key() string {
	return GamePlayKey
}

// Init 场景启动时调用
func (s *GamePlayScene) Init() {
	log.Printf("[GamePlay] Init: world %.0fx%.0f, debug=%v", s.cfg.World.Width, s.cfg.World.Height, s.opts.Debug)
}

// Create 加载资源，创建实体和系统
func (s *GamePlayScene) Create() error {
	if s.resourceManager == nil {
		return fmt.Errorf("gameplay scene requires a resource manager")
	}

	rng := s.opts.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	if err := s.resourceManager.LoadSceneAssets(s.cfg); err != nil {
		return fmt.Errorf("failed to load scene assets: %w", err)
	}

	s.entityManager = ecs.NewEntityManager()
	s.bounds = config.WorldBounds{Width: s.cfg.World.Width, Height: s.cfg.World.Height}

	bgColor, err := config.ParseHexColor(s.cfg.World.BackgroundColor)
	if err != nil {
		return fmt.Errorf("invalid background color: %w", err)
	}
	entities.NewBackground(s.entityManager, s.resourceManager, game.AssetBackground, s.bounds.Width, s.bounds.Height, bgColor)

	// 发射器位于世界底部中央
	s.emitterID, err = entities.NewCoinEmitter(
		s.entityManager,
		s.cfg.Emitter,
		s.bounds.CenterX(),
		s.bounds.Bottom()+s.cfg.Emitter.OriginOffsetY,
		game.AssetCoin,
	)
	if err != nil {
		return fmt.Errorf("failed to create coin emitter: %w", err)
	}

	bindings := systems.DefaultKeyBindings()
	if s.opts.Bindings != nil {
		bindings = *s.opts.Bindings
	}
	s.inputSystem = systems.NewInputSystem(s.opts.Keys, bindings)
	s.physicsSystem = systems.NewArcadePhysicsSystem(s.entityManager, s.bounds)
	s.particleSystem = systems.NewParticleEmitterSystem(s.entityManager, s.resourceManager, s.bounds, rand.New(rand.NewSource(rng.Int63())))
	s.animationSystem = systems.NewAnimationSystem(s.entityManager)
	s.renderSystem = systems.NewRenderSystem(s.entityManager)

	s.fountain, err = systems.NewCoinFountain(systems.CoinFountainOptions{
		EntityManager: s.entityManager,
		Particles:     s.particleSystem,
		Physics:       s.physicsSystem,
		Images:        s.resourceManager,
		Rng:           rng,
		Emitter:       s.emitterID,
		CoinImageKey:  game.AssetStarBig,
		Config:        s.cfg,
	})
	if err != nil {
		return fmt.Errorf("failed to create coin fountain: %w", err)
	}

	initial := s.cfg.Controller.InitialMode
	if s.opts.InitialMode != types.EmitterModeUnknown {
		initial = s.opts.InitialMode
	}
	s.controller = systems.NewEmitterModeController(s.fountain, initial, s.cfg.Controller.ResetMode)

	s.hudFace = s.resourceManager.DefaultFontFace()
	s.created = true

	log.Printf("[GamePlay] Created: emitter %d, initial mode %s, reset mode %s",
		s.emitterID, initial, s.cfg.Controller.ResetMode)
	return nil
}

// Update 每个 tick 调用一次
//
// 顺序：输入采样 -> 模式选择 -> 发射 -> 物理 -> 粒子 -> 动画 -> 清理
func (s *GamePlayScene) Update(deltaTime float64) {
	if !s.created {
		panic("scenes: GamePlayScene.Update called before Create")
	}

	s.controller.OnInputSample(s.inputSystem.SampleDirection())
	s.controller.Tick(s.inputSystem.SampleTrigger())

	s.physicsSystem.Update(deltaTime)
	s.particleSystem.Update(deltaTime)
	s.animationSystem.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景
func (s *GamePlayScene) Draw(screen *ebiten.Image) {
	if !s.created {
		return
	}

	s.renderSystem.Draw(screen)
	s.drawHUD(screen)

	if s.opts.Debug {
		s.drawDebug(screen)
	}
}

func (s *GamePlayScene) drawHUD(screen *ebiten.Image) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(hudX, hudY)
	op.ColorScale.ScaleWithColor(hudColor)
	text.Draw(screen, s.hudText(), s.hudFace, op)
}

func (s *GamePlayScene) hudText() string {
	return fmt.Sprintf("Mode: %s   [Left] default  [Right] flow  [Up] explode  [Down] basic  [Space] emit",
		s.controller.Mode())
}

// SetDebug 打开或关闭调试覆盖层
func (s *GamePlayScene) SetDebug(enabled bool) {
	s.opts.Debug = enabled
}

// Controller 返回模式控制器
func (s *GamePlayScene) Controller() *systems.EmitterModeController {
	return s.controller
}

// EntityManager 返回场景的实体管理器
func (s *GamePlayScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Fountain 返回发射策略
func (s *GamePlayScene) Fountain() *systems.CoinFountain {
	return s.fountain
}

// ActiveParticles 返回发射器当前存活的粒子数
func (s *GamePlayScene) ActiveParticles() int {
	return s.particleSystem.ActiveParticles(s.emitterID)
}
