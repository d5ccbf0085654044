package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/coinfountain/pkg/types"
)

// DefaultCoinFountainConfigPath 是嵌入的默认配置路径
const DefaultCoinFountainConfigPath = "data/coin_fountain.yaml"

// CoinFountainConfig 金币喷泉场景配置
//
// 所有时间单位为毫秒（与配置文件一致），速度单位为 像素/秒，
// 重力单位为 像素/秒²。场景启动后配置不再修改。
//
// 配置文件位置: data/coin_fountain.yaml
type CoinFountainConfig struct {
	World      WorldConfig      `yaml:"world"`
	Controller ControllerConfig `yaml:"controller"`
	Emitter    EmitterConfig    `yaml:"emitter"`
	Flow       FlowConfig       `yaml:"flow"`
	Explode    ExplodeConfig    `yaml:"explode"`
	BasicCoin  BasicCoinConfig  `yaml:"basicCoin"`

	// Assets 资源键 -> 可选图片路径
	// 路径为空或加载失败时使用程序生成的纹理
	Assets map[string]string `yaml:"assets"`
}

// WorldConfig 世界尺寸与背景
type WorldConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	BackgroundColor string  `yaml:"backgroundColor"` // "#rrggbb"
}

// ControllerConfig 发射模式控制器配置
type ControllerConfig struct {
	// InitialMode 场景创建时的模式
	InitialMode types.EmitterMode `yaml:"initialMode"`
	// ResetMode Reset() 使用的回退模式
	ResetMode types.EmitterMode `yaml:"resetMode"`
}

// Vector 二维向量
type Vector struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Range 数值范围
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// EmitterConfig 粒子发射器配置
type EmitterConfig struct {
	// OriginOffsetY 发射点相对世界底部的偏移（负值向上）
	OriginOffsetY float64 `yaml:"originOffsetY"`
	// MaxParticles 粒子池大小，池满时发射被跳过
	MaxParticles int `yaml:"maxParticles"`

	MinSpeed Vector `yaml:"minSpeed"`
	MaxSpeed Vector `yaml:"maxSpeed"`
	Scale    Range  `yaml:"scale"`
	Rotation Range  `yaml:"rotation"` // 旋转速度（度/秒）
	Gravity  Vector `yaml:"gravity"`

	// LifespanMs 单粒子发射使用的初始寿命
	LifespanMs float64 `yaml:"lifespanMs"`

	CollideWorldBounds bool    `yaml:"collideWorldBounds"`
	Bounce             float64 `yaml:"bounce"`
}

// FlowConfig 定时分批发射参数
type FlowConfig struct {
	LifespanMs float64 `yaml:"lifespanMs"`
	IntervalMs float64 `yaml:"intervalMs"`
	Quantity   int     `yaml:"quantity"`
	Total      int     `yaml:"total"`
}

// ExplodeConfig 瞬间爆发参数
type ExplodeConfig struct {
	LifespanMs float64 `yaml:"lifespanMs"`
	Count      int     `yaml:"count"`
}

// BasicCoinConfig 物理金币配置
type BasicCoinConfig struct {
	Gravity      Vector  `yaml:"gravity"`
	AnimationFPS float64 `yaml:"animationFps"`
	FrameCount   int     `yaml:"frameCount"`
	// LeapPattern [方向][预设] 的起跳速度表
	LeapPattern [][]Vector `yaml:"leapPattern"`
}

// DefaultLeapPattern 返回默认起跳速度表
// 第一组向右，第二组向左；x 为跳跃距离，y 为跳跃高度
func DefaultLeapPattern() [][]Vector {
	return [][]Vector{
		{{100, -1500}, {200, -1400}, {400, -1000}, {600, -800}},
		{{-100, -1500}, {-200, -1400}, {-400, -1000}, {-600, -800}},
	}
}

// DefaultCoinFountainConfig 返回与 data/coin_fountain.yaml 一致的默认配置
func DefaultCoinFountainConfig() *CoinFountainConfig {
	return &CoinFountainConfig{
		World: WorldConfig{
			Width:           GameWindowWidth,
			Height:          GameWindowHeight,
			BackgroundColor: "#000000",
		},
		Controller: ControllerConfig{
			InitialMode: types.EmitterModeDefault,
			ResetMode:   types.EmitterModeDefault,
		},
		Emitter: EmitterConfig{
			OriginOffsetY:      -20,
			MaxParticles:       100,
			MinSpeed:           Vector{-600, -1700},
			MaxSpeed:           Vector{600, -800},
			Scale:              Range{0.1, 0.3},
			Rotation:           Range{-360, 360},
			Gravity:            Vector{0, 2000},
			LifespanMs:         2000,
			CollideWorldBounds: true,
			Bounce:             0,
		},
		Flow:    FlowConfig{LifespanMs: 2000, IntervalMs: 150, Quantity: 5, Total: 100},
		Explode: ExplodeConfig{LifespanMs: 1500, Count: 20},
		BasicCoin: BasicCoinConfig{
			Gravity:      Vector{0, 1700},
			AnimationFPS: 30,
			FrameCount:   8,
			LeapPattern:  DefaultLeapPattern(),
		},
		Assets: map[string]string{},
	}
}

// ParseCoinFountainConfig 解析 YAML 配置
//
// 未出现在 YAML 中的字段保留默认值，因此配置文件可以只覆盖部分参数。
//
// 参数:
//   - data: YAML 内容
//
// 返回:
//   - *CoinFountainConfig: 解析并验证后的配置
//   - error: 解析或验证失败时返回错误
func ParseCoinFountainConfig(data []byte) (*CoinFountainConfig, error) {
	cfg := DefaultCoinFountainConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse coin fountain config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid coin fountain config: %w", err)
	}

	return cfg, nil
}

// LoadCoinFountainConfig 从文件系统加载配置
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *CoinFountainConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadCoinFountainConfig(path string) (*CoinFountainConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read coin fountain config: %w", err)
	}
	return ParseCoinFountainConfig(data)
}

// Validate 验证配置有效性
//
// 检查：
//   - 世界尺寸为正
//   - 控制器模式为四种有效模式之一
//   - 粒子池、发射数量、时间参数为正
//   - 速度/缩放/旋转范围 Min <= Max
//   - 起跳速度表每个方向至少一个预设，且各方向预设数量一致
func (c *CoinFountainConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("world size must be positive, got %.0fx%.0f", c.World.Width, c.World.Height)
	}
	if _, err := ParseHexColor(c.World.BackgroundColor); err != nil {
		return fmt.Errorf("world.backgroundColor: %w", err)
	}

	if !c.Controller.InitialMode.IsValid() {
		return fmt.Errorf("controller.initialMode is not set")
	}
	if !c.Controller.ResetMode.IsValid() {
		return fmt.Errorf("controller.resetMode is not set")
	}

	e := c.Emitter
	if e.MaxParticles <= 0 {
		return fmt.Errorf("emitter.maxParticles must be positive, got %d", e.MaxParticles)
	}
	if e.MinSpeed.X > e.MaxSpeed.X || e.MinSpeed.Y > e.MaxSpeed.Y {
		return fmt.Errorf("emitter speed range invalid: min(%.1f, %.1f) > max(%.1f, %.1f)",
			e.MinSpeed.X, e.MinSpeed.Y, e.MaxSpeed.X, e.MaxSpeed.Y)
	}
	if e.Scale.Min > e.Scale.Max || e.Scale.Min <= 0 {
		return fmt.Errorf("emitter scale range invalid: [%.2f, %.2f]", e.Scale.Min, e.Scale.Max)
	}
	if e.Rotation.Min > e.Rotation.Max {
		return fmt.Errorf("emitter rotation range invalid: min(%.1f) > max(%.1f)", e.Rotation.Min, e.Rotation.Max)
	}
	if e.LifespanMs <= 0 {
		return fmt.Errorf("emitter.lifespanMs must be positive, got %.1f", e.LifespanMs)
	}
	if e.Bounce < 0 || e.Bounce > 1 {
		return fmt.Errorf("emitter.bounce must be in [0, 1], got %.2f", e.Bounce)
	}

	f := c.Flow
	if f.LifespanMs <= 0 || f.IntervalMs <= 0 || f.Quantity <= 0 || f.Total <= 0 {
		return fmt.Errorf("flow parameters must be positive, got lifespan=%.1f interval=%.1f quantity=%d total=%d",
			f.LifespanMs, f.IntervalMs, f.Quantity, f.Total)
	}

	if c.Explode.LifespanMs <= 0 || c.Explode.Count <= 0 {
		return fmt.Errorf("explode parameters must be positive, got lifespan=%.1f count=%d",
			c.Explode.LifespanMs, c.Explode.Count)
	}

	b := c.BasicCoin
	if b.AnimationFPS <= 0 || b.FrameCount <= 0 {
		return fmt.Errorf("basicCoin animation invalid: fps=%.1f frames=%d", b.AnimationFPS, b.FrameCount)
	}
	if len(b.LeapPattern) == 0 {
		return fmt.Errorf("basicCoin.leapPattern is empty")
	}
	presets := len(b.LeapPattern[0])
	for dir, row := range b.LeapPattern {
		if len(row) == 0 {
			return fmt.Errorf("basicCoin.leapPattern[%d] is empty", dir)
		}
		if len(row) != presets {
			return fmt.Errorf("basicCoin.leapPattern[%d] has %d presets, want %d", dir, len(row), presets)
		}
	}

	return nil
}

// MsToSeconds 将毫秒转换为秒
func MsToSeconds(ms float64) float64 {
	return ms / 1000.0
}
