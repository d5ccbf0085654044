// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/coinfountain/pkg/config"
	"github.com/decker502/coinfountain/pkg/embedded"
	"github.com/decker502/coinfountain/pkg/game"
	"github.com/decker502/coinfountain/pkg/scenes"
	"github.com/decker502/coinfountain/pkg/types"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Debug 显示调试覆盖层
	Debug bool
	// InitialMode 初始发射模式名（default/basic/flow/explode），为空则使用配置文件
	InitialMode string
	// ConfigPath 场景配置文件路径，为空则使用嵌入的 data/coin_fountain.yaml
	ConfigPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	sceneConfig, err := LoadSceneConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	initialMode := types.EmitterModeUnknown
	if cfg.InitialMode != "" {
		initialMode, err = types.ParseEmitterMode(cfg.InitialMode)
		if err != nil {
			return nil, fmt.Errorf("invalid initial mode: %w", err)
		}
	}

	resourceManager := game.NewResourceManager()
	sceneManager := game.NewSceneManager()

	gamePlay := scenes.NewGamePlayScene(resourceManager, sceneConfig, scenes.GamePlayOptions{
		InitialMode: initialMode,
		Debug:       cfg.Debug,
	})
	sceneManager.Add(gamePlay.Key(), gamePlay)

	if err := sceneManager.Start(scenes.GamePlayKey); err != nil {
		return nil, fmt.Errorf("场景启动失败: %w", err)
	}
	log.Printf("[App] Scene %s started", sceneManager.CurrentKey())

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// LoadSceneConfig 加载场景配置
//
// path 为空时读取嵌入的默认配置；嵌入资源未初始化时使用内置默认值。
func LoadSceneConfig(path string) (*config.CoinFountainConfig, error) {
	if path != "" {
		cfg, err := config.LoadCoinFountainConfig(path)
		if err != nil {
			return nil, fmt.Errorf("配置加载失败: %w", err)
		}
		log.Printf("[Config] Loaded %s", path)
		return cfg, nil
	}

	if !embedded.IsInitialized() {
		log.Printf("[Config] Embedded data not initialized, using built-in defaults")
		return config.DefaultCoinFountainConfig(), nil
	}

	data, err := embedded.ReadFile(config.DefaultCoinFountainConfigPath)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	cfg, err := config.ParseCoinFountainConfig(data)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	log.Printf("[Config] Loaded embedded %s", config.DefaultCoinFountainConfigPath)
	return cfg, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Printf("[App] Escape pressed, quitting")
		return ebiten.Termination
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(config.FixedDeltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
