package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene driven by the SceneManager.
//
// 生命周期与宿主引擎的状态机一致：
//   - Init: 场景被启动时调用一次（日志、参数准备）
//   - Create: Init 之后调用一次，创建实体和系统
//   - Update: 每个 tick 调用一次
//   - Draw: 每帧调用一次（render 钩子）
type Scene interface {
	// Init 在场景启动时调用
	Init()

	// Create 创建场景对象；返回错误时场景不会被激活
	Create() error

	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Keyed 是一个可选接口，场景通过它声明自己的注册键
type Keyed interface {
	Key() string
}
