package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	scenes       map[string]Scene
	currentKey   string
	currentScene Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use Add and Start to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		scenes: make(map[string]Scene),
	}
}

// Add 注册场景
//
// 参数:
//   - key: 场景键（如 "GamePlay"）
//   - scene: 场景实例
func (sm *SceneManager) Add(key string, scene Scene) {
	sm.scenes[key] = scene
}

// Start 启动指定键的场景
//
// 依次调用 Init 和 Create，Create 成功后才切换为当前场景。
//
// 返回:
//   - error: 场景未注册或 Create 失败
func (sm *SceneManager) Start(key string) error {
	scene, ok := sm.scenes[key]
	if !ok {
		return fmt.Errorf("scene %q is not registered", key)
	}

	log.Printf("[SceneManager] 启动场景: %s", key)
	scene.Init()
	if err := scene.Create(); err != nil {
		return fmt.Errorf("failed to create scene %q: %w", key, err)
	}

	sm.currentKey = key
	sm.currentScene = scene
	return nil
}

// CurrentKey 返回当前场景的键，没有活动场景时返回空字符串
func (sm *SceneManager) CurrentKey() string {
	return sm.currentKey
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
