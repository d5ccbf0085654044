// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyboardSource 基于 Ebitengine 的键盘状态读取
// 实现 systems.KeySource 接口
type KeyboardSource struct{}

// IsKeyPressed 检查按键当前是否被按住
func (KeyboardSource) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// IsKeyJustPressed 检查按键是否在本帧刚被按下
func (KeyboardSource) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// AnyPressed 检查任意一个按键是否被按住
func AnyPressed(isPressed func(ebiten.Key) bool, keys ...ebiten.Key) bool {
	for _, k := range keys {
		if isPressed(k) {
			return true
		}
	}
	return false
}
