package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// BackgroundComponent 平铺背景
// FixedToCamera 为 true 时背景不随摄像机移动（当前场景没有摄像机移动）
type BackgroundComponent struct {
	Tile          *ebiten.Image
	Width         float64
	Height        float64
	Color         color.RGBA
	FixedToCamera bool
}
