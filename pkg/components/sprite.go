package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
type SpriteComponent struct {
	Image *ebiten.Image

	// AnchorX/AnchorY 锚点（0-1，相对于图像尺寸）
	// 0.5, 0.5 表示图像中心对齐 PositionComponent
	AnchorX float64
	AnchorY float64

	Scale    float64 // 0 视为 1
	Rotation float64 // 弧度

	// Visible 为 false 时不绘制；被 Kill 的精灵同时不参与物理
	Visible bool

	// Z 绘制层级，数值小的先绘制
	Z int
}

// Bounds 返回精灵在世界坐标中的轴对齐包围盒
// 未设置图像的精灵视为一个点
func (s *SpriteComponent) Bounds(x, y float64) (left, top, right, bottom float64) {
	if s.Image == nil {
		return x, y, x, y
	}
	scale := s.Scale
	if scale == 0 {
		scale = 1
	}
	w := float64(s.Image.Bounds().Dx()) * scale
	h := float64(s.Image.Bounds().Dy()) * scale
	left = x - w*s.AnchorX
	top = y - h*s.AnchorY
	return left, top, left + w, top + h
}
