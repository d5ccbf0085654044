package utils

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	coinGold   = color.RGBA{R: 0xe8, G: 0xc5, B: 0x00, A: 0xff}
	coinShade  = color.RGBA{R: 0xb8, G: 0x86, B: 0x0b, A: 0xff}
	coinShine  = color.RGBA{R: 0xff, G: 0xf1, B: 0x9a, A: 0xff}
	starGlow   = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0x50}
	starCenter = color.RGBA{R: 0xff, G: 0xfa, B: 0xd0, A: 0xff}
)

// NewCoinImage 生成一枚正面朝向的金币纹理
//
// 参数:
//   - radius: 金币半径（像素）
//
// 返回:
//   - *ebiten.Image: 尺寸为 2*radius 的正方形图像
func NewCoinImage(radius int) *ebiten.Image {
	size := radius * 2
	img := ebiten.NewImage(size, size)
	r := float32(radius)

	vector.DrawFilledCircle(img, r, r, r, coinShade, true)
	vector.DrawFilledCircle(img, r, r, r*0.82, coinGold, true)
	vector.StrokeCircle(img, r, r, r*0.6, r*0.08, coinShade, true)
	vector.DrawFilledCircle(img, r*0.7, r*0.7, r*0.18, coinShine, true)

	return img
}

// NewFlipFrames 生成绕竖直轴翻转的序列帧
//
// 每一帧把原图在水平方向按 |cos(θ)| 压缩，θ 在 [0, π) 上均匀分布。
//
// 参数:
//   - face: 正面图像
//   - frameCount: 帧数（<=1 时只返回原图）
//
// 返回:
//   - []*ebiten.Image: 与原图尺寸相同的帧序列
func NewFlipFrames(face *ebiten.Image, frameCount int) []*ebiten.Image {
	if face == nil {
		return nil
	}
	if frameCount <= 1 {
		return []*ebiten.Image{face}
	}
	w := face.Bounds().Dx()
	h := face.Bounds().Dy()

	frames := make([]*ebiten.Image, frameCount)
	for i := 0; i < frameCount; i++ {
		theta := math.Pi * float64(i) / float64(frameCount)
		// 保留最小宽度，避免侧面完全消失
		sx := math.Max(math.Abs(math.Cos(theta)), 0.08)

		frame := ebiten.NewImage(w, h)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(w)/2, 0)
		op.GeoM.Scale(sx, 1)
		op.GeoM.Translate(float64(w)/2, 0)
		op.Filter = ebiten.FilterLinear
		frame.DrawImage(face, op)
		frames[i] = frame
	}
	return frames
}

// NewStarImage 生成带光晕的大星星纹理（物理金币使用）
func NewStarImage(radius int) *ebiten.Image {
	size := radius * 2
	img := ebiten.NewImage(size, size)
	r := float32(radius)

	vector.DrawFilledCircle(img, r, r, r, starGlow, true)
	// 十字光芒
	vector.DrawFilledRect(img, r-r*0.12, 0, r*0.24, r*2, coinGold, true)
	vector.DrawFilledRect(img, 0, r-r*0.12, r*2, r*0.24, coinGold, true)
	vector.DrawFilledCircle(img, r, r, r*0.5, coinGold, true)
	vector.DrawFilledCircle(img, r, r, r*0.28, starCenter, true)

	return img
}

// NewBackgroundTile 生成带细网格的背景平铺块
func NewBackgroundTile(size int, base color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	img.Fill(base)

	line := color.RGBA{
		R: uint8(math.Min(float64(base.R)+24, 255)),
		G: uint8(math.Min(float64(base.G)+24, 255)),
		B: uint8(math.Min(float64(base.B)+32, 255)),
		A: 0xff,
	}
	vector.StrokeRect(img, 0, 0, float32(size), float32(size), 1, line, false)
	return img
}

// SplitFrames 将横向排列的序列帧图集切分为单帧
//
// 参数:
//   - sheet: 图集图像
//   - frameCount: 帧数（<=1 时返回整张图）
//
// 返回:
//   - []*ebiten.Image: 子图像序列（共享图集内存）
func SplitFrames(sheet *ebiten.Image, frameCount int) []*ebiten.Image {
	if sheet == nil {
		return nil
	}
	if frameCount <= 1 {
		return []*ebiten.Image{sheet}
	}

	bounds := sheet.Bounds()
	frameWidth := bounds.Dx() / frameCount
	if frameWidth == 0 {
		return []*ebiten.Image{sheet}
	}

	frames := make([]*ebiten.Image, frameCount)
	for i := 0; i < frameCount; i++ {
		x := bounds.Min.X + i*frameWidth
		rect := image.Rect(x, bounds.Min.Y, x+frameWidth, bounds.Max.Y)
		frames[i] = sheet.SubImage(rect).(*ebiten.Image)
	}
	return frames
}
