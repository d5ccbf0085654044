package systems

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/coinfountain/pkg/components"
	"github.com/decker502/coinfountain/pkg/ecs"
)

// RenderSystem 管理游戏世界实体的渲染
//
// 绘制顺序：
//  1. 背景（BackgroundComponent，纯色底 + 平铺块）
//  2. 精灵（SpriteComponent），按 Z 升序，Z 相同时按实体ID升序
//
// 场景没有摄像机移动，世界坐标即屏幕坐标。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	drawQueue     []ecs.EntityID // 复用，避免每帧分配
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		drawQueue:     make([]ecs.EntityID, 0, 128),
	}
}

// Draw 绘制背景和全部可见精灵
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawBackgrounds(screen)

	queue := s.SortedSprites()
	for _, id := range queue {
		s.drawSprite(screen, id)
	}
}

// SortedSprites 返回按绘制顺序排列的可见精灵实体
func (s *RenderSystem) SortedSprites() []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[
		*components.SpriteComponent,
		*components.PositionComponent,
	](s.entityManager)

	s.drawQueue = s.drawQueue[:0]
	for _, id := range ids {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if sprite.Visible {
			s.drawQueue = append(s.drawQueue, id)
		}
	}

	sort.SliceStable(s.drawQueue, func(i, j int) bool {
		si, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, s.drawQueue[i])
		sj, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, s.drawQueue[j])
		if si.Z != sj.Z {
			return si.Z < sj.Z
		}
		return s.drawQueue[i] < s.drawQueue[j]
	})
	return s.drawQueue
}

func (s *RenderSystem) drawBackgrounds(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.BackgroundComponent](s.entityManager) {
		bg, _ := ecs.GetComponent[*components.BackgroundComponent](s.entityManager, id)

		vector.DrawFilledRect(screen, 0, 0, float32(bg.Width), float32(bg.Height), bg.Color, false)

		if bg.Tile == nil {
			continue
		}
		tw := float64(bg.Tile.Bounds().Dx())
		th := float64(bg.Tile.Bounds().Dy())
		if tw <= 0 || th <= 0 {
			continue
		}
		for y := 0.0; y < bg.Height; y += th {
			for x := 0.0; x < bg.Width; x += tw {
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(x, y)
				screen.DrawImage(bg.Tile, op)
			}
		}
	}
}

// drawSprite 按锚点、缩放和旋转绘制精灵
func (s *RenderSystem) drawSprite(screen *ebiten.Image, id ecs.EntityID) {
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if sprite.Image == nil {
		return
	}

	bounds := sprite.Image.Bounds()
	scale := sprite.Scale
	if scale == 0 {
		scale = 1
	}

	op := &ebiten.DrawImageOptions{}
	// 锚点移到原点，再缩放、旋转、平移到世界坐标
	op.GeoM.Translate(-float64(bounds.Dx())*sprite.AnchorX, -float64(bounds.Dy())*sprite.AnchorY)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(sprite.Rotation)
	op.GeoM.Translate(pos.X, pos.Y)
	op.Filter = ebiten.FilterLinear

	screen.DrawImage(sprite.Image, op)
}
