package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/coinfountain/pkg/components"
	"github.com/decker502/coinfountain/pkg/ecs"
)

var (
	debugBoundsColor = color.RGBA{R: 255, G: 255, B: 0, A: 160}
	debugBodyColor   = color.RGBA{R: 255, G: 0, B: 0, A: 200}
)

// drawDebug 绘制调试信息：物理金币的刚体信息、粒子数、FPS
func (s *GamePlayScene) drawDebug(screen *ebiten.Image) {
	lines := s.debugLines()
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, hudX, hudY+24+i*16)
	}

	// 物理金币包围盒
	if coin := s.fountain.Coin(); coin != ecs.InvalidEntity {
		pos, hasPos := ecs.GetComponent[*components.PositionComponent](s.entityManager, coin)
		sprite, hasSprite := ecs.GetComponent[*components.SpriteComponent](s.entityManager, coin)
		if hasPos && hasSprite && sprite.Visible {
			left, top, right, bottom := sprite.Bounds(pos.X, pos.Y)
			vector.StrokeRect(screen, float32(left), float32(top), float32(right-left), float32(bottom-top), 1, debugBodyColor, false)
		}
	}

	// 世界边界
	vector.StrokeRect(screen, float32(s.bounds.X)+1, float32(s.bounds.Y)+1,
		float32(s.bounds.Width)-2, float32(s.bounds.Height)-2, 2, debugBoundsColor, false)
}

// debugLines 返回调试覆盖层的文本行
func (s *GamePlayScene) debugLines() []string {
	lines := []string{
		fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("Particles: %d  Entities: %d", s.ActiveParticles(), s.entityManager.EntityCount()),
	}

	coin := s.fountain.Coin()
	if coin == ecs.InvalidEntity {
		return append(lines, "Coin: not launched")
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, coin)
	body, ok := ecs.GetComponent[*components.ArcadeBodyComponent](s.entityManager, coin)
	if !ok || pos == nil {
		return append(lines, "Coin: no body")
	}
	return append(lines,
		fmt.Sprintf("Coin #%d enabled=%v inWorld=%v", coin, body.Enabled, body.InWorld),
		fmt.Sprintf("  pos=(%.1f, %.1f) vel=(%.1f, %.1f)", pos.X, pos.Y, body.VelocityX, body.VelocityY),
		fmt.Sprintf("  gravity=(%.0f, %.0f) leap=(%.0f, %.0f)", body.GravityX, body.GravityY,
			s.fountain.LastLeap().X, s.fountain.LastLeap().Y),
	)
}
