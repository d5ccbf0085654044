package entities

import (
	"image/color"

	"github.com/decker502/coinfountain/pkg/components"
	"github.com/decker502/coinfountain/pkg/ecs"
)

// NewBackground 创建固定在摄像机上的平铺背景
//
// 参数:
//   - em: 实体管理器
//   - src: 图像资源（可为 nil，只填充纯色）
//   - imageKey: 平铺块资源键
//   - width, height: 平铺区域尺寸
//   - fill: 底色
func NewBackground(em *ecs.EntityManager, src ImageSource, imageKey string, width, height float64, fill color.RGBA) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{})
	em.AddComponent(id, &components.BackgroundComponent{
		Tile:          imageOf(src, imageKey),
		Width:         width,
		Height:        height,
		Color:         fill,
		FixedToCamera: true,
	})
	return id
}
