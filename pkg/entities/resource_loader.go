package entities

import "github.com/hajimehoshi/ebiten/v2"

// ImageSource 工厂函数需要的资源接口
// 由 game.ResourceManager 实现；测试中可以传 nil，实体将没有图像
type ImageSource interface {
	GetImage(key string) *ebiten.Image
	GetFrames(key string) []*ebiten.Image
}

func imageOf(src ImageSource, key string) *ebiten.Image {
	if src == nil {
		return nil
	}
	return src.GetImage(key)
}

func framesOf(src ImageSource, key string) []*ebiten.Image {
	if src == nil {
		return nil
	}
	return src.GetFrames(key)
}
