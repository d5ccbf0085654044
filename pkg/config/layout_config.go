package config

// 布局配置常量
// 本文件定义了窗口与世界的尺寸参数

const (
	// GameWindowWidth 是游戏逻辑屏幕宽度（像素）
	// 与背景平铺精灵的宽度一致
	GameWindowWidth = 1280

	// GameWindowHeight 是游戏逻辑屏幕高度（像素）
	GameWindowHeight = 720

	// GameWindowTitle 是桌面窗口标题
	GameWindowTitle = "Coin Fountain"

	// FixedDeltaTime 是每个 tick 的固定时间步长（秒）
	// Ebitengine 默认以 60 TPS 调用 Update
	FixedDeltaTime = 1.0 / 60.0
)

// WorldBounds 描述世界的矩形边界（世界坐标）
type WorldBounds struct {
	X, Y          float64
	Width, Height float64
}

// Right 返回右边界X坐标
func (b WorldBounds) Right() float64 { return b.X + b.Width }

// Bottom 返回下边界Y坐标
func (b WorldBounds) Bottom() float64 { return b.Y + b.Height }

// CenterX 返回水平中心X坐标
func (b WorldBounds) CenterX() float64 { return b.X + b.Width/2 }

// Intersects 检查矩形 [left,right]x[top,bottom] 是否与世界有交集
//
// 用于出界判定：只有精灵完全离开世界时才算出界。
func (b WorldBounds) Intersects(left, top, right, bottom float64) bool {
	return right > b.X && left < b.Right() && bottom > b.Y && top < b.Bottom()
}
