package components

// ArcadeBodyComponent 街机式刚体
//
// 只做速度/重力积分与世界边界处理，不做刚体间碰撞。
// 由 ArcadePhysicsSystem 每帧更新。
type ArcadeBodyComponent struct {
	// Enabled 为 false 时物理系统跳过该实体（被 Kill 的实体）
	Enabled bool

	VelocityX float64 // 像素/秒
	VelocityY float64
	GravityX  float64 // 像素/秒²
	GravityY  float64

	// CollideWorldBounds 为 true 时实体被限制在世界内，按 Bounce 反弹
	CollideWorldBounds bool
	Bounce             float64

	// CheckWorldBounds 为 true 时，实体完全离开世界会触发出界回调
	CheckWorldBounds bool
	// InWorld 上一帧是否在世界内，用于只在 内->外 时触发一次回调
	InWorld bool
}
