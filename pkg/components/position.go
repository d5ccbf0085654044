package components

// PositionComponent 存储实体的世界坐标
// 对精灵而言是锚点所在位置，对发射器而言是发射点
type PositionComponent struct {
	X float64
	Y float64
}
