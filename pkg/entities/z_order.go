package entities

// 绘制层级
const (
	ZBackground = -100
	ZParticle   = 10
	ZCoin       = 20
)
