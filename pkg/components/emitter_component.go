package components

// EmitterComponent 表示一个粒子发射器
//
// 发射参数在场景创建时配置，之后只有流式发射的运行状态会改变。
// ParticleEmitterSystem 根据这些数据生成并更新粒子。
//
// This is a pure data component following ECS principles - it contains no methods.
type EmitterComponent struct {
	// MaxParticles 粒子池大小，存活粒子达到上限时不再发射
	MaxParticles int
	// ActiveParticles 当前存活的粒子实体数量
	ActiveParticles int

	// 粒子初速度范围（像素/秒）
	MinSpeedX, MinSpeedY float64
	MaxSpeedX, MaxSpeedY float64

	// 粒子缩放范围
	MinScale, MaxScale float64

	// 粒子旋转速度范围（度/秒）
	MinRotation, MaxRotation float64

	// 粒子重力（像素/秒²）
	GravityX, GravityY float64

	// Lifespan 粒子寿命（秒），由 Flow/Explode 覆盖
	Lifespan float64

	// 世界边界碰撞
	CollideWorldBounds bool
	Bounce             float64

	// ImageKey 粒子纹理的资源键
	ImageKey string

	// 流式发射状态
	Flowing       bool    // 是否正在流式发射
	FlowInterval  float64 // 批次间隔（秒）
	FlowQuantity  int     // 每批数量
	FlowTotal     int     // 总数上限（<=0 表示无限）
	FlowEmitted   int     // 本次流式发射已发射的数量
	FlowCountdown float64 // 距下一批的剩余时间（秒）

	// TotalEmitted 发射器生命周期内的发射总数（调试显示）
	TotalEmitted int
}
