// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import (
	"fmt"
	"strings"
)

// EmitterMode 定义金币喷泉的发射模式
type EmitterMode int

const (
	// EmitterModeUnknown 未初始化的模式，控制器构造完成后不会处于该状态
	EmitterModeUnknown EmitterMode = iota
	// EmitterModeDefault 每帧从发射器发射单个粒子
	EmitterModeDefault
	// EmitterModeBasic 发射单个受重力影响的物理金币
	EmitterModeBasic
	// EmitterModeFlow 按固定间隔分批发射粒子
	EmitterModeFlow
	// EmitterModeExplode 瞬间爆发一批粒子
	EmitterModeExplode
)

// AllEmitterModes 按声明顺序列出全部有效模式
var AllEmitterModes = []EmitterMode{
	EmitterModeDefault,
	EmitterModeBasic,
	EmitterModeFlow,
	EmitterModeExplode,
}

// String 返回模式的配置名
func (m EmitterMode) String() string {
	switch m {
	case EmitterModeDefault:
		return "default"
	case EmitterModeBasic:
		return "basic"
	case EmitterModeFlow:
		return "flow"
	case EmitterModeExplode:
		return "explode"
	default:
		return "unknown"
	}
}

// IsValid 报告模式是否为四种有效模式之一
func (m EmitterMode) IsValid() bool {
	switch m {
	case EmitterModeDefault, EmitterModeBasic, EmitterModeFlow, EmitterModeExplode:
		return true
	}
	return false
}

// ParseEmitterMode 将配置名（不区分大小写）解析为发射模式
//
// 参数:
//   - name: "default"、"basic"、"flow" 或 "explode"
//
// 返回:
//   - EmitterMode: 解析结果，失败时为 EmitterModeUnknown
//   - error: 名称无法识别时返回错误
func ParseEmitterMode(name string) (EmitterMode, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, m := range AllEmitterModes {
		if m.String() == normalized {
			return m, nil
		}
	}
	return EmitterModeUnknown, fmt.Errorf("unknown emitter mode %q (want one of default, basic, flow, explode)", name)
}

// UnmarshalText 支持 YAML/flag 直接解码模式名
func (m *EmitterMode) UnmarshalText(text []byte) error {
	parsed, err := ParseEmitterMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText 将模式编码为配置名
func (m EmitterMode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("cannot marshal invalid emitter mode %d", int(m))
	}
	return []byte(m.String()), nil
}
