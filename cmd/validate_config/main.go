// validate_config 检查金币喷泉场景配置文件
//
// 用法:
//
//	go run ./cmd/validate_config [path ...]
//
// 不传参数时检查 data/coin_fountain.yaml。任一文件无效时以状态码 1 退出。
package main

import (
	"fmt"
	"os"

	"github.com/decker502/coinfountain/pkg/config"
)

func main() {
	paths := os.Args[1:]
	if len(paths) == 0 {
		paths = []string{config.DefaultCoinFountainConfigPath}
	}

	failed := 0
	for _, path := range paths {
		if err := validate(path); err != nil {
			fmt.Printf("❌ %s: %v\n", path, err)
			failed++
		}
	}

	if failed > 0 {
		fmt.Printf("❌ %d/%d 个配置文件无效\n", failed, len(paths))
		os.Exit(1)
	}
}

func validate(path string) error {
	cfg, err := config.LoadCoinFountainConfig(path)
	if err != nil {
		return err
	}

	fmt.Printf("✅ %s\n", path)
	fmt.Printf("   世界: %.0fx%.0f 背景 %s\n", cfg.World.Width, cfg.World.Height, cfg.World.BackgroundColor)
	fmt.Printf("   模式: 初始 %s, 重置 %s\n", cfg.Controller.InitialMode, cfg.Controller.ResetMode)
	fmt.Printf("   粒子池: %d, 默认寿命 %.0fms\n", cfg.Emitter.MaxParticles, cfg.Emitter.LifespanMs)
	fmt.Printf("   Flow: 寿命 %.0fms 间隔 %.0fms 每批 %d 共 %d\n",
		cfg.Flow.LifespanMs, cfg.Flow.IntervalMs, cfg.Flow.Quantity, cfg.Flow.Total)
	fmt.Printf("   Explode: 寿命 %.0fms 数量 %d\n", cfg.Explode.LifespanMs, cfg.Explode.Count)

	presets := 0
	for _, row := range cfg.BasicCoin.LeapPattern {
		presets += len(row)
	}
	fmt.Printf("   起跳表: %d 个方向, %d 个预设\n", len(cfg.BasicCoin.LeapPattern), presets)

	if cfg.Flow.Quantity > cfg.Emitter.MaxParticles {
		fmt.Printf("   ⚠️  flow.quantity (%d) 超过粒子池 (%d)\n", cfg.Flow.Quantity, cfg.Emitter.MaxParticles)
	}
	if cfg.Explode.Count > cfg.Emitter.MaxParticles {
		fmt.Printf("   ⚠️  explode.count (%d) 超过粒子池 (%d)\n", cfg.Explode.Count, cfg.Emitter.MaxParticles)
	}
	return nil
}
