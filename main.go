package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/coinfountain/pkg/app"
	"github.com/decker502/coinfountain/pkg/config"
	"github.com/decker502/coinfountain/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	debug      = flag.Bool("debug", false, "显示调试覆盖层（刚体信息、粒子数、FPS）")
	mode       = flag.String("mode", "", "初始发射模式 (default, basic, flow, explode)，为空则使用配置文件")
	configPath = flag.String("config", "", "场景配置文件路径，为空则使用嵌入的 data/coin_fountain.yaml")
)

func main() {
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		Debug:       *debug,
		InitialMode: *mode,
		ConfigPath:  *configPath,
	})
	if err != nil {
		// 非 verbose 模式下 log 输出已被丢弃
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
