package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"

	"github.com/decker502/roguelike/pkg/app"
	"github.com/decker502/roguelike/pkg/config"
	"github.com/decker502/roguelike/pkg/embedded"
	"github.com/decker502/roguelike/pkg/logging"
)

func main() {
	os.Exit(run())
}

// run 返回进程退出码；所有 defer（包括 profile 的 Stop）都在 os.Exit 之前执行
func run() int {
	verbose := flag.Bool("verbose", false, "输出 Debug 级别日志")
	assetsDir := flag.String("assets", "", "从该目录读取资源并监听变化（默认使用嵌入资源）")
	fullscreen := flag.Bool("fullscreen", false, "本次以全屏启动（不保存）")
	diagnostics := flag.Bool("diagnostics", false, "本次输出帧时间诊断日志（不保存）")
	cpuProfile := flag.Bool("profile", false, "写入 CPU profile 到当前目录")
	flag.Parse()

	logging.Configure(os.Stderr, *verbose)
	logger := logging.For("Main")

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	// 初始化嵌入资源（assetsFS 在 embed.go 中声明）
	embedded.Init(assetsFS)

	gameApp, err := app.NewApp(app.Config{
		AssetsDir:   *assetsDir,
		Fullscreen:  *fullscreen,
		Diagnostics: *diagnostics,
	})
	if err != nil {
		logger.Error("game initialization failed", "err", err)
		return 1
	}

	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TargetTPS)

	runErr := ebiten.RunGame(gameApp)

	if err := gameApp.Close(); err != nil {
		logger.Warn("shutdown", "err", err)
	}

	// ebiten.Termination 表示正常退出（例如在游戏界面按 Esc）
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		logger.Error("game loop stopped", "err", runErr)
		return 1
	}
	return 0
}
