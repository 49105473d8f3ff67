//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 构建：
//
//	mage mobile:android
//	mage mobile:ios      # 仅 macOS
package mobile

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/roguelike/pkg/app"
	"github.com/decker502/roguelike/pkg/embedded"
	"github.com/decker502/roguelike/pkg/logging"
)

func init() {
	// assetsFS 在 embed.go 中声明
	embedded.Init(assetsFS)

	logging.Configure(os.Stderr, true)

	gameApp, err := app.NewApp(app.Config{})
	if err != nil {
		logging.For("Mobile").Fatal("game initialization failed", "err", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
