// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/roguelike/pkg/config"
	"github.com/decker502/roguelike/pkg/ecs"
	"github.com/decker502/roguelike/pkg/embedded"
	"github.com/decker502/roguelike/pkg/game"
	"github.com/decker502/roguelike/pkg/logging"
	"github.com/decker502/roguelike/pkg/scenes"
	"github.com/decker502/roguelike/pkg/systems"
	"github.com/decker502/roguelike/pkg/utils"
)

// AppName 用于 gdata 存储目录
const AppName = "roguelike_demo"

// ResourceConfigPath 资源清单在资源文件系统中的路径
const ResourceConfigPath = "config/resources.yaml"

// Config 定义应用启动配置
type Config struct {
	// AssetsDir 非空时从该目录读取资源（而不是嵌入资源），并监听文件变化
	AssetsDir string
	// Fullscreen 本次以全屏启动，不写入已保存的设置
	Fullscreen bool
	// Diagnostics 本次输出帧时间诊断日志，不写入已保存的设置
	Diagnostics bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	entityManager *ecs.EntityManager
	loadState     *game.StateMachine[game.AssetLoadingState]
	gameState     *game.StateMachine[game.GameState]

	resources    *game.ResourceManager
	gate         *game.AssetGate
	sceneManager *game.SceneManager[game.GameState]
	ui           *systems.UIPipeline
	pointer      *utils.PointerTracker

	settings        *game.SettingsManager
	startFullscreen bool                       // 已保存的设置或本次的命令行参数
	diagnostics     *systems.DiagnosticsSystem // 未启用时为 nil
	watcher         *game.AssetWatcher         // 使用嵌入资源时为 nil

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数

	logger *log.Logger
}

// NewApp 创建并初始化游戏应用
//
// 使用嵌入资源时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	if utils.IsMobile() {
		// 移动端没有窗口，总是全屏
		cfg.Fullscreen = true
	}

	fsys, err := assetsFS(cfg.AssetsDir)
	if err != nil {
		return nil, err
	}

	store, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		// 没有持久化存储时仍然可以运行，只是设置不会保存
		logging.For("App").Warn("persistent storage unavailable", "err", err)
		store = nil
	}

	a, err := newApp(cfg, fsys, store)
	if err != nil {
		return nil, err
	}

	if cfg.AssetsDir != "" {
		watcher, err := game.NewAssetWatcher(cfg.AssetsDir, a.resources)
		if err != nil {
			a.logger.Warn("asset hot reload disabled", "dir", cfg.AssetsDir, "err", err)
		} else {
			watcher.Start()
			a.watcher = watcher
		}
	}

	if a.startFullscreen {
		ebiten.SetFullscreen(true)
	}

	return a, nil
}

func assetsFS(dir string) (fs.FS, error) {
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("assets directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("assets directory: %s is not a directory", dir)
		}
		return os.DirFS(dir), nil
	}
	return embedded.Assets()
}

// newApp 组装所有组件，不接触窗口或输入设备
// store 为 nil 时设置只保存在内存中
func newApp(cfg Config, fsys fs.FS, store *gdata.Manager) (*App, error) {
	a := &App{
		entityManager: ecs.NewEntityManager(),
		loadState:     game.NewAssetLoadingStateMachine(),
		gameState:     game.NewGameStateMachine(),
		pointer:       utils.NewPointerTracker(),
		logger:        logging.For("App"),
	}

	a.resources = game.NewResourceManager(fsys, game.FontLoader{}, game.ImageLoader{})
	if err := a.resources.LoadResourceConfig(ResourceConfigPath); err != nil {
		// 不中止启动：资源闸门会因为缺少资源组而进入 FailedLoading，并在界面上显示原因
		a.logger.Error("cannot load resource config", "path", ResourceConfigPath, "err", err)
	}

	a.gate = game.NewAssetGate(a.resources, a.loadState, a.gameState, game.MenuResourceGroup)

	loadingScene, err := scenes.NewLoadingScene(a.gate, a.loadState)
	if err != nil {
		return nil, fmt.Errorf("loading scene: %w", err)
	}

	a.sceneManager = game.NewSceneManager(a.gameState)
	a.sceneManager.Register(game.GameStateAssetLoading, loadingScene)
	a.sceneManager.Register(game.GameStateDisclaimerMenu, scenes.NewDisclaimerScene(a.entityManager, a.gate, a.gameState))
	a.sceneManager.Register(game.GameStateMainMenu, scenes.NewMainMenuScene(a.entityManager, a.gate, a.gameState))
	a.sceneManager.Register(game.GameStateRunning, scenes.NewRunningScene(a.entityManager, a.gate))

	a.ui = systems.NewUIPipeline(a.entityManager, nil)

	// 命令行参数只影响本次运行，SettingsManager 中只保存玩家自己的选择
	a.settings = game.NewSettingsManager(store)
	saved := a.settings.GetSettings()
	a.startFullscreen = cfg.Fullscreen || saved.Fullscreen
	if cfg.Diagnostics || saved.ShowDiagnostics {
		a.diagnostics = systems.NewDiagnosticsSystem()
	}

	a.gate.Start()
	return a, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	a.updateWindow()

	deltaTime := 1.0 / float64(ebiten.TPS())
	if err := a.tick(a.pointer.Read(), deltaTime); err != nil {
		return err
	}

	if a.diagnostics != nil {
		a.diagnostics.Update(deltaTime)
	}
	return nil
}

// tick 运行一帧的游戏逻辑
//
// 顺序：状态切换 → 资源闸门 → UI 系统 → 当前场景。
// 切换请求在下一帧开始时生效，所以同一帧内只会看到一个状态。
func (a *App) tick(pointer utils.PointerState, deltaTime float64) error {
	if _, err := a.loadState.ApplyTransition(); err != nil {
		return err
	}
	if _, err := a.gameState.ApplyTransition(); err != nil {
		return err
	}

	a.gate.Update()
	a.ui.Step(pointer, config.WindowWidth, config.WindowHeight)

	return a.sceneManager.Update(deltaTime)
}

// updateWindow 处理 F11 全屏切换
func (a *App) updateWindow() {
	if utils.IsMobile() {
		return
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if !inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		return
	}

	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}

	a.saveFullscreen(fullscreen)
}

// saveFullscreen 保存玩家切换的全屏状态
func (a *App) saveFullscreen(fullscreen bool) {
	a.settings.SetFullscreen(fullscreen)
	if err := a.settings.Save(); err != nil {
		a.logger.Warn("cannot save settings", "err", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(config.ClearColor)
	a.sceneManager.Draw(screen)
	a.ui.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Close 停止资源监听
// 设置在切换时已经保存，命令行参数的覆盖值不会写入存储
func (a *App) Close() error {
	if a.watcher != nil {
		return a.watcher.Close()
	}
	return nil
}

// GameState 返回当前界面状态
func (a *App) GameState() game.GameState {
	return a.gameState.Current()
}

// AssetLoadingState 返回当前资源加载状态
func (a *App) AssetLoadingState() game.AssetLoadingState {
	return a.loadState.Current()
}
