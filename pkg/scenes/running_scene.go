package scenes

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/roguelike/pkg/components"
	"github.com/decker502/roguelike/pkg/config"
	"github.com/decker502/roguelike/pkg/ecs"
	"github.com/decker502/roguelike/pkg/logging"
)

// RunningScene 游戏运行界面（占位）
// 显示一行提示，按 Esc 退出程序
type RunningScene struct {
	entityManager *ecs.EntityManager
	fonts         MenuFonts

	// quitRequested 检测退出按键，测试中可替换
	quitRequested func() bool

	logger *log.Logger
}

// NewRunningScene 创建游戏运行界面
func NewRunningScene(em *ecs.EntityManager, fonts MenuFonts) *RunningScene {
	return &RunningScene{
		entityManager: em,
		fonts:         fonts,
		quitRequested: func() bool {
			return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
		},
		logger: logging.For("RunningScene"),
	}
}

// Enter 生成占位界面
func (s *RunningScene) Enter() error {
	em := s.entityManager

	root := spawnNode(em, ecs.InvalidEntity, menuColumn(components.Percent(100), components.Percent(100)), nil)
	ecs.AddComponent(em, root, &components.RunningScreenComponent{})
	spawnText(em, root, config.RunningHintText, s.fonts.UIFont(), config.RunningHintFontSize, config.Gray)

	s.logger.Info("game running")
	return nil
}

// Exit 递归销毁占位界面
func (s *RunningScene) Exit() error {
	return despawnRoot[*components.RunningScreenComponent](s.entityManager, "running screen")
}

// Update 按 Esc 时返回 ebiten.Termination 正常结束游戏循环
func (s *RunningScene) Update(deltaTime float64) error {
	if s.quitRequested() {
		s.logger.Info("quit requested")
		return ebiten.Termination
	}
	return nil
}

// Draw 界面由 UI 渲染系统绘制
func (s *RunningScene) Draw(screen *ebiten.Image) {}
