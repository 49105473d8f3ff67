package scenes

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/roguelike/pkg/components"
	"github.com/decker502/roguelike/pkg/config"
	"github.com/decker502/roguelike/pkg/ecs"
	"github.com/decker502/roguelike/pkg/game"
	"github.com/decker502/roguelike/pkg/logging"
)

// MainMenuScene 主菜单
// 标题 + Play 按钮，点击 Play 进入游戏
type MainMenuScene struct {
	entityManager *ecs.EntityManager
	fonts         MenuFonts
	gameState     *game.StateMachine[game.GameState]
	logger        *log.Logger
}

// NewMainMenuScene 创建主菜单
func NewMainMenuScene(em *ecs.EntityManager, fonts MenuFonts, gameState *game.StateMachine[game.GameState]) *MainMenuScene {
	return &MainMenuScene{
		entityManager: em,
		fonts:         fonts,
		gameState:     gameState,
		logger:        logging.For("MainMenuScene"),
	}
}

// Enter 生成主菜单节点树：
//
//	根节点 (100% x 100%)
//	├── 标题框 (100% x 50%)
//	│   └── "Breakout"
//	└── Play 按钮 (300px x 100px)
//	    └── "Play"
func (s *MainMenuScene) Enter() error {
	em := s.entityManager
	font := s.fonts.UIFont()

	root := spawnNode(em, ecs.InvalidEntity,
		menuColumn(components.Percent(100), components.Percent(100)), config.AntiqueWhite)
	ecs.AddComponent(em, root, &components.MainMenuComponent{})

	titleBox := spawnNode(em, root,
		menuColumn(components.Percent(config.MainMenuTitleBoxPercentW), components.Percent(config.MainMenuTitleBoxPercentH)),
		config.AntiqueWhite)
	spawnText(em, titleBox, config.MainMenuTitle, font, config.MainMenuTitleFontSize, config.Gray)

	play := spawnButton(em, root,
		components.Px(config.MainMenuButtonWidthPx), components.Px(config.MainMenuButtonHeightPx),
		config.YellowGreen, config.AliceBlue, s.play)
	spawnText(em, play, config.MainMenuPlayText, font, config.MainMenuButtonFontSize, config.Blue)

	s.logger.Debug("main menu spawned", "root", root)
	return nil
}

// Exit 递归销毁主菜单
func (s *MainMenuScene) Exit() error {
	return despawnRoot[*components.MainMenuComponent](s.entityManager, "main menu")
}

func (s *MainMenuScene) play() {
	s.logger.Info("play pressed")
	s.gameState.SetNext(game.GameStateRunning)
}

// Update 按钮由 UI 系统处理
func (s *MainMenuScene) Update(deltaTime float64) error {
	return nil
}

// Draw 主菜单由 UI 渲染系统绘制
func (s *MainMenuScene) Draw(screen *ebiten.Image) {}
