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

// DisclaimerScene 成人内容声明界面
// 玩家确认年满 18 周岁后进入主菜单
type DisclaimerScene struct {
	entityManager *ecs.EntityManager
	fonts         MenuFonts
	gameState     *game.StateMachine[game.GameState]
	logger        *log.Logger
}

// NewDisclaimerScene 创建声明界面
func NewDisclaimerScene(em *ecs.EntityManager, fonts MenuFonts, gameState *game.StateMachine[game.GameState]) *DisclaimerScene {
	return &DisclaimerScene{
		entityManager: em,
		fonts:         fonts,
		gameState:     gameState,
		logger:        logging.For("DisclaimerScene"),
	}
}

// Enter 生成界面节点树：
//
//	根节点 (100% x 100%)
//	├── 文本框 (80% x 50%)
//	│   └── 声明文本
//	└── 确认按钮 (60% x 50px)
//	    └── 按钮文字
func (s *DisclaimerScene) Enter() error {
	em := s.entityManager
	font := s.fonts.UINormalFont()

	root := spawnNode(em, ecs.InvalidEntity,
		menuColumn(components.Percent(100), components.Percent(100)), config.AntiqueWhite)
	ecs.AddComponent(em, root, &components.DisclaimerMenuComponent{})

	textBox := spawnNode(em, root,
		menuColumn(components.Percent(config.DisclaimerTextBoxPercentW), components.Percent(config.DisclaimerTextBoxPercentH)),
		config.AntiqueWhite)
	spawnText(em, textBox, config.DisclaimerText, font, config.DisclaimerFontSize, config.Gray)

	button := spawnButton(em, root,
		components.Percent(config.DisclaimerButtonPercentW), components.Px(config.DisclaimerButtonHeightPx),
		config.YellowGreen, config.AliceBlue, s.accept)
	spawnText(em, button, config.DisclaimerAcceptText, font, config.DisclaimerFontSize, config.Blue)

	s.logger.Debug("disclaimer menu spawned", "root", root)
	return nil
}

// Exit 递归销毁界面
func (s *DisclaimerScene) Exit() error {
	return despawnRoot[*components.DisclaimerMenuComponent](s.entityManager, "disclaimer menu")
}

func (s *DisclaimerScene) accept() {
	s.logger.Info("disclaimer accepted")
	s.gameState.SetNext(game.GameStateMainMenu)
}

// Update 按钮由 UI 系统处理
func (s *DisclaimerScene) Update(deltaTime float64) error {
	return nil
}

// Draw 界面由 UI 渲染系统绘制
func (s *DisclaimerScene) Draw(screen *ebiten.Image) {}
