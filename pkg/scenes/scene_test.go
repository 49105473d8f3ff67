package scenes

import (
	"testing"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/roguelike/pkg/components"
	"github.com/decker502/roguelike/pkg/config"
	"github.com/decker502/roguelike/pkg/ecs"
	"github.com/decker502/roguelike/pkg/game"
	"github.com/decker502/roguelike/pkg/systems"
	"github.com/decker502/roguelike/pkg/utils"
)

// noFonts 模拟字体尚未加载
type noFonts struct{}

func (noFonts) UIFont() game.FontHandle       { return game.FontHandle{} }
func (noFonts) UINormalFont() game.FontHandle { return game.FontHandle{} }

type fixedMeasurer struct{}

func (fixedMeasurer) Measure(s string, _ *text.GoTextFaceSource, size float64) float64 {
	return float64(utf8.RuneCountInString(s)) * size / 2
}

func (fixedMeasurer) LineHeight(_ *text.GoTextFaceSource, size float64) float64 {
	return size
}

// click 在 (x, y) 处按下并松开
func click(ui *systems.UIPipeline, x, y int) {
	for _, pressed := range []bool{false, true, false} {
		ui.Step(utils.PointerState{X: x, Y: y, Pressed: pressed, Present: true}, config.WindowWidth, config.WindowHeight)
	}
}

func gameStateAt(t *testing.T, state game.GameState) *game.StateMachine[game.GameState] {
	t.Helper()
	m := game.NewGameStateMachine()
	_, err := m.ApplyTransition()
	require.NoError(t, err)
	for m.Current() != state {
		m.SetNext(m.Current() + 1)
		_, err := m.ApplyTransition()
		require.NoError(t, err)
	}
	return m
}

func textOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.TextComponent {
	t.Helper()
	txt, ok := ecs.GetComponent[*components.TextComponent](em, id)
	require.True(t, ok)
	return txt
}

func TestDisclaimerSceneSpawnsTree(t *testing.T) {
	em := ecs.NewEntityManager()
	scene := NewDisclaimerScene(em, noFonts{}, gameStateAt(t, game.GameStateDisclaimerMenu))
	require.NoError(t, scene.Enter())

	root, err := ecs.Single[*components.DisclaimerMenuComponent](em)
	require.NoError(t, err)

	rootNode, _ := ecs.GetComponent[*components.NodeComponent](em, root)
	assert.Equal(t, components.Percent(100), rootNode.Style.Width)
	assert.Equal(t, components.FlexColumn, rootNode.Style.Direction)
	assert.Equal(t, components.Px(10), rootNode.Style.RowGap)

	children := em.Children(root)
	require.Len(t, children, 2)

	textBox, button := children[0], children[1]
	boxNode, _ := ecs.GetComponent[*components.NodeComponent](em, textBox)
	assert.Equal(t, components.Percent(80), boxNode.Style.Width)
	assert.Equal(t, components.Percent(50), boxNode.Style.Height)

	boxChildren := em.Children(textBox)
	require.Len(t, boxChildren, 1)
	notice := textOf(t, em, boxChildren[0])
	assert.Equal(t, config.DisclaimerText, notice.Value)
	assert.Equal(t, 30.0, notice.Size)

	buttonNode, _ := ecs.GetComponent[*components.NodeComponent](em, button)
	assert.Equal(t, components.Percent(60), buttonNode.Style.Width)
	assert.Equal(t, components.Px(50), buttonNode.Style.Height)
	assert.True(t, ecs.HasComponent[*components.ButtonComponent](em, button))

	buttonChildren := em.Children(button)
	require.Len(t, buttonChildren, 1)
	assert.Equal(t, "我已年满18周岁", textOf(t, em, buttonChildren[0]).Value)

	assert.Equal(t, 5, em.Count())
}

func TestDisclaimerAcceptRequestsMainMenu(t *testing.T) {
	em := ecs.NewEntityManager()
	gameState := gameStateAt(t, game.GameStateDisclaimerMenu)
	scene := NewDisclaimerScene(em, noFonts{}, gameState)
	require.NoError(t, scene.Enter())

	ui := systems.NewUIPipeline(em, fixedMeasurer{})

	// 按钮 768x50，位于 (256, 520)
	click(ui, 100, 100)
	_, pending := gameState.Pending()
	assert.False(t, pending, "clicking outside the button does nothing")

	click(ui, 640, 545)
	next, pending := gameState.Pending()
	require.True(t, pending)
	assert.Equal(t, game.GameStateMainMenu, next)
}

func TestDisclaimerExitDespawnsEverything(t *testing.T) {
	em := ecs.NewEntityManager()
	scene := NewDisclaimerScene(em, noFonts{}, gameStateAt(t, game.GameStateDisclaimerMenu))
	require.NoError(t, scene.Enter())

	require.NoError(t, scene.Exit())
	assert.Equal(t, 0, em.Count())

	err := scene.Exit()
	assert.ErrorIs(t, err, ErrMenuRootMissing)
}

func TestExitWithDuplicateRootsFails(t *testing.T) {
	em := ecs.NewEntityManager()
	scene := NewMainMenuScene(em, noFonts{}, gameStateAt(t, game.GameStateMainMenu))
	require.NoError(t, scene.Enter())
	require.NoError(t, scene.Enter())

	err := scene.Exit()
	assert.ErrorIs(t, err, ecs.ErrMultipleEntities)
}

func TestMainMenuSpawnsTree(t *testing.T) {
	em := ecs.NewEntityManager()
	scene := NewMainMenuScene(em, noFonts{}, gameStateAt(t, game.GameStateMainMenu))
	require.NoError(t, scene.Enter())

	root, err := ecs.Single[*components.MainMenuComponent](em)
	require.NoError(t, err)

	children := em.Children(root)
	require.Len(t, children, 2)

	titleBox, play := children[0], children[1]
	titleNode, _ := ecs.GetComponent[*components.NodeComponent](em, titleBox)
	assert.Equal(t, components.Percent(100), titleNode.Style.Width)
	assert.Equal(t, components.Percent(50), titleNode.Style.Height)

	title := textOf(t, em, em.Children(titleBox)[0])
	assert.Equal(t, "Breakout", title.Value)
	assert.Equal(t, 80.0, title.Size)

	playNode, _ := ecs.GetComponent[*components.NodeComponent](em, play)
	assert.Equal(t, components.Px(300), playNode.Style.Width)
	assert.Equal(t, components.Px(100), playNode.Style.Height)

	label := textOf(t, em, em.Children(play)[0])
	assert.Equal(t, "Play", label.Value)
	assert.Equal(t, 40.0, label.Size)
}

func TestMainMenuPlayRequestsGameRunning(t *testing.T) {
	em := ecs.NewEntityManager()
	gameState := gameStateAt(t, game.GameStateMainMenu)
	scene := NewMainMenuScene(em, noFonts{}, gameState)
	require.NoError(t, scene.Enter())

	ui := systems.NewUIPipeline(em, fixedMeasurer{})

	// 按钮 300x100，位于 (490, 495)
	click(ui, 640, 545)

	next, pending := gameState.Pending()
	require.True(t, pending)
	assert.Equal(t, game.GameStateRunning, next)

	play := em.Children(ecs.GetEntitiesWith1[*components.MainMenuComponent](em)[0])[1]
	node, _ := ecs.GetComponent[*components.NodeComponent](em, play)
	assert.Equal(t, config.YellowGreen, node.Background, "released button returns to its normal colour")
}

func TestRunningSceneQuits(t *testing.T) {
	em := ecs.NewEntityManager()
	scene := NewRunningScene(em, noFonts{})
	require.NoError(t, scene.Enter())

	quit := false
	scene.quitRequested = func() bool { return quit }

	assert.NoError(t, scene.Update(1.0/60))

	quit = true
	assert.ErrorIs(t, scene.Update(1.0/60), ebiten.Termination)

	require.NoError(t, scene.Exit())
	assert.Equal(t, 0, em.Count())
}
