package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/roguelike/pkg/logging"
)

// SceneManager binds one scene to each value of a state machine.
// It ensures only the scene of the current state is updated and drawn.
//
// Scenes implementing Enterer/Exiter are hooked into the state machine's
// OnEnter/OnExit, so entering a state spawns its scene and leaving despawns it.
type SceneManager[S StateValue] struct {
	state  *StateMachine[S]
	scenes map[S]Scene
	logger *log.Logger
}

// NewSceneManager creates a SceneManager driven by state.
func NewSceneManager[S StateValue](state *StateMachine[S]) *SceneManager[S] {
	return &SceneManager[S]{
		state:  state,
		scenes: make(map[S]Scene),
		logger: logging.For("SceneManager"),
	}
}

// Register binds scene to value. Registering a value twice is a programming error.
func (sm *SceneManager[S]) Register(value S, scene Scene) {
	if _, exists := sm.scenes[value]; exists {
		panic(fmt.Sprintf("scene for state %s registered twice", value))
	}
	sm.scenes[value] = scene

	if enterer, ok := scene.(Enterer); ok {
		sm.state.OnEnter(value, func() error {
			sm.logger.Debug("enter scene", "state", value)
			return enterer.Enter()
		})
	}

	if exiter, ok := scene.(Exiter); ok {
		sm.state.OnExit(value, func() error {
			sm.logger.Debug("exit scene", "state", value)
			return exiter.Exit()
		})
	}
}

// GetCurrentScene returns the scene of the current state, or nil.
func (sm *SceneManager[S]) GetCurrentScene() Scene {
	return sm.scenes[sm.state.Current()]
}

// Update updates the currently active scene.
// If no scene is bound to the current state, this method does nothing.
func (sm *SceneManager[S]) Update(deltaTime float64) error {
	if scene := sm.GetCurrentScene(); scene != nil {
		return scene.Update(deltaTime)
	}
	return nil
}

// Draw renders the currently active scene to the provided screen.
func (sm *SceneManager[S]) Draw(screen *ebiten.Image) {
	if scene := sm.GetCurrentScene(); scene != nil {
		scene.Draw(screen)
	}
}
