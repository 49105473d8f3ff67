package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one game screen (loading, disclaimer, main menu, playfield).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	// A returned error stops the game loop.
	Update(deltaTime float64) error

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Enterer 是可选接口：场景成为当前场景时调用 Enter（用于生成实体）
type Enterer interface {
	Enter() error
}

// Exiter 是可选接口：场景不再是当前场景时调用 Exit（用于销毁实体）
type Exiter interface {
	Exit() error
}
