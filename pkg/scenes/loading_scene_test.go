package scenes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/roguelike/pkg/components"
	"github.com/decker502/roguelike/pkg/game"
)

type fakeStatus struct {
	progress game.LoadProgress
	reasons  []string
}

func (f fakeStatus) Progress() game.LoadProgress { return f.progress }
func (f fakeStatus) FailureReasons() []string    { return f.reasons }

func TestProgressBarRects(t *testing.T) {
	outer, inner := progressBarRects(1280, 720, 0.5)

	assert.Equal(t, components.ComputedRectComponent{X: 320, Y: 348, Width: 640, Height: 24}, outer)
	assert.Equal(t, components.ComputedRectComponent{X: 322, Y: 350, Width: 318, Height: 20}, inner)

	_, empty := progressBarRects(1280, 720, -1)
	assert.Equal(t, 0.0, empty.Width)

	_, full := progressBarRects(1280, 720, 2)
	assert.Equal(t, 636.0, full.Width)
}

func TestFailureLines(t *testing.T) {
	assert.Equal(t, []string{"Failed to load assets", "- unknown error"}, failureLines(nil))
	assert.Equal(t,
		[]string{"Failed to load assets", "- open asset fonts/a.ttf: file does not exist"},
		failureLines([]string{"open asset fonts/a.ttf: file does not exist"}))
}

func TestLoadingSceneProgressLabel(t *testing.T) {
	scene, err := NewLoadingScene(fakeStatus{}, game.NewAssetLoadingStateMachine())
	require.NoError(t, err)

	progress := game.LoadProgress{Loaded: 1, Total: 2}
	assert.Equal(t, "Loading assets. 1/2", scene.progressLabel(progress))

	require.NoError(t, scene.Update(0.5))
	assert.Equal(t, "Loading assets.. 1/2", scene.progressLabel(progress))

	require.NoError(t, scene.Update(0.5))
	assert.Equal(t, "Loading assets... 1/2", scene.progressLabel(progress))

	require.NoError(t, scene.Update(0.5))
	assert.Equal(t, "Loading assets. 1/2", scene.progressLabel(progress))
}
