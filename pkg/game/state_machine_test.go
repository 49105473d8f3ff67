package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateMachineInitialEnter(t *testing.T) {
	m := NewGameStateMachine()

	var entered []GameState
	m.OnEnter(GameStateAssetLoading, func() error {
		entered = append(entered, GameStateAssetLoading)
		return nil
	})

	// 待处理请求在初始化帧不会生效
	m.SetNext(GameStateDisclaimerMenu)

	changed, err := m.ApplyTransition()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []GameState{GameStateAssetLoading}, entered)
	assert.Equal(t, GameStateAssetLoading, m.Current())

	changed, err = m.ApplyTransition()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, GameStateDisclaimerMenu, m.Current())
}

func TestStateMachineHookOrder(t *testing.T) {
	m := NewGameStateMachine()
	_, _ = m.ApplyTransition()

	var calls []string
	m.OnExit(GameStateAssetLoading, func() error {
		calls = append(calls, "exit AssetLoading")
		return nil
	})
	m.OnEnter(GameStateDisclaimerMenu, func() error {
		calls = append(calls, "enter DisclaimerMenu")
		return nil
	})

	m.SetNext(GameStateDisclaimerMenu)
	_, err := m.ApplyTransition()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"exit AssetLoading",
		"enter DisclaimerMenu",
	}, calls)
}

func TestStateMachineLastRequestWins(t *testing.T) {
	m := NewStateMachine[GameState]("test", GameStateAssetLoading, nil)
	_, _ = m.ApplyTransition()

	m.SetNext(GameStateMainMenu)
	m.SetNext(GameStateRunning)

	_, err := m.ApplyTransition()
	require.NoError(t, err)
	assert.Equal(t, GameStateRunning, m.Current())

	_, pending := m.Pending()
	assert.False(t, pending)
}

func TestStateMachineSameStateIsNoop(t *testing.T) {
	m := NewGameStateMachine()
	_, _ = m.ApplyTransition()

	exits := 0
	m.OnExit(GameStateAssetLoading, func() error {
		exits++
		return nil
	})

	m.SetNext(GameStateAssetLoading)
	changed, err := m.ApplyTransition()
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Zero(t, exits)
}

func TestGameStateIsLinear(t *testing.T) {
	m := NewGameStateMachine()
	_, _ = m.ApplyTransition()

	// 不能跳过免责声明
	m.SetNext(GameStateMainMenu)
	changed, err := m.ApplyTransition()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.False(t, changed)
	assert.Equal(t, GameStateAssetLoading, m.Current())

	// 被拒绝的请求会被丢弃
	_, pending := m.Pending()
	assert.False(t, pending)

	for _, next := range []GameState{GameStateDisclaimerMenu, GameStateMainMenu, GameStateRunning} {
		m.SetNext(next)
		_, err := m.ApplyTransition()
		require.NoError(t, err)
		assert.Equal(t, next, m.Current())
	}

	// 不能后退
	m.SetNext(GameStateMainMenu)
	_, err = m.ApplyTransition()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, GameStateRunning, m.Current())
}

func TestAssetLoadingRule(t *testing.T) {
	cases := []struct {
		from, to AssetLoadingState
		allowed  bool
	}{
		{AssetNotLoaded, AssetLoading, true},
		{AssetNotLoaded, AssetDoneLoading, false},
		{AssetLoading, AssetDoneLoading, true},
		{AssetLoading, AssetFailedLoading, true},
		{AssetLoading, AssetNotLoaded, false},
		{AssetDoneLoading, AssetLoading, false},
		{AssetDoneLoading, AssetFailedLoading, false},
		{AssetFailedLoading, AssetLoading, false},
		{AssetFailedLoading, AssetDoneLoading, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, AssetLoadingRule(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestStateMachineHookError(t *testing.T) {
	m := NewGameStateMachine()
	_, _ = m.ApplyTransition()

	boom := errors.New("root missing")
	entered := false
	m.OnExit(GameStateAssetLoading, func() error { return boom })
	m.OnEnter(GameStateDisclaimerMenu, func() error {
		entered = true
		return nil
	})

	m.SetNext(GameStateDisclaimerMenu)
	changed, err := m.ApplyTransition()
	assert.True(t, changed)
	assert.ErrorIs(t, err, boom)
	assert.False(t, entered, "enter hooks must not run after a failed exit hook")
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "GameRunning", GameStateRunning.String())
	assert.Equal(t, "FailedLoading", AssetFailedLoading.String())
	assert.Equal(t, "Unknown", GameState(42).String())
	assert.Equal(t, "Loaded", LoadStateLoaded.String())
}
