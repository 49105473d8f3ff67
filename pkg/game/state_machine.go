package game

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/decker502/roguelike/pkg/logging"
)

// ErrInvalidTransition 状态切换请求被切换规则拒绝
var ErrInvalidTransition = errors.New("invalid state transition")

// StateValue 是可以由 StateMachine 管理的状态类型
type StateValue interface {
	comparable
	fmt.Stringer
}

// TransitionRule 判断 from → to 的切换是否合法
type TransitionRule[S StateValue] func(from, to S) bool

// StateHook 在进入/离开某个状态时执行
// 返回错误会中止后续钩子，并由 ApplyTransition 返回
type StateHook func() error

// StateMachine 管理一个枚举状态的当前值以及待切换的下一个值
//
// 切换请求通过 SetNext 记录，每帧由 ApplyTransition 统一处理，
// 因此同一帧内多次请求只有最后一次生效，并且任意时刻只有一个当前状态。
type StateMachine[S StateValue] struct {
	name        string
	current     S
	next        S
	hasNext     bool
	initialized bool
	rule        TransitionRule[S]

	onEnter map[S][]StateHook
	onExit  map[S][]StateHook

	logger *log.Logger
}

// NewStateMachine 创建状态机
//
// 参数：
//   - name: 状态机名称（用于日志）
//   - initial: 初始状态，第一次 ApplyTransition 时会执行它的 OnEnter 钩子
//   - rule: 切换规则，nil 表示允许任意切换
func NewStateMachine[S StateValue](name string, initial S, rule TransitionRule[S]) *StateMachine[S] {
	return &StateMachine[S]{
		name:    name,
		current: initial,
		rule:    rule,
		onEnter: make(map[S][]StateHook),
		onExit:  make(map[S][]StateHook),
		logger:  logging.For(name),
	}
}

// Current 返回当前状态
func (m *StateMachine[S]) Current() S {
	return m.current
}

// InState 检查当前是否处于指定状态
func (m *StateMachine[S]) InState(state S) bool {
	return m.current == state
}

// Pending 返回尚未处理的切换请求
func (m *StateMachine[S]) Pending() (S, bool) {
	return m.next, m.hasNext
}

// SetNext 请求在下一次 ApplyTransition 时切换到 state
func (m *StateMachine[S]) SetNext(state S) {
	m.next = state
	m.hasNext = true
}

// ClearNext 丢弃尚未处理的切换请求
func (m *StateMachine[S]) ClearNext() {
	var zero S
	m.next = zero
	m.hasNext = false
}

// OnEnter 注册进入 state 时执行的钩子
func (m *StateMachine[S]) OnEnter(state S, hook StateHook) {
	m.onEnter[state] = append(m.onEnter[state], hook)
}

// OnExit 注册离开 state 时执行的钩子
func (m *StateMachine[S]) OnExit(state S, hook StateHook) {
	m.onExit[state] = append(m.onExit[state], hook)
}

// ApplyTransition 处理待切换请求
//
// 返回值 changed 表示当前状态是否发生了变化（首次进入初始状态也算）。
func (m *StateMachine[S]) ApplyTransition() (changed bool, err error) {
	if !m.initialized {
		m.initialized = true
		m.logger.Debug("enter initial state", "state", m.current)
		return true, m.runHooks(m.onEnter[m.current])
	}

	if !m.hasNext {
		return false, nil
	}

	next := m.next
	m.ClearNext()

	if next == m.current {
		return false, nil
	}

	if m.rule != nil && !m.rule(m.current, next) {
		return false, fmt.Errorf("%s: %s -> %s: %w", m.name, m.current, next, ErrInvalidTransition)
	}

	previous := m.current
	m.current = next
	m.logger.Debug("state transition", "from", previous, "to", next)

	if err := m.runHooks(m.onExit[previous]); err != nil {
		return true, fmt.Errorf("%s: exit %s: %w", m.name, previous, err)
	}

	if err := m.runHooks(m.onEnter[next]); err != nil {
		return true, fmt.Errorf("%s: enter %s: %w", m.name, next, err)
	}

	return true, nil
}

func (m *StateMachine[S]) runHooks(hooks []StateHook) error {
	for _, hook := range hooks {
		if err := hook(); err != nil {
			return err
		}
	}
	return nil
}

// LinearRule 只允许切换到紧邻的下一个状态
func LinearRule[S interface {
	StateValue
	~int
}](from, to S) bool {
	return to == from+1
}
