package game

// GameState 是玩家当前看到的高层界面
//
// 状态只能按声明顺序单向推进：
// AssetLoading → DisclaimerMenu → MainMenu → GameRunning
type GameState int

const (
	// GameStateAssetLoading 资源加载中（默认状态）
	GameStateAssetLoading GameState = iota
	// GameStateDisclaimerMenu 免责声明界面
	GameStateDisclaimerMenu
	// GameStateMainMenu 主菜单
	GameStateMainMenu
	// GameStateRunning 游戏进行中
	GameStateRunning
)

func (s GameState) String() string {
	switch s {
	case GameStateAssetLoading:
		return "AssetLoading"
	case GameStateDisclaimerMenu:
		return "DisclaimerMenu"
	case GameStateMainMenu:
		return "MainMenu"
	case GameStateRunning:
		return "GameRunning"
	default:
		return "Unknown"
	}
}

// NewGameStateMachine 创建游戏界面状态机，只允许切换到下一个界面
func NewGameStateMachine() *StateMachine[GameState] {
	return NewStateMachine("GameState", GameStateAssetLoading, LinearRule[GameState])
}
