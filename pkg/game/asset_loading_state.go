package game

// AssetLoadingState 是资源加载流程的状态
type AssetLoadingState int

const (
	// AssetNotLoaded 尚未开始加载（默认状态）
	AssetNotLoaded AssetLoadingState = iota
	// AssetLoading 正在加载
	AssetLoading
	// AssetDoneLoading 所有资源加载完成
	AssetDoneLoading
	// AssetFailedLoading 至少一个资源加载失败（终态，没有恢复路径）
	AssetFailedLoading
)

func (s AssetLoadingState) String() string {
	switch s {
	case AssetNotLoaded:
		return "NotLoaded"
	case AssetLoading:
		return "Loading"
	case AssetDoneLoading:
		return "DoneLoading"
	case AssetFailedLoading:
		return "FailedLoading"
	default:
		return "Unknown"
	}
}

// AssetLoadingRule 资源加载状态的切换规则
//
//	NotLoaded → Loading
//	Loading   → DoneLoading | FailedLoading
//
// DoneLoading 和 FailedLoading 都是终态。
func AssetLoadingRule(from, to AssetLoadingState) bool {
	switch from {
	case AssetNotLoaded:
		return to == AssetLoading
	case AssetLoading:
		return to == AssetDoneLoading || to == AssetFailedLoading
	default:
		return false
	}
}

// NewAssetLoadingStateMachine 创建资源加载状态机
func NewAssetLoadingStateMachine() *StateMachine[AssetLoadingState] {
	return NewStateMachine("AssetLoadingState", AssetNotLoaded, AssetLoadingRule)
}
