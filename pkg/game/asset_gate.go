package game

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/roguelike/pkg/logging"
)

// 菜单资源组以及其中字体的资源 ID
const (
	MenuResourceGroup    = "menu"
	ResourceUIFont       = "FONT_UI"
	ResourceUINormalFont = "FONT_UI_NORMAL"
)

// FontHandle 是字体资源句柄
type FontHandle = Handle[*text.GoTextFaceSource]

// LoadStateSource 提供资源加载状态查询
type LoadStateSource interface {
	LoadState(id AssetID) (LoadState, bool)
}

// CheckAllLoadStates 按顺序检查所有资源的加载状态
//
// 第一个不是 Loaded 的资源决定结果（NotLoaded / Loading / Failed），
// 全部 Loaded（或列表为空）时返回 Loaded。
// source 不认识的 ID 视为 Failed。
func CheckAllLoadStates(source LoadStateSource, ids []AssetID) LoadState {
	for _, id := range ids {
		state, ok := source.LoadState(id)
		if !ok {
			return LoadStateFailed
		}

		switch state {
		case LoadStateLoaded:
			continue
		default:
			return state
		}
	}
	return LoadStateLoaded
}

// AssetGate 在所有菜单资源加载完成之前阻止菜单显示
//
// 流程：
//   - 启动时请求 AssetLoadingState = Loading
//   - 进入 Loading：请求菜单资源组，记录所有资源 ID，发布 UI 字体句柄
//   - Loading 期间每帧轮询：全部完成 → DoneLoading，任一失败 → FailedLoading
//   - 进入 DoneLoading：请求 GameState = DisclaimerMenu
//   - 进入 FailedLoading：记录失败原因（终态，没有恢复路径）
type AssetGate struct {
	rm        *ResourceManager
	loadState *StateMachine[AssetLoadingState]
	gameState *StateMachine[GameState]
	group     string

	tracked      []AssetID
	uiFont       FontHandle
	uiNormalFont FontHandle
	setupErr     error

	logger *log.Logger
}

// NewAssetGate 创建资源加载闸门并注册状态钩子
func NewAssetGate(rm *ResourceManager, loadState *StateMachine[AssetLoadingState], gameState *StateMachine[GameState], group string) *AssetGate {
	g := &AssetGate{
		rm:        rm,
		loadState: loadState,
		gameState: gameState,
		group:     group,
		logger:    logging.For("AssetGate"),
	}

	loadState.OnEnter(AssetLoading, g.loadAssets)
	loadState.OnEnter(AssetDoneLoading, g.onDoneLoading)
	loadState.OnEnter(AssetFailedLoading, g.onFailedLoading)

	return g
}

// Start 请求开始加载
func (g *AssetGate) Start() {
	g.loadState.SetNext(AssetLoading)
}

// loadAssets 只在进入 Loading 状态时执行一次
func (g *AssetGate) loadAssets() error {
	byResource, ids, err := g.rm.LoadGroup(g.group)
	if err != nil {
		g.fail(err)
		return nil
	}

	g.tracked = append(g.tracked, ids...)

	uiFont, ok := byResource[ResourceUIFont]
	if !ok {
		g.fail(fmt.Errorf("resource group %s does not declare %s", g.group, ResourceUIFont))
		return nil
	}
	uiNormalFont, ok := byResource[ResourceUINormalFont]
	if !ok {
		g.fail(fmt.Errorf("resource group %s does not declare %s", g.group, ResourceUINormalFont))
		return nil
	}

	g.uiFont = NewHandle[*text.GoTextFaceSource](g.rm, uiFont)
	g.uiNormalFont = NewHandle[*text.GoTextFaceSource](g.rm, uiNormalFont)

	g.logger.Info("loading assets", "group", g.group, "count", len(g.tracked))
	return nil
}

func (g *AssetGate) fail(err error) {
	g.setupErr = err
	g.logger.Error("cannot load assets", "group", g.group, "err", err)
	g.loadState.SetNext(AssetFailedLoading)
}

// Update 在 Loading 状态下轮询所有资源的加载状态
func (g *AssetGate) Update() {
	if !g.loadState.InState(AssetLoading) || g.setupErr != nil {
		return
	}

	switch CheckAllLoadStates(g.rm, g.tracked) {
	case LoadStateLoaded:
		g.loadState.SetNext(AssetDoneLoading)
	case LoadStateFailed:
		g.loadState.SetNext(AssetFailedLoading)
	}
}

func (g *AssetGate) onDoneLoading() error {
	g.logger.Info("all assets loaded", "count", len(g.tracked))
	g.gameState.SetNext(GameStateDisclaimerMenu)
	return nil
}

func (g *AssetGate) onFailedLoading() error {
	for _, reason := range g.FailureReasons() {
		g.logger.Error("asset loading failed", "reason", reason)
	}
	return nil
}

// Tracked 返回正在跟踪的资源 ID（按请求顺序）
func (g *AssetGate) Tracked() []AssetID {
	return slices.Clone(g.tracked)
}

// Progress 返回被跟踪资源的已加载/总数计数
func (g *AssetGate) Progress() LoadProgress {
	progress := LoadProgress{Total: len(g.tracked)}
	for _, id := range g.tracked {
		state, ok := g.rm.LoadState(id)
		switch {
		case !ok || state == LoadStateFailed:
			progress.Failed++
		case state == LoadStateLoaded:
			progress.Loaded++
		}
	}
	return progress
}

// FailureReasons 返回加载失败的原因，用于日志和失败界面
func (g *AssetGate) FailureReasons() []string {
	var reasons []string
	if g.setupErr != nil {
		reasons = append(reasons, g.setupErr.Error())
	}

	for _, failure := range g.rm.Failures() {
		if slices.Contains(g.tracked, failure.ID) {
			reasons = append(reasons, failure.Err.Error())
		}
	}

	for _, id := range g.tracked {
		if _, ok := g.rm.LoadState(id); !ok {
			reasons = append(reasons, fmt.Sprintf("%s: %v", id, ErrUnknownAsset))
		}
	}

	return reasons
}

// UIFont 返回标题/按钮使用的字体句柄
func (g *AssetGate) UIFont() FontHandle {
	return g.uiFont
}

// UINormalFont 返回正文使用的字体句柄（需要包含中文字形）
func (g *AssetGate) UINormalFont() FontHandle {
	return g.uiNormalFont
}
