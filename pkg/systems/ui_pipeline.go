package systems

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/roguelike/pkg/ecs"
	"github.com/decker502/roguelike/pkg/utils"
)

// UIPipeline 按固定顺序运行 UI 系统
//
// 每帧：字体刷新 → 布局 → 指针交互 → 按钮；绘制时按节点树顺序渲染。
// 布局先于交互执行，所以本帧新生成的节点也能立即响应指针。
type UIPipeline struct {
	Fonts       *FontRefreshSystem
	Layout      *LayoutSystem
	Interaction *InteractionSystem
	Buttons     *ButtonSystem
	Render      *UIRenderSystem
}

// NewUIPipeline 创建 UI 系统流水线，measurer 为 nil 时使用真实字体测量
func NewUIPipeline(em *ecs.EntityManager, measurer TextMeasurer) *UIPipeline {
	return &UIPipeline{
		Fonts:       NewFontRefreshSystem(em),
		Layout:      NewLayoutSystem(em, measurer),
		Interaction: NewInteractionSystem(em),
		Buttons:     NewButtonSystem(em),
		Render:      NewUIRenderSystem(em),
	}
}

// Step 使用给定的指针状态运行所有 UI 系统
func (p *UIPipeline) Step(pointer utils.PointerState, screenWidth, screenHeight float64) {
	p.Fonts.Update()
	p.Layout.Update(screenWidth, screenHeight)
	p.Interaction.Update(pointer)
	p.Buttons.Update()
}

// Draw 渲染 UI
func (p *UIPipeline) Draw(screen *ebiten.Image) {
	p.Render.Draw(screen)
}
