package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/roguelike/pkg/components"
	"github.com/decker502/roguelike/pkg/ecs"
)

// UIRenderSystem UI 渲染系统
// 按节点树顺序绘制：先画父节点背景和文本，再画子节点
type UIRenderSystem struct {
	entityManager *ecs.EntityManager
	drawOpts      text.DrawOptions
}

// NewUIRenderSystem 创建 UI 渲染系统
func NewUIRenderSystem(em *ecs.EntityManager) *UIRenderSystem {
	return &UIRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有根节点及其子树
func (s *UIRenderSystem) Draw(screen *ebiten.Image) {
	for _, root := range RootNodes(s.entityManager) {
		s.drawNode(screen, root)
	}
}

func (s *UIRenderSystem) drawNode(screen *ebiten.Image, id ecs.EntityID) {
	node, _ := ecs.GetComponent[*components.NodeComponent](s.entityManager, id)
	if node.Hidden {
		return
	}

	rect, ok := ecs.GetComponent[*components.ComputedRectComponent](s.entityManager, id)
	if !ok {
		// 还没有经过布局
		return
	}

	if node.Background != nil && rect.Width > 0 && rect.Height > 0 {
		vector.DrawFilledRect(screen,
			float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height),
			node.Background, false)
	}

	if txt, ok := ecs.GetComponent[*components.TextComponent](s.entityManager, id); ok {
		s.drawText(screen, txt, rect)
	}

	for _, child := range childNodes(s.entityManager, id) {
		s.drawNode(screen, child)
	}
}

func (s *UIRenderSystem) drawText(screen *ebiten.Image, txt *components.TextComponent, rect *components.ComputedRectComponent) {
	if txt.Source == nil || len(txt.Lines) == 0 {
		return
	}

	face := &text.GoTextFace{Source: txt.Source, Size: txt.Size}

	clr := txt.Color
	if clr == nil {
		clr = color.White
	}

	for i, line := range txt.Lines {
		x := rect.X
		if txt.Justify == components.TextJustifyCenter {
			width, _ := text.Measure(line, face, 0)
			x += (rect.Width - width) / 2
		}
		y := rect.Y + float64(i)*txt.LineHeight

		s.drawOpts.GeoM.Reset()
		s.drawOpts.GeoM.Translate(x, y)
		s.drawOpts.ColorScale.Reset()
		s.drawOpts.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, line, face, &s.drawOpts)
	}
}
