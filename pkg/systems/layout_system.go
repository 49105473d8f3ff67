package systems

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/roguelike/pkg/components"
	"github.com/decker502/roguelike/pkg/ecs"
	"github.com/decker502/roguelike/pkg/utils"
)

// TextMeasurer 测量文本尺寸
type TextMeasurer interface {
	// Measure 返回单行文本宽度
	Measure(s string, source *text.GoTextFaceSource, size float64) float64
	// LineHeight 返回单行高度
	LineHeight(source *text.GoTextFaceSource, size float64) float64
}

// FaceMeasurer 使用 text/v2 的 GoTextFace 测量文本
type FaceMeasurer struct{}

func (FaceMeasurer) Measure(s string, source *text.GoTextFaceSource, size float64) float64 {
	if source == nil || s == "" {
		return 0
	}
	width, _ := text.Measure(s, &text.GoTextFace{Source: source, Size: size}, 0)
	return width
}

func (FaceMeasurer) LineHeight(source *text.GoTextFaceSource, size float64) float64 {
	if source == nil {
		return size
	}
	m := (&text.GoTextFace{Source: source, Size: size}).Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// LayoutSystem UI 布局系统
// 每帧根据节点样式计算 ComputedRectComponent
//
// 规则（flex 布局的子集）：
//   - 根节点相对屏幕尺寸计算宽高，Auto 时铺满屏幕
//   - 子节点沿 Direction 依次排列，间隔为 RowGap（列）或 ColumnGap（行）
//   - JustifyContent 决定主轴上的整体位置，AlignItems 决定交叉轴上的位置
//   - 文本节点按父节点宽度（或自身宽度）换行，Auto 尺寸由文本决定
//   - 隐藏节点及其子节点的矩形为空
type LayoutSystem struct {
	entityManager *ecs.EntityManager
	measurer      TextMeasurer
}

// NewLayoutSystem 创建布局系统，measurer 为 nil 时使用 FaceMeasurer
func NewLayoutSystem(em *ecs.EntityManager, measurer TextMeasurer) *LayoutSystem {
	if measurer == nil {
		measurer = FaceMeasurer{}
	}
	return &LayoutSystem{
		entityManager: em,
		measurer:      measurer,
	}
}

// Update 重新计算所有 UI 节点的位置和尺寸
func (s *LayoutSystem) Update(screenWidth, screenHeight float64) {
	for _, root := range RootNodes(s.entityManager) {
		node, _ := ecs.GetComponent[*components.NodeComponent](s.entityManager, root)

		width, ok := node.Style.Width.Resolve(screenWidth)
		if !ok {
			width = screenWidth
		}
		height, ok := node.Style.Height.Resolve(screenHeight)
		if !ok {
			height = screenHeight
		}

		s.place(root, 0, 0, width, height)
	}
}

// RootNodes 返回所有没有 UI 父节点的节点，按创建顺序
func RootNodes(em *ecs.EntityManager) []ecs.EntityID {
	var roots []ecs.EntityID
	for _, id := range ecs.GetEntitiesWith1[*components.NodeComponent](em) {
		parent := em.Parent(id)
		if parent == ecs.InvalidEntity || !ecs.HasComponent[*components.NodeComponent](em, parent) {
			roots = append(roots, id)
		}
	}
	return roots
}

// childNodes 返回 id 下所有 UI 子节点，按挂载顺序
func childNodes(em *ecs.EntityManager, id ecs.EntityID) []ecs.EntityID {
	var children []ecs.EntityID
	for _, child := range em.Children(id) {
		if ecs.HasComponent[*components.NodeComponent](em, child) {
			children = append(children, child)
		}
	}
	return children
}

type sizedNode struct {
	id   ecs.EntityID
	w, h float64
}

// place 设置节点矩形并排列其子节点
func (s *LayoutSystem) place(id ecs.EntityID, x, y, width, height float64) {
	node, _ := ecs.GetComponent[*components.NodeComponent](s.entityManager, id)
	if node.Hidden {
		s.collapse(id)
		return
	}

	s.setRect(id, components.ComputedRectComponent{X: x, Y: y, Width: width, Height: height})

	// 文本按最终宽度重新换行
	if txt, ok := ecs.GetComponent[*components.TextComponent](s.entityManager, id); ok {
		s.wrap(txt, width)
	}

	var items []sizedNode
	for _, child := range childNodes(s.entityManager, id) {
		childNode, _ := ecs.GetComponent[*components.NodeComponent](s.entityManager, child)
		if childNode.Hidden {
			s.collapse(child)
			continue
		}
		w, h := s.measure(child, width, height)
		items = append(items, sizedNode{id: child, w: w, h: h})
	}

	if len(items) == 0 {
		return
	}

	column := node.Style.Direction == components.FlexColumn
	gap := s.gap(node, width, height)

	mainSize, crossSize := width, height
	if column {
		mainSize, crossSize = height, width
	}

	total := gap * float64(len(items)-1)
	for _, item := range items {
		if column {
			total += item.h
		} else {
			total += item.w
		}
	}

	cursor := alignOffset(node.Style.JustifyContent, mainSize, total)
	for _, item := range items {
		itemMain, itemCross := item.w, item.h
		if column {
			itemMain, itemCross = item.h, item.w
		}
		cross := alignOffset(node.Style.AlignItems, crossSize, itemCross)

		if column {
			s.place(item.id, x+cross, y+cursor, item.w, item.h)
		} else {
			s.place(item.id, x+cursor, y+cross, item.w, item.h)
		}
		cursor += itemMain + gap
	}
}

// measure 计算节点在父节点可用空间内的尺寸
func (s *LayoutSystem) measure(id ecs.EntityID, parentWidth, parentHeight float64) (float64, float64) {
	node, _ := ecs.GetComponent[*components.NodeComponent](s.entityManager, id)

	width, fixedWidth := node.Style.Width.Resolve(parentWidth)
	height, fixedHeight := node.Style.Height.Resolve(parentHeight)
	if fixedWidth && fixedHeight {
		return width, height
	}

	if txt, ok := ecs.GetComponent[*components.TextComponent](s.entityManager, id); ok {
		maxWidth := parentWidth
		if fixedWidth {
			maxWidth = width
		}
		s.wrap(txt, maxWidth)

		if !fixedWidth {
			width = 0
			for _, line := range txt.Lines {
				width = max(width, s.measurer.Measure(line, txt.Source, txt.Size))
			}
		}
		if !fixedHeight {
			height = txt.LineHeight * float64(len(txt.Lines))
		}
		return width, height
	}

	// 没有文本的 Auto 节点按子节点内容计算
	contentWidth, contentHeight := s.contentSize(id, node, parentWidth, parentHeight)
	if !fixedWidth {
		width = contentWidth
	}
	if !fixedHeight {
		height = contentHeight
	}
	return width, height
}

func (s *LayoutSystem) contentSize(id ecs.EntityID, node *components.NodeComponent, parentWidth, parentHeight float64) (float64, float64) {
	column := node.Style.Direction == components.FlexColumn

	var mainTotal, crossMax float64
	count := 0
	for _, child := range childNodes(s.entityManager, id) {
		childNode, _ := ecs.GetComponent[*components.NodeComponent](s.entityManager, child)
		if childNode.Hidden {
			continue
		}
		w, h := s.measure(child, parentWidth, parentHeight)
		if column {
			mainTotal += h
			crossMax = max(crossMax, w)
		} else {
			mainTotal += w
			crossMax = max(crossMax, h)
		}
		count++
	}

	if count > 1 {
		mainTotal += s.gap(node, parentWidth, parentHeight) * float64(count-1)
	}

	if column {
		return crossMax, mainTotal
	}
	return mainTotal, crossMax
}

// gap 返回主轴方向上相邻子节点的间隔
func (s *LayoutSystem) gap(node *components.NodeComponent, width, height float64) float64 {
	if node.Style.Direction == components.FlexColumn {
		gap, _ := node.Style.RowGap.Resolve(height)
		return gap
	}
	gap, _ := node.Style.ColumnGap.Resolve(width)
	return gap
}

func (s *LayoutSystem) wrap(txt *components.TextComponent, maxWidth float64) {
	measure := func(line string) float64 {
		return s.measurer.Measure(line, txt.Source, txt.Size)
	}
	txt.Lines = utils.WrapText(txt.Value, measure, maxWidth)
	txt.LineHeight = s.measurer.LineHeight(txt.Source, txt.Size)
}

// collapse 将隐藏节点及其子节点的矩形置空
func (s *LayoutSystem) collapse(id ecs.EntityID) {
	s.setRect(id, components.ComputedRectComponent{})
	for _, child := range childNodes(s.entityManager, id) {
		s.collapse(child)
	}
}

func (s *LayoutSystem) setRect(id ecs.EntityID, rect components.ComputedRectComponent) {
	if existing, ok := ecs.GetComponent[*components.ComputedRectComponent](s.entityManager, id); ok {
		*existing = rect
		return
	}
	ecs.AddComponent(s.entityManager, id, &rect)
}

func alignOffset(align components.Align, available, size float64) float64 {
	switch align {
	case components.AlignCenter:
		return (available - size) / 2
	case components.AlignEnd:
		return available - size
	default:
		return 0
	}
}
