package systems

import (
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/roguelike/pkg/components"
	"github.com/decker502/roguelike/pkg/ecs"
)

// fixedMeasurer 每个字符宽 size/2，行高为 size
type fixedMeasurer struct{}

func (fixedMeasurer) Measure(s string, _ *text.GoTextFaceSource, size float64) float64 {
	return float64(utf8.RuneCountInString(s)) * size / 2
}

func (fixedMeasurer) LineHeight(_ *text.GoTextFaceSource, size float64) float64 {
	return size
}

func spawnNode(em *ecs.EntityManager, parent ecs.EntityID, style components.Style) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.NodeComponent{Style: style})
	if parent != ecs.InvalidEntity {
		em.SetParent(id, parent)
	}
	return id
}

func spawnText(em *ecs.EntityManager, parent ecs.EntityID, value string, size float64) ecs.EntityID {
	id := spawnNode(em, parent, components.Style{})
	ecs.AddComponent(em, id, &components.TextComponent{Value: value, Size: size, Justify: components.TextJustifyCenter})
	return id
}

func rectOf(em *ecs.EntityManager, id ecs.EntityID) components.ComputedRectComponent {
	rect, ok := ecs.GetComponent[*components.ComputedRectComponent](em, id)
	if !ok {
		return components.ComputedRectComponent{}
	}
	return *rect
}

func centeredColumn(width, height components.Val, gap float64) components.Style {
	return components.Style{
		Direction:      components.FlexColumn,
		JustifyContent: components.AlignCenter,
		AlignItems:     components.AlignCenter,
		RowGap:         components.Px(gap),
		Width:          width,
		Height:         height,
	}
}
