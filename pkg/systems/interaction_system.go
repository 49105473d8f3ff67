package systems

import (
	"github.com/decker502/roguelike/pkg/components"
	"github.com/decker502/roguelike/pkg/ecs"
	"github.com/decker502/roguelike/pkg/utils"
)

// InteractionSystem 指针交互系统
// 根据指针位置和按键状态更新所有 InteractionComponent
//
// 规则：
//   - 指针在节点上刚按下：Pressed
//   - 已按下的节点在松开之前保持 Pressed（即使指针移出）
//   - 其余情况：指针在节点上为 Hovered，否则为 None
//   - Changed 只在状态变化的那一帧为 true
type InteractionSystem struct {
	entityManager *ecs.EntityManager
	wasPressed    bool
}

// NewInteractionSystem 创建交互系统
func NewInteractionSystem(em *ecs.EntityManager) *InteractionSystem {
	return &InteractionSystem{
		entityManager: em,
	}
}

// Update 使用本帧的指针状态更新交互状态
func (s *InteractionSystem) Update(pointer utils.PointerState) {
	justPressed := pointer.Pressed && !s.wasPressed
	s.wasPressed = pointer.Pressed

	x, y := float64(pointer.X), float64(pointer.Y)

	entities := ecs.GetEntitiesWith2[*components.InteractionComponent, *components.ComputedRectComponent](s.entityManager)
	for _, entityID := range entities {
		interaction, _ := ecs.GetComponent[*components.InteractionComponent](s.entityManager, entityID)
		rect, _ := ecs.GetComponent[*components.ComputedRectComponent](s.entityManager, entityID)

		hovered := pointer.Present && rect.Contains(x, y)

		next := components.InteractionNone
		switch {
		case interaction.State == components.InteractionPressed && pointer.Pressed:
			next = components.InteractionPressed
		case hovered && justPressed:
			next = components.InteractionPressed
		case hovered:
			next = components.InteractionHovered
		}

		interaction.Changed = next != interaction.State
		interaction.State = next
	}
}
