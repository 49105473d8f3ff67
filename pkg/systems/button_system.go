package systems

import (
	"github.com/decker502/roguelike/pkg/components"
	"github.com/decker502/roguelike/pkg/ecs"
)

// ButtonSystem 菜单按钮系统
// 只处理本帧交互状态发生变化的按钮：
//   - 变为 Pressed：背景变为 PressedColor，记住已按下
//   - 其他变化：背景恢复 NormalColor；如果之前按下过，触发 OnActivate
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// Update 在 InteractionSystem 之后调用
func (s *ButtonSystem) Update() {
	entities := ecs.GetEntitiesWith3[*components.ButtonComponent, *components.InteractionComponent, *components.NodeComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		interaction, _ := ecs.GetComponent[*components.InteractionComponent](s.entityManager, entityID)
		node, _ := ecs.GetComponent[*components.NodeComponent](s.entityManager, entityID)

		if !interaction.Changed {
			continue
		}

		if interaction.State == components.InteractionPressed {
			node.Background = button.PressedColor
			button.Pressed = true
			continue
		}

		node.Background = button.NormalColor
		if button.Pressed {
			button.Pressed = false
			if button.OnActivate != nil {
				button.OnActivate()
			}
		}
	}
}
