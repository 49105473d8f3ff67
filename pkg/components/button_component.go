package components

import "image/color"

// ButtonComponent 菜单按钮
//
// 按下时背景变为 PressedColor 并记住“已按下”，
// 之后交互状态的任何其他变化（松开、移出）都会恢复 NormalColor 并触发 OnActivate。
type ButtonComponent struct {
	NormalColor  color.Color
	PressedColor color.Color

	// Pressed 按下后保持为 true
	Pressed bool

	// OnActivate 按下后交互状态再次变化时调用
	OnActivate func()
}
