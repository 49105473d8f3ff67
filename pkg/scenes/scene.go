package scenes

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/decker502/roguelike/pkg/components"
	"github.com/decker502/roguelike/pkg/config"
	"github.com/decker502/roguelike/pkg/ecs"
	"github.com/decker502/roguelike/pkg/game"
)

// Scene is a type alias for game.Scene so callers only need this package.
type Scene = game.Scene

// ErrMenuRootMissing 离开界面时找不到界面根节点
var ErrMenuRootMissing = errors.New("menu root entity missing")

// MenuFonts 提供菜单使用的字体句柄
// *game.AssetGate 在资源加载完成后提供这两个句柄
type MenuFonts interface {
	UIFont() game.FontHandle
	UINormalFont() game.FontHandle
}

// despawnRoot 找到唯一带有标记 T 的根节点并递归销毁
func despawnRoot[T any](em *ecs.EntityManager, name string) error {
	root, err := ecs.Single[T](em)
	switch {
	case errors.Is(err, ecs.ErrNoEntities):
		return fmt.Errorf("despawn %s: %w", name, ErrMenuRootMissing)
	case err != nil:
		return fmt.Errorf("despawn %s: %w", name, err)
	}

	em.DestroyRecursive(root)
	em.RemoveMarkedEntities()
	return nil
}

// spawnNode 创建 UI 节点并挂到 parent 下（parent 为 InvalidEntity 时为根节点）
func spawnNode(em *ecs.EntityManager, parent ecs.EntityID, style components.Style, background color.Color) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.NodeComponent{
		Style:      style,
		Background: background,
	})
	if parent != ecs.InvalidEntity {
		em.SetParent(id, parent)
	}
	return id
}

// spawnText 创建居中对齐的文本节点
func spawnText(em *ecs.EntityManager, parent ecs.EntityID, value string, font game.FontHandle, size float64, clr color.Color) ecs.EntityID {
	id := spawnNode(em, parent, components.Style{}, nil)

	// 字体未加载时 Source 为 nil，文本只参与布局不绘制
	source, _ := font.Get()
	var fontSource components.FontSource
	if font.IsValid() {
		fontSource = font
	}
	ecs.AddComponent(em, id, &components.TextComponent{
		Value:   value,
		Source:  source,
		Font:    fontSource,
		Size:    size,
		Color:   clr,
		Justify: components.TextJustifyCenter,
	})
	return id
}

// spawnButton 创建按钮节点，子节点居中
func spawnButton(em *ecs.EntityManager, parent ecs.EntityID, width, height components.Val, normal, pressed color.Color, onActivate func()) ecs.EntityID {
	id := spawnNode(em, parent, components.Style{
		Direction:      components.FlexColumn,
		JustifyContent: components.AlignCenter,
		AlignItems:     components.AlignCenter,
		Width:          width,
		Height:         height,
	}, normal)
	ecs.AddComponent(em, id, &components.InteractionComponent{})
	ecs.AddComponent(em, id, &components.ButtonComponent{
		NormalColor:  normal,
		PressedColor: pressed,
		OnActivate:   onActivate,
	})
	return id
}

// menuColumn 居中排列的列布局
func menuColumn(width, height components.Val) components.Style {
	return components.Style{
		Direction:      components.FlexColumn,
		JustifyContent: components.AlignCenter,
		AlignItems:     components.AlignCenter,
		RowGap:         components.Px(config.MenuRowGapPx),
		Width:          width,
		Height:         height,
	}
}
