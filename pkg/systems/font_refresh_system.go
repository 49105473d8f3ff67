package systems

import (
	"github.com/decker502/roguelike/pkg/components"
	"github.com/decker502/roguelike/pkg/ecs"
)

// FontRefreshSystem 让文本使用字体资源的当前值
// 字体文件重新加载后，已经显示的文本在下一帧换成新字体
type FontRefreshSystem struct {
	entityManager *ecs.EntityManager
}

// NewFontRefreshSystem 创建字体刷新系统
func NewFontRefreshSystem(em *ecs.EntityManager) *FontRefreshSystem {
	return &FontRefreshSystem{
		entityManager: em,
	}
}

// Update 返回本帧更换了字体的文本数量
func (s *FontRefreshSystem) Update() int {
	updated := 0
	for _, entityID := range ecs.GetEntitiesWith1[*components.TextComponent](s.entityManager) {
		txt, _ := ecs.GetComponent[*components.TextComponent](s.entityManager, entityID)
		if txt.Font == nil {
			continue
		}

		source, ok := txt.Font.Get()
		if !ok || source == txt.Source {
			continue
		}

		txt.Source = source
		updated++
	}
	return updated
}
