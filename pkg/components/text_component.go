package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TextJustify 多行文本的水平对齐方式
type TextJustify int

const (
	TextJustifyLeft TextJustify = iota
	TextJustifyCenter
)

// FontSource 提供文本字体的当前值（资源重新加载后会变化）
type FontSource interface {
	Get() (*text.GoTextFaceSource, bool)
}

// TextComponent 文本节点
// 与 NodeComponent 一起使用；尺寸为 Auto 时由文本测量结果决定
type TextComponent struct {
	Value   string
	Source  *text.GoTextFaceSource
	// Font 为 nil 时 Source 固定不变，否则每帧以 Font 的当前值为准
	Font    FontSource
	Size    float64
	Color   color.Color
	Justify TextJustify

	// Lines 由布局系统写入：按节点宽度换行后的文本
	Lines []string
	// LineHeight 由布局系统写入：单行高度（像素）
	LineHeight float64
}
