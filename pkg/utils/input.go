// Package utils 提供通用工具函数
package utils

import "github.com/hajimehoshi/ebiten/v2"

// PointerState 存储当前帧的指针状态
// 用于统一处理鼠标和触摸输入
type PointerState struct {
	// 指针位置（屏幕坐标）
	X, Y int
	// 鼠标左键或触摸是否按住
	Pressed bool
	// 是否有指针位置可用（触摸设备松手后没有位置）
	Present bool
	// 是否为触摸输入
	IsTouching bool
}

// PointerTracker 跟踪触摸/鼠标指针
// 触摸松开后不再有位置，因此记住最后一次触摸位置用于松开那一帧
type PointerTracker struct {
	touchID    ebiten.TouchID
	touching   bool
	lastTouchX int
	lastTouchY int
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{touchID: -1}
}

// Read 读取当前帧的指针状态（每帧调用一次）
// 优先检测触摸，没有触摸时使用鼠标
func (p *PointerTracker) Read() PointerState {
	touchIDs := ebiten.AppendTouchIDs(nil)

	if len(touchIDs) > 0 {
		id := p.trackedTouch(touchIDs)
		x, y := ebiten.TouchPosition(id)
		p.touchID = id
		p.touching = true
		p.lastTouchX, p.lastTouchY = x, y
		return PointerState{X: x, Y: y, Pressed: true, Present: true, IsTouching: true}
	}

	if p.touching {
		// 松开的那一帧仍报告最后的位置，让按钮能收到“松开”
		p.touching = false
		p.touchID = -1
		return PointerState{X: p.lastTouchX, Y: p.lastTouchY, Present: true, IsTouching: true}
	}

	x, y := ebiten.CursorPosition()
	return PointerState{
		X:       x,
		Y:       y,
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Present: true,
	}
}

// trackedTouch 返回正在跟踪的触摸；原触摸结束时换成第一个触摸
func (p *PointerTracker) trackedTouch(touchIDs []ebiten.TouchID) ebiten.TouchID {
	for _, id := range touchIDs {
		if id == p.touchID {
			return id
		}
	}
	return touchIDs[0]
}
