package systems

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/roguelike/pkg/logging"
)

// FrameStats 一个统计周期内的帧时间
type FrameStats struct {
	Frames       int
	AvgFrameTime time.Duration
	FPS          float64
}

// DiagnosticsSystem 帧时间诊断
// 每隔 Interval 输出一次平均帧时间和 FPS（Debug 级别）
type DiagnosticsSystem struct {
	Interval time.Duration

	elapsed time.Duration
	frames  int
	last    FrameStats
	logger  *log.Logger
}

// NewDiagnosticsSystem 创建诊断系统，统计周期为一秒
func NewDiagnosticsSystem() *DiagnosticsSystem {
	return &DiagnosticsSystem{
		Interval: time.Second,
		logger:   logging.For("Diagnostics"),
	}
}

// Update 记录一帧；deltaTime 单位为秒
// 返回 true 表示本帧完成了一个统计周期
func (s *DiagnosticsSystem) Update(deltaTime float64) bool {
	s.elapsed += time.Duration(deltaTime * float64(time.Second))
	s.frames++

	if s.elapsed < s.Interval {
		return false
	}

	s.last = FrameStats{
		Frames:       s.frames,
		AvgFrameTime: s.elapsed / time.Duration(s.frames),
		FPS:          float64(s.frames) / s.elapsed.Seconds(),
	}
	s.logger.Debug("frame time",
		"fps", s.last.FPS,
		"avg", s.last.AvgFrameTime,
		"tps", ebiten.ActualTPS(),
		"actual_fps", ebiten.ActualFPS())

	s.elapsed = 0
	s.frames = 0
	return true
}

// Last 返回最近一个统计周期的结果
func (s *DiagnosticsSystem) Last() FrameStats {
	return s.last
}
