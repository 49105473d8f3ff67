package scenes

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/roguelike/pkg/components"
	"github.com/decker502/roguelike/pkg/config"
	"github.com/decker502/roguelike/pkg/game"
	"github.com/decker502/roguelike/pkg/utils"
)

// LoadingStatus 提供加载进度和失败原因
// *game.AssetGate 实现了该接口
type LoadingStatus interface {
	Progress() game.LoadProgress
	FailureReasons() []string
}

// LoadingScene 资源加载界面
//
// 加载期间显示进度条；AssetLoadingState 为 FailedLoading 时改为显示失败原因。
// 菜单字体此时还不可用，文字使用内置的 Go 字体。
type LoadingScene struct {
	status    LoadingStatus
	loadState *game.StateMachine[game.AssetLoadingState]

	fallback    *text.GoTextFaceSource
	drawOpts    text.DrawOptions
	elapsedTime float64
}

// NewLoadingScene 创建加载界面
func NewLoadingScene(status LoadingStatus, loadState *game.StateMachine[game.AssetLoadingState]) (*LoadingScene, error) {
	fallback, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load fallback font: %w", err)
	}

	return &LoadingScene{
		status:    status,
		loadState: loadState,
		fallback:  fallback,
	}, nil
}

// Update 记录经过的时间（用于加载提示的省略号动画）
func (s *LoadingScene) Update(deltaTime float64) error {
	s.elapsedTime += deltaTime
	return nil
}

// Draw 绘制进度条或失败信息
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	width, height := float64(bounds.Dx()), float64(bounds.Dy())

	if s.loadState.InState(game.AssetFailedLoading) {
		s.drawFailure(screen, width)
		return
	}

	s.drawProgress(screen, width, height)
}

func (s *LoadingScene) drawProgress(screen *ebiten.Image, width, height float64) {
	progress := s.status.Progress()
	outer, inner := progressBarRects(width, height, progress.Fraction())

	vector.DrawFilledRect(screen,
		float32(outer.X), float32(outer.Y), float32(outer.Width), float32(outer.Height),
		config.DarkGray, false)
	if inner.Width > 0 {
		vector.DrawFilledRect(screen,
			float32(inner.X), float32(inner.Y), float32(inner.Width), float32(inner.Height),
			config.YellowGreen, false)
	}

	label := s.progressLabel(progress)
	face := &text.GoTextFace{Source: s.fallback, Size: config.FailureFontSize}
	labelWidth, labelHeight := text.Measure(label, face, 0)
	s.drawLine(screen, label, face, (width-labelWidth)/2, outer.Y-labelHeight-8, config.Gray)
}

// progressLabel 返回形如 "Loading assets.. 1/2" 的提示文字
func (s *LoadingScene) progressLabel(progress game.LoadProgress) string {
	dots := 1 + int(s.elapsedTime*2)%3
	return fmt.Sprintf("Loading assets%s %d/%d", strings.Repeat(".", dots), progress.Loaded, progress.Total)
}

func (s *LoadingScene) drawFailure(screen *ebiten.Image, width float64) {
	face := &text.GoTextFace{Source: s.fallback, Size: config.FailureFontSize}
	lineHeight := face.Size * 1.4
	maxWidth := width - 2*config.FailureMargin

	y := config.FailureMargin
	for i, line := range failureLines(s.status.FailureReasons()) {
		clr := config.Gray
		if i == 0 {
			clr = config.FailureRed
		}
		for _, wrapped := range utils.WrapText(line, utils.FaceMeasure(face), maxWidth) {
			s.drawLine(screen, wrapped, face, config.FailureMargin, y, clr)
			y += lineHeight
		}
	}
}

func (s *LoadingScene) drawLine(screen *ebiten.Image, line string, face text.Face, x, y float64, clr color.Color) {
	s.drawOpts.GeoM.Reset()
	s.drawOpts.GeoM.Translate(x, y)
	s.drawOpts.ColorScale.Reset()
	s.drawOpts.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, line, face, &s.drawOpts)
}

// failureLines 返回失败界面显示的文字（标题 + 每个失败原因一行）
func failureLines(reasons []string) []string {
	lines := []string{"Failed to load assets"}
	if len(reasons) == 0 {
		return append(lines, "- unknown error")
	}
	for _, reason := range reasons {
		lines = append(lines, "- "+reason)
	}
	return lines
}

// progressBarRects 计算进度条外框和填充部分，进度条在屏幕正中
func progressBarRects(screenWidth, screenHeight, fraction float64) (outer, inner components.ComputedRectComponent) {
	fraction = min(max(fraction, 0), 1)

	barWidth := screenWidth * config.LoadingBarWidthPercent / 100
	outer = components.ComputedRectComponent{
		X:      (screenWidth - barWidth) / 2,
		Y:      (screenHeight - config.LoadingBarHeight) / 2,
		Width:  barWidth,
		Height: config.LoadingBarHeight,
	}

	border := config.LoadingBarBorder
	inner = components.ComputedRectComponent{
		X:      outer.X + border,
		Y:      outer.Y + border,
		Width:  (outer.Width - 2*border) * fraction,
		Height: outer.Height - 2*border,
	}
	return outer, inner
}
