package config

import "image/color"

// UI 使用的颜色
var (
	// ClearColor 每帧清屏颜色 rgb(0.9, 0.9, 0.9)
	ClearColor = color.RGBA{R: 230, G: 230, B: 230, A: 255}

	// AntiqueWhite 菜单背景
	AntiqueWhite = color.RGBA{R: 250, G: 235, B: 215, A: 255}

	// YellowGreen 按钮常态背景
	YellowGreen = color.RGBA{R: 154, G: 205, B: 50, A: 255}

	// AliceBlue 按钮按下时的背景
	AliceBlue = color.RGBA{R: 240, G: 248, B: 255, A: 255}

	// Gray 标题和正文文字
	Gray = color.RGBA{R: 128, G: 128, B: 128, A: 255}

	// Blue 按钮文字
	Blue = color.RGBA{R: 0, G: 0, B: 255, A: 255}

	// DarkGray 加载界面进度条底色
	DarkGray = color.RGBA{R: 64, G: 64, B: 64, A: 255}

	// FailureRed 加载失败界面的标题
	FailureRed = color.RGBA{R: 200, G: 40, B: 40, A: 255}
)
