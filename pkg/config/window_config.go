package config

// 窗口配置常量

const (
	// WindowTitle 窗口标题
	WindowTitle = "Roguelike demo"

	// WindowWidth 默认窗口宽度（逻辑像素）
	WindowWidth = 1280

	// WindowHeight 默认窗口高度（逻辑像素）
	WindowHeight = 720

	// TargetTPS 每秒逻辑更新次数
	TargetTPS = 60
)
