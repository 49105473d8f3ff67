package config

// 加载界面配置常量

const (
	// LoadingBarWidthPercent 进度条宽度（占屏幕宽度的百分比）
	LoadingBarWidthPercent = 50.0

	// LoadingBarHeight 进度条高度（像素）
	LoadingBarHeight = 24.0

	// LoadingBarBorder 进度条边框宽度（像素）
	LoadingBarBorder = 2.0

	// FailureFontSize 加载失败界面使用的字体大小
	FailureFontSize = 20.0

	// FailureMargin 加载失败界面的页边距（像素）
	FailureMargin = 40.0
)
