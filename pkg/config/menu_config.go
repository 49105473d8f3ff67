package config

// 菜单界面配置
//
// 尺寸中带 Percent 的值是相对父节点的百分比，带 Px 的是像素。

// 声明界面
const (
	// DisclaimerText 成人内容声明
	DisclaimerText = "声明：本游戏含有成人内容，包含并不仅限于关于性的细节文字和图像描写，和裸露图片。所有游玩本游戏的玩家需要年满18周岁，请确认你已经年满18周岁!"

	// DisclaimerAcceptText 确认按钮文字
	DisclaimerAcceptText = "我已年满18周岁"

	DisclaimerFontSize        = 30.0
	DisclaimerTextBoxPercentW = 80.0
	DisclaimerTextBoxPercentH = 50.0
	DisclaimerButtonPercentW  = 60.0
	DisclaimerButtonHeightPx  = 50.0
)

// 主菜单
const (
	// MainMenuTitle 游戏标题
	MainMenuTitle = "Breakout"

	// MainMenuPlayText 开始按钮文字
	MainMenuPlayText = "Play"

	MainMenuTitleFontSize    = 80.0
	MainMenuTitleBoxPercentW = 100.0
	MainMenuTitleBoxPercentH = 50.0
	MainMenuButtonWidthPx    = 300.0
	MainMenuButtonHeightPx   = 100.0
	MainMenuButtonFontSize   = 40.0
)

// MenuRowGapPx 菜单子节点之间的间隔
const MenuRowGapPx = 10.0

// 游戏运行界面
const (
	// RunningHintText 占位提示
	RunningHintText = "Game running. Press Esc to quit."

	RunningHintFontSize = 30.0
)
