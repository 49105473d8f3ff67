package components

// 每个界面的根节点都带有自己的标记组件，离开界面时按标记找到根节点并递归销毁

// DisclaimerMenuComponent 标记声明界面的根节点
type DisclaimerMenuComponent struct{}

// MainMenuComponent 标记主菜单的根节点
type MainMenuComponent struct{}

// RunningScreenComponent 标记游戏运行界面的根节点
type RunningScreenComponent struct{}
