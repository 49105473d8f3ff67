package components

import "image/color"

// ValUnit 尺寸单位
type ValUnit int

const (
	// ValAuto 由内容决定尺寸
	ValAuto ValUnit = iota
	// ValPx 固定像素
	ValPx
	// ValPercent 父节点尺寸的百分比
	ValPercent
)

// Val 是布局中使用的长度值
type Val struct {
	Unit  ValUnit
	Value float64
}

// Auto 由内容决定的长度
var Auto = Val{Unit: ValAuto}

// Px 返回固定像素长度
func Px(v float64) Val {
	return Val{Unit: ValPx, Value: v}
}

// Percent 返回相对父节点的百分比长度
func Percent(v float64) Val {
	return Val{Unit: ValPercent, Value: v}
}

// Resolve 根据父节点尺寸计算长度，Auto 返回 ok=false
func (v Val) Resolve(parent float64) (length float64, ok bool) {
	switch v.Unit {
	case ValPx:
		return v.Value, true
	case ValPercent:
		return parent * v.Value / 100, true
	default:
		return 0, false
	}
}

// FlexDirection 子节点排列方向
type FlexDirection int

const (
	FlexRow FlexDirection = iota
	FlexColumn
)

// Align 主轴（JustifyContent）或交叉轴（AlignItems）上的对齐方式
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Style 节点布局样式（flex 布局的一个子集）
type Style struct {
	Direction      FlexDirection
	JustifyContent Align
	AlignItems     Align
	RowGap         Val
	ColumnGap      Val
	Width          Val
	Height         Val
}

// NodeComponent 标记一个 UI 节点
// 子节点通过 EntityManager.SetParent 挂在父节点下，按创建顺序排列
type NodeComponent struct {
	Style Style
	// Background 背景颜色，nil 表示透明
	Background color.Color
	// Hidden 为 true 时节点及其子节点都不参与布局和渲染
	Hidden bool
}
