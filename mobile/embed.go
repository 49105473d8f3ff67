//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// mage mobile:android / mage mobile:ios 会先把 assets/ 复制到此目录。
package mobile

import "embed"

//go:embed all:assets
var assetsFS embed.FS
