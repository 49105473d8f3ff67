// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）或 mobile 包中。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ErrNotInitialized 在 Init() 之前访问资源
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

// 所有嵌入资源都位于该目录下
const assetsDir = "assets"

var (
	assetsFS    fs.FS
	initialized bool
)

// Init 初始化资源文件系统
// 必须在 main() 开始时、任何资源加载之前调用
// assets 的根目录下应包含 "assets/" 目录（通常是 //go:embed all:assets 声明的 embed.FS）
func Init(assets fs.FS) {
	assetsFS = assets
	initialized = assets != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径并检查前缀
// 路径必须以 "assets/" 开头
func normalize(path string) (string, error) {
	if !initialized {
		return "", ErrNotInitialized
	}

	// 标准化路径分隔符为正斜杠（embed.FS 使用正斜杠）
	path = filepath.ToSlash(path)

	// 移除可能的 "./" 前缀
	path = strings.TrimPrefix(path, "./")

	if path != assetsDir && !strings.HasPrefix(path, assetsDir+"/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with '%s/')", path, assetsDir)
	}
	return path, nil
}

// Open 打开嵌入的资源文件
func Open(path string) (fs.File, error) {
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return assetsFS.Open(path)
}

// ReadFile 读取嵌入的资源文件内容
func ReadFile(path string) ([]byte, error) {
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(assetsFS, path)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Sub 返回指定目录的子文件系统
func Sub(dir string) (fs.FS, error) {
	dir, err := normalize(dir)
	if err != nil {
		return nil, err
	}
	return fs.Sub(assetsFS, dir)
}

// Assets 返回以 "assets/" 为根的文件系统，供 ResourceManager 使用
func Assets() (fs.FS, error) {
	return Sub(assetsDir)
}
