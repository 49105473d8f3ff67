// Package logging 提供带前缀的结构化日志记录器
//
// 所有组件都通过 For("Tag") 获取自己的 logger，输出格式类似 "[Tag] message"。
// 必须在创建组件之前调用 Configure()，否则使用默认配置（Warn 级别）。
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	mu   sync.Mutex
	root = newRoot(os.Stderr, false)
)

func newRoot(w io.Writer, verbose bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	if verbose {
		l.SetLevel(log.DebugLevel)
	} else {
		l.SetLevel(log.WarnLevel)
	}
	return l
}

// Configure 重新配置根 logger
//
// 参数：
//   - w: 日志输出目标，nil 表示丢弃所有日志
//   - verbose: true 时输出 Debug 级别日志，否则只输出 Warn 及以上
func Configure(w io.Writer, verbose bool) {
	if w == nil {
		w = io.Discard
	}

	mu.Lock()
	defer mu.Unlock()
	root = newRoot(w, verbose)
}

// For 返回带有指定前缀的 logger
func For(tag string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	return root.WithPrefix("[" + tag + "]")
}
