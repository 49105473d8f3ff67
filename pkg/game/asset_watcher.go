package game

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/decker502/roguelike/pkg/logging"
)

// AssetWatcher 监听资源目录，文件变化时重新加载已请求过的资源
//
// 仅在从磁盘目录（-assets）读取资源时使用；嵌入资源不会变化。
type AssetWatcher struct {
	root    string
	rm      *ResourceManager
	watcher *fsnotify.Watcher

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup

	logger *log.Logger
}

// NewAssetWatcher 创建监听器并递归监听 root 下的所有目录
// rm 必须是从同一个目录（os.DirFS(root)）读取资源的 ResourceManager
func NewAssetWatcher(root string, rm *ResourceManager) (*AssetWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &AssetWatcher{
		root:    root,
		rm:      rm,
		watcher: watcher,
		done:    make(chan struct{}),
		logger:  logging.For("AssetWatcher"),
	}

	if err := w.watchRecursive(root); err != nil {
		watcher.Close()
		return nil, err
	}

	return w, nil
}

// Start 在后台处理文件事件，直到 Close
func (w *AssetWatcher) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.run()
	}()
}

// Close 停止监听
func (w *AssetWatcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		w.wg.Wait()
		err = w.watcher.Close()
	})
	return err
}

func (w *AssetWatcher) run() {
	for {
		select {
		case e, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(e)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", "err", err)

		case <-w.done:
			return
		}
	}
}

func (w *AssetWatcher) handle(e fsnotify.Event) {
	info, err := os.Stat(e.Name)
	if err == nil && info.IsDir() {
		// 新建的目录也需要监听
		if e.Has(fsnotify.Create) {
			if err := w.watchRecursive(e.Name); err != nil {
				w.logger.Warn("cannot watch directory", "dir", e.Name, "err", err)
			}
		}
		return
	}

	if !e.Has(fsnotify.Create) && !e.Has(fsnotify.Write) {
		return
	}

	rel, err := filepath.Rel(w.root, e.Name)
	if err != nil {
		return
	}
	rel = filepath.ToSlash(rel)

	if w.rm.Reload(rel) {
		w.logger.Info("asset changed, reloading", "path", rel)
	}
}

// watchRecursive 监听 dir 及其所有子目录
func (w *AssetWatcher) watchRecursive(dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return w.watcher.Add(p)
		}
		return nil
	})
}
