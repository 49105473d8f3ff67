package game

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// textLoader 把文件内容作为字符串返回
type textLoader struct{}

func (textLoader) Load(path string, data []byte) (any, error) { return string(data), nil }
func (textLoader) Extensions() []string                        { return []string{".txt"} }

func TestAssetWatcherReloadsChangedFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "notes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes", "a.txt"), []byte("v1"), 0o644))

	rm := NewResourceManager(os.DirFS(root), textLoader{})
	id := rm.Load("notes/a.txt")
	rm.Wait()

	w, err := NewAssetWatcher(root, rm)
	require.NoError(t, err)
	w.Start()
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(filepath.Join(root, "notes", "a.txt"), []byte("v2"), 0o644))

	require.Eventually(t, func() bool {
		value, err := rm.Get(id)
		return err == nil && value == "v2"
	}, 5*time.Second, 10*time.Millisecond)
}

func TestAssetWatcherWatchesNewDirectories(t *testing.T) {
	root := t.TempDir()

	rm := NewResourceManager(os.DirFS(root), textLoader{})
	w, err := NewAssetWatcher(root, rm)
	require.NoError(t, err)
	w.Start()
	t.Cleanup(func() { _ = w.Close() })

	dir := filepath.Join(root, "late")
	require.NoError(t, os.Mkdir(dir, 0o755))

	// 目录被加入监听之前写入的事件会丢失，所以反复写入直到重新加载
	id := rm.Load("late/b.txt")
	require.Eventually(t, func() bool {
		_ = os.WriteFile(filepath.Join(dir, "b.txt"), []byte("written"), 0o644)
		value, err := rm.Get(id)
		return err == nil && value == "written"
	}, 5*time.Second, 50*time.Millisecond)
}

func TestAssetWatcherIgnoresUnrequestedFiles(t *testing.T) {
	root := t.TempDir()
	rm := NewResourceManager(os.DirFS(root), textLoader{})

	w, err := NewAssetWatcher(root, rm)
	require.NoError(t, err)
	w.Start()

	require.NoError(t, os.WriteFile(filepath.Join(root, "other.txt"), []byte("x"), 0o644))
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, 0, rm.Progress().Total, "nothing requested, nothing loaded")

	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "Close is idempotent")
}
