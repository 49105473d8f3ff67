package embedded

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
)

func testAssets() fstest.MapFS {
	return fstest.MapFS{
		"assets/config/resources.yaml": {Data: []byte("version: \"1.0\"\n")},
		"assets/fonts/ui.ttf":          {Data: []byte("font")},
	}
}

// reset 恢复包状态，避免影响其他测试
func reset(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		assetsFS = nil
		initialized = false
	})
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	reset(t)
	Init(nil)

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testAssets())

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestNotInitialized 测试未初始化时访问资源
func TestNotInitialized(t *testing.T) {
	reset(t)
	Init(nil)

	if _, err := Open("assets/fonts/ui.ttf"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Open: expected ErrNotInitialized, got %v", err)
	}
	if _, err := ReadFile("assets/fonts/ui.ttf"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile: expected ErrNotInitialized, got %v", err)
	}
	if _, err := Assets(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Assets: expected ErrNotInitialized, got %v", err)
	}
	if Exists("assets/fonts/ui.ttf") {
		t.Error("Exists should be false before Init()")
	}
}

// TestReadFile 测试路径标准化
func TestReadFile(t *testing.T) {
	reset(t)
	Init(testAssets())

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"plain path", "assets/fonts/ui.ttf", false},
		{"dot prefix", "./assets/fonts/ui.ttf", false},
		{"missing file", "assets/fonts/none.ttf", true},
		{"wrong prefix", "data/fonts/ui.ttf", true},
		{"prefix lookalike", "assetsX/fonts/ui.ttf", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && string(data) != "font" {
				t.Errorf("ReadFile(%q) = %q", tt.path, data)
			}
		})
	}

	if !Exists("assets/config/resources.yaml") {
		t.Error("Exists should find the manifest")
	}
}

// TestAssets 测试以 assets/ 为根的子文件系统
func TestAssets(t *testing.T) {
	reset(t)
	Init(testAssets())

	assets, err := Assets()
	if err != nil {
		t.Fatalf("Assets() failed: %v", err)
	}

	data, err := fs.ReadFile(assets, "config/resources.yaml")
	if err != nil {
		t.Fatalf("ReadFile from sub FS failed: %v", err)
	}
	if string(data) != "version: \"1.0\"\n" {
		t.Errorf("unexpected manifest content %q", data)
	}
}
