//go:build !mobile

package utils

import "testing"

// TestIsMobile_Desktop 测试桌面端编译时 IsMobile() 返回 false
func TestIsMobile_Desktop(t *testing.T) {
	t.Setenv("ROGUELIKE_MOBILE_EMULATE", "")
	if IsMobile() {
		t.Error("IsMobile() should return false on desktop")
	}
}

func TestIsMobile_Emulated(t *testing.T) {
	t.Setenv("ROGUELIKE_MOBILE_EMULATE", "1")
	if !IsMobile() {
		t.Error("IsMobile() should return true when emulated")
	}
}
