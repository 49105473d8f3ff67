package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestPointerTrackerInitialState(t *testing.T) {
	p := NewPointerTracker()

	if p.touching {
		t.Error("Expected a new tracker not to be touching")
	}
	if p.touchID != -1 {
		t.Errorf("Expected TouchID to be -1 initially, got %d", p.touchID)
	}
}

func TestPointerTrackerKeepsTrackedTouch(t *testing.T) {
	p := NewPointerTracker()
	p.touchID = 7

	if got := p.trackedTouch([]ebiten.TouchID{3, 7, 9}); got != 7 {
		t.Errorf("Expected tracked touch 7, got %d", got)
	}
	if got := p.trackedTouch([]ebiten.TouchID{3, 9}); got != 3 {
		t.Errorf("Expected fallback to first touch 3, got %d", got)
	}
}
