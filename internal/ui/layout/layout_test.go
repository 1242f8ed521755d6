package layout

import (
	"strings"
	"testing"
)

func TestRenderHeaderShowsStreak(t *testing.T) {
	h := RenderHeader("Learn Go", 4, 9, 80)
	for _, want := range []string{"Lifebuddy", "Learn Go", "4", "best 9"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestContentHeight(t *testing.T) {
	if got := ContentHeight(30); got != 24 {
		t.Errorf("ContentHeight(30) = %d, want 24", got)
	}
	if got := ContentHeight(2); got != 0 {
		t.Errorf("ContentHeight(2) = %d, want 0", got)
	}
}

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(40, 30) {
		t.Error("40 columns should be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("minimum size should fit")
	}
}
