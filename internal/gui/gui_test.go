package gui

import (
	"testing"

	"github.com/san-kum/hexfield/internal/world"
)

var _ world.Surface = surface{}

func TestNewGame_Defaults(t *testing.T) {
	tests := []struct {
		w, h             int
		expectW, expectH int
	}{
		{0, 0, DefaultWidth, DefaultHeight},
		{-1, 300, DefaultWidth, 300},
		{640, 480, 640, 480},
	}

	for _, tt := range tests {
		g := NewGame(world.DefaultParams(), tt.w, tt.h)
		w, h := g.Layout(1, 1)
		if w != tt.expectW || h != tt.expectH {
			t.Errorf("NewGame(%d, %d): layout %dx%d, want %dx%d", tt.w, tt.h, w, h, tt.expectW, tt.expectH)
		}
	}
}
