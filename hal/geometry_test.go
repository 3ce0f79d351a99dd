package hal

import "testing"

func TestViewportToScreen(t *testing.T) {
	v := Viewport{Width: 1900, Height: 1080}
	tests := []struct {
		x, y   float64
		sx, sy float64
	}{
		{0, 0, 950, 540},
		{480, -380, 1430, 920},
		{-950, 540, 0, 0},
	}
	for _, tt := range tests {
		sx, sy := v.ToScreen(tt.x, tt.y)
		if sx != tt.sx || sy != tt.sy {
			t.Fatalf("ToScreen(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, sx, sy, tt.sx, tt.sy)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(5, 0, 3); got != 3 {
		t.Fatalf("clamp(5, 0, 3) = %d, want 3", got)
	}
	if got := clamp(-1.5, 0, 1); got != 0 {
		t.Fatalf("clamp(-1.5, 0, 1) = %v, want 0", got)
	}
	if got := clamp(0.25, 0, 1); got != 0.25 {
		t.Fatalf("clamp(0.25, 0, 1) = %v, want 0.25", got)
	}
}

func TestDepthOrderStable(t *testing.T) {
	in := []Sprite{
		{Texture: TextureDotGlow, Depth: 4},
		{Texture: TextureDotCore, Depth: 4},
		{Texture: TextureMouse, Depth: 0},
		{Texture: TextureArrow, Depth: 2},
	}
	got := depthOrder(nil, in)
	want := []TextureID{TextureMouse, TextureArrow, TextureDotGlow, TextureDotCore}
	if len(got) != len(want) {
		t.Fatalf("depthOrder() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Texture != want[i] {
			t.Fatalf("depthOrder()[%d] = %v, want %v", i, got[i].Texture, want[i])
		}
	}
	if in[0].Texture != TextureDotGlow {
		t.Fatalf("depthOrder() modified its input")
	}
}
