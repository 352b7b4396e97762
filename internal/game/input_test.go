package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"raycaster/internal/config"
)

// fakeKeys is a KeyState backed by a set of held keys.
type fakeKeys map[Key]bool

func (f fakeKeys) IsKeyPressed(key Key) bool {
	return f[key]
}

func held(keys ...Key) fakeKeys {
	f := fakeKeys{}
	for _, k := range keys {
		f[k] = true
	}
	return f
}

func TestHandleMovementInput(t *testing.T) {
	tests := []struct {
		name string
		keys fakeKeys
		want mgl32.Vec2
	}{
		{"none", held(), mgl32.Vec2{0, 0}},
		{"forward", held(KeyW), mgl32.Vec2{0, 2}},
		{"back", held(KeyS), mgl32.Vec2{0, -2}},
		{"right", held(KeyD), mgl32.Vec2{2, 0}},
		{"left", held(KeyA), mgl32.Vec2{-2, 0}},
		{"W wins over S", held(KeyW, KeyS), mgl32.Vec2{0, 2}},
		{"D wins over A", held(KeyA, KeyD), mgl32.Vec2{2, 0}},
		{"diagonal", held(KeyW, KeyD), mgl32.Vec2{2, 2}},
		{"all four", held(KeyW, KeyA, KeyS, KeyD), mgl32.Vec2{2, 2}},
		{"toggles do not move", held(KeyTab, KeyF3), mgl32.Vec2{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ih := NewInputHandler(2)
			player := Player{Position: mgl32.Vec2{10, 10}}
			ih.HandleInput(tt.keys, &player)

			want := mgl32.Vec2{10, 10}.Add(tt.want)
			if player.Position != want {
				t.Errorf("position = %v, want %v", player.Position, want)
			}
		})
	}
}

func TestHandleMovementInputDefaultStep(t *testing.T) {
	cfg := config.DefaultConfig()
	ih := NewInputHandler(cfg.GetMoveStep())
	player := Player{Position: mgl32.Vec2{10, 10}}

	frames := []struct {
		keys fakeKeys
		want mgl32.Vec2
	}{
		{held(KeyD), mgl32.Vec2{11, 10}},
		{held(KeyW), mgl32.Vec2{11, 11}},
		{held(KeyD), mgl32.Vec2{12, 11}},
		{held(KeyD), mgl32.Vec2{13, 11}},
		{held(KeyA, KeyD), mgl32.Vec2{14, 11}},
		{held(), mgl32.Vec2{14, 11}},
	}
	for i, f := range frames {
		ih.HandleInput(f.keys, &player)
		if player.Position != f.want {
			t.Errorf("frame %d: position = %v, want %v", i, player.Position, f.want)
		}
	}
}

func TestHandleInputRotationUntouched(t *testing.T) {
	ih := NewInputHandler(1)
	player := Player{Rotation: 0.5}
	for i := 0; i < 10; i++ {
		ih.HandleInput(held(KeyW, KeyA), &player)
	}
	if player.Rotation != 0.5 {
		t.Errorf("rotation = %v, want 0.5", player.Rotation)
	}
	if player.Position != (mgl32.Vec2{-10, 10}) {
		t.Errorf("position = %v, want (-10, 10)", player.Position)
	}
}

func TestHandleToggleInputEdges(t *testing.T) {
	ih := NewInputHandler(1)
	var player Player

	frames := []struct {
		keys        fakeKeys
		wantDepth   bool
		wantOverlay bool
	}{
		{held(), false, false},
		{held(KeyTab), true, false},
		{held(KeyTab), false, false},
		{held(KeyTab, KeyF3), false, true},
		{held(KeyF3), false, false},
		{held(), false, false},
		{held(KeyTab, KeyF3), true, true},
	}
	for i, f := range frames {
		got := ih.HandleInput(f.keys, &player)
		if got.CycleDepthMode != f.wantDepth || got.ToggleOverlay != f.wantOverlay {
			t.Errorf("frame %d: got %+v, want depth=%v overlay=%v", i, got, f.wantDepth, f.wantOverlay)
		}
	}
}

func TestKeyString(t *testing.T) {
	if KeyTab.String() != "Tab" || KeyW.String() != "W" {
		t.Errorf("unexpected key names %q %q", KeyTab, KeyW)
	}
	if Key(99).String() != "Unknown" {
		t.Errorf("Key(99) = %q, want Unknown", Key(99))
	}
}
