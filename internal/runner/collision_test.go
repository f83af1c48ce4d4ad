package runner

import "testing"

func TestHitboxInset(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg.Player, cfg.World.GroundY())
	hb := Hitbox(p, cfg.Hitbox)

	if hb.X != 78 || hb.Y != 222 || hb.W != 30 || hb.H != 38 {
		t.Errorf("Hitbox = %+v, expected {78 222 30 38}", hb)
	}
}

func TestCheckCollisionsFairnessMargin(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg.Player, cfg.World.GroundY())
	// Sprite box: x 70..114, y 214..262. Hitbox: x 78..108, y 222..260.

	tests := []struct {
		name     string
		obstacle Obstacle
		expected bool
	}{
		{
			name:     "inside left inset only",
			obstacle: Obstacle{X: 62, Y: 214, W: 16, H: 48},
			expected: false,
		},
		{
			name:     "inside top inset only",
			obstacle: Obstacle{X: 70, Y: 200, W: 44, H: 22, Kind: KindFlying},
			expected: false,
		},
		{
			name:     "inside right shrink only",
			obstacle: Obstacle{X: 108, Y: 214, W: 20, H: 48},
			expected: false,
		},
		{
			name:     "inside bottom shrink only",
			obstacle: Obstacle{X: 70, Y: 260, W: 44, H: 2},
			expected: false,
		},
		{
			name:     "one pixel into the hitbox from the left",
			obstacle: Obstacle{X: 62, Y: 214, W: 17, H: 48},
			expected: true,
		},
		{
			name:     "one pixel into the hitbox from above",
			obstacle: Obstacle{X: 70, Y: 200, W: 44, H: 23, Kind: KindFlying},
			expected: true,
		},
		{
			name:     "covering the whole player",
			obstacle: Obstacle{X: 60, Y: 200, W: 80, H: 62},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !p.Box().Intersects(tc.obstacle.Box()) {
				t.Fatal("test obstacle should overlap the sprite box")
			}
			_, hit := CheckCollisions(p, cfg.Hitbox, []Obstacle{tc.obstacle})
			if hit != tc.expected {
				t.Errorf("hit = %v, expected %v", hit, tc.expected)
			}
		})
	}
}

func TestCheckCollisionsStopsAtFirstHit(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg.Player, cfg.World.GroundY())

	obstacles := []Obstacle{
		{X: 400, Y: 220, W: 20, H: 42},
		{X: 80, Y: 230, W: 20, H: 32, Kind: KindGround},
		{X: 90, Y: 200, W: 30, H: 40, Kind: KindFlying},
	}

	ev, hit := CheckCollisions(p, cfg.Hitbox, obstacles)
	if !hit {
		t.Fatal("expected a collision")
	}
	if ev.Index != 1 || ev.Obstacle.Kind != KindGround {
		t.Errorf("first hit = index %d kind %v, expected index 1 ground", ev.Index, ev.Obstacle.Kind)
	}
}

func TestCheckCollisionsEmpty(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg.Player, cfg.World.GroundY())

	if _, hit := CheckCollisions(p, cfg.Hitbox, nil); hit {
		t.Error("no obstacles should mean no collision")
	}
}
