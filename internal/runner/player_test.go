package runner

import (
	"math"
	"testing"
)

func TestNewPlayerOnGround(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg.Player, cfg.World.GroundY())

	if p.Y != 214 {
		t.Errorf("Y = %v, expected 214", p.Y)
	}
	if !p.Grounded || p.VY != 0 {
		t.Errorf("new player should be grounded at rest, got grounded=%v vy=%v", p.Grounded, p.VY)
	}
}

func TestPlayerJump(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg.Player, cfg.World.GroundY())

	if !p.Jump() {
		t.Fatal("grounded player should jump")
	}
	if p.VY != -760 {
		t.Errorf("VY = %v, expected -760", p.VY)
	}
	if p.Grounded {
		t.Error("player should be airborne after jumping")
	}
	if p.Jump() {
		t.Error("airborne player should not jump again")
	}
	if p.VY != -760 {
		t.Errorf("airborne jump must not change VY, got %v", p.VY)
	}
}

func TestPlayerFlightLandsOnGround(t *testing.T) {
	cfg := testConfig()
	ground := cfg.World.GroundY()
	p := NewPlayer(cfg.Player, ground)
	p.Jump()

	const dt = 0.016
	minY := p.Y
	landed := false
	for i := 0; i < 200; i++ {
		p.ApplyGravity(cfg.World.Gravity, dt)
		p.Integrate(dt)
		p.ClampToGround(ground)

		if p.Y+p.H > ground {
			t.Fatalf("step %d: player below ground, y+h=%v", i, p.Y+p.H)
		}
		minY = min(minY, p.Y)
		if p.Grounded {
			landed = true
			break
		}
	}

	if !landed {
		t.Fatal("player never landed")
	}
	if p.Y+p.H != ground || p.VY != 0 {
		t.Errorf("landed player should rest on ground, y=%v vy=%v", p.Y, p.VY)
	}
	// Peak height is v²/2g ≈ 141px; discrete steps land close to it.
	if apex := ground - p.H - minY; apex < 120 || apex > 150 {
		t.Errorf("apex = %v, expected about 141", apex)
	}
}

func TestPlayerGravityAlwaysApplies(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg.Player, cfg.World.GroundY())

	p.ApplyGravity(2050, 0.01)
	if math.Abs(p.VY-20.5) > 1e-9 {
		t.Errorf("VY = %v, expected 20.5", p.VY)
	}

	p.Integrate(0.01)
	p.ClampToGround(cfg.World.GroundY())
	if !p.Grounded || p.VY != 0 || p.Y != 214 {
		t.Errorf("clamp should restore rest state, got y=%v vy=%v grounded=%v", p.Y, p.VY, p.Grounded)
	}
}

func TestPlayerZeroStepKeepsJump(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg.Player, cfg.World.GroundY())
	p.Jump()

	p.ApplyGravity(cfg.World.Gravity, 0)
	p.Integrate(0)
	p.ClampToGround(cfg.World.GroundY())

	if p.Grounded || p.VY != -760 {
		t.Errorf("a zero step must not cancel a jump, vy=%v grounded=%v", p.VY, p.Grounded)
	}
}
