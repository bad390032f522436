package tilerun

import "testing"

func newTestPlayer() *Entity {
	e := NewEntity(KindPlayer, "player")
	e.Width, e.Height = playerSize, playerSize
	return e
}

// --- World clamp ---

func TestPlayerClampedToWorld(t *testing.T) {
	e := newTestPlayer()
	e.X, e.Y = 10000, -50
	playerUpdate(e, nil, 1)

	if want := float64(WorldBound - playerSize); e.X != want {
		t.Errorf("X = %v, want clamped to %v", e.X, want)
	}
	if e.Y != 0 {
		t.Errorf("Y = %v, want clamped to 0", e.Y)
	}
}

// --- Tile-collision movement ---

func TestPlayerBlockedByWall(t *testing.T) {
	g := NewBorderedTileGrid(10, 8, 32)
	e := newTestPlayer()
	e.X, e.Y = 32, 96 // abutting the left wall
	e.VelX = -3

	playerUpdate(e, g, 1)
	if e.X != 32 {
		t.Errorf("X = %v, blocked move should not commit", e.X)
	}

	e.VelX = 3
	playerUpdate(e, g, 1)
	if e.X != 35 {
		t.Errorf("X = %v, clear move should commit", e.X)
	}
}

func TestPlayerLandingZeroesFall(t *testing.T) {
	g := NewBorderedTileGrid(10, 8, 32)
	e := newTestPlayer()
	e.X, e.Y = 96, 192 // standing on the bottom wall row
	e.VelY = 5

	playerUpdate(e, g, 1)
	if e.Y != 192 {
		t.Errorf("Y = %v, downward block should not move", e.Y)
	}
	if e.VelY != 0 {
		t.Errorf("VelY = %v, landing should zero the fall", e.VelY)
	}
}

func TestPlayerMovesFreelyWithoutGrid(t *testing.T) {
	e := newTestPlayer()
	e.X, e.Y = 100, 100
	e.VelX, e.VelY = 3, -2
	playerUpdate(e, nil, 1)
	if e.X != 103 || e.Y != 98 {
		t.Errorf("position = (%v, %v), want (103, 98)", e.X, e.Y)
	}
}

// --- Firing ---

func TestPlayerFireAtMostOne(t *testing.T) {
	e := newTestPlayer()
	e.X, e.Y = 100, 300

	e.fireQueued = true
	playerUpdate(e, nil, 1)
	first := e.laser()
	if first == nil {
		t.Fatal("fire request should attach a laser")
	}

	e.fireQueued = true
	playerUpdate(e, nil, 1)
	if e.laser() != first {
		t.Error("a second fire request while one is in flight should be ignored")
	}
}

func TestPlayerFireSpawnCenteredOnState(t *testing.T) {
	e := newTestPlayer()
	e.X, e.Y = 100, 300
	e.State = StateStopRight

	playerFire(e, nil, 1)
	l := e.laser()
	if l == nil {
		t.Fatal("no laser attached")
	}
	if l.DirX != 1 || l.DirY != 0 {
		t.Errorf("direction = (%v, %v), want (1, 0) for a right-facing state", l.DirX, l.DirY)
	}
	if l.X != 100+playerSize/2.0-laserWidth/2.0 {
		t.Errorf("spawn X = %v, want centered on the player", l.X)
	}
	if l.OwnerID != e.ID {
		t.Errorf("laser owner = %d, want %d", l.OwnerID, e.ID)
	}
}

func TestFireDirectionFollowsState(t *testing.T) {
	cases := []struct {
		state  AnimationState
		dx, dy float64
	}{
		{StateLeft, -1, 0},
		{StateStopLeft, -1, 0},
		{StateRight, 1, 0},
		{StateStopRight, 1, 0},
		{StateDown, 0, 1},
		{StateStopDown, 0, 1},
		{StateUp, 0, -1},
		{StateStopUp, 0, -1},
		{StateStop, 0, -1},
	}
	for _, tc := range cases {
		if dx, dy := fireDirection(tc.state); dx != tc.dx || dy != tc.dy {
			t.Errorf("fireDirection(%v) = (%v, %v), want (%v, %v)",
				tc.state, dx, dy, tc.dx, tc.dy)
		}
	}
}

// --- Laser reaping ---

func TestLaserReapedOneTickAfterRetiring(t *testing.T) {
	e := newTestPlayer()
	e.X, e.Y = 100, 0 // near the top edge so the laser exits quickly
	e.State = StateStop

	e.fireQueued = true
	playerUpdate(e, nil, 1) // fires; laser starts at y = 10

	var retiredAt int
	for tick := 1; tick <= 20; tick++ {
		playerUpdate(e, nil, 1)
		l := e.laser()
		if retiredAt == 0 {
			if l == nil {
				t.Fatal("laser detached before it was observed retired")
			}
			if l.ShouldDelete() {
				retiredAt = tick
			}
			continue
		}
		// The tick after retirement detaches and disposes.
		if l != nil {
			t.Errorf("laser still attached on tick %d, retired on %d", tick, retiredAt)
		}
		return
	}
	t.Fatal("laser never retired")
}
