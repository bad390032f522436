package tilerun

import "testing"

func TestLaserRetiresAfterLeavingBounds(t *testing.T) {
	bounds := Rect{Width: 100, Height: 100}
	l := NewLaser(1, 0, 0, bounds, false)
	e := NewEntity(KindGeneric, "owner")

	// Upward at velocity 5 from y=0 with height 12: fully above the top span
	// after the third step (y = -15, bottom edge at -3).
	for i := 1; i <= 2; i++ {
		l.Update(e)
		if l.ShouldDelete() {
			t.Fatalf("retired after %d updates, want 3", i)
		}
	}
	l.Update(e)
	if !l.ShouldDelete() {
		t.Error("laser fully outside the vertical span should retire")
	}
}

func TestLaserDeleteSticky(t *testing.T) {
	l := NewLaser(1, 0, 0, Rect{Width: 100, Height: 100}, false)
	e := NewEntity(KindGeneric, "owner")
	for i := 0; i < 3; i++ {
		l.Update(e)
	}
	if !l.ShouldDelete() {
		t.Fatal("precondition: laser should be retired")
	}

	y := l.Y
	l.Update(e)
	if l.Y != y {
		t.Error("retired laser should not keep moving")
	}
	if !l.ShouldDelete() {
		t.Error("pending-delete never reverts")
	}
}

func TestLaserSetDirection(t *testing.T) {
	l := NewLaser(1, 0, 0, Rect{Width: 100, Height: 100}, false)
	if l.DirX != 0 || l.DirY != -1 {
		t.Fatalf("default direction = (%v, %v), want (0, -1)", l.DirX, l.DirY)
	}

	l.SetDirection("down")
	if l.DirX != 0 || l.DirY != 1 {
		t.Errorf("down: direction = (%v, %v), want (0, 1)", l.DirX, l.DirY)
	}

	l.SetDirection("sideways") // unknown: no-op
	if l.DirX != 0 || l.DirY != 1 {
		t.Error("unknown direction string should keep the current direction")
	}
}

func TestLaserHorizontalRetirement(t *testing.T) {
	bounds := Rect{Width: 50, Height: 1000}

	// Player variant: leaving the horizontal span retires it.
	p := NewLaser(1, 0, 100, bounds, true)
	p.SetDirection("left")
	for i := 0; i < 3; i++ {
		p.Update(nil)
	}
	if !p.ShouldDelete() {
		t.Error("horizontal-checking laser should retire past the left span")
	}

	// Enemy variant: only the vertical span counts.
	q := NewLaser(1, 0, 100, bounds, false)
	q.SetDirection("left")
	for i := 0; i < 10; i++ {
		q.Update(nil)
	}
	if q.ShouldDelete() {
		t.Error("vertical-only laser should survive a horizontal exit")
	}
}

func TestLaserMarkForDelete(t *testing.T) {
	l := NewLaser(1, 50, 50, Rect{Width: 100, Height: 100}, false)
	l.MarkForDelete()
	if !l.ShouldDelete() {
		t.Error("MarkForDelete should force the pending-delete state")
	}
}

func TestLaserColliderTracksBody(t *testing.T) {
	l := NewLaser(7, 20, 40, Rect{Width: 100, Height: 100}, false)
	c := l.Collider()
	if c.OwnerID != 7 {
		t.Errorf("collider owner = %d, want 7", c.OwnerID)
	}
	if c.X != 20+laserWidth/2.0 || c.Y != 40+laserHeight/2.0 {
		t.Errorf("collider center = (%v, %v), want body center", c.X, c.Y)
	}

	l.SetDirection("down")
	l.Update(nil)
	if c.Y != 45+laserHeight/2.0 {
		t.Errorf("collider should follow the body, center y = %v", c.Y)
	}
}
