package tilerun

import "testing"

func TestIsCollidingWithinRadiusSum(t *testing.T) {
	a := &CircleCollider{OwnerID: 1, X: 0, Y: 0, Radius: 3}
	b := &CircleCollider{OwnerID: 2, X: 6, Y: 0, Radius: 4}

	// Distance 6 < 3+4.
	if !IsColliding(a, b) {
		t.Error("circles at distance 6 with radii 3+4 should collide")
	}
	if !a.Colliding || !b.Colliding {
		t.Error("result should be cached on both colliders")
	}
}

func TestIsCollidingAtOrBeyondRadiusSum(t *testing.T) {
	a := &CircleCollider{OwnerID: 1, X: 0, Y: 0, Radius: 3}
	b := &CircleCollider{OwnerID: 2, X: 8, Y: 0, Radius: 4}

	// Distance 8 >= 3+4.
	if IsColliding(a, b) {
		t.Error("circles at distance 8 with radii 3+4 should not collide")
	}

	// Exactly touching is not colliding (strict less-than).
	b.X = 7
	if IsColliding(a, b) {
		t.Error("circles at exactly radius-sum distance should not collide")
	}
}

func TestIsCollidingFriendlyFireExclusion(t *testing.T) {
	a := &CircleCollider{OwnerID: 7, X: 0, Y: 0, Radius: 10}
	b := &CircleCollider{OwnerID: 7, X: 0, Y: 0, Radius: 10}

	// Same owner never collides, even at distance 0.
	if IsColliding(a, b) {
		t.Error("equal owner ids should never collide")
	}
	if a.Colliding || b.Colliding {
		t.Error("cached flags should be false for excluded pairs")
	}
}

func TestIsCollidingNil(t *testing.T) {
	c := &CircleCollider{OwnerID: 1, Radius: 5}
	if IsColliding(nil, c) || IsColliding(c, nil) || IsColliding(nil, nil) {
		t.Error("nil colliders never collide")
	}
}

func TestColliderFollowsEntity(t *testing.T) {
	e := NewEntity(KindGeneric, "e")
	e.X, e.Y = 100, 200
	e.Width, e.Height = 32, 32
	c := NewCircleCollider(e.ID, 16)

	c.Update(e)

	if c.X != 116 || c.Y != 216 {
		t.Errorf("collider center = (%v, %v), want (116, 216)", c.X, c.Y)
	}
}
