package tilerun

import (
	"testing"
)

func newTestGraph(t *testing.T) *SceneGraph[string] {
	t.Helper()
	return NewSceneGraph("root")
}

// --- AddChild ---

func TestAddChildLevelAndParent(t *testing.T) {
	g := newTestGraph(t)
	root := g.Root()

	child := root.AddChild("child")
	grandchild := child.AddChild("grandchild")

	if child.Level != root.Level+1 {
		t.Errorf("child.Level = %d, want %d", child.Level, root.Level+1)
	}
	if child.ParentID != root.ID {
		t.Errorf("child.ParentID = %d, want %d", child.ParentID, root.ID)
	}
	if grandchild.Level != child.Level+1 {
		t.Errorf("grandchild.Level = %d, want %d", grandchild.Level, child.Level+1)
	}
	if grandchild.ParentID != child.ID {
		t.Errorf("grandchild.ParentID = %d, want %d", grandchild.ParentID, child.ID)
	}
}

func TestAddChildFindable(t *testing.T) {
	g := newTestGraph(t)
	parent := g.Root().AddChild("parent")

	for i := 0; i < 5; i++ {
		n := parent.AddChild("x")
		found := g.FindNodeByID(n.ID)
		if found == nil {
			t.Fatalf("FindNodeByID(%d) = nil", n.ID)
		}
		if found.Level != parent.Level+1 {
			t.Errorf("found.Level = %d, want %d", found.Level, parent.Level+1)
		}
		if found.ParentID != parent.ID {
			t.Errorf("found.ParentID = %d, want %d", found.ParentID, parent.ID)
		}
	}
}

func TestAddChildOrder(t *testing.T) {
	g := newTestGraph(t)
	root := g.Root()
	a := root.AddChild("a")
	b := root.AddChild("b")
	c := root.AddChild("c")

	if root.NumChildren() != 3 {
		t.Fatalf("NumChildren = %d, want 3", root.NumChildren())
	}
	if root.ChildAt(0) != a || root.ChildAt(1) != b || root.ChildAt(2) != c {
		t.Error("children order should be [a, b, c]")
	}
}

// --- Unique IDs ---

func TestNodeIDsUniqueAndMonotonic(t *testing.T) {
	g := newTestGraph(t)
	prev := g.Root().ID
	for i := 0; i < 10; i++ {
		n := g.Root().AddChild("n")
		if n.ID <= prev {
			t.Fatalf("id %d not greater than previous %d", n.ID, prev)
		}
		prev = n.ID
	}
}

// --- RemoveChildByID ---

func TestRemoveChildByID(t *testing.T) {
	g := newTestGraph(t)
	root := g.Root()
	a := root.AddChild("a")
	b := root.AddChild("b")
	c := root.AddChild("c")

	removed := root.RemoveChildByID(b.ID)
	if removed != b {
		t.Fatal("removed node should be b")
	}
	if root.NumChildren() != 2 {
		t.Errorf("NumChildren = %d, want 2", root.NumChildren())
	}
	if root.ChildAt(0) != a || root.ChildAt(1) != c {
		t.Error("remaining children should keep order [a, c]")
	}
	if removed.Parent() != nil || removed.ParentID != 0 {
		t.Error("removed node should be detached")
	}
}

func TestRemoveChildByIDAbsent(t *testing.T) {
	g := newTestGraph(t)
	root := g.Root()
	root.AddChild("a")

	if got := root.RemoveChildByID(9999); got != nil {
		t.Errorf("RemoveChildByID(absent) = %v, want nil", got)
	}
	if root.NumChildren() != 1 {
		t.Error("no-op removal should not change children")
	}
}

func TestRemoveChildByIDDirectChildrenOnly(t *testing.T) {
	g := newTestGraph(t)
	root := g.Root()
	child := root.AddChild("child")
	grandchild := child.AddChild("grandchild")

	// The grandchild's id matches no direct child of root, even though it is
	// a reachable descendant.
	if got := root.RemoveChildByID(grandchild.ID); got != nil {
		t.Errorf("RemoveChildByID(grandchild) on root = %v, want nil", got)
	}
	if child.NumChildren() != 1 {
		t.Error("grandchild should still be attached to child")
	}

	// Removal works on the actual parent.
	if got := child.RemoveChildByID(grandchild.ID); got != grandchild {
		t.Error("child.RemoveChildByID(grandchild) should remove it")
	}
}

// --- FindNodeByID ---

func TestFindNodeByIDDeep(t *testing.T) {
	g := newTestGraph(t)
	n := g.Root()
	for i := 0; i < 5; i++ {
		n = n.AddChild("deep")
	}
	if found := g.FindNodeByID(n.ID); found != n {
		t.Error("deep node should be findable from the root")
	}
}

func TestFindNodeByIDMissing(t *testing.T) {
	g := newTestGraph(t)
	if got := g.FindNodeByID(123456); got != nil {
		t.Errorf("FindNodeByID(missing) = %v, want nil", got)
	}
}

// --- Traverse ---

func TestTraverseBreadthFirst(t *testing.T) {
	g := newTestGraph(t)
	root := g.Root()
	a := root.AddChild("a")
	b := root.AddChild("b")
	a1 := a.AddChild("a1")
	b1 := b.AddChild("b1")

	var order []uint32
	g.Traverse(func(n *TreeNode[string]) {
		order = append(order, n.ID)
	})

	want := []uint32{root.ID, a.ID, b.ID, a1.ID, b1.ID}
	if len(order) != len(want) {
		t.Fatalf("visited %d nodes, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("visit[%d] = %d, want %d", i, order[i], want[i])
		}
	}
}
