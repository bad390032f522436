package tilerun

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic — tilerun is single-threaded).
// Ids are never reused within a process lifetime.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- TreeNode ---

// TreeNode is one node of a generic ordered tree. The scene graph
// instantiates it with *Entity, but nothing in the tree depends on entities.
type TreeNode[T any] struct {
	// ID is globally unique and monotonically assigned.
	ID uint32
	// ParentID is the id of the parent node, or 0 for a root.
	ParentID uint32
	// Level is the depth of the node; always parent.Level + 1.
	Level int
	// Data is the payload carried by this node.
	Data T

	parent   *TreeNode[T]
	children []*TreeNode[T]
}

// newTreeNode creates a detached node with a fresh id.
func newTreeNode[T any](data T) *TreeNode[T] {
	return &TreeNode[T]{ID: nextNodeID(), Data: data}
}

// AddChild appends a new node holding data as the last child and returns it.
// The child's level is this node's level plus one.
func (n *TreeNode[T]) AddChild(data T) *TreeNode[T] {
	child := newTreeNode(data)
	child.parent = n
	child.ParentID = n.ID
	child.Level = n.Level + 1
	n.children = append(n.children, child)
	return child
}

// RemoveChildByID searches the direct children of this node (not the full
// subtree) and excises the matching one, preserving the order of the
// remaining siblings. Returns nil if no direct child has the given id.
func (n *TreeNode[T]) RemoveChildByID(id uint32) *TreeNode[T] {
	for i, c := range n.children {
		if c.ID == id {
			// Uses copy+nil to avoid retaining a dangling pointer in the
			// backing array.
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			c.parent = nil
			c.ParentID = 0
			return c
		}
	}
	return nil
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (n *TreeNode[T]) Children() []*TreeNode[T] {
	return n.children
}

// NumChildren returns the number of direct children.
func (n *TreeNode[T]) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *TreeNode[T]) ChildAt(index int) *TreeNode[T] {
	return n.children[index]
}

// Parent returns the parent node, or nil for a detached node or root.
func (n *TreeNode[T]) Parent() *TreeNode[T] {
	return n.parent
}

// --- SceneGraph ---

// SceneGraph owns a single root TreeNode; all reachable nodes are descendants
// of that root. Structural operations are structural only — they never alter
// the payload data.
type SceneGraph[T any] struct {
	root *TreeNode[T]
}

// NewSceneGraph creates a scene graph whose root holds rootData.
func NewSceneGraph[T any](rootData T) *SceneGraph[T] {
	return &SceneGraph[T]{root: newTreeNode(rootData)}
}

// Root returns the root node.
func (g *SceneGraph[T]) Root() *TreeNode[T] {
	return g.root
}

// FindNodeByID searches the tree breadth-first from the root and returns the
// first node with the given id, or nil. Ids are unique, so first match is
// the only match.
func (g *SceneGraph[T]) FindNodeByID(id uint32) *TreeNode[T] {
	queue := []*TreeNode[T]{g.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.ID == id {
			return n
		}
		queue = append(queue, n.children...)
	}
	return nil
}

// Traverse visits every node breadth-first, root first. Intended for
// diagnostics; visit must not mutate the tree structure.
func (g *SceneGraph[T]) Traverse(visit func(*TreeNode[T])) {
	queue := []*TreeNode[T]{g.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		visit(n)
		queue = append(queue, n.children...)
	}
}
