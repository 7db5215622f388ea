package parabox

import "testing"

func TestNewContainerDefaults(t *testing.T) {
	n := NewContainer("test")
	assertNodeDefaults(t, n, "test", NodeTypeContainer)
	if n.ScaleX != 1 || n.ScaleY != 1 {
		t.Errorf("Scale = (%v, %v), want (1, 1)", n.ScaleX, n.ScaleY)
	}
	if n.Color != ColorWhite {
		t.Errorf("Color = %v, want white", n.Color)
	}
}

func TestNewSpriteDefaults(t *testing.T) {
	c := Color{R: 1, A: 1}
	n := NewSprite("spr", 32, 16, c)
	assertNodeDefaults(t, n, "spr", NodeTypeSprite)
	if n.ScaleX != 32 || n.ScaleY != 16 {
		t.Errorf("Scale = (%v, %v), want (32, 16)", n.ScaleX, n.ScaleY)
	}
	if n.Color != c {
		t.Errorf("Color = %v, want %v", n.Color, c)
	}
}

func assertNodeDefaults(t *testing.T, n *Node, name string, typ NodeType) {
	t.Helper()
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Type != typ {
		t.Errorf("Type = %d, want %d", n.Type, typ)
	}
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", n.Alpha)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
	if n.Box != NoBox {
		t.Errorf("Box = %d, want NoBox", n.Box)
	}
	if !n.transformDirty {
		t.Error("transformDirty should be true")
	}
}

func TestUniqueIDs(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewSprite("c", 1, 1, ColorWhite)
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

func TestAddChildBasic(t *testing.T) {
	box := NewContainer("box")
	face := NewContainer("face")
	box.AddChild(face)

	if face.Parent != box {
		t.Error("face.Parent should be box")
	}
	if box.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", box.NumChildren())
	}
	if box.ChildAt(0) != face {
		t.Error("ChildAt(0) should be face")
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	face := NewContainer("face")

	p1.AddChild(face)
	p2.AddChild(face)
	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 || face.Parent != p2 {
		t.Error("face should belong to p2")
	}
}

func TestAddChildPanics(t *testing.T) {
	box := NewContainer("box")
	face := NewContainer("face")
	tile := NewContainer("tile")
	box.AddChild(face)
	face.AddChild(tile)

	tests := []struct {
		name string
		fn   func()
	}{
		{"cycle", func() { tile.AddChild(box) }},
		{"self", func() { box.AddChild(box) }},
		{"nil", func() { box.AddChild(nil) }},
		{"wrong box", func() { box.RemoveChild(tile) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("expected panic, got none")
				}
			}()
			tt.fn()
		})
	}
}

func TestRemoveFromParent(t *testing.T) {
	box := NewContainer("box")
	kids := []*Node{NewContainer("a"), NewContainer("b"), NewContainer("c")}
	for _, k := range kids {
		box.AddChild(k)
	}
	kids[1].RemoveFromParent()
	if box.NumChildren() != 2 || box.ChildAt(1) != kids[2] {
		t.Fatalf("after RemoveFromParent: %v", box.Children())
	}
	if kids[1].Parent != nil {
		t.Error("removed node still has a parent")
	}
	kids[1].RemoveFromParent() // no-op
	if box.NumChildren() != 2 {
		t.Errorf("NumChildren = %d, want 2", box.NumChildren())
	}
}

func TestFindBox(t *testing.T) {
	root := NewContainer("root")
	outer := NewContainer("outer")
	outer.Box = 1
	inner := NewContainer("inner")
	inner.Box = 2
	root.AddChild(outer)
	outer.AddChild(inner)

	if root.FindBox(2) != inner {
		t.Error("FindBox(2) should find inner")
	}
	if root.FindBox(3) != nil {
		t.Error("FindBox(3) should be nil")
	}
	if root.FindBox(NoBox) != nil {
		t.Error("FindBox(NoBox) should be nil")
	}
}

func TestDispose(t *testing.T) {
	box := NewContainer("box")
	face := NewContainer("face")
	tile := NewContainer("tile")
	box.AddChild(face)
	face.AddChild(tile)
	face.OnUpdate = func(float64) {}

	face.Dispose()
	face.Dispose() // idempotent

	if box.NumChildren() != 0 {
		t.Error("disposed face should be removed from box")
	}
	if !face.IsDisposed() || !tile.IsDisposed() {
		t.Error("subtree should be disposed")
	}
	if face.ID != 0 || face.OnUpdate != nil {
		t.Error("disposed node should be cleared")
	}
}

func TestDirtyPropagationOnAddChild(t *testing.T) {
	box := NewContainer("box")
	face := NewContainer("face")
	tile := NewContainer("tile")
	face.AddChild(tile)
	updateWorldTransform(face, identityTransform, 1, false)

	box.AddChild(face)
	if !face.transformDirty || !tile.transformDirty {
		t.Error("AddChild should mark the subtree dirty")
	}
}

func TestUpdateNodesSkipsHidden(t *testing.T) {
	root := NewContainer("root")
	shown := NewContainer("shown")
	hidden := NewContainer("hidden")
	hidden.Visible = false
	root.AddChild(shown)
	root.AddChild(hidden)

	var calls []string
	shown.OnUpdate = func(dt float64) { calls = append(calls, "shown") }
	hidden.OnUpdate = func(dt float64) { calls = append(calls, "hidden") }

	updateNodes(root, 0.016)
	if len(calls) != 1 || calls[0] != "shown" {
		t.Errorf("calls = %v, want [shown]", calls)
	}
}
