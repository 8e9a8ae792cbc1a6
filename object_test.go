package pyg

import (
	"errors"
	"testing"
)

// --- Construction and identity ---

func TestNewObjectDefaults(t *testing.T) {
	s := NewScene()
	o := s.NewObject("test")

	if o.ID() == 0 {
		t.Error("ID should be non-zero")
	}
	if o.Name() != "test" {
		t.Errorf("Name = %q, want %q", o.Name(), "test")
	}
	if !o.Enabled() {
		t.Error("Enabled should default to true")
	}
	if !o.IsLive() {
		t.Error("IsLive should be true")
	}
	if o.Parent() != nil {
		t.Error("Parent should be nil")
	}
	if o.Scene() != s {
		t.Error("Scene should be the creating scene")
	}
}

func TestNewObjectUniqueIDs(t *testing.T) {
	s := NewScene()
	seen := make(map[int64]bool)
	for i := 0; i < 1000; i++ {
		o := s.NewObject("o")
		if seen[o.ID()] {
			t.Fatalf("duplicate id %d", o.ID())
		}
		seen[o.ID()] = true
	}
}

func TestNewObjectWithID(t *testing.T) {
	s := NewScene()
	o, err := s.NewObjectWithID(42, "fixed")
	if err != nil {
		t.Fatalf("NewObjectWithID: %v", err)
	}
	if o.ID() != 42 {
		t.Errorf("ID = %d, want 42", o.ID())
	}

	_, err = s.NewObjectWithID(42, "clash")
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("err = %v, want ErrDuplicateID", err)
	}
}

func TestIDNotReusedWhileLive(t *testing.T) {
	s := NewScene()
	// Claim an id ahead of the generator, then force the generator to walk
	// past it.
	held, err := s.NewObjectWithID(3, "held")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		o := s.NewObject("o")
		if o.ID() == held.ID() {
			t.Fatalf("generator reused live id %d", held.ID())
		}
	}
}

func TestIDRegistryAfterDestroy(t *testing.T) {
	s := NewScene()
	a := s.NewObject("a")
	id := a.ID()
	a.Destroy()

	if _, err := s.ObjectByID(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("destroyed id should be deregistered, got err %v", err)
	}

	b := s.NewObject("b")
	c := s.NewObject("c")
	if b.ID() == c.ID() {
		t.Error("ids should stay distinct after a destroy")
	}
}

func TestSetNameAllowsEmpty(t *testing.T) {
	s := NewScene()
	o := s.NewObject("named")
	if err := o.SetName(""); err != nil {
		t.Fatalf("SetName: %v", err)
	}
	if o.Name() != "" {
		t.Errorf("Name = %q, want empty", o.Name())
	}
}

// --- SetParent / AddChild ---

func TestAddChildBasic(t *testing.T) {
	s := NewScene()
	parent := s.NewObject("parent")
	child := s.NewObject("child")

	if err := parent.AddChild(child); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if child.Parent() != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if !parent.ContainsChild(child) {
		t.Error("ContainsChild should report child")
	}
}

func TestAddChildRemovesFromRoots(t *testing.T) {
	s := NewScene()
	parent := s.NewObject("parent")
	child := s.NewObject("child")

	if err := parent.AddChild(child); err != nil {
		t.Fatal(err)
	}
	for _, r := range s.Roots() {
		if r == child {
			t.Error("child should no longer be a root")
		}
	}
}

func TestReparent(t *testing.T) {
	s := NewScene()
	p1 := s.NewObject("p1")
	p2 := s.NewObject("p2")
	child := s.NewObject("child")

	if err := p1.AddChild(child); err != nil {
		t.Fatal(err)
	}
	if err := p2.AddChild(child); err != nil {
		t.Fatal(err)
	}
	if p1.NumChildren() != 0 {
		t.Errorf("p1.NumChildren = %d, want 0 after reparent", p1.NumChildren())
	}
	if p2.NumChildren() != 1 {
		t.Errorf("p2.NumChildren = %d, want 1", p2.NumChildren())
	}
	if child.Parent() != p2 {
		t.Error("child.Parent should be p2")
	}
}

func TestReparentNoDuplicateChild(t *testing.T) {
	s := NewScene()
	parent := s.NewObject("parent")
	child := s.NewObject("child")

	if err := parent.AddChild(child); err != nil {
		t.Fatal(err)
	}
	if err := parent.AddChild(child); err != nil {
		t.Fatal(err)
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1 (no duplicate refs)", parent.NumChildren())
	}
}

func TestSetParentNilDetaches(t *testing.T) {
	s := NewScene()
	a := s.NewObject("a")
	b := s.NewObject("b")

	before := b.NumChildren()
	if err := a.SetParent(b); err != nil {
		t.Fatal(err)
	}
	if err := a.SetParent(nil); err != nil {
		t.Fatal(err)
	}
	if b.NumChildren() != before {
		t.Errorf("b.NumChildren = %d, want %d", b.NumChildren(), before)
	}
	if a.Parent() != nil {
		t.Error("a.Parent should be nil")
	}

	found := false
	for _, r := range s.Roots() {
		if r == a {
			found = true
		}
	}
	if !found {
		t.Error("a should be a root again")
	}
}

func TestSetParentSelfFails(t *testing.T) {
	s := NewScene()
	o := s.NewObject("o")
	if err := o.SetParent(o); !errors.Is(err, ErrInvalidHierarchy) {
		t.Errorf("err = %v, want ErrInvalidHierarchy", err)
	}
}

func TestSetParentCycleFails(t *testing.T) {
	s := NewScene()
	a := s.NewObject("a")
	b := s.NewObject("b")
	c := s.NewObject("c")
	if err := a.AddChild(b); err != nil {
		t.Fatal(err)
	}
	if err := b.AddChild(c); err != nil {
		t.Fatal(err)
	}

	// b is a descendant of a: parenting a under c must fail and leave the
	// tree unchanged.
	err := a.SetParent(c)
	if !errors.Is(err, ErrInvalidHierarchy) {
		t.Fatalf("err = %v, want ErrInvalidHierarchy", err)
	}
	if a.Parent() != nil {
		t.Error("a should still be a root")
	}
	if c.NumChildren() != 0 {
		t.Error("c should have no children")
	}
	if b.Parent() != a || c.Parent() != b {
		t.Error("tree should be unchanged")
	}
}

func TestSetParentAcrossScenesFails(t *testing.T) {
	s1 := NewScene()
	s2 := NewScene()
	a := s1.NewObject("a")
	b := s2.NewObject("b")
	if err := a.SetParent(b); !errors.Is(err, ErrInvalidHierarchy) {
		t.Errorf("err = %v, want ErrInvalidHierarchy", err)
	}
}

// --- Child removal and lookup ---

func TestRemoveChildScenario(t *testing.T) {
	s := NewScene()
	root := s.NewObject("root")
	child1 := s.NewObject("child1")
	child2 := s.NewObject("child2")
	if err := root.AddChild(child1); err != nil {
		t.Fatal(err)
	}
	if err := root.AddChild(child2); err != nil {
		t.Fatal(err)
	}

	got, err := root.ChildByName("child2")
	if err != nil {
		t.Fatalf("ChildByName: %v", err)
	}
	if got != child2 {
		t.Error("ChildByName should return child2")
	}

	removed, err := root.RemoveChild(child1)
	if err != nil {
		t.Fatalf("RemoveChild: %v", err)
	}
	if removed != child1 {
		t.Error("RemoveChild should return child1")
	}
	if len(root.Children()) != 1 || root.Children()[0] != child2 {
		t.Errorf("Children = %v, want [child2]", root.Children())
	}
	if child1.Parent() != nil {
		t.Error("removed child should be detached")
	}
}

func TestRemoveChildNotPresent(t *testing.T) {
	s := NewScene()
	a := s.NewObject("a")
	b := s.NewObject("b")
	if removed, err := a.RemoveChild(b); err != nil || removed != nil {
		t.Errorf("RemoveChild of non-child = (%v, %v), want (nil, nil)", removed, err)
	}
	if removed, err := a.RemoveChild(nil); err != nil || removed != nil {
		t.Errorf("RemoveChild(nil) = (%v, %v), want (nil, nil)", removed, err)
	}
}

func TestRemoveChildByName(t *testing.T) {
	s := NewScene()
	root := s.NewObject("root")
	a := s.NewObject("dup")
	b := s.NewObject("dup")
	if err := root.AddChild(a); err != nil {
		t.Fatal(err)
	}
	if err := root.AddChild(b); err != nil {
		t.Fatal(err)
	}

	// Names are not unique: only the first match is removed.
	removed, err := root.RemoveChildByName("dup")
	if err != nil {
		t.Fatalf("RemoveChildByName: %v", err)
	}
	if removed != a {
		t.Error("RemoveChildByName should remove the first match")
	}
	if root.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", root.NumChildren())
	}
	if removed, err := root.RemoveChildByName(""); err != nil || removed != nil {
		t.Errorf("empty name = (%v, %v), want (nil, nil)", removed, err)
	}
}

func TestRemoveChildByID(t *testing.T) {
	s := NewScene()
	root := s.NewObject("root")
	child := s.NewObject("child")
	if err := root.AddChild(child); err != nil {
		t.Fatal(err)
	}

	if removed, err := root.RemoveChildByID(child.ID() + 1000); err != nil || removed != nil {
		t.Errorf("unknown id = (%v, %v), want (nil, nil)", removed, err)
	}
	if removed, err := root.RemoveChildByID(child.ID()); err != nil || removed != child {
		t.Errorf("RemoveChildByID = (%v, %v), want the child", removed, err)
	}
	if root.NumChildren() != 0 {
		t.Errorf("NumChildren = %d, want 0", root.NumChildren())
	}
}

func TestChildByNameEmptyNeverMatches(t *testing.T) {
	s := NewScene()
	root := s.NewObject("root")
	unnamed := s.NewObject("")
	if err := root.AddChild(unnamed); err != nil {
		t.Fatal(err)
	}
	if _, err := root.ChildByName(""); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestChildByIDScopedToChildren(t *testing.T) {
	s := NewScene()
	root := s.NewObject("root")
	child := s.NewObject("child")
	grandchild := s.NewObject("grandchild")
	if err := root.AddChild(child); err != nil {
		t.Fatal(err)
	}
	if err := child.AddChild(grandchild); err != nil {
		t.Fatal(err)
	}

	got, err := root.ChildByID(child.ID())
	if err != nil {
		t.Fatalf("ChildByID: %v", err)
	}
	if got != child {
		t.Error("ChildByID should return the direct child")
	}
	// Unlike the registry lookup, grandchildren are out of scope.
	if _, err := root.ChildByID(grandchild.ID()); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound for non-direct child", err)
	}
}

func TestRemoveChildren(t *testing.T) {
	s := NewScene()
	root := s.NewObject("root")
	a := s.NewObject("a")
	b := s.NewObject("b")
	if err := root.AddChild(a); err != nil {
		t.Fatal(err)
	}
	if err := root.AddChild(b); err != nil {
		t.Fatal(err)
	}

	if err := root.RemoveChildren(); err != nil {
		t.Fatalf("RemoveChildren: %v", err)
	}
	if root.NumChildren() != 0 {
		t.Errorf("NumChildren = %d, want 0", root.NumChildren())
	}
	if !a.IsLive() || !b.IsLive() {
		t.Error("detached children should stay live")
	}
	if a.Parent() != nil || b.Parent() != nil {
		t.Error("detached children should have no parent")
	}
}

// --- Clone ---

func TestCloneShallow(t *testing.T) {
	s := NewScene()
	parent := s.NewObject("parent")
	orig := s.NewObject("orig")
	if err := parent.AddChild(orig); err != nil {
		t.Fatal(err)
	}
	grandchild := s.NewObject("grandchild")
	if err := orig.AddChild(grandchild); err != nil {
		t.Fatal(err)
	}
	if err := orig.AddComponent(NewTransform(0)); err != nil {
		t.Fatal(err)
	}

	dup, err := orig.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	if dup.ID() == orig.ID() {
		t.Error("clone should get a fresh id")
	}
	if dup.Name() != "orig" {
		t.Errorf("clone Name = %q, want %q", dup.Name(), "orig")
	}
	if dup.Parent() != parent {
		t.Error("clone should share the original's parent")
	}
	if dup.NumChildren() != 0 {
		t.Error("clone should not copy children")
	}
	if len(dup.Components()) != 0 {
		t.Error("clone should not copy components")
	}
}

// --- Destroy ---

func TestDestroyIdempotent(t *testing.T) {
	s := NewScene()
	o := s.NewObject("o")
	o.Destroy()

	if o.IsLive() {
		t.Error("IsLive should be false after Destroy")
	}
	before := s.NumLive()
	o.Destroy() // must be a no-op
	if s.NumLive() != before {
		t.Error("second Destroy should have no effect")
	}
}

func TestDestroyRecursive(t *testing.T) {
	s := NewScene()
	root := s.NewObject("root")
	child := s.NewObject("child")
	grandchild := s.NewObject("grandchild")
	if err := root.AddChild(child); err != nil {
		t.Fatal(err)
	}
	if err := child.AddChild(grandchild); err != nil {
		t.Fatal(err)
	}

	root.Destroy()
	if root.IsLive() || child.IsLive() || grandchild.IsLive() {
		t.Error("entire subtree should be destroyed")
	}
	if s.NumLive() != 0 {
		t.Errorf("NumLive = %d, want 0", s.NumLive())
	}
	if len(s.Roots()) != 0 {
		t.Errorf("Roots = %d, want 0", len(s.Roots()))
	}
}

func TestDestroyDetachesFromParent(t *testing.T) {
	s := NewScene()
	parent := s.NewObject("parent")
	child := s.NewObject("child")
	if err := parent.AddChild(child); err != nil {
		t.Fatal(err)
	}

	child.Destroy()
	if parent.NumChildren() != 0 {
		t.Errorf("parent.NumChildren = %d, want 0", parent.NumChildren())
	}
	if !parent.IsLive() {
		t.Error("parent should stay live")
	}
}

func TestDestroyStopsComponents(t *testing.T) {
	s := NewScene()
	o := s.NewObject("o")
	rec := &recordingComponent{BaseComponent: NewComponent(0, "rec")}
	if err := o.AddComponent(rec); err != nil {
		t.Fatal(err)
	}
	id := rec.ID()

	o.Destroy()
	if rec.stops != 1 {
		t.Errorf("stops = %d, want 1", rec.stops)
	}
	if _, err := s.ComponentByID(id); !errors.Is(err, ErrNotFound) {
		t.Error("component id should be deregistered")
	}
	if rec.Owner() != nil {
		t.Error("component owner should be cleared")
	}
}

func TestUseAfterDestroy(t *testing.T) {
	s := NewScene()
	o := s.NewObject("o")
	other := s.NewObject("other")
	o.Destroy()

	if err := o.SetParent(other); !errors.Is(err, ErrUseAfterDestroy) {
		t.Errorf("SetParent err = %v, want ErrUseAfterDestroy", err)
	}
	if err := other.SetParent(o); !errors.Is(err, ErrUseAfterDestroy) {
		t.Errorf("SetParent onto destroyed err = %v, want ErrUseAfterDestroy", err)
	}
	if err := o.AddComponent(NewTransform(0)); !errors.Is(err, ErrUseAfterDestroy) {
		t.Errorf("AddComponent err = %v, want ErrUseAfterDestroy", err)
	}
	if err := o.Update(0.016); !errors.Is(err, ErrUseAfterDestroy) {
		t.Errorf("Update err = %v, want ErrUseAfterDestroy", err)
	}
	if _, err := o.Clone(); !errors.Is(err, ErrUseAfterDestroy) {
		t.Errorf("Clone err = %v, want ErrUseAfterDestroy", err)
	}
	if err := o.SetName("zombie"); !errors.Is(err, ErrUseAfterDestroy) {
		t.Errorf("SetName err = %v, want ErrUseAfterDestroy", err)
	}
	if o.Name() != "o" {
		t.Errorf("Name = %q, destroyed object must not be renamed", o.Name())
	}
	if err := o.SetEnabled(false); !errors.Is(err, ErrUseAfterDestroy) {
		t.Errorf("SetEnabled err = %v, want ErrUseAfterDestroy", err)
	}
	if _, err := o.RemoveChild(other); !errors.Is(err, ErrUseAfterDestroy) {
		t.Errorf("RemoveChild err = %v, want ErrUseAfterDestroy", err)
	}
	if _, err := o.RemoveChildByName("other"); !errors.Is(err, ErrUseAfterDestroy) {
		t.Errorf("RemoveChildByName err = %v, want ErrUseAfterDestroy", err)
	}
	if _, err := o.RemoveChildByID(other.ID()); !errors.Is(err, ErrUseAfterDestroy) {
		t.Errorf("RemoveChildByID err = %v, want ErrUseAfterDestroy", err)
	}
	if err := o.RemoveChildren(); !errors.Is(err, ErrUseAfterDestroy) {
		t.Errorf("RemoveChildren err = %v, want ErrUseAfterDestroy", err)
	}
	if err := o.RemoveComponents(); !errors.Is(err, ErrUseAfterDestroy) {
		t.Errorf("RemoveComponents err = %v, want ErrUseAfterDestroy", err)
	}
	if _, err := o.ChildByName("other"); !errors.Is(err, ErrUseAfterDestroy) {
		t.Errorf("ChildByName err = %v, want ErrUseAfterDestroy", err)
	}
	if _, err := o.ChildByID(other.ID()); !errors.Is(err, ErrUseAfterDestroy) {
		t.Errorf("ChildByID err = %v, want ErrUseAfterDestroy", err)
	}
	if _, err := o.ComponentByName("Transform"); !errors.Is(err, ErrUseAfterDestroy) {
		t.Errorf("ComponentByName err = %v, want ErrUseAfterDestroy", err)
	}
	if _, err := o.ComponentByID(1); !errors.Is(err, ErrUseAfterDestroy) {
		t.Errorf("ComponentByID err = %v, want ErrUseAfterDestroy", err)
	}

	// Liveness checks and plain getters remain safe.
	if o.IsLive() {
		t.Error("IsLive should be false")
	}
	if o.ContainsChild(other) {
		t.Error("ContainsChild should be false on a destroyed object")
	}
}

func TestDestroyFromComponentStop(t *testing.T) {
	// A component that calls Destroy on its own object during teardown must
	// not re-enter destruction.
	s := NewScene()
	o := s.NewObject("o")
	c := &selfDestructComponent{BaseComponent: NewComponent(0, "boom")}
	if err := o.AddComponent(c); err != nil {
		t.Fatal(err)
	}
	c.object = o

	o.Destroy() // must not panic or double-teardown
	if o.IsLive() {
		t.Error("object should be destroyed")
	}
	if c.stops != 1 {
		t.Errorf("stops = %d, want 1", c.stops)
	}
}

type selfDestructComponent struct {
	*BaseComponent
	object *Object
	stops  int
}

func (c *selfDestructComponent) Stop() error {
	c.stops++
	c.object.Destroy()
	return nil
}
