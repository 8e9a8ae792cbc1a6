package pyg

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// objectState tracks destruction progress. Transitions are one-way:
// Live -> Destroying on Destroy entry, Destroying -> Destroyed on
// completion. A second Destroy anywhere along the way is a no-op.
type objectState uint8

const (
	objectLive objectState = iota
	objectDestroying
	objectDestroyed
)

// Object is a scene graph node: it owns an ordered list of child objects
// and an ordered list of components, and dispatches per-tick updates to the
// components.
//
// Objects are created through a Scene (which owns the id registry) and
// destroyed with Destroy. The parent reference is non-owning; ownership
// flows strictly downward, and the cycle check in SetParent keeps the graph
// a forest.
//
// All operations are single-threaded and non-reentrant: do not destroy an
// object from a traversal that has not yet advanced past it. Hosts driving
// ticks and mutations from different goroutines must serialize them; the
// core takes no locks.
//
// Every error-returning method fails with ErrUseAfterDestroy on a destroyed
// receiver. Methods without an error return (ID, Name, Enabled, IsLive,
// Parent, Scene, Children, Components, NumChildren, ContainsChild) are
// read-only and safe to call in any state.
type Object struct {
	id      int64
	name    string
	enabled bool

	parent     *Object
	children   []*Object
	components []Component

	scene *Scene
	state objectState
}

func (o *Object) alive() error {
	if o.state == objectDestroyed {
		return errors.Wrapf(ErrUseAfterDestroy, "object %q (id %d)", o.name, o.id)
	}
	return nil
}

// ID returns the object's id, unique among live objects in its scene.
func (o *Object) ID() int64 { return o.id }

// Name returns the object's display name. Names are not unique.
func (o *Object) Name() string { return o.name }

// SetName sets the object's display name. Empty names are allowed but never
// match name lookups.
func (o *Object) SetName(name string) error {
	if err := o.alive(); err != nil {
		return err
	}
	o.name = name
	return nil
}

// Enabled reports whether the object participates in scene update dispatch.
func (o *Object) Enabled() bool { return o.enabled }

// SetEnabled sets the enable flag. A disabled object and its subtree are
// skipped by Scene.Update; the flag is advisory for hosts driving objects
// directly.
func (o *Object) SetEnabled(enabled bool) error {
	if err := o.alive(); err != nil {
		return err
	}
	o.enabled = enabled
	return nil
}

// IsLive reports whether the object has not been destroyed. Safe to call in
// any state.
func (o *Object) IsLive() bool { return o.state == objectLive }

// Parent returns the object's parent, or nil for a root.
func (o *Object) Parent() *Object { return o.parent }

// Scene returns the scene this object belongs to.
func (o *Object) Scene() *Scene { return o.scene }

// --- Tree manipulation ---

// SetParent moves the object under newParent, detaching it from its current
// parent first. Passing nil detaches the object to become a root.
//
// Fails with ErrInvalidHierarchy if newParent is the object itself or one of
// its descendants; the tree is left unchanged on failure.
func (o *Object) SetParent(newParent *Object) error {
	if err := o.alive(); err != nil {
		return err
	}
	if newParent == nil {
		if o.parent != nil {
			o.parent.removeChildByPtr(o)
			o.parent = nil
			o.scene.addRoot(o)
		}
		return nil
	}
	if err := newParent.alive(); err != nil {
		return err
	}
	if newParent == o {
		return errors.Wrapf(ErrInvalidHierarchy, "object %q cannot be its own parent", o.name)
	}
	if newParent.scene != o.scene {
		return errors.Wrapf(ErrInvalidHierarchy, "objects belong to different scenes")
	}
	if isAncestor(o, newParent) {
		return errors.Wrapf(ErrInvalidHierarchy,
			"object %q is an ancestor of %q", o.name, newParent.name)
	}
	if o.parent == newParent {
		return nil
	}
	if o.parent != nil {
		o.parent.removeChildByPtr(o)
	} else {
		o.scene.removeRoot(o)
	}
	o.parent = newParent
	newParent.children = append(newParent.children, o)
	return nil
}

// AddChild appends child to this object's children, reparenting it if
// necessary. Equivalent to child.SetParent(o).
func (o *Object) AddChild(child *Object) error {
	if child == nil {
		return errors.Wrap(ErrNotFound, "nil child")
	}
	return child.SetParent(o)
}

// RemoveChild detaches child and returns it, or returns nil if child is not
// a direct child of this object. The removed object stays live and becomes
// a root.
func (o *Object) RemoveChild(child *Object) (*Object, error) {
	if err := o.alive(); err != nil {
		return nil, err
	}
	if child == nil || child.parent != o {
		return nil, nil
	}
	o.removeChildByPtr(child)
	child.parent = nil
	o.scene.addRoot(child)
	return child, nil
}

// RemoveChildByName removes the first direct child with the given name, or
// returns nil if none matches. The empty name never matches.
func (o *Object) RemoveChildByName(name string) (*Object, error) {
	if err := o.alive(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, nil
	}
	for _, child := range o.children {
		if child.name == name {
			return o.RemoveChild(child)
		}
	}
	return nil, nil
}

// RemoveChildByID removes the direct child with the given id, or returns
// nil if none matches.
func (o *Object) RemoveChildByID(id int64) (*Object, error) {
	if err := o.alive(); err != nil {
		return nil, err
	}
	for _, child := range o.children {
		if child.id == id {
			return o.RemoveChild(child)
		}
	}
	return nil, nil
}

// RemoveChildren detaches all children. The children stay live and become
// roots; they are NOT destroyed.
func (o *Object) RemoveChildren() error {
	if err := o.alive(); err != nil {
		return err
	}
	for _, child := range o.children {
		child.parent = nil
		o.scene.addRoot(child)
	}
	o.children = o.children[:0]
	return nil
}

// ChildByName returns the first direct child with the given name in
// insertion order. Fails with ErrNotFound if none matches; the empty name
// never matches. This scans direct children only — use Scene.ObjectByID for
// registry-wide lookup.
func (o *Object) ChildByName(name string) (*Object, error) {
	if err := o.alive(); err != nil {
		return nil, err
	}
	if name != "" {
		for _, child := range o.children {
			if child.name == name {
				return child, nil
			}
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "child %q of object %q", name, o.name)
}

// ChildByID returns the direct child with the given id. Fails with
// ErrNotFound if none matches. This is a linear scan over direct children;
// Scene.ObjectByID is the O(1) registry lookup across the whole scene.
func (o *Object) ChildByID(id int64) (*Object, error) {
	if err := o.alive(); err != nil {
		return nil, err
	}
	for _, child := range o.children {
		if child.id == id {
			return child, nil
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "child id %d of object %q", id, o.name)
}

// ContainsChild reports whether child is a direct child of this object, by
// reference identity.
func (o *Object) ContainsChild(child *Object) bool {
	if child == nil {
		return false
	}
	for _, c := range o.children {
		if c == child {
			return true
		}
	}
	return false
}

// Children returns the child list. The returned slice MUST NOT be mutated
// by the caller.
func (o *Object) Children() []*Object {
	return o.children
}

// NumChildren returns the number of direct children.
func (o *Object) NumChildren() int {
	return len(o.children)
}

// --- Components ---

// AddComponent attaches c to this object and registers its id. A component
// with id 0 gets the next generated id. Fails with ErrDuplicateID — and
// leaves the object unchanged — if the id is already live in the scene's
// component registry.
func (o *Object) AddComponent(c Component) error {
	if err := o.alive(); err != nil {
		return err
	}
	if c == nil {
		return errors.Wrap(ErrNotFound, "nil component")
	}
	if c.ID() == 0 {
		c.setID(o.scene.reg.allocateComponentID())
	}
	if !o.scene.reg.registerComponent(c) {
		return errors.Wrapf(ErrDuplicateID, "component id %d", c.ID())
	}
	c.setOwner(o)
	o.components = append(o.components, c)
	return nil
}

// ComponentByName returns the first attached component with the given name
// in insertion order. The empty name never matches.
func (o *Object) ComponentByName(name string) (Component, error) {
	if err := o.alive(); err != nil {
		return nil, err
	}
	if name != "" {
		for _, c := range o.components {
			if c.Name() == name {
				return c, nil
			}
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "component %q on object %q", name, o.name)
}

// ComponentByID returns the attached component with the given id.
func (o *Object) ComponentByID(id int64) (Component, error) {
	if err := o.alive(); err != nil {
		return nil, err
	}
	for _, c := range o.components {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "component id %d on object %q", id, o.name)
}

// Components returns the component list. The returned slice MUST NOT be
// mutated by the caller.
func (o *Object) Components() []Component {
	return o.components
}

// RemoveComponents stops, deregisters, and detaches all components. Stop
// failures are logged through the scene and do not abort cleanup of the
// remaining components.
func (o *Object) RemoveComponents() error {
	if err := o.alive(); err != nil {
		return err
	}
	o.stopComponents()
	return nil
}

func (o *Object) stopComponents() {
	for _, c := range o.components {
		if err := c.Stop(); err != nil {
			o.scene.log.Warn("component stop failed",
				zap.Int64("object", o.id), zap.Int64("component", c.ID()), zap.Error(err))
		}
		o.scene.reg.deregisterComponent(c)
		c.setOwner(nil)
	}
	o.components = nil
}

// --- Update dispatch ---

// Update invokes Update on every attached component in insertion order.
// It does not recurse into children; Scene.Update owns tree traversal.
func (o *Object) Update(dt float64) error {
	if err := o.alive(); err != nil {
		return err
	}
	for _, c := range o.components {
		c.Update(dt)
	}
	return nil
}

// FixedUpdate invokes FixedUpdate on every attached component in insertion
// order. Same dispatch contract as Update, intended for fixed-timestep
// simulation logic.
func (o *Object) FixedUpdate(dt float64) error {
	if err := o.alive(); err != nil {
		return err
	}
	for _, c := range o.components {
		c.FixedUpdate(dt)
	}
	return nil
}

// --- Clone ---

// Clone creates a new object with a fresh id, this object's name and enable
// flag, and the same parent. Children and components are not copied.
func (o *Object) Clone() (*Object, error) {
	if err := o.alive(); err != nil {
		return nil, err
	}
	dup := o.scene.NewObject(o.name)
	dup.enabled = o.enabled
	if o.parent != nil {
		if err := dup.SetParent(o.parent); err != nil {
			return nil, err
		}
	}
	return dup, nil
}

// --- Destruction ---

// Destroy detaches the object from its parent, stops and deregisters all
// components, recursively destroys all children, and removes the object
// from the scene registry.
//
// Destroy is idempotent: calling it again — including reentrantly from a
// component's Stop during teardown — is a no-op.
func (o *Object) Destroy() {
	if o.state != objectLive {
		return
	}
	o.state = objectDestroying
	if o.parent != nil {
		o.parent.removeChildByPtr(o)
		o.parent = nil
	} else {
		o.scene.removeRoot(o)
	}
	o.teardown()
}

// teardown runs the Destroying half of the state machine. The parent link
// has already been severed.
func (o *Object) teardown() {
	o.stopComponents()
	for _, child := range o.children {
		if child.state != objectLive {
			continue
		}
		child.state = objectDestroying
		child.parent = nil
		child.teardown()
	}
	o.children = nil
	o.scene.reg.deregisterObject(o)
	o.state = objectDestroyed
}

// --- Helpers ---

// isAncestor reports whether candidate is object or one of object's
// ancestors.
func isAncestor(candidate, object *Object) bool {
	for p := object; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from o.children without clearing
// child.parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (o *Object) removeChildByPtr(child *Object) {
	for i, c := range o.children {
		if c == child {
			copy(o.children[i:], o.children[i+1:])
			o.children[len(o.children)-1] = nil
			o.children = o.children[:len(o.children)-1]
			return
		}
	}
}
