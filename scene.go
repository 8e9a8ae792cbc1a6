package pyg

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Scene owns the object tree: the id registry, the list of root objects,
// and the logger used for best-effort teardown reporting. All object
// construction goes through a Scene so that id bookkeeping has exactly one
// home and nothing in the core relies on process-wide state.
type Scene struct {
	reg   *registry
	roots []*Object
	log   *zap.Logger
}

// NewScene creates an empty scene. Logging is disabled until SetLogger is
// called.
func NewScene() *Scene {
	return &Scene{
		reg: newRegistry(),
		log: zap.NewNop(),
	}
}

// SetLogger sets the logger used for component teardown failures and
// lifecycle reporting. Passing nil disables logging.
func (s *Scene) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	s.log = log
}

// --- Object construction ---

// NewObject creates a root object with a generated id and registers it.
func (s *Scene) NewObject(name string) *Object {
	o := &Object{
		id:      s.reg.allocateObjectID(),
		name:    name,
		enabled: true,
		scene:   s,
	}
	s.reg.registerObject(o)
	s.roots = append(s.roots, o)
	return o
}

// NewObjectWithID creates a root object with a caller-supplied id. Fails
// with ErrDuplicateID if the id is already held by a live object. Passing
// id 0 is the same as NewObject.
func (s *Scene) NewObjectWithID(id int64, name string) (*Object, error) {
	if id == 0 {
		return s.NewObject(name), nil
	}
	o := &Object{
		id:      id,
		name:    name,
		enabled: true,
		scene:   s,
	}
	if !s.reg.registerObject(o) {
		return nil, errors.Wrapf(ErrDuplicateID, "object id %d", id)
	}
	s.roots = append(s.roots, o)
	return o, nil
}

// --- Lookup ---

// ObjectByID returns the live object with the given id, anywhere in the
// scene. O(1) via the registry, not scoped to any subtree.
func (s *Scene) ObjectByID(id int64) (*Object, error) {
	if o, live := s.reg.objects[id]; live {
		return o, nil
	}
	return nil, errors.Wrapf(ErrNotFound, "object id %d", id)
}

// ComponentByID returns the live component with the given id, anywhere in
// the scene.
func (s *Scene) ComponentByID(id int64) (Component, error) {
	if c, live := s.reg.components[id]; live {
		return c, nil
	}
	return nil, errors.Wrapf(ErrNotFound, "component id %d", id)
}

// FindByName returns the first object with the given name in depth-first
// order across the roots. The empty name never matches.
func (s *Scene) FindByName(name string) (*Object, error) {
	if name != "" {
		for _, root := range s.roots {
			if o := findByName(root, name); o != nil {
				return o, nil
			}
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "object %q", name)
}

func findByName(o *Object, name string) *Object {
	if o.name == name {
		return o
	}
	for _, child := range o.children {
		if found := findByName(child, name); found != nil {
			return found
		}
	}
	return nil
}

// Roots returns the root objects in creation order. The returned slice MUST
// NOT be mutated by the caller.
func (s *Scene) Roots() []*Object {
	return s.roots
}

// NumLive returns the number of live objects in the scene.
func (s *Scene) NumLive() int {
	return len(s.reg.objects)
}

// --- Update dispatch ---

// Update dispatches Update to every enabled object, depth-first from the
// roots. Disabled objects are skipped along with their entire subtree.
//
// The tree must not be structurally mutated from component Update hooks in
// a way that destroys an object the traversal has not yet passed.
func (s *Scene) Update(dt float64) {
	for _, root := range s.roots {
		updateTree(root, dt)
	}
}

func updateTree(o *Object, dt float64) {
	if !o.enabled || o.state != objectLive {
		return
	}
	for _, c := range o.components {
		c.Update(dt)
	}
	for _, child := range o.children {
		updateTree(child, dt)
	}
}

// FixedUpdate dispatches FixedUpdate to every enabled object, with the same
// traversal as Update. Intended to be driven on a fixed cadence.
func (s *Scene) FixedUpdate(dt float64) {
	for _, root := range s.roots {
		fixedUpdateTree(root, dt)
	}
}

func fixedUpdateTree(o *Object, dt float64) {
	if !o.enabled || o.state != objectLive {
		return
	}
	for _, c := range o.components {
		c.FixedUpdate(dt)
	}
	for _, child := range o.children {
		fixedUpdateTree(child, dt)
	}
}

// --- Lifecycle propagation ---

// Start invokes Start on every component in the scene, depth-first.
func (s *Scene) Start() {
	s.eachComponent(func(c Component) { c.Start() })
}

// Pause invokes Pause on every component in the scene, depth-first.
func (s *Scene) Pause() {
	s.eachComponent(func(c Component) { c.Pause() })
}

// Stop invokes Stop on every component in the scene, depth-first. Failures
// are logged and do not interrupt the remaining components.
func (s *Scene) Stop() {
	s.eachComponent(func(c Component) {
		if err := c.Stop(); err != nil {
			s.log.Warn("component stop failed",
				zap.Int64("component", c.ID()), zap.Error(err))
		}
	})
}

func (s *Scene) eachComponent(fn func(Component)) {
	var walk func(o *Object)
	walk = func(o *Object) {
		for _, c := range o.components {
			fn(c)
		}
		for _, child := range o.children {
			walk(child)
		}
	}
	for _, root := range s.roots {
		walk(root)
	}
}

// Clear destroys every root object (and therefore every object in the
// scene). Best-effort: component stop failures are logged, never fatal.
func (s *Scene) Clear() {
	for len(s.roots) > 0 {
		s.roots[len(s.roots)-1].Destroy()
	}
}

// --- Root bookkeeping ---

func (s *Scene) addRoot(o *Object) {
	s.roots = append(s.roots, o)
}

func (s *Scene) removeRoot(o *Object) {
	for i, r := range s.roots {
		if r == o {
			copy(s.roots[i:], s.roots[i+1:])
			s.roots[len(s.roots)-1] = nil
			s.roots = s.roots[:len(s.roots)-1]
			return
		}
	}
}
