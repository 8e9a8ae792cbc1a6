package pyg

import "github.com/pkg/errors"

// Component is a named, identified behavior/data unit attached to exactly
// one Object. Concrete components embed BaseComponent, which supplies
// identity, the property bag, and no-op lifecycle hooks; override the hooks
// you need:
//
//	type Spinner struct {
//		*pyg.BaseComponent
//		Speed float64
//	}
//
//	func (s *Spinner) Update(dt float64) { ... }
type Component interface {
	// ID returns the component's id. Zero means "not yet assigned"; an id
	// is allocated when the component is attached to an object.
	ID() int64
	Name() string
	SetName(name string)

	// Owner returns the object this component is attached to, or nil.
	Owner() *Object

	// Lifecycle hooks, driven by the owning object and scene. Stop may
	// report a teardown failure; it is logged by the scene and never aborts
	// sibling cleanup.
	Start()
	Stop() error
	Pause()
	Update(dt float64)
	FixedUpdate(dt float64)

	// Property bag access.
	Property(name string) (Property, error)
	PropertyByID(id int64) (Property, error)
	SetProperty(name string, v Value) error
	SetPropertyByID(id int64, v Value) error
	DefineProperty(p Property) error
	PropertyNames() []string

	setID(id int64)
	setOwner(o *Object)
}

// BaseComponent is the canonical Component implementation. It holds
// identity, the owner back-reference, and an ordered property bag.
type BaseComponent struct {
	id    int64
	name  string
	owner *Object
	props []Property
}

var _ Component = (*BaseComponent)(nil)

// NewComponent creates a detached component. Pass id 0 to have an id
// assigned when the component is attached to an object.
func NewComponent(id int64, name string) *BaseComponent {
	return &BaseComponent{id: id, name: name}
}

// ID returns the component's id (0 until attached, if auto-assigned).
func (b *BaseComponent) ID() int64 { return b.id }

// Name returns the component's display name.
func (b *BaseComponent) Name() string { return b.name }

// SetName sets the component's display name.
func (b *BaseComponent) SetName(name string) { b.name = name }

// Owner returns the object this component is attached to, or nil if
// detached.
func (b *BaseComponent) Owner() *Object { return b.owner }

func (b *BaseComponent) setID(id int64) { b.id = id }

func (b *BaseComponent) setOwner(o *Object) { b.owner = o }

// Start is a no-op; embedders override it.
func (b *BaseComponent) Start() {}

// Stop is a no-op; embedders override it.
func (b *BaseComponent) Stop() error { return nil }

// Pause is a no-op; embedders override it.
func (b *BaseComponent) Pause() {}

// Update is a no-op; embedders override it.
func (b *BaseComponent) Update(dt float64) {}

// FixedUpdate is a no-op; embedders override it.
func (b *BaseComponent) FixedUpdate(dt float64) {}

// DefineProperty appends an entry to the property bag. The entry's Value
// tag must match its declared Type, and its id must not collide with an
// existing entry (id lookups are authoritative and return at most one
// match).
func (b *BaseComponent) DefineProperty(p Property) error {
	if p.Value.Type() != p.Type || p.Value.IsZero() {
		return errors.Wrapf(ErrTypeMismatch,
			"property %q declared %s but default value is %s", p.Name, p.Type, p.Value)
	}
	for _, existing := range b.props {
		if existing.ID == p.ID {
			return errors.Wrapf(ErrDuplicateID, "property id %d", p.ID)
		}
	}
	b.props = append(b.props, p)
	return nil
}

// Property returns the first entry with the given name in insertion order.
// The empty name never matches.
func (b *BaseComponent) Property(name string) (Property, error) {
	if name != "" {
		for _, p := range b.props {
			if p.Name == name {
				return p, nil
			}
		}
	}
	return Property{}, errors.Wrapf(ErrNotFound, "property %q", name)
}

// PropertyByID returns the entry with the given id.
func (b *BaseComponent) PropertyByID(id int64) (Property, error) {
	for _, p := range b.props {
		if p.ID == id {
			return p, nil
		}
	}
	return Property{}, errors.Wrapf(ErrNotFound, "property id %d", id)
}

// SetProperty replaces the value of the first entry with the given name.
// The new value's tag must match the entry's declared type; on mismatch the
// stored value is left untouched. Unknown names are not created implicitly.
func (b *BaseComponent) SetProperty(name string, v Value) error {
	if name != "" {
		for i := range b.props {
			if b.props[i].Name == name {
				return b.setAt(i, v)
			}
		}
	}
	return errors.Wrapf(ErrNotFound, "property %q", name)
}

// SetPropertyByID replaces the value of the entry with the given id, with
// the same type checking as SetProperty.
func (b *BaseComponent) SetPropertyByID(id int64, v Value) error {
	for i := range b.props {
		if b.props[i].ID == id {
			return b.setAt(i, v)
		}
	}
	return errors.Wrapf(ErrNotFound, "property id %d", id)
}

func (b *BaseComponent) setAt(i int, v Value) error {
	if v.Type() != b.props[i].Type || v.IsZero() {
		return errors.Wrapf(ErrTypeMismatch,
			"property %q is %s, got %s", b.props[i].Name, b.props[i].Type, v)
	}
	b.props[i].Value = v
	return nil
}

// PropertyNames returns the names of all entries in insertion order.
// Duplicate names appear once per entry.
func (b *BaseComponent) PropertyNames() []string {
	names := make([]string, len(b.props))
	for i, p := range b.props {
		names[i] = p.Name
	}
	return names
}
