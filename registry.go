package pyg

// registry maps live ids to objects and components. It holds non-owning
// back-references only: entries are added at construction/attachment and
// removed exactly when destruction completes, so liveness and registration
// never disagree.
//
// Objects and components occupy separate id namespaces. Generated ids are
// monotonic but skip any id currently live, so an id is never reused while
// another holder has it (callers may supply explicit ids ahead of the
// counter).
type registry struct {
	objects    map[int64]*Object
	components map[int64]Component

	nextObjectID    int64
	nextComponentID int64
}

func newRegistry() *registry {
	return &registry{
		objects:    make(map[int64]*Object),
		components: make(map[int64]Component),
	}
}

func (r *registry) allocateObjectID() int64 {
	for {
		r.nextObjectID++
		if _, live := r.objects[r.nextObjectID]; !live {
			return r.nextObjectID
		}
	}
}

func (r *registry) allocateComponentID() int64 {
	for {
		r.nextComponentID++
		if _, live := r.components[r.nextComponentID]; !live {
			return r.nextComponentID
		}
	}
}

func (r *registry) registerObject(o *Object) bool {
	if _, live := r.objects[o.id]; live {
		return false
	}
	r.objects[o.id] = o
	return true
}

func (r *registry) deregisterObject(o *Object) {
	if r.objects[o.id] == o {
		delete(r.objects, o.id)
	}
}

func (r *registry) registerComponent(c Component) bool {
	if _, live := r.components[c.ID()]; live {
		return false
	}
	r.components[c.ID()] = c
	return true
}

func (r *registry) deregisterComponent(c Component) {
	if r.components[c.ID()] == c {
		delete(r.components, c.ID())
	}
}
