package inbuilt

// Group creates a new router inherited from the current one. All its routes are prefixed
// and go into the same ordered table as the root's ones. Middlewares are inherited from the
// parent, but adding new middlewares to the group doesn't affect the parent.
func (r *Router) Group(prefix string) *Router {
	return &Router{
		root:        r.root,
		prefix:      r.prefix + prefix,
		middlewares: append([]Middleware(nil), r.middlewares...),
	}
}
