// Package nav implements the client-side route table. Views are reached by
// name, and routes flagged as requiring authentication are gated on the
// session before they are entered.
package nav

import "fmt"

// Route is a named destination in the client UI.
type Route struct {
	Name         string
	Path         string
	RequiresAuth bool
}

// AuthFunc reports whether the current session is authenticated. It is
// consulted on every resolution, never cached.
type AuthFunc func() bool

// Router resolves route names, redirecting protected routes to a fallback
// when the auth gate is down.
type Router struct {
	routes   []Route
	fallback string
	authed   AuthFunc
}

// New builds a router over the given routes. fallback names the route used
// when navigation is denied or the target is unknown; it must exist and
// must not itself require authentication.
func New(routes []Route, fallback string, authed AuthFunc) (*Router, error) {
	r := &Router{routes: routes, fallback: fallback, authed: authed}

	fb, ok := r.lookup(fallback)
	if !ok {
		return nil, fmt.Errorf("unknown fallback route %q", fallback)
	}
	if fb.RequiresAuth {
		return nil, fmt.Errorf("fallback route %q must not require authentication", fallback)
	}
	return r, nil
}

// Resolve returns the route to render for the requested name. A protected
// route resolves to the fallback when the gate is down; the protected route
// itself is never returned in that case. Unknown names also resolve to the
// fallback.
func (r *Router) Resolve(name string) Route {
	route, ok := r.lookup(name)
	if !ok {
		route, _ = r.lookup(r.fallback)
		return route
	}
	if route.RequiresAuth && !r.authed() {
		fb, _ := r.lookup(r.fallback)
		return fb
	}
	return route
}

// Routes returns the registered routes in order.
func (r *Router) Routes() []Route {
	routes := make([]Route, len(r.routes))
	copy(routes, r.routes)
	return routes
}

func (r *Router) lookup(name string) (Route, bool) {
	for _, route := range r.routes {
		if route.Name == name {
			return route, true
		}
	}
	return Route{}, false
}
