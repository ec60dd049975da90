// Package navigation tracks which view the client is showing. The router
// is the one place that reacts to a rejected session: on a 401 it sends
// the user to the login route.
package navigation

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/uniswap/internal/client/apiclient"
)

// Well-known routes.
const (
	RouteHome     = "/"
	RouteLogin    = "/login"
	RouteSignup   = "/signup"
	RouteBrowse   = "/browse"
	RouteProfile  = "/profile"
	RouteMessages = "/messages"
	RouteWishlist = "/wishlist"
	RouteTuitions = "/tuitions"
	RoutePost     = "/post"
	RouteUploads  = "/uploads"
	RouteBorrow   = "/borrow"
)

// ItemRoute is the detail route of one item.
func ItemRoute(id string) string { return "/items/" + id }

func TuitionRoute(id string) string { return RouteTuitions + "/" + id }

func ChatRoute(partnerID string) string { return RouteMessages + "/" + partnerID }

type Router struct {
	mu        sync.RWMutex
	current   string
	listeners []func(from, to string)
}

var _ apiclient.Observer = (*Router)(nil)

func NewRouter(start string) *Router {
	if start == "" {
		start = RouteHome
	}
	return &Router{current: start}
}

func (r *Router) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Navigate moves to route. Listeners run after the change, outside the lock.
func (r *Router) Navigate(route string) {
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}

	r.mu.Lock()
	from := r.current
	r.current = route
	listeners := append([]func(string, string){}, r.listeners...)
	r.mu.Unlock()

	if from == route {
		return
	}
	for _, l := range listeners {
		l(from, route)
	}
}

// OnChange registers fn to be called with the old and new route.
func (r *Router) OnChange(fn func(from, to string)) {
	r.mu.Lock()
	r.listeners = append(r.listeners, fn)
	r.mu.Unlock()
}

// OnUnauthenticated redirects to the login route unless already there.
func (r *Router) OnUnauthenticated(context.Context) {
	if r.Current() == RouteLogin {
		return
	}
	r.Navigate(RouteLogin)
}
