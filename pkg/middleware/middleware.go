// Package middleware provides the HTTP middleware chain shared by modules:
// request logging and CORS.
package middleware

import "net/http"

// System holds an ordered middleware chain. The first middleware added is
// the outermost.
type System interface {
	Use(mw func(http.Handler) http.Handler)
	Apply(handler http.Handler) http.Handler
}

type chain []func(http.Handler) http.Handler

// New creates an empty middleware chain.
func New() System {
	return &chain{}
}

func (c *chain) Use(fn func(http.Handler) http.Handler) {
	*c = append(*c, fn)
}

func (c *chain) Apply(handler http.Handler) http.Handler {
	for i := len(*c) - 1; i >= 0; i-- {
		handler = (*c)[i](handler)
	}
	return handler
}
