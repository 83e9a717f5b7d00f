package server

import (
	"net/http"

	"github.com/oggyb/omni-notify/internal/middleware"
)

// Middleware wraps a handler with extra behaviour.
type Middleware func(http.Handler) http.Handler

// Defaults is the stack every request passes through. The logger sits
// outermost so it also records the 500 written by Recover.
func Defaults() []Middleware {
	return []Middleware{
		middleware.RequestLogger(),
		middleware.Recover(),
	}
}

// Chain wraps h so that m[0] runs first on the way in.
func Chain(h http.Handler, m ...Middleware) http.Handler {
	for i := len(m) - 1; i >= 0; i-- {
		if m[i] == nil {
			continue
		}
		h = m[i](h)
	}
	return h
}
