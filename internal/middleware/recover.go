package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/oggyb/omni-notify/internal/response"
)

// Recover turns a handler panic into a 500 JSON error.
func Recover() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if v := recover(); v != nil {
					log.Printf("[HTTP] panic serving %s %s: %v\n%s", r.Method, r.URL.Path, v, debug.Stack())
					response.RespondError(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
