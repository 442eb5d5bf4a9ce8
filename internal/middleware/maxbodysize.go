package middleware

import "net/http"

// NewMaxBodySizeHandler returns a middleware that limits incoming request
// bodies to limit bytes. Oversized requests matter here because trip import
// posts a whole snapshot document: a runaway upload should fail fast, not
// buffer unbounded JSON.
//
// Requests advertising a Content-Length over the limit are rejected with 413
// before any body bytes are read. Requests without a Content-Length are
// wrapped in http.MaxBytesReader, which makes the handler's body read fail
// once the limit is crossed.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
