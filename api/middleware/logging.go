// Package middleware provides HTTP middleware for the alignment API,
// logging each request with zerolog in place of the standard library
// logger.
package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Logger returns request-logging middleware bound to the given logger. It
// wraps every request in a chi WrapResponseWriter so the logged status
// code and byte count reflect what was actually written, and reports the
// request ID chi's RequestID middleware attaches, when present.
func Logger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Info().
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Msg("request")
		}
		return http.HandlerFunc(fn)
	}
}
