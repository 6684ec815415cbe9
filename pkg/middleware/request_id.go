package middleware

import (
	"net/http"

	"github.com/LakshayPahal/Swift-Cab/pkg/utils"
)

const requestIDHeader = "X-Request-ID"

// RequestID attaches a unique id to each request, honoring one supplied by
// the caller.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = utils.GenerateRequestID()
			}

			w.Header().Set(requestIDHeader, id)
			ctx := utils.SetRequestID(r.Context(), id)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
