package middleware

import (
	"net/http"
	"time"

	"github.com/heartmarshall/plantcare-backend/pkg/ctxutil"
)

// TimezoneHeader carries the caller's IANA timezone, e.g. "Europe/Berlin".
const TimezoneHeader = "X-Timezone"

// Timezone stores the caller's timezone in the request context so that
// "today" and range bounds follow the caller's calendar. A missing or
// unknown zone leaves the server default in effect.
func Timezone(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if name := r.Header.Get(TimezoneHeader); name != "" {
			if loc, err := time.LoadLocation(name); err == nil {
				r = r.WithContext(ctxutil.WithLocation(r.Context(), loc))
			}
		}
		next.ServeHTTP(w, r)
	})
}
