package middleware

import (
	"net"
	"net/http"

	"github.com/mcoot/pocketcasino/internal/api/apierr"
)

// LocalOnly rejects requests that do not come from a loopback address.
// The API serves a single player's record and is never exposed.
func LocalOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isLoopback(r.RemoteAddr) {
				apierr.WriteError(w, apierr.NewForbiddenError("API is only available from localhost"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isLoopback(remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
