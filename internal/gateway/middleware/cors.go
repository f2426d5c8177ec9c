package middleware

import (
	"net/http"
	"strings"
)

// CORSMiddleware allows browser requests from the configured origins.
// allowedOrigins is a comma-separated list, or "*" for any origin.
func CORSMiddleware(next http.Handler, allowedOrigins string) http.Handler {
	wildcard := allowedOrigins == "*"
	allowed := make(map[string]struct{})
	for _, o := range strings.Split(allowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			allowed[o] = struct{}{}
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		_, ok := allowed[origin]

		switch {
		case wildcard:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case ok:
			w.Header().Set("Access-Control-Allow-Origin", origin)
			// browsers refuse credentials together with a wildcard origin,
			// so the header only accompanies an echoed origin
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		}

		if wildcard || ok {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
