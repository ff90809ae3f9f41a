package handlers

import "net/http"

// Allowed methods per deployment.
const (
	FunctionMethods = "POST, OPTIONS"
	ServerMethods   = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
)

const allowedHeaders = "authorization, x-client-info, apikey, content-type"

// CORS sets permissive CORS headers on every response and answers OPTIONS
// preflights with an empty 200.
func CORS(methods string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", methods)
			w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
