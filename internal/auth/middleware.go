package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const (
	CtxUserID    ctxKey = "userID"
	CtxIsManager ctxKey = "isManager"
)

// Middleware validates the bearer token and stores the caller's identity in
// the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ParseAndValidate(raw)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), CtxUserID, claims.UserID)
		ctx = context.WithValue(ctx, CtxIsManager, claims.IsManager)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireManager guards administrative routes.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v := r.Context().Value(CtxIsManager)
		if ok, _ := v.(bool); !ok {
			http.Error(w, "forbidden (manager only)", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
