package middleware

import (
	"context"
	"encoding/json"
	"net/http"
)

// SessionCookie carries the opaque session token identifying a polling
// client. The index page issues it; every API route requires it.
const SessionCookie = "session_id"

type contextKey struct{}

var sessionKey contextKey

// Session rejects requests lacking a session token and stores the token in
// the request context for handlers.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookie)
		if err != nil || cookie.Value == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "세션이 없습니다. 메인 페이지를 먼저 방문해주세요."})
			return
		}
		ctx := context.WithValue(r.Context(), sessionKey, cookie.Value)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID returns the session token put in the context by Session.
func SessionID(r *http.Request) string {
	if id, ok := r.Context().Value(sessionKey).(string); ok {
		return id
	}
	return ""
}
