package httpadapter

import (
	"context"
	"net/http"

	"adboard/internal/core/domain"
)

type ctxKey int

const userKey ctxKey = 0

// requireSession rehydrates the session from the cookie and stores the user
// on the request context. Anonymous requests are redirected to the login
// page. The cookie value is trusted as-is; see internal/session.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.sessions.FromRequest(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
	})
}

// currentUser returns the session user placed on the context by
// requireSession.
func currentUser(ctx context.Context) domain.User {
	user, _ := ctx.Value(userKey).(domain.User)
	return user
}
