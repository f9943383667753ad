// Package session holds the dashboard's authentication state: a static
// credential table checked at login and a cookie that mirrors the current
// username between requests.
//
// The cookie carries the plaintext username and is trusted as-is when a
// request comes in, with no revalidation against the credential table. That
// trust-the-client model is inherited from the prototype this dashboard
// replaces and is kept deliberately; see DESIGN.md before tightening it.
package session

import (
	"net/http"
	"strings"
	"time"

	"adboard/internal/config/configs"
	"adboard/internal/core/domain"
)

// Credentials is one entry of the static user table.
type Credentials struct {
	Username string
	Password string
}

// defaultUsers is the whole user base. Passwords never touch persistent
// storage beyond this table.
var defaultUsers = []Credentials{
	{Username: "joe-blow", Password: "password1"},
	{Username: "jane-doe", Password: "password2"},
}

// Store resolves and mutates the session for HTTP requests.
type Store struct {
	cookieName string
	ttl        time.Duration
	users      []Credentials
}

// NewStore builds a session store with the static credential table.
func NewStore(cfg configs.Session) *Store {
	return &Store{
		cookieName: cfg.CookieName,
		ttl:        cfg.TTL,
		users:      defaultUsers,
	}
}

// Login checks the credentials against the static table. On a match it
// returns the user and true; otherwise the zero user and false. A failed
// login is a normal outcome, not an error.
func (s *Store) Login(username, password string) (domain.User, bool) {
	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			return domain.User{Username: u.Username}, true
		}
	}
	return domain.User{}, false
}

// FromRequest rehydrates the session from the cookie. Any non-empty cookie
// value is accepted as the username without a credential re-check.
func (s *Store) FromRequest(r *http.Request) (domain.User, bool) {
	cookie, err := r.Cookie(s.cookieName)
	if err != nil || cookie == nil {
		return domain.User{}, false
	}
	username := strings.TrimSpace(cookie.Value)
	if username == "" {
		return domain.User{}, false
	}
	return domain.User{Username: username}, true
}

// Write sets the session cookie for the given user.
func (s *Store) Write(w http.ResponseWriter, user domain.User) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    user.Username,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the session cookie immediately.
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
