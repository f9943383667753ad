package configs

import "time"

// Session configures the session cookie. The cookie stores the plaintext
// username of the logged-in user; see internal/session for the trust model.
type Session struct {
	// CookieName is the name of the session cookie. Defaults to "user".
	CookieName string `env:"COOKIE_NAME" envDefault:"user"`
	// TTL is the cookie lifetime. Defaults to 24 hours.
	TTL time.Duration `env:"TTL" envDefault:"24h"`
}
