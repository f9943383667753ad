package domain

// User identifies the logged-in session user. It carries only the username;
// passwords live in the static credential table in internal/session and are
// never persisted anywhere else.
type User struct {
	Username string
}
