package httpadapter

import (
	"net/http"

	"adboard/internal/core/domain"
	"adboard/internal/core/schema"
)

// loginPage is the view model for the login form. Values are echoed back on
// a failed attempt and Errors carries field-level messages.
type loginPage struct {
	Title    string
	User     *domain.User
	Username string
	Errors   schema.FieldErrors
}

func (h *Handler) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.FromRequest(r); ok {
		http.Redirect(w, r, "/campaigns", http.StatusFound)
		return
	}
	h.render(w, "login.html", loginPage{Title: "Login"})
}

// handleLogin checks the submitted credentials against the static user
// table. Both fields are required; a credential mismatch is reported on the
// username field only, matching the behaviour the dashboard has always had.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	username := r.FormValue("username")
	password := r.FormValue("password")

	errs := schema.FieldErrors{}
	if username == "" {
		errs["username"] = "Required"
	}
	if password == "" {
		errs["password"] = "Required"
	}
	if len(errs) > 0 {
		h.render(w, "login.html", loginPage{Title: "Login", Username: username, Errors: errs})
		return
	}

	user, ok := h.sessions.Login(username, password)
	if !ok {
		errs["username"] = "Invalid username or password"
		h.render(w, "login.html", loginPage{Title: "Login", Username: username, Errors: errs})
		return
	}

	h.sessions.Write(w, user)
	http.Redirect(w, r, "/campaigns", http.StatusFound)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}
