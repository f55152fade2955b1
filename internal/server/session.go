package server

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/kdarade/portfolio/internal/contact"
)

// SessionCookie identifies a visitor's contact form across requests.
const SessionCookie = "portfolio_session"

type formKey struct{}

// withSession attaches the visitor's form to the request context, issuing
// a session cookie on first visit.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := sessionID(r)
		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		form := s.forms.Get(id)
		s.metrics.SetForms(s.forms.Count())

		ctx := context.WithValue(r.Context(), formKey{}, form)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionID returns the session id carried by r, or "" if it has none
// or it is not one we issued.
func sessionID(r *http.Request) string {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return ""
	}
	return c.Value
}

func formFrom(ctx context.Context) *contact.Form {
	return ctx.Value(formKey{}).(*contact.Form)
}
