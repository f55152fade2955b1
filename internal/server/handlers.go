package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kdarade/portfolio/internal/contact"
	"github.com/kdarade/portfolio/internal/content"
	"github.com/kdarade/portfolio/internal/ui"
)

const (
	themeCookie = "theme"
	themeDark   = "dark"
	themeLight  = "light"

	maxBodyBytes = 64 << 10
)

// contactResponse is the JSON response for the contact API.
type contactResponse struct {
	Status contact.Status `json:"status"`
	Error  string         `json:"error,omitempty"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	form := formFrom(r.Context())

	page := ui.Page{
		Profile: s.profile,
		Shell: ui.Shell{
			DarkMode: darkMode(r),
			MenuOpen: r.URL.Query().Get("menu") == "open",
		},
		Form:        form.Snapshot(),
		Target:      ui.FormEndpoints{Action: "/contact", Endpoint: "/api/contact"},
		AssetBase:   "/assets",
		ThemeAction: "/theme",
	}

	var buf bytes.Buffer
	if err := ui.Render(&buf, page); err != nil {
		s.logger.Error("rendering page", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// handleContactForm takes the urlencoded post made when scripts are off,
// then sends the visitor back to the form to see the outcome.
func (s *Server) handleContactForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	in := contact.Input{
		Submission: contact.Submission{
			Name:    r.PostFormValue(string(contact.FieldName)),
			Email:   r.PostFormValue(string(contact.FieldEmail)),
			Message: r.PostFormValue(string(contact.FieldMessage)),
		},
		Website: r.PostFormValue(string(contact.FieldHoneypot)),
	}
	s.submit(r, formFrom(r.Context()), in)

	http.Redirect(w, r, "/#"+content.SectionContact, http.StatusSeeOther)
}

func (s *Server) handleContactAPI(w http.ResponseWriter, r *http.Request) {
	form := formFrom(r.Context())

	var in contact.Input
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, contactResponse{Status: form.Status(), Error: "invalid request body"})
		return
	}

	status, err := s.submit(r, form, in)
	var required *contact.RequiredFieldError
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, contactResponse{Status: status})
	case errors.As(err, &required):
		writeJSON(w, http.StatusBadRequest, contactResponse{Status: status, Error: required.Error()})
	case errors.Is(err, contact.ErrInFlight):
		writeJSON(w, http.StatusConflict, contactResponse{Status: status, Error: err.Error()})
	default:
		writeJSON(w, http.StatusBadGateway, contactResponse{Status: status, Error: status.Message()})
	}
}

// submit replaces the visitor's form values with in and submits them. A
// request refused because a send is pending changes nothing. The relay call
// outlives the request so a visitor leaving mid-send does not abort it.
func (s *Server) submit(r *http.Request, form *contact.Form, in contact.Input) (contact.Status, error) {
	log := s.logger.With(zap.String("request_id", middleware.GetReqID(r.Context())))

	if in.HoneypotFilled() {
		s.metrics.HoneypotFilled()
		log.Debug("contact honeypot filled")
	}

	status, err := form.SubmitInput(context.WithoutCancel(r.Context()), in)
	switch {
	case err == nil:
		log.Info("contact message relayed")
	case errors.Is(err, contact.ErrInFlight), errors.Is(err, contact.ErrRequired):
		log.Debug("contact submission refused", zap.Error(err))
	default:
		log.Warn("contact relay failed", zap.Error(err), zap.Stringer("status", status))
	}
	return status, err
}

// handleTheme flips the dark mode cookie and returns to the page the
// toggle was pressed on.
func handleTheme(w http.ResponseWriter, r *http.Request) {
	next := themeLight
	if !darkMode(r) {
		next = themeDark
	}
	http.SetCookie(w, &http.Cookie{
		Name:     themeCookie,
		Value:    next,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

func darkMode(r *http.Request) bool {
	c, err := r.Cookie(themeCookie)
	return err == nil && c.Value == themeDark
}

// backTo returns the local path of the referring page, or "/" when the
// referer is missing or belongs to another host.
func backTo(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Host != r.Host || ref.Path == "" || strings.HasPrefix(ref.Path, "//") {
		return "/"
	}
	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}
	return ref.Path
}

func assetHandler() http.Handler {
	return http.StripPrefix("/assets/", http.FileServerFS(ui.Assets()))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
