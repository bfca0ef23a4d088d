package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Bios-Marcel/bookadoctor/api"
	"github.com/Bios-Marcel/bookadoctor/config"
	"github.com/Bios-Marcel/bookadoctor/data"
	"github.com/Bios-Marcel/bookadoctor/store"
	"github.com/Bios-Marcel/bookadoctor/toast"
	"github.com/Bios-Marcel/bookadoctor/views"
)

const sessionCookieName = "session"

// backend is the part of the account API the views submit to.
type backend interface {
	Login(ctx context.Context, credentials data.Credentials) (*api.LoginResponse, error)
	Signup(ctx context.Context, registration data.Registration) error
}

type server struct {
	cfg      *config.Config
	backend  backend
	sessions *store.Store
}

func newServer(cfg *config.Config, backend backend, sessions *store.Store) *server {
	return &server{cfg: cfg, backend: backend, sessions: sessions}
}

func (s *server) routes() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// General handle, since we don't care about the method and end up here
	// via redirects from login.
	router.Handle("/", http.HandlerFunc(s.index))
	router.Get("/login", s.login)
	router.Post("/login", s.loginPost)
	router.Get("/signup", s.signup)
	router.Post("/signup", s.signupPost)
	router.Post("/logout", s.logout)

	return router
}

var ErrInvalidSession = errors.New("invalid session")

// currentSession returns nil without error if the request carries no session
// cookie at all.
func (s *server) currentSession(request *http.Request) (*data.Session, error) {
	cookie, err := request.Cookie(sessionCookieName)
	if err != nil {
		return nil, nil
	}

	sessionToken := strings.TrimSpace(cookie.Value)
	if sessionToken == "" {
		return nil, nil
	}

	session, err := s.sessions.Load(request.Context(), sessionToken)
	if errors.Is(err, store.ErrSessionNotFound) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// hasSession is used by the login and signup views to send visitors that are
// already logged in back home.
func (s *server) hasSession(request *http.Request) bool {
	session, _ := s.currentSession(request)
	return session != nil
}

func (s *server) index(responseWriter http.ResponseWriter, request *http.Request) {
	session, err := s.currentSession(request)
	if err != nil {
		if !errors.Is(err, ErrInvalidSession) {
			log.Printf("cant load session: %v", err)
			http.Error(responseWriter, "Internal server error", http.StatusInternalServerError)
			return
		}
		s.resetSessionCookie(responseWriter)
	}

	var user *data.User
	if session != nil {
		sessionUser := session.User()
		user = &sessionUser
	}
	views.WriteIndex(responseWriter, user)
}

func (s *server) logout(responseWriter http.ResponseWriter, request *http.Request) {
	if cookie, err := request.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if err := s.sessions.Remove(request.Context(), cookie.Value); err != nil {
			log.Printf("cant remove session: %v", err)
		}
	}

	s.resetSessionCookie(responseWriter)
	http.Redirect(responseWriter, request, "/login", http.StatusSeeOther)
}

func (s *server) setSessionCookie(responseWriter http.ResponseWriter, token string) {
	http.SetCookie(responseWriter, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.Server.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *server) resetSessionCookie(responseWriter http.ResponseWriter) {
	http.SetCookie(responseWriter, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// failureToast turns a failed backend call into what the user gets to see.
// Only messages the backend reported itself are shown verbatim.
func failureToast(operation string, err error) toast.Toast {
	var backendErr *api.BackendError
	if errors.As(err, &backendErr) {
		return toast.Error(backendErr.Message)
	}

	log.Printf("%s error: %v", operation, err)
	return toast.Error(toast.GenericFailure)
}
