package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gofrs/uuid"

	"github.com/Bios-Marcel/bookadoctor/data"
	"github.com/Bios-Marcel/bookadoctor/form"
	"github.com/Bios-Marcel/bookadoctor/toast"
	"github.com/Bios-Marcel/bookadoctor/views"
)

const actionTogglePassword = "toggle_password"

func (s *server) login(responseWriter http.ResponseWriter, request *http.Request) {
	if s.hasSession(request) {
		http.Redirect(responseWriter, request, "/", http.StatusSeeOther)
		return
	}

	views.WriteLogin(responseWriter, &data.LoginPage{})
}

func (s *server) loginPost(responseWriter http.ResponseWriter, request *http.Request) {
	if s.hasSession(request) {
		http.Redirect(responseWriter, request, "/", http.StatusSeeOther)
		return
	}

	page := &data.LoginPage{
		Credentials: data.Credentials{
			Email:    strings.TrimSpace(request.PostFormValue("email")),
			Password: request.PostFormValue("password"),
		},
		Password: data.PasswordField{Visible: request.PostFormValue("show_password") == "true"},
	}

	if request.PostFormValue("action") == actionTogglePassword {
		page.Password.Toggle()
		views.WriteLogin(responseWriter, page)
		return
	}

	if page.Errors = form.Validate(page.Credentials); page.Errors != nil {
		views.WriteLogin(responseWriter, page)
		return
	}

	page.Submission.Begin()
	response, err := s.backend.Login(request.Context(), page.Credentials)
	if err != nil {
		page.Submission.Fail()
		page.Toast = failureToast("Login", err)
		views.WriteLogin(responseWriter, page)
		return
	}

	session := data.Session{
		Token:     uuid.Must(uuid.NewV4()).String(),
		Payload:   response.Payload,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Save(request.Context(), session); err != nil {
		log.Printf("Login error: %v", err)
		page.Submission.Fail()
		page.Toast = toast.Error(toast.GenericFailure)
		views.WriteLogin(responseWriter, page)
		return
	}

	page.Submission.Succeed()
	s.setSessionCookie(responseWriter, session.Token)
	http.Redirect(responseWriter, request, "/", http.StatusSeeOther)
}
