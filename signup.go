package main

import (
	"net/http"
	"strings"

	"github.com/Bios-Marcel/bookadoctor/data"
	"github.com/Bios-Marcel/bookadoctor/form"
	"github.com/Bios-Marcel/bookadoctor/toast"
	"github.com/Bios-Marcel/bookadoctor/views"
)

const signupSuccessMessage = "User Successfully Created"

func (s *server) newSignupPage() *data.SignupPage {
	page := &data.SignupPage{}
	page.Registration.ApplyPhoneDefault(s.cfg.Signup.PhonePrefix)
	return page
}

func (s *server) signup(responseWriter http.ResponseWriter, request *http.Request) {
	if s.hasSession(request) {
		http.Redirect(responseWriter, request, "/", http.StatusSeeOther)
		return
	}

	views.WriteSignup(responseWriter, s.newSignupPage())
}

func (s *server) signupPost(responseWriter http.ResponseWriter, request *http.Request) {
	if s.hasSession(request) {
		http.Redirect(responseWriter, request, "/", http.StatusSeeOther)
		return
	}

	page := s.newSignupPage()
	page.Registration = data.Registration{
		Name:        strings.TrimSpace(request.PostFormValue("name")),
		Email:       strings.TrimSpace(request.PostFormValue("email")),
		PhoneNumber: strings.TrimSpace(request.PostFormValue("phoneNumber")),
		Password:    request.PostFormValue("password"),
	}
	page.Registration.ApplyPhoneDefault(s.cfg.Signup.PhonePrefix)
	page.Password.Visible = request.PostFormValue("show_password") == "true"

	if request.PostFormValue("action") == actionTogglePassword {
		page.Password.Toggle()
		views.WriteSignup(responseWriter, page)
		return
	}

	if page.Errors = form.Validate(page.Registration); page.Errors != nil {
		views.WriteSignup(responseWriter, page)
		return
	}

	page.Submission.Begin()
	if err := s.backend.Signup(request.Context(), page.Registration); err != nil {
		page.Submission.Fail()
		page.Toast = failureToast("SignUp", err)
		views.WriteSignup(responseWriter, page)
		return
	}

	page.Submission.Succeed()
	page.Registration.Password = ""
	page.Toast = toast.Success(signupSuccessMessage)
	page.RedirectTo = "/login"
	page.RedirectAfter = s.cfg.Signup.RedirectDelay
	views.WriteSignup(responseWriter, page)
}
