package data

import (
	"time"

	"github.com/Bios-Marcel/bookadoctor/form"
	"github.com/Bios-Marcel/bookadoctor/toast"
)

// PasswordField holds whether the password is shown in plain text. It only
// lives as long as the rendered form.
type PasswordField struct {
	Visible bool
}

func (field *PasswordField) Toggle() {
	field.Visible = !field.Visible
}

func (field PasswordField) InputType() string {
	if field.Visible {
		return "text"
	}
	return "password"
}

type LoginPage struct {
	Credentials Credentials
	Errors      form.FieldErrors
	Password    PasswordField
	Submission  form.Submission
	Toast       toast.Toast
}

type SignupPage struct {
	Registration Registration
	Errors       form.FieldErrors
	Password     PasswordField
	Submission   form.Submission
	Toast        toast.Toast

	// RedirectTo is set once the account has been created. The view
	// navigates there after RedirectAfter has passed.
	RedirectTo    string
	RedirectAfter time.Duration
}

// RedirectDelayMillis is the delay before the client navigates away.
func (page SignupPage) RedirectDelayMillis() int64 {
	return page.RedirectAfter.Milliseconds()
}

// RedirectDelaySeconds is RedirectAfter rounded up to whole seconds, for
// clients that navigate without script.
func (page SignupPage) RedirectDelaySeconds() int {
	return int((page.RedirectAfter + time.Second - 1) / time.Second)
}
