package main

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/Bios-Marcel/bookadoctor/data"
)

func TestSignupSuccessRedirectsAfterDelay(t *testing.T) {
	var received data.Registration
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/signup" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"status":true}`))
	})

	recorder := env.post("/signup", url.Values{
		"name":        {"Jane Doe"},
		"email":       {"jane@example.com"},
		"phoneNumber": {"+919876543210"},
		"password":    {"secret1"},
	})

	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
	// Navigation happens only once the delay is over, so there is no
	// immediate redirect.
	if location := recorder.Header().Get("Location"); location != "" {
		t.Errorf("must not redirect immediately, got %q", location)
	}
	body := recorder.Body.String()
	for _, want := range []string{
		`class="toast toast-success"`,
		"<span>User Successfully Created</span>",
		`window.location.assign("/login"); }, 1500);`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("response is missing %q", want)
		}
	}
	if received.Name != "Jane Doe" || received.PhoneNumber != "+919876543210" {
		t.Errorf("unexpected registration %+v", received)
	}
}

func TestSignupDefaultsPhonePrefix(t *testing.T) {
	var received data.Registration
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&received)
		w.Write([]byte(`{"status":true}`))
	})

	if page := env.get("/signup"); !strings.Contains(page.Body.String(), `name="phoneNumber" value="+91"`) {
		t.Errorf("empty form must carry the phone prefix")
	}

	env.post("/signup", url.Values{
		"name":     {"Jane Doe"},
		"email":    {"jane@example.com"},
		"password": {"secret1"},
	})
	if received.PhoneNumber != "+91" {
		t.Errorf("phone number %q", received.PhoneNumber)
	}
}

func TestSignupValidationBlocksSubmission(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("backend must not be called")
	})

	recorder := env.post("/signup", url.Values{
		"email":    {"jane.example.com"},
		"password": {"abc"},
	})

	body := recorder.Body.String()
	for _, want := range []string{
		"Name is required",
		"Invalid email",
		"Password must be at least 6 characters",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("response is missing %q", want)
		}
	}
	if env.calls() != 0 {
		t.Errorf("backend was called %d times", env.calls())
	}
}

func TestSignupBackendErrorShowsMessage(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"status":false,"message":"User already exists"}`))
	})

	recorder := env.post("/signup", url.Values{
		"name":     {"Jane Doe"},
		"email":    {"jane@example.com"},
		"password": {"secret1"},
	})

	body := recorder.Body.String()
	if !strings.Contains(body, "<span>User already exists</span>") {
		t.Errorf("backend message not shown:\n%s", body)
	}
	if strings.Contains(body, "window.location.assign") {
		t.Errorf("must not navigate after a failed signup")
	}
}
