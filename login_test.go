package main

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestLoginInvalidEmailNeverCallsBackend(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("backend must not be called")
	})

	recorder := env.post("/login", url.Values{"email": {"not-an-email"}, "password": {"secret"}})

	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), `<p class="field-error">Invalid email</p>`) {
		t.Errorf("field level error missing:\n%s", recorder.Body.String())
	}
	if env.calls() != 0 {
		t.Errorf("backend was called %d times", env.calls())
	}
}

func TestLoginSuccessStoresSessionAndGoesHome(t *testing.T) {
	payload := `{"status":true,"user":{"name":"Jane Doe","email":"jane@example.com"},"token":"backend-token"}`
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	})

	recorder := env.post("/login", url.Values{"email": {"jane@example.com"}, "password": {"secret"}})

	if recorder.Code != http.StatusSeeOther || recorder.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect to /, got %d %q", recorder.Code, recorder.Header().Get("Location"))
	}
	cookie := sessionCookie(t, recorder)
	if cookie == nil || cookie.Value == "" {
		t.Fatalf("session cookie missing")
	}

	durable, err := env.durable.Get(cookie.Value)
	if err != nil {
		t.Fatalf("session not persisted: %v", err)
	}
	if string(durable.Payload) != payload {
		t.Errorf("stored payload %s", durable.Payload)
	}
	if _, err := env.sessions.Load(context.Background(), cookie.Value); err != nil {
		t.Errorf("session not in state container: %v", err)
	}

	home := env.get("/", cookie)
	if !strings.Contains(home.Body.String(), "Logged in as <b>Jane Doe</b>") {
		t.Errorf("home page doesn't know the user:\n%s", home.Body.String())
	}

	// Logged in visitors don't get to see the login form again.
	if again := env.get("/login", cookie); again.Code != http.StatusSeeOther {
		t.Errorf("expected redirect for logged in visitor, got %d", again.Code)
	}
}

func TestLoginBackendErrorShowsMessage(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":false,"message":"Invalid Email or Password"}`))
	})

	recorder := env.post("/login", url.Values{"email": {"jane@example.com"}, "password": {"wrong"}})

	if recorder.Code != http.StatusOK || recorder.Header().Get("Location") != "" {
		t.Fatalf("must not navigate, got %d %q", recorder.Code, recorder.Header().Get("Location"))
	}
	body := recorder.Body.String()
	if !strings.Contains(body, `class="toast toast-error"`) || !strings.Contains(body, "<span>Invalid Email or Password</span>") {
		t.Errorf("backend message not shown:\n%s", body)
	}
	if sessionCookie(t, recorder) != nil {
		t.Errorf("no session must be created")
	}
	if !strings.Contains(body, `class="primary">Login</button>`) {
		t.Errorf("submit control must be enabled again")
	}
}

func TestLoginUnexpectedFailureShowsGenericMessage(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream is down"))
	})

	recorder := env.post("/login", url.Values{"email": {"jane@example.com"}, "password": {"secret"}})

	body := recorder.Body.String()
	if !strings.Contains(body, "<span>Something went wrong</span>") {
		t.Errorf("generic message not shown:\n%s", body)
	}
	if strings.Contains(body, "upstream is down") {
		t.Errorf("raw backend answer must not leak")
	}
}

func TestLoginTogglePassword(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("toggling must not submit")
	})

	form := url.Values{
		"email":         {"jane@example.com"},
		"password":      {"secret"},
		"show_password": {"false"},
		"action":        {actionTogglePassword},
	}
	recorder := env.post("/login", form)
	if !strings.Contains(recorder.Body.String(), `type="text" name="password" placeholder="Password" value="secret"`) {
		t.Fatalf("first toggle should reveal the password:\n%s", recorder.Body.String())
	}

	form.Set("show_password", "true")
	recorder = env.post("/login", form)
	if !strings.Contains(recorder.Body.String(), `type="password" name="password"`) {
		t.Errorf("second toggle should mask the password again")
	}
}
