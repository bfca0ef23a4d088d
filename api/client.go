// Package api talks to the backend that owns accounts and sessions.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Bios-Marcel/bookadoctor/data"
)

const (
	loginPath  = "/auth/login"
	signupPath = "/auth/signup"
)

// maxResponseSize caps how much of a backend answer is read.
const maxResponseSize = 1 << 20

// BackendError is an error the backend reported itself. Its message is meant
// to be shown to the user as is.
type BackendError struct {
	StatusCode int
	Message    string
}

func (err *BackendError) Error() string {
	return fmt.Sprintf("backend error (%d): %s", err.StatusCode, err.Message)
}

// ErrUnexpectedResponse is returned for answers that neither report success
// nor carry a message.
var ErrUnexpectedResponse = errors.New("unexpected backend response")

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// LoginResponse is a successful login. Payload is the complete answer.
type LoginResponse struct {
	Payload json.RawMessage
}

func (client *Client) Login(ctx context.Context, credentials data.Credentials) (*LoginResponse, error) {
	payload, err := client.post(ctx, loginPath, credentials)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{Payload: payload}, nil
}

func (client *Client) Signup(ctx context.Context, registration data.Registration) error {
	_, err := client.post(ctx, signupPath, registration)
	return err
}

type statusResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// post sends body as JSON and returns the raw answer if the backend reported
// status=true.
func (client *Client) post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	rawBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("cant encode request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, client.baseURL+path, bytes.NewReader(rawBody))
	if err != nil {
		return nil, fmt.Errorf("cant create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer response.Body.Close()

	rawResponse, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("cant read response from %s: %w", path, err)
	}

	var parsed statusResponse
	errParse := json.Unmarshal(rawResponse, &parsed)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		if errParse == nil && parsed.Message != "" {
			return nil, &BackendError{StatusCode: response.StatusCode, Message: parsed.Message}
		}
		return nil, fmt.Errorf("%w: %s returned %d", ErrUnexpectedResponse, path, response.StatusCode)
	}

	if errParse != nil {
		return nil, fmt.Errorf("cant parse response from %s: %w", path, errParse)
	}
	if !parsed.Status {
		if parsed.Message != "" {
			return nil, &BackendError{StatusCode: response.StatusCode, Message: parsed.Message}
		}
		return nil, fmt.Errorf("%w: %s reported status false", ErrUnexpectedResponse, path)
	}

	return rawResponse, nil
}
