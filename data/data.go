package data

import (
	"encoding/json"
	"strings"
	"time"
)

// Credentials are what the login form submits.
type Credentials struct {
	Email    string `json:"email" form:"email" label:"Email" validate:"required,email"`
	Password string `json:"password" form:"password" label:"Password" validate:"required"`
}

// Registration is what the signup form submits.
type Registration struct {
	Name        string `json:"name" form:"name" label:"Name" validate:"required"`
	Email       string `json:"email" form:"email" label:"Email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" form:"phoneNumber" label:"Mobile Number" validate:"required"`
	Password    string `json:"password" form:"password" label:"Password" validate:"required,min=6"`
}

// DefaultPhonePrefix is put into an empty phone number field.
const DefaultPhonePrefix = "+91"

// ApplyPhoneDefault fills an empty phone number with the given country code
// prefix.
func (registration *Registration) ApplyPhoneDefault(prefix string) {
	if strings.TrimSpace(registration.PhoneNumber) == "" {
		registration.PhoneNumber = prefix
	}
}

// User is the part of the login payload the front end itself looks at.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (user User) GetDisplayName() string {
	if user.Name != "" {
		return user.Name
	}

	return user.Email
}

// Session is created after a successful login. Payload is whatever the
// backend answered with and is kept as is.
type Session struct {
	Token     string          `json:"token"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"createdAt"`
}

// User extracts the user from the payload. The backend either nests it
// under "data" or "user", or sends it at the top level.
func (session Session) User() User {
	var envelope struct {
		Data json.RawMessage `json:"data"`
		User json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(session.Payload, &envelope); err != nil {
		return User{}
	}

	for _, raw := range []json.RawMessage{envelope.User, envelope.Data, session.Payload} {
		var user User
		if len(raw) == 0 || json.Unmarshal(raw, &user) != nil {
			continue
		}
		if user.Name != "" || user.Email != "" {
			return user
		}
	}

	return User{}
}
