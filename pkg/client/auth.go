package client

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Credentials is the login request body. Phone is vestigial; the backend
// requires the field but ignores it, so it is always zero.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    int    `json:"phone"`
}

// Validate requires both fields before a login request goes out.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if c.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// Registration is the register request body.
type Registration struct {
	Email       string `json:"email"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	Address     string `json:"address"`
	Username    string `json:"username"`
	Password    string `json:"password"`
}

const (
	minRegistrationAge = 14
	maxUsernameLen     = 20
	minPasswordLen     = 8
	maxPasswordLen     = 64
	maxAddressLen      = 255
)

// Validate applies the registration form rules client-side; an invalid
// registration never reaches the network.
func (r Registration) Validate(now time.Time) error {
	if email := strings.TrimSpace(r.Email); email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("a valid email is required")
	}
	dob, err := time.Parse("2006-01-02", r.DateOfBirth)
	if err != nil {
		return fmt.Errorf("date of birth must look like 2006-01-02")
	}
	if dob.After(now.AddDate(-minRegistrationAge, 0, 0)) {
		return fmt.Errorf("you must be at least %d years old to register", minRegistrationAge)
	}
	switch r.Gender {
	case "M", "F", "Other":
	default:
		return fmt.Errorf("gender must be one of M, F, Other")
	}
	if strings.TrimSpace(r.Address) == "" {
		return fmt.Errorf("address is required")
	}
	if len(r.Address) > maxAddressLen {
		return fmt.Errorf("address must be at most %d characters", maxAddressLen)
	}
	if strings.TrimSpace(r.Username) == "" {
		return fmt.Errorf("username is required")
	}
	if len(r.Username) > maxUsernameLen {
		return fmt.Errorf("username must be at most %d characters", maxUsernameLen)
	}
	if len(r.Password) < minPasswordLen || len(r.Password) > maxPasswordLen {
		return fmt.Errorf("password must be between %d and %d characters", minPasswordLen, maxPasswordLen)
	}
	return nil
}

// Login submits credentials. A 2xx means the session is established on the
// backend side; there is no token to hold on to.
func (c *Client) Login(ctx context.Context, creds Credentials) error {
	return c.postJSON(ctx, c.base+"/api/v1/Auth/Login", creds)
}

// Register submits a registration.
func (c *Client) Register(ctx context.Context, r Registration) error {
	return c.postJSON(ctx, c.base+"/api/v1/Auth/Register", r)
}
