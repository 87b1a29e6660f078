package client

import (
	"strings"
	"testing"
	"time"
)

func validRegistration() Registration {
	return Registration{
		Email:       "me@example.com",
		DateOfBirth: "2000-04-01",
		Gender:      "F",
		Address:     "Jl. Sudirman 1",
		Username:    "me",
		Password:    "12345678",
	}
}

func TestRegistrationValidateAccepts(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	if err := validRegistration().Validate(now); err != nil {
		t.Fatalf("expected valid registration, got %v", err)
	}
}

func TestRegistrationValidateRejections(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		mutate func(*Registration)
		want   string
	}{
		{"missing email", func(r *Registration) { r.Email = "" }, "email"},
		{"email without at", func(r *Registration) { r.Email = "me.example.com" }, "email"},
		{"bad birthdate format", func(r *Registration) { r.DateOfBirth = "01/04/2000" }, "date of birth"},
		{"too young", func(r *Registration) { r.DateOfBirth = "2015-01-01" }, "at least 14"},
		{"unknown gender", func(r *Registration) { r.Gender = "X" }, "gender"},
		{"missing address", func(r *Registration) { r.Address = "  " }, "address"},
		{"address too long", func(r *Registration) { r.Address = strings.Repeat("a", 256) }, "address"},
		{"username too long", func(r *Registration) { r.Username = strings.Repeat("u", 21) }, "username"},
		{"password too short", func(r *Registration) { r.Password = "1234567" }, "password"},
		{"password too long", func(r *Registration) { r.Password = strings.Repeat("p", 65) }, "password"},
	}
	for _, tc := range cases {
		r := validRegistration()
		tc.mutate(&r)
		err := r.Validate(now)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: expected error mentioning %q, got %v", tc.name, tc.want, err)
		}
	}
}

func TestRegistrationValidateExactlyFourteen(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	r := validRegistration()
	r.DateOfBirth = "2012-08-31"
	if err := r.Validate(now); err != nil {
		t.Fatalf("a fourteenth birthday today should pass, got %v", err)
	}
}

func TestCredentialsValidate(t *testing.T) {
	if err := (Credentials{Email: "me@example.com", Password: "secret"}).Validate(); err != nil {
		t.Fatalf("expected valid credentials, got %v", err)
	}
	if err := (Credentials{Password: "secret"}).Validate(); err == nil {
		t.Fatalf("expected error for missing email")
	}
	if err := (Credentials{Email: "me@example.com"}).Validate(); err == nil {
		t.Fatalf("expected error for missing password")
	}
}
