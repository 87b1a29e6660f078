package register

import (
	"context"
	"errors"
	"testing"

	"tableflip.dev/ordo/pkg/client"
)

type fakeBackend struct {
	client.Backend

	err   error
	calls int
}

func (f *fakeBackend) Register(ctx context.Context, r client.Registration) error {
	f.calls++
	return f.err
}

func validRegistration() client.Registration {
	return client.Registration{
		Email:       "me@example.com",
		DateOfBirth: "2000-04-01",
		Gender:      "M",
		Address:     "Jl. Sudirman 1",
		Username:    "me",
		Password:    "12345678",
	}
}

func TestRegisterValidatesBeforeBackend(t *testing.T) {
	fb := &fakeBackend{}
	r := validRegistration()
	r.DateOfBirth = "2020-01-01"
	n := &Register{Registration: r, Backend: fb}

	if err := n.Do(context.Background()); err == nil {
		t.Fatalf("expected validation error for underage registration")
	}
	if fb.calls != 0 {
		t.Fatalf("invalid registration must not reach the backend")
	}
}

func TestRegisterMasksBackendError(t *testing.T) {
	fb := &fakeBackend{err: errors.New("backend returned status 500: internal")}
	n := &Register{Registration: validRegistration(), Backend: fb}

	err := n.Do(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	// The backend detail is deliberately not shown to the user.
	if err.Error() != "failed to register, please try again later" {
		t.Fatalf("unexpected error message %q", err.Error())
	}
}

func TestRegisterSucceedsWithoutLinger(t *testing.T) {
	fb := &fakeBackend{}
	n := &Register{Registration: validRegistration(), Backend: fb}

	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if fb.calls != 1 {
		t.Fatalf("expected one register call, got %d", fb.calls)
	}
}
