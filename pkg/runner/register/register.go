package register

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/ordo/pkg/client"
)

type Register struct {
	Registration client.Registration

	// Linger keeps the success message on screen before handing the
	// terminal back. Zero skips the wait.
	Linger time.Duration

	Backend client.Backend
}

func (n *Register) Do(ctx context.Context) error {
	if err := n.Registration.Validate(time.Now()); err != nil {
		return err
	}
	if n.Backend == nil {
		return errors.New("can not register, no backend")
	}
	if err := n.Backend.Register(ctx, n.Registration); err != nil {
		return errors.New("failed to register, please try again later")
	}

	fmt.Println("Registration successful")
	if n.Linger > 0 {
		select {
		case <-time.After(n.Linger):
		case <-ctx.Done():
		}
	}
	fmt.Println("You can now log in with: ordo login")
	return nil
}
