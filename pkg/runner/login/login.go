package login

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/ordo/pkg/client"
)

type Login struct {
	Credentials client.Credentials

	Backend client.Backend
}

func (n *Login) Do(ctx context.Context) error {
	if err := n.Credentials.Validate(); err != nil {
		return err
	}
	if n.Backend == nil {
		return errors.New("can not login, no backend")
	}
	if err := n.Backend.Login(ctx, n.Credentials); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	fmt.Printf("Logged in as %s\n", n.Credentials.Email)
	return nil
}
