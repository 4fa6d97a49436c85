package cli

import (
	"context"
	"errors"
	"fmt"

	clientapi "github.com/iudanet/filesmanager/internal/client/api"
	"github.com/iudanet/filesmanager/internal/client/storage"
)

func (c *Cli) runLogin(ctx context.Context, email string) error {
	password, err := c.readPassword("Password: ")
	if err != nil {
		return err
	}

	token, err := c.client.Connect(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	c.client.SetToken(token)

	me, err := c.client.Me(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}

	auth := &storage.AuthData{
		Server:    c.server,
		Email:     me.Email,
		UserID:    me.ID,
		Token:     token,
		CreatedAt: c.now().UTC(),
	}
	if err := c.store.SaveAuth(ctx, auth); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	c.io.Println("✓ Login successful!")
	c.io.Printf("Logged in as %s\n", me.Email)

	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	// Сессия могла уже истечь на сервере, локальную копию удаляем в любом случае
	if err := c.client.Disconnect(ctx); err != nil && !errors.Is(err, clientapi.ErrUnauthorized) {
		return fmt.Errorf("logout failed: %w", err)
	}

	if err := c.store.DeleteAuth(ctx, c.server); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	c.io.Println("✓ Logout successful!")
	return nil
}

func (c *Cli) runWhoami(ctx context.Context) error {
	auth, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	me, err := c.client.Me(ctx)
	if err != nil {
		if errors.Is(err, clientapi.ErrUnauthorized) {
			return fmt.Errorf("session expired, run 'login' again")
		}
		return err
	}

	c.io.Printf("ID:        %s\n", me.ID)
	c.io.Printf("Email:     %s\n", me.Email)
	c.io.Printf("Server:    %s\n", auth.Server)
	c.io.Printf("Logged in: %s\n", auth.CreatedAt.Format("2006-01-02 15:04:05"))

	return nil
}
