package cli

import (
	"context"
)

func (c *Cli) runStatus(ctx context.Context) error {
	status, err := c.client.Status(ctx)
	if err != nil {
		return err
	}

	stats, err := c.client.Stats(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("Server:   %s\n", c.server)
	c.io.Printf("Sessions: %s\n", okString(status.Redis))
	c.io.Printf("Database: %s\n", okString(status.DB))
	c.io.Printf("Users:    %d\n", stats.Users)
	c.io.Printf("Files:    %d\n", stats.Files)

	ok, err := c.store.IsAuthenticated(ctx, c.server)
	if err != nil {
		return err
	}
	if ok {
		c.io.Println("Session:  stored")
	} else {
		c.io.Println("Session:  none")
	}

	return nil
}

func okString(ok bool) string {
	if ok {
		return "ok"
	}
	return "down"
}
