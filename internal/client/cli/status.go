package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	authenticated, err := c.authService.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}

	c.io.Println("=== Session Status ===")
	c.io.Println()

	if !authenticated {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'pagekeeper login' to authenticate.")
		return nil
	}

	session, err := c.authService.CurrentSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	expiresAt := time.Unix(session.ExpiresAt, 0)
	remaining := time.Until(expiresAt)

	c.io.Println("Status: Authenticated")
	c.io.Printf("Username: %s\n", session.Username)
	c.io.Printf("User ID:  %s\n", session.UserID)
	c.io.Printf("Token expires at: %s\n", expiresAt.Format(time.RFC3339))

	if remaining > 0 {
		c.io.Printf("Time remaining:   %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("⚠️  Token has expired. It will be refreshed on the next command.")
	}

	return nil
}
