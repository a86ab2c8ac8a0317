package system

import (
	"fmt"

	"github.com/audora0212/inhashapp/internal/cli"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	// Init is idempotent: it opens the database and applies any pending
	// migrations without touching existing data.
	if err := ctx.Store.Init(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	fmt.Println("Database schema is current.")
	return nil
}
