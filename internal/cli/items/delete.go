package items

import (
	"fmt"

	"github.com/audora0212/inhashapp/internal/cli"
)

type DeleteCmd struct {
	ID string `arg:"" help:"Item ID to delete."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	repo, err := ctx.LoadRepository()
	if err != nil {
		return err
	}
	if !repo.Remove(c.ID) {
		return fmt.Errorf("no item with ID %s", c.ID)
	}

	if err := ctx.Store.DeleteItem(c.ID); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	fmt.Printf("Deleted item (ID: %s)\n", c.ID)
	return nil
}
