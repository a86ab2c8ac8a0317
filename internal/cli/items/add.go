package items

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/audora0212/inhashapp/internal/cli"
	"github.com/audora0212/inhashapp/internal/models"
	"github.com/audora0212/inhashapp/internal/utils"
)

type AddCmd struct {
	Title  string `arg:"" help:"Item title (e.g. '1주차 실습과제')."`
	Type   string `short:"t" help:"Item type (assignment|lecture)." default:"assignment"`
	Course string `short:"c" help:"Course name." default:"기타"`
	Due    string `short:"d" help:"Due timestamp (YYYY-MM-DD HH:MM)." required:""`
}

func (c *AddCmd) Validate() error {
	if !models.ScheduleType(c.Type).Valid() {
		return fmt.Errorf("invalid item type: %s (expected assignment or lecture)", c.Type)
	}
	return nil
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return err
	}

	due, err := utils.ParseDue(c.Due, loc)
	if err != nil {
		return err
	}

	item := models.ScheduleItem{
		ID:     uuid.New().String(),
		Type:   models.ScheduleType(c.Type),
		Course: c.Course,
		Title:  c.Title,
		Due:    due,
	}

	if err := ctx.Store.AddItem(item); err != nil {
		return fmt.Errorf("failed to add item: %w", err)
	}

	fmt.Printf("Added %s: %s (%s, due %s)\n", item.Type.Title(), item.Title, item.Course, item.Due.Format("2006-01-02 15:04"))
	return nil
}
