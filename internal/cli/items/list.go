package items

import (
	"fmt"
	"sort"

	"github.com/audora0212/inhashapp/internal/cli"
	"github.com/audora0212/inhashapp/internal/constants"
	"github.com/audora0212/inhashapp/internal/deadline"
	"github.com/audora0212/inhashapp/internal/models"
	"github.com/audora0212/inhashapp/internal/schedule"
	"github.com/audora0212/inhashapp/internal/utils"
)

type ListCmd struct {
	Type    string `short:"t" help:"Filter by item type (assignment|lecture)."`
	Week    bool   `short:"w" help:"Show only this week's items."`
	Month   string `short:"m" help:"Show only items for a month (YYYY-MM)."`
	Day     string `help:"Show only items for a day (YYYY-MM-DD)."`
	ShowIDs bool   `help:"Show item IDs." name:"show-ids"`
}

func (c *ListCmd) Validate() error {
	if c.Type != "" && !models.ScheduleType(c.Type).Valid() {
		return fmt.Errorf("invalid item type: %s (expected assignment or lecture)", c.Type)
	}
	return nil
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	repo, err := ctx.LoadRepository()
	if err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	now, err := ctx.Now(settings)
	if err != nil {
		return err
	}

	items := repo.All()
	switch {
	case c.Week:
		items = repo.ForWeek(now)
	case c.Month != "":
		month, err := utils.ParseMonth(c.Month, now.Location())
		if err != nil {
			return err
		}
		items = repo.ForMonth(month)
	case c.Day != "":
		day, err := utils.ParseDate(c.Day, now.Location())
		if err != nil {
			return err
		}
		items = repo.ForDay(day)
	}

	if c.Type != "" {
		filtered := items[:0:0]
		for _, it := range items {
			if it.Type == models.ScheduleType(c.Type) {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	if len(items) == 0 {
		fmt.Println("No items found")
		return nil
	}

	// The home screen lists upcoming items soonest first.
	sort.SliceStable(items, func(i, j int) bool { return items[i].Due.Before(items[j].Due) })

	for _, it := range items {
		cls := deadline.Classify(it.Due, now)
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", it.ID)
		}
		fmt.Printf("  [%s] %s %s - %s%s\n      %s · %s\n",
			it.Type.Title(), cls.DDayLabel, it.Title, cls.RemainingLabel, idStr,
			it.Course, it.Due.Format(constants.DateTimeFormat))
	}

	fmt.Printf("\n%d 과제 / %d 수업, 임박 %d\n",
		schedule.CountByType(items, models.TypeAssignment),
		schedule.CountByType(items, models.TypeLecture),
		schedule.CountUrgent(items, now, 0))
	return nil
}
