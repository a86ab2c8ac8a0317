package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/audora0212/inhashapp/internal/calendar"
	"github.com/audora0212/inhashapp/internal/models"
	"github.com/audora0212/inhashapp/internal/schedule"
	"github.com/audora0212/inhashapp/internal/utils"
)

type CalendarCmd struct {
	Month string `short:"m" help:"Month to render (YYYY-MM). Defaults to the current month."`
}

var (
	headerStyle = lipgloss.NewStyle().Faint(true)
	todayStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

func (c *CalendarCmd) Run(ctx *Context) error {
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

	month := now
	if c.Month != "" {
		month, err = utils.ParseMonth(c.Month, now.Location())
		if err != nil {
			return err
		}
	}

	items := repo.ForMonth(month)
	grid, err := calendar.BuildMonthGrid(month, calendar.MonthDueDays(items, month), now, now)
	if err != nil {
		return err
	}

	fmt.Printf("\n  %d년 %d월\n\n", month.Year(), int(month.Month()))
	fmt.Println("  " + headerStyle.Render(strings.Join(calendar.WeekdayHeader, "   ")))

	var row strings.Builder
	for i, cell := range grid {
		label := "    "
		if !cell.Blank() {
			label = fmt.Sprintf("%3d", cell.Day)
			switch {
			case cell.IsToday:
				label = todayStyle.Render(label)
			case cell.HasDueItem:
				label = dueStyle.Render(label)
			}
			if cell.HasDueItem {
				label += "•"
			} else {
				label += " "
			}
		}
		row.WriteString(label)
		if (i+1)%7 == 0 {
			fmt.Println(" " + row.String())
			row.Reset()
		}
	}

	weekItems := repo.ForWeek(now)
	fmt.Printf("\n  이번 달: %d 과제 / %d 수업\n",
		schedule.CountByType(items, models.TypeAssignment),
		schedule.CountByType(items, models.TypeLecture))
	fmt.Printf("  이번 주: %d 과제 / %d 수업, 임박 %d\n",
		schedule.CountByType(weekItems, models.TypeAssignment),
		schedule.CountByType(weekItems, models.TypeLecture),
		schedule.CountUrgent(weekItems, now, 0))
	return nil
}
