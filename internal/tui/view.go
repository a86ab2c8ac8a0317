package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/audora0212/inhashapp/internal/calendar"
	"github.com/audora0212/inhashapp/internal/constants"
	"github.com/audora0212/inhashapp/internal/deadline"
	"github.com/audora0212/inhashapp/internal/models"
	"github.com/audora0212/inhashapp/internal/schedule"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return docStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewCalendar(),
		m.viewDayItems(),
		m.viewSummary(),
		m.help.View(m),
	)
	return docStyle.Render(ui)
}

func (m Model) viewCalendar() string {
	monthItems := m.repo.ForMonth(m.month)
	grid, err := calendar.BuildMonthGrid(m.month, calendar.MonthDueDays(monthItems, m.month), m.now, m.selected)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d년 %d월", m.month.Year(), int(m.month.Month()))) + "\n\n")
	b.WriteString(weekdayStyle.Render(strings.Join(calendar.WeekdayHeader, "   ")) + "\n")

	var row strings.Builder
	for i, cell := range grid {
		if cell.Blank() {
			row.WriteString("     ")
		} else {
			label := fmt.Sprintf("%3d", cell.Day)
			switch {
			case cell.IsSelected:
				label = selectedStyle.Render(label)
			case cell.IsToday:
				label = todayStyle.Render(label)
			}
			mark := " "
			if cell.HasDueItem {
				mark = dueMarkStyle.Render("•")
			}
			row.WriteString(label + mark + " ")
		}
		if (i+1)%7 == 0 {
			b.WriteString(row.String() + "\n")
			row.Reset()
		}
	}
	return b.String()
}

func (m Model) viewDayItems() string {
	items := m.repo.ForDay(m.selected)

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.selected.Format(constants.DateFormat)) + "\n")
	if len(items) == 0 {
		b.WriteString(summaryStyle.Render("  일정 없음") + "\n")
		return b.String()
	}

	for _, it := range items {
		cls := deadline.Classify(it.Due, m.now)
		label := cls.RemainingLabel
		switch cls.Tier {
		case deadline.TierOverdue:
			label = overdueStyle.Render(label)
		case deadline.TierUrgent:
			label = urgentStyle.Render(label)
		}
		b.WriteString(fmt.Sprintf("  [%s] %s %s - %s\n      %s · %s\n",
			it.Type.Title(), cls.DDayLabel, it.Title, label,
			it.Course, it.Due.Format("15:04")))
	}
	return b.String()
}

func (m Model) viewSummary() string {
	monthItems := m.repo.ForMonth(m.month)
	weekItems := m.repo.ForWeek(m.now)

	monthLine := fmt.Sprintf("이번 달: %d 과제 / %d 수업",
		schedule.CountByType(monthItems, models.TypeAssignment),
		schedule.CountByType(monthItems, models.TypeLecture))
	weekLine := fmt.Sprintf("이번 주: %d 과제 / %d 수업, 임박 %d",
		schedule.CountByType(weekItems, models.TypeAssignment),
		schedule.CountByType(weekItems, models.TypeLecture),
		schedule.CountUrgent(weekItems, m.now, 0))
	return summaryStyle.Render(monthLine+"\n"+weekLine) + "\n"
}
