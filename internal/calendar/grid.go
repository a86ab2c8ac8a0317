package calendar

import (
	"errors"
	"time"

	"github.com/audora0212/inhashapp/internal/models"
	"github.com/audora0212/inhashapp/internal/utils"
)

// ErrInvalidDate is returned when a grid function receives a zero or
// otherwise unusable month value.
var ErrInvalidDate = errors.New("invalid date")

// WeekdayHeader is the Sunday-first column header used by every calendar
// rendering in the application.
var WeekdayHeader = []string{"일", "월", "화", "수", "목", "금", "토"}

// DaySet is a set of day-of-month numbers (1-based).
type DaySet map[int]struct{}

// Contains reports whether day is in the set.
func (s DaySet) Contains(day int) bool {
	_, ok := s[day]
	return ok
}

// Cell is one cell of a month grid. Day is 0 for padding cells that
// belong to no real day; otherwise it is the 1-based day of month.
type Cell struct {
	Day        int
	HasDueItem bool
	IsToday    bool
	IsSelected bool
}

// Blank reports whether the cell is a padding cell.
func (c Cell) Blank() bool { return c.Day == 0 }

// BuildMonthGrid lays out the calendar month containing month (the day
// component is ignored) as a flat sequence of 7-wide rows, Sunday first.
// Leading blanks equal the Sunday-relative weekday offset of day 1, and
// trailing blanks complete the last row. Day cells are tagged against
// dueDays and against the supplied now and selected times; both are
// caller-provided so the layout stays deterministic.
func BuildMonthGrid(month time.Time, dueDays DaySet, now, selected time.Time) ([]Cell, error) {
	if month.IsZero() {
		return nil, ErrInvalidDate
	}

	first := utils.StartOfMonth(month)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// time.Weekday is already Sunday-based (Sunday == 0), so the weekday
	// of day 1 is exactly the leading blank count.
	leading := int(first.Weekday())

	total := leading + daysInMonth
	if rem := total % 7; rem != 0 {
		total += 7 - rem
	}

	cells := make([]Cell, 0, total)
	for i := 0; i < leading; i++ {
		cells = append(cells, Cell{})
	}
	for day := 1; day <= daysInMonth; day++ {
		date := first.AddDate(0, 0, day-1)
		cells = append(cells, Cell{
			Day:        day,
			HasDueItem: dueDays.Contains(day),
			IsToday:    !now.IsZero() && utils.SameDay(date, now),
			IsSelected: !selected.IsZero() && utils.SameDay(date, selected),
		})
	}
	for len(cells) < total {
		cells = append(cells, Cell{})
	}

	return cells, nil
}

// MonthDueDays projects the items whose due timestamp falls in the same
// calendar year and month as month onto their day-of-month numbers.
func MonthDueDays(items []models.ScheduleItem, month time.Time) DaySet {
	days := make(DaySet)
	for _, it := range items {
		if utils.SameMonth(it.Due, month) {
			days[it.Due.Day()] = struct{}{}
		}
	}
	return days
}
