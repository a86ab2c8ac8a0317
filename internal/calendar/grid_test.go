package calendar

import (
	"testing"
	"time"

	"github.com/audora0212/inhashapp/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildMonthGridShape(t *testing.T) {
	tests := []struct {
		name          string
		month         time.Time
		wantDays      int
		wantLeading   int
		wantTotalRows int
	}{
		{
			// 2026-02-01 is a Sunday: 28 days, zero leading blanks, exactly 4 rows
			name:          "28-day month starting on Sunday",
			month:         date(2026, time.February, 1),
			wantDays:      28,
			wantLeading:   0,
			wantTotalRows: 4,
		},
		{
			// 2024-02-01 is a Thursday: leap February
			name:          "29-day month starting on Thursday",
			month:         date(2024, time.February, 1),
			wantDays:      29,
			wantLeading:   4,
			wantTotalRows: 5,
		},
		{
			// 2026-04-01 is a Wednesday
			name:          "30-day month starting on Wednesday",
			month:         date(2026, time.April, 15), // day component ignored
			wantDays:      30,
			wantLeading:   3,
			wantTotalRows: 5,
		},
		{
			// 2026-08-01 is a Saturday: 31 days needs 6 rows
			name:          "31-day month starting on Saturday",
			month:         date(2026, time.August, 1),
			wantDays:      31,
			wantLeading:   6,
			wantTotalRows: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells, err := BuildMonthGrid(tt.month, nil, time.Time{}, time.Time{})
			if err != nil {
				t.Fatalf("BuildMonthGrid() error = %v", err)
			}

			if len(cells)%7 != 0 {
				t.Errorf("grid length %d is not a multiple of 7", len(cells))
			}
			if got := len(cells) / 7; got != tt.wantTotalRows {
				t.Errorf("rows = %d, want %d", got, tt.wantTotalRows)
			}

			leading := 0
			for _, c := range cells {
				if !c.Blank() {
					break
				}
				leading++
			}
			if leading != tt.wantLeading {
				t.Errorf("leading blanks = %d, want %d", leading, tt.wantLeading)
			}

			days := 0
			for _, c := range cells {
				if !c.Blank() {
					days++
				}
			}
			if days != tt.wantDays {
				t.Errorf("day cells = %d, want %d", days, tt.wantDays)
			}

			// Day numbers must run 1..N in order after the leading blanks.
			next := 1
			for _, c := range cells[leading:] {
				if c.Blank() {
					break
				}
				if c.Day != next {
					t.Fatalf("day cell out of order: got %d, want %d", c.Day, next)
				}
				next++
			}
		})
	}
}

func TestBuildMonthGridTags(t *testing.T) {
	month := date(2026, time.March, 1)
	due := DaySet{5: {}, 20: {}}
	now := time.Date(2026, time.March, 10, 14, 30, 0, 0, time.UTC)
	selected := date(2026, time.March, 20)

	cells, err := BuildMonthGrid(month, due, now, selected)
	if err != nil {
		t.Fatalf("BuildMonthGrid() error = %v", err)
	}

	for _, c := range cells {
		if c.Blank() {
			if c.HasDueItem || c.IsToday || c.IsSelected {
				t.Errorf("blank cell carries tags: %+v", c)
			}
			continue
		}
		if got, want := c.HasDueItem, c.Day == 5 || c.Day == 20; got != want {
			t.Errorf("day %d HasDueItem = %v, want %v", c.Day, got, want)
		}
		if got, want := c.IsToday, c.Day == 10; got != want {
			t.Errorf("day %d IsToday = %v, want %v", c.Day, got, want)
		}
		if got, want := c.IsSelected, c.Day == 20; got != want {
			t.Errorf("day %d IsSelected = %v, want %v", c.Day, got, want)
		}
	}
}

func TestBuildMonthGridInvalidDate(t *testing.T) {
	if _, err := BuildMonthGrid(time.Time{}, nil, time.Time{}, time.Time{}); err != ErrInvalidDate {
		t.Errorf("BuildMonthGrid(zero) error = %v, want ErrInvalidDate", err)
	}
}

func TestMonthDueDays(t *testing.T) {
	month := date(2026, time.March, 1)
	items := []models.ScheduleItem{
		{ID: "a", Type: models.TypeAssignment, Due: time.Date(2026, time.March, 4, 23, 59, 0, 0, time.UTC)},
		{ID: "b", Type: models.TypeLecture, Due: time.Date(2026, time.March, 4, 9, 0, 0, 0, time.UTC)},
		{ID: "c", Type: models.TypeAssignment, Due: time.Date(2026, time.March, 28, 18, 0, 0, 0, time.UTC)},
		{ID: "d", Type: models.TypeAssignment, Due: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "e", Type: models.TypeLecture, Due: time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)},
	}

	got := MonthDueDays(items, month)
	want := DaySet{4: {}, 28: {}}
	if len(got) != len(want) {
		t.Fatalf("MonthDueDays() = %v, want %v", got, want)
	}
	for day := range want {
		if !got.Contains(day) {
			t.Errorf("MonthDueDays() missing day %d", day)
		}
	}

	// Idempotence: a second projection over the same inputs is identical
	// and the input slice is untouched.
	again := MonthDueDays(items, month)
	if len(again) != len(got) {
		t.Errorf("second MonthDueDays() = %v, want %v", again, got)
	}
	if items[0].ID != "a" || !items[0].Due.Equal(time.Date(2026, time.March, 4, 23, 59, 0, 0, time.UTC)) {
		t.Error("MonthDueDays() mutated its input")
	}
}
