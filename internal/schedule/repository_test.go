package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/audora0212/inhashapp/internal/models"
)

func item(id string, t models.ScheduleType, due time.Time) models.ScheduleItem {
	return models.ScheduleItem{ID: id, Type: t, Course: "객체지향프로그래밍", Title: id, Due: due}
}

func TestInsert(t *testing.T) {
	r := New()
	due := time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC)

	if err := r.Insert(item("a", models.TypeAssignment, due)); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if err := r.Insert(item("b", models.TypeLecture, due)); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	err := r.Insert(item("a", models.TypeAssignment, due))
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("Insert(duplicate) error = %v, want ErrDuplicateID", err)
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d after rejected insert, want 2", r.Len())
	}
}

func TestAllPreservesInsertionOrder(t *testing.T) {
	r := New()
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	// Insert out of due order on purpose.
	ids := []string{"c", "a", "b"}
	dues := []time.Time{base.AddDate(0, 0, 5), base, base.AddDate(0, 0, 2)}
	for i, id := range ids {
		if err := r.Insert(item(id, models.TypeAssignment, dues[i])); err != nil {
			t.Fatalf("Insert(%s) error = %v", id, err)
		}
	}

	all := r.All()
	for i, id := range ids {
		if all[i].ID != id {
			t.Errorf("All()[%d].ID = %s, want %s", i, all[i].ID, id)
		}
	}

	// The snapshot is a copy; mutating it must not affect the repository.
	all[0].ID = "mutated"
	if r.All()[0].ID != "c" {
		t.Error("All() returned a live reference to repository state")
	}
}

func TestForMonth(t *testing.T) {
	r := New()
	in := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	out := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	lastYear := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

	for _, it := range []models.ScheduleItem{
		item("a", models.TypeAssignment, in),
		item("b", models.TypeLecture, out),
		item("c", models.TypeLecture, lastYear),
	} {
		if err := r.Insert(it); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	got := r.ForMonth(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("ForMonth() = %v, want [a]", got)
	}
}

func TestForWeek(t *testing.T) {
	// T is a Wednesday noon; the Sunday-first week containing T is
	// [Sun Mar 1, Sun Mar 8).
	T := time.Date(2026, time.March, 4, 12, 0, 0, 0, time.UTC)

	r := New()
	for _, it := range []models.ScheduleItem{
		item("t+10h", models.TypeAssignment, T.Add(10*time.Hour)),   // Wed/Thu boundary, in week
		item("t+1d", models.TypeLecture, T.AddDate(0, 0, 1)),        // Thursday, in week
		item("t+3d", models.TypeAssignment, T.AddDate(0, 0, 3)),     // Saturday, in week
		item("t+4d", models.TypeLecture, T.AddDate(0, 0, 4)),        // Sunday Mar 8, next week
		item("lastweek", models.TypeLecture, T.AddDate(0, 0, -4)),   // Saturday Feb 28, previous week
	} {
		if err := r.Insert(it); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	got := r.ForWeek(T)
	if len(got) != 3 {
		t.Fatalf("ForWeek() returned %d items, want 3 (Sunday-first week)", len(got))
	}
	wantIDs := map[string]bool{"t+10h": true, "t+1d": true, "t+3d": true}
	for _, it := range got {
		if !wantIDs[it.ID] {
			t.Errorf("ForWeek() unexpected item %s", it.ID)
		}
	}
}

func TestForDaySorted(t *testing.T) {
	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	r := New()
	for _, it := range []models.ScheduleItem{
		item("evening", models.TypeAssignment, day.Add(21*time.Hour)),
		item("morning", models.TypeLecture, day.Add(9*time.Hour)),
		item("noon", models.TypeAssignment, day.Add(12*time.Hour)),
		item("nextday", models.TypeAssignment, day.AddDate(0, 0, 1)),
	} {
		if err := r.Insert(it); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	got := r.ForDay(day.Add(15 * time.Hour))
	want := []string{"morning", "noon", "evening"}
	if len(got) != len(want) {
		t.Fatalf("ForDay() returned %d items, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("ForDay()[%d].ID = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestRemove(t *testing.T) {
	r := New()
	due := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	if err := r.Insert(item("a", models.TypeAssignment, due)); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if !r.Remove("a") {
		t.Error("Remove(existing) = false, want true")
	}
	if r.Remove("a") {
		t.Error("Remove(missing) = true, want false")
	}

	// The id is free again after removal.
	if err := r.Insert(item("a", models.TypeLecture, due)); err != nil {
		t.Errorf("Insert() after Remove error = %v", err)
	}
}

func TestCountByType(t *testing.T) {
	due := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	items := []models.ScheduleItem{
		item("a", models.TypeAssignment, due),
		item("b", models.TypeLecture, due),
		item("c", models.TypeAssignment, due),
	}

	if got := CountByType(items, models.TypeAssignment); got != 2 {
		t.Errorf("CountByType(assignment) = %d, want 2", got)
	}
	if got := CountByType(items, models.TypeLecture); got != 1 {
		t.Errorf("CountByType(lecture) = %d, want 1", got)
	}
}

func TestCountUrgent(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	items := []models.ScheduleItem{
		item("past", models.TypeAssignment, now.Add(-time.Hour)),
		item("soon", models.TypeAssignment, now.Add(30*time.Hour)),
		item("edge", models.TypeLecture, now.AddDate(0, 0, 2)),
		item("later", models.TypeLecture, now.AddDate(0, 0, 5)),
	}

	tests := []struct {
		name          string
		thresholdDays int
		want          int
	}{
		{name: "default threshold", thresholdDays: 0, want: 3},
		{name: "one day", thresholdDays: 1, want: 1},
		{name: "wide threshold", thresholdDays: 7, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountUrgent(items, now, tt.thresholdDays); got != tt.want {
				t.Errorf("CountUrgent(threshold=%d) = %d, want %d", tt.thresholdDays, got, tt.want)
			}
		})
	}
}
