package schedule

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/audora0212/inhashapp/internal/constants"
	"github.com/audora0212/inhashapp/internal/models"
	"github.com/audora0212/inhashapp/internal/utils"
)

// ErrDuplicateID is returned when an insert collides with an existing
// item id. It should not occur under correct id generation.
var ErrDuplicateID = errors.New("duplicate item id")

// Repository holds the working set of due items in insertion order and
// answers the month/week/day queries the views are built from. It is
// used from a single logical caller and holds no locks; the working set
// is a handful of items.
type Repository struct {
	items []models.ScheduleItem
	ids   map[string]struct{}
}

// New returns an empty repository.
func New() *Repository {
	return &Repository{ids: make(map[string]struct{})}
}

// Insert appends item. Items are never deduplicated; only an id
// collision is rejected.
func (r *Repository) Insert(item models.ScheduleItem) error {
	if _, ok := r.ids[item.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, item.ID)
	}
	r.ids[item.ID] = struct{}{}
	r.items = append(r.items, item)
	return nil
}

// InsertAll bulk-loads externally supplied items, stopping at the first
// id collision.
func (r *Repository) InsertAll(items []models.ScheduleItem) error {
	for _, it := range items {
		if err := r.Insert(it); err != nil {
			return err
		}
	}
	return nil
}

// Remove deletes the item with the given id, if present. Replacing an
// item is removal plus insertion; items themselves are immutable.
func (r *Repository) Remove(id string) bool {
	if _, ok := r.ids[id]; !ok {
		return false
	}
	delete(r.ids, id)
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of items held.
func (r *Repository) Len() int { return len(r.items) }

// All returns a snapshot of every item in insertion order.
func (r *Repository) All() []models.ScheduleItem {
	out := make([]models.ScheduleItem, len(r.items))
	copy(out, r.items)
	return out
}

// ForMonth returns the items whose due timestamp falls in the same
// calendar year and month as month.
func (r *Repository) ForMonth(month time.Time) []models.ScheduleItem {
	var out []models.ScheduleItem
	for _, it := range r.items {
		if utils.SameMonth(it.Due, month) {
			out = append(out, it)
		}
	}
	return out
}

// ForWeek returns the items due in the Sunday-first week containing
// referenceNow, i.e. [StartOfWeek(referenceNow), +7d). The same week
// convention the calendar grid uses, so "this week" counts agree with
// the rendered header.
func (r *Repository) ForWeek(referenceNow time.Time) []models.ScheduleItem {
	start := utils.StartOfWeek(referenceNow)
	end := start.AddDate(0, 0, 7)

	var out []models.ScheduleItem
	for _, it := range r.items {
		if !it.Due.Before(start) && it.Due.Before(end) {
			out = append(out, it)
		}
	}
	return out
}

// ForDay returns the items due on the same calendar day as date, sorted
// ascending by due timestamp.
func (r *Repository) ForDay(date time.Time) []models.ScheduleItem {
	var out []models.ScheduleItem
	for _, it := range r.items {
		if utils.SameDay(it.Due, date) {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Due.Before(out[j].Due)
	})
	return out
}

// CountByType counts the items of the given type.
func CountByType(items []models.ScheduleItem, t models.ScheduleType) int {
	n := 0
	for _, it := range items {
		if it.Type == t {
			n++
		}
	}
	return n
}

// CountUrgent counts the items due within thresholdDays of now. A
// non-positive threshold falls back to the application default.
func CountUrgent(items []models.ScheduleItem, now time.Time, thresholdDays int) int {
	if thresholdDays <= 0 {
		thresholdDays = constants.DefaultUrgentThresholdDays
	}
	cutoff := now.AddDate(0, 0, thresholdDays)

	n := 0
	for _, it := range items {
		if !it.Due.After(cutoff) {
			n++
		}
	}
	return n
}
