package models

import "time"

type ScheduleType string

const (
	TypeAssignment ScheduleType = "assignment"
	TypeLecture    ScheduleType = "lecture"
)

// Title returns the display label for the type (matching the mobile UI).
func (t ScheduleType) Title() string {
	switch t {
	case TypeAssignment:
		return "과제"
	case TypeLecture:
		return "수업"
	default:
		return string(t)
	}
}

// Icon returns the icon key for the type. The key is a UI concern and is
// passed through unchanged.
func (t ScheduleType) Icon() string {
	switch t {
	case TypeAssignment:
		return "doc.text"
	case TypeLecture:
		return "play.rectangle"
	default:
		return ""
	}
}

// Valid reports whether t is one of the closed set of schedule types.
func (t ScheduleType) Valid() bool {
	return t == TypeAssignment || t == TypeLecture
}

// ScheduleItem is a single due item (an assignment deadline or a lecture
// to watch). Items are immutable once created; replacing one means
// removal plus insertion, never in-place mutation.
type ScheduleItem struct {
	ID     string       `json:"id"`
	Type   ScheduleType `json:"type"`
	Course string       `json:"course"`
	Title  string       `json:"title"`
	Due    time.Time    `json:"due"`
}
