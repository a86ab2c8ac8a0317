package models

// Settings represents application-wide settings
type Settings struct {
	NotifyAssignments bool   `json:"notify_assignments"` // whether assignment deadline notifications are enabled
	NotifyLectures    bool   `json:"notify_lectures"`    // whether lecture notifications are enabled
	DDayReminder      int    `json:"dday_reminder"`      // days before a deadline to remind (3, 2 or 1)
	Timezone          string `json:"timezone"`           // IANA timezone name (e.g. "Asia/Seoul", or "Local" for system timezone)
	LmsLinked         bool   `json:"lms_linked"`         // whether an LMS account has been linked
}
