package constants

import "time"

const (
	AppName           = "inhash"
	KeyringTokenUser  = "auth-token"
	DefaultConfigPath = "~/.config/inhash/inhash.db"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DateTimeFormat is the standard due-timestamp format (YYYY-MM-DD HH:MM)
	DateTimeFormat = "2006-01-02 15:04"

	// MonthFormat identifies a calendar month (YYYY-MM)
	MonthFormat = "2006-01"

	// DefaultUrgentThresholdDays is the unified urgency threshold for both
	// the remaining-time color and the D-day tag.
	DefaultUrgentThresholdDays = 2

	// Onboarding pipeline cadence.
	LinkTickInterval = 90 * time.Millisecond
	LinkStepSize     = 2

	// Defaults for notification settings
	DefaultNotifyAssignments = true
	DefaultNotifyLectures    = true
	DefaultDDayReminder      = 1
	DefaultTimezone          = "Asia/Seoul"
)
